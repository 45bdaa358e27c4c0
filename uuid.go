// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"encoding/binary"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Known schema UUIDs, ordered oldest to newest (spec.md §4.1, §6). The
// ordering of this slice *is* the feature-gating mechanism: a feature is
// supported by an actual schema UUID iff the feature's UUID appears at or
// before the actual UUID's position.
var (
	baseSerializedUUID             = uuid.MustParse("33761B2D-78BB-4A43-8B0B-4F5BEE8AACF3")
	addedPrecedenceTransitionsUUID = uuid.MustParse("1DA0C57D-6C06-438A-9B27-10BCB3CE0F61")
	addedLexerActionsUUID          = uuid.MustParse("AADB8D7E-AEEF-4415-AD2B-8204D6CF042E")

	// serializedUUID is the newest schema this deserializer understands.
	serializedUUID = addedLexerActionsUUID

	supportedUUIDs = []uuid.UUID{
		baseSerializedUUID,
		addedPrecedenceTransitionsUUID,
		addedLexerActionsUUID,
	}
)

// isFeatureSupported reports whether feature is introduced at or before
// actual in the supportedUUIDs schema history (spec.md §4.1). Both UUIDs
// must be members of the known list. Deserialize rejects an unrecognized
// actual UUID during header decoding and only passes known feature
// constants, so both lookups succeed on that path.
func isFeatureSupported(feature, actual uuid.UUID) bool {
	featureIdx := indexOfUUID(feature)
	actualIdx := indexOfUUID(actual)
	if featureIdx < 0 || actualIdx < 0 {
		return false
	}
	return featureIdx <= actualIdx
}

func indexOfUUID(u uuid.UUID) int {
	return slices.Index(supportedUUIDs, u)
}

// readUUIDFromCodeUnits reconstructs a UUID from 8 little-endian-paired
// 16-bit code units (spec.md §4.1 item 2), following the same 32/64-bit
// assembly the reference deserializer uses: each pair of code units forms
// a little-endian uint32, two consecutive uint32s form a uint64 with the
// first as its low half, and the two uint64s (the first read is the
// least-significant half) are written most-significant-first as the 16
// canonical UUID bytes.
func readUUIDFromCodeUnits(data []uint16, offset int) uuid.UUID {
	toUint32 := func(o int) uint32 {
		return uint32(data[o]) | uint32(data[o+1])<<16
	}
	toUint64 := func(o int) uint64 {
		low := uint64(toUint32(o))
		high := uint64(toUint32(o + 2))
		return (high << 32) | low
	}

	leastSigBits := toUint64(offset)
	mostSigBits := toUint64(offset + 4)

	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], mostSigBits)
	binary.BigEndian.PutUint64(b[8:16], leastSigBits)
	return uuid.Must(uuid.FromBytes(b[:]))
}
