// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// buildPayload assembles a wire payload from logical (unbiased) code unit
// values, applying the +2 bias to every unit but the first the way a real
// grammar compiler's serializer would (spec.md §4.1). Values are truncated
// to uint16 first, so the 0xFFFF "absent" sentinel is written as the
// literal 65535 and round-trips through bias/debias exactly.
func buildPayload(raw ...int) []uint16 {
	out := make([]uint16, len(raw))
	for i, v := range raw {
		out[i] = uint16(v)
	}
	for i := 1; i < len(out); i++ {
		out[i] += 2
	}
	return out
}

// uuidUnits returns the 8 logical code units that readUUIDFromCodeUnits
// would reassemble back into u, the exact inverse of its 32/64-bit assembly.
func uuidUnits(u uuid.UUID) []int {
	b := [16]byte(u)
	least := binary.BigEndian.Uint64(b[8:16])
	most := binary.BigEndian.Uint64(b[0:8])

	split := func(v uint64) []int {
		low32 := uint32(v)
		high32 := uint32(v >> 32)
		return []int{
			int(low32 & 0xFFFF),
			int((low32 >> 16) & 0xFFFF),
			int(high32 & 0xFFFF),
			int((high32 >> 16) & 0xFFFF),
		}
	}

	units := split(least)
	units = append(units, split(most)...)
	return units
}

// minimalHeader returns the logical header units (version, UUID, grammarType,
// maxTokenType) common to every scenario payload below.
func minimalHeader(grammarType ATNType, maxTokenType int) []int {
	units := []int{SerializedVersion}
	units = append(units, uuidUnits(serializedUUID)...)
	units = append(units, int(grammarType), maxTokenType)
	return units
}
