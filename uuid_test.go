// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadUUIDFromCodeUnitsRoundTripsKnownUUIDs(t *testing.T) {
	for _, u := range supportedUUIDs {
		units := uuidUnits(u)
		require.Len(t, units, 8)

		data := make([]uint16, len(units))
		for i, v := range units {
			data[i] = uint16(v)
		}

		require.Equal(t, u, readUUIDFromCodeUnits(data, 0))
	}
}

func TestIsFeatureSupportedRespectsSchemaOrdering(t *testing.T) {
	require.True(t, isFeatureSupported(baseSerializedUUID, baseSerializedUUID))
	require.True(t, isFeatureSupported(baseSerializedUUID, addedLexerActionsUUID))
	require.True(t, isFeatureSupported(addedPrecedenceTransitionsUUID, addedLexerActionsUUID))
	require.False(t, isFeatureSupported(addedLexerActionsUUID, baseSerializedUUID))
}

func TestIsFeatureSupportedRejectsUnknownUUIDs(t *testing.T) {
	var unknown [16]byte
	unknown[0] = 0xAB
	require.False(t, isFeatureSupported(addedPrecedenceTransitionsUUID, unknown))
}

func TestIndexOfUUIDFindsKnownAndMissesUnknown(t *testing.T) {
	require.Equal(t, 0, indexOfUUID(baseSerializedUUID))
	require.Equal(t, 1, indexOfUUID(addedPrecedenceTransitionsUUID))
	require.Equal(t, 2, indexOfUUID(addedLexerActionsUUID))

	var unknown [16]byte
	require.Equal(t, -1, indexOfUUID(unknown))
}
