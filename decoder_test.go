// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecoderUndoesPlusTwoBiasExceptFirstUnit(t *testing.T) {
	payload := []uint16{3, 5, 2, 1}
	dec := newDecoder(payload)

	require.Equal(t, 3, dec.next())     // version, never biased
	require.Equal(t, 3, dec.next())     // 5-2
	require.Equal(t, 0, dec.next())     // 2-2
	require.Equal(t, 65535, dec.next()) // 1-2, wraps to 0xFFFF
}

func TestDecoderPeekDoesNotAdvance(t *testing.T) {
	// Index 0 is never bias-corrected, so the raw value is what peek/next
	// should return directly.
	dec := newDecoder([]uint16{10})
	require.Equal(t, 10, dec.peek())
	require.Equal(t, 10, dec.peek())
	require.Equal(t, 10, dec.next())
	require.Equal(t, 0, dec.remaining())
}

func TestDecoderRemainingCountsDownToZero(t *testing.T) {
	dec := newDecoder([]uint16{1, 2, 3, 4})
	require.Equal(t, 4, dec.remaining())
	dec.next()
	require.Equal(t, 3, dec.remaining())
	dec.next()
	dec.next()
	dec.next()
	require.Equal(t, 0, dec.remaining())
}

func TestBuildPayloadRoundTripsThroughDecoder(t *testing.T) {
	raw := []int{SerializedVersion, 0xFFFF, 0, 65535}
	dec := newDecoder(buildPayload(raw...))
	for _, v := range raw {
		require.Equal(t, v, dec.next())
	}
}
