// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Interval is an inclusive, closed integer range. Start may be TokenEOF
// (-1) to represent the end-of-file pseudo-symbol (spec.md §3).
type Interval struct {
	Start int
	Stop  int
}

// IntervalSet is an ordered sequence of disjoint, inclusive integer
// intervals. Adjacent and overlapping intervals are coalesced on Add, so
// the sequence is always minimal and sorted by Start.
type IntervalSet struct {
	intervals []Interval
}

// NewIntervalSet returns an empty set. Unlike the upstream C++
// implementation this deserializer is based on (see
// original_source/runtime/Cpp/runtime/atn/ATNDeserializer.cpp, where a
// default-constructed set is a nil pointer later dereferenced), every
// IntervalSet returned by this package is a real, usable empty value
// (spec.md §9).
func NewIntervalSet() *IntervalSet {
	return &IntervalSet{}
}

// Add inserts a single value into the set.
func (s *IntervalSet) Add(value int) {
	s.AddRange(value, value)
}

// AddRange inserts the inclusive range [start, stop], coalescing it with
// any overlapping or adjacent interval already present. Implemented as a
// straightforward linear merge rather than an in-place binary-search
// splice: ATN interval sets (character classes, token sets) are small
// enough that clarity wins over the asymptotics here.
func (s *IntervalSet) AddRange(start, stop int) {
	if stop < start {
		start, stop = stop, start
	}

	merged := make([]Interval, 0, len(s.intervals)+1)
	placed := false
	for _, iv := range s.intervals {
		switch {
		case iv.Stop+1 < start:
			merged = append(merged, iv)
		case stop+1 < iv.Start:
			if !placed {
				merged = append(merged, Interval{Start: start, Stop: stop})
				placed = true
			}
			merged = append(merged, iv)
		default:
			if iv.Start < start {
				start = iv.Start
			}
			if iv.Stop > stop {
				stop = iv.Stop
			}
		}
	}
	if !placed {
		merged = append(merged, Interval{Start: start, Stop: stop})
	}
	s.intervals = merged
}

// Contains reports whether value falls within any interval in the set.
func (s *IntervalSet) Contains(value int) bool {
	idx, found := slices.BinarySearchFunc(s.intervals, value, func(iv Interval, v int) int {
		if v < iv.Start {
			return 1
		}
		if v > iv.Stop {
			return -1
		}
		return 0
	})
	return found && idx < len(s.intervals)
}

// Intervals returns the underlying sorted, disjoint interval list. Callers
// must not mutate the returned slice.
func (s *IntervalSet) Intervals() []Interval { return s.intervals }

// Len returns the number of distinct values represented by the set.
func (s *IntervalSet) Len() int {
	n := 0
	for _, iv := range s.intervals {
		n += iv.Stop - iv.Start + 1
	}
	return n
}

func (s *IntervalSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, iv := range s.intervals {
		if i > 0 {
			b.WriteByte(',')
		}
		if iv.Start == iv.Stop {
			fmt.Fprintf(&b, "%d", iv.Start)
		} else {
			fmt.Fprintf(&b, "%d..%d", iv.Start, iv.Stop)
		}
	}
	b.WriteByte('}')
	return b.String()
}
