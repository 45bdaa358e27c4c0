// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

// UnsupportedSchemaError is returned when the payload's version or schema
// UUID is not one this deserializer understands, or when the bypass
// rewriter cannot find the end of a precedence rule's prefix section
// (spec.md §7).
type UnsupportedSchemaError struct {
	Reason string
}

func (e *UnsupportedSchemaError) Error() string { return e.Reason }

// InvalidArgumentError is returned when the state or edge factory is asked
// to build a kind it doesn't recognize (spec.md §7).
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string { return e.Reason }

// StructuralError is returned when the assembled graph violates one of
// the invariants in spec.md §3/§8, either during the block-end back-
// linking post-pass or during verification.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string { return e.Reason }
