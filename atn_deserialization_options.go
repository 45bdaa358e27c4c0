// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

// ATNDeserializationOptions controls the optional post-processing steps
// run by Deserialize (spec.md §6). The zero value is not meaningful on
// its own; use NewATNDeserializationOptions for the documented defaults.
type ATNDeserializationOptions struct {
	// VerifyATN runs the structural verifier (spec.md §4.8) before
	// Deserialize returns, and again after bypass rewriting if both are
	// enabled.
	VerifyATN bool

	// GenerateRuleBypassTransitions runs the bypass rewriter (spec.md
	// §4.9) for PARSER grammars once the base graph is assembled.
	GenerateRuleBypassTransitions bool
}

// ATNDeserializationOption configures an ATNDeserializationOptions value,
// following the functional-options convention used for configuration
// structs across the broader runtime.
type ATNDeserializationOption func(*ATNDeserializationOptions)

// WithVerifyATN overrides the VerifyATN default.
func WithVerifyATN(verify bool) ATNDeserializationOption {
	return func(o *ATNDeserializationOptions) { o.VerifyATN = verify }
}

// WithGenerateRuleBypassTransitions overrides the
// GenerateRuleBypassTransitions default.
func WithGenerateRuleBypassTransitions(generate bool) ATNDeserializationOption {
	return func(o *ATNDeserializationOptions) { o.GenerateRuleBypassTransitions = generate }
}

// NewATNDeserializationOptions returns options with VerifyATN true and
// GenerateRuleBypassTransitions false (spec.md §6), as modified by opts.
func NewATNDeserializationOptions(opts ...ATNDeserializationOption) *ATNDeserializationOptions {
	o := &ATNDeserializationOptions{
		VerifyATN:                     true,
		GenerateRuleBypassTransitions: false,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
