// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

// edgeFactory builds a transition from a serialized edge entry (spec.md
// §4.4, §4.7). states is the already-built state table (so RULE edges can
// resolve their rule-start argument), sets is the per-payload interval-set
// table (so SET/NOT_SET edges can resolve their set argument).
func edgeFactory(states []ATNState, ttype, src, trg, arg1, arg2, arg3 int, sets []*IntervalSet) (Transition, error) {
	target := states[trg]

	switch ttype {
	case TransitionEpsilon:
		return NewEpsilonTransition(target), nil
	case TransitionRange:
		if arg3 != 0 {
			return NewRangeTransition(target, TokenEOF, arg2), nil
		}
		return NewRangeTransition(target, arg1, arg2), nil
	case TransitionRule:
		ruleStart, _ := states[arg1].(*RuleStartState)
		return NewRuleTransition(ruleStart, arg2, arg3, target), nil
	case TransitionPredicate:
		return NewPredicateTransition(target, arg1, arg2, arg3 != 0), nil
	case TransitionPrecedence:
		return NewPrecedencePredicateTransition(target, arg1), nil
	case TransitionAtom:
		if arg3 != 0 {
			return NewAtomTransition(target, TokenEOF), nil
		}
		return NewAtomTransition(target, arg1), nil
	case TransitionAction:
		return NewActionTransition(target, arg1, arg2, arg3 != 0), nil
	case TransitionSet:
		return NewSetTransition(target, sets[arg1]), nil
	case TransitionNotSet:
		return NewNotSetTransition(target, sets[arg1]), nil
	case TransitionWildcard:
		return NewWildcardTransition(target), nil
	default:
		return nil, &InvalidArgumentError{Reason: "The specified transition type is not valid."}
	}
}
