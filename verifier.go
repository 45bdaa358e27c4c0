// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import "fmt"

// verifyATN walks the assembled graph and asserts the structural
// invariants listed in spec.md §4.8. Any violation returns a
// StructuralError; a clean pass returns nil. Re-running verifyATN on an
// already-verified ATN is a no-op (spec.md §8).
func verifyATN(atn *ATN) error {
	for _, state := range atn.states {
		if state == nil {
			continue
		}

		if err := checkOutDegree(state); err != nil {
			return err
		}

		switch s := state.(type) {
		case *PlusBlockStartState:
			if s.GetLoopBackState() == nil {
				return structuralf("PlusBlockStartState %d has no loop-back state.", s.GetStateNumber())
			}

		case *StarLoopEntryState:
			if s.GetLoopBackState() == nil {
				return structuralf("StarLoopEntryState %d has no loop-back state.", s.GetStateNumber())
			}
			if len(s.GetTransitions()) != 2 {
				return structuralf("StarLoopEntryState %d must have exactly 2 transitions, has %d.", s.GetStateNumber(), len(s.GetTransitions()))
			}
			first := s.GetTransitions()[0].GetTarget()
			second := s.GetTransitions()[1].GetTarget()
			if _, ok := first.(*StarBlockStartState); ok {
				if _, ok := second.(*LoopEndState); !ok {
					return structuralf("StarLoopEntryState %d's second transition must target a LoopEndState.", s.GetStateNumber())
				}
				if s.GetNonGreedy() {
					return structuralf("StarLoopEntryState %d targeting (StarBlockStart, LoopEnd) must not be nonGreedy.", s.GetStateNumber())
				}
			} else if _, ok := first.(*LoopEndState); ok {
				if _, ok := second.(*StarBlockStartState); !ok {
					return structuralf("StarLoopEntryState %d's second transition must target a StarBlockStartState.", s.GetStateNumber())
				}
				if !s.GetNonGreedy() {
					return structuralf("StarLoopEntryState %d targeting (LoopEnd, StarBlockStart) must be nonGreedy.", s.GetStateNumber())
				}
			} else {
				return structuralf("StarLoopEntryState %d has an invalid transition shape.", s.GetStateNumber())
			}

		case *StarLoopbackState:
			if len(s.GetTransitions()) != 1 {
				return structuralf("StarLoopbackState %d must have exactly 1 transition, has %d.", s.GetStateNumber(), len(s.GetTransitions()))
			}
			if _, ok := s.GetTransitions()[0].GetTarget().(*StarLoopEntryState); !ok {
				return structuralf("StarLoopbackState %d must target a StarLoopEntryState.", s.GetStateNumber())
			}

		case *LoopEndState:
			if s.GetLoopBackState() == nil {
				return structuralf("LoopEndState %d has no loop-back state.", s.GetStateNumber())
			}

		case *RuleStartState:
			if s.GetStopState() == nil {
				return structuralf("RuleStartState %d has no stop state.", s.GetStateNumber())
			}
		}

		if bs, ok := state.(BlockStartState); ok {
			if bs.GetEndState() == nil {
				return structuralf("BlockStartState %d has no end state.", state.GetStateNumber())
			}
		}
		if be, ok := state.(*BlockEndState); ok {
			if be.GetStartState() == nil {
				return structuralf("BlockEndState %d has no start state.", state.GetStateNumber())
			}
		}
	}

	return nil
}

// checkOutDegree asserts that state is either epsilon-only or has at most
// one outgoing transition. RuleStopState (which may carry several derived
// follow edges) is exempt. A DecisionState is checked differently: it may
// have more than one transition, epsilon or not, only if its decision is
// >= 0.
func checkOutDegree(state ATNState) error {
	if ds, ok := state.(DecisionState); ok {
		if len(ds.GetTransitions()) > 1 && ds.GetDecision() < 0 {
			return structuralf("DecisionState %d has %d transitions but no assigned decision.", state.GetStateNumber(), len(ds.GetTransitions()))
		}
		return nil
	}

	if _, ok := state.(*RuleStopState); ok {
		return nil
	}

	if state.GetEpsilonOnlyTransitions() || len(state.GetTransitions()) <= 1 {
		return nil
	}

	return structuralf("State %d has %d non-epsilon transitions; at most 1 is allowed.", state.GetStateNumber(), len(state.GetTransitions()))
}

func structuralf(format string, args ...interface{}) error {
	return &StructuralError{Reason: fmt.Sprintf(format, args...)}
}
