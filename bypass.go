// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

// generateRuleBypassTransitions implements spec.md §4.9: for each rule in
// a PARSER ATN, wraps the rule body in a fresh block-start/block-end pair
// plus an atom edge carrying a synthetic token type, so that tree-pattern
// matching machinery can short-circuit the rule body. Only ever called
// for grammarType == ATNTypeParser.
func generateRuleBypassTransitions(atn *ATN) error {
	atn.RuleToTokenType = make([]int, len(atn.RuleToStartState))
	for i := range atn.RuleToStartState {
		atn.RuleToTokenType[i] = atn.MaxTokenType + i + 1
	}

	for i := range atn.RuleToStartState {
		if err := generateRuleBypassTransition(atn, i); err != nil {
			return err
		}
	}

	return nil
}

func generateRuleBypassTransition(atn *ATN, ruleIndex int) error {
	bypassStart := NewBasicBlockStartState()
	bypassStart.SetRuleIndex(ruleIndex)
	atn.addState(bypassStart)

	bypassStop := NewBlockEndState()
	bypassStop.SetRuleIndex(ruleIndex)
	atn.addState(bypassStop)

	bypassStart.SetEndState(bypassStop)
	atn.defineDecisionState(bypassStart)

	bypassStop.SetStartState(bypassStart)

	var endState ATNState
	var excludeTransition Transition

	ruleStart := atn.RuleToStartState[ruleIndex]
	if ruleStart.IsPrecedenceRule() {
		// Wrap from the beginning of the rule to the StarLoopEntryState
		// that closes the left-recursive prefix.
		for _, state := range atn.states {
			if state == nil || state.GetRuleIndex() != ruleIndex {
				continue
			}
			sles, ok := state.(*StarLoopEntryState)
			if !ok {
				continue
			}
			transitions := sles.GetTransitions()
			if len(transitions) == 0 {
				continue
			}
			maybeLoopEnd, ok := transitions[len(transitions)-1].GetTarget().(*LoopEndState)
			if !ok {
				continue
			}
			if !maybeLoopEnd.GetEpsilonOnlyTransitions() {
				continue
			}
			loopEndTransitions := maybeLoopEnd.GetTransitions()
			if len(loopEndTransitions) == 0 {
				continue
			}
			if _, ok := loopEndTransitions[0].GetTarget().(*RuleStopState); !ok {
				continue
			}
			endState = sles
			excludeTransition = sles.GetLoopBackState().GetTransitions()[0]
			break
		}
		if endState == nil {
			return &UnsupportedSchemaError{Reason: "Couldn't identify final state of the precedence rule prefix section."}
		}
	} else {
		endState = atn.RuleToStopState[ruleIndex]
	}

	// All non-excluded transitions that currently target endState need to
	// target bypassStop instead.
	for _, state := range atn.states {
		if state == nil {
			continue
		}
		for _, t := range state.GetTransitions() {
			if t == excludeTransition {
				continue
			}
			if t.GetTarget() == endState {
				t.SetTarget(bypassStop)
			}
		}
	}

	// All transitions leaving the rule start state need to leave
	// bypassStart instead.
	startTransitions := ruleStart.GetTransitions()
	ruleStart.SetTransitions(nil)
	for _, t := range startTransitions {
		bypassStart.AddTransition(t)
	}

	ruleStart.AddTransition(NewEpsilonTransition(bypassStart))
	bypassStop.AddTransition(NewEpsilonTransition(endState))

	matchState := NewBasicState()
	atn.addState(matchState)
	matchState.AddTransition(NewAtomTransition(bypassStop, atn.RuleToTokenType[ruleIndex]))
	bypassStart.AddTransition(NewEpsilonTransition(matchState))

	return nil
}
