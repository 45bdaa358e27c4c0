// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import "sync"

// ATN is the fully assembled Augmented Transition Network graph produced
// by an ATNDeserializer (spec.md §3). It owns every state (addressable by
// state number); each state owns its own outgoing transitions; the shared
// interval-set table referenced by SET/NOT_SET transitions is owned here
// too. After deserialization returns, an ATN is treated as immutable and
// may be shared across goroutines without synchronization (spec.md §5).
//
// [Augmented Transition Network]: https://en.wikipedia.org/wiki/Augmented_transition_network
type ATN struct {

	// DecisionToState is the decision points for all rules, sub-rules,
	// optional blocks, ()+, ()*, etc, in decision-number order.
	DecisionToState []DecisionState

	// GrammarType is the ATN type, LEXER or PARSER.
	GrammarType ATNType

	// MaxTokenType is the maximum value for any symbol recognized by a
	// transition in the ATN.
	MaxTokenType int

	// ModeNameToStartState supplements ModeToStartState with a name-keyed
	// lookup; see SPEC_FULL.md's data-model supplement.
	ModeNameToStartState map[string]*TokensStartState

	// ModeToStartState holds, in mode order, the entry state for each
	// lexer mode (spec.md §4.4).
	ModeToStartState []*TokensStartState

	// RuleToStartState maps rule index to that rule's entry state.
	RuleToStartState []*RuleStartState

	// RuleToStopState maps rule index to that rule's exit state, filled
	// in during the rules post-pass (spec.md §4.3).
	RuleToStopState []*RuleStopState

	// RuleToTokenType maps the rule index to the resulting token type for
	// lexer ATNs. For parser ATNs, it maps the rule index to the
	// generated bypass token type if
	// ATNDeserializationOptions.GenerateRuleBypassTransitions was
	// specified, and is otherwise nil.
	RuleToTokenType []int

	// RuleToActionIndex maps rule index to its lexer action index, for
	// lexer ATNs only (see SPEC_FULL.md's data-model supplement).
	RuleToActionIndex []int

	// states is the insertion-ordered state table; a nil entry marks a
	// reserved-but-invalid-typed slot (spec.md §4.2).
	states []ATNState

	// sets is the per-payload interval-set table referenced by SET and
	// NOT_SET transitions (spec.md §3 Lifecycle).
	sets []*IntervalSet

	mu      sync.Mutex
	stateMu sync.RWMutex
}

// NewATN returns a new, empty ATN of the given grammarType, ready to be
// populated by an ATNDeserializer.
func NewATN(grammarType ATNType, maxTokenType int) *ATN {
	return &ATN{
		GrammarType:          grammarType,
		MaxTokenType:         maxTokenType,
		ModeNameToStartState: make(map[string]*TokensStartState),
	}
}

// addState appends state to the state table, assigning its state number
// as the insertion index (spec.md §3: "Every non-null state appears in
// ATN.states at the index equal to its stateNumber"). state may be nil,
// which reserves a gap for an invalid-typed slot.
func (a *ATN) addState(state ATNState) {
	a.stateMu.Lock()
	defer a.stateMu.Unlock()
	if state != nil {
		state.SetATN(a)
		state.SetStateNumber(len(a.states))
	}
	a.states = append(a.states, state)
}

// defineDecisionState registers s as the next decision in
// DecisionToState, assigning its decision index.
func (a *ATN) defineDecisionState(s DecisionState) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.DecisionToState = append(a.DecisionToState, s)
	s.SetDecision(len(a.DecisionToState) - 1)
	return s.GetDecision()
}

// GetDecisionState returns the decision state registered under the given
// decision index.
func (a *ATN) GetDecisionState(decision int) DecisionState {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.DecisionToState) == 0 {
		return nil
	}
	return a.DecisionToState[decision]
}

// GetState returns the state at the given state number, or nil if that
// slot is a reserved gap.
func (a *ATN) GetState(stateNumber int) ATNState {
	a.stateMu.RLock()
	defer a.stateMu.RUnlock()
	return a.states[stateNumber]
}

// NumStates returns the number of slots in the state table, including nil
// gaps.
func (a *ATN) NumStates() int {
	a.stateMu.RLock()
	defer a.stateMu.RUnlock()
	return len(a.states)
}

// States returns the full state table. Callers must not mutate the
// returned slice.
func (a *ATN) States() []ATNState {
	return a.states
}

// Sets returns the shared interval-set table. Callers must not mutate the
// returned slice or the sets it contains.
func (a *ATN) Sets() []*IntervalSet {
	return a.sets
}

// GetRuleToStartState returns the entry state for the given rule index.
func (a *ATN) GetRuleToStartState(index int) *RuleStartState {
	return a.RuleToStartState[index]
}

// GetRuleToStopState returns the exit state for the given rule index.
func (a *ATN) GetRuleToStopState(index int) *RuleStopState {
	return a.RuleToStopState[index]
}

// GetMaxTokenType returns the inclusive upper bound of recognized token
// types.
func (a *ATN) GetMaxTokenType() int {
	return a.MaxTokenType
}
