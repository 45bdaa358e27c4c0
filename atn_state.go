// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import "strconv"

// Constants for serialized ATN state type tags. These match the integer
// tags written by the grammar compiler and read back by the state factory.
const (
	ATNStateInvalidType        = 0
	ATNStateBasic              = 1
	ATNStateRuleStart          = 2
	ATNStateBlockStart         = 3
	ATNStatePlusBlockStart     = 4
	ATNStateStarBlockStart     = 5
	ATNStateTokenStart         = 6
	ATNStateRuleStop           = 7
	ATNStateBlockEnd           = 8
	ATNStateStarLoopBack       = 9
	ATNStateStarLoopEntry      = 10
	ATNStatePlusLoopBack       = 11
	ATNStateLoopEnd            = 12
	ATNStateInvalidStateNumber = -1
)

// ATNState is the common interface implemented by every node in the
// deserialized automaton graph. Variants are a closed set (see the
// ATNState* constants above); downstream code type-switches on the
// concrete type rather than growing an open hierarchy.
type ATNState interface {
	GetStateNumber() int
	SetStateNumber(int)

	GetRuleIndex() int
	SetRuleIndex(int)

	GetEpsilonOnlyTransitions() bool
	SetEpsilonOnlyTransitions(bool)

	GetATN() *ATN
	SetATN(*ATN)

	GetStateType() int

	GetTransitions() []Transition
	AddTransition(Transition)
	SetTransitions([]Transition)

	String() string
}

// BaseATNState is embedded by every concrete state variant and carries the
// fields common to all of them.
type BaseATNState struct {
	atn                    *ATN
	stateNumber            int
	ruleIndex              int
	epsilonOnlyTransitions bool
	transitions            []Transition
	stateType              int
}

func newBaseATNState(stateType int) BaseATNState {
	return BaseATNState{
		stateNumber: ATNStateInvalidStateNumber,
		ruleIndex:   -1,
		stateType:   stateType,
	}
}

func (s *BaseATNState) GetStateNumber() int  { return s.stateNumber }
func (s *BaseATNState) SetStateNumber(n int) { s.stateNumber = n }

func (s *BaseATNState) GetRuleIndex() int  { return s.ruleIndex }
func (s *BaseATNState) SetRuleIndex(n int) { s.ruleIndex = n }

func (s *BaseATNState) GetEpsilonOnlyTransitions() bool  { return s.epsilonOnlyTransitions }
func (s *BaseATNState) SetEpsilonOnlyTransitions(b bool) { s.epsilonOnlyTransitions = b }

func (s *BaseATNState) GetATN() *ATN  { return s.atn }
func (s *BaseATNState) SetATN(a *ATN) { s.atn = a }

func (s *BaseATNState) GetStateType() int { return s.stateType }

func (s *BaseATNState) GetTransitions() []Transition  { return s.transitions }
func (s *BaseATNState) SetTransitions(t []Transition) { s.transitions = t }

// AddTransition appends t to the state's outgoing edge list and keeps
// epsilonOnlyTransitions consistent: once a state has a non-epsilon
// transition it can never again be considered epsilon-only, matching the
// invariant enforced by the verifier (spec.md §8: every state has either
// only epsilon transitions or at most one non-epsilon transition).
func (s *BaseATNState) AddTransition(t Transition) {
	if len(s.transitions) == 0 {
		s.epsilonOnlyTransitions = t.IsEpsilon()
	} else if s.epsilonOnlyTransitions != t.IsEpsilon() {
		s.epsilonOnlyTransitions = false
	}
	s.transitions = append(s.transitions, t)
}

func (s *BaseATNState) String() string {
	return strconv.Itoa(s.stateNumber)
}

// BasicState is a plain intermediate state with no special role.
type BasicState struct{ BaseATNState }

func NewBasicState() *BasicState {
	return &BasicState{BaseATNState: newBaseATNState(ATNStateBasic)}
}

// DecisionState is the common capability of every state that participates
// in a prediction decision (spec.md §3): it carries a decision index and a
// non-greedy flag.
type DecisionState interface {
	ATNState
	GetDecision() int
	SetDecision(int)
	GetNonGreedy() bool
	SetNonGreedy(bool)
}

// BaseDecisionState is embedded by every decision-capable state variant.
type BaseDecisionState struct {
	BaseATNState
	decision  int
	nonGreedy bool
}

func newBaseDecisionState(stateType int) BaseDecisionState {
	return BaseDecisionState{
		BaseATNState: newBaseATNState(stateType),
		decision:     -1,
	}
}

func (s *BaseDecisionState) GetDecision() int    { return s.decision }
func (s *BaseDecisionState) SetDecision(d int)   { s.decision = d }
func (s *BaseDecisionState) GetNonGreedy() bool  { return s.nonGreedy }
func (s *BaseDecisionState) SetNonGreedy(b bool) { s.nonGreedy = b }

// RuleStartState is the entry state of a rule; it knows its paired stop
// state and whether the rule is left-recursive-with-precedence.
type RuleStartState struct {
	BaseATNState
	stopState        *RuleStopState
	isPrecedenceRule bool
}

func NewRuleStartState() *RuleStartState {
	return &RuleStartState{BaseATNState: newBaseATNState(ATNStateRuleStart)}
}

func (s *RuleStartState) GetStopState() *RuleStopState      { return s.stopState }
func (s *RuleStartState) SetStopState(stop *RuleStopState)  { s.stopState = stop }

func (s *RuleStartState) IsPrecedenceRule() bool   { return s.isPrecedenceRule }
func (s *RuleStartState) SetPrecedenceRule(b bool) { s.isPrecedenceRule = b }

// RuleStopState is the exit state of a rule. It may carry several derived
// follow-state epsilons (spec.md §3), so the verifier exempts it from the
// "at most one non-epsilon transition" rule.
type RuleStopState struct{ BaseATNState }

func NewRuleStopState() *RuleStopState {
	return &RuleStopState{BaseATNState: newBaseATNState(ATNStateRuleStop)}
}

// BlockStartState is the capability shared by every state that opens a
// syntactic block and is paired with a BlockEndState.
type BlockStartState interface {
	DecisionState
	GetEndState() *BlockEndState
	SetEndState(*BlockEndState)
}

// BaseBlockStartState is embedded by every block-start variant.
type BaseBlockStartState struct {
	BaseDecisionState
	endState *BlockEndState
}

func newBaseBlockStartState(stateType int) BaseBlockStartState {
	return BaseBlockStartState{BaseDecisionState: newBaseDecisionState(stateType)}
}

func (s *BaseBlockStartState) GetEndState() *BlockEndState  { return s.endState }
func (s *BaseBlockStartState) SetEndState(e *BlockEndState) { s.endState = e }

// BasicBlockStartState is a plain `(...)` alternative block.
type BasicBlockStartState struct{ BaseBlockStartState }

func NewBasicBlockStartState() *BasicBlockStartState {
	return &BasicBlockStartState{BaseBlockStartState: newBaseBlockStartState(ATNStateBlockStart)}
}

// PlusBlockStartState is the head of a `(...)+` loop; it also knows its
// loop-back state, assigned in the back-linking post-pass (spec.md §4.5).
type PlusBlockStartState struct {
	BaseBlockStartState
	loopBackState ATNState
}

func NewPlusBlockStartState() *PlusBlockStartState {
	return &PlusBlockStartState{BaseBlockStartState: newBaseBlockStartState(ATNStatePlusBlockStart)}
}

func (s *PlusBlockStartState) GetLoopBackState() ATNState    { return s.loopBackState }
func (s *PlusBlockStartState) SetLoopBackState(t ATNState)   { s.loopBackState = t }

// StarBlockStartState is the head of a `(...)*` loop's alternative block.
type StarBlockStartState struct{ BaseBlockStartState }

func NewStarBlockStartState() *StarBlockStartState {
	return &StarBlockStartState{BaseBlockStartState: newBaseBlockStartState(ATNStateStarBlockStart)}
}

// BlockEndState closes a block opened by a BlockStartState; startState is
// filled in by the block-end back-linking post-pass.
type BlockEndState struct {
	BaseATNState
	startState BlockStartState
}

func NewBlockEndState() *BlockEndState {
	return &BlockEndState{BaseATNState: newBaseATNState(ATNStateBlockEnd)}
}

func (s *BlockEndState) GetStartState() BlockStartState  { return s.startState }
func (s *BlockEndState) SetStartState(bs BlockStartState) { s.startState = bs }

// TokensStartState is the entry state for a lexer mode.
type TokensStartState struct{ BaseDecisionState }

func NewTokensStartState() *TokensStartState {
	return &TokensStartState{BaseDecisionState: newBaseDecisionState(ATNStateTokenStart)}
}

// PlusLoopbackState is the decision state at the back of a `(...)+` loop
// that chooses between re-entering the block and exiting it.
type PlusLoopbackState struct{ BaseDecisionState }

func NewPlusLoopbackState() *PlusLoopbackState {
	return &PlusLoopbackState{BaseDecisionState: newBaseDecisionState(ATNStatePlusLoopBack)}
}

// StarLoopbackState is the non-decision state at the back of a `(...)*`
// loop; it has exactly one transition, targeting the loop's entry state.
type StarLoopbackState struct{ BaseATNState }

func NewStarLoopbackState() *StarLoopbackState {
	return &StarLoopbackState{BaseATNState: newBaseATNState(ATNStateStarLoopBack)}
}

// StarLoopEntryState is the decision state at the front of a `(...)*`
// loop; it has exactly two transitions, one into the loop body and one to
// the matching LoopEndState, ordered according to nonGreedy.
type StarLoopEntryState struct {
	BaseDecisionState
	loopBackState ATNState
}

func NewStarLoopEntryState() *StarLoopEntryState {
	return &StarLoopEntryState{BaseDecisionState: newBaseDecisionState(ATNStateStarLoopEntry)}
}

func (s *StarLoopEntryState) GetLoopBackState() ATNState  { return s.loopBackState }
func (s *StarLoopEntryState) SetLoopBackState(t ATNState) { s.loopBackState = t }

// LoopEndState is the exit state shared by `(...)+` and `(...)*` loops.
type LoopEndState struct {
	BaseATNState
	loopBackState ATNState
}

func NewLoopEndState() *LoopEndState {
	return &LoopEndState{BaseATNState: newBaseATNState(ATNStateLoopEnd)}
}

func (s *LoopEndState) GetLoopBackState() ATNState  { return s.loopBackState }
func (s *LoopEndState) SetLoopBackState(t ATNState) { s.loopBackState = t }
