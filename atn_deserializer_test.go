// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario 1: header round-trip (spec.md §8).
func TestDeserializeEmptyATN(t *testing.T) {
	payload := buildPayload(append(minimalHeader(ATNTypeParser, 0),
		0, // nstates
		0, // numNonGreedyStates
		0, // numPrecedenceStates (supportsPrecedencePredicates is always true for SERIALIZED_UUID)
		0, // nrules
		0, // nmodes
		0, // nsets
		0, // nedges
		0, // ndecisions
	)...)

	atn, err := NewATNDeserializer(nil).Deserialize(payload)
	require.NoError(t, err)
	require.Equal(t, ATNTypeParser, atn.GrammarType)
	require.Equal(t, 0, atn.NumStates())
	require.Empty(t, atn.RuleToStartState)
	require.NoError(t, verifyATN(atn))
}

// Scenario 2: version mismatch (spec.md §8).
func TestDeserializeVersionMismatch(t *testing.T) {
	payload := buildPayload(append([]int{2}, uuidUnits(serializedUUID)...)...)

	_, err := NewATNDeserializer(nil).Deserialize(payload)
	require.Error(t, err)
	require.IsType(t, &UnsupportedSchemaError{}, err)
}

// Scenario 3: unknown UUID (spec.md §8).
func TestDeserializeUnknownUUID(t *testing.T) {
	bogus := []int{1, 2, 3, 4, 5, 6, 7, 8}
	payload := buildPayload(append([]int{SerializedVersion}, bogus...)...)

	_, err := NewATNDeserializer(nil).Deserialize(payload)
	require.Error(t, err)
	require.IsType(t, &UnsupportedSchemaError{}, err)
}

// Scenario 4: single lexer rule (spec.md §8).
//
//	0: TOKEN_START (ruleIndex -1)
//	1: RULE_START  (rule 0)
//	2: RULE_STOP   (rule 0)
//	3: BASIC       (rule 0)
//
// Edges: 1 --SET{a..z}--> 3, 3 --epsilon--> 2.
func TestDeserializeSingleLexerRule(t *testing.T) {
	raw := minimalHeader(ATNTypeLexer, 'z')
	raw = append(raw,
		4,              // nstates
		ATNStateTokenStart, 0xFFFF,
		ATNStateRuleStart, 0,
		ATNStateRuleStop, 0,
		ATNStateBasic, 0,
		0, // numNonGreedyStates
		0, // numPrecedenceStates
		1, // nrules
		1, 'a', 0xFFFF, // rule 0: start state 1, tokenType 'a', actionIndex absent
		0, // nmodes
		1, // nsets
		1, 0, 'a', 'z', // set 0: 1 interval, containsEof=false, ['a','z']
		2, // nedges
		1, 3, TransitionSet, 0, 0, 0, // RULE_START(1) --set(0)--> BASIC(3)
		3, 2, TransitionEpsilon, 0, 0, 0, // BASIC(3) --epsilon--> RULE_STOP(2)
		0, // ndecisions
	)
	payload := buildPayload(raw...)

	atn, err := NewATNDeserializer(nil).Deserialize(payload)
	require.NoError(t, err)

	require.Same(t, atn.GetState(2), atn.RuleToStopState[0])
	require.Empty(t, atn.RuleToStopState[0].GetTransitions())
	require.NoError(t, verifyATN(atn))
}

// Scenario 5: rule invocation (spec.md §8).
//
//	0: RULE_START (rule 0)
//	1: RULE_STOP  (rule 0)
//	2: RULE_START (rule 1)
//	3: RULE_STOP  (rule 1)
//	4: BASIC      (follow state s_f)
//
// Edge: 0 --RULE(target=2, ruleIndex=1, precedence=0)--> 4 (followState).
func buildRuleInvocationPayload(maxTokenType int) []uint16 {
	raw := minimalHeader(ATNTypeParser, maxTokenType)
	raw = append(raw,
		5, // nstates
		ATNStateRuleStart, 0,
		ATNStateRuleStop, 0,
		ATNStateRuleStart, 1,
		ATNStateRuleStop, 1,
		ATNStateBasic, 0xFFFF,
		0, // numNonGreedyStates
		0, // numPrecedenceStates
		2, // nrules
		0, // rule 0: start state 0
		2, // rule 1: start state 2
		0, // nmodes
		0, // nsets
		1, // nedges
		0, 4, TransitionRule, 2, 1, 0, // RULE_START(0) --rule(start=2,idx=1,prec=0)--> followState(4)
		0, // ndecisions
	)
	return buildPayload(raw...)
}

func TestDeserializeRuleInvocation(t *testing.T) {
	atn, err := NewATNDeserializer(nil).Deserialize(buildRuleInvocationPayload(0))
	require.NoError(t, err)

	followEdges := atn.RuleToStopState[1].GetTransitions()
	require.Len(t, followEdges, 1)
	epsilon, ok := followEdges[0].(*EpsilonTransition)
	require.True(t, ok)
	require.Same(t, atn.GetState(4), epsilon.GetTarget())
	require.NoError(t, verifyATN(atn))
}

// Scenario 6: bypass rewrite for a non-precedence parser rule, continuing
// from scenario 5 (spec.md §8).
func TestDeserializeGenerateRuleBypassTransitions(t *testing.T) {
	const maxTokenType = 0
	opts := NewATNDeserializationOptions(WithGenerateRuleBypassTransitions(true))

	atn, err := NewATNDeserializer(opts).Deserialize(buildRuleInvocationPayload(maxTokenType))
	require.NoError(t, err)

	require.Equal(t, []int{maxTokenType + 1, maxTokenType + 2}, atn.RuleToTokenType)
	require.Equal(t, 5+3*2, atn.NumStates())

	for i, start := range atn.RuleToStartState {
		epsilon, ok := start.GetTransitions()[len(start.GetTransitions())-1].(*EpsilonTransition)
		require.True(t, ok, "rule %d start state's last transition should be the epsilon into bypassStart", i)
		bypassStart, ok := epsilon.GetTarget().(*BasicBlockStartState)
		require.True(t, ok, "rule %d should gain a BasicBlockStartState bypass entry", i)
		require.NotNil(t, bypassStart.GetEndState())
		require.Same(t, bypassStart, bypassStart.GetEndState().GetStartState())
	}

	require.NoError(t, verifyATN(atn))
}

// Universal property: re-verifying an already-verified ATN is a no-op
// (spec.md §8).
func TestVerifyATNIsIdempotent(t *testing.T) {
	atn, err := NewATNDeserializer(nil).Deserialize(buildRuleInvocationPayload(0))
	require.NoError(t, err)
	require.NoError(t, verifyATN(atn))
	require.NoError(t, verifyATN(atn))
}

// Universal property: every non-null state's stateNumber equals its index,
// and every RuleStartState's stopState agrees with ruleToStopState (spec.md
// §8).
func TestUniversalStateAndRuleInvariants(t *testing.T) {
	atn, err := NewATNDeserializer(nil).Deserialize(buildRuleInvocationPayload(0))
	require.NoError(t, err)

	for i, s := range atn.States() {
		if s == nil {
			continue
		}
		require.Equal(t, i, s.GetStateNumber())
	}

	for ruleIndex, start := range atn.RuleToStartState {
		require.Equal(t, ruleIndex, start.GetStopState().GetRuleIndex())
		require.Same(t, atn.RuleToStopState[ruleIndex], start.GetStopState())
	}
}
