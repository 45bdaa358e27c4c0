// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import (
	"fmt"

	"github.com/rs/zerolog"
)

// SerializedVersion is the only wire-format version this deserializer
// understands (spec.md §4.1).
const SerializedVersion = 3

// ATNDeserializer reconstructs an *ATN from the compact integer-encoded
// payload produced offline by the grammar compiler (spec.md §1). A single
// Deserialize call is single-threaded and side-effect-free beyond the
// returned ATN; an ATNDeserializer value may be reused across calls.
type ATNDeserializer struct {
	options *ATNDeserializationOptions
	log     zerolog.Logger
}

// NewATNDeserializer returns a deserializer configured with options, or
// the documented defaults if options is nil (spec.md §6). Debug tracing
// is disabled; use NewATNDeserializerWithLogger to enable it.
func NewATNDeserializer(options *ATNDeserializationOptions) *ATNDeserializer {
	return NewATNDeserializerWithLogger(options, zerolog.Nop())
}

// NewATNDeserializerWithLogger is NewATNDeserializer with an additional
// zerolog.Logger used for opt-in debug tracing: one event once the graph
// is decoded (state, rule and decision counts) and one after the bypass
// rewrite, if it runs (see SPEC_FULL.md's AMBIENT STACK / Logging section).
// Pass zerolog.Nop() to disable tracing entirely.
func NewATNDeserializerWithLogger(options *ATNDeserializationOptions, log zerolog.Logger) *ATNDeserializer {
	if options == nil {
		options = NewATNDeserializationOptions()
	}
	return &ATNDeserializer{options: options, log: log}
}

// Deserialize decodes payload into a complete *ATN (spec.md §1, §6).
func (d *ATNDeserializer) Deserialize(payload []uint16) (*ATN, error) {
	dec := newDecoder(payload)

	version := dec.next()
	if version != SerializedVersion {
		return nil, &UnsupportedSchemaError{
			Reason: fmt.Sprintf("Could not deserialize ATN with version %d (expected %d).", version, SerializedVersion),
		}
	}

	schemaUUID := readUUIDFromCodeUnits(dec.data, dec.p)
	dec.p += 8
	if indexOfUUID(schemaUUID) < 0 {
		return nil, &UnsupportedSchemaError{
			Reason: fmt.Sprintf("Could not deserialize ATN with UUID %s (expected %s or a legacy UUID).", schemaUUID, serializedUUID),
		}
	}
	supportsPrecedencePredicates := isFeatureSupported(addedPrecedenceTransitionsUUID, schemaUUID)

	grammarType := ATNType(dec.next())
	maxTokenType := dec.next()
	atn := NewATN(grammarType, maxTokenType)

	if err := d.readStates(dec, atn, supportsPrecedencePredicates); err != nil {
		return nil, err
	}
	if err := d.readRules(dec, atn); err != nil {
		return nil, err
	}
	d.readModes(dec, atn)

	sets, err := d.readSets(dec)
	if err != nil {
		return nil, err
	}
	atn.sets = sets

	if err := d.readEdges(dec, atn, sets); err != nil {
		return nil, err
	}

	d.deriveRuleStopFollowEdges(atn)
	if err := d.linkBlockEnds(atn); err != nil {
		return nil, err
	}
	d.linkLoopbackStates(atn)
	d.readDecisions(dec, atn)

	d.log.Debug().
		Int("states", atn.NumStates()).
		Int("rules", len(atn.RuleToStartState)).
		Int("decisions", len(atn.DecisionToState)).
		Str("grammarType", grammarType.String()).
		Msg("atn deserialized")

	if d.options.VerifyATN {
		if err := verifyATN(atn); err != nil {
			return nil, err
		}
	}

	if d.options.GenerateRuleBypassTransitions && atn.GrammarType == ATNTypeParser {
		if err := generateRuleBypassTransitions(atn); err != nil {
			return nil, err
		}
		d.log.Debug().Int("rules", len(atn.RuleToStartState)).Msg("rule bypass transitions generated")
		if d.options.VerifyATN {
			if err := verifyATN(atn); err != nil {
				return nil, err
			}
		}
	}

	return atn, nil
}

// readStates implements spec.md §4.2: the states section, including the
// two deferred back-patch passes (loop-back/end-state pairing and
// non-greedy/precedence-rule flags).
func (d *ATNDeserializer) readStates(dec *decoder, atn *ATN, supportsPrecedencePredicates bool) error {
	type loopBackPair struct {
		state           *LoopEndState
		loopBackStateNo int
	}
	type blockEndPair struct {
		state      BlockStartState
		endStateNo int
	}

	var loopBackPairs []loopBackPair
	var blockEndPairs []blockEndPair

	nstates := dec.next()
	for i := 0; i < nstates; i++ {
		stype := dec.next()
		if stype == ATNStateInvalidType {
			atn.addState(nil)
			continue
		}

		ruleIndex := dec.next()
		if ruleIndex == 0xFFFF {
			ruleIndex = -1
		}

		s, err := stateFactory(stype, ruleIndex)
		if err != nil {
			return err
		}

		if stype == ATNStateLoopEnd {
			loopBackStateNumber := dec.next()
			loopBackPairs = append(loopBackPairs, loopBackPair{state: s.(*LoopEndState), loopBackStateNo: loopBackStateNumber})
		} else if bs, ok := s.(BlockStartState); ok {
			endStateNumber := dec.next()
			blockEndPairs = append(blockEndPairs, blockEndPair{state: bs, endStateNo: endStateNumber})
		}

		atn.addState(s)
	}

	for _, pair := range loopBackPairs {
		pair.state.SetLoopBackState(atn.GetState(pair.loopBackStateNo))
	}
	for _, pair := range blockEndPairs {
		pair.state.SetEndState(atn.GetState(pair.endStateNo).(*BlockEndState))
	}

	numNonGreedyStates := dec.next()
	for i := 0; i < numNonGreedyStates; i++ {
		stateNumber := dec.next()
		atn.GetState(stateNumber).(DecisionState).SetNonGreedy(true)
	}

	if supportsPrecedencePredicates {
		numPrecedenceStates := dec.next()
		for i := 0; i < numPrecedenceStates; i++ {
			stateNumber := dec.next()
			atn.GetState(stateNumber).(*RuleStartState).SetPrecedenceRule(true)
		}
	}

	return nil
}

// readRules implements spec.md §4.3.
func (d *ATNDeserializer) readRules(dec *decoder, atn *ATN) error {
	nrules := dec.next()
	if atn.GrammarType == ATNTypeLexer {
		atn.RuleToTokenType = make([]int, nrules)
		atn.RuleToActionIndex = make([]int, nrules)
	}
	atn.RuleToStartState = make([]*RuleStartState, nrules)

	for i := 0; i < nrules; i++ {
		s := dec.next()
		startState, ok := atn.GetState(s).(*RuleStartState)
		if !ok {
			return &InvalidArgumentError{Reason: "Rule start state reference does not name a RuleStartState."}
		}
		atn.RuleToStartState[i] = startState

		if atn.GrammarType == ATNTypeLexer {
			tokenType := dec.next()
			if tokenType == 0xFFFF {
				tokenType = TokenEOF
			}
			atn.RuleToTokenType[i] = tokenType

			actionIndex := dec.next()
			if actionIndex == 0xFFFF {
				actionIndex = -1
			}
			atn.RuleToActionIndex[i] = actionIndex
		}
	}

	atn.RuleToStopState = make([]*RuleStopState, nrules)
	for _, state := range atn.states {
		stopState, ok := state.(*RuleStopState)
		if !ok {
			continue
		}
		atn.RuleToStopState[stopState.GetRuleIndex()] = stopState
		atn.RuleToStartState[stopState.GetRuleIndex()].SetStopState(stopState)
	}

	return nil
}

// readModes implements the corrected behavior for spec.md §4.4's modes
// section (see SPEC_FULL.md §9): unlike the source this deserializer is
// based on, ModeToStartState is actually populated.
func (d *ATNDeserializer) readModes(dec *decoder, atn *ATN) {
	nmodes := dec.next()
	for i := 0; i < nmodes; i++ {
		s := dec.next()
		startState := atn.GetState(s).(*TokensStartState)
		atn.ModeToStartState = append(atn.ModeToStartState, startState)
		atn.ModeNameToStartState[fmt.Sprintf("mode%d", i)] = startState
	}
}

// readSets implements spec.md §4.4's sets section, including the
// corrected behavior for the source's latent crash (see SPEC_FULL.md §9):
// every set starts as a real, usable empty IntervalSet.
func (d *ATNDeserializer) readSets(dec *decoder) ([]*IntervalSet, error) {
	nsets := dec.next()
	sets := make([]*IntervalSet, 0, nsets)
	for i := 0; i < nsets; i++ {
		nintervals := dec.next()
		containsEof := dec.next() != 0

		set := NewIntervalSet()
		if containsEof {
			set.Add(-1)
		}
		for j := 0; j < nintervals; j++ {
			lo := dec.next()
			hi := dec.next()
			set.AddRange(lo, hi)
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// readEdges implements spec.md §4.4's edges section.
func (d *ATNDeserializer) readEdges(dec *decoder, atn *ATN, sets []*IntervalSet) error {
	nedges := dec.next()
	for i := 0; i < nedges; i++ {
		src := dec.next()
		trg := dec.next()
		ttype := dec.next()
		arg1 := dec.next()
		arg2 := dec.next()
		arg3 := dec.next()

		trans, err := edgeFactory(atn.states, ttype, src, trg, arg1, arg2, arg3, sets)
		if err != nil {
			return err
		}
		atn.states[src].AddTransition(trans)
	}
	return nil
}

// deriveRuleStopFollowEdges implements spec.md §4.5 step 1: rule-stop
// follow edges are reconstructible from RuleTransitions rather than
// serialized directly.
func (d *ATNDeserializer) deriveRuleStopFollowEdges(atn *ATN) {
	for _, state := range atn.states {
		if state == nil {
			continue
		}
		for _, t := range state.GetTransitions() {
			rt, ok := t.(*RuleTransition)
			if !ok {
				continue
			}
			stopState := atn.RuleToStopState[rt.GetTarget().GetRuleIndex()]
			stopState.AddTransition(NewEpsilonTransition(rt.GetFollowState()))
		}
	}
}

// linkBlockEnds implements spec.md §4.5 step 2.
func (d *ATNDeserializer) linkBlockEnds(atn *ATN) error {
	for _, state := range atn.states {
		bs, ok := state.(BlockStartState)
		if !ok {
			continue
		}
		if bs.GetEndState() == nil {
			return &StructuralError{Reason: "Block start state is missing its end state."}
		}
		if bs.GetEndState().GetStartState() != nil {
			return &StructuralError{Reason: "Block end state is already linked to a different block start state."}
		}
		bs.GetEndState().SetStartState(bs)
	}
	return nil
}

// linkLoopbackStates implements spec.md §4.5 step 3.
func (d *ATNDeserializer) linkLoopbackStates(atn *ATN) {
	for _, state := range atn.states {
		switch loopback := state.(type) {
		case *PlusLoopbackState:
			for _, t := range loopback.GetTransitions() {
				if target, ok := t.GetTarget().(*PlusBlockStartState); ok {
					target.SetLoopBackState(loopback)
				}
			}
		case *StarLoopbackState:
			for _, t := range loopback.GetTransitions() {
				if target, ok := t.GetTarget().(*StarLoopEntryState); ok {
					target.SetLoopBackState(loopback)
				}
			}
		}
	}
}

// readDecisions implements spec.md §4.5 step 4.
func (d *ATNDeserializer) readDecisions(dec *decoder, atn *ATN) {
	ndecisions := dec.next()
	for i := 1; i <= ndecisions; i++ {
		s := dec.next()
		decState := atn.GetState(s).(DecisionState)
		atn.defineDecisionState(decState)
	}
}
