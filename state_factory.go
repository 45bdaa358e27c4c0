// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package atn

import "fmt"

// stateFactory builds a fresh state node for the given serialized type tag
// and attaches ruleIndex (spec.md §4.6). ATNStateInvalidType yields a nil
// state, reserving a gap slot rather than an error. Any other unrecognized
// tag is a hard failure: the schema promises a closed set of state kinds.
func stateFactory(stype, ruleIndex int) (ATNState, error) {
	var s ATNState
	switch stype {
	case ATNStateInvalidType:
		return nil, nil
	case ATNStateBasic:
		s = NewBasicState()
	case ATNStateRuleStart:
		s = NewRuleStartState()
	case ATNStateBlockStart:
		s = NewBasicBlockStartState()
	case ATNStatePlusBlockStart:
		s = NewPlusBlockStartState()
	case ATNStateStarBlockStart:
		s = NewStarBlockStartState()
	case ATNStateTokenStart:
		s = NewTokensStartState()
	case ATNStateRuleStop:
		s = NewRuleStopState()
	case ATNStateBlockEnd:
		s = NewBlockEndState()
	case ATNStateStarLoopBack:
		s = NewStarLoopbackState()
	case ATNStateStarLoopEntry:
		s = NewStarLoopEntryState()
	case ATNStatePlusLoopBack:
		s = NewPlusLoopbackState()
	case ATNStateLoopEnd:
		s = NewLoopEndState()
	default:
		return nil, &InvalidArgumentError{Reason: fmt.Sprintf("The specified state type %d is not valid.", stype)}
	}

	s.SetRuleIndex(ruleIndex)
	return s, nil
}
