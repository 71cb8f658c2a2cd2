package device

import (
	"errors"
	"testing"
)

func TestFlowHappyPath(t *testing.T) {
	state := StateForm

	steps := []struct {
		event FlowEvent
		want  FlowState
	}{
		{EventSendCode, StateCodeSent},
		{EventSubmitCode, StateVerifying},
		{EventVerified, StateRegistered},
	}
	for _, step := range steps {
		next, err := state.Advance(step.event)
		if err != nil {
			t.Fatalf("%s on %s: %v", step.event, state, err)
		}
		if next != step.want {
			t.Fatalf("%s on %s: got %s, want %s", step.event, state, next, step.want)
		}
		state = next
	}
}

func TestFlowFailureAndRetry(t *testing.T) {
	state := StateVerifying
	state, err := state.Advance(EventRejected)
	if err != nil || state != StateFailed {
		t.Fatalf("expected failed state, got %s (%v)", state, err)
	}
	state, err = state.Advance(EventRetry)
	if err != nil || state != StateForm {
		t.Fatalf("expected retry back to form, got %s (%v)", state, err)
	}
}

func TestFlowResendCode(t *testing.T) {
	state, err := StateCodeSent.Advance(EventSendCode)
	if err != nil || state != StateCodeSent {
		t.Fatalf("expected resend to stay in code_sent, got %s (%v)", state, err)
	}
}

func TestFlowIllegalTransitions(t *testing.T) {
	cases := []struct {
		state FlowState
		event FlowEvent
	}{
		{StateForm, EventVerified},
		{StateForm, EventSubmitCode},
		{StateRegistered, EventSendCode},
		{StateRegistered, EventRetry},
		{StateVerifying, EventSendCode},
	}
	for _, tc := range cases {
		next, err := tc.state.Advance(tc.event)
		if !errors.Is(err, ErrBadTransition) {
			t.Fatalf("%s on %s: expected ErrBadTransition, got %v", tc.event, tc.state, err)
		}
		if next != tc.state {
			t.Fatalf("illegal transition must not move state")
		}
	}
}

func TestFlowStrings(t *testing.T) {
	if StateVerifying.String() != "verifying" || EventRetry.String() != "retry" {
		t.Fatalf("unexpected string forms")
	}
	if FlowState(99).String() == "" || FlowEvent(99).String() == "" {
		t.Fatalf("unknown values should still stringify")
	}
}
