package device

import (
	"errors"
	"fmt"
)

// Registration runs through a fixed flow: a verification code is sent to the
// device, the user submits it, and the result is either a registered device or
// a failure the user can retry from the form.
type FlowState int

const (
	StateForm FlowState = iota
	StateCodeSent
	StateVerifying
	StateRegistered
	StateFailed
)

func (s FlowState) String() string {
	switch s {
	case StateForm:
		return "form"
	case StateCodeSent:
		return "code_sent"
	case StateVerifying:
		return "verifying"
	case StateRegistered:
		return "registered"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("FlowState(%d)", int(s))
	}
}

type FlowEvent int

const (
	EventSendCode FlowEvent = iota
	EventSubmitCode
	EventVerified
	EventRejected
	EventRetry
)

func (e FlowEvent) String() string {
	switch e {
	case EventSendCode:
		return "send_code"
	case EventSubmitCode:
		return "submit_code"
	case EventVerified:
		return "verified"
	case EventRejected:
		return "rejected"
	case EventRetry:
		return "retry"
	default:
		return fmt.Sprintf("FlowEvent(%d)", int(e))
	}
}

var ErrBadTransition = errors.New("device: illegal flow transition")

var flowTransitions = map[FlowState]map[FlowEvent]FlowState{
	StateForm: {
		EventSendCode: StateCodeSent,
	},
	StateCodeSent: {
		EventSubmitCode: StateVerifying,
		EventSendCode:   StateCodeSent, // resend
	},
	StateVerifying: {
		EventVerified: StateRegistered,
		EventRejected: StateFailed,
	},
	StateFailed: {
		EventRetry: StateForm,
	},
}

// Advance returns the state after applying event, or ErrBadTransition when the
// event is not legal in the current state. Registered is terminal.
func (s FlowState) Advance(event FlowEvent) (FlowState, error) {
	next, ok := flowTransitions[s][event]
	if !ok {
		return s, fmt.Errorf("%w: %s on %s", ErrBadTransition, event, s)
	}
	return next, nil
}
