package fsm

import (
	"errors"
	"fmt"
)

// Predefined error types.
var (
	// ErrNilState indicates a nil state value was passed where a state is
	// required. This is a programmer error, not a recoverable condition.
	ErrNilState = errors.New("nil state")
	// ErrInvalidTransition indicates the requested transition matches no
	// rule in the machine's transition table.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrContention indicates a transition was requested while another one
	// was already queued and not yet drained.
	ErrContention = errors.New("transition contention")
	// ErrBuilderConsumed indicates a builder was used after Build.
	ErrBuilderConsumed = errors.New("builder already consumed by Build")

	// ErrConfigNameRequired indicates that a configuration name is required.
	ErrConfigNameRequired = errors.New("config name is required")
	// ErrConfigTransitionsRequired indicates that a configuration declares no transitions.
	ErrConfigTransitionsRequired = errors.New("at least one transition is required")
	// ErrUnknownCategory indicates a config references a category name that
	// was never registered.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrDuplicateCategory indicates two categories were registered under
	// the same name.
	ErrDuplicateCategory = errors.New("duplicate category name")
)

// InvalidTransitionError reports a transition request that matched no rule.
type InvalidTransitionError struct {
	From State
	To   State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %v to %v", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ContentionError reports a transition requested while another was already
// queued. Current is the committed state at the time of the request, Queued
// the transition already waiting to drain, and Attempted the value this
// request tried to queue. The queued transition is unaffected and still
// drains.
type ContentionError struct {
	Current   State
	Queued    State
	Attempted State
}

func (e *ContentionError) Error() string {
	return fmt.Sprintf(
		"contention: state is %v, will be %v, but this caller is trying to change it to %v",
		e.Current, e.Queued, e.Attempted,
	)
}

func (e *ContentionError) Unwrap() error {
	return ErrContention
}
