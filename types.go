package fsm

import "context"

// State is implemented by every state value handed to a Machine. The
// machine never inspects a value beyond its category tag.
type State interface {
	Category() *Category
}

// Callback receives the committed (from, to) pair for a transition whose
// categories match the subscription's filters. Returning an error aborts
// the drain and propagates out of the Transition call that owns it.
type Callback[T State] func(ctx context.Context, from, to T) error

// Arrival adapts a handler that only cares about the new state.
func Arrival[T State](fn func(ctx context.Context, to T) error) Callback[T] {
	return func(ctx context.Context, _, to T) error {
		return fn(ctx, to)
	}
}

// Notification adapts a handler that ignores both state values.
func Notification[T State](fn func(ctx context.Context) error) Callback[T] {
	return func(ctx context.Context, _, _ T) error {
		return fn(ctx)
	}
}
