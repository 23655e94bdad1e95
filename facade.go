package fsm

// Readable is the query-and-subscribe surface of a machine, without
// Transition. Hand one to callers that may observe state changes but must
// not cause them. Both *Machine[T] and *ReadOnly[T] implement it.
type Readable[T State] interface {
	CurrentState() T
	IsState(categories ...*Category) bool
	IsNextStateQueued() bool
	AddCallback(from, to *Category, callback Callback[T]) CallbackToken
	AddCallbackFromAnythingTo(to *Category, callback Callback[T]) CallbackToken
	AddCallbackToAnythingFrom(from *Category, callback Callback[T]) CallbackToken
	AddCallbackForAnything(callback Callback[T]) CallbackToken
	RemoveCallback(token CallbackToken)
}

// ReadOnly wraps a machine and exposes everything except Transition. It is
// pure delegation: no independent state, no additional invariants.
//
// Business-logic types embed a *ReadOnly and keep the *Machine in an
// unexported field, so external callers can query and subscribe while
// state changes go through the type's own action methods. See the
// turnstile package for the pattern.
type ReadOnly[T State] struct {
	machine *Machine[T]
}

// NewReadOnly wraps the given machine in a read-only facade.
func NewReadOnly[T State](machine *Machine[T]) *ReadOnly[T] {
	return &ReadOnly[T]{
		machine: machine,
	}
}

func (r *ReadOnly[T]) CurrentState() T {
	return r.machine.CurrentState()
}

func (r *ReadOnly[T]) IsState(categories ...*Category) bool {
	return r.machine.IsState(categories...)
}

func (r *ReadOnly[T]) IsNextStateQueued() bool {
	return r.machine.IsNextStateQueued()
}

func (r *ReadOnly[T]) AddCallback(from, to *Category, callback Callback[T]) CallbackToken {
	return r.machine.AddCallback(from, to, callback)
}

func (r *ReadOnly[T]) AddCallbackFromAnythingTo(to *Category, callback Callback[T]) CallbackToken {
	return r.machine.AddCallbackFromAnythingTo(to, callback)
}

func (r *ReadOnly[T]) AddCallbackToAnythingFrom(from *Category, callback Callback[T]) CallbackToken {
	return r.machine.AddCallbackToAnythingFrom(from, callback)
}

func (r *ReadOnly[T]) AddCallbackForAnything(callback Callback[T]) CallbackToken {
	return r.machine.AddCallbackForAnything(callback)
}

func (r *ReadOnly[T]) RemoveCallback(token CallbackToken) {
	r.machine.RemoveCallback(token)
}
