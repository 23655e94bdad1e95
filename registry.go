package fsm

import (
	"slices"

	"github.com/google/uuid"
)

// CallbackToken identifies a registered callback for the machine's
// lifetime. It is opaque and comparable; holding it is the only way to
// remove the subscription.
type CallbackToken struct {
	id string
}

// callbackEntry pairs a subscription's filter rule with its handler.
// Registration order is dispatch order within a drain step.
type callbackEntry[T State] struct {
	token    CallbackToken
	rule     rule
	callback Callback[T]
}

// AddCallback registers a handler invoked for every committed transition
// whose (from, to) categories satisfy the given filters. Either filter may
// be nil to match anything. Callbacks may be added at any time, including
// from inside another callback; the addition takes effect starting with
// the next drain step.
func (m *Machine[T]) AddCallback(from, to *Category, callback Callback[T]) CallbackToken {
	token := CallbackToken{id: uuid.NewString()}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callbackEntry[T]{
		token:    token,
		rule:     rule{from: from, to: to},
		callback: callback,
	})

	return token
}

// AddCallbackFromAnythingTo registers a handler for transitions into the
// to category from any state.
func (m *Machine[T]) AddCallbackFromAnythingTo(to *Category, callback Callback[T]) CallbackToken {
	return m.AddCallback(nil, to, callback)
}

// AddCallbackToAnythingFrom registers a handler for transitions out of the
// from category into any state.
func (m *Machine[T]) AddCallbackToAnythingFrom(from *Category, callback Callback[T]) CallbackToken {
	return m.AddCallback(from, nil, callback)
}

// AddCallbackForAnything registers a handler for every committed
// transition.
func (m *Machine[T]) AddCallbackForAnything(callback Callback[T]) CallbackToken {
	return m.AddCallback(nil, nil, callback)
}

// RemoveCallback removes the subscription identified by token. Removing an
// unknown or already-removed token is a no-op. A removal requested inside
// a callback takes effect starting with the next drain step.
func (m *Machine[T]) RemoveCallback(token CallbackToken) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = slices.DeleteFunc(m.callbacks, func(entry callbackEntry[T]) bool {
		return entry.token == token
	})
}
