package fsm

import "slices"

// Builder provides a fluent API for declaring a machine's transition
// table. Rules only ever accumulate; the table becomes immutable once
// Build is called.
type Builder[T State] struct {
	name     string
	rules    []rule
	consumed bool
}

// NewBuilder creates a builder for a machine with the given name. The name
// labels log lines, metrics, and trace spans for this machine.
func NewBuilder[T State](name string) *Builder[T] {
	return &Builder[T]{
		name:  name,
		rules: []rule{},
	}
}

// AddTransition declares that values of the from category may transition
// to values of the to category. A nil filter matches anything; prefer the
// named wildcard variants for readability. Self-category transitions are
// not implied and must be declared explicitly.
func (b *Builder[T]) AddTransition(from, to *Category) *Builder[T] {
	b.rules = append(b.rules, rule{from: from, to: to})

	return b
}

// AddTransitionFromAnythingTo declares that any state may transition to
// values of the to category.
func (b *Builder[T]) AddTransitionFromAnythingTo(to *Category) *Builder[T] {
	return b.AddTransition(nil, to)
}

// AddTransitionToAnythingFrom declares that values of the from category
// may transition to any state.
func (b *Builder[T]) AddTransitionToAnythingFrom(from *Category) *Builder[T] {
	return b.AddTransition(from, nil)
}

// MakeAllTransitionsValid discards all declared rules and installs a
// single any→any rule.
func (b *Builder[T]) MakeAllTransitionsValid() *Builder[T] {
	b.rules = b.rules[:0]

	return b.AddTransition(nil, nil)
}

// Build consumes the builder and returns a machine holding an immutable
// copy of the rule table and the given initial state. The builder cannot
// be reused afterwards.
func (b *Builder[T]) Build(initial T) (*Machine[T], error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}

	if any(initial) == nil {
		return nil, ErrNilState
	}

	b.consumed = true

	return &Machine[T]{
		name:    b.name,
		rules:   slices.Clone(b.rules),
		current: initial,
	}, nil
}
