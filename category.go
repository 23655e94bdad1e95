package fsm

// Category identifies which variant a state value belongs to. Categories
// are declared statically, once per variant, by the package that owns the
// state type. A category may declare that it satisfies other, more general
// capability categories; the transitive closure is computed at declaration
// time so that rule matching never needs reflection.
type Category struct {
	name    string
	closure map[*Category]struct{}
}

// NewCategory declares a category. The optional satisfies list names the
// capability categories this one also fulfils (and, transitively, whatever
// those fulfil). Categories are compared by identity; declare each one
// exactly once, as a package-level variable.
func NewCategory(name string, satisfies ...*Category) *Category {
	c := &Category{
		name:    name,
		closure: make(map[*Category]struct{}, len(satisfies)),
	}

	for _, parent := range satisfies {
		c.closure[parent] = struct{}{}

		for ancestor := range parent.closure {
			c.closure[ancestor] = struct{}{}
		}
	}

	return c
}

// Satisfies reports whether a value of this category passes the given
// filter. A nil filter means "anything" and always passes.
func (c *Category) Satisfies(filter *Category) bool {
	if filter == nil {
		return true
	}

	if c == filter {
		return true
	}

	_, ok := c.closure[filter]

	return ok
}

// Name returns the category's declared name.
func (c *Category) Name() string {
	return c.name
}

func (c *Category) String() string {
	return c.name
}

// filterName renders a filter for log lines, metric labels, and DOT
// output, with nil standing in for the wildcard.
func filterName(filter *Category) string {
	if filter == nil {
		return "any"
	}

	return filter.name
}
