package fsm

// rule is one entry in a machine's transition table: a pair of category
// filters, each possibly nil (wildcard). A concrete transition is legal
// iff at least one rule matches it; rules carry no precedence.
type rule struct {
	from *Category
	to   *Category
}

// matches reports whether the rule admits the concrete (from, to) pair.
func (r rule) matches(from, to State) bool {
	return from.Category().Satisfies(r.from) && to.Category().Satisfies(r.to)
}
