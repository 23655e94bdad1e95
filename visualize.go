package fsm

import (
	"fmt"
	"strings"
)

// DOT renders the machine's rule table as a Graphviz digraph. Wildcard
// filters are rendered as a distinct "any" node. Useful for documenting
// the declared transition graph; the output is stable across calls since
// the rule table is immutable.
func (m *Machine[T]) DOT() string {
	var b strings.Builder

	fmt.Fprintf(&b, "digraph %q {\n", m.name)
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box, style=rounded];\n")

	for _, r := range m.rules {
		if r.from == nil || r.to == nil {
			b.WriteString("  \"any\" [shape=ellipse, style=dashed];\n")

			break
		}
	}

	seen := make(map[string]struct{}, len(m.rules))

	for _, r := range m.rules {
		edge := fmt.Sprintf("  %q -> %q;\n", filterName(r.from), filterName(r.to))
		if _, dup := seen[edge]; dup {
			continue
		}

		seen[edge] = struct{}{}
		b.WriteString(edge)
	}

	b.WriteString("}\n")

	return b.String()
}
