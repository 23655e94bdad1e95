package fsm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test categories: a small traffic light plus a capability used by the
// matcher tests.
var (
	catLit    = NewCategory("lit")
	catGreen  = NewCategory("green", catLit)
	catYellow = NewCategory("yellow", catLit)
	catRed    = NewCategory("red", catLit)
)

// light is the test state type. Pointer values give each instance its own
// identity, matching how payload-carrying states behave in real domains.
type light struct {
	category *Category
	label    string
}

func (l *light) Category() *Category {
	return l.category
}

func (l *light) String() string {
	return l.label
}

func green() *light  { return &light{category: catGreen, label: "green"} }
func yellow() *light { return &light{category: catYellow, label: "yellow"} }
func red() *light    { return &light{category: catRed, label: "red"} }

// newLightMachine builds the standard green→yellow→red→green cycle
// starting at green.
func newLightMachine(t *testing.T) *Machine[*light] {
	t.Helper()

	machine, err := NewBuilder[*light]("traffic-light").
		AddTransition(catGreen, catYellow).
		AddTransition(catYellow, catRed).
		AddTransition(catRed, catGreen).
		Build(green())
	require.NoError(t, err)

	return machine
}

// newOpenMachine builds a machine that accepts every transition.
func newOpenMachine(t *testing.T) *Machine[*light] {
	t.Helper()

	machine, err := NewBuilder[*light]("open").
		MakeAllTransitionsValid().
		Build(green())
	require.NoError(t, err)

	return machine
}
