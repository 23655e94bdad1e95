// Package trafficlight declares the traffic-light state set used in the
// fsm documentation and tests: a standard Green→Yellow→Red cycle and a
// "European" variant whose rule table is built from wildcards.
package trafficlight

import (
	"fmt"
	"time"

	"github.com/amp-labs/fsm"
)

// Light categories.
var (
	Green  = fsm.NewCategory("green")
	Yellow = fsm.NewCategory("yellow")
	Red    = fsm.NewCategory("red")
)

// Light is the closed set of traffic-light states.
type Light interface {
	fsm.State
	isLight()
}

// steady is a zero-payload light. The package-level singletons below are
// the only instances; pass those to Transition rather than allocating
// fresh ones.
type steady struct {
	category *fsm.Category
}

func (s steady) Category() *fsm.Category {
	return s.category
}

func (s steady) isLight() {}

func (s steady) String() string {
	return s.category.Name()
}

// Steady lights, one singleton per category.
var (
	SteadyGreen  Light = steady{category: Green}
	SteadyYellow Light = steady{category: Yellow}
	SteadyRed    Light = steady{category: Red}
)

// FlashingYellow is a Yellow-category light with a payload: the flash
// interval. European lights flash yellow during the red→green handover,
// so a machine can transition from one Yellow value to a fresh one.
type FlashingYellow struct {
	Interval time.Duration
}

func (f *FlashingYellow) Category() *fsm.Category {
	return Yellow
}

func (f *FlashingYellow) isLight() {}

func (f *FlashingYellow) String() string {
	return fmt.Sprintf("yellow (flashing every %s)", f.Interval)
}

// NewMachine builds the standard cycle: Green→Yellow, Yellow→Red,
// Red→Green, starting at green.
func NewMachine() (*fsm.Machine[Light], error) {
	return fsm.NewBuilder[Light]("traffic-light").
		AddTransition(Green, Yellow).
		AddTransition(Yellow, Red).
		AddTransition(Red, Green).
		Build(SteadyGreen)
}

// NewEuropeanMachine builds the wildcard variant: anything may turn
// yellow, and yellow may turn into anything. Note that Yellow→Yellow is
// covered by both rules, so replacing a yellow light with a fresh yellow
// value is legal here, unlike in the standard cycle.
func NewEuropeanMachine(initial Light) (*fsm.Machine[Light], error) {
	return fsm.NewBuilder[Light]("european-traffic-light").
		AddTransitionFromAnythingTo(Yellow).
		AddTransitionToAnythingFrom(Yellow).
		Build(initial)
}
