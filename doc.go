// Package fsm provides a generic, type-validated finite-state-machine
// engine. Callers declare a closed set of state categories, a table of
// legal category-to-category transitions, and an initial state; the
// machine then accepts transition requests, rejects illegal ones,
// serializes concurrent requests, and notifies subscribers in insertion
// order. This holds even when a transition is requested from inside a
// callback triggered by another transition.
//
// The usual shape of a machine:
//
//	var (
//		Green  = fsm.NewCategory("green")
//		Yellow = fsm.NewCategory("yellow")
//		Red    = fsm.NewCategory("red")
//	)
//
//	machine, err := fsm.NewBuilder[Light]("traffic-light").
//		AddTransition(Green, Yellow).
//		AddTransition(Yellow, Red).
//		AddTransition(Red, Green).
//		Build(greenLight{})
//
// A transition requested from inside a callback is queued into a single
// pending slot and drained by the enclosing Transition call once the
// current step's callbacks finish. Only one transition may be pending at
// a time; a second request while one is queued fails with a
// ContentionError.
package fsm
