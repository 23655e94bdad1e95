// Package turnstile implements the classic coin-operated turnstile on top
// of an fsm.Machine, demonstrating the read-only facade pattern: callers
// can query state and subscribe to changes, but mutations only happen
// through the Push and InsertCoin business actions.
package turnstile

import (
	"context"
	"fmt"

	"github.com/amp-labs/fsm"
)

// Turnstile state categories.
var (
	LockedCategory   = fsm.NewCategory("locked")
	UnlockedCategory = fsm.NewCategory("unlocked")
)

// State is the closed set of turnstile states.
type State interface {
	fsm.State
	isTurnstile()
}

type lockedState struct{}

func (lockedState) Category() *fsm.Category {
	return LockedCategory
}

func (lockedState) isTurnstile() {}

func (lockedState) String() string {
	return "Locked"
}

// Locked is the zero-payload locked state. It is a package singleton;
// there is never a reason to allocate another one.
var Locked State = lockedState{}

// Unlocked is the unlocked state, carrying the number of credits left.
type Unlocked struct {
	Credits int
}

func (u *Unlocked) Category() *fsm.Category {
	return UnlockedCategory
}

func (u *Unlocked) isTurnstile() {}

func (u *Unlocked) String() string {
	return fmt.Sprintf("Unlocked (%d credits)", u.Credits)
}

// Turnstile is a turnstile that accepts coins for credit. Pushing through
// it consumes one credit; it locks when credits run out.
//
// The embedded facade exposes queries and subscriptions; the machine
// itself stays unexported so callers cannot request transitions that
// bypass the credit-counting rules.
type Turnstile struct {
	*fsm.ReadOnly[State]

	machine *fsm.Machine[State]
}

// New creates a locked turnstile.
func New() (*Turnstile, error) {
	// Unlocked→Unlocked must be declared explicitly, as otherwise adding
	// a coin to an already-unlocked turnstile would be rejected.
	machine, err := fsm.NewBuilder[State]("turnstile").
		AddTransition(LockedCategory, UnlockedCategory).
		AddTransition(UnlockedCategory, LockedCategory).
		AddTransition(UnlockedCategory, UnlockedCategory).
		Build(Locked)
	if err != nil {
		return nil, err
	}

	return &Turnstile{
		ReadOnly: fsm.NewReadOnly(machine),
		machine:  machine,
	}, nil
}

// Push is the user pushing on the turnstile arm. It reports whether the
// user was let through; pushing a locked turnstile does nothing.
func (t *Turnstile) Push(ctx context.Context) (bool, error) {
	unlocked, ok := t.machine.CurrentState().(*Unlocked)
	if !ok {
		return false, nil
	}

	if unlocked.Credits <= 1 {
		return true, t.machine.Transition(ctx, Locked)
	}

	return true, t.machine.Transition(ctx, &Unlocked{Credits: unlocked.Credits - 1})
}

// InsertCoin adds one credit, unlocking the turnstile if it was locked.
func (t *Turnstile) InsertCoin(ctx context.Context) error {
	credits := 0
	if unlocked, ok := t.machine.CurrentState().(*Unlocked); ok {
		credits = unlocked.Credits
	}

	return t.machine.Transition(ctx, &Unlocked{Credits: credits + 1})
}
