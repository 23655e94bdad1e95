package turnstile

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartsLocked(t *testing.T) {
	t.Parallel()

	gate, err := New()
	require.NoError(t, err)

	assert.True(t, gate.IsState(LockedCategory))
	assert.Equal(t, Locked, gate.CurrentState())
}

func TestInsertCoinUnlocks(t *testing.T) {
	t.Parallel()

	gate, err := New()
	require.NoError(t, err)

	require.NoError(t, gate.InsertCoin(context.Background()))

	unlocked, ok := gate.CurrentState().(*Unlocked)
	require.True(t, ok)
	assert.Equal(t, 1, unlocked.Credits)
}

func TestInsertCoinAccumulatesCredits(t *testing.T) {
	t.Parallel()

	gate, err := New()
	require.NoError(t, err)

	ctx := context.Background()

	for range 3 {
		require.NoError(t, gate.InsertCoin(ctx))
	}

	unlocked, ok := gate.CurrentState().(*Unlocked)
	require.True(t, ok)
	assert.Equal(t, 3, unlocked.Credits)
}

func TestPushWithOneCreditLocks(t *testing.T) {
	t.Parallel()

	gate, err := New()
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, gate.InsertCoin(ctx))

	opened, err := gate.Push(ctx)
	require.NoError(t, err)
	assert.True(t, opened)
	assert.True(t, gate.IsState(LockedCategory))
}

func TestPushWithSpareCreditsStaysUnlocked(t *testing.T) {
	t.Parallel()

	gate, err := New()
	require.NoError(t, err)

	ctx := context.Background()

	for range 3 {
		require.NoError(t, gate.InsertCoin(ctx))
	}

	opened, err := gate.Push(ctx)
	require.NoError(t, err)
	assert.True(t, opened)

	unlocked, ok := gate.CurrentState().(*Unlocked)
	require.True(t, ok)
	assert.Equal(t, 2, unlocked.Credits)
}

func TestPushWhileLockedDoesNothing(t *testing.T) {
	t.Parallel()

	gate, err := New()
	require.NoError(t, err)

	notified := 0
	gate.AddCallbackForAnything(func(_ context.Context, _, _ State) error {
		notified++

		return nil
	})

	opened, err := gate.Push(context.Background())
	require.NoError(t, err)
	assert.False(t, opened)
	assert.True(t, gate.IsState(LockedCategory))
	assert.Equal(t, 0, notified)
}

func TestSubscribersSeeEveryChange(t *testing.T) {
	t.Parallel()

	gate, err := New()
	require.NoError(t, err)

	var changes []string

	gate.AddCallbackForAnything(func(_ context.Context, from, to State) error {
		changes = append(changes, fmt.Sprintf("%v -> %v", from, to))

		return nil
	})

	ctx := context.Background()

	require.NoError(t, gate.InsertCoin(ctx))
	require.NoError(t, gate.InsertCoin(ctx))

	_, err = gate.Push(ctx)
	require.NoError(t, err)

	_, err = gate.Push(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Locked -> Unlocked (1 credits)",
		"Unlocked (1 credits) -> Unlocked (2 credits)",
		"Unlocked (2 credits) -> Unlocked (1 credits)",
		"Unlocked (1 credits) -> Locked",
	}, changes)
}
