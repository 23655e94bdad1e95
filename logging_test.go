package fsm

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoggerSmoke(t *testing.T) {
	t.Parallel()

	machine := newLightMachine(t)
	machine.SetLogger(NewSlogLogger(slogt.New(t)))

	machine.AddCallbackForAnything(func(_ context.Context, _, _ *light) error {
		return nil
	})

	ctx := context.Background()

	require.NoError(t, machine.Transition(ctx, yellow()))
	require.ErrorIs(t, machine.Transition(ctx, yellow()), ErrInvalidTransition)
}

func TestLoggerOutput(t *testing.T) {
	t.Parallel()

	var buf strings.Builder

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	machine := newLightMachine(t)
	machine.SetLogger(NewSlogLogger(logger))

	machine.AddCallbackForAnything(func(_ context.Context, _, _ *light) error {
		return nil
	})

	ctx := context.Background()

	require.NoError(t, machine.Transition(ctx, yellow()))

	out := buf.String()
	assert.Contains(t, out, "Transition committed")
	assert.Contains(t, out, "machine=traffic-light")
	assert.Contains(t, out, "from=green")
	assert.Contains(t, out, "to=yellow")
	assert.Contains(t, out, "Callback completed")

	buf.Reset()

	require.ErrorIs(t, machine.Transition(ctx, yellow()), ErrInvalidTransition)
	assert.Contains(t, buf.String(), "Transition rejected")
}

func TestNilLoggerDisablesLogging(t *testing.T) {
	t.Parallel()

	machine := newLightMachine(t)
	machine.SetLogger(NewDefaultLogger())
	machine.SetLogger(nil)

	require.NoError(t, machine.Transition(context.Background(), yellow()))
}
