package fsm

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// Machine is a finite-state machine over state values of type T. It owns
// the current state, an at-most-one pending state, and the callback
// registry. Construct one through Builder.Build.
//
// Thread-safety model: a single mutex covers the current state, the
// pending slot, the transitioning flag, and the registry. The mutex is
// released while callbacks run, so a callback may call Transition (the
// request is queued into the pending slot and drained by the enclosing
// call) and may mutate the registry (the in-flight dispatch iterates a
// snapshot and is unaffected).
type Machine[T State] struct {
	name  string
	rules []rule

	mu            sync.Mutex
	current       T
	pending       T
	hasPending    bool
	transitioning bool
	callbacks     []callbackEntry[T]
	logger        Logger

	transitions atomic.Uint64
	contentions atomic.Uint64
}

// Name returns the machine's name as given to NewBuilder.
func (m *Machine[T]) Name() string {
	return m.name
}

// CurrentState returns the most recently committed state. It is never nil.
func (m *Machine[T]) CurrentState() T {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.current
}

// IsState reports whether the current state's category satisfies any of
// the given filters. With no filters it returns false.
func (m *Machine[T]) IsState(categories ...*Category) bool {
	m.mu.Lock()
	current := m.current
	m.mu.Unlock()

	for _, category := range categories {
		if current.Category().Satisfies(category) {
			return true
		}
	}

	return false
}

// IsNextStateQueued reports whether a transition is queued and not yet
// drained. This can only be observed true from inside a callback or from
// another goroutine while a drain is open.
func (m *Machine[T]) IsNextStateQueued() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.hasPending
}

// SetLogger installs a logger for transition and callback events. A nil
// logger disables logging.
func (m *Machine[T]) SetLogger(logger Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger = logger
}

// Stats holds cheap counters maintained by the machine.
type Stats struct {
	// Transitions is the number of committed transitions.
	Transitions uint64
	// Contentions is the number of requests rejected with ErrContention.
	Contentions uint64
}

// Stats returns a snapshot of the machine's counters without taking the
// machine lock.
func (m *Machine[T]) Stats() Stats {
	return Stats{
		Transitions: m.transitions.Load(),
		Contentions: m.contentions.Load(),
	}
}

// Transition requests a change to the given state. It validates the
// request against the rule table and queues it. Unless the call
// originates from inside a callback of an already-running drain, it also
// commits the change and dispatches matching callbacks before returning.
//
// The context is threaded through to callbacks, log lines, and trace
// spans; it is not used for cancellation. Transitions run to completion.
func (m *Machine[T]) Transition(ctx context.Context, to T) error {
	var zero T

	_, err := m.transition(ctx, zero, false, to)

	return err
}

// TransitionFrom is the guarded form of Transition: if from is not the
// current state (by identity) at the moment of the call, the request is a
// silent no-op and TransitionFrom returns false with no error, no
// mutation, and no callbacks.
func (m *Machine[T]) TransitionFrom(ctx context.Context, from, to T) (bool, error) {
	return m.transition(ctx, from, true, to)
}

func (m *Machine[T]) transition(ctx context.Context, from T, guarded bool, to T) (bool, error) {
	if any(to) == nil {
		return false, ErrNilState
	}

	m.mu.Lock()

	// Single-queue-depth policy: while a drain is open, only one
	// transition may be waiting in the pending slot.
	if m.transitioning && m.hasPending {
		err := &ContentionError{Current: m.current, Queued: m.pending, Attempted: to}
		logger := m.logger
		m.mu.Unlock()

		m.contentions.Inc()
		m.observeRejection(ctx, logger, rejectionContention, err)

		return false, err
	}

	if guarded && any(from) != any(m.current) {
		m.mu.Unlock()

		return false, nil
	}

	// Validate against the state that will be current when this
	// transition applies: the committed state as of right now.
	if !slices.ContainsFunc(m.rules, func(r rule) bool { return r.matches(m.current, to) }) {
		err := &InvalidTransitionError{From: m.current, To: to}
		logger := m.logger
		m.mu.Unlock()

		m.observeRejection(ctx, logger, rejectionInvalid, err)

		return false, err
	}

	m.pending = to
	m.hasPending = true

	// If a drain is already running, trust it to pick this up once the
	// current step's callbacks finish.
	if m.transitioning {
		m.mu.Unlock()

		return true, nil
	}

	// This call owns the drain.
	m.transitioning = true

	err := m.drain(ctx)

	m.transitioning = false

	if err != nil {
		// A failed callback aborts the drain. Committed states stay
		// committed; an undrained pending value is discarded.
		var zero T

		m.pending = zero
		m.hasPending = false
	}

	m.mu.Unlock()

	return err == nil, err
}

// drain repeatedly commits the pending state and dispatches matching
// callbacks until no pending transition remains. It is entered and exited
// with the machine lock held; the lock is released while callbacks run.
func (m *Machine[T]) drain(ctx context.Context) error {
	for m.hasPending {
		var zero T

		oldState := m.current
		newState := m.pending
		m.current = newState
		m.pending = zero
		m.hasPending = false

		// Dispatch iterates a point-in-time copy: registry mutations
		// requested inside a callback take effect starting with the next
		// step, never retroactively within this one.
		snapshot := slices.Clone(m.callbacks)
		logger := m.logger

		m.mu.Unlock()

		err := m.dispatch(ctx, logger, snapshot, oldState, newState)

		m.mu.Lock()

		if err != nil {
			return err
		}
	}

	return nil
}

// dispatch runs one drain step's callbacks, in registration order, for
// the committed (old, new) pair. Runs without the machine lock.
func (m *Machine[T]) dispatch(
	ctx context.Context,
	logger Logger,
	snapshot []callbackEntry[T],
	oldState, newState T,
) error {
	m.transitions.Inc()
	transitionsTotal.WithLabelValues(
		m.name,
		oldState.Category().Name(),
		newState.Category().Name(),
	).Inc()

	stepCtx, stepSpan := startStepSpan(ctx, m.name, oldState, newState)
	defer stepSpan.End()

	if logger != nil {
		logger.TransitionCommitted(stepCtx, m.name, oldState, newState)
	}

	for _, entry := range snapshot {
		if !entry.rule.matches(oldState, newState) {
			continue
		}

		cbCtx, cbSpan := startCallbackSpan(stepCtx, m.name, entry.rule)

		start := time.Now()
		err := entry.callback(cbCtx, oldState, newState)
		elapsed := time.Since(start)

		endCallbackSpan(cbSpan, err)

		callbackDuration.WithLabelValues(m.name, outcomeLabel(err)).Observe(elapsed.Seconds())

		if logger != nil {
			logger.CallbackCompleted(cbCtx, m.name, oldState, newState, elapsed, err)
		}

		if err != nil {
			endStepSpanError(stepSpan, err)

			return err
		}
	}

	return nil
}

// observeRejection records a rejected transition request in metrics and
// the log. Runs without the machine lock.
func (m *Machine[T]) observeRejection(ctx context.Context, logger Logger, reason string, err error) {
	rejectionsTotal.WithLabelValues(m.name, reason).Inc()

	if logger != nil {
		logger.TransitionRejected(ctx, m.name, err)
	}
}
