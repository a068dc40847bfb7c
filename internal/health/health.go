package health

// Package health tracks the reachability of the remote chat endpoint as a
// tri-state machine. It is fully event-driven: call outcomes flip the state,
// there are no timers and no hysteresis.

import (
	"sync"

	"github.com/qmuntal/stateless"

	"github.com/comigor/medchat-go/internal/logger"
)

// State is the tracked connection state.
type State stateless.State

var (
	StateUnknown State = "unknown"
	StateUp      State = "up"
	StateDown    State = "down"
)

// Triggers
type trigger stateless.Trigger

var (
	triggerSuccess trigger = "Success"
	triggerFailure trigger = "Failure"
	triggerReset   trigger = "Reset"
)

// Tracker is the process-wide connection health value. It is safe for
// concurrent use; updates are O(1) under a single mutex.
type Tracker struct {
	mu  sync.Mutex
	fsm *stateless.StateMachine
}

// NewTracker creates a tracker in the unknown state.
func NewTracker() *Tracker {
	fsm := stateless.NewStateMachine(StateUnknown)

	fsm.Configure(StateUnknown).
		Permit(triggerSuccess, StateUp).
		Permit(triggerFailure, StateDown).
		PermitReentry(triggerReset)

	fsm.Configure(StateUp).
		PermitReentry(triggerSuccess).
		Permit(triggerFailure, StateDown).
		Permit(triggerReset, StateUnknown)

	fsm.Configure(StateDown).
		Permit(triggerSuccess, StateUp).
		PermitReentry(triggerFailure).
		Permit(triggerReset, StateUnknown)

	return &Tracker{fsm: fsm}
}

// RecordSuccess flips the state to up. Any single success flips a down
// channel back up immediately.
func (t *Tracker) RecordSuccess() { t.fire(triggerSuccess) }

// RecordFailure flips the state to down.
func (t *Tracker) RecordFailure() { t.fire(triggerFailure) }

// Reset returns the state to unknown. Only the explicit user-triggered
// retry action calls this.
func (t *Tracker) Reset() { t.fire(triggerReset) }

// Current returns the current connection state.
func (t *Tracker) Current() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fsm.MustState().(State)
}

func (t *Tracker) fire(tr trigger) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.fsm.Fire(tr); err != nil {
		logger.L.Warn("health FSM fire error", "trigger", tr, "error", err)
	}
}
