// Package timer implements the interval timer state machine that alternates
// between work and break phases while tracking active time across
// pause/resume cycles.
//
// Elapsed time is computed purely from timestamp deltas: the timer banks
// active time into an accumulator on every pause/resume boundary and keeps a
// live phase-start marker for the current running interval. Irregular or
// delayed polling therefore never accumulates drift.
package timer

import "time"

// Phase identifies which configured duration applies.
type Phase int

const (
	PhaseWork Phase = iota
	PhaseBreak
)

func (p Phase) String() string {
	if p == PhaseBreak {
		return "break"
	}
	return "work"
}

// RunState reports whether the phase clock is advancing.
type RunState int

const (
	StateStopped RunState = iota
	StateRunning
	StatePaused
)

func (s RunState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "stopped"
	}
}

// Timer is a single-session interval timer. It is exclusively owned by one
// driving loop; methods are not safe for concurrent use.
//
// Commands that would be invalid in the current state are no-ops rather than
// errors, so an event loop can forward key presses without pre-validating
// state. Each command reports whether the transition was applied.
type Timer struct {
	workTotal  time.Duration
	breakTotal time.Duration
	clock      Clock

	phase       Phase
	state       RunState
	phaseStart  time.Time // start of the current running interval, zero when unset
	pausedAt    time.Time // set only while paused
	accumulated time.Duration
}

// New creates a stopped timer in the work phase using the system clock.
func New(workTotal, breakTotal time.Duration) *Timer {
	return NewWithClock(workTotal, breakTotal, SystemClock)
}

// NewWithClock creates a timer with an injected clock for deterministic tests.
func NewWithClock(workTotal, breakTotal time.Duration, clock Clock) *Timer {
	return &Timer{
		workTotal:  workTotal,
		breakTotal: breakTotal,
		clock:      clock,
		phase:      PhaseWork,
		state:      StateStopped,
	}
}

// Start begins a fresh measurement window from any state. Prior accumulation
// in the phase is discarded: this is a hard restart of the phase clock, not
// a resume.
func (t *Timer) Start() bool {
	t.phaseStart = t.clock.Now()
	t.pausedAt = time.Time{}
	t.accumulated = 0
	t.state = StateRunning
	return true
}

// Pause freezes the phase clock. No-op unless running.
func (t *Timer) Pause() bool {
	if t.state != StateRunning {
		return false
	}
	t.pausedAt = t.clock.Now()
	t.state = StatePaused
	return true
}

// Resume continues the phase clock after a pause, excluding the paused
// wall-clock time from elapsed. No-op unless paused.
func (t *Timer) Resume() bool {
	if t.state != StatePaused {
		return false
	}
	t.accumulated += t.pausedAt.Sub(t.phaseStart)
	t.phaseStart = t.clock.Now()
	t.pausedAt = time.Time{}
	t.state = StateRunning
	return true
}

// Reset rearms the phase clock at the current instant and zeroes accumulated
// time. A running or paused timer comes back running; a stopped timer stays
// stopped with its clock fields rearmed, mirroring a freshly created timer
// that was reset before ever starting.
func (t *Timer) Reset() bool {
	t.phaseStart = t.clock.Now()
	t.pausedAt = time.Time{}
	t.accumulated = 0
	if t.state != StateStopped {
		t.state = StateRunning
	}
	return true
}

// SwitchToWork enters the work phase and rearms the clock as Reset does.
func (t *Timer) SwitchToWork() bool {
	t.phase = PhaseWork
	return t.Reset()
}

// SwitchToBreak enters the break phase and rearms the clock as Reset does.
func (t *Timer) SwitchToBreak() bool {
	t.phase = PhaseBreak
	return t.Reset()
}

// Elapsed returns the active time in the current phase. It advances while
// running, is frozen while paused, and excludes all paused wall-clock time.
func (t *Timer) Elapsed() time.Duration {
	switch {
	case t.state == StateRunning && !t.phaseStart.IsZero():
		return t.accumulated + t.clock.Now().Sub(t.phaseStart)
	case t.state == StatePaused && !t.phaseStart.IsZero():
		return t.accumulated + t.pausedAt.Sub(t.phaseStart)
	default:
		return t.accumulated
	}
}

// TotalTime returns the configured duration of the current phase.
func (t *Timer) TotalTime() time.Duration {
	if t.phase == PhaseBreak {
		return t.breakTotal
	}
	return t.workTotal
}

// Remaining returns the time left in the current phase, never negative.
func (t *Timer) Remaining() time.Duration {
	remaining := t.TotalTime() - t.Elapsed()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsComplete reports whether elapsed active time has reached the phase total.
func (t *Timer) IsComplete() bool {
	return t.Elapsed() >= t.TotalTime()
}

// Phase returns the current phase.
func (t *Timer) Phase() Phase { return t.phase }

// State returns the current run state.
func (t *Timer) State() RunState { return t.state }
