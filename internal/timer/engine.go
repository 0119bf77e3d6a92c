// Package timer implements the study timer state machine. The engine is
// pure: it holds only the in-progress run (mode, phase, counters) and hands
// finished sessions back to the caller, which owns the session log. One
// Tick call per second drives all transitions; nothing here blocks.
package timer

import (
	"time"

	"github.com/google/uuid"

	"github.com/anik54992/eduboost/internal/study"
)

// Mode selects how the timer counts.
type Mode string

const (
	ModeStopwatch Mode = "stopwatch"
	ModePomodoro  Mode = "pomodoro"
)

// Phase is the Pomodoro cycle position. Orthogonal to running/paused.
type Phase string

const (
	PhaseFocus      Phase = "focus"
	PhaseShortBreak Phase = "shortBreak"
	PhaseLongBreak  Phase = "longBreak"
)

const (
	DefaultFocusMinutes = 25
	MinFocusMinutes     = 25
	MaxFocusMinutes     = 180

	ShortBreakSeconds = 5 * 60
	LongBreakSeconds  = 15 * 60

	// BlocksPerCycle focus completions route to a long break.
	BlocksPerCycle = 4

	// MinGoalSeconds and MaxLimitSeconds bound the daily status label.
	// Crossing the limit is informational only.
	MinGoalSeconds  = 6 * 3600
	MaxLimitSeconds = 16 * 3600
)

// Engine is the timer state machine. Not safe for concurrent use; the
// bubbletea event loop is the single caller.
type Engine struct {
	mode    Mode
	phase   Phase
	running bool

	// elapsed counts up in stopwatch mode; remaining counts down in
	// pomodoro mode. Only one is meaningful at a time.
	elapsed   int
	remaining int

	focusMinutes int
	focusCount   int

	subjectID string
	chapterID string

	startTime time.Time // zero when no run has started

	now func() time.Time
}

// New returns an idle stopwatch engine. The clock defaults to time.Now.
func New(clock func() time.Time) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		mode:         ModeStopwatch,
		phase:        PhaseFocus,
		focusMinutes: DefaultFocusMinutes,
		now:          clock,
	}
}

func (e *Engine) Mode() Mode         { return e.mode }
func (e *Engine) Phase() Phase       { return e.phase }
func (e *Engine) Running() bool      { return e.running }
func (e *Engine) Elapsed() int       { return e.elapsed }
func (e *Engine) Remaining() int     { return e.remaining }
func (e *Engine) FocusMinutes() int  { return e.focusMinutes }
func (e *Engine) FocusCount() int    { return e.focusCount }
func (e *Engine) SubjectID() string  { return e.subjectID }
func (e *Engine) ChapterID() string  { return e.chapterID }

// SetTarget selects the subject/chapter the next committed session is
// attributed to. Ignored while running.
func (e *Engine) SetTarget(subjectID, chapterID string) {
	if e.running {
		return
	}
	e.subjectID = subjectID
	e.chapterID = chapterID
}

// SetFocusMinutes adjusts the Pomodoro focus length. Changes while running
// are ignored; changes while idle in the focus phase re-preload the
// countdown immediately. Mid-break changes take effect on the next focus.
func (e *Engine) SetFocusMinutes(minutes int) {
	if e.running {
		return
	}
	if minutes < MinFocusMinutes {
		minutes = MinFocusMinutes
	}
	if minutes > MaxFocusMinutes {
		minutes = MaxFocusMinutes
	}
	e.focusMinutes = minutes
	if e.mode == ModePomodoro && e.phase == PhaseFocus {
		e.remaining = minutes * 60
	}
}

// Start begins or resumes the current run. Stopwatch runs always record a
// fresh start timestamp; Pomodoro records one only at the start of a focus
// phase, so the committed session points at the phase start.
func (e *Engine) Start() {
	if e.running {
		return
	}
	switch e.mode {
	case ModeStopwatch:
		e.startTime = e.now()
	case ModePomodoro:
		if e.phase == PhaseFocus && e.startTime.IsZero() {
			e.startTime = e.now()
		}
	}
	e.running = true
}

// Pause freezes the run without committing anything.
func (e *Engine) Pause() {
	e.running = false
}

// Toggle flips between running and paused.
func (e *Engine) Toggle() {
	if e.running {
		e.Pause()
	} else {
		e.Start()
	}
}

// Tick advances one second. It returns a committed session when a Pomodoro
// focus phase completes on this tick, nil otherwise. No-op unless running.
func (e *Engine) Tick() *study.Session {
	if !e.running {
		return nil
	}
	if e.mode == ModeStopwatch {
		e.elapsed++
		return nil
	}

	e.remaining--
	if e.remaining > 0 {
		return nil
	}
	return e.completePhase()
}

// completePhase handles a countdown reaching zero. Focus completions commit
// exactly the configured focus duration; break completions commit nothing.
// The engine auto-stops either way and the user restarts manually.
func (e *Engine) completePhase() *study.Session {
	e.running = false

	if e.phase != PhaseFocus {
		e.phase = PhaseFocus
		e.remaining = e.focusMinutes * 60
		return nil
	}

	sess := e.commit(e.focusMinutes * 60)
	e.focusCount++
	if e.focusCount%BlocksPerCycle == 0 {
		e.phase = PhaseLongBreak
		e.remaining = LongBreakSeconds
	} else {
		e.phase = PhaseShortBreak
		e.remaining = ShortBreakSeconds
	}
	e.startTime = time.Time{}
	return sess
}

// Stop ends the current run. In stopwatch mode a nonzero elapsed count is
// committed as one session; zero elapsed commits nothing. In Pomodoro mode
// Stop never commits a partial block. Either way the engine resets to the
// start of its mode.
func (e *Engine) Stop() *study.Session {
	var sess *study.Session
	if e.mode == ModeStopwatch && e.elapsed > 0 {
		sess = e.commit(e.elapsed)
	}

	e.running = false
	e.elapsed = 0
	e.phase = PhaseFocus
	if e.mode == ModePomodoro {
		e.remaining = e.focusMinutes * 60
	} else {
		e.remaining = 0
	}
	e.startTime = time.Time{}
	return sess
}

// SwitchMode stops the current run (committing per the Stop contract) and
// switches modes. The UI is responsible for confirming the switch when a
// run is active.
func (e *Engine) SwitchMode(mode Mode) *study.Session {
	sess := e.Stop()
	e.mode = mode
	if mode == ModePomodoro {
		e.phase = PhaseFocus
		e.remaining = e.focusMinutes * 60
	} else {
		e.elapsed = 0
	}
	return sess
}

// commit builds an immutable session record for duration seconds ending now.
func (e *Engine) commit(duration int) *study.Session {
	now := e.now()
	start := e.startTime
	if start.IsZero() {
		start = now.Add(-time.Duration(duration) * time.Second)
	}
	return &study.Session{
		ID:        uuid.New().String(),
		SubjectID: e.subjectID,
		ChapterID: e.chapterID,
		StartTime: start,
		Duration:  duration,
		Date:      study.DateOf(now),
	}
}

// LiveSeconds is the in-flight time of the current run, for display only:
// stopwatch elapsed, or the consumed part of a running focus phase. Breaks
// and paused Pomodoro phases contribute nothing.
func (e *Engine) LiveSeconds() int {
	switch e.mode {
	case ModeStopwatch:
		return e.elapsed
	case ModePomodoro:
		if e.phase == PhaseFocus && e.running {
			return e.focusMinutes*60 - e.remaining
		}
	}
	return 0
}

// DayStatus labels the running daily total against the goal and limit
// thresholds. Never blocking.
type DayStatus string

const (
	StatusFocusing  DayStatus = "Focusing..."
	StatusGoalMet   DayStatus = "Goal Met!"
	StatusOverLimit DayStatus = "Limit Reached"
)

// StatusFor maps total seconds studied today (committed + live) to a label.
func StatusFor(totalSeconds int) DayStatus {
	switch {
	case totalSeconds > MaxLimitSeconds:
		return StatusOverLimit
	case totalSeconds >= MinGoalSeconds:
		return StatusGoalMet
	default:
		return StatusFocusing
	}
}
