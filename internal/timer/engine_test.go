package timer

import (
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)

func TestStopwatchStopCommitsElapsed(t *testing.T) {
	e := New(fixedClock(testNow))
	e.SetTarget("sub-1", "ch-1")

	e.Start()
	for i := 0; i < 90; i++ {
		if sess := e.Tick(); sess != nil {
			t.Fatal("stopwatch tick must never commit")
		}
	}

	sess := e.Stop()
	if sess == nil {
		t.Fatal("expected a committed session")
	}
	if sess.Duration != 90 {
		t.Errorf("duration = %d, want 90", sess.Duration)
	}
	if sess.SubjectID != "sub-1" || sess.ChapterID != "ch-1" {
		t.Errorf("target = %s/%s, want sub-1/ch-1", sess.SubjectID, sess.ChapterID)
	}
	if sess.Date != "2026-03-14" {
		t.Errorf("date = %s, want 2026-03-14", sess.Date)
	}
	if !sess.StartTime.Equal(testNow) {
		t.Errorf("startTime = %v, want recorded start %v", sess.StartTime, testNow)
	}
	if e.Elapsed() != 0 {
		t.Errorf("elapsed after stop = %d, want 0", e.Elapsed())
	}
	if sess.ID == "" {
		t.Error("session must carry an id")
	}
}

func TestStopwatchZeroElapsedStopCommitsNothing(t *testing.T) {
	e := New(fixedClock(testNow))
	if sess := e.Stop(); sess != nil {
		t.Fatal("zero-duration stop must not commit")
	}

	// Same after a start/pause with no ticks.
	e.Start()
	e.Pause()
	if sess := e.Stop(); sess != nil {
		t.Fatal("zero-duration stop after pause must not commit")
	}
}

func TestStopwatchPauseFreezesWithoutCommit(t *testing.T) {
	e := New(fixedClock(testNow))
	e.Start()
	for i := 0; i < 10; i++ {
		e.Tick()
	}
	e.Pause()
	if e.Elapsed() != 10 {
		t.Fatalf("elapsed = %d, want 10", e.Elapsed())
	}
	// Ticks while paused do nothing.
	e.Tick()
	if e.Elapsed() != 10 {
		t.Errorf("tick while paused advanced elapsed to %d", e.Elapsed())
	}

	e.Start()
	for i := 0; i < 5; i++ {
		e.Tick()
	}
	sess := e.Stop()
	if sess == nil || sess.Duration != 15 {
		t.Fatalf("resumed stop = %+v, want duration 15", sess)
	}
}

func TestPomodoroFocusCompletionCommitsFullBlock(t *testing.T) {
	e := New(fixedClock(testNow))
	e.SwitchMode(ModePomodoro)
	e.SetFocusMinutes(25)
	e.SetTarget("sub-2", "")
	e.Start()

	var committed int
	for i := 0; i < 25*60; i++ {
		if s := e.Tick(); s != nil {
			committed++
			if s.Duration != 25*60 {
				t.Errorf("duration = %d, want %d", s.Duration, 25*60)
			}
			if s.SubjectID != "sub-2" {
				t.Errorf("subject = %s, want sub-2", s.SubjectID)
			}
		}
	}
	if committed != 1 {
		t.Fatalf("committed %d sessions over one focus block, want 1", committed)
	}
	if e.Running() {
		t.Error("engine must auto-stop on phase completion")
	}
	if e.Phase() != PhaseShortBreak {
		t.Errorf("phase = %s, want shortBreak", e.Phase())
	}
	if e.Remaining() != ShortBreakSeconds {
		t.Errorf("remaining = %d, want %d", e.Remaining(), ShortBreakSeconds)
	}
}

func TestPomodoroManualStopCommitsNothing(t *testing.T) {
	e := New(fixedClock(testNow))
	e.SwitchMode(ModePomodoro)
	e.Start()
	for i := 0; i < 600; i++ {
		e.Tick()
	}
	if sess := e.Stop(); sess != nil {
		t.Fatal("manual pomodoro stop must not commit a partial block")
	}
	if e.Remaining() != e.FocusMinutes()*60 {
		t.Errorf("remaining = %d, want preloaded focus %d", e.Remaining(), e.FocusMinutes()*60)
	}
}

func TestPomodoroEveryFourthBlockRoutesToLongBreak(t *testing.T) {
	e := New(fixedClock(testNow))
	e.SwitchMode(ModePomodoro)
	e.SetFocusMinutes(25)

	runFocus := func() {
		e.Start()
		for e.Phase() == PhaseFocus && e.Running() {
			e.Tick()
		}
	}
	runBreak := func() {
		e.Start()
		for e.Phase() != PhaseFocus {
			e.Tick()
		}
	}

	for block := 1; block <= 8; block++ {
		runFocus()
		want := PhaseShortBreak
		if block%BlocksPerCycle == 0 {
			want = PhaseLongBreak
		}
		if e.Phase() != want {
			t.Fatalf("after block %d: phase = %s, want %s", block, e.Phase(), want)
		}
		if want == PhaseLongBreak && e.Remaining() != LongBreakSeconds {
			t.Errorf("long break remaining = %d, want %d", e.Remaining(), LongBreakSeconds)
		}
		runBreak()
		if e.Remaining() != 25*60 {
			t.Fatalf("after break %d: remaining = %d, want focus preload", block, e.Remaining())
		}
	}
}

func TestSetFocusMinutesWhileIdleRepreloads(t *testing.T) {
	e := New(fixedClock(testNow))
	e.SwitchMode(ModePomodoro)
	e.SetFocusMinutes(50)
	if e.Remaining() != 50*60 {
		t.Errorf("remaining = %d, want %d", e.Remaining(), 50*60)
	}

	// No retroactive effect while running.
	e.Start()
	e.Tick()
	e.SetFocusMinutes(100)
	if e.FocusMinutes() != 50 {
		t.Errorf("focusMinutes changed mid-run to %d", e.FocusMinutes())
	}
}

func TestSetFocusMinutesClamped(t *testing.T) {
	e := New(fixedClock(testNow))
	e.SwitchMode(ModePomodoro)
	e.SetFocusMinutes(5)
	if e.FocusMinutes() != MinFocusMinutes {
		t.Errorf("focusMinutes = %d, want clamped to %d", e.FocusMinutes(), MinFocusMinutes)
	}
	e.SetFocusMinutes(999)
	if e.FocusMinutes() != MaxFocusMinutes {
		t.Errorf("focusMinutes = %d, want clamped to %d", e.FocusMinutes(), MaxFocusMinutes)
	}
}

func TestSwitchModeAppliesStopContract(t *testing.T) {
	e := New(fixedClock(testNow))
	e.Start()
	for i := 0; i < 30; i++ {
		e.Tick()
	}

	sess := e.SwitchMode(ModePomodoro)
	if sess == nil || sess.Duration != 30 {
		t.Fatalf("switching away from a live stopwatch must commit; got %+v", sess)
	}
	if e.Mode() != ModePomodoro || e.Running() {
		t.Errorf("mode = %s running = %v, want idle pomodoro", e.Mode(), e.Running())
	}

	// Pomodoro -> stopwatch mid-focus discards.
	e.Start()
	for i := 0; i < 120; i++ {
		e.Tick()
	}
	if sess := e.SwitchMode(ModeStopwatch); sess != nil {
		t.Fatal("switching away from a partial focus block must not commit")
	}
	if e.Elapsed() != 0 {
		t.Errorf("elapsed = %d, want 0 after switch", e.Elapsed())
	}
}

func TestLiveSeconds(t *testing.T) {
	e := New(fixedClock(testNow))
	e.Start()
	for i := 0; i < 42; i++ {
		e.Tick()
	}
	if got := e.LiveSeconds(); got != 42 {
		t.Errorf("stopwatch live = %d, want 42", got)
	}

	e = New(fixedClock(testNow))
	e.SwitchMode(ModePomodoro)
	e.SetFocusMinutes(25)
	e.Start()
	for i := 0; i < 300; i++ {
		e.Tick()
	}
	if got := e.LiveSeconds(); got != 300 {
		t.Errorf("pomodoro live = %d, want 300", got)
	}
	e.Pause()
	if got := e.LiveSeconds(); got != 0 {
		t.Errorf("paused pomodoro live = %d, want 0", got)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		seconds int
		want    DayStatus
	}{
		{0, StatusFocusing},
		{MinGoalSeconds - 1, StatusFocusing},
		{MinGoalSeconds, StatusGoalMet},
		{MaxLimitSeconds, StatusGoalMet},
		{MaxLimitSeconds + 1, StatusOverLimit},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.seconds); got != tt.want {
			t.Errorf("StatusFor(%d) = %s, want %s", tt.seconds, got, tt.want)
		}
	}
}
