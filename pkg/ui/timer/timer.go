// Package timer provides simple wall-clock tracking for multi-stage command runs.
package timer

import "time"

// Timer tracks the total duration of a run and the duration of the current stage.
type Timer interface {
	// Start begins tracking. Calling Start again resets the timer.
	Start()

	// NewStage marks the beginning of a new stage, ending the previous one.
	NewStage()

	// GetTiming returns the total elapsed duration and the elapsed duration
	// of the current stage.
	GetTiming() (time.Duration, time.Duration)
}

// New creates a Timer backed by the system clock.
func New() Timer {
	return &clockTimer{}
}

type clockTimer struct {
	start time.Time
	stage time.Time
}

func (t *clockTimer) Start() {
	now := time.Now()
	t.start = now
	t.stage = now
}

func (t *clockTimer) NewStage() {
	if t.start.IsZero() {
		t.Start()

		return
	}

	t.stage = time.Now()
}

func (t *clockTimer) GetTiming() (time.Duration, time.Duration) {
	if t.start.IsZero() {
		return 0, 0
	}

	now := time.Now()

	return now.Sub(t.start).Round(time.Millisecond), now.Sub(t.stage).Round(time.Millisecond)
}
