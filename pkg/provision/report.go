package provision

import (
	"time"
)

// StepResult holds the outcome of executing a single step.
type StepResult struct {
	Name     string
	Outcome  Outcome
	Duration time.Duration
	Err      error
}

// Report aggregates the outcomes of a full provisioning run.
type Report struct {
	Results   []StepResult
	StartedAt time.Time
	EndedAt   time.Time
}

// Failed returns the results of all steps whose action errored.
func (r Report) Failed() []StepResult {
	var failed []StepResult

	for _, result := range r.Results {
		if result.Outcome == Failed {
			failed = append(failed, result)
		}
	}

	return failed
}

// Counts tallies the results by outcome.
func (r Report) Counts() (int, int, int) {
	var skipped, installed, failed int

	for _, result := range r.Results {
		switch result.Outcome {
		case Skipped:
			skipped++
		case Installed:
			installed++
		case Failed:
			failed++
		}
	}

	return skipped, installed, failed
}
