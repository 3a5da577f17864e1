package provision

import (
	"context"
	"io"
	"time"

	"github.com/devstrap/devstrap/pkg/ui/notify"
)

// Runner executes provisioning steps strictly in order.
type Runner struct {
	writer io.Writer
}

// NewRunner creates a step runner that reports progress to the given writer.
func NewRunner(writer io.Writer) *Runner {
	return &Runner{writer: writer}
}

// Run evaluates each step in sequence: detect, then skip or install.
//
// A step failure is logged and recorded but never aborts the run; later steps
// still execute. Re-running against a host where every action already
// succeeded yields an all-Skipped report, provided the detectors are accurate.
func (r *Runner) Run(ctx context.Context, steps []Step) Report {
	report := Report{
		Results:   make([]StepResult, 0, len(steps)),
		StartedAt: time.Now(),
	}

	for _, step := range steps {
		report.Results = append(report.Results, r.runStep(ctx, step))
	}

	report.EndedAt = time.Now()

	return report
}

func (r *Runner) runStep(ctx context.Context, step Step) StepResult {
	start := time.Now()

	present := false

	if step.Detect != nil {
		var err error

		present, err = step.Detect(ctx)
		if err != nil {
			// A failing probe is indistinguishable from "not installed";
			// fall through to the action, which must itself be idempotent.
			notify.Warningf(r.writer, "%s: detection failed, assuming not present: %v", step.Name, err)

			present = false
		}
	}

	if present {
		notify.Infof(r.writer, "%s already present, skipping", step.Name)

		return StepResult{
			Name:     step.Name,
			Outcome:  Skipped,
			Duration: time.Since(start),
		}
	}

	notify.Activityf(r.writer, "installing %s", step.Name)

	err := step.Action(ctx)
	if err != nil {
		notify.Errorf(r.writer, "failed to install %s: %v", step.Name, err)

		return StepResult{
			Name:     step.Name,
			Outcome:  Failed,
			Duration: time.Since(start),
			Err:      err,
		}
	}

	notify.Successf(r.writer, "%s installed", step.Name)

	return StepResult{
		Name:     step.Name,
		Outcome:  Installed,
		Duration: time.Since(start),
	}
}
