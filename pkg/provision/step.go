package provision

import "context"

// Step is a single unit of idempotent provisioning work.
type Step struct {
	// Name is the display name of the step (e.g., "node", "kubectl").
	Name string

	// Detect reports whether the step's effect is already present on the
	// host. A true result skips the action. A nil Detect always runs the
	// action. Detect errors are treated as "not present" so a broken probe
	// degrades to a redundant install rather than a missed one.
	Detect func(ctx context.Context) (bool, error)

	// Action performs the installation. Failures are recorded, not fatal.
	Action func(ctx context.Context) error
}

// Outcome is the terminal state of a single step.
type Outcome int

const (
	// Skipped means the detector found the step's effect already present.
	Skipped Outcome = iota
	// Installed means the action ran and succeeded.
	Installed
	// Failed means the action ran and returned an error.
	Failed
)

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case Installed:
		return "installed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
