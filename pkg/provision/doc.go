// Package provision implements the idempotent step sequence at the heart of
// devstrap.
//
// A [Step] pairs a detector (is the tool already present?) with an action
// (install it). The [Runner] evaluates steps strictly in order and never
// aborts on a step failure: each outcome is recorded in a [Report] and the run
// proceeds, reflecting a best-effort, re-runnable bootstrap. Detectors and
// actions are injected as closures, so the runner itself stays stateless and
// is tested with fakes.
package provision
