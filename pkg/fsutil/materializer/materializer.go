// Package materializer resolves configuration artifacts onto the host.
//
// Each artifact carries three content candidates in strict precedence order:
// a repo-tracked source file (always wins), an embedded default (used only
// when the target does not exist yet), and whatever already sits at the
// target (never clobbered unless a source override exists). This lets a
// repository pin its own configuration while ad hoc user edits survive runs
// that carry no override.
package materializer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/devstrap/devstrap/pkg/fsutil/owner"
	"github.com/devstrap/devstrap/pkg/ui/notify"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Artifact describes a configuration file devstrap manages.
type Artifact struct {
	// Name is the display name (e.g., "starship", "aliases").
	Name string

	// TargetPath is where the artifact lives on the host.
	TargetPath string

	// SourcePath is an optional repo-tracked override. When the file exists
	// it is copied over the target unconditionally.
	SourcePath string

	// Default is the embedded content written when neither an override nor
	// an existing target is present.
	Default []byte

	// Owner is the user the target is chowned to after materialization.
	// Empty disables the ownership fix-up.
	Owner string
}

// Outcome is the terminal state of materializing one artifact.
type Outcome int

const (
	// CopiedFromSource means the repo-tracked override was copied over the target.
	CopiedFromSource Outcome = iota
	// WroteDefault means the embedded default was written to a fresh target.
	WroteDefault
	// LeftExisting means a pre-existing target was preserved untouched.
	LeftExisting
)

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case CopiedFromSource:
		return "copied from source"
	case WroteDefault:
		return "wrote default"
	case LeftExisting:
		return "left existing"
	default:
		return "unknown"
	}
}

// Materializer writes configuration artifacts and reports what it did.
type Materializer struct {
	writer io.Writer

	// chown is swappable so tests don't need a second OS user.
	chown func(path, username string) error
}

// New creates a Materializer that reports progress to the given writer.
func New(writer io.Writer) *Materializer {
	return &Materializer{
		writer: writer,
		chown:  owner.Chown,
	}
}

// Materialize resolves a single artifact per the override/default/preserve
// precedence, then applies ownership. Ownership failure is logged, not fatal;
// the returned outcome describes the content decision.
func (m *Materializer) Materialize(artifact Artifact) (Outcome, error) {
	outcome, err := m.resolveContent(artifact)
	if err != nil {
		return outcome, err
	}

	// Ownership applies to every outcome: a preserved target keeps its
	// content byte-for-byte, but still belongs to the configured owner.
	if artifact.Owner != "" {
		chownErr := m.chown(artifact.TargetPath, artifact.Owner)
		if chownErr != nil {
			notify.Warningf(m.writer, "%s: ownership not applied: %v", artifact.Name, chownErr)
		}
	}

	return outcome, nil
}

// MaterializeAll resolves every artifact, continuing past individual
// failures, and returns the outcomes keyed by artifact name.
func (m *Materializer) MaterializeAll(artifacts []Artifact) map[string]Outcome {
	outcomes := make(map[string]Outcome, len(artifacts))

	for _, artifact := range artifacts {
		outcome, err := m.Materialize(artifact)
		if err != nil {
			notify.Errorf(m.writer, "failed to materialize %s: %v", artifact.Name, err)

			continue
		}

		outcomes[artifact.Name] = outcome

		switch outcome {
		case CopiedFromSource:
			notify.Generatef(m.writer, "%s: copied repo override to %s", artifact.Name, artifact.TargetPath)
		case WroteDefault:
			notify.Generatef(m.writer, "%s: wrote default to %s", artifact.Name, artifact.TargetPath)
		case LeftExisting:
			notify.Infof(m.writer, "%s: existing file preserved", artifact.Name)
		}
	}

	return outcomes
}

func (m *Materializer) resolveContent(artifact Artifact) (Outcome, error) {
	if artifact.SourcePath != "" {
		_, err := os.Stat(artifact.SourcePath)
		if err == nil {
			copyErr := m.writeFile(artifact.TargetPath, nil, artifact.SourcePath)
			if copyErr != nil {
				return CopiedFromSource, copyErr
			}

			return CopiedFromSource, nil
		}
	}

	_, err := os.Stat(artifact.TargetPath)
	if err == nil {
		return LeftExisting, nil
	}

	writeErr := m.writeFile(artifact.TargetPath, artifact.Default, "")
	if writeErr != nil {
		return WroteDefault, writeErr
	}

	return WroteDefault, nil
}

// writeFile writes content (or the source file's content) to target, creating
// parent directories as needed.
func (m *Materializer) writeFile(target string, content []byte, sourcePath string) error {
	if sourcePath != "" {
		data, err := os.ReadFile(sourcePath)
		if err != nil {
			return fmt.Errorf("read source %s: %w", sourcePath, err)
		}

		content = data
	}

	err := os.MkdirAll(filepath.Dir(target), dirPerm)
	if err != nil {
		return fmt.Errorf("create directory for %s: %w", target, err)
	}

	err = os.WriteFile(target, content, filePerm)
	if err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	return nil
}
