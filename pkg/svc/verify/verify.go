// Package verify asserts that provisioned configuration artifacts landed
// where they should, by checking marker strings in their files. These are
// presence checks, not behavioral checks.
package verify

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/devstrap/devstrap/pkg/fsutil/materializer"
)

// ErrAssertionsFailed is returned when at least one assertion did not pass.
var ErrAssertionsFailed = errors.New("one or more assertions failed")

// Assertion checks that a file exists and contains a marker string.
type Assertion struct {
	// Name identifies the assertion in output.
	Name string
	// Path is the file to inspect.
	Path string
	// Contains is the marker the file must contain. Empty means the file
	// only has to exist.
	Contains string
}

// Summary tallies a verification run.
type Summary struct {
	Passed int
	Failed int
}

// Total returns the number of assertions checked.
func (s Summary) Total() int {
	return s.Passed + s.Failed
}

// Run evaluates assertions in order, writing a PASSED or FAILED line per
// assertion and a final tally to w. It returns ErrAssertionsFailed when any
// assertion failed; every assertion is evaluated regardless.
func Run(writer io.Writer, assertions []Assertion) (Summary, error) {
	var summary Summary

	for _, assertion := range assertions {
		reason := check(assertion)
		if reason == "" {
			summary.Passed++

			fmt.Fprintf(writer, "PASSED: %s\n", assertion.Name)

			continue
		}

		summary.Failed++

		fmt.Fprintf(writer, "FAILED: %s (%s)\n", assertion.Name, reason)
	}

	fmt.Fprintf(writer, "%d/%d checks passed\n", summary.Passed, summary.Total())

	if summary.Failed > 0 {
		return summary, ErrAssertionsFailed
	}

	return summary, nil
}

// check returns an empty string when the assertion holds, otherwise a short
// human-readable reason.
func check(assertion Assertion) string {
	content, err := os.ReadFile(assertion.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Sprintf("%s missing", assertion.Path)
		}

		return err.Error()
	}

	if assertion.Contains != "" && !bytes.Contains(content, []byte(assertion.Contains)) {
		return fmt.Sprintf("%s does not contain %q", assertion.Path, assertion.Contains)
	}

	return ""
}

// DefaultAssertions returns the assertion set covering the artifacts
// devstrap materializes for the given user's home directory.
func DefaultAssertions(homeDir string) []Assertion {
	return []Assertion{
		{
			Name:     "starship prompt config present",
			Path:     filepath.Join(homeDir, ".config", "starship.toml"),
			Contains: "add_newline",
		},
		{
			Name:     "neovim config present",
			Path:     filepath.Join(homeDir, ".config", "nvim", "init.lua"),
			Contains: "vim.opt.number",
		},
		{
			Name:     "kubectl alias installed",
			Path:     materializer.AliasesTargetPath,
			Contains: "alias k='kubectl'",
		},
	}
}
