// Package owner applies filesystem ownership for the provisioned user.
package owner

import (
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
)

// Outcome is the terminal state of an ownership fix-up.
type Outcome int

const (
	// Applied means ownership was set on the whole tree.
	Applied Outcome = iota
	// Skipped means the fix-up did not run (user unknown or path missing).
	Skipped
	// Failed means at least one chown errored.
	Failed
)

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result describes what an ownership fix-up did.
type Result struct {
	Outcome Outcome
	// Reason explains a Skipped outcome.
	Reason string
	// Err is the first error of a Failed outcome.
	Err error
}

// FixOwnership recursively chowns root to the named user and their primary
// group. It is best-effort: per-file errors do not stop the walk, and the
// first error is reported in the result.
//
// The fix-up is skipped (not failed) when the user does not exist on the host
// or when root does not exist, both normal on machines that never ran the
// dev container setup.
func FixOwnership(root, username string) Result {
	usr, err := user.Lookup(username)
	if err != nil {
		return Result{
			Outcome: Skipped,
			Reason:  fmt.Sprintf("user %q does not exist", username),
		}
	}

	_, err = os.Stat(root)
	if err != nil {
		return Result{
			Outcome: Skipped,
			Reason:  fmt.Sprintf("path %q does not exist", root),
		}
	}

	uid, gid, err := ids(usr)
	if err != nil {
		return Result{Outcome: Failed, Err: err}
	}

	var firstErr error

	walkErr := filepath.WalkDir(root, func(path string, _ fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if firstErr == nil {
				firstErr = walkErr
			}

			return nil
		}

		// Lchown so symlink targets outside the tree are left alone.
		chownErr := os.Lchown(path, uid, gid)
		if chownErr != nil && firstErr == nil {
			firstErr = chownErr
		}

		return nil
	})
	if walkErr != nil && firstErr == nil {
		firstErr = walkErr
	}

	if firstErr != nil {
		return Result{Outcome: Failed, Err: fmt.Errorf("chown %s: %w", root, firstErr)}
	}

	return Result{Outcome: Applied}
}

// Chown sets ownership of a single path to the named user and their primary
// group. Unlike FixOwnership, an unknown user is an error here: callers use
// Chown right after creating a file for that user.
func Chown(path, username string) error {
	usr, err := user.Lookup(username)
	if err != nil {
		return fmt.Errorf("lookup user %q: %w", username, err)
	}

	uid, gid, err := ids(usr)
	if err != nil {
		return err
	}

	err = os.Chown(path, uid, gid)
	if err != nil {
		return fmt.Errorf("chown %s: %w", path, err)
	}

	return nil
}

func ids(usr *user.User) (int, int, error) {
	uid, err := strconv.Atoi(usr.Uid)
	if err != nil {
		return 0, 0, fmt.Errorf("parse uid %q: %w", usr.Uid, err)
	}

	gid, err := strconv.Atoi(usr.Gid)
	if err != nil {
		return 0, 0, fmt.Errorf("parse gid %q: %w", usr.Gid, err)
	}

	return uid, gid, nil
}
