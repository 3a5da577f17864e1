// Package cluster defines the cluster provisioning contract and the
// create-if-absent facade used by the bootstrap sequence.
package cluster

import (
	"context"
	"fmt"
)

// ClusterProvisioner provisions local Kubernetes clusters.
type ClusterProvisioner interface {
	// Create creates the named cluster, streaming progress to the
	// provisioner's writer and capturing everything to the create log.
	Create(ctx context.Context, name string) error

	// List returns the names of all existing clusters.
	List(ctx context.Context) ([]string, error)

	// Exists reports whether a cluster with exactly the given name exists.
	Exists(ctx context.Context, name string) (bool, error)

	// CreateLogPath returns where Create's output for the named cluster is
	// (or would be) captured.
	CreateLogPath(name string) string
}

// EnsureOutcome is the terminal state of an Ensure call.
type EnsureOutcome int

const (
	// AlreadyExists means a cluster with the exact name was found and no
	// creation was attempted.
	AlreadyExists EnsureOutcome = iota
	// Created means the cluster was created by this call.
	Created
	// CreateFailed means creation was attempted and failed; the create log
	// holds the details.
	CreateFailed
)

// String returns a human-readable representation of the outcome.
func (o EnsureOutcome) String() string {
	switch o {
	case AlreadyExists:
		return "already exists"
	case Created:
		return "created"
	case CreateFailed:
		return "create failed"
	default:
		return "unknown"
	}
}

// EnsureResult describes what Ensure did.
type EnsureResult struct {
	Outcome EnsureOutcome
	// LogPath points at the captured creation output. Set for Created and
	// CreateFailed.
	LogPath string
	// Err is the creation error for CreateFailed.
	Err error
}

// Ensure creates the named cluster if it does not already exist.
//
// Existence is decided by exact name match against the provisioner's listing,
// never by substring. A creation failure is reported in the result rather
// than returned, so callers can continue a best-effort run; the returned
// error is reserved for the existence check itself failing.
func Ensure(
	ctx context.Context,
	provisioner ClusterProvisioner,
	name string,
) (EnsureResult, error) {
	exists, err := provisioner.Exists(ctx, name)
	if err != nil {
		return EnsureResult{}, fmt.Errorf("check cluster existence: %w", err)
	}

	if exists {
		return EnsureResult{Outcome: AlreadyExists}, nil
	}

	logPath := provisioner.CreateLogPath(name)

	err = provisioner.Create(ctx, name)
	if err != nil {
		return EnsureResult{
			Outcome: CreateFailed,
			LogPath: logPath,
			Err:     err,
		}, nil
	}

	return EnsureResult{Outcome: Created, LogPath: logPath}, nil
}
