// Package docker wraps the Docker SDK client used to talk to the container engine.
package docker

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"

	"github.com/devstrap/devstrap/pkg/wait"
)

// Pinger is the subset of the Docker API client used for readiness checks.
type Pinger interface {
	Ping(ctx context.Context) (types.Ping, error)
}

// GetDockerClient creates a Docker client using environment configuration.
func GetDockerClient() (client.APIClient, error) {
	dockerClient, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return dockerClient, nil
}

// EngineReadyPredicate returns a wait.Predicate that reports whether the
// Docker daemon answers a ping. Transient connectivity errors count as
// "not ready yet"; any other error also leaves the daemon unready but is
// surfaced so the caller can log it.
func EngineReadyPredicate(pinger Pinger) wait.Predicate {
	return func(ctx context.Context) (bool, error) {
		_, err := pinger.Ping(ctx)
		if err != nil {
			return false, fmt.Errorf("ping docker daemon: %w", err)
		}

		return true, nil
	}
}
