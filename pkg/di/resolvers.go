package di

import (
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/devstrap/devstrap/pkg/client/docker"
	"github.com/devstrap/devstrap/pkg/runner"
	clusterprovisioner "github.com/devstrap/devstrap/pkg/svc/provisioner/cluster"
	"github.com/devstrap/devstrap/pkg/ui/timer"
)

// Dependency resolvers.

// ResolveTimer retrieves the timer dependency from the injector with consistent error handling.
func ResolveTimer(injector Injector) (timer.Timer, error) {
	tmr, err := do.Invoke[timer.Timer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve timer dependency: %w", err)
	}

	return tmr, nil
}

// ResolveHostRunner retrieves the host command runner dependency from the injector.
func ResolveHostRunner(injector Injector) (runner.HostRunner, error) {
	hostRunner, err := do.Invoke[runner.HostRunner](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve host runner dependency: %w", err)
	}

	return hostRunner, nil
}

// ResolveDockerPinger retrieves the Docker engine pinger dependency from the injector.
func ResolveDockerPinger(injector Injector) (docker.Pinger, error) {
	pinger, err := do.Invoke[docker.Pinger](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve docker pinger dependency: %w", err)
	}

	return pinger, nil
}

// ResolveClusterProvisionerFactory retrieves the cluster provisioner factory dependency
// from the injector with consistent error handling.
func ResolveClusterProvisionerFactory(
	injector Injector,
) (clusterprovisioner.Factory, error) {
	factory, err := do.Invoke[clusterprovisioner.Factory](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve provisioner factory dependency: %w", err)
	}

	return factory, nil
}

// Handler decorators.

// WithTimer decorates a handler to automatically resolve the timer dependency.
// This higher-order function simplifies command handlers that need timer access.
func WithTimer(
	handler func(cmd *cobra.Command, injector Injector, tmr timer.Timer) error,
) func(cmd *cobra.Command, injector Injector) error {
	return func(cmd *cobra.Command, injector Injector) error {
		tmr, err := ResolveTimer(injector)
		if err != nil {
			return err
		}

		return handler(cmd, injector, tmr)
	}
}
