package di

import (
	"github.com/samber/do/v2"

	"github.com/devstrap/devstrap/pkg/client/docker"
	"github.com/devstrap/devstrap/pkg/runner"
	clusterprovisioner "github.com/devstrap/devstrap/pkg/svc/provisioner/cluster"
	"github.com/devstrap/devstrap/pkg/ui/timer"
)

// Dependency providers.

// NewRuntime constructs the shared runtime container used by the root
// command and tests. It registers default implementations for the timer,
// host runner, Docker pinger, and cluster provisioner factory.
func NewRuntime() *Runtime {
	return New(
		provideTimer,
		provideHostRunner,
		provideDockerPinger,
		provideClusterProvisionerFactory,
	)
}

// provideTimer registers the timer dependency with the injector.
func provideTimer(injector Injector) error {
	do.Provide(injector, func(Injector) (timer.Timer, error) {
		return timer.New(), nil
	})

	return nil
}

// provideHostRunner registers the host command runner dependency.
func provideHostRunner(injector Injector) error {
	do.Provide(injector, func(Injector) (runner.HostRunner, error) {
		return runner.NewExecHostRunner(), nil
	})

	return nil
}

// provideDockerPinger registers the Docker engine pinger dependency.
// Client construction is lazy, so a misconfigured Docker environment only
// surfaces when a command actually needs the engine.
func provideDockerPinger(injector Injector) error {
	do.Provide(injector, func(Injector) (docker.Pinger, error) {
		return docker.GetDockerClient()
	})

	return nil
}

// provideClusterProvisionerFactory registers the cluster provisioner factory dependency.
func provideClusterProvisionerFactory(injector Injector) error {
	do.Provide(injector, func(Injector) (clusterprovisioner.Factory, error) {
		return clusterprovisioner.DefaultFactory{}, nil
	})

	return nil
}
