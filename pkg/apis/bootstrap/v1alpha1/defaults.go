package v1alpha1

import "time"

const (
	// DefaultRemoteUser is the user assumed when REMOTE_USER is unset.
	DefaultRemoteUser = "vscode"

	// DefaultWorkspaceRoot is the workspace tree for the ownership finalizer.
	DefaultWorkspaceRoot = "/workspace"

	// DefaultStateDir holds cluster creation logs and other devstrap state.
	DefaultStateDir = "~/.devstrap"

	// DefaultClusterName is the name of the local Kind cluster.
	DefaultClusterName = "dev"

	// DefaultDockerPollAttempts is the readiness check budget for the Docker daemon.
	DefaultDockerPollAttempts = 30

	// DefaultDockerPollInterval is the fixed sleep between daemon readiness checks.
	DefaultDockerPollInterval = 2 * time.Second

	// DefaultClusterWaitTimeout bounds Kind's own control-plane readiness wait.
	DefaultClusterWaitTimeout = 5 * time.Minute
)

// NewBootstrap creates a new Bootstrap instance with default values.
func NewBootstrap() *Bootstrap {
	return &Bootstrap{
		APIVersion: APIVersion,
		Kind:       Kind,
		Spec:       NewSpec(),
	}
}

// NewSpec creates a new Spec with default values.
func NewSpec() Spec {
	return Spec{
		RemoteUser:    DefaultRemoteUser,
		WorkspaceRoot: DefaultWorkspaceRoot,
		StateDir:      DefaultStateDir,
		Docker:        NewDockerSpec(),
		Cluster:       NewClusterSpec(),
	}
}

// NewDockerSpec creates a new DockerSpec with default values.
func NewDockerSpec() DockerSpec {
	return DockerSpec{
		PollAttempts: DefaultDockerPollAttempts,
		PollInterval: DefaultDockerPollInterval,
	}
}

// NewClusterSpec creates a new ClusterSpec with default values.
func NewClusterSpec() ClusterSpec {
	return ClusterSpec{
		Name:        DefaultClusterName,
		WaitTimeout: DefaultClusterWaitTimeout,
	}
}
