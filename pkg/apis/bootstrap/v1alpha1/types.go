package v1alpha1

import "time"

const (
	// Group is the API group for devstrap.
	Group = "devstrap.dev"
	// Version is the API version for devstrap.
	Version = "v1alpha1"
	// Kind is the kind for devstrap bootstrap configurations.
	Kind = "Bootstrap"
	// APIVersion is the full API version for devstrap.
	APIVersion = Group + "/" + Version
)

// Bootstrap represents a devstrap configuration including API metadata and the
// desired end state of the host environment.
type Bootstrap struct {
	APIVersion string `json:"apiVersion,omitzero" mapstructure:"apiVersion,omitempty"`
	Kind       string `json:"kind,omitzero"       mapstructure:"kind,omitempty"`

	Spec Spec `json:"spec,omitzero" mapstructure:"spec,omitempty"`
}

// Spec defines the desired state of a bootstrapped host.
type Spec struct {
	// RemoteUser is the user that owns materialized configuration and the
	// workspace tree. Overridable via the REMOTE_USER environment variable.
	RemoteUser string `json:"remoteUser,omitzero" mapstructure:"remoteUser,omitempty"`

	// WorkspaceRoot is the directory tree handed to the ownership finalizer.
	WorkspaceRoot string `json:"workspaceRoot,omitzero" mapstructure:"workspaceRoot,omitempty"`

	// StateDir holds devstrap-owned state such as cluster creation logs.
	StateDir string `json:"stateDir,omitzero" mapstructure:"stateDir,omitempty"`

	Docker  DockerSpec  `json:"docker,omitzero"  mapstructure:"docker,omitempty"`
	Cluster ClusterSpec `json:"cluster,omitzero" mapstructure:"cluster,omitempty"`
}

// DockerSpec configures the Docker daemon readiness poll.
type DockerSpec struct {
	// PollAttempts is the hard budget of daemon readiness checks.
	PollAttempts int `json:"pollAttempts,omitzero" mapstructure:"pollAttempts,omitempty"`

	// PollInterval is the fixed sleep between readiness checks.
	PollInterval time.Duration `json:"pollInterval,omitzero" mapstructure:"pollInterval,omitempty"`
}

// ClusterSpec configures the local Kind cluster.
type ClusterSpec struct {
	// Name identifies the cluster; existence checks match it exactly.
	Name string `json:"name,omitzero" mapstructure:"name,omitempty"`

	// WaitTimeout bounds how long cluster creation waits for the control
	// plane to become ready. Independent of the Docker readiness poll.
	WaitTimeout time.Duration `json:"waitTimeout,omitzero" mapstructure:"waitTimeout,omitempty"`
}
