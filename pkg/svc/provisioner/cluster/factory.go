package cluster

import (
	"io"
	"time"

	kindprovisioner "github.com/devstrap/devstrap/pkg/svc/provisioner/cluster/kind"
)

// Factory constructs cluster provisioners. Commands resolve a Factory from
// the runtime container so tests can substitute fakes.
type Factory interface {
	// Provisioner returns a provisioner for the named cluster writing
	// progress to out and capturing creation output under logDir.
	Provisioner(name string, out io.Writer, logDir string, waitTimeout time.Duration) ClusterProvisioner
}

// DefaultFactory builds kind-backed provisioners.
type DefaultFactory struct{}

// Provisioner implements Factory.
func (DefaultFactory) Provisioner(
	name string,
	out io.Writer,
	logDir string,
	waitTimeout time.Duration,
) ClusterProvisioner {
	return kindprovisioner.NewKindClusterProvisioner(
		kindprovisioner.DefaultKindConfig(name),
		out,
		logDir,
		waitTimeout,
	)
}
