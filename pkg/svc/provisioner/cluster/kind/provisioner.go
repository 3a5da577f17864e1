// Package kindprovisioner provisions Kind clusters through kind's embedded
// Cobra commands, so no kind binary is required on the host.
package kindprovisioner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"sigs.k8s.io/kind/pkg/apis/config/v1alpha4"
	kindcmd "sigs.k8s.io/kind/pkg/cmd"
	createcluster "sigs.k8s.io/kind/pkg/cmd/kind/create/cluster"
	getclusters "sigs.k8s.io/kind/pkg/cmd/kind/get/clusters"
	"sigs.k8s.io/yaml"

	"github.com/devstrap/devstrap/pkg/runner"
)

const (
	configFilePerms = 0o600
	logDirPerms     = 0o750
)

// KindClusterProvisioner provisions kind clusters via kind's Cobra commands
// (create, get clusters) executed through an injected CommandRunner.
type KindClusterProvisioner struct {
	kindConfig  *v1alpha4.Cluster
	runner      runner.CommandRunner
	out         io.Writer
	logDir      string
	waitTimeout time.Duration
}

// DefaultKindConfig returns a minimal kind cluster configuration for the
// given cluster name.
func DefaultKindConfig(name string) *v1alpha4.Cluster {
	return &v1alpha4.Cluster{
		TypeMeta: v1alpha4.TypeMeta{
			Kind:       "Cluster",
			APIVersion: "kind.x-k8s.io/v1alpha4",
		},
		Name: name,
	}
}

// NewKindClusterProvisioner constructs a KindClusterProvisioner.
//
// out receives kind's console output in real time; logDir is where creation
// output is additionally captured; waitTimeout bounds kind's own wait for the
// control plane to become ready.
func NewKindClusterProvisioner(
	kindConfig *v1alpha4.Cluster,
	out io.Writer,
	logDir string,
	waitTimeout time.Duration,
) *KindClusterProvisioner {
	return NewKindClusterProvisionerWithRunner(
		kindConfig,
		out,
		logDir,
		waitTimeout,
		runner.NewCobraCommandRunner(out, out),
	)
}

// NewKindClusterProvisionerWithRunner constructs a KindClusterProvisioner with
// an explicit command runner for testing purposes.
func NewKindClusterProvisionerWithRunner(
	kindConfig *v1alpha4.Cluster,
	out io.Writer,
	logDir string,
	waitTimeout time.Duration,
	cmdRunner runner.CommandRunner,
) *KindClusterProvisioner {
	if out == nil {
		out = os.Stdout
	}

	return &KindClusterProvisioner{
		kindConfig:  kindConfig,
		runner:      cmdRunner,
		out:         out,
		logDir:      logDir,
		waitTimeout: waitTimeout,
	}
}

// CreateLogPath returns the file where creation output for the named cluster
// is captured.
func (k *KindClusterProvisioner) CreateLogPath(name string) string {
	return filepath.Join(k.logDir, fmt.Sprintf("kind-create-%s.log", k.targetName(name)))
}

// Create creates a kind cluster using kind's Cobra command.
//
// All creation output is streamed to the provisioner's writer and captured to
// CreateLogPath(name), success or not, so failures stay diagnosable.
func (k *KindClusterProvisioner) Create(ctx context.Context, name string) error {
	target := k.targetName(name)

	// Serialize config to a temp file (required by kind's Cobra command).
	tmpFile, err := os.CreateTemp("", "kind-config-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	defer func() { _ = tmpFile.Close() }()
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	configYAML, err := yaml.Marshal(k.kindConfig)
	if err != nil {
		return fmt.Errorf("marshal kind config: %w", err)
	}

	err = os.WriteFile(tmpFile.Name(), configYAML, configFilePerms)
	if err != nil {
		return fmt.Errorf("write temp config file: %w", err)
	}

	output, closeLog := k.openCreateLog(target)
	defer closeLog()

	logger := &streamLogger{writer: output}
	streams := kindcmd.IOStreams{
		Out:    output,
		ErrOut: output,
	}

	cmd := createcluster.NewCommand(logger, streams)

	args := []string{
		"--name", target,
		"--config", tmpFile.Name(),
		"--wait", k.waitTimeout.String(),
	}

	_, err = k.runner.Run(ctx, cmd, args)
	if err != nil {
		return fmt.Errorf("failed to create kind cluster: %w", err)
	}

	return nil
}

// List returns all kind clusters using kind's Cobra command.
func (k *KindClusterProvisioner) List(ctx context.Context) ([]string, error) {
	// Use a buffer to capture output without displaying it.
	var outBuf bytes.Buffer

	logger := &streamLogger{writer: &outBuf}

	// Kind's getclusters command writes cluster names to streams.Out directly
	// (via fmt.Fprintln), not through cmd.SetOut(), so outBuf is the primary
	// source below.
	streams := kindcmd.IOStreams{
		Out:    &outBuf,
		ErrOut: io.Discard,
	}

	cmd := getclusters.NewCommand(logger, streams)

	result, err := k.runner.Run(ctx, cmd, []string{})
	if err != nil {
		return nil, fmt.Errorf("failed to list kind clusters: %w", err)
	}

	const noKindClustersMsg = "No kind clusters found."

	output := outBuf.Bytes()
	if len(output) == 0 {
		output = []byte(result.Stdout)
	}

	lines := bytes.Split(output, []byte("\n"))

	var clusters []string

	for _, line := range lines {
		name := string(bytes.TrimSpace(line))
		if name != "" && name != noKindClustersMsg {
			clusters = append(clusters, name)
		}
	}

	return clusters, nil
}

// Exists checks if a kind cluster with exactly the given name exists.
func (k *KindClusterProvisioner) Exists(ctx context.Context, name string) (bool, error) {
	clusters, err := k.List(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list kind clusters: %w", err)
	}

	return slices.Contains(clusters, k.targetName(name)), nil
}

// --- internals ---

// openCreateLog opens the create log for the target cluster and returns a
// writer that tees to both the console writer and the log file. When the log
// cannot be opened the console writer is used alone; losing the capture must
// not block cluster creation.
func (k *KindClusterProvisioner) openCreateLog(target string) (io.Writer, func()) {
	err := os.MkdirAll(k.logDir, logDirPerms)
	if err != nil {
		return k.out, func() {}
	}

	logFile, err := os.Create(k.CreateLogPath(target))
	if err != nil {
		return k.out, func() {}
	}

	closeLog := func() { _ = logFile.Close() }

	return io.MultiWriter(k.out, logFile), closeLog
}

func (k *KindClusterProvisioner) targetName(name string) string {
	if name == "" && k.kindConfig != nil {
		return k.kindConfig.Name
	}

	return name
}
