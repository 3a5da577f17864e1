package cmd_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devstrap/devstrap/pkg/cli/cmd"
	"github.com/devstrap/devstrap/pkg/client/docker"
	"github.com/devstrap/devstrap/pkg/di"
	"github.com/devstrap/devstrap/pkg/fsutil/materializer"
	"github.com/devstrap/devstrap/pkg/runner"
	clusterprovisioner "github.com/devstrap/devstrap/pkg/svc/provisioner/cluster"
	"github.com/devstrap/devstrap/pkg/ui/timer"
)

var errDockerDown = errors.New("Cannot connect to the Docker daemon")

// fakeHostRunner reports every binary and package as present so all
// installation steps skip without touching the host.
type fakeHostRunner struct{}

func (fakeHostRunner) Run(_ context.Context, _ string, _ ...string) (string, error) {
	return "curl\n", nil
}

func (fakeHostRunner) LookPath(_ string) bool { return true }

// downPinger simulates a Docker daemon that never answers.
type downPinger struct{}

func (downPinger) Ping(_ context.Context) (types.Ping, error) {
	return types.Ping{}, errDockerDown
}

// recordingProvisioner lists no clusters and records every creation.
type recordingProvisioner struct {
	logDir  string
	created []string
}

func (p *recordingProvisioner) Create(_ context.Context, name string) error {
	p.created = append(p.created, name)

	return nil
}

func (p *recordingProvisioner) List(_ context.Context) ([]string, error) {
	return nil, nil
}

func (p *recordingProvisioner) Exists(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (p *recordingProvisioner) CreateLogPath(name string) string {
	return filepath.Join(p.logDir, "kind-create-"+name+".log")
}

// recordingFactory hands out a recordingProvisioner and records the
// parameters the up command built it with.
type recordingFactory struct {
	provisioner *recordingProvisioner

	name        string
	logDir      string
	waitTimeout time.Duration
}

func (f *recordingFactory) Provisioner(
	name string,
	_ io.Writer,
	logDir string,
	waitTimeout time.Duration,
) clusterprovisioner.ClusterProvisioner {
	f.name = name
	f.logDir = logDir
	f.waitTimeout = waitTimeout
	f.provisioner.logDir = logDir

	return f.provisioner
}

// fakeRuntimeModule registers fakes for every dependency the up command
// resolves.
func fakeRuntimeModule(pinger docker.Pinger, factory clusterprovisioner.Factory) di.Module {
	return func(injector di.Injector) error {
		do.Provide(injector, func(di.Injector) (timer.Timer, error) {
			return timer.New(), nil
		})
		do.Provide(injector, func(di.Injector) (runner.HostRunner, error) {
			return fakeHostRunner{}, nil
		})
		do.Provide(injector, func(di.Injector) (docker.Pinger, error) {
			return pinger, nil
		})
		do.Provide(injector, func(di.Injector) (clusterprovisioner.Factory, error) {
			return factory, nil
		})

		return nil
	}
}

func TestNewUpCmd(t *testing.T) {
	t.Parallel()

	upCmd := cmd.NewUpCmd(di.New())

	assert.Equal(t, "up", upCmd.Use)
	assert.True(t, upCmd.SilenceUsage)
	require.NotNil(t, upCmd.RunE)
	assert.Contains(t, upCmd.Long, "idempotent")
}

func TestUpRunsFullSequenceDespiteDockerTimeout(t *testing.T) {
	tmpDir := t.TempDir()

	t.Setenv("HOME", tmpDir)
	t.Setenv("REMOTE_USER", "devstrap-nobody")
	t.Setenv("DEVSTRAP_SPEC_WORKSPACEROOT", filepath.Join(tmpDir, "workspace"))
	t.Setenv("DEVSTRAP_SPEC_STATEDIR", filepath.Join(tmpDir, "state"))
	t.Setenv("DEVSTRAP_SPEC_DOCKER_POLLATTEMPTS", "1")
	t.Setenv("DEVSTRAP_SPEC_DOCKER_POLLINTERVAL", "1ms")

	starshipPath := filepath.Join(tmpDir, "starship.toml")

	restore := cmd.SetDefaultArtifacts(func(_, _, _ string) []materializer.Artifact {
		return []materializer.Artifact{{
			Name:       "starship",
			TargetPath: starshipPath,
			Default:    []byte("add_newline = false\n"),
		}}
	})
	defer restore()

	provisioner := &recordingProvisioner{}
	factory := &recordingFactory{provisioner: provisioner}

	upCmd := cmd.NewUpCmd(di.New(fakeRuntimeModule(downPinger{}, factory)))

	var output bytes.Buffer

	upCmd.SetOut(&output)
	upCmd.SetErr(&output)
	upCmd.SetArgs(nil)

	err := upCmd.Execute()

	require.NoError(t, err)

	// The unreachable daemon must not stop the rest of the sequence.
	assert.Equal(t, []string{"dev"}, provisioner.created)
	assert.Equal(t, "dev", factory.name)
	assert.Equal(t, filepath.Join(tmpDir, "state", "logs"), factory.logDir)

	content, readErr := os.ReadFile(starshipPath)
	require.NoError(t, readErr)
	assert.Equal(t, "add_newline = false\n", string(content))

	text := output.String()

	assert.Contains(t, text, `provisioning dev environment for user "devstrap-nobody"`)
	assert.Contains(t, text, "starship: wrote default")
	assert.Contains(t, text, "attempting cluster provisioning without a confirmed Docker daemon")

	dockerIdx := strings.Index(text, "docker daemon not ready after 1 checks")
	clusterIdx := strings.Index(text, `cluster "dev" created`)
	ownershipIdx := strings.Index(text, "ownership fix-up skipped")
	doneIdx := strings.Index(text, "provisioning finished: 0 installed, 8 skipped, 0 failed")

	require.GreaterOrEqual(t, dockerIdx, 0, text)
	require.GreaterOrEqual(t, clusterIdx, 0, text)
	require.GreaterOrEqual(t, ownershipIdx, 0, text)
	require.GreaterOrEqual(t, doneIdx, 0, text)

	assert.Less(t, dockerIdx, clusterIdx, "docker polling should precede cluster provisioning")
	assert.Less(t, clusterIdx, ownershipIdx, "ownership fix-up should run after cluster provisioning")
	assert.Less(t, ownershipIdx, doneIdx, "summary should come last")
}
