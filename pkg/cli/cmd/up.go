package cmd

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/devstrap/devstrap/pkg/apis/bootstrap/v1alpha1"
	"github.com/devstrap/devstrap/pkg/client/docker"
	"github.com/devstrap/devstrap/pkg/di"
	"github.com/devstrap/devstrap/pkg/fsutil/materializer"
	"github.com/devstrap/devstrap/pkg/fsutil/owner"
	"github.com/devstrap/devstrap/pkg/provision"
	"github.com/devstrap/devstrap/pkg/provision/catalog"
	clusterprovisioner "github.com/devstrap/devstrap/pkg/svc/provisioner/cluster"
	"github.com/devstrap/devstrap/pkg/ui/notify"
	"github.com/devstrap/devstrap/pkg/ui/timer"
	"github.com/devstrap/devstrap/pkg/wait"
)

const upLong = `Provision the dev environment end to end: install tools, materialize
configuration, wait for the Docker daemon, ensure the local Kind cluster,
and fix workspace ownership.

Every step is idempotent and best-effort: failures are logged and the run
continues, so re-running after a partial failure completes the remainder.`

// NewUpCmd creates the up command.
func NewUpCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "up",
		Short:        "Provision the dev environment end to end",
		Long:         upLong,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runtimeContainer.Invoke(func(injector di.Injector) error {
				return di.WithTimer(handleUpRunE)(cmd, injector)
			})
		},
	}

	return cmd
}

// --- internals ---

// defaultArtifacts is the artifact source for materializeConfigs. Swappable
// so command tests can root materialization in a temp directory.
var defaultArtifacts = materializer.DefaultArtifacts

// handleUpRunE runs the full provisioning sequence. Individual failures are
// reported and recorded; only configuration loading and dependency
// resolution return errors, per the best-effort contract.
func handleUpRunE(cmd *cobra.Command, injector di.Injector, tmr timer.Timer) error {
	out := notify.NewTimestampingWriter(cmd.ErrOrStderr())
	defer func() { _ = out.Flush() }()

	tmr.Start()

	config, err := loadConfig(out)
	if err != nil {
		return err
	}

	notify.Titlef(out, "🚀", "provisioning dev environment for user %q", config.Spec.RemoteUser)

	hostRunner, err := di.ResolveHostRunner(injector)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	report := provision.NewRunner(out).Run(ctx, catalog.DefaultSteps(hostRunner))

	materializeConfigs(out, config.Spec)
	dockerReady := pollDocker(ctx, injector, out, config.Spec.Docker)
	ensureCluster(ctx, injector, out, config.Spec, dockerReady)

	// Ownership fix-up always runs last, however the earlier steps fared.
	fixOwnership(out, config.Spec)

	summarize(cmd, out, tmr, report)

	return nil
}

func materializeConfigs(out *notify.TimestampingWriter, spec v1alpha1.Spec) {
	homeDir := homeDirFor(spec.RemoteUser)
	repoConfigDir := filepath.Join(spec.WorkspaceRoot, "config")

	artifacts := defaultArtifacts(spec.RemoteUser, homeDir, repoConfigDir)
	materializer.New(out).MaterializeAll(artifacts)
}

// pollDocker waits for the Docker daemon within the configured attempt
// budget. A daemon that never answers is reported and the run continues;
// later steps that need Docker fail their own checks.
func pollDocker(
	ctx context.Context,
	injector di.Injector,
	out *notify.TimestampingWriter,
	spec v1alpha1.DockerSpec,
) wait.Result {
	notify.Activityf(out, "waiting for the Docker daemon (up to %d checks, %s apart)",
		spec.PollAttempts, spec.PollInterval)

	pinger, err := di.ResolveDockerPinger(injector)
	if err != nil {
		notify.Errorf(out, "docker client unavailable: %v", err)

		return wait.TimedOut
	}

	// Transient connectivity errors are the normal "daemon still starting"
	// case; anything else (permission denied, misconfigured socket) is worth
	// telling the user about instead of silently burning the attempt budget.
	var warnedNonTransient bool

	result := wait.Poll(ctx, docker.EngineReadyPredicate(pinger), wait.Options{
		MaxAttempts: spec.PollAttempts,
		Interval:    spec.PollInterval,
		OnError: func(err error) {
			if wait.IsTransient(err) || warnedNonTransient {
				return
			}

			warnedNonTransient = true

			notify.Warningf(out, "docker daemon check failed with a non-transient error: %v", err)
		},
	})

	if result == wait.Ready {
		notify.Successf(out, "docker daemon is ready")

		return result
	}

	notify.Errorf(out, "docker daemon not ready after %d checks; continuing without it", spec.PollAttempts)

	return result
}

func ensureCluster(
	ctx context.Context,
	injector di.Injector,
	out *notify.TimestampingWriter,
	spec v1alpha1.Spec,
	dockerReady wait.Result,
) {
	if dockerReady != wait.Ready {
		notify.Warningf(out, "attempting cluster provisioning without a confirmed Docker daemon")
	}

	factory, err := di.ResolveClusterProvisionerFactory(injector)
	if err != nil {
		notify.Errorf(out, "cluster provisioner unavailable: %v", err)

		return
	}

	logDir := filepath.Join(expandPath(spec.StateDir), "logs")
	provisioner := factory.Provisioner(spec.Cluster.Name, out, logDir, spec.Cluster.WaitTimeout)

	notify.Activityf(out, "ensuring kind cluster %q exists", spec.Cluster.Name)

	result, err := clusterprovisioner.Ensure(ctx, provisioner, spec.Cluster.Name)
	if err != nil {
		notify.Errorf(out, "cluster existence check failed: %v", err)

		return
	}

	switch result.Outcome {
	case clusterprovisioner.AlreadyExists:
		notify.Infof(out, "cluster %q already exists", spec.Cluster.Name)
	case clusterprovisioner.Created:
		notify.Successf(out, "cluster %q created (log: %s)", spec.Cluster.Name, result.LogPath)
	case clusterprovisioner.CreateFailed:
		notify.Errorf(out, "cluster %q creation failed: %v (log: %s)",
			spec.Cluster.Name, result.Err, result.LogPath)
	}
}

func fixOwnership(out *notify.TimestampingWriter, spec v1alpha1.Spec) {
	result := owner.FixOwnership(spec.WorkspaceRoot, spec.RemoteUser)

	switch result.Outcome {
	case owner.Applied:
		notify.Successf(out, "ownership of %s fixed for %s", spec.WorkspaceRoot, spec.RemoteUser)
	case owner.Skipped:
		notify.Infof(out, "ownership fix-up skipped: %s", result.Reason)
	case owner.Failed:
		notify.Errorf(out, "ownership fix-up failed: %v", result.Err)
	}
}

func summarize(cmd *cobra.Command, out *notify.TimestampingWriter, tmr timer.Timer, report provision.Report) {
	skipped, installed, failed := report.Counts()

	for _, failure := range report.Failed() {
		notify.Warningf(out, "step %q failed: %v", failure.Name, failure.Err)
	}

	if timingEnabled(cmd.Flags()) {
		notify.SuccessWithTimerf(out, tmr, "provisioning finished: %d installed, %d skipped, %d failed",
			installed, skipped, failed)

		return
	}

	notify.Successf(out, "provisioning finished: %d installed, %d skipped, %d failed",
		installed, skipped, failed)
}
