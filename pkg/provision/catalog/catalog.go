// Package catalog defines the fixed set of tool installation steps devstrap
// provisions onto a host.
//
// The catalog is data, not logic: each entry pairs a host-state detector with
// an installer command, and the provision.Runner decides what to do with them.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/devstrap/devstrap/pkg/provision"
	"github.com/devstrap/devstrap/pkg/runner"
)

// basePackages are the apt packages every other installer depends on.
const basePackages = "curl ca-certificates gnupg unzip"

// DefaultSteps returns the ordered tool installation steps.
//
// Order matters only in that the base packages come first; every other step
// is independently idempotent and survives the failure of its predecessors.
func DefaultSteps(hostRunner runner.HostRunner) []provision.Step {
	return []provision.Step{
		{
			Name:   "base-packages",
			Detect: aptPackageDetector(hostRunner, "curl"),
			Action: shellAction(hostRunner,
				"apt-get update -y && apt-get install -y "+basePackages),
		},
		{
			Name:   "node",
			Detect: binaryDetector(hostRunner, "node"),
			Action: shellAction(hostRunner,
				"curl -fsSL https://deb.nodesource.com/setup_22.x | bash - && apt-get install -y nodejs"),
		},
		{
			Name:   "python",
			Detect: binaryDetector(hostRunner, "python3"),
			Action: shellAction(hostRunner,
				"apt-get install -y python3 python3-pip python3-venv"),
		},
		{
			Name:   "docker-cli",
			Detect: binaryDetector(hostRunner, "docker"),
			Action: shellAction(hostRunner,
				"install -m 0755 -d /etc/apt/keyrings"+
					" && curl -fsSL https://download.docker.com/linux/debian/gpg -o /etc/apt/keyrings/docker.asc"+
					" && echo \"deb [signed-by=/etc/apt/keyrings/docker.asc]"+
					" https://download.docker.com/linux/debian $(. /etc/os-release && echo $VERSION_CODENAME) stable\""+
					" > /etc/apt/sources.list.d/docker.list"+
					" && apt-get update -y && apt-get install -y docker-ce-cli"),
		},
		{
			Name:   "kubectl",
			Detect: binaryDetector(hostRunner, "kubectl"),
			Action: shellAction(hostRunner,
				"curl -fsSLo /usr/local/bin/kubectl"+
					" \"https://dl.k8s.io/release/$(curl -fsSL https://dl.k8s.io/release/stable.txt)"+
					"/bin/linux/$(dpkg --print-architecture)/kubectl\""+
					" && chmod +x /usr/local/bin/kubectl"),
		},
		{
			Name:   "kind",
			Detect: binaryDetector(hostRunner, "kind"),
			Action: shellAction(hostRunner,
				"curl -fsSLo /usr/local/bin/kind"+
					" \"https://kind.sigs.k8s.io/dl/latest/kind-linux-$(dpkg --print-architecture)\""+
					" && chmod +x /usr/local/bin/kind"),
		},
		{
			Name:   "starship",
			Detect: binaryDetector(hostRunner, "starship"),
			Action: shellAction(hostRunner,
				"curl -sS https://starship.rs/install.sh | sh -s -- --yes"),
		},
		{
			Name:   "neovim",
			Detect: binaryDetector(hostRunner, "nvim"),
			Action: shellAction(hostRunner, "apt-get install -y neovim"),
		},
	}
}

// binaryDetector reports presence by resolving the named binary on PATH.
func binaryDetector(hostRunner runner.HostRunner, name string) func(context.Context) (bool, error) {
	return func(_ context.Context) (bool, error) {
		return hostRunner.LookPath(name), nil
	}
}

// aptPackageDetector reports presence by substring-matching the package name
// against the installed-package listing.
//
// This is a deliberately weak contract: a package whose name is a substring of
// another installed package over-matches, and format changes in the listing
// under-match. Steps relying on it must tolerate a redundant install.
func aptPackageDetector(
	hostRunner runner.HostRunner,
	pkg string,
) func(context.Context) (bool, error) {
	return func(ctx context.Context) (bool, error) {
		output, err := hostRunner.Run(ctx, "dpkg-query", "-W", "-f=${Package}\n")
		if err != nil {
			return false, fmt.Errorf("list installed packages: %w", err)
		}

		return strings.Contains(output, pkg), nil
	}
}

// shellAction runs an installer command line through the host shell.
func shellAction(hostRunner runner.HostRunner, script string) func(context.Context) error {
	return func(ctx context.Context) error {
		output, err := hostRunner.Run(ctx, "bash", "-ceu", script)
		if err != nil {
			return fmt.Errorf("%w (output: %s)", err, strings.TrimSpace(output))
		}

		return nil
	}
}
