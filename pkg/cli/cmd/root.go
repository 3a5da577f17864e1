// Package cmd assembles the devstrap command tree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	runtime "github.com/devstrap/devstrap/pkg/di"
)

// TimingFlagName is the persistent flag toggling per-run timing output.
const TimingFlagName = "timing"

// NewRootCmd creates and returns the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	runtimeContainer := runtime.NewRuntime()

	cmd := &cobra.Command{
		Use:          "devstrap",
		Short:        "devstrap provisions reproducible dev containers",
		Long:         "devstrap provisions reproducible dev containers: tools, configuration, Docker readiness, and a local Kind cluster.",
		RunE:         handleRootRunE,
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	cmd.PersistentFlags().Bool(
		TimingFlagName,
		false,
		"Show per-activity timing output",
	)

	cmd.AddCommand(NewUpCmd(runtimeContainer))
	cmd.AddCommand(NewCheckCmd(runtimeContainer))

	return cmd
}

// Execute runs the provided root command and wraps any execution error.
func Execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// --- internals ---

// handleRootRunE handles the root command.
func handleRootRunE(cmd *cobra.Command, _ []string) error {
	// The err can safely be ignored, as it can never fail at runtime.
	_ = cmd.Help()

	return nil
}
