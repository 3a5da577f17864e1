package cmd

import (
	"github.com/spf13/cobra"

	"github.com/devstrap/devstrap/pkg/di"
	"github.com/devstrap/devstrap/pkg/svc/verify"
)

// NewCheckCmd creates the check command.
func NewCheckCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "check",
		Short:        "Verify that provisioned configuration is in place",
		Long:         "Verify that the materialized configuration artifacts exist and contain their expected markers. Exits non-zero when any check fails.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runtimeContainer.Invoke(func(di.Injector) error {
				return handleCheckRunE(cmd)
			})
		},
	}

	return cmd
}

// --- internals ---

func handleCheckRunE(cmd *cobra.Command) error {
	config, err := loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	homeDir := homeDirFor(config.Spec.RemoteUser)

	_, err = verify.Run(cmd.OutOrStdout(), verify.DefaultAssertions(homeDir))
	if err != nil {
		return err
	}

	return nil
}
