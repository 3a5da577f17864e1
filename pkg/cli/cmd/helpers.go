package cmd

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	v1alpha1 "github.com/devstrap/devstrap/pkg/apis/bootstrap/v1alpha1"
	"github.com/devstrap/devstrap/pkg/io/configmanager"
)

// loadConfig loads the bootstrap configuration with diagnostics on writer.
func loadConfig(writer io.Writer) (*v1alpha1.Bootstrap, error) {
	manager := configmanager.NewConfigManager(writer)

	config, err := manager.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	return config, nil
}

// homeDirFor returns the home directory of the named user, falling back to
// the conventional /home path when the user is not present in the passwd
// database yet.
func homeDirFor(username string) string {
	usr, err := user.Lookup(username)
	if err == nil && usr.HomeDir != "" {
		return usr.HomeDir
	}

	return filepath.Join("/home", username)
}

// timingEnabled reports whether the timing flag is set.
func timingEnabled(flags *pflag.FlagSet) bool {
	enabled, err := flags.GetBool(TimingFlagName)

	return err == nil && enabled
}

// expandPath resolves a leading "~/" against the current user's home
// directory. Paths without the prefix pass through unchanged.
func expandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
