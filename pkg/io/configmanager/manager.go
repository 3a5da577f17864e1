// Package configmanager loads devstrap configuration from files, environment
// variables, and defaults.
//
// Configuration priority: defaults < devstrap.yaml < environment variables.
// The REMOTE_USER variable is honored directly (without the DEVSTRAP_ prefix)
// because dev container runtimes export it under that exact name.
package configmanager

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	v1alpha1 "github.com/devstrap/devstrap/pkg/apis/bootstrap/v1alpha1"
	"github.com/devstrap/devstrap/pkg/ui/notify"
)

// ConfigFileName is the base name of the devstrap configuration file.
const ConfigFileName = "devstrap"

// EnvPrefix is the prefix for devstrap-specific environment variables.
const EnvPrefix = "DEVSTRAP"

// ConfigManager loads and caches the bootstrap configuration.
type ConfigManager struct {
	Viper  *viper.Viper
	Config *v1alpha1.Bootstrap
	Writer io.Writer

	configLoaded bool
}

// NewConfigManager creates a configuration manager that writes load
// notifications to the given writer.
func NewConfigManager(writer io.Writer) *ConfigManager {
	return &ConfigManager{
		Viper:  InitializeViper(),
		Config: v1alpha1.NewBootstrap(),
		Writer: writer,
	}
}

// InitializeViper constructs a Viper instance with devstrap's config paths and
// environment bindings.
func InitializeViper() *viper.Viper {
	viperInstance := viper.New()

	viperInstance.SetConfigName(ConfigFileName)
	viperInstance.SetConfigType("yaml")
	viperInstance.AddConfigPath(".")
	viperInstance.AddConfigPath("$HOME/.config/devstrap")

	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperInstance.AutomaticEnv()

	// REMOTE_USER wins over DEVSTRAP_SPEC_REMOTEUSER; dev container runtimes
	// export the former.
	_ = viperInstance.BindEnv("spec.remoteUser", "REMOTE_USER", "DEVSTRAP_SPEC_REMOTEUSER")
	_ = viperInstance.BindEnv("spec.workspaceRoot", "DEVSTRAP_SPEC_WORKSPACEROOT")
	_ = viperInstance.BindEnv("spec.stateDir", "DEVSTRAP_SPEC_STATEDIR")
	_ = viperInstance.BindEnv("spec.cluster.name", "DEVSTRAP_SPEC_CLUSTER_NAME")
	_ = viperInstance.BindEnv("spec.cluster.waitTimeout", "DEVSTRAP_SPEC_CLUSTER_WAITTIMEOUT")
	_ = viperInstance.BindEnv("spec.docker.pollAttempts", "DEVSTRAP_SPEC_DOCKER_POLLATTEMPTS")
	_ = viperInstance.BindEnv("spec.docker.pollInterval", "DEVSTRAP_SPEC_DOCKER_POLLINTERVAL")

	return viperInstance
}

// LoadConfig loads the configuration from files and environment variables.
// Returns the loaded config (either freshly loaded or previously cached) and an
// error if loading or validation failed.
func (m *ConfigManager) LoadConfig() (*v1alpha1.Bootstrap, error) {
	if m.configLoaded {
		return m.Config, nil
	}

	err := m.Viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// Missing config file is fine; defaults and environment apply.
	} else if m.Writer != nil {
		notify.Infof(m.Writer, "using config file %s", m.Viper.ConfigFileUsed())
	}

	// Unmarshal over a pre-defaulted struct so absent keys keep their defaults.
	err = m.Viper.Unmarshal(m.Config)
	if err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	err = m.Config.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	m.configLoaded = true

	return m.Config, nil
}
