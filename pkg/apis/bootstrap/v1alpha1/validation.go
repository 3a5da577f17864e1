package v1alpha1

import (
	"fmt"
	"regexp"
)

// clusterNameRegex matches DNS-1123 subdomain names: lowercase alphanumeric with optional hyphens.
// Must start with a letter, end with alphanumeric, and be at most 63 characters.
// Kind reuses the name for Docker container names and the kubeconfig context,
// both of which require DNS-1123 subdomain names.
var clusterNameRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$|^[a-z]$`)

// ClusterNameMaxLength is the maximum length for a cluster name.
const ClusterNameMaxLength = 63

// ValidateClusterName validates that a cluster name is non-empty and
// DNS-1123 compliant. Returns nil if the name is valid, or an error
// describing the validation failure. Nothing downstream substitutes a
// default, so an empty name would reach kind verbatim.
func ValidateClusterName(name string) error {
	if name == "" {
		return ErrClusterNameEmpty
	}

	if len(name) > ClusterNameMaxLength {
		return fmt.Errorf(
			"%w: %q exceeds max %d characters (got %d)",
			ErrClusterNameTooLong, name, ClusterNameMaxLength, len(name),
		)
	}

	if !clusterNameRegex.MatchString(name) {
		return fmt.Errorf(
			"%w: %q must be DNS-1123 compliant "+
				"(lowercase letters, numbers, and hyphens; must start with a letter; "+
				"must not end with a hyphen)",
			ErrClusterNameInvalid, name,
		)
	}

	return nil
}

// Validate checks the full bootstrap specification for consistency.
func (b *Bootstrap) Validate() error {
	if b.Spec.RemoteUser == "" {
		return ErrRemoteUserEmpty
	}

	err := ValidateClusterName(b.Spec.Cluster.Name)
	if err != nil {
		return err
	}

	if b.Spec.Docker.PollAttempts <= 0 {
		return fmt.Errorf("%w: got %d", ErrPollAttemptsInvalid, b.Spec.Docker.PollAttempts)
	}

	if b.Spec.Docker.PollInterval < 0 {
		return fmt.Errorf("%w: got %s", ErrPollIntervalInvalid, b.Spec.Docker.PollInterval)
	}

	return nil
}
