package v1alpha1

import "errors"

var (
	// ErrClusterNameEmpty is returned when the cluster name resolves to an empty string.
	ErrClusterNameEmpty = errors.New("cluster name must not be empty")

	// ErrClusterNameTooLong is returned when a cluster name exceeds the DNS-1123 length limit.
	ErrClusterNameTooLong = errors.New("cluster name too long")

	// ErrClusterNameInvalid is returned when a cluster name is not DNS-1123 compliant.
	ErrClusterNameInvalid = errors.New("invalid cluster name")

	// ErrPollAttemptsInvalid is returned when the Docker poll attempt budget is not positive.
	ErrPollAttemptsInvalid = errors.New("docker poll attempts must be positive")

	// ErrPollIntervalInvalid is returned when the Docker poll interval is negative.
	ErrPollIntervalInvalid = errors.New("docker poll interval must not be negative")

	// ErrRemoteUserEmpty is returned when the remote user resolves to an empty string.
	ErrRemoteUserEmpty = errors.New("remote user must not be empty")
)
