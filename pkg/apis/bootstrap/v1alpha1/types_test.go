package v1alpha1_test

import (
	"strings"
	"testing"
	"time"

	v1alpha1 "github.com/devstrap/devstrap/pkg/apis/bootstrap/v1alpha1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBootstrapDefaults(t *testing.T) {
	t.Parallel()

	cfg := v1alpha1.NewBootstrap()

	assert.Equal(t, "devstrap.dev/v1alpha1", cfg.APIVersion)
	assert.Equal(t, "Bootstrap", cfg.Kind)
	assert.Equal(t, "vscode", cfg.Spec.RemoteUser)
	assert.Equal(t, "/workspace", cfg.Spec.WorkspaceRoot)
	assert.Equal(t, "dev", cfg.Spec.Cluster.Name)
	assert.Equal(t, 30, cfg.Spec.Docker.PollAttempts)
	assert.Equal(t, 2*time.Second, cfg.Spec.Docker.PollInterval)
	assert.Equal(t, 5*time.Minute, cfg.Spec.Cluster.WaitTimeout)
}

func TestNewBootstrapValidatesCleanly(t *testing.T) {
	t.Parallel()

	require.NoError(t, v1alpha1.NewBootstrap().Validate())
}

func TestValidateRejectsEmptyRemoteUser(t *testing.T) {
	t.Parallel()

	cfg := v1alpha1.NewBootstrap()
	cfg.Spec.RemoteUser = ""

	require.ErrorIs(t, cfg.Validate(), v1alpha1.ErrRemoteUserEmpty)
}

func TestValidateRejectsEmptyClusterName(t *testing.T) {
	t.Parallel()

	cfg := v1alpha1.NewBootstrap()
	cfg.Spec.Cluster.Name = ""

	require.ErrorIs(t, cfg.Validate(), v1alpha1.ErrClusterNameEmpty)
}

func TestValidateRejectsNonPositivePollAttempts(t *testing.T) {
	t.Parallel()

	cfg := v1alpha1.NewBootstrap()
	cfg.Spec.Docker.PollAttempts = 0

	require.ErrorIs(t, cfg.Validate(), v1alpha1.ErrPollAttemptsInvalid)
}

func TestValidateRejectsNegativePollInterval(t *testing.T) {
	t.Parallel()

	cfg := v1alpha1.NewBootstrap()
	cfg.Spec.Docker.PollInterval = -time.Second

	require.ErrorIs(t, cfg.Validate(), v1alpha1.ErrPollIntervalInvalid)
}

func TestValidateClusterName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cluster string
		wantErr error
	}{
		{name: "empty rejected", cluster: "", wantErr: v1alpha1.ErrClusterNameEmpty},
		{name: "simple", cluster: "dev", wantErr: nil},
		{name: "single letter", cluster: "a", wantErr: nil},
		{name: "with hyphen", cluster: "dev-cluster", wantErr: nil},
		{name: "uppercase rejected", cluster: "Dev", wantErr: v1alpha1.ErrClusterNameInvalid},
		{name: "leading digit rejected", cluster: "1dev", wantErr: v1alpha1.ErrClusterNameInvalid},
		{name: "trailing hyphen rejected", cluster: "dev-", wantErr: v1alpha1.ErrClusterNameInvalid},
		{
			name:    "too long rejected",
			cluster: "a" + strings.Repeat("b", v1alpha1.ClusterNameMaxLength),
			wantErr: v1alpha1.ErrClusterNameTooLong,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := v1alpha1.ValidateClusterName(testCase.cluster)

			if testCase.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, testCase.wantErr)
			}
		})
	}
}
