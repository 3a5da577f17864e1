package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devstrap/devstrap/pkg/cli/cmd"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "tilde prefix", path: "~/.devstrap", want: filepath.Join(home, ".devstrap")},
		{name: "bare tilde", path: "~", want: home},
		{name: "absolute path untouched", path: "/var/lib/devstrap", want: "/var/lib/devstrap"},
		{name: "tilde mid-path untouched", path: "/data/~backup", want: "/data/~backup"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, cmd.ExpandPath(testCase.path))
		})
	}
}

func TestHomeDirForUnknownUser(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/home/no-such-devstrap-user", cmd.HomeDirFor("no-such-devstrap-user"))
}
