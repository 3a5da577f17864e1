package cmd

import (
	"github.com/devstrap/devstrap/pkg/fsutil/materializer"
)

// Test seams.
var (
	ExpandPath = expandPath
	HomeDirFor = homeDirFor
)

// SetDefaultArtifacts replaces the artifact source used by the up command and
// returns a restore function.
func SetDefaultArtifacts(
	artifactsFunc func(username, homeDir, repoConfigDir string) []materializer.Artifact,
) func() {
	previous := defaultArtifacts
	defaultArtifacts = artifactsFunc

	return func() { defaultArtifacts = previous }
}
