package materializer

import (
	_ "embed"
	"path/filepath"
)

// Embedded defaults shipped with the binary so a bootstrap never needs
// network access for its own configuration.
var (
	//go:embed defaults/starship.toml
	defaultStarshipConfig []byte

	//go:embed defaults/init.lua
	defaultEditorConfig []byte

	//go:embed defaults/aliases.sh
	defaultAliases []byte
)

// AliasesTargetPath is the system-wide profile script the aliases install to.
const AliasesTargetPath = "/etc/profile.d/devstrap-aliases.sh"

// DefaultArtifacts returns the configuration artifacts devstrap manages for
// the given user.
//
// homeDir is the user's home directory; repoConfigDir is the directory
// holding repo-tracked overrides (typically "config" in the workspace) and
// may point at a non-existing directory, in which case only defaults apply.
func DefaultArtifacts(username, homeDir, repoConfigDir string) []Artifact {
	return []Artifact{
		{
			Name:       "starship",
			TargetPath: filepath.Join(homeDir, ".config", "starship.toml"),
			SourcePath: filepath.Join(repoConfigDir, "starship.toml"),
			Default:    defaultStarshipConfig,
			Owner:      username,
		},
		{
			Name:       "neovim",
			TargetPath: filepath.Join(homeDir, ".config", "nvim", "init.lua"),
			SourcePath: filepath.Join(repoConfigDir, "nvim", "init.lua"),
			Default:    defaultEditorConfig,
			Owner:      username,
		},
		{
			Name:       "aliases",
			TargetPath: AliasesTargetPath,
			SourcePath: filepath.Join(repoConfigDir, "aliases.sh"),
			Default:    defaultAliases,
			// Profile scripts stay root-owned; readable via filePerm.
		},
	}
}
