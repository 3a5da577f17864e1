package materializer_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devstrap/devstrap/pkg/fsutil/materializer"
)

var errChownDenied = errors.New("operation not permitted")

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestMaterializeSourceOverrideAlwaysWins(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := filepath.Join(dir, "repo", "starship.toml")
	target := filepath.Join(dir, "home", ".config", "starship.toml")

	writeFile(t, source, "tracked override")
	writeFile(t, target, "ad hoc user edit")

	var out bytes.Buffer

	outcome, err := materializer.New(&out).Materialize(materializer.Artifact{
		Name:       "starship",
		TargetPath: target,
		SourcePath: source,
		Default:    []byte("embedded default"),
	})

	require.NoError(t, err)
	assert.Equal(t, materializer.CopiedFromSource, outcome)
	assert.Equal(t, "tracked override", readFile(t, target))
}

func TestMaterializeWritesDefaultToFreshTarget(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, ".config", "nvim", "init.lua")

	var out bytes.Buffer

	outcome, err := materializer.New(&out).Materialize(materializer.Artifact{
		Name:       "neovim",
		TargetPath: target,
		SourcePath: filepath.Join(dir, "repo", "missing.lua"),
		Default:    []byte("embedded default"),
	})

	require.NoError(t, err)
	assert.Equal(t, materializer.WroteDefault, outcome)
	assert.Equal(t, "embedded default", readFile(t, target))
}

func TestMaterializePreservesExistingWithoutOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "aliases.sh")

	writeFile(t, target, "user customization")

	var out bytes.Buffer

	outcome, err := materializer.New(&out).Materialize(materializer.Artifact{
		Name:       "aliases",
		TargetPath: target,
		SourcePath: filepath.Join(dir, "repo", "missing.sh"),
		Default:    []byte("embedded default"),
	})

	require.NoError(t, err)
	assert.Equal(t, materializer.LeftExisting, outcome)
	assert.Equal(t, "user customization", readFile(t, target), "target must stay byte-for-byte unchanged")
}

func TestMaterializeChownFailureIsNonFatal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "starship.toml")

	var out bytes.Buffer

	mat := materializer.New(&out)
	mat.SetChown(func(_, _ string) error {
		return errChownDenied
	})

	outcome, err := mat.Materialize(materializer.Artifact{
		Name:       "starship",
		TargetPath: target,
		Default:    []byte("content"),
		Owner:      "someone",
	})

	require.NoError(t, err, "chown failure must not fail materialization")
	assert.Equal(t, materializer.WroteDefault, outcome)
	assert.Contains(t, out.String(), "ownership not applied")
}

func TestMaterializeChownsPreservedTarget(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "starship.toml")

	writeFile(t, target, "existing")

	chownCalls := 0

	mat := materializer.New(nil)
	mat.SetChown(func(path, username string) error {
		chownCalls++

		assert.Equal(t, target, path)
		assert.Equal(t, "someone", username)

		return nil
	})

	outcome, err := mat.Materialize(materializer.Artifact{
		Name:       "starship",
		TargetPath: target,
		Default:    []byte("default"),
		Owner:      "someone",
	})

	require.NoError(t, err)
	assert.Equal(t, materializer.LeftExisting, outcome)

	// Content stays byte-for-byte, but ownership is still applied.
	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(content))
	assert.Equal(t, 1, chownCalls, "preserved targets still get their owner applied")
}

func TestMaterializeSkipsChownWithoutOwner(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "aliases.sh")

	chownCalls := 0

	mat := materializer.New(nil)
	mat.SetChown(func(_, _ string) error {
		chownCalls++

		return nil
	})

	outcome, err := mat.Materialize(materializer.Artifact{
		Name:       "aliases",
		TargetPath: target,
		Default:    []byte("alias k='kubectl'\n"),
	})

	require.NoError(t, err)
	assert.Equal(t, materializer.WroteDefault, outcome)
	assert.Equal(t, 0, chownCalls, "artifacts without an owner are left to the default owner")
}

func TestMaterializeAllContinuesPastFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// A target whose parent is an unwritable file forces a write failure.
	blocked := filepath.Join(dir, "blocked")
	writeFile(t, blocked, "file, not a directory")

	var out bytes.Buffer

	outcomes := materializer.New(&out).MaterializeAll([]materializer.Artifact{
		{
			Name:       "broken",
			TargetPath: filepath.Join(blocked, "nested", "file"),
			Default:    []byte("x"),
		},
		{
			Name:       "fine",
			TargetPath: filepath.Join(dir, "fine.toml"),
			Default:    []byte("y"),
		},
	})

	assert.NotContains(t, outcomes, "broken")
	assert.Equal(t, materializer.WroteDefault, outcomes["fine"])
	assert.Contains(t, out.String(), "failed to materialize broken")
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "copied from source", materializer.CopiedFromSource.String())
	assert.Equal(t, "wrote default", materializer.WroteDefault.String())
	assert.Equal(t, "left existing", materializer.LeftExisting.String())
}
