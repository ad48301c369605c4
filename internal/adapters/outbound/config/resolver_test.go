package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/valemcp/valemcp/internal/adapters/outbound/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestResolver_ExplicitWinsOverOverride(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "override.ini")
	explicit := filepath.Join(dir, "explicit.ini")
	writeFile(t, override, "[*]\n")
	writeFile(t, explicit, "[*]\n")

	r := appconfig.NewResolver(override)

	assert.Equal(t, explicit, r.Resolve(explicit))
}

func TestResolver_ReadableOverrideUsed(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, ".vale.ini")
	writeFile(t, override, "[*]\n")

	r := appconfig.NewResolver(override)

	assert.Equal(t, override, r.Resolve(""))
}

func TestResolver_MissingOverrideFallsThroughToConventionFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, filepath.Join(dir, ".vale.ini"), "[*]\n")

	r := appconfig.NewResolver(filepath.Join(dir, "does-not-exist.ini"))

	got := r.Resolve("")
	assert.Equal(t, ".vale.ini", filepath.Base(got))
	assert.True(t, filepath.IsAbs(got))
}

func TestResolver_NothingFoundMeansNone(t *testing.T) {
	t.Chdir(t.TempDir())

	r := appconfig.NewResolver("")

	assert.Empty(t, r.Resolve(""))
}

func TestResolver_RelativeExplicitResolvedAgainstCWD(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, filepath.Join(dir, "custom.ini"), "[*]\n")

	r := appconfig.NewResolver("")

	got := r.Resolve("custom.ini")
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, "custom.ini", filepath.Base(got))
}
