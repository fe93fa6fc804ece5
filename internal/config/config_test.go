package config

import (
	"AdminDeck/internal/paths"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	paths.ConfigHomeOverride = tempDir
	paths.StateHomeOverride = tempDir
	t.Cleanup(func() {
		paths.ConfigHomeOverride = ""
		paths.StateHomeOverride = ""
	})
	return tempDir
}

func TestSaveAndLoad(t *testing.T) {
	useTempConfig(t)

	conf := Default()
	conf.UI.Theme = "TestTheme"
	conf.UI.LineCharacters = false
	conf.Modal.Size = "xl"
	conf.Brand.Licensed = true

	require.NoError(t, SaveAppConfig(conf))

	loaded, err := LoadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, "TestTheme", loaded.UI.Theme)
	assert.False(t, loaded.UI.LineCharacters)
	assert.Equal(t, "xl", loaded.Modal.Size)
	assert.True(t, loaded.Brand.Licensed)
}

func TestLoadWritesDefaults(t *testing.T) {
	useTempConfig(t)

	loaded, err := LoadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, Default().Modal, loaded.Modal)

	_, err = os.Stat(paths.GetConfigFilePath())
	assert.NoError(t, err, "defaults should be written on first load")
}

func TestLoadRejectsUnknownEnums(t *testing.T) {
	useTempConfig(t)

	path := paths.GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("[modal]\nclosed_by = \"sometimes\"\n"), 0644))

	_, err := LoadAppConfig()
	assert.ErrorContains(t, err, "modal.closed_by")
}

func TestLoadReportsSyntaxErrors(t *testing.T) {
	useTempConfig(t)

	path := paths.GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("[ui\n"), 0644))

	loaded, err := LoadAppConfig()
	assert.Error(t, err)
	assert.Equal(t, Default().UI, loaded.UI)
}

func TestExpandVariables(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x"), ExpandVariables(filepath.Join("${HOME}", "x")))
	assert.Equal(t, "//", ExpandVariables("/${NOT_A_KNOWN_VAR}/"))
}
