package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theodore-s-beers/hemistich/internal/model"
)

// writeConfig writes content to a config file with the given name in a
// temp directory and returns the path.
func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestDefault verifies the built-in corpus configuration.
func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{"hafiz-1", "hafiz-2"}, cfg.Directories)
	assert.Equal(t, "*.txt", cfg.Pattern)
	assert.Equal(t, 28, cfg.WarnThreshold)
}

// TestLoadJSONC verifies that comments and trailing commas are accepted
// in .jsonc files.
func TestLoadJSONC(t *testing.T) {
	path := writeConfig(t, "corpus.jsonc", `{
  // Divans to scan, in order
  "directories": ["divan-a", "divan-b"],
  "pattern": "*.ghazal",
  "warnThreshold": 40, // long poems are fine here
}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"divan-a", "divan-b"}, cfg.Directories)
	assert.Equal(t, "*.ghazal", cfg.Pattern)
	assert.Equal(t, 40, cfg.WarnThreshold)
}

// TestLoadJSON verifies that plain JSON parses through the JSONC path.
func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "corpus.json", `{"directories": ["d"]}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, cfg.Directories)
}

// TestLoadYAML verifies the YAML branch.
func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "corpus.yaml", `directories:
  - divan-a
pattern: "*.txt"
warnThreshold: 32
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"divan-a"}, cfg.Directories)
	assert.Equal(t, "*.txt", cfg.Pattern)
	assert.Equal(t, 32, cfg.WarnThreshold)
}

// TestLoadFillsDefaults verifies that omitted fields fall back to the
// built-in defaults.
func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, "corpus.yaml", `directories: [mydir]`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"mydir"}, cfg.Directories)
	assert.Equal(t, "*.txt", cfg.Pattern, "pattern falls back to default")
	assert.Equal(t, 28, cfg.WarnThreshold, "threshold falls back to default")
}

// TestLoadUnsupportedExtension verifies the format dispatch error.
func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "corpus.toml", `directories = ["d"]`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config format")
}

// TestLoadMissingFile verifies the error for an unreadable path.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok, "expected a CLIError")
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)
}

// TestLoadMalformedYAML verifies that a parse failure is wrapped rather
// than returned raw.
func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "corpus.yaml", "directories: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML config")
}
