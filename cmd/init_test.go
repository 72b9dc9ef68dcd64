package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/stackpick/internal/config"
)

func TestInit_WritesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	res := executeIn(t, dir, "init")
	require.NoError(t, res.err)
	assert.Equal(t, -1, res.exitCode, res.stderr)
	assert.Equal(t, "Wrote .stackpickrc.json\n", res.stdout)

	data, err := os.ReadFile(filepath.Join(dir, ".stackpickrc.json"))
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, json.Unmarshal(data, &cfg))
	assert.Equal(t, *config.Default(), cfg)
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".stackpickrc.json", `{"format": "json"}`)

	res := executeIn(t, dir, "init")
	assert.Equal(t, 1, res.exitCode)
	assert.Contains(t, res.stderr, "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"format": "json"}`, string(data))
}

func TestInit_Force(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".stackpickrc.json", `{"format": "json"}`)

	res := executeIn(t, dir, "init", "--force", "-q")
	require.NoError(t, res.err)
	assert.Equal(t, -1, res.exitCode, res.stderr)
	assert.Empty(t, res.stdout)

	data, err := os.ReadFile(filepath.Join(dir, ".stackpickrc.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"format": "console"`)
}
