package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icfactor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: 35\nworkers: 4\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 35, cfg.N)
	assert.Equal(t, 4, cfg.Workers)
	// Untouched fields keep their defaults.
	assert.Equal(t, Defaults().MaxNodes, cfg.MaxNodes)
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cfg := Defaults()
	cfg.N = 1
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.N = 6
	assert.NoError(t, cfg.Validate())
}
