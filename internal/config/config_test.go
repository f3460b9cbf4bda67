package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3.0, c.ZThreshold)
	assert.Equal(t, 0, c.Workers)
	assert.False(t, c.Recursive)
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("z_threshold: 2.5\nworkers: 4\nrecursive: true\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.5, c.ZThreshold)
	assert.Equal(t, 4, c.Workers)
	assert.True(t, c.Recursive)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := &Config{ZThreshold: 2.0, Workers: 8, Recursive: true, Output: "report.txt"}
	require.NoError(t, Save(want, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
