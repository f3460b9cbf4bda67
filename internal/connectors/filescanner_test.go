package connectors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.csv"), []byte("x,y\n1,2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.tsv"), []byte("x\ty\n1\t2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "c.txt"), []byte("not data"), 0o644))
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "d.csv"), []byte("x\n1\n"), 0o644))
	return root
}

func TestDiscoverFilesNonRecursive(t *testing.T) {
	root := seedTree(t)

	files, count, err := DiscoverFiles(root, DataExtensions, DiscoveryOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, files, 2)
}

func TestDiscoverFilesRecursive(t *testing.T) {
	root := seedTree(t)

	_, count, err := DiscoverFiles(root, DataExtensions, DiscoveryOptions{Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestDiscoverFilesSizeFilter(t *testing.T) {
	root := seedTree(t)

	_, count, err := DiscoverFiles(root, DataExtensions, DiscoveryOptions{MinSize: 1 << 20})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestDiscoverFilesBadRoot(t *testing.T) {
	_, _, err := DiscoverFiles(filepath.Join(t.TempDir(), "missing"), DataExtensions, DiscoveryOptions{})
	assert.Error(t, err)

	_, _, err = DiscoverFiles("", DataExtensions, DiscoveryOptions{})
	assert.Error(t, err)
}
