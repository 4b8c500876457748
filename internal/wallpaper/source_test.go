package wallpaper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("img"), 0644))
}

func TestListFlat(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.png"))
	writeFile(t, filepath.Join(dir, "a.png"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	writeFile(t, filepath.Join(dir, "sub", "c.png"))

	files, err := List(dir, false)
	require.NoError(t, err)

	// Subdirectory contents are skipped without recursion; os.ReadDir
	// sorts entries by name.
	assert.Equal(t, []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "b.png"),
	}, files)
}

func TestListRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.png"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "deep"), 0755))
	writeFile(t, filepath.Join(dir, "sub", "b.png"))
	writeFile(t, filepath.Join(dir, "sub", "deep", "c.png"))

	files, err := List(dir, true)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "sub", "b.png"),
		filepath.Join(dir, "sub", "deep", "c.png"),
	}, files)
}

func TestListMissingDirectory(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "does-not-exist"), false)
	assert.Error(t, err)
}

func TestListEmptyDirectory(t *testing.T) {
	files, err := List(t.TempDir(), false)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestListReturnsAbsolutePaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.png"))

	files, err := List(dir, false)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, filepath.IsAbs(files[0]))
}
