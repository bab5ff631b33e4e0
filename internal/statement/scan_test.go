package statement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "import")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jan.csv"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "processed"), 0o755))

	files, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "jan.csv", files[0].Name)
	assert.Equal(t, filepath.Join(dir, "jan.csv"), files[0].Path)
}

func TestScan_NoImportDir(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestMarkProcessed(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "import")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jan.csv"), []byte("x"), 0o644))

	require.NoError(t, MarkProcessed(root, "jan.csv"))

	_, err := os.Stat(filepath.Join(dir, "jan.csv"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "processed", "jan.csv"))
	require.NoError(t, err)
}
