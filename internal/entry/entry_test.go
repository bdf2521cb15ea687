package entry

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFromMode(t *testing.T) {
	assert.Equal(t, KindFile, KindFromMode(0o644))
	assert.Equal(t, KindDir, KindFromMode(fs.ModeDir|0o755))
	assert.Equal(t, KindSymlink, KindFromMode(fs.ModeSymlink|0o777))
	assert.Equal(t, KindOther, KindFromMode(fs.ModeNamedPipe))
	assert.Equal(t, "symlink", KindSymlink.String())
}

func TestPermissionFromMode(t *testing.T) {
	assert.Equal(t, ReadOnly, PermissionFromMode(0o444))
	assert.Equal(t, ReadWrite, PermissionFromMode(0o644))
	assert.Equal(t, ReadWrite, PermissionFromMode(0o402))
	assert.Equal(t, "r--", ReadOnly.String())
	assert.Equal(t, "rw-", ReadWrite.String())
}

func TestNewRecordFromLstat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))
	when := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, when, when))

	info, err := os.Lstat(path)
	require.NoError(t, err)

	r := NewRecord(path, 1, info)
	assert.Equal(t, path, r.Path)
	assert.Equal(t, "notes.md", r.Name)
	assert.Equal(t, KindFile, r.Kind)
	assert.False(t, r.IsDir())
	assert.Equal(t, uint64(5), r.Size)
	assert.Equal(t, 1, r.Depth)
	require.NotNil(t, r.ModTime)
	assert.True(t, r.ModTime.Equal(when))
}

func TestNewRecordDirectoryHasZeroSize(t *testing.T) {
	dir := t.TempDir()
	info, err := os.Lstat(dir)
	require.NoError(t, err)

	r := NewRecord(dir, 0, info)
	assert.True(t, r.IsDir())
	assert.Equal(t, uint64(0), r.Size)
}
