package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureSubdDir_CreatesDirectory(t *testing.T) {
	tmp := t.TempDir()

	got, err := EnsureSubdDir(tmp, "backups")
	require.NoError(t, err)

	want := filepath.Join(tmp, "backups")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		perm := fi.Mode().Perm()
		require.Equal(t, os.FileMode(0o700), perm&0o700)
	}
}

func TestEnsureDir_NestedAndIdempotent(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "a", "b", "c")

	first, err := EnsureDir(dir)
	require.NoError(t, err)

	second, err := EnsureDir(dir)
	require.NoError(t, err)

	require.Equal(t, first, second)
	fi, err := os.Stat(second)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureSubdDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "backups"), []byte("x"), 0o600))

	_, err := EnsureSubdDir(tmp, "backups")
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestExists(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "data.json")

	require.False(t, Exists(p))
	require.NoError(t, os.WriteFile(p, []byte("{}"), 0o600))
	require.True(t, Exists(p))
}

func TestWriteFileAtomic_ReplacesContentAndLeavesNoTemp(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "data.json")

	require.NoError(t, WriteFileAtomic(p, []byte("first"), 0o600))
	require.NoError(t, WriteFileAtomic(p, []byte("second"), 0o600))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, "second", string(b))

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must be cleaned up")
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing", "data.json")
	require.Error(t, WriteFileAtomic(p, []byte("x"), 0o600))
}
