package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureParentDir_CreatesNestedDirectoryInCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureParentDir(filepath.Join("data", "medico", "journal.db"))
	require.NoError(t, err)

	dir := filepath.Join(tmp, "data", "medico")
	resolved, err := filepath.EvalSymlinks(filepath.Dir(got))
	require.NoError(t, err)
	wantResolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	require.Equal(t, wantResolved, resolved)
	require.Equal(t, "journal.db", filepath.Base(got))

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		perm := fi.Mode().Perm()
		require.Equal(t, os.FileMode(0o700), perm&0o700)
	}

	_, err = os.Stat(got)
	require.True(t, os.IsNotExist(err), "the file itself is not created")
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "j", "journal.db")

	first, err := EnsureParentDir(p)
	require.NoError(t, err)
	second, err := EnsureParentDir(p)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureParentDir_FailsWhenParentIsAFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := EnsureParentDir(filepath.Join(blocker, "journal.db"))
	require.Error(t, err)
}

func TestIsPlainPath(t *testing.T) {
	require.True(t, IsPlainPath("journal.db"))
	require.True(t, IsPlainPath("/var/lib/medico/journal.db"))
	require.False(t, IsPlainPath(":memory:"))
	require.False(t, IsPlainPath("file:journal?mode=memory&cache=shared"))
	require.False(t, IsPlainPath(""))
}

func TestIsInMemory(t *testing.T) {
	require.True(t, IsInMemory(":memory:"))
	require.True(t, IsInMemory("file:journal?mode=memory&cache=shared"))
	require.False(t, IsInMemory("journal.db"))
	require.False(t, IsInMemory("file:journal.db?_pragma=busy_timeout(5000)"))
}
