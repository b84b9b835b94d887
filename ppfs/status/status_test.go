package status

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
)

func TestTypeString(t *testing.T) {
	assert.Equal(t, "regular", TypeRegular.String())
	assert.Equal(t, "directory", TypeDirectory.String())
	assert.Equal(t, "symlink", TypeSymlink.String())
	assert.Equal(t, "not_found", TypeNotFound.String())
	assert.Equal(t, "none", TypeNone.String())
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, Status{Type: TypeRegular}.Exists())
	assert.True(t, Status{Type: TypeRegular}.IsRegular())
	assert.True(t, Status{Type: TypeDirectory}.IsDirectory())
	assert.True(t, Status{Type: TypeSymlink}.IsSymlink())
	assert.False(t, Status{Type: TypeNotFound}.Exists())
	assert.False(t, Status{Type: TypeNone}.Exists())
}

func TestStatRegularFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0o644))
	require.NoError(t, os.Chmod(file, 0o640))

	st, err := Stat(fspath.New(file))
	require.NoError(t, err)
	assert.Equal(t, TypeRegular, st.Type)
	assert.Equal(t, Perms(0o640), st.Perms)
}

func TestStatDirectory(t *testing.T) {
	dir := t.TempDir()

	st, err := Stat(fspath.New(dir))
	require.NoError(t, err)
	assert.True(t, st.IsDirectory())
}

func TestStatMissingIsNotAnError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	st, err := Stat(fspath.New(missing))
	require.NoError(t, err, "absence must not surface as an error")
	assert.Equal(t, TypeNotFound, st.Type)
	assert.Equal(t, PermsUnknown, st.Perms)
	assert.False(t, st.Exists())
}

func TestStatFollowsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
	require.NoError(t, os.Symlink(target, link))

	st, err := Stat(fspath.New(link))
	require.NoError(t, err)
	assert.Equal(t, TypeRegular, st.Type, "stat follows the link to its target")

	lst, err := Lstat(fspath.New(link))
	require.NoError(t, err)
	assert.Equal(t, TypeSymlink, lst.Type, "lstat reports the link itself")
}

func TestStatDanglingSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "nowhere"), link))

	lst, err := Lstat(fspath.New(link))
	require.NoError(t, err)
	assert.Equal(t, TypeSymlink, lst.Type)

	st, err := Stat(fspath.New(link))
	require.NoError(t, err)
	assert.Equal(t, TypeNotFound, st.Type)
}

func TestResolveMeta(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0o644))

	st, meta, err := Resolve(fspath.New(file), true)
	require.NoError(t, err)
	assert.True(t, st.IsRegular())
	assert.Equal(t, uint64(1), meta.HardLinks)
	assert.False(t, meta.ModTime.IsZero())
}
