package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/status"
)

func writeTestFile(t *testing.T, path string, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestExistsAndTypeQueries(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	writeTestFile(t, file, "data")

	assert.True(t, Exists(fspath.New(dir)))
	assert.True(t, Exists(fspath.New(file)))
	assert.False(t, Exists(fspath.New(filepath.Join(dir, "missing"))))

	assert.True(t, IsDirectory(fspath.New(dir)))
	assert.False(t, IsDirectory(fspath.New(file)))
	assert.True(t, IsFile(fspath.New(file)))
	assert.False(t, IsFile(fspath.New(dir)))

	assert.Equal(t, status.TypeRegular, FileType(fspath.New(file)))
	assert.Equal(t, status.TypeDirectory, FileType(fspath.New(dir)))
	assert.Equal(t, status.TypeNotFound, FileType(fspath.New(filepath.Join(dir, "missing"))))
}

func TestMkdir(t *testing.T) {
	dir := t.TempDir()
	target := fspath.New(filepath.Join(dir, "newdir"))

	created, err := Mkdir(target, status.PermsAll)
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, IsDirectory(target))

	// Second call is a no-op, not an error.
	created, err = Mkdir(target, status.PermsAll)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestMkdirsCreatesChain(t *testing.T) {
	dir := t.TempDir()
	target := fspath.New(filepath.Join(dir, "a", "b", "c"))

	ok, err := Mkdirs(target)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, IsDirectory(target))
}

func TestMkdirsIdempotent(t *testing.T) {
	dir := t.TempDir()
	target := fspath.New(filepath.Join(dir, "x", "y"))

	_, err := Mkdirs(target)
	require.NoError(t, err)

	ok, err := Mkdirs(target)
	require.NoError(t, err)
	assert.True(t, ok, "existing chain must report success")
}

func TestMkdirsBlockedByFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	writeTestFile(t, blocker, "in the way")

	ok, err := Mkdirs(fspath.New(filepath.Join(blocker, "child")))
	require.NoError(t, err)
	assert.False(t, ok, "a non-directory in the chain fails without error")
}

func TestMkdirsEmptyPath(t *testing.T) {
	_, err := Mkdirs(fspath.New(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	writeTestFile(t, src, "payload")

	require.NoError(t, Move(fspath.New(src), fspath.New(dst)))
	assert.False(t, Exists(fspath.New(src)))
	assert.True(t, Exists(fspath.New(dst)))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestMoveSamePathIsNoOp(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "same.txt")
	writeTestFile(t, src, "x")

	require.NoError(t, Move(fspath.New(src), fspath.New(src)))
	assert.True(t, Exists(fspath.New(src)))
}

func TestMoveParentIntoChildRefused(t *testing.T) {
	dir := t.TempDir()
	parent := filepath.Join(dir, "parent")
	require.NoError(t, os.MkdirAll(filepath.Join(parent, "child"), 0o755))

	err := Move(fspath.New(parent), fspath.New(filepath.Join(parent, "child", "inner")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	writeTestFile(t, file, "x")

	removed, err := Remove(fspath.New(file))
	require.NoError(t, err)
	assert.True(t, removed)

	// Absent target reports false without error.
	removed, err = Remove(fspath.New(file))
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRemoveAllCountsEveryObject(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "tree")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	writeTestFile(t, filepath.Join(root, "a.txt"), "a")
	writeTestFile(t, filepath.Join(root, "sub", "b.txt"), "b")

	count, err := RemoveAll(fspath.New(root))
	require.NoError(t, err)
	assert.Equal(t, uint64(4), count, "a.txt, sub/b.txt, sub and tree itself")
	assert.False(t, Exists(fspath.New(root)))
}

func TestRemoveAllMissingTarget(t *testing.T) {
	count, err := RemoveAll(fspath.New(filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}

func TestRemoveAllRefusesFilesystemRoot(t *testing.T) {
	count, err := RemoveAll(fspath.New("/"))
	require.NoError(t, err, "the refusal is reported through the count, not an error")
	assert.Equal(t, RemoveAllFailed, count)
}

func TestRemoveAllDoesNotFollowSymlinkedDirectories(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(dir, "outside")
	require.NoError(t, os.Mkdir(outside, 0o755))
	protected := filepath.Join(outside, "keep.txt")
	writeTestFile(t, protected, "keep me")

	doomed := filepath.Join(dir, "doomed")
	require.NoError(t, os.Mkdir(doomed, 0o755))
	require.NoError(t, os.Symlink(outside, filepath.Join(doomed, "link")))

	count, err := RemoveAll(fspath.New(doomed))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count, "the link and the directory, not the link target's contents")
	assert.True(t, Exists(fspath.New(protected)), "contents behind the symlink must survive")
}

func TestSymlinkRoundTrip(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	link := filepath.Join(dir, "link")
	writeTestFile(t, target, "x")

	require.NoError(t, CreateSymlink(fspath.New(target), fspath.New(link)))
	assert.True(t, IsSymlink(fspath.New(link)))

	got, err := ReadSymlink(fspath.New(link))
	require.NoError(t, err)
	assert.Equal(t, target, got.String())
}

func TestReadSymlinkOnRegularFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	writeTestFile(t, file, "x")

	_, err := ReadSymlink(fspath.New(file))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCreateHardlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	link := filepath.Join(dir, "hardlink")
	writeTestFile(t, target, "x")

	require.NoError(t, CreateHardlink(fspath.New(target), fspath.New(link)))

	count, err := HardLinkCount(fspath.New(target))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)
}

func TestHardLinkCountMissing(t *testing.T) {
	_, err := HardLinkCount(fspath.New(filepath.Join(t.TempDir(), "missing")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEquivalent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	file := filepath.Join(dir, "file.txt")
	writeTestFile(t, file, "x")

	viaDetour := filepath.Join(dir, "sub", "..", "file.txt")
	same, err := Equivalent(fspath.New(file), fspath.New(viaDetour))
	require.NoError(t, err)
	assert.True(t, same, "two spellings of the same object are equivalent")

	other := filepath.Join(dir, "other.txt")
	writeTestFile(t, other, "y")
	same, err = Equivalent(fspath.New(file), fspath.New(other))
	require.NoError(t, err)
	assert.False(t, same)
}

func TestEquivalentErrorContract(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	writeTestFile(t, file, "x")
	missing := filepath.Join(dir, "missing")

	// One side unqueryable: false without error.
	same, err := Equivalent(fspath.New(file), fspath.New(missing))
	require.NoError(t, err)
	assert.False(t, same)

	// Both sides unqueryable: an error.
	_, err = Equivalent(fspath.New(missing), fspath.New(missing+"2"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileSizeAndResize(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.bin")
	writeTestFile(t, file, "12345")

	size, err := FileSize(fspath.New(file))
	require.NoError(t, err)
	assert.Equal(t, uint64(5), size)

	require.NoError(t, ResizeFile(fspath.New(file), 2))
	size, err = FileSize(fspath.New(file))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), size)

	require.NoError(t, ResizeFile(fspath.New(file), 100))
	size, err = FileSize(fspath.New(file))
	require.NoError(t, err)
	assert.Equal(t, uint64(100), size)
}

func TestLastWriteTime(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	writeTestFile(t, file, "x")

	mtime, err := LastWriteTime(fspath.New(file))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), mtime, time.Minute)

	_, err = LastWriteTime(fspath.New(filepath.Join(dir, "missing")))
	require.Error(t, err)
}

func TestPermissions(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	writeTestFile(t, file, "x")

	require.NoError(t, Permissions(fspath.New(file), 0o600, PermReplace))
	st, err := status.Stat(fspath.New(file))
	require.NoError(t, err)
	assert.Equal(t, status.Perms(0o600), st.Perms)

	require.NoError(t, Permissions(fspath.New(file), 0o044, PermAdd))
	st, _ = status.Stat(fspath.New(file))
	assert.Equal(t, status.Perms(0o644), st.Perms)

	require.NoError(t, Permissions(fspath.New(file), 0o044, PermRemove))
	st, _ = status.Stat(fspath.New(file))
	assert.Equal(t, status.Perms(0o600), st.Perms)
}

func TestPermissionsRequiresMode(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	writeTestFile(t, file, "x")

	err := Permissions(fspath.New(file), 0o600, PermNofollow)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestToAbsolute(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	writeTestFile(t, file, "x")
	t.Chdir(dir)

	abs, err := ToAbsolute(fspath.New("file.txt"))
	require.NoError(t, err)
	assert.True(t, abs.IsAbsolute())
	assert.Equal(t, "file.txt", abs.Filename().String())

	_, err = ToAbsolute(fspath.New(""))
	require.Error(t, err)

	_, err = ToAbsolute(fspath.New("no-such-entry"))
	require.Error(t, err, "every component must exist")
}

func TestCurrentPath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cwd, err := CurrentPath()
	require.NoError(t, err)
	assert.True(t, cwd.IsAbsolute())
}

func TestTempDirectoryPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TMPDIR", dir)

	assert.Equal(t, dir, TempDirectoryPath().String())

	t.Setenv("TMPDIR", "")
	t.Setenv("TMP", "")
	t.Setenv("TEMP", "")
	t.Setenv("TEMPDIR", "")
	assert.Equal(t, "/tmp", TempDirectoryPath().String())
}

func TestUniqueTempPath(t *testing.T) {
	first := UniqueTempPath("job")
	second := UniqueTempPath("job")

	assert.NotEqual(t, first.String(), second.String())
	assert.True(t, strings.HasPrefix(first.Filename().String(), "job-"))
	assert.False(t, Exists(first), "the path is reserved, not created")
}

func TestSpace(t *testing.T) {
	info, err := Space(fspath.New(t.TempDir()))
	require.NoError(t, err)
	assert.Greater(t, info.Capacity, uint64(0))
	assert.LessOrEqual(t, info.Free, info.Capacity)
	assert.LessOrEqual(t, info.Available, info.Capacity)
}
