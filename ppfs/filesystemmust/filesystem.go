// Package filesystemmust wraps the filesystem package with panic-based error
// handling.
//
// It provides the same operations as the filesystem package, but instead of
// returning errors, all exported functions panic on failure. The panic value
// is the *filesystem.Error the wrapped operation returned.
package filesystemmust

import (
	"time"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/filesystem"
	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/status"
)

// ToAbsolute resolves p to an absolute path.
//
// It panics if resolution fails.
func ToAbsolute(p fspath.Path) fspath.Path {
	return must1(filesystem.ToAbsolute(p))
}

// Mkdir creates the directory at p. It returns false when something already
// exists there.
//
// It panics if creation fails.
func Mkdir(p fspath.Path, prms status.Perms) bool {
	return must1(filesystem.Mkdir(p, prms))
}

// Mkdirs creates the directory at p and every missing parent. It returns
// false when a non-directory blocks the chain.
//
// It panics if creation fails.
func Mkdirs(p fspath.Path) bool {
	return must1(filesystem.Mkdirs(p))
}

// Move renames src to dst.
//
// It panics if the rename fails.
func Move(src, dst fspath.Path) {
	must0(filesystem.Move(src, dst))
}

// Remove deletes the file, symlink or empty directory at p. It returns false
// when nothing exists there.
//
// It panics if the removal fails.
func Remove(p fspath.Path) bool {
	return must1(filesystem.Remove(p))
}

// RemoveAll deletes p and everything beneath it and returns the number of
// objects removed.
//
// It panics if the removal fails, including the refused removal of the
// filesystem root.
func RemoveAll(p fspath.Path) uint64 {
	n, err := filesystem.RemoveAll(p)
	must0(err)
	if n == filesystem.RemoveAllFailed {
		panic(filesystem.ErrInvalidArgument)
	}
	return n
}

// CreateSymlink creates at link a symbolic link pointing to target.
//
// It panics if link creation fails.
func CreateSymlink(target, link fspath.Path) {
	must0(filesystem.CreateSymlink(target, link))
}

// CreateHardlink creates at link a hard link to target.
//
// It panics if link creation fails.
func CreateHardlink(target, link fspath.Path) {
	must0(filesystem.CreateHardlink(target, link))
}

// ReadSymlink returns the target stored in the symlink at p.
//
// It panics if p is not a symlink or cannot be read.
func ReadSymlink(p fspath.Path) fspath.Path {
	return must1(filesystem.ReadSymlink(p))
}

// Equivalent reports whether p1 and p2 resolve to the same filesystem object.
//
// It panics if neither path can be queried.
func Equivalent(p1, p2 fspath.Path) bool {
	return must1(filesystem.Equivalent(p1, p2))
}

// FileSize returns the size in bytes of the object p resolves to.
//
// It panics if the object cannot be queried.
func FileSize(p fspath.Path) uint64 {
	return must1(filesystem.FileSize(p))
}

// LastWriteTime returns the modification time of the object p resolves to.
//
// It panics if the object cannot be queried.
func LastWriteTime(p fspath.Path) time.Time {
	return must1(filesystem.LastWriteTime(p))
}

// HardLinkCount returns the number of hard links to the object p resolves to.
//
// It panics if the object cannot be queried.
func HardLinkCount(p fspath.Path) uint64 {
	return must1(filesystem.HardLinkCount(p))
}

// Permissions changes the permission bits of the object at p.
//
// It panics if the change fails.
func Permissions(p fspath.Path, prms status.Perms, opts filesystem.PermOptions) {
	must0(filesystem.Permissions(p, prms, opts))
}

// ResizeFile truncates or extends the regular file at p to size bytes.
//
// It panics if the resize fails.
func ResizeFile(p fspath.Path, size uint64) {
	must0(filesystem.ResizeFile(p, size))
}

// CurrentPath returns the process working directory.
//
// It panics if the working directory cannot be determined.
func CurrentPath() fspath.Path {
	return must1(filesystem.CurrentPath())
}

// Space reports the capacity of the filesystem holding p.
//
// It panics if the query fails.
func Space(p fspath.Path) filesystem.SpaceInfo {
	return must1(filesystem.Space(p))
}

// ReadDirectory collects every entry of dir into a slice.
//
// It panics if the directory cannot be read.
func ReadDirectory(dir fspath.Path) []*filesystem.DirectoryEntry {
	return must1(filesystem.ReadDirectory(dir))
}
