package filesystem

import (
	"io/fs"
	"log/slog"
	"os"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/config"
	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/filesystem/common"
	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/status"
)

// RemoveAllFailed is returned by RemoveAll when the removal could not run.
const RemoveAllFailed = ^uint64(0)

var (
	validation = common.NewValidationUtils()
	safety     = common.NewSafetyUtils()
)

func validate(op string, p fspath.Path) error {
	if err := validation.ValidatePath(p.String()); err != nil {
		return invalidArgument(op, p, err)
	}
	return nil
}

// Exists reports whether p resolves to an existing filesystem object,
// following symlinks.
func Exists(p fspath.Path) bool {
	st, err := status.Stat(p)
	return err == nil && st.Exists()
}

// FileType returns the type of the object p resolves to, following symlinks.
// A missing object yields TypeNotFound; a query failure yields TypeNone.
func FileType(p fspath.Path) status.Type {
	st, err := status.Stat(p)
	if err != nil {
		return status.TypeNone
	}
	return st.Type
}

// IsDirectory reports whether p resolves to a directory.
func IsDirectory(p fspath.Path) bool {
	return FileType(p) == status.TypeDirectory
}

// IsFile reports whether p resolves to a regular file.
func IsFile(p fspath.Path) bool {
	return FileType(p) == status.TypeRegular
}

// IsSymlink reports whether p itself is a symlink, without following it.
func IsSymlink(p fspath.Path) bool {
	st, err := status.Lstat(p)
	return err == nil && st.IsSymlink()
}

// Mkdir creates the directory at p with the given permission bits. It
// returns false without error when something already exists at p.
func Mkdir(p fspath.Path, prms status.Perms) (bool, error) {
	if Exists(p) {
		return false, nil
	}
	if err := os.Mkdir(p.String(), fs.FileMode(prms&status.PermsAll)); err != nil {
		return false, opError("mkdir", p, err)
	}
	return true, nil
}

// Mkdirs creates the directory at p along with every missing parent,
// walking the path component by component. It is idempotent: an already
// existing directory chain yields true without error. A non-directory in
// the chain yields false.
func Mkdirs(p fspath.Path) (bool, error) {
	if err := validate("mkdirs", p); err != nil {
		return false, err
	}

	rootName := p.RootName()
	rootPath := p.RootPath()
	current := fspath.NewIn(p.Flavor(), "")
	for it := p.Begin(); !it.AtEnd(); it.Next() {
		part := it.Value()
		if part.Equal(rootName) {
			current.AssignPath(part)
			continue
		}
		current.Append(part)
		if current.Equal(rootName) || current.Equal(rootPath) {
			continue
		}
		st, err := status.Stat(current)
		if err != nil {
			return false, opError("mkdirs", current, err)
		}
		if !st.Exists() {
			if _, err := Mkdir(current, dirPerms()); err != nil {
				return false, err
			}
		} else if !st.IsDirectory() {
			return false, nil
		}
	}
	slog.Debug("created directory chain", "path", p.String())
	return true, nil
}

func dirPerms() status.Perms {
	if m := config.AppConfig.PPFS.DirPerms; m != 0 {
		return status.Perms(m) & status.PermsAll
	}
	return status.PermsAll
}

// Move renames src to dst. Identical source and destination is a no-op.
func Move(src, dst fspath.Path) error {
	if err := validate("move", src); err != nil {
		return err
	}
	if err := validate("move", dst); err != nil {
		return err
	}
	if src.Equal(dst) {
		return nil
	}
	if err := safety.IsSafeOperation(src.String(), dst.String()); err != nil {
		return &Error{Op: "move", Path: src, Path2: dst, Kind: ErrInvalidArgument, Err: err}
	}
	if err := os.Rename(src.String(), dst.String()); err != nil {
		return opError2("move", src, dst, err)
	}
	slog.Debug("moved", "src", src.String(), "dst", dst.String())
	return nil
}

// Remove deletes the file, symlink or empty directory at p. It returns
// false without error when nothing exists at p.
func Remove(p fspath.Path) (bool, error) {
	st, err := status.Lstat(p)
	if err != nil {
		return false, opError("remove", p, err)
	}
	if !st.Exists() {
		return false, nil
	}
	if err := os.Remove(p.String()); err != nil {
		return false, opError("remove", p, err)
	}
	return true, nil
}

// RemoveAll deletes p and everything beneath it, returning the number of
// objects removed. Symlinked directories are removed as links, never
// descended into. Removal of the filesystem root is refused: the call
// returns RemoveAllFailed with a nil error.
func RemoveAll(p fspath.Path) (uint64, error) {
	if err := validate("remove_all", p); err != nil {
		return RemoveAllFailed, err
	}
	if safety.IsFilesystemRoot(p.String()) {
		slog.Warn("refusing to remove filesystem root", "path", p.String())
		return RemoveAllFailed, nil
	}

	var count uint64
	if IsDirectory(p) && !IsSymlink(p) {
		it, err := NewDirectoryIterator(p)
		if err != nil {
			return RemoveAllFailed, err
		}
		defer it.Close()
		for !it.AtEnd() {
			entry := it.Entry()
			st, err := entry.SymlinkStatus()
			if err != nil {
				return RemoveAllFailed, err
			}
			if st.IsDirectory() && !st.IsSymlink() {
				n, err := RemoveAll(entry.Path())
				if err != nil {
					return RemoveAllFailed, err
				}
				count += n
			} else {
				if _, err := Remove(entry.Path()); err != nil {
					return RemoveAllFailed, err
				}
				count++
			}
			if err := it.Increment(); err != nil {
				return RemoveAllFailed, err
			}
		}
	}
	removed, err := Remove(p)
	if err != nil {
		return RemoveAllFailed, err
	}
	if removed {
		count++
	}
	return count, nil
}

// CreateSymlink creates at link a symbolic link pointing to target. On
// platforms or filesystems without symlink support the error kind is
// ErrNotSupported.
func CreateSymlink(target, link fspath.Path) error {
	if err := os.Symlink(target.String(), link.String()); err != nil {
		return opError2("create_symlink", target, link, err)
	}
	return nil
}

// CreateHardlink creates at link a hard link to target.
func CreateHardlink(target, link fspath.Path) error {
	if err := os.Link(target.String(), link.String()); err != nil {
		return opError2("create_hardlink", target, link, err)
	}
	return nil
}

// ReadSymlink returns the target stored in the symlink at p. A path that is
// not a symlink yields an ErrInvalidArgument error.
func ReadSymlink(p fspath.Path) (fspath.Path, error) {
	st, err := status.Lstat(p)
	if err != nil {
		return fspath.Path{}, opError("read_symlink", p, err)
	}
	if !st.IsSymlink() {
		return fspath.Path{}, invalidArgument("read_symlink", p, syscall.EINVAL)
	}
	target, err := os.Readlink(p.String())
	if err != nil {
		return fspath.Path{}, opError("read_symlink", p, err)
	}
	return fspath.New(target), nil
}

// Equivalent reports whether p1 and p2 resolve to the same filesystem
// object. When exactly one of the two cannot be queried the result is false
// without error; when both fail, an error is returned.
func Equivalent(p1, p2 fspath.Path) (bool, error) {
	fi1, err1 := os.Stat(p1.String())
	fi2, err2 := os.Stat(p2.String())
	if err1 != nil && err2 != nil {
		return false, opError2("equivalent", p1, p2, err1)
	}
	if err1 != nil || err2 != nil {
		return false, nil
	}
	return os.SameFile(fi1, fi2) &&
		fi1.Size() == fi2.Size() &&
		fi1.ModTime().Equal(fi2.ModTime()), nil
}

// FileSize returns the size in bytes of the object p resolves to.
func FileSize(p fspath.Path) (uint64, error) {
	fi, err := os.Stat(p.String())
	if err != nil {
		return 0, opError("file_size", p, err)
	}
	return uint64(fi.Size()), nil
}

// LastWriteTime returns the modification time of the object p resolves to.
func LastWriteTime(p fspath.Path) (time.Time, error) {
	st, meta, err := status.Resolve(p, true)
	if err != nil {
		return time.Time{}, opError("last_write_time", p, err)
	}
	if !st.Exists() {
		return time.Time{}, opError("last_write_time", p, syscall.ENOENT)
	}
	return meta.ModTime, nil
}

// ResizeFile truncates or extends the regular file at p to size bytes.
func ResizeFile(p fspath.Path, size uint64) error {
	if err := os.Truncate(p.String(), int64(size)); err != nil {
		return opError("resize_file", p, err)
	}
	return nil
}

// PermOptions alters how Permissions applies its permission argument.
type PermOptions uint8

const (
	// PermReplace installs the given bits verbatim.
	PermReplace PermOptions = 1 << iota
	// PermAdd ors the given bits into the current permissions.
	PermAdd
	// PermRemove clears the given bits from the current permissions.
	PermRemove
	// PermNofollow applies the change to a symlink itself instead of its
	// target, where the platform supports it.
	PermNofollow
)

// Permissions changes the permission bits of the object at p. Exactly which
// bits are installed depends on the PermReplace/PermAdd/PermRemove mode; at
// least one mode bit is required.
func Permissions(p fspath.Path, prms status.Perms, opts PermOptions) error {
	if opts&(PermReplace|PermAdd|PermRemove) == 0 {
		return invalidArgument("permissions", p, syscall.EINVAL)
	}
	if opts&PermReplace == 0 {
		st, err := status.Lstat(p)
		if err != nil {
			return opError("permissions", p, err)
		}
		if !st.Exists() {
			return opError("permissions", p, syscall.ENOENT)
		}
		if opts&PermAdd != 0 {
			prms = st.Perms | prms
		} else {
			prms = st.Perms &^ prms
		}
	}
	if err := chmod(p, prms&status.PermsAll, opts&PermNofollow != 0); err != nil {
		return opError("permissions", p, err)
	}
	return nil
}

// CurrentPath returns the process working directory.
func CurrentPath() (fspath.Path, error) {
	wd, err := os.Getwd()
	if err != nil {
		return fspath.Path{}, opError("current_path", fspath.Path{}, err)
	}
	return fspath.New(wd), nil
}

// TempDirectoryPath returns the directory for temporary files. A configured
// override wins; otherwise resolution is platform specific.
func TempDirectoryPath() fspath.Path {
	if dir := config.AppConfig.PPFS.TempDir; dir != "" {
		return fspath.New(dir)
	}
	return platformTempDir()
}

// UniqueTempPath returns a path under the temp directory that does not
// collide with concurrent callers. The path is not created.
func UniqueTempPath(prefix string) fspath.Path {
	if prefix == "" {
		prefix = "ppfs"
	}
	return TempDirectoryPath().Join(prefix + "-" + uuid.NewString())
}
