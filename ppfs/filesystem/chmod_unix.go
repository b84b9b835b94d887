//go:build unix

package filesystem

import (
	"io/fs"
	"os"

	"golang.org/x/sys/unix"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/status"
)

func chmod(p fspath.Path, prms status.Perms, nofollow bool) error {
	if nofollow {
		// Linux rejects AT_SYMLINK_NOFOLLOW with EOPNOTSUPP, which the
		// caller surfaces as a not-supported error.
		return unix.Fchmodat(unix.AT_FDCWD, p.String(), uint32(prms), unix.AT_SYMLINK_NOFOLLOW)
	}
	return os.Chmod(p.String(), fs.FileMode(prms))
}
