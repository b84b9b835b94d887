//go:build windows

package filesystem

import (
	"io/fs"
	"os"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/status"
)

func chmod(p fspath.Path, prms status.Perms, nofollow bool) error {
	// Windows has no symlink-local permission bits; the nofollow request
	// degrades to a regular attribute change.
	_ = nofollow
	return os.Chmod(p.String(), fs.FileMode(prms))
}
