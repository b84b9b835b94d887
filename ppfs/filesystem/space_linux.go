//go:build linux

package filesystem

import (
	"golang.org/x/sys/unix"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
)

// Space reports the capacity of the filesystem holding p.
func Space(p fspath.Path) (SpaceInfo, error) {
	var sfs unix.Statfs_t
	if err := unix.Statfs(p.String(), &sfs); err != nil {
		return SpaceInfo{}, opError("space", p, err)
	}
	frsize := uint64(sfs.Frsize)
	return SpaceInfo{
		Capacity:  frsize * sfs.Blocks,
		Free:      frsize * sfs.Bfree,
		Available: frsize * sfs.Bavail,
	}, nil
}
