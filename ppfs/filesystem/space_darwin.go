//go:build darwin

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
	bsize := uint64(sfs.Bsize)
	return SpaceInfo{
		Capacity:  bsize * sfs.Blocks,
		Free:      bsize * sfs.Bfree,
		Available: bsize * uint64(sfs.Bavail),
	}, nil
}
