//go:build unix

package filesystem

import (
	"syscall"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/status"
)

// HardLinkCount returns the number of hard links to the object p resolves to.
func HardLinkCount(p fspath.Path) (uint64, error) {
	st, meta, err := status.Resolve(p, true)
	if err != nil {
		return 0, opError("hard_link_count", p, err)
	}
	if !st.Exists() {
		return 0, opError("hard_link_count", p, syscall.ENOENT)
	}
	return meta.HardLinks, nil
}
