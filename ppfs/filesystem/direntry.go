package filesystem

import (
	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/status"
)

// DirectoryEntry pairs a path with lazily resolved status information. The
// status is fetched on first access and cached until Assign or Refresh.
type DirectoryEntry struct {
	path fspath.Path
	st   *status.Status
	lst  *status.Status
}

func NewDirectoryEntry(p fspath.Path) *DirectoryEntry {
	return &DirectoryEntry{path: p}
}

func (e *DirectoryEntry) Path() fspath.Path { return e.path }

// Assign repoints the entry at a new path and drops any cached status.
func (e *DirectoryEntry) Assign(p fspath.Path) {
	e.path = p
	e.st = nil
	e.lst = nil
}

// Refresh drops the cached status so the next access re-queries the filesystem.
func (e *DirectoryEntry) Refresh() {
	e.st = nil
	e.lst = nil
}

// Status returns the entry's status, following symlinks.
func (e *DirectoryEntry) Status() (status.Status, error) {
	if e.st != nil {
		return *e.st, nil
	}
	st, err := status.Stat(e.path)
	if err != nil {
		return st, opError("directory_entry.status", e.path, err)
	}
	e.st = &st
	return st, nil
}

// SymlinkStatus returns the entry's status without following symlinks.
func (e *DirectoryEntry) SymlinkStatus() (status.Status, error) {
	if e.lst != nil {
		return *e.lst, nil
	}
	st, err := status.Lstat(e.path)
	if err != nil {
		return st, opError("directory_entry.symlink_status", e.path, err)
	}
	e.lst = &st
	return st, nil
}
