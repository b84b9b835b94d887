package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
)

// DirectoryIterator walks the immediate children of a directory, one entry at
// a time, skipping the "." and ".." pseudo-entries. The underlying handle is
// released as soon as the iterator is exhausted or an error occurs; Close may
// be called to release it earlier.
type DirectoryIterator struct {
	base  fspath.Path
	f     *os.File
	entry DirectoryEntry
}

// NewDirectoryIterator opens dir and positions the iterator at its first
// entry. An empty path or a directory the caller may not read yields an
// exhausted iterator without error.
func NewDirectoryIterator(dir fspath.Path) (*DirectoryIterator, error) {
	it := &DirectoryIterator{base: dir}
	if dir.Empty() {
		return it, nil
	}
	f, err := os.Open(dir.String())
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return it, nil
		}
		return it, opError("directory_iterator", dir, err)
	}
	it.f = f
	if err := it.Increment(); err != nil {
		return it, err
	}
	return it, nil
}

// End returns the exhausted sentinel iterator.
func End() *DirectoryIterator {
	return &DirectoryIterator{}
}

// AtEnd reports whether the iterator is exhausted.
func (it *DirectoryIterator) AtEnd() bool {
	return it == nil || it.entry.Path().Empty()
}

// Entry returns the entry at the current position. It is only valid while
// AtEnd is false.
func (it *DirectoryIterator) Entry() *DirectoryEntry { return &it.entry }

// Path returns the full path of the current entry.
func (it *DirectoryIterator) Path() fspath.Path { return it.entry.Path() }

// Increment advances to the next entry. On exhaustion the current entry is
// cleared and the handle released; the iterator then compares equal to End.
func (it *DirectoryIterator) Increment() error {
	if it.f == nil {
		it.entry.Assign(fspath.Path{})
		return nil
	}
	for {
		names, err := it.f.Readdirnames(1)
		if err != nil {
			failed := it.base
			it.release()
			it.entry.Assign(fspath.Path{})
			if errors.Is(err, io.EOF) {
				return nil
			}
			return opError("directory_iterator.increment", failed, err)
		}
		if len(names) == 0 {
			it.release()
			it.entry.Assign(fspath.Path{})
			return nil
		}
		if names[0] == "." || names[0] == ".." {
			continue
		}
		it.entry.Assign(it.base.Join(names[0]))
		return nil
	}
}

// Equal reports whether two iterators denote the same position: both
// exhausted, or pointing at the same current path.
func (it *DirectoryIterator) Equal(other *DirectoryIterator) bool {
	if it.AtEnd() || other.AtEnd() {
		return it.AtEnd() && other.AtEnd()
	}
	return it.entry.Path().Equal(other.entry.Path())
}

// Close releases the directory handle. It is safe to call on an exhausted
// iterator.
func (it *DirectoryIterator) Close() error {
	if it == nil || it.f == nil {
		return nil
	}
	err := it.f.Close()
	it.f = nil
	return err
}

func (it *DirectoryIterator) release() {
	if it.f != nil {
		it.f.Close()
		it.f = nil
	}
}

// ReadDirectory collects every entry of dir into a slice. Entries are
// returned in directory order, which is unspecified.
func ReadDirectory(dir fspath.Path) ([]*DirectoryEntry, error) {
	it, err := NewDirectoryIterator(dir)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var entries []*DirectoryEntry
	for !it.AtEnd() {
		entries = append(entries, NewDirectoryEntry(it.Path()))
		if err := it.Increment(); err != nil {
			return nil, err
		}
	}
	return entries, nil
}
