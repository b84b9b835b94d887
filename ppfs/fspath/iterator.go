package fspath

// Iterator is a bidirectional cursor over the components of a Path. It
// produces the root-name (if any) as one component, then each
// separator-delimited segment, with a final empty component when the native
// string ends in a separator. Runs of redundant separators collapse to a
// single boundary, except that exactly two leading separators are preserved
// as a root-name signal.
//
// The iterator walks the string captured at creation; it does not observe
// later mutation of the Path it came from.
type Iterator struct {
	s    string
	fl   Flavor
	last int
	root int
	pos  int
	cur  Path
}

// Begin returns an iterator positioned at the first component.
func (p Path) Begin() Iterator { return p.iter(0) }

// End returns the past-the-end iterator.
func (p Path) End() Iterator { return p.iter(len(p.s)) }

// Components collects every component by forward iteration.
func (p Path) Components() []Path {
	var out []Path
	for it := p.Begin(); !it.AtEnd(); it.Next() {
		out = append(out, it.Value())
	}
	return out
}

func (p Path) iter(pos int) Iterator {
	it := Iterator{s: p.s, fl: p.flavor(), last: len(p.s), pos: pos}
	it.root = it.findRoot()
	it.updateCurrent()
	return it
}

// Value returns the component under the cursor as a Path.
func (it *Iterator) Value() Path { return it.cur }

// AtEnd reports whether the cursor is past the last component.
func (it *Iterator) AtEnd() bool { return it.pos == it.last }

// Equal reports whether two iterators sit at the same position of the same
// string range.
func (it *Iterator) Equal(other Iterator) bool {
	return it.pos == other.pos && it.s == other.s
}

// Next advances past the current component, collapsing any separator run
// that is neither the root marker nor the final separator.
func (it *Iterator) Next() {
	sep := it.fl.Separator()
	it.pos = it.next(it.pos)
	for it.pos != it.last && it.pos != it.root && it.s[it.pos] == sep && it.pos+1 != it.last {
		it.pos++
	}
	it.updateCurrent()
}

// Prev moves back to the previous component.
func (it *Iterator) Prev() {
	it.pos = it.prev(it.pos)
	it.updateCurrent()
}

// findRoot locates the offset of the root-directory marker: the separator
// following a drive prefix, the first byte of a lone leading separator, or
// the boundary after a two-separator host designator. Returns last when the
// path has no root marker.
func (it *Iterator) findRoot() int {
	s, sep := it.s, it.fl.Separator()
	if isWindows(it.fl) && it.last >= 3 && isDriveLetter(s[0]) && s[1] == ':' && s[2] == sep {
		return 2
	}
	if it.last > 0 && s[0] == sep {
		if it.last >= 2 && s[1] == sep && !(it.last >= 3 && s[2] == sep) {
			return it.next(0)
		}
		return 0
	}
	return it.last
}

// next returns the offset one past the component starting at pos.
func (it *Iterator) next(pos int) int {
	s, sep, last := it.s, it.fl.Separator(), it.last
	i := pos
	fromStart := i == 0
	if i == last {
		return i
	}
	c := s[i]
	i++
	if c == sep {
		if i < last && s[i] == sep {
			if fromStart && !(i+1 < last && s[i+1] == sep) {
				// Exactly two leading separators: everything up to the next
				// separator is the host designator.
				i++
				for i < last && s[i] != sep {
					i++
				}
			} else {
				for i < last && s[i] == sep {
					i++
				}
			}
		}
	} else {
		if fromStart && isWindows(it.fl) && i < last && s[i] == ':' {
			i++
		} else {
			for i < last && s[i] != sep {
				i++
			}
		}
	}
	return i
}

// prev returns the offset of the component preceding pos.
func (it *Iterator) prev(pos int) int {
	s, sep := it.s, it.fl.Separator()
	i := pos
	if i == 0 {
		return i
	}
	i--
	if i != it.root && (pos != it.last || s[i] != sep) {
		if isWindows(it.fl) {
			j := i - 1
			for j >= 0 && s[j] != '\\' && s[j] != '/' && s[j] != ':' {
				j--
			}
			i = j + 1
			if i > 0 && i < it.last && s[i] == ':' {
				i++
			}
		} else {
			j := i - 1
			for j >= 0 && s[j] != sep {
				j--
			}
			i = j + 1
		}
		if i == 2 && s[0] == sep && s[1] == sep {
			i -= 2
		}
	}
	return i
}

func (it *Iterator) updateCurrent() {
	sep := it.fl.Separator()
	if it.pos != 0 && it.pos != it.last && it.s[it.pos] == sep && it.pos != it.root && it.pos+1 == it.last {
		it.cur = Path{fl: it.fl}
		return
	}
	it.cur = Path{s: it.s[it.pos:it.next(it.pos)], fl: it.fl}
	if cs := it.cur.s; len(cs) > 1 && cs[0] == sep && cs[len(cs)-1] == sep {
		it.cur = Path{s: string(sep), fl: it.fl}
	}
}
