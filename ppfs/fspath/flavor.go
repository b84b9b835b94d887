package fspath

import "strings"

// Flavor describes one native path grammar: the preferred separator and the
// rule for recognizing a root-name (volume or host) prefix. All other parsing
// is shared between flavors.
//
// Both flavors are available on every platform so that either grammar can be
// parsed anywhere; Native() selects the grammar of the build target.
type Flavor interface {
	// Name identifies the flavor ("posix" or "windows").
	Name() string
	// Separator is the preferred separator byte.
	Separator() byte
	// RootName returns the volume or host prefix of s, or "" if s has none.
	RootName(s string) string
}

type posixFlavor struct{}

type windowsFlavor struct{}

// Posix returns the single-root, forward-slash path grammar.
func Posix() Flavor { return posixFlavor{} }

// Windows returns the drive-letter/UNC, backslash path grammar.
func Windows() Flavor { return windowsFlavor{} }

func (posixFlavor) Name() string    { return "posix" }
func (posixFlavor) Separator() byte { return '/' }

// RootName recognizes the two-slash host designator "//name": exactly two
// leading slashes followed by a printable non-slash character introduce a
// host name running to the next separator, or to the end of the string.
// This is distinct from an ordinary doubled separator, which collapses.
func (posixFlavor) RootName(s string) string {
	if len(s) > 2 && s[0] == '/' && s[1] == '/' && s[2] != '/' && isPrintable(s[2]) {
		pos := strings.IndexByte(s[3:], '/')
		if pos < 0 {
			return s
		}
		return s[:pos+3]
	}
	return ""
}

func (windowsFlavor) Name() string    { return "windows" }
func (windowsFlavor) Separator() byte { return '\\' }

// RootName recognizes a drive-letter prefix ("C:") or a UNC host prefix
// written with either separator.
func (windowsFlavor) RootName(s string) string {
	if len(s) >= 2 && isDriveLetter(s[0]) && s[1] == ':' {
		return s[:2]
	}
	if len(s) > 2 && isAnySeparator(s[0]) && isAnySeparator(s[1]) && !isAnySeparator(s[2]) && isPrintable(s[2]) {
		pos := strings.IndexAny(s[3:], `/\`)
		if pos < 0 {
			return s
		}
		return s[:pos+3]
	}
	return ""
}

func isDriveLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isAnySeparator(b byte) bool {
	return b == '/' || b == '\\'
}

func isPrintable(b byte) bool {
	return b > 0x20 && b < 0x7f
}
