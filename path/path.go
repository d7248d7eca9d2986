// Package path provides the path abstraction used by directory trees:
// an immutable, ordered sequence of string components identifying a
// location in a hierarchy.
//
// Paths support depth, shared-prefix depth and a total lexicographic
// order over their component sequences. The zero value of Path is the
// empty path with depth 0.
package path

import (
	"strings"
)

// Separator delimits path components in textual pathnames.
const Separator = "/"

// Path is an immutable sequence of non-empty string components.
//
// Paths are value types: all operations return new paths and never
// modify the receiver.
type Path struct {
	name  string // canonical pathname, components joined by Separator
	comps []string
}

// Parse creates a path from a pathname like "root/a/b".
//
// The pathname must be non-empty and must not contain leading, trailing
// or doubled separators. Violations are reported as ErrEmptyPath or
// ErrBadPath respectively.
func Parse(pathname string) (Path, error) {
	if pathname == "" {
		return Path{}, ErrEmptyPath
	}
	comps := strings.Split(pathname, Separator)
	for _, c := range comps {
		if c == "" {
			return Path{}, ErrBadPath
		}
	}
	return Path{name: pathname, comps: comps}, nil
}

// Depth returns the number of components of the path.
func (p Path) Depth() int {
	return len(p.comps)
}

// Component returns the i-th component, counting from 0.
func (p Path) Component(i int) (string, error) {
	if i < 0 || i >= len(p.comps) {
		return "", ErrIndexOutOfBounds
	}
	return p.comps[i], nil
}

// Base returns the last component of the path, or "" for the empty path.
func (p Path) Base() string {
	if len(p.comps) == 0 {
		return ""
	}
	return p.comps[len(p.comps)-1]
}

// Prefix returns the path consisting of the first depth components.
//
// depth must be in the range 1 … p.Depth().
func (p Path) Prefix(depth int) (Path, error) {
	if depth < 1 || depth > len(p.comps) {
		return Path{}, ErrIndexOutOfBounds
	}
	comps := p.comps[:depth]
	return Path{
		name:  strings.Join(comps, Separator),
		comps: comps,
	}, nil
}

// SharedPrefixDepth returns the number of leading components p and other
// have in common. The result is bounded by min(p.Depth(), other.Depth()).
func (p Path) SharedPrefixDepth(other Path) int {
	n := min(len(p.comps), len(other.comps))
	shared := 0
	for i := 0; i < n; i++ {
		if p.comps[i] != other.comps[i] {
			break
		}
		shared++
	}
	return shared
}

// Compare orders two paths lexicographically over their component
// sequences. It returns -1, 0 or +1 in the manner of strings.Compare.
func (p Path) Compare(other Path) int {
	n := min(len(p.comps), len(other.comps))
	for i := 0; i < n; i++ {
		if c := strings.Compare(p.comps[i], other.comps[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(p.comps) < len(other.comps):
		return -1
	case len(p.comps) > len(other.comps):
		return 1
	}
	return 0
}

// IsAncestorOf reports whether p is a proper prefix of other.
func (p Path) IsAncestorOf(other Path) bool {
	return len(p.comps) < len(other.comps) &&
		p.SharedPrefixDepth(other) == len(p.comps)
}

// String returns the canonical pathname.
func (p Path) String() string {
	return p.name
}
