package oidpath

import (
	"slices"
	"strings"
)

// DefaultPath is the field converted when no paths are given.
const DefaultPath = "_id"

// PathSpec is a compiled set of dot-separated field paths.
//
// A PathSpec is immutable. Match returns the narrowed set for a child key;
// it never modifies the receiver.
type PathSpec struct {
	leaf  bool       // the current value is itself a conversion target
	paths [][]string // remaining segments, each non-empty
}

// ParsePaths compiles dotted paths into a PathSpec.
// With no arguments it returns DefaultPaths. Duplicates collapse.
func ParsePaths(paths ...string) (PathSpec, error) {
	if len(paths) == 0 {
		return DefaultPaths(), nil
	}

	spec := PathSpec{paths: make([][]string, 0, len(paths))}
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if p == "" {
			return PathSpec{}, newConfigError(ErrInvalidPathSpec, p, "")
		}
		segments := strings.Split(p, ".")
		if slices.Contains(segments, "") {
			return PathSpec{}, newConfigError(ErrInvalidPathSpec, p, "")
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		spec.paths = append(spec.paths, segments)
	}
	return spec, nil
}

// MustParsePaths is like ParsePaths but panics on error.
func MustParsePaths(paths ...string) PathSpec {
	spec, err := ParsePaths(paths...)
	if err != nil {
		panic(err)
	}
	return spec
}

// DefaultPaths returns the spec for DefaultPath.
func DefaultPaths() PathSpec {
	return PathSpec{paths: [][]string{{DefaultPath}}}
}

// Match narrows the spec to the subtree under key: every path whose first
// segment equals key, with that segment removed. A path consumed entirely
// marks the result as a leaf.
func (s PathSpec) Match(key string) PathSpec {
	var out PathSpec
	for _, segments := range s.paths {
		if segments[0] != key {
			continue
		}
		if len(segments) == 1 {
			out.leaf = true
			continue
		}
		out.paths = append(out.paths, segments[1:])
	}
	return out
}

// IsLeaf reports whether the value at this position is a conversion target.
func (s PathSpec) IsLeaf() bool {
	return s.leaf
}

// Empty reports whether nothing at or below this position is converted.
func (s PathSpec) Empty() bool {
	return !s.leaf && len(s.paths) == 0
}

// Len returns the number of remaining paths, counting a leaf as one.
func (s PathSpec) Len() int {
	n := len(s.paths)
	if s.leaf {
		n++
	}
	return n
}

// Strings returns the remaining paths in dotted form, sorted.
// A leaf is reported as the empty string.
func (s PathSpec) Strings() []string {
	out := make([]string, 0, s.Len())
	if s.leaf {
		out = append(out, "")
	}
	for _, segments := range s.paths {
		out = append(out, strings.Join(segments, "."))
	}
	slices.Sort(out)
	return out
}

// asRoot marks the spec as targeting the document root itself, so that a
// bare identifier passed in place of a document is converted directly.
func (s PathSpec) asRoot() PathSpec {
	s.leaf = true
	return s
}
