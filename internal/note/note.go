// Package note defines the Note record and the name-keyed Index of all
// tracked notes.
package note

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
)

var errIsDirectory = errors.New("is a directory")

// Note identifies one tracked plaintext file. Name is the unique key
// used for equality and ordering, Path is the canonical absolute
// location of the file, and Tags is an optional ordered list of labels.
type Note struct {
	Name string
	Path string
	Tags []string
}

// New builds a Note for the file at path. The path is resolved to its
// canonical form: absolute, symlink-free, and pointing at an existing
// regular file. Paths that are missing, unresolvable, or directories
// are rejected with NotAccessibleError.
func New(name, path string, tags []string) (Note, error) {
	canonical, err := canonicalize(path)
	if err != nil {
		return Note{}, err
	}

	return Note{
		Name: name,
		Path: canonical,
		Tags: cloneTags(tags),
	}, nil
}

// Equal reports whether two Notes are structurally identical: same
// name, same path, and element-wise equal tags. A nil tag list and an
// empty one compare equal.
func (n Note) Equal(other Note) bool {
	return n.Name == other.Name &&
		n.Path == other.Path &&
		slices.Equal(n.Tags, other.Tags)
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &NotAccessibleError{Path: path, Err: err}
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &NotAccessibleError{Path: path, Err: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", &NotAccessibleError{Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &NotAccessibleError{Path: path, Err: errIsDirectory}
	}

	return resolved, nil
}

// cloneTags copies the caller's tag list so a Note never aliases it.
// Empty lists normalize to nil, keeping "no tags" a single value.
func cloneTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	return slices.Clone(tags)
}
