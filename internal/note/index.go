package note

import (
	"maps"
	"slices"
)

// Index is the name-keyed collection of all tracked Notes. At most one
// Note exists per name, and iteration runs in ascending name order.
// The zero value is an empty Index ready for use.
type Index struct {
	notes map[string]Note
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{notes: make(map[string]Note)}
}

// Add canonicalizes path, builds a Note, and registers it. It fails
// with AlreadyExistsError when the name is taken and with
// NotAccessibleError when the file cannot be resolved; the existing
// entry is never replaced.
func (ix *Index) Add(name, path string, tags []string) error {
	if ix.Contains(name) {
		return &AlreadyExistsError{Name: name}
	}

	n, err := New(name, path, tags)
	if err != nil {
		return err
	}

	ix.put(n)
	return nil
}

// Insert registers an already-built Note without touching the
// filesystem. Stored records are re-inserted this way on load, so
// notes whose files have since vanished stay listed.
func (ix *Index) Insert(n Note) error {
	if ix.Contains(n.Name) {
		return &AlreadyExistsError{Name: n.Name}
	}

	n.Tags = cloneTags(n.Tags)
	ix.put(n)
	return nil
}

// Remove drops the Note with the given name and reports whether one
// was present.
func (ix *Index) Remove(name string) bool {
	if !ix.Contains(name) {
		return false
	}
	delete(ix.notes, name)
	return true
}

// Get returns the Note registered under name. The Note carries its own
// copy of the tag list, so callers cannot reach the stored one.
func (ix *Index) Get(name string) (Note, bool) {
	n, ok := ix.notes[name]
	if ok {
		n.Tags = cloneTags(n.Tags)
	}
	return n, ok
}

// Contains reports whether a Note with the given name is registered.
func (ix *Index) Contains(name string) bool {
	_, ok := ix.notes[name]
	return ok
}

// Notes returns all registered Notes in ascending name order. Each
// Note carries its own copy of the tag list.
func (ix *Index) Notes() []Note {
	out := make([]Note, 0, len(ix.notes))
	for _, name := range slices.Sorted(maps.Keys(ix.notes)) {
		n := ix.notes[name]
		n.Tags = cloneTags(n.Tags)
		out = append(out, n)
	}
	return out
}

// Len returns the number of registered Notes.
func (ix *Index) Len() int {
	return len(ix.notes)
}

// Equal reports whether two Indexes hold structurally identical Notes,
// regardless of the order they were registered in.
func (ix *Index) Equal(other *Index) bool {
	if len(ix.notes) != len(other.notes) {
		return false
	}
	for name, n := range ix.notes {
		o, ok := other.notes[name]
		if !ok || !n.Equal(o) {
			return false
		}
	}
	return true
}

// put stores n under its name, initializing the map when the Index is
// a zero value.
func (ix *Index) put(n Note) {
	if ix.notes == nil {
		ix.notes = make(map[string]Note)
	}
	ix.notes[n.Name] = n
}
