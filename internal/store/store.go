// Package store persists the note Index as a YAML document at a fixed
// per-user location.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/scribe-notes/scribe/internal/note"
)

// document is the on-disk shape of the store file.
type document struct {
	Notes []record `yaml:"notes"`
}

// record is one persisted note.
type record struct {
	Name string   `yaml:"name"`
	Path string   `yaml:"path"`
	Tags []string `yaml:"tags,omitempty"`
}

// Validate checks that a stored record carries the fields a note
// cannot exist without.
func (r *record) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Path, validation.Required),
	)
}

// Load reads the store file at path and rebuilds the Index. A missing
// file yields an empty Index. Everything else that keeps the file from
// round-tripping, including YAML syntax errors, records without a name
// or path, and duplicate names, yields ReadError.
func Load(path string) (*note.Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("No store file yet, starting empty", "path", path)
			return note.NewIndex(), nil
		}
		return nil, &ReadError{Path: path, Err: err}
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	ix := note.NewIndex()
	for i := range doc.Notes {
		r := &doc.Notes[i]
		if err := r.Validate(); err != nil {
			return nil, &ReadError{Path: path, Err: fmt.Errorf("note %d: %w", i, err)}
		}
		if err := ix.Insert(note.Note{Name: r.Name, Path: r.Path, Tags: r.Tags}); err != nil {
			return nil, &ReadError{Path: path, Err: fmt.Errorf("note %d: %w", i, err)}
		}
	}

	slog.Debug("Loaded note index", "path", path, "notes", ix.Len())
	return ix, nil
}

// Save writes the Index to path, creating parent directories as
// needed. Records are written in name order. The write is staged
// through a temp file and renamed into place so a failed save cannot
// clobber the previous store.
func Save(path string, ix *note.Index) error {
	notes := ix.Notes()
	doc := document{Notes: make([]record, 0, len(notes))}
	for _, n := range notes {
		doc.Notes = append(doc.Notes, record{Name: n.Name, Path: n.Path, Tags: n.Tags})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".scribe-tmp-*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	success = true

	slog.Debug("Saved note index", "path", path, "notes", len(notes))
	return nil
}
