// Package services implements the note operations behind the CLI
// commands.
package services

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/scribe-notes/scribe/internal/editor"
	"github.com/scribe-notes/scribe/internal/note"
)

// NoteService runs note operations against a live Index. The editor is
// injected so command logic stays testable without spawning real
// processes.
type NoteService struct {
	editor editor.Editor
}

// NewNoteService creates a NoteService that drafts and edits note
// files with ed.
func NewNoteService(ed editor.Editor) *NoteService {
	return &NoteService{editor: ed}
}

// Add registers an existing file under name with optional tags.
func (s *NoteService) Add(ix *note.Index, name, path string, tags []string) error {
	if err := ix.Add(name, path, tags); err != nil {
		return err
	}

	slog.Debug("Added note", "name", name, "path", path)
	return nil
}

// New creates a file for a brand-new note, drafts its content in the
// editor, and registers it. When path is empty the file goes to
// <name>.txt under the working directory. Returns the path the note
// file was created at.
//
// The file is created before the editor opens; if a later step fails
// it stays on disk but the note is not registered.
func (s *NoteService) New(ix *note.Index, name, path string, tags []string) (string, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", &WorkingDirectoryError{Err: err}
		}
		path = filepath.Join(wd, name+".txt")
	}

	if ix.Contains(name) {
		return "", &note.AlreadyExistsError{Name: name}
	}

	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return "", &PathIsDirectoryError{Path: path}
		}
		return "", &PathAlreadyExistsError{Path: path}
	}

	file, err := os.Create(path)
	if err != nil {
		return "", &FileWriteError{Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return "", &FileWriteError{Path: path, Err: err}
	}

	text, err := s.editor.Draft(name)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, text, 0o600); err != nil {
		return "", &FileWriteError{Path: path, Err: err}
	}

	if err := s.Add(ix, name, path, tags); err != nil {
		return "", err
	}
	return path, nil
}

// Edit opens the named note's file in the editor in place.
func (s *NoteService) Edit(ix *note.Index, name string) error {
	n, ok := ix.Get(name)
	if !ok {
		return &note.NotFoundError{Name: name}
	}

	return s.editor.Edit(n.Path)
}

// Remove drops the named note from the index. The file is untouched.
func (s *NoteService) Remove(ix *note.Index, name string) error {
	if !ix.Remove(name) {
		return &note.NotFoundError{Name: name}
	}

	slog.Debug("Removed note", "name", name)
	return nil
}

// Delete removes the named note's file from disk, then drops the note
// from the index.
func (s *NoteService) Delete(ix *note.Index, name string) error {
	n, ok := ix.Get(name)
	if !ok {
		return &note.NotFoundError{Name: name}
	}

	if err := os.Remove(n.Path); err != nil {
		return &FileDeleteError{Path: n.Path, Err: err}
	}
	ix.Remove(n.Name)

	slog.Debug("Deleted note", "name", name, "path", n.Path)
	return nil
}
