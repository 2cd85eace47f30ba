// Package editor launches the user's external text editor.
package editor

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

// Editor abstracts the external editor so command logic can run
// without spawning real processes.
type Editor interface {
	// Draft opens an empty temporary buffer named after the note and
	// returns its contents once the editor exits.
	Draft(name string) ([]byte, error)

	// Edit opens the file at path in place and blocks until the
	// editor exits.
	Edit(path string) error
}

// LaunchError reports an editor that could not be run to completion.
type LaunchError struct {
	Editor string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("could not open editor %s: %v", e.Editor, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// Exec is the Editor implementation backed by a real subprocess. The
// editor binary comes from $EDITOR, then $VISUAL, then vi.
type Exec struct{}

// Draft edits a fresh buffer and returns whatever the user saved.
func (Exec) Draft(name string) ([]byte, error) {
	command := editorCommand()

	tempDir, err := os.MkdirTemp("", "scribe-draft-")
	if err != nil {
		return nil, &LaunchError{Editor: command, Err: err}
	}
	defer os.RemoveAll(tempDir)

	tempFile := filepath.Join(tempDir, name+".txt")
	if err := os.WriteFile(tempFile, nil, 0o600); err != nil {
		return nil, &LaunchError{Editor: command, Err: err}
	}

	if err := run(command, tempFile); err != nil {
		return nil, err
	}

	text, err := os.ReadFile(tempFile)
	if err != nil {
		return nil, &LaunchError{Editor: command, Err: err}
	}
	return text, nil
}

// Edit opens path directly; the editor saves to it in place.
func (Exec) Edit(path string) error {
	return run(editorCommand(), path)
}

// editorCommand resolves the editor binary from the environment.
func editorCommand() string {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "vi"
	}
	return editor
}

// run hands the terminal over to the editor until it exits.
func run(command, path string) error {
	slog.Debug("Opening editor", "editor", command, "file", path)

	editorCmd := exec.Command(command, path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return &LaunchError{Editor: command, Err: err}
	}
	return nil
}
