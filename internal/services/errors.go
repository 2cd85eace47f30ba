package services

import "fmt"

// PathIsDirectoryError reports a new-note target that is a directory.
type PathIsDirectoryError struct {
	Path string
}

func (e *PathIsDirectoryError) Error() string {
	return fmt.Sprintf("%s is a directory, not a file", e.Path)
}

// PathAlreadyExistsError reports a new-note target that something
// already occupies.
type PathAlreadyExistsError struct {
	Path string
}

func (e *PathAlreadyExistsError) Error() string {
	return fmt.Sprintf("a file at %s already exists", e.Path)
}

// FileWriteError reports a note file that could not be created or
// written.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("could not write to %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }

// FileDeleteError reports a note file that could not be deleted.
type FileDeleteError struct {
	Path string
	Err  error
}

func (e *FileDeleteError) Error() string {
	return fmt.Sprintf("could not delete %s: %v", e.Path, e.Err)
}

func (e *FileDeleteError) Unwrap() error { return e.Err }

// WorkingDirectoryError reports that the working directory could not
// be resolved while defaulting a new note's path.
type WorkingDirectoryError struct {
	Err error
}

func (e *WorkingDirectoryError) Error() string {
	return fmt.Sprintf("could not access current directory: %v", e.Err)
}

func (e *WorkingDirectoryError) Unwrap() error { return e.Err }
