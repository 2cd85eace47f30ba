package store

import "fmt"

// ReadError reports a store file that exists but could not be read
// back into an Index.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports an Index that could not be written to the store
// file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not write to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
