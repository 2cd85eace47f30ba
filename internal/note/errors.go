package note

import "fmt"

// AlreadyExistsError reports an attempt to register a name that is
// already present in the Index.
type AlreadyExistsError struct {
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("a note named `%s` already exists", e.Name)
}

// NotFoundError reports a name with no Note registered under it.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("note `%s` does not exist", e.Name)
}

// NotAccessibleError reports a path that could not be registered as a
// note file: missing, unresolvable, or not a regular file.
type NotAccessibleError struct {
	Path string
	Err  error
}

func (e *NotAccessibleError) Error() string {
	return fmt.Sprintf("could not read file `%s`: %v", e.Path, e.Err)
}

func (e *NotAccessibleError) Unwrap() error { return e.Err }
