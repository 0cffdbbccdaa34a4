package bytereader

import "fmt"

// ArgumentError reports a malformed or missing command-line argument.
// It is always raised before any file access.
type ArgumentError struct {
	Arg   string
	Value string
	Err   error
}

func (e *ArgumentError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %v", e.Arg, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Arg, e.Value, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// FileAccessError reports a file that could not be opened, positioned or read
type FileAccessError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
