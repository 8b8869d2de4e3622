package archive

import (
	"errors"
	"fmt"
)

// ErrBinaryNotFound is matched by every BinaryNotFoundError.
var ErrBinaryNotFound = errors.New("shared library not found")

// BinaryNotFoundError reports the path a library was expected at.
type BinaryNotFoundError struct {
	Path string
}

func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf("%v: tried %s", ErrBinaryNotFound, e.Path)
}

func (e *BinaryNotFoundError) Is(target error) bool { return target == ErrBinaryNotFound }

// WriteError reports an I/O failure while staging files or writing the archive.
// A partially written archive may remain at the output path.
type WriteError struct {
	Op   string
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("archive write: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
