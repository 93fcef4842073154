package formatter

import (
	"errors"
	"fmt"
)

// ErrNotFormatted is returned by CheckFile when formatting would change a file.
var ErrNotFormatted = errors.New("not formatted")

// InputReadError reports a source file that could not be read.
type InputReadError struct {
	Path string
	Err  error
}

func (e *InputReadError) Error() string {
	return fmt.Sprintf("could not read file %s: %v", e.Path, e.Err)
}

func (e *InputReadError) Unwrap() error {
	return e.Err
}

// OutputWriteError reports a destination that could not be created or written.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("could not write file %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error {
	return e.Err
}
