package formatter

import (
	"fmt"
	"os"
)

// ReadSource reads the whole file at path.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &InputReadError{Path: path, Err: err}
	}
	return string(data), nil
}

// WriteOutput creates or truncates path and writes content to it.
func WriteOutput(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	return nil
}

// FormatFile reads src, formats it and writes the result to dst. An empty dst
// rewrites src in place. The destination is always fully overwritten.
func (f *Formatter) FormatFile(src, dst string) (FormatResult, error) {
	if dst == "" {
		dst = src
	}

	source, err := ReadSource(src)
	if err != nil {
		return FormatResult{}, err
	}
	f.logger().Debug("read input", "path", src, "bytes", len(source))

	res := f.FormatWithResult(source)
	if err := WriteOutput(dst, res.Content); err != nil {
		return res, err
	}
	return res, nil
}

// CheckFile formats path without writing and returns ErrNotFormatted (wrapped
// with the path) if the file would change.
func (f *Formatter) CheckFile(path string) (FormatResult, error) {
	source, err := ReadSource(path)
	if err != nil {
		return FormatResult{}, err
	}
	res := f.FormatWithResult(source)
	if res.Changed {
		return res, fmt.Errorf("%s: %w", path, ErrNotFormatted)
	}
	return res, nil
}
