package huffcodec

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned by the frequency counter when the input
	// contains no bytes at all.  Empty inputs bypass the tree pipeline.
	ErrEmptyInput = errors.New("huffcodec: empty input")

	// ErrNoExtension is returned when a decompression output name cannot
	// be derived from the input path.
	ErrNoExtension = errors.New("huffcodec: cannot derive output name: path has no extension")
)

// FormatError reports that a compressed stream is malformed or truncated.
type FormatError struct {
	// Section names the part of the container being parsed: "header",
	// "tree", "padding" or "payload".
	Section string

	// Reason describes what was wrong.
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("huffcodec: malformed %s: %s", e.Section, e.Reason)
}

func formatErrorf(section string, format string, args ...interface{}) error {
	return &FormatError{Section: section, Reason: fmt.Sprintf(format, args...)}
}

// IOError reports a failure to read or write a file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("huffcodec: %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

var (
	_ error = (*FormatError)(nil)
	_ error = (*IOError)(nil)
)
