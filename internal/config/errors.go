package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrStyleNotFound indicates no preset has the requested name.
	ErrStyleNotFound = errors.New("style not found")

	// ErrInvalidPreset indicates a preset field has an unusable value.
	ErrInvalidPreset = errors.New("invalid preset")

	// ErrUnsupportedFormat indicates a file extension with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrIncludeDepthExceeded indicates too many nested includes.
	ErrIncludeDepthExceeded = errors.New("include depth exceeded")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
