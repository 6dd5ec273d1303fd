package oidpath

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidPathSpec indicates a field path is empty or has an empty segment.
	ErrInvalidPathSpec = errors.New("invalid path spec")

	// ErrInvalidIdentifier indicates a value at a target path is not a canonical identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrMaxDepth indicates a document is nested deeper than the configured limit.
	ErrMaxDepth = errors.New("max depth exceeded")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// ConfigError represents a path spec or struct tag error.
// It is reported before any document is touched.
type ConfigError struct {
	Err   error  // Underlying sentinel error (ErrInvalidPathSpec, ErrInvalidTag)
	Path  string // Offending path, if any
	Field string // Struct field that triggered the error, if any
}

func (e *ConfigError) Error() string {
	switch {
	case e.Field != "" && e.Path != "":
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Path, e.Field)
	case e.Path != "":
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Path)
	case e.Field != "":
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// PathError represents a failure at a specific location in a document.
type PathError struct {
	Err       error     // Underlying sentinel error (ErrInvalidIdentifier, ErrMaxDepth)
	Path      string    // Location of the failing value, e.g. types[1].basetwo._id
	Value     any       // Offending value
	Direction Direction // Direction of the failed transform
	Cause     error     // Original error from the identifier codec
}

func (e *PathError) Error() string {
	at := e.Path
	if at == "" {
		at = "<root>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s %s: %v", e.Direction, at, e.Cause)
	}
	return fmt.Sprintf("%s %s: %s", e.Direction, at, e.Err.Error())
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for invalid paths or tags.
func newConfigError(sentinel error, path, field string) error {
	return &ConfigError{
		Err:   sentinel,
		Path:  path,
		Field: field,
	}
}

// newPathError creates a PathError for a failure inside a document.
func newPathError(sentinel error, dir Direction, path string, value any, cause error) error {
	return &PathError{
		Err:       sentinel,
		Path:      path,
		Value:     value,
		Direction: dir,
		Cause:     cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
