package tableblock

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates an unknown output format name.
var ErrInvalidFormat = errors.New("invalid output format")

// ErrUnsupportedInput indicates an input file type with no parser.
var ErrUnsupportedInput = errors.New("unsupported input type")

// ErrEmptyGrid indicates a block with no rows or no columns.
var ErrEmptyGrid = errors.New("empty grid")

// ErrRaggedGrid indicates a block whose rows differ in length.
var ErrRaggedGrid = errors.New("ragged grid")

// DecorationError represents an error while decorating one source block.
type DecorationError struct {
	Source string
	Stage  string // "parse", "validate", "render"
	Err    error
}

func (e *DecorationError) Error() string {
	return fmt.Sprintf("decoration error in %q (%s): %v", e.Source, e.Stage, e.Err)
}

func (e *DecorationError) Unwrap() error {
	return e.Err
}

// NewDecorationError creates a new DecorationError.
func NewDecorationError(source, stage string, err error) *DecorationError {
	return &DecorationError{
		Source: source,
		Stage:  stage,
		Err:    err,
	}
}
