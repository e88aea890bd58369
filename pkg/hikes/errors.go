package hikes

import (
	"errors"
	"fmt"
)

// ErrMissingColumn indicates the source lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// ErrUnsupportedFormat indicates a source file extension the loader cannot read.
var ErrUnsupportedFormat = errors.New("unsupported hikes file format")

// CellError reports a value that does not parse under the column rules.
type CellError struct {
	Column string
	Row    int // 1-based data row, header excluded
	Value  string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("invalid value %q in column %q (row %d): %v", e.Value, e.Column, e.Row, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
