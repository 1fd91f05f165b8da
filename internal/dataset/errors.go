package dataset

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates the file extension maps to no known reader.
// The load is aborted with no partial result.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// UnsupportedFormatError carries the offending file name.
type UnsupportedFormatError struct {
	Name string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported dataset format %q (CSV or Parquet only)", e.Name)
}

func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }
