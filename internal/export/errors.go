package export

import (
	"errors"
	"fmt"
)

var ErrUnsupportedFormat = errors.New("export: unsupported format")

type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("export: format %q not supported (png, svg, json)", e.Format)
}

func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }
