package probe

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedProbeType indicates a layout row with an unknown type code.
	ErrUnsupportedProbeType = errors.New("probe: unsupported probe type")

	// ErrDimensionMismatch indicates probe data whose shape disagrees with its
	// vocabulary, image shape, path layout or the time axis.
	ErrDimensionMismatch = errors.New("probe: dimension mismatch")

	ErrUnknownProbe = errors.New("probe: unknown probe id")

	// ErrEmptyWindow indicates a time window that selects no samples.
	ErrEmptyWindow = errors.New("probe: time window selects no samples")

	ErrMalformedRow = errors.New("probe: malformed layout row")
)

type UnsupportedProbeTypeError struct {
	Code byte
	Row  string
}

func (e *UnsupportedProbeTypeError) Error() string {
	return fmt.Sprintf("probe option %q not supported (row %q)", e.Code, e.Row)
}

func (e *UnsupportedProbeTypeError) Unwrap() error { return ErrUnsupportedProbeType }

type DimensionMismatchError struct {
	Probe string
	What  string
	Want  int
	Got   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("probe %q: %s: expected %d, got %d", e.Probe, e.What, e.Want, e.Got)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }
