package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFileFormat indicates a recording with an unknown extension.
	ErrUnsupportedFileFormat = errors.New("storage: unsupported file format")

	// ErrClosed indicates access to a recording after Close.
	ErrClosed = errors.New("storage: recording closed")

	// ErrNoTimeStep indicates a recording without a time axis and no dt to
	// generate one from.
	ErrNoTimeStep = errors.New("storage: no time axis and no time step")
)

type UnsupportedFileFormatError struct {
	Path string
}

func (e *UnsupportedFileFormatError) Error() string {
	return fmt.Sprintf("filename %s: file format not supported", e.Path)
}

func (e *UnsupportedFileFormatError) Unwrap() error { return ErrUnsupportedFileFormat }
