package fileutil

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPath  = errors.New("fileutil: invalid or dangerous path")
	ErrUnsafeTarget = errors.New("fileutil: resolved path is not safe")
	ErrInvalidName  = errors.New("fileutil: invalid destination filename")
	ErrSameFile     = errors.New("fileutil: source and destination are the same file")
	ErrNotRegular   = errors.New("fileutil: not a regular file")
)

// PathError ties a failure to the path the user typed.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("fileutil: %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
