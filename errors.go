// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package easel

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTarget is returned by New when no target is given.
	ErrNilTarget = errors.New("easel: nil target")

	// ErrEmptyPath is returned by shape methods given no points or segments.
	ErrEmptyPath = errors.New("easel: empty point list")
)

// OptionError reports an option value that could not be resolved.
type OptionError struct {
	Key   string
	Value string
	Err   error
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("easel: option %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}
