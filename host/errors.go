// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned for non-positive canvas sizes.
	ErrInvalidDimensions = errors.New("host: width and height must be positive")

	// ErrClosed is returned when drawing on a closed canvas.
	ErrClosed = errors.New("host: canvas is closed")

	// ErrNotGPU is returned by Present on a software canvas.
	ErrNotGPU = errors.New("host: canvas has no GPU backing")

	// ErrEmptyID is returned when creating an element without an identifier.
	ErrEmptyID = errors.New("host: element identifier is empty")
)

// ElementNotFoundError reports a lookup of an identifier that is not in
// the document.
type ElementNotFoundError struct {
	ID string
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("host: no element with id %q", e.ID)
}

// DuplicateIDError reports an attempt to create a second element with an
// identifier that is already registered.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("host: element id %q already exists", e.ID)
}
