// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageload

import (
	"errors"
	"fmt"
)

// ErrNotLoaded is returned by Loader.Image for sources that have not
// finished loading.
var ErrNotLoaded = errors.New("imageload: image not loaded")

// LoadError records a failed fetch or decode of one source.
type LoadError struct {
	Src string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("imageload: load %q: %v", e.Src, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// StatusError is returned by DefaultFetcher for non-2xx HTTP responses.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("imageload: GET %s: status %d", e.URL, e.StatusCode)
}
