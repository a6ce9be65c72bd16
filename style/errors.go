// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package style

import "fmt"

// KeywordError is returned when a value is not a recognized keyword or
// cannot be parsed for the given property.
type KeywordError struct {
	Property string
	Value    string
}

func (e *KeywordError) Error() string {
	return fmt.Sprintf("style: invalid %s %q", e.Property, e.Value)
}

// UnsupportedError is returned for values that are valid canvas keywords
// but have no equivalent in the gg renderer.
type UnsupportedError struct {
	Property string
	Value    string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("style: %s %q is not supported", e.Property, e.Value)
}
