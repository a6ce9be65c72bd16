// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package style

import (
	"strings"

	"golang.org/x/text/cases"
)

// normalize trims s and folds its case so keywords compare equal
// regardless of how they were written.
func normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
