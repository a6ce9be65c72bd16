// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package style parses the CSS-like strings used by easel options into
// typed values.
//
// Every option of an easel Surface is a string, the same way an HTML canvas
// and its element style take strings. This package turns them into values
// the drawing host understands:
//
//	c, err := style.ParseColor("rgba(255, 0, 0, 0.5)")
//	f, err := style.ParseFont("bold 16px Arial, sans-serif")
//	op, err := style.ParseCompositeOp("multiply")
//
// Keywords are matched case-insensitively.
package style
