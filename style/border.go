// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package style

import (
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// Border is a parsed CSS border shorthand.
type Border struct {
	// Width is the border width in pixels. Zero means no border.
	Width float64

	// Line is the line style ("solid", "dashed", "dotted", ...).
	Line string

	// Color is the border color.
	Color gg.RGBA
}

// IsNone reports whether the border draws nothing.
func (b Border) IsNone() bool {
	return b.Width <= 0 || b.Line == "" || b.Line == "none" || b.Line == "hidden"
}

// Dash returns the dash pattern for the line style, or nil for solid lines.
func (b Border) Dash() []float64 {
	switch b.Line {
	case "dashed":
		return []float64{3 * b.Width, 2 * b.Width}
	case "dotted":
		return []float64{b.Width, b.Width}
	}
	return nil
}

var borderLines = map[string]bool{
	"none": true, "hidden": true, "solid": true, "dashed": true, "dotted": true,
	"double": true, "groove": true, "ridge": true, "inset": true, "outset": true,
}

var borderWidths = map[string]float64{"thin": 1, "medium": 3, "thick": 5}

// ParseBorder parses a border shorthand such as "2px solid #ff0000".
// Width, line style and color may appear in any order; the width defaults
// to medium and the color to black, as in CSS.
func ParseBorder(s string) (Border, error) {
	v := normalize(s)
	if v == "" || v == "none" {
		return Border{Line: "none"}, nil
	}

	b := Border{Width: borderWidths["medium"], Color: gg.Black}
	var haveLine bool
	for _, tok := range splitBorder(v) {
		switch {
		case borderLines[tok]:
			b.Line = tok
			haveLine = true
		case borderWidths[tok] > 0:
			b.Width = borderWidths[tok]
		case isLength(tok):
			w, err := strconv.ParseFloat(strings.TrimSuffix(tok, "px"), 64)
			if err != nil || w < 0 {
				return Border{}, &KeywordError{Property: "border", Value: s}
			}
			b.Width = w
		default:
			c, err := ParseColor(tok)
			if err != nil {
				return Border{}, &KeywordError{Property: "border", Value: s}
			}
			b.Color = c
		}
	}
	if !haveLine {
		// A border without a line style is not drawn.
		b.Line = "none"
	}
	return b, nil
}

// splitBorder splits on spaces outside parentheses so "rgb(1, 2, 3)"
// stays one token.
func splitBorder(s string) []string {
	var out []string
	depth, start := 0, -1
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case r == ' ' && depth == 0:
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

func isLength(tok string) bool {
	if tok == "" {
		return false
	}
	c := tok[0]
	return c >= '0' && c <= '9' || c == '.'
}
