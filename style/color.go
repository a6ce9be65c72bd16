// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package style

import (
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS color value.
//
// Supported forms:
//   - hex: "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"
//   - functional: "rgb(255, 0, 0)", "rgba(255, 0, 0, 0.5)"
//   - named: any CSS color name ("red", "cornflowerblue", ...)
//   - "transparent"
func ParseColor(s string) (gg.RGBA, error) {
	v := normalize(s)
	switch {
	case v == "":
		return gg.RGBA{}, &KeywordError{Property: "color", Value: s}
	case v == "transparent":
		return gg.Transparent, nil
	case strings.HasPrefix(v, "#"):
		c, err := gg.ParseHex(v)
		if err != nil {
			return gg.RGBA{}, &KeywordError{Property: "color", Value: s}
		}
		return c, nil
	case strings.HasPrefix(v, "rgb"):
		return parseRGBFunc(v, s)
	}

	named, ok := colornames.Map[v]
	if !ok {
		return gg.RGBA{}, &KeywordError{Property: "color", Value: s}
	}
	return gg.FromColor(named), nil
}

// parseRGBFunc parses "rgb(r, g, b)" and "rgba(r, g, b, a)".
// Channels are 0-255 or percentages, alpha is 0-1 or a percentage.
func parseRGBFunc(v, orig string) (gg.RGBA, error) {
	open := strings.IndexByte(v, '(')
	if open < 0 || !strings.HasSuffix(v, ")") {
		return gg.RGBA{}, &KeywordError{Property: "color", Value: orig}
	}
	name := v[:open]
	args := strings.FieldsFunc(v[open+1:len(v)-1], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})

	switch {
	case name == "rgb" && len(args) == 3, name == "rgba" && len(args) == 4, name == "rgb" && len(args) == 4:
	default:
		return gg.RGBA{}, &KeywordError{Property: "color", Value: orig}
	}

	var ch [3]float64
	for i := range ch {
		f, err := parseChannel(args[i], 255)
		if err != nil {
			return gg.RGBA{}, &KeywordError{Property: "color", Value: orig}
		}
		ch[i] = f / 255
	}

	alpha := 1.0
	if len(args) == 4 {
		a, err := parseChannel(args[3], 1)
		if err != nil {
			return gg.RGBA{}, &KeywordError{Property: "color", Value: orig}
		}
		alpha = a
	}
	return gg.RGBA2(ch[0], ch[1], ch[2], alpha), nil
}

// parseChannel parses a number or percentage and clamps it to [0, max].
func parseChannel(s string, limit float64) (float64, error) {
	scale := 1.0
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSuffix(s, "%")
		scale = limit / 100
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	f *= scale
	return min(max(f, 0), limit), nil
}

// Paint is a color that may be absent, as in "background-color: none".
type Paint struct {
	Color gg.RGBA
	None  bool
}

// NoPaint is the absent paint.
var NoPaint = Paint{None: true}

// ParsePaint parses a color or the keyword "none".
func ParsePaint(s string) (Paint, error) {
	if normalize(s) == "none" {
		return NoPaint, nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return Paint{}, err
	}
	return Paint{Color: c}, nil
}
