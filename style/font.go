// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package style

import (
	"math"
	"strconv"
	"strings"
)

// Font is a parsed CSS font shorthand.
type Font struct {
	// Style is "normal", "italic" or "oblique".
	Style string

	// Weight is "normal", "bold", or a numeric weight such as "600".
	Weight string

	// Size is the font size in pixels.
	Size float64

	// Families lists the font families in order of preference.
	Families []string
}

// String formats the font back into shorthand form.
func (f Font) String() string {
	var b strings.Builder
	if f.Style != "" && f.Style != "normal" {
		b.WriteString(f.Style)
		b.WriteByte(' ')
	}
	if f.Weight != "" && f.Weight != "normal" {
		b.WriteString(f.Weight)
		b.WriteByte(' ')
	}
	b.WriteString(strconv.FormatFloat(f.Size, 'f', -1, 64))
	b.WriteString("px ")
	b.WriteString(strings.Join(f.Families, ", "))
	return b.String()
}

// Bold reports whether the weight is bold or heavier.
func (f Font) Bold() bool {
	switch f.Weight {
	case "bold", "bolder":
		return true
	}
	n, err := strconv.Atoi(f.Weight)
	return err == nil && n >= 600
}

const defaultFontSize = 16.0

var fontStyles = map[string]bool{"normal": true, "italic": true, "oblique": true}

var fontWeights = map[string]bool{
	"normal": true, "bold": true, "bolder": true, "lighter": true,
	"100": true, "200": true, "300": true, "400": true, "500": true,
	"600": true, "700": true, "800": true, "900": true,
}

// ParseFont parses a CSS font shorthand of the form
//
//	[style] [weight] <size>[px|pt|em] <family>[, <family>...]
//
// Family names may be quoted. Sizes without a unit are pixels.
func ParseFont(s string) (Font, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	f := Font{Style: "normal", Weight: "normal"}

	i := 0
	for ; i < len(fields); i++ {
		kw := normalize(fields[i])
		switch {
		case fontStyles[kw] && kw != "normal":
			f.Style = kw
			continue
		case fontWeights[kw]:
			if kw != "normal" {
				f.Weight = kw
			}
			continue
		}
		break
	}
	if i >= len(fields) {
		return Font{}, &KeywordError{Property: "font", Value: s}
	}

	// "16px/1.2" carries a line height, which is ignored.
	sizeField, _, _ := strings.Cut(fields[i], "/")
	size, err := parseFontSize(normalize(sizeField))
	if err != nil {
		return Font{}, &KeywordError{Property: "font", Value: s}
	}
	f.Size = size

	rest := strings.Join(fields[i+1:], " ")
	for _, fam := range strings.Split(rest, ",") {
		fam = strings.Trim(strings.TrimSpace(fam), `"'`)
		if fam != "" {
			f.Families = append(f.Families, fam)
		}
	}
	if len(f.Families) == 0 {
		return Font{}, &KeywordError{Property: "font", Value: s}
	}
	return f, nil
}

func parseFontSize(s string) (float64, error) {
	scale := 1.0
	switch {
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "pt"):
		s = strings.TrimSuffix(s, "pt")
		scale = 4.0 / 3.0
	case strings.HasSuffix(s, "em"):
		s = strings.TrimSuffix(s, "em")
		scale = defaultFontSize
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v * scale, nil
}
