// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package style

import "github.com/gogpu/gg"

// TextAlign is the horizontal alignment of text relative to its anchor point.
type TextAlign string

// Text alignments.
const (
	AlignLeft   TextAlign = "left"
	AlignRight  TextAlign = "right"
	AlignCenter TextAlign = "center"
	AlignStart  TextAlign = "start"
	AlignEnd    TextAlign = "end"
)

// ParseTextAlign parses a canvas textAlign value.
func ParseTextAlign(s string) (TextAlign, error) {
	switch a := TextAlign(normalize(s)); a {
	case AlignLeft, AlignRight, AlignCenter, AlignStart, AlignEnd:
		return a, nil
	}
	return "", &KeywordError{Property: "text align", Value: s}
}

// Anchor returns the horizontal anchor factor in [0, 1].
// Start and end follow left-to-right text.
func (a TextAlign) Anchor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight, AlignEnd:
		return 1
	default:
		return 0
	}
}

// TextBaseline is the vertical position of the anchor point within the text.
type TextBaseline string

// Text baselines.
const (
	BaselineTop         TextBaseline = "top"
	BaselineHanging     TextBaseline = "hanging"
	BaselineMiddle      TextBaseline = "middle"
	BaselineAlphabetic  TextBaseline = "alphabetic"
	BaselineIdeographic TextBaseline = "ideographic"
	BaselineBottom      TextBaseline = "bottom"
)

// ParseTextBaseline parses a canvas textBaseline value.
func ParseTextBaseline(s string) (TextBaseline, error) {
	switch b := TextBaseline(normalize(s)); b {
	case BaselineTop, BaselineHanging, BaselineMiddle, BaselineAlphabetic, BaselineIdeographic, BaselineBottom:
		return b, nil
	}
	return "", &KeywordError{Property: "text baseline", Value: s}
}

// Anchor returns the vertical anchor factor in [0, 1] within the text's
// ascent+descent box. ok is false for the alphabetic baseline, where y is
// the glyph baseline itself.
func (b TextBaseline) Anchor() (factor float64, ok bool) {
	switch b {
	case BaselineTop, BaselineHanging:
		return 0, true
	case BaselineMiddle:
		return 0.5, true
	case BaselineBottom, BaselineIdeographic:
		return 1, true
	default:
		return 0, false
	}
}

// Text holds everything needed to render one string.
type Text struct {
	Color    gg.RGBA
	Font     Font
	Align    TextAlign
	Baseline TextBaseline

	// MaxWidth, when positive, is the widest the rendered run may be.
	// Wider runs are compressed horizontally.
	MaxWidth float64
}
