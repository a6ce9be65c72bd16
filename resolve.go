// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package easel

import (
	"errors"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/easel/style"
)

// Style is the typed form of Options.
type Style struct {
	Composite       style.CompositeOp
	Background      style.Paint
	BackgroundImage string // source; empty for none
	Color           gg.RGBA
	Border          style.Border
	Font            style.Font
	TextAlign       style.TextAlign
	TextBaseline    style.TextBaseline
	Cursor          gpucontext.CursorShape
}

// ResolveStyle parses every option of o. Unset options take their default
// value. All invalid options are reported, each as an *OptionError.
func ResolveStyle(o Options) (Style, error) {
	o = MergeOptions(DefaultOptions(), o)

	var st Style
	var errs []error
	check := func(key, value string, err error) {
		if err != nil {
			errs = append(errs, &OptionError{Key: key, Value: value, Err: err})
		}
	}

	var err error
	st.Composite, err = style.ParseCompositeOp(o.CompositeOperation)
	check(KeyCompositeOperation, o.CompositeOperation, err)

	st.Background, err = style.ParsePaint(o.BackgroundColor)
	check(KeyBackgroundColor, o.BackgroundColor, err)

	var hasImage bool
	st.BackgroundImage, hasImage, err = style.ParseImageRef(o.BackgroundImage)
	check(KeyBackgroundImage, o.BackgroundImage, err)
	if !hasImage {
		st.BackgroundImage = ""
	}

	st.Color, err = style.ParseColor(o.Color)
	check(KeyColor, o.Color, err)

	st.Border, err = style.ParseBorder(o.Border)
	check(KeyBorder, o.Border, err)

	st.Font, err = style.ParseFont(o.Font)
	check(KeyFont, o.Font, err)

	st.TextAlign, err = style.ParseTextAlign(o.TextAlign)
	check(KeyTextAlign, o.TextAlign, err)

	st.TextBaseline, err = style.ParseTextBaseline(o.TextBaseline)
	check(KeyTextBaseline, o.TextBaseline, err)

	st.Cursor, err = style.ParseCursor(o.Cursor)
	check(KeyCursor, o.Cursor, err)

	if len(errs) > 0 {
		return Style{}, errors.Join(errs...)
	}
	return st, nil
}
