// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package style

import (
	"strings"

	"github.com/gogpu/gpucontext"
)

var cursors = map[string]gpucontext.CursorShape{
	"default":     gpucontext.CursorDefault,
	"auto":        gpucontext.CursorDefault,
	"pointer":     gpucontext.CursorPointer,
	"text":        gpucontext.CursorText,
	"crosshair":   gpucontext.CursorCrosshair,
	"move":        gpucontext.CursorMove,
	"ns-resize":   gpucontext.CursorResizeNS,
	"n-resize":    gpucontext.CursorResizeNS,
	"s-resize":    gpucontext.CursorResizeNS,
	"row-resize":  gpucontext.CursorResizeNS,
	"ew-resize":   gpucontext.CursorResizeEW,
	"e-resize":    gpucontext.CursorResizeEW,
	"w-resize":    gpucontext.CursorResizeEW,
	"col-resize":  gpucontext.CursorResizeEW,
	"nwse-resize": gpucontext.CursorResizeNWSE,
	"nw-resize":   gpucontext.CursorResizeNWSE,
	"se-resize":   gpucontext.CursorResizeNWSE,
	"nesw-resize": gpucontext.CursorResizeNESW,
	"ne-resize":   gpucontext.CursorResizeNESW,
	"sw-resize":   gpucontext.CursorResizeNESW,
	"not-allowed": gpucontext.CursorNotAllowed,
	"no-drop":     gpucontext.CursorNotAllowed,
	"wait":        gpucontext.CursorWait,
	"progress":    gpucontext.CursorWait,
	"none":        gpucontext.CursorNone,
}

// ParseCursor parses a CSS cursor keyword into a platform cursor shape.
func ParseCursor(s string) (gpucontext.CursorShape, error) {
	if c, ok := cursors[normalize(s)]; ok {
		return c, nil
	}
	return gpucontext.CursorDefault, &KeywordError{Property: "cursor", Value: s}
}

// ParseImageRef parses a background-image value. It accepts "none",
// "url('src')", "url(src)" or a bare source. ok is false for "none".
func ParseImageRef(s string) (src string, ok bool, err error) {
	v := strings.TrimSpace(s)
	if v == "" || normalize(v) == "none" {
		return "", false, nil
	}
	if len(v) >= 4 && normalize(v[:4]) == "url(" {
		if !strings.HasSuffix(v, ")") {
			return "", false, &KeywordError{Property: "background image", Value: s}
		}
		v = strings.TrimSpace(v[4 : len(v)-1])
		v = strings.Trim(v, `"'`)
		if v == "" {
			return "", false, &KeywordError{Property: "background image", Value: s}
		}
	}
	return v, true, nil
}
