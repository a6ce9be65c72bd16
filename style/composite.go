// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package style

import "github.com/gogpu/gg"

// CompositeOp is a canvas global composite operation name.
type CompositeOp string

// Composite operations with a gg blend mode equivalent.
const (
	// SourceOver draws new content over existing content.
	SourceOver CompositeOp = "source-over"

	// Multiply multiplies source and destination colors.
	Multiply CompositeOp = "multiply"

	// Screen inverts, multiplies and inverts again.
	Screen CompositeOp = "screen"

	// Overlay multiplies or screens depending on the destination.
	Overlay CompositeOp = "overlay"
)

var blendModes = map[CompositeOp]gg.BlendMode{
	SourceOver: gg.BlendNormal,
	Multiply:   gg.BlendMultiply,
	Screen:     gg.BlendScreen,
	Overlay:    gg.BlendOverlay,
}

// canvasOnlyOps are valid canvas operations that gg cannot composite.
var canvasOnlyOps = map[string]bool{
	"source-in": true, "source-out": true, "source-atop": true,
	"destination-over": true, "destination-in": true, "destination-out": true,
	"destination-atop": true, "lighter": true, "copy": true, "xor": true,
	"darken": true, "lighten": true, "color-dodge": true, "color-burn": true,
	"hard-light": true, "soft-light": true, "difference": true, "exclusion": true,
	"hue": true, "saturation": true, "color": true, "luminosity": true,
}

// ParseCompositeOp parses a composite operation name.
func ParseCompositeOp(s string) (CompositeOp, error) {
	v := normalize(s)
	op := CompositeOp(v)
	if _, ok := blendModes[op]; ok {
		return op, nil
	}
	if canvasOnlyOps[v] {
		return "", &UnsupportedError{Property: "composite operation", Value: s}
	}
	return "", &KeywordError{Property: "composite operation", Value: s}
}

// BlendMode returns the gg blend mode for op.
// Unknown operations map to normal blending.
func (op CompositeOp) BlendMode() gg.BlendMode {
	if m, ok := blendModes[op]; ok {
		return m
	}
	return gg.BlendNormal
}

// IsSourceOver reports whether op is plain source-over drawing.
// The empty value counts as source-over.
func (op CompositeOp) IsSourceOver() bool {
	return op == "" || op == SourceOver
}
