// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package easel

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/easel/style"
)

// DrawOption overrides a style value for a single draw call.
type DrawOption func(*drawParams)

// WithFill sets the fill color. Text is drawn in the fill color.
func WithFill(c gg.RGBA) DrawOption {
	return func(p *drawParams) {
		p.fill = c
	}
}

// WithStroke sets the stroke color.
func WithStroke(c gg.RGBA) DrawOption {
	return func(p *drawParams) {
		p.stroke = c
		p.strokeSet = true
	}
}

// WithStrokeWidth sets the stroke line width. The default is 1.
func WithStrokeWidth(w float64) DrawOption {
	return func(p *drawParams) {
		p.strokeWidth = w
	}
}

// WithFont sets the text font.
func WithFont(f style.Font) DrawOption {
	return func(p *drawParams) {
		p.font = f
	}
}

// WithTextAlign sets the horizontal text alignment.
func WithTextAlign(a style.TextAlign) DrawOption {
	return func(p *drawParams) {
		p.align = a
	}
}

// WithTextBaseline sets the text baseline.
func WithTextBaseline(b style.TextBaseline) DrawOption {
	return func(p *drawParams) {
		p.baseline = b
	}
}

// WithComposite sets the composite operation for this draw only. The
// operation active before the call is restored afterwards.
func WithComposite(op style.CompositeOp) DrawOption {
	return func(p *drawParams) {
		p.composite = op
		p.compositeSet = true
	}
}

// drawParams is the fully resolved style of one draw call.
type drawParams struct {
	fill         gg.RGBA
	stroke       gg.RGBA
	strokeSet    bool
	strokeWidth  float64
	font         style.Font
	align        style.TextAlign
	baseline     style.TextBaseline
	composite    style.CompositeOp
	compositeSet bool
}

// resolveDraw applies opts over the current style.
func (s *Surface) resolveDraw(opts []DrawOption) drawParams {
	p := drawParams{
		fill:        s.style.Color,
		strokeWidth: 1,
		font:        s.style.Font,
		align:       s.style.TextAlign,
		baseline:    s.style.TextBaseline,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// strokeOnlyColor is the stroke color for shapes that are never filled:
// the explicit stroke color, else the color option.
func (p drawParams) strokeOnlyColor(st Style) gg.RGBA {
	if p.strokeSet {
		return p.stroke
	}
	return st.Color
}

// outlineColor is the stroke color for filled shapes: the explicit stroke
// color, else the fill color.
func (p drawParams) outlineColor() gg.RGBA {
	if p.strokeSet {
		return p.stroke
	}
	return p.fill
}

func (p drawParams) text(maxWidth float64) style.Text {
	return style.Text{
		Color:    p.fill,
		Font:     p.font,
		Align:    p.align,
		Baseline: p.baseline,
		MaxWidth: maxWidth,
	}
}

// withComposite runs draw with the per-call composite operation, if any,
// restoring the previous operation afterwards.
func (s *Surface) withComposite(p drawParams, draw func() error) error {
	if !p.compositeSet {
		return draw()
	}
	prev := s.target.CompositeOperation()
	s.target.SetCompositeOperation(p.composite)
	defer s.target.SetCompositeOperation(prev)
	return draw()
}
