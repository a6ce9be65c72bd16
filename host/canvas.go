// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/easel/style"
)

// Canvas is a drawable element of a Document.
//
// Paths follow browser canvas rules: path construction methods append to
// the current path, Fill and Stroke paint it without clearing it, and
// BeginPath discards it.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	id  string
	doc *Document
	ctx *gg.Context
	gpu *ggcanvas.Canvas

	composite       style.CompositeOp
	background      style.Paint
	backgroundImage *gg.ImageBuf
	border          style.Border
	cursor          gpucontext.CursorShape
	pos             gg.Point
	closed          bool
}

func newCanvas(id string, ctx *gg.Context, gpu *ggcanvas.Canvas, doc *Document) *Canvas {
	return &Canvas{
		id:         id,
		doc:        doc,
		ctx:        ctx,
		gpu:        gpu,
		composite:  style.SourceOver,
		background: style.NoPaint,
		border:     style.Border{Line: "none"},
	}
}

// ID returns the element identifier.
func (c *Canvas) ID() string { return c.id }

// Context returns the underlying gg context. Drawing on it directly
// bypasses composite handling.
func (c *Canvas) Context() *gg.Context { return c.ctx }

// Size returns the pixel dimensions of the drawing buffer.
func (c *Canvas) Size() (width, height int) {
	if c.closed {
		return 0, 0
	}
	return c.ctx.Width(), c.ctx.Height()
}

// Resize sets the pixel dimensions of the drawing buffer. As with a
// browser canvas, resizing discards drawn content and the current path,
// even when the size is unchanged.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrClosed
	}
	if err := checkSize(width, height); err != nil {
		return err
	}
	if c.gpu != nil {
		if err := c.gpu.Resize(width, height); err != nil {
			return err
		}
	} else if err := c.ctx.Resize(width, height); err != nil {
		return err
	}
	c.ctx.ClearPath()
	c.ctx.Clear()
	c.markDirty()
	return nil
}

// Clear erases all drawn content.
func (c *Canvas) Clear() {
	if c.closed {
		return
	}
	c.ctx.Clear()
	c.markDirty()
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	if c.closed {
		return
	}
	c.ctx.ClearPath()
}

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	if c.closed {
		return
	}
	c.ctx.MoveTo(x, y)
}

// LineTo adds a straight segment to (x, y).
func (c *Canvas) LineTo(x, y float64) {
	if c.closed {
		return
	}
	c.ctx.LineTo(x, y)
}

// QuadraticCurveTo adds a quadratic Bézier segment with control point
// (cx, cy) ending at (x, y).
func (c *Canvas) QuadraticCurveTo(cx, cy, x, y float64) {
	if c.closed {
		return
	}
	c.ctx.QuadraticTo(cx, cy, x, y)
}

// Arc adds a circular arc centered at (cx, cy). Angles are in radians,
// measured clockwise from the positive x axis. A sweep of a full turn or
// more adds a closed circle.
func (c *Canvas) Arc(cx, cy, r, start, end float64) {
	if c.closed {
		return
	}
	if math.Abs(end-start) >= 2*math.Pi {
		c.ctx.DrawCircle(cx, cy, r)
		return
	}
	c.ctx.DrawArc(cx, cy, r, start, end)
}

// Rect adds a closed rectangle subpath.
func (c *Canvas) Rect(x, y, w, h float64) {
	if c.closed {
		return
	}
	c.ctx.DrawRectangle(x, y, w, h)
}

// ClosePath connects the current point back to the start of the subpath.
func (c *Canvas) ClosePath() {
	if c.closed {
		return
	}
	c.ctx.ClosePath()
}

// Fill paints the interior of the current path with col.
func (c *Canvas) Fill(col gg.RGBA) error {
	if c.closed {
		return ErrClosed
	}
	return c.composited(func() error {
		c.ctx.SetColor(col)
		return c.ctx.FillPreserve()
	})
}

// Stroke paints the outline of the current path with col at the given
// line width.
func (c *Canvas) Stroke(col gg.RGBA, width float64) error {
	if c.closed {
		return ErrClosed
	}
	return c.composited(func() error {
		c.ctx.SetColor(col)
		c.ctx.SetLineWidth(width)
		return c.ctx.StrokePreserve()
	})
}

// DrawImage copies the src rectangle of img into the dst rectangle,
// scaling as needed. src is clipped to the image bounds.
func (c *Canvas) DrawImage(img *gg.ImageBuf, src image.Rectangle, dst gg.Rect) error {
	if c.closed {
		return ErrClosed
	}
	if img == nil {
		return nil
	}
	w, h := img.Bounds()
	clipped := src.Intersect(image.Rect(0, 0, w, h))
	if clipped.Empty() || dst.Width() <= 0 || dst.Height() <= 0 {
		return nil
	}

	// Map the clipped source back onto the destination so the visible
	// part keeps its place.
	sx := dst.Width() / float64(src.Dx())
	sy := dst.Height() / float64(src.Dy())
	c.ctx.DrawImageEx(img, gg.DrawImageOptions{
		X:         dst.Min.X + float64(clipped.Min.X-src.Min.X)*sx,
		Y:         dst.Min.Y + float64(clipped.Min.Y-src.Min.Y)*sy,
		DstWidth:  float64(clipped.Dx()) * sx,
		DstHeight: float64(clipped.Dy()) * sy,
		SrcRect:   &clipped,
		BlendMode: c.composite.BlendMode(),
	})
	c.markDirty()
	return nil
}

// CompositeOperation returns the operation used for subsequent drawing.
func (c *Canvas) CompositeOperation() style.CompositeOp {
	return c.composite
}

// SetCompositeOperation sets the operation used for subsequent drawing.
func (c *Canvas) SetCompositeOperation(op style.CompositeOp) {
	if op == "" {
		op = style.SourceOver
	}
	c.composite = op
}

// composited runs draw directly for source-over, and inside a blend layer
// for any other operation.
func (c *Canvas) composited(draw func() error) error {
	defer c.markDirty()
	if c.composite.IsSourceOver() {
		return draw()
	}
	c.ctx.PushLayer(c.composite.BlendMode(), 1)
	defer c.ctx.PopLayer()
	return draw()
}

func (c *Canvas) markDirty() {
	if c.gpu != nil {
		c.gpu.MarkDirty()
	}
}

// SetBackground sets the element background paint.
func (c *Canvas) SetBackground(p style.Paint) {
	c.background = p
}

// SetBackgroundImage sets the element background image, drawn at the
// element origin at natural size. nil removes it.
func (c *Canvas) SetBackgroundImage(img *gg.ImageBuf) {
	c.backgroundImage = img
}

// SetBorder sets the element border.
func (c *Canvas) SetBorder(b style.Border) {
	c.border = b
}

// SetCursor sets the cursor shown over the element and forwards it to the
// document's platform.
func (c *Canvas) SetCursor(shape gpucontext.CursorShape) {
	c.cursor = shape
	if c.doc != nil {
		c.doc.setCursor(shape)
	}
}

// Cursor returns the element cursor.
func (c *Canvas) Cursor() gpucontext.CursorShape {
	return c.cursor
}

// Background returns the element background paint.
func (c *Canvas) Background() style.Paint {
	return c.background
}

// Border returns the element border.
func (c *Canvas) Border() style.Border {
	return c.border
}

// SetPosition places the element's top-left corner at (x, y) in window
// coordinates.
func (c *Canvas) SetPosition(x, y float64) {
	c.pos = gg.Pt(x, y)
}

// BoundingClientRect returns the element's box in window coordinates.
func (c *Canvas) BoundingClientRect() gg.Rect {
	w, h := c.Size()
	return gg.Rect{
		Min: c.pos,
		Max: gg.Pt(c.pos.X+float64(w), c.pos.Y+float64(h)),
	}
}

// Close releases the drawing context. Closing twice is a no-op.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.gpu != nil {
		return c.gpu.Close()
	}
	return c.ctx.Close()
}
