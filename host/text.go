// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import "github.com/gogpu/easel/style"

// FillText draws s with its anchor at (x, y).
//
// t.Align picks the horizontal anchor and t.Baseline the vertical one.
// For the alphabetic baseline y is the glyph baseline. When t.MaxWidth is
// positive and the measured run is wider, the run is scaled horizontally
// to fit.
func (c *Canvas) FillText(s string, x, y float64, t style.Text) error {
	if c.closed {
		return ErrClosed
	}
	if s == "" {
		return nil
	}
	face, err := c.doc.fonts.Face(t.Font)
	if err != nil {
		return err
	}
	c.ctx.SetFont(face)

	w, _ := c.ctx.MeasureString(s)
	scale := 1.0
	if t.MaxWidth > 0 && w > t.MaxWidth {
		scale = t.MaxWidth / w
	}

	ax := t.Align.Anchor()
	ay, anchored := t.Baseline.Anchor()

	return c.composited(func() error {
		c.ctx.SetColor(t.Color)
		c.ctx.Push()
		defer c.ctx.Pop()
		c.ctx.Translate(x, y)
		if scale != 1 {
			c.ctx.Scale(scale, 1)
		}
		if anchored {
			c.ctx.DrawStringAnchored(s, 0, 0, ax, ay)
		} else {
			c.ctx.DrawString(s, -w*ax, 0)
		}
		return nil
	})
}

// MeasureText returns the advance width of s in font f.
func (c *Canvas) MeasureText(s string, f style.Font) (float64, error) {
	if c.closed {
		return 0, ErrClosed
	}
	face, err := c.doc.fonts.Face(f)
	if err != nil {
		return 0, err
	}
	c.ctx.SetFont(face)
	w, _ := c.ctx.MeasureString(s)
	return w, nil
}
