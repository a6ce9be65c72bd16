// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"image"
	"io"

	"github.com/gogpu/gg"
)

// Snapshot renders the element as it would appear on screen: background
// color, background image, drawn content, then border.
func (c *Canvas) Snapshot() (image.Image, error) {
	dc, err := c.compose()
	if err != nil {
		return nil, err
	}
	defer func() { _ = dc.Close() }()
	return dc.Image(), nil
}

// SavePNG writes the element snapshot to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	dc, err := c.compose()
	if err != nil {
		return err
	}
	defer func() { _ = dc.Close() }()
	return dc.SavePNG(path)
}

// EncodePNG writes the element snapshot as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	dc, err := c.compose()
	if err != nil {
		return err
	}
	defer func() { _ = dc.Close() }()
	return dc.EncodePNG(w)
}

func (c *Canvas) compose() (*gg.Context, error) {
	if c.closed {
		return nil, ErrClosed
	}
	w, h := c.Size()
	dc := gg.NewContext(w, h)

	// A background image replaces the background color.
	if c.backgroundImage != nil {
		dc.DrawImage(c.backgroundImage, 0, 0)
	} else if !c.background.None {
		dc.ClearWithColor(c.background.Color)
	}
	dc.DrawImage(gg.ImageBufFromImage(c.ctx.Image()), 0, 0)

	if !c.border.IsNone() {
		// The border sits inside the element box.
		inset := c.border.Width / 2
		dc.SetColor(c.border.Color)
		dc.SetLineWidth(c.border.Width)
		if dash := c.border.Dash(); dash != nil {
			dc.SetDash(dash...)
		}
		dc.DrawRectangle(inset, inset, float64(w)-c.border.Width, float64(h)-c.border.Width)
		if err := dc.Stroke(); err != nil {
			_ = dc.Close()
			return nil, err
		}
	}
	return dc, nil
}
