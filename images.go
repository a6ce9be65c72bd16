// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package easel

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/easel/imageload"
	"github.com/gogpu/easel/internal/logging"
)

// LoadImage starts loading src unless it is already cached.
func (s *Surface) LoadImage(src string) {
	s.images.Load(src)
}

// LoadImages starts loading every source not yet cached.
func (s *Surface) LoadImages(srcs ...string) {
	s.images.LoadAll(srcs...)
}

// ImageState returns the load state of src.
func (s *Surface) ImageState(src string) imageload.State {
	return s.images.State(src)
}

// Image draws src at (x, y) at its natural size.
func (s *Surface) Image(src string, x, y float64, opts ...DrawOption) error {
	return s.drawImage(src, clip{x: x, y: y}, opts)
}

// ImageResized draws the top-left w x h region of src at (x, y). The
// source region equals the destination, so the image is clipped or
// padded, never scaled; use ImageClipped with an explicit source size to
// scale. A zero w or h keeps the natural size on that axis.
func (s *Surface) ImageResized(src string, x, y, w, h float64, opts ...DrawOption) error {
	return s.drawImage(src, clip{x: x, y: y, w: w, h: h}, opts)
}

// ImageClipped draws the sw x sh region of src at (sx, sy) into the
// w x h rectangle at (x, y).
//
// A zero w or h defaults to the natural size; a zero sw or sh defaults to
// the destination size.
func (s *Surface) ImageClipped(src string, sx, sy, sw, sh, x, y, w, h float64, opts ...DrawOption) error {
	return s.drawImage(src, clip{sx: sx, sy: sy, sw: sw, sh: sh, x: x, y: y, w: w, h: h}, opts)
}

// clip is the source and destination geometry of an image draw.
// Zero sizes are filled in once the image is available.
type clip struct {
	sx, sy, sw, sh float64
	x, y, w, h     float64
}

func (c clip) resolve(img *imageload.Image) (image.Rectangle, gg.Rect) {
	if c.w == 0 {
		c.w = float64(img.Width)
	}
	if c.h == 0 {
		c.h = float64(img.Height)
	}
	if c.sw == 0 {
		c.sw = c.w
	}
	if c.sh == 0 {
		c.sh = c.h
	}
	src := image.Rect(
		int(math.Round(c.sx)), int(math.Round(c.sy)),
		int(math.Round(c.sx+c.sw)), int(math.Round(c.sy+c.sh)),
	)
	dst := gg.Rect{Min: gg.Pt(c.x, c.y), Max: gg.Pt(c.x+c.w, c.y+c.h)}
	return src, dst
}

// drawImage draws now if src is loaded, returns the load error if it
// failed, and otherwise queues the draw until the load is delivered.
// Only the latest draw queued for a source runs; earlier ones are dropped.
// The draw style is resolved at call time.
func (s *Surface) drawImage(src string, c clip, opts []DrawOption) error {
	p := s.resolveDraw(opts)

	switch s.images.State(src) {
	case imageload.Loaded, imageload.Failed:
		img, err := s.images.Image(src)
		if err != nil {
			return err
		}
		return s.blit(img, c, p)
	}

	s.pending[src]++
	seq := s.pending[src]
	s.images.Then(src, func(img *imageload.Image, err error) {
		if s.pending[src] != seq {
			return
		}
		delete(s.pending, src)
		if err != nil {
			return
		}
		if err := s.blit(img, c, p); err != nil {
			logging.Logger().Warn("easel: queued image draw failed", "src", src, "err", err)
		}
	})
	return nil
}

func (s *Surface) blit(img *imageload.Image, c clip, p drawParams) error {
	src, dst := c.resolve(img)
	return s.withComposite(p, func() error {
		return s.target.DrawImage(img.Buf, src, dst)
	})
}
