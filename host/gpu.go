// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import "github.com/gogpu/gpucontext"

// IsGPU reports whether the canvas was created with CreateGPUCanvas.
func (c *Canvas) IsGPU() bool {
	return c.gpu != nil
}

// Present uploads the drawn content if it changed and draws it at the
// element position through dc. Element styling is not presented.
func (c *Canvas) Present(dc gpucontext.TextureDrawer) error {
	if c.closed {
		return ErrClosed
	}
	if c.gpu == nil {
		return ErrNotGPU
	}
	return c.gpu.RenderToPosition(dc, float32(c.pos.X), float32(c.pos.Y))
}
