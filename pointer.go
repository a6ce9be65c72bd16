// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package easel

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
)

// MousePosition converts the window coordinates of ev to target-local
// coordinates.
func (s *Surface) MousePosition(ev gpucontext.PointerEvent) gg.Point {
	r := s.target.BoundingClientRect()
	return gg.Pt(ev.X-r.Min.X, ev.Y-r.Min.Y)
}
