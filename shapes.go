// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package easel

import (
	"math"

	"github.com/gogpu/gg"
)

// Segment is a straight line from From to To.
type Segment struct {
	From, To gg.Point
}

// Line strokes a straight line from (x1, y1) to (x2, y2).
func (s *Surface) Line(x1, y1, x2, y2 float64, opts ...DrawOption) error {
	s.target.BeginPath()
	s.target.MoveTo(x1, y1)
	s.target.LineTo(x2, y2)
	return s.strokeOnly(opts)
}

// Lines strokes independent segments in a single stroke.
func (s *Surface) Lines(segments []Segment, opts ...DrawOption) error {
	if len(segments) == 0 {
		return ErrEmptyPath
	}
	s.target.BeginPath()
	for _, seg := range segments {
		s.target.MoveTo(seg.From.X, seg.From.Y)
		s.target.LineTo(seg.To.X, seg.To.Y)
	}
	return s.strokeOnly(opts)
}

// PolyLine strokes an open path through points in order.
func (s *Surface) PolyLine(points []gg.Point, opts ...DrawOption) error {
	if len(points) == 0 {
		return ErrEmptyPath
	}
	s.tracePoints(points)
	return s.strokeOnly(opts)
}

// QuadraticCurve strokes a quadratic Bézier curve from (x1, y1) to
// (x2, y2) with control point (cx, cy).
func (s *Surface) QuadraticCurve(x1, y1, x2, y2, cx, cy float64, opts ...DrawOption) error {
	s.target.BeginPath()
	s.target.MoveTo(x1, y1)
	s.target.QuadraticCurveTo(cx, cy, x2, y2)
	return s.strokeOnly(opts)
}

// Polygon fills and strokes the closed path through points.
func (s *Surface) Polygon(points []gg.Point, opts ...DrawOption) error {
	if len(points) == 0 {
		return ErrEmptyPath
	}
	s.tracePoints(points)
	s.target.ClosePath()
	return s.fillAndStroke(opts)
}

// Circle fills and strokes a circle of radius r centered at (cx, cy).
func (s *Surface) Circle(cx, cy, r float64, opts ...DrawOption) error {
	s.target.BeginPath()
	s.target.Arc(cx, cy, r, 0, 2*math.Pi)
	return s.fillAndStroke(opts)
}

// Rectangle fills and strokes a w x h rectangle with top-left (x, y).
func (s *Surface) Rectangle(x, y, w, h float64, opts ...DrawOption) error {
	s.target.BeginPath()
	s.target.Rect(x, y, w, h)
	return s.fillAndStroke(opts)
}

// Square is Rectangle with equal sides.
func (s *Surface) Square(x, y, size float64, opts ...DrawOption) error {
	return s.Rectangle(x, y, size, size, opts...)
}

func (s *Surface) tracePoints(points []gg.Point) {
	s.target.BeginPath()
	s.target.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.target.LineTo(p.X, p.Y)
	}
}

func (s *Surface) strokeOnly(opts []DrawOption) error {
	p := s.resolveDraw(opts)
	return s.withComposite(p, func() error {
		return s.target.Stroke(p.strokeOnlyColor(s.style), p.strokeWidth)
	})
}

func (s *Surface) fillAndStroke(opts []DrawOption) error {
	p := s.resolveDraw(opts)
	return s.withComposite(p, func() error {
		if err := s.target.Fill(p.fill); err != nil {
			return err
		}
		return s.target.Stroke(p.outlineColor(), p.strokeWidth)
	})
}
