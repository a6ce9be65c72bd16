// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package easel

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/easel/imageload"
	"github.com/gogpu/easel/style"
)

// recordingTarget is a Target that records every call as a string.
type recordingTarget struct {
	w, h      int
	composite style.CompositeOp
	pos       gg.Point
	calls     []string

	background style.Paint
	bgImage    *gg.ImageBuf
	border     style.Border
	cursor     gpucontext.CursorShape
	fillErr    error
}

func newRecordingTarget(w, h int) *recordingTarget {
	return &recordingTarget{w: w, h: h, composite: style.SourceOver}
}

func (r *recordingTarget) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recordingTarget) reset() { r.calls = nil }

func (r *recordingTarget) Size() (int, int) { return r.w, r.h }

func (r *recordingTarget) Resize(w, h int) error {
	r.w, r.h = w, h
	r.record("Resize(%d,%d)", w, h)
	return nil
}

func (r *recordingTarget) Clear()                         { r.record("Clear") }
func (r *recordingTarget) BeginPath()                     { r.record("BeginPath") }
func (r *recordingTarget) MoveTo(x, y float64)            { r.record("MoveTo(%g,%g)", x, y) }
func (r *recordingTarget) LineTo(x, y float64)            { r.record("LineTo(%g,%g)", x, y) }
func (r *recordingTarget) ClosePath()                     { r.record("ClosePath") }
func (r *recordingTarget) Rect(x, y, w, h float64)        { r.record("Rect(%g,%g,%g,%g)", x, y, w, h) }
func (r *recordingTarget) Arc(cx, cy, rad, a0, a1 float64) { r.record("Arc(%g,%g,%g)", cx, cy, rad) }

func (r *recordingTarget) QuadraticCurveTo(cx, cy, x, y float64) {
	r.record("QuadraticCurveTo(%g,%g,%g,%g)", cx, cy, x, y)
}

func (r *recordingTarget) Fill(c gg.RGBA) error {
	r.record("Fill(%s)[%s]", colorName(c), r.composite)
	return r.fillErr
}

func (r *recordingTarget) Stroke(c gg.RGBA, width float64) error {
	r.record("Stroke(%s,%g)[%s]", colorName(c), width, r.composite)
	return nil
}

func (r *recordingTarget) FillText(s string, x, y float64, t style.Text) error {
	r.record("FillText(%q,%g,%g,%s,%s,%s,%s,%g)[%s]", s, x, y,
		colorName(t.Color), t.Font.String(), t.Align, t.Baseline, t.MaxWidth, r.composite)
	return nil
}

func (r *recordingTarget) DrawImage(img *gg.ImageBuf, src image.Rectangle, dst gg.Rect) error {
	r.record("DrawImage(%v,%g,%g,%g,%g)[%s]", src, dst.Min.X, dst.Min.Y, dst.Width(), dst.Height(), r.composite)
	return nil
}

func (r *recordingTarget) CompositeOperation() style.CompositeOp { return r.composite }

func (r *recordingTarget) SetCompositeOperation(op style.CompositeOp) { r.composite = op }

func (r *recordingTarget) SetBackground(p style.Paint)         { r.background = p }
func (r *recordingTarget) SetBackgroundImage(img *gg.ImageBuf) { r.bgImage = img }
func (r *recordingTarget) SetBorder(b style.Border)            { r.border = b }
func (r *recordingTarget) SetCursor(c gpucontext.CursorShape)  { r.cursor = c }

func (r *recordingTarget) BoundingClientRect() gg.Rect {
	return gg.Rect{Min: r.pos, Max: gg.Pt(r.pos.X+float64(r.w), r.pos.Y+float64(r.h))}
}

// colorName renders common test colors by name.
func colorName(c gg.RGBA) string {
	switch c {
	case gg.RGB(0, 0, 0):
		return "black"
	case gg.RGB(1, 0, 0):
		return "red"
	case gg.RGB(0, 0, 1):
		return "blue"
	case gg.RGB(0, 1, 0):
		return "lime"
	}
	return fmt.Sprintf("rgba(%.2f,%.2f,%.2f,%.2f)", c.R, c.G, c.B, c.A)
}

func (r *recordingTarget) has(prefix string) bool {
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

func (r *recordingTarget) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// memFetcher serves PNG images from memory. Sources listed in gates are
// held until released.
type memFetcher struct {
	mu    sync.Mutex
	data  map[string][]byte
	gates map[string]chan struct{}
	calls int
}

func newMemFetcher() *memFetcher {
	return &memFetcher{data: make(map[string][]byte), gates: make(map[string]chan struct{})}
}

func (f *memFetcher) add(t *testing.T, src string, w, h int, gated bool) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[src] = buf.Bytes()
	if gated {
		f.gates[src] = make(chan struct{})
	}
}

func (f *memFetcher) release(src string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	close(f.gates[src])
}

func (f *memFetcher) Fetch(ctx context.Context, src string) (io.ReadCloser, error) {
	f.mu.Lock()
	f.calls++
	data, ok := f.data[src]
	gate := f.gates[src]
	f.mu.Unlock()
	if !ok {
		return nil, os.ErrNotExist
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *memFetcher) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

var _ imageload.Fetcher = (*memFetcher)(nil)
