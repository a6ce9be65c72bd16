// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

type mockDevice struct{}

type mockQueue struct{}

type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider without a GPU.
type mockProvider struct{}

func (mockProvider) Device() gpucontext.Device             { return &mockDevice{} }
func (mockProvider) Queue() gpucontext.Queue               { return &mockQueue{} }
func (mockProvider) Adapter() gpucontext.Adapter           { return &mockAdapter{} }
func (mockProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }
func (mockProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

type mockTexture struct {
	width, height int
}

func (m *mockTexture) Width() int  { return m.width }
func (m *mockTexture) Height() int { return m.height }

type mockCreator struct {
	created int
}

func (m *mockCreator) NewTextureFromRGBA(width, height int, _ []byte) (gpucontext.Texture, error) {
	m.created++
	return &mockTexture{width: width, height: height}, nil
}

// mockDrawer records texture draws.
type mockDrawer struct {
	creator *mockCreator
	draws   int
	x, y    float32
}

func (m *mockDrawer) DrawTexture(_ gpucontext.Texture, x, y float32) error {
	m.draws++
	m.x, m.y = x, y
	return nil
}

func (m *mockDrawer) TextureCreator() gpucontext.TextureCreator { return m.creator }

func TestGPUCanvasPresent(t *testing.T) {
	doc := NewDocument()
	defer doc.Close()

	c, err := doc.CreateGPUCanvas("gpu", mockProvider{}, 32, 32)
	if err != nil {
		t.Fatalf("CreateGPUCanvas() error = %v", err)
	}
	if !c.IsGPU() {
		t.Fatal("IsGPU() = false")
	}

	c.Rect(4, 4, 8, 8)
	if err := c.Fill(red); err != nil {
		t.Fatal(err)
	}
	c.SetPosition(10, 20)

	dc := &mockDrawer{creator: &mockCreator{}}
	if err := c.Present(dc); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if dc.draws != 1 || dc.x != 10 || dc.y != 20 {
		t.Errorf("draws = %d at (%v, %v), want 1 at (10, 20)", dc.draws, dc.x, dc.y)
	}
	if dc.creator.created != 1 {
		t.Errorf("textures created = %d, want 1", dc.creator.created)
	}

	if err := c.Resize(64, 16); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if w, h := c.Size(); w != 64 || h != 16 {
		t.Errorf("Size() = %dx%d, want 64x16", w, h)
	}
}

func TestPresentSoftwareCanvas(t *testing.T) {
	c := newTestCanvas(t, 8, 8)
	if c.IsGPU() {
		t.Fatal("software canvas reports IsGPU")
	}
	if err := c.Present(&mockDrawer{}); !errors.Is(err, ErrNotGPU) {
		t.Errorf("Present() = %v, want ErrNotGPU", err)
	}
}

func TestCreateGPUCanvasNilProvider(t *testing.T) {
	doc := NewDocument()
	defer doc.Close()

	if _, err := doc.CreateGPUCanvas("gpu", nil, 8, 8); err == nil {
		t.Fatal("CreateGPUCanvas(nil provider) succeeded")
	}
	if len(doc.IDs()) != 0 {
		t.Errorf("failed creation registered %v", doc.IDs())
	}
}
