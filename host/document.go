// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/easel/internal/logging"
)

// CursorSetter receives cursor shape changes from canvas elements.
// gpucontext.PlatformProvider satisfies it.
type CursorSetter interface {
	SetCursor(cursor gpucontext.CursorShape)
}

// DocumentOption configures a Document.
type DocumentOption func(*Document)

// WithPlatform forwards cursor changes of every element to p.
func WithPlatform(p CursorSetter) DocumentOption {
	return func(d *Document) {
		d.platform = p
	}
}

// WithFonts sets the font book used for text on every element.
// The default is NewFontBook() with no system font lookup.
func WithFonts(fb *FontBook) DocumentOption {
	return func(d *Document) {
		if fb != nil {
			d.fonts = fb
		}
	}
}

// Document is a registry of canvas elements keyed by identifier.
//
// Document methods are safe for concurrent use. The canvases it returns
// are not.
type Document struct {
	mu       sync.RWMutex
	elements map[string]*Canvas
	platform CursorSetter
	fonts    *FontBook
}

// NewDocument creates an empty document.
func NewDocument(opts ...DocumentOption) *Document {
	d := &Document{
		elements: make(map[string]*Canvas),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.fonts == nil {
		d.fonts = NewFontBook()
	}
	return d
}

// Fonts returns the document's font book.
func (d *Document) Fonts() *FontBook {
	return d.fonts
}

// CreateCanvas adds a software-rendered canvas element of the given size.
func (d *Document) CreateCanvas(id string, width, height int) (*Canvas, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	return d.add(id, func() (*Canvas, error) {
		return newCanvas(id, gg.NewContext(width, height), nil, d), nil
	})
}

// CreateGPUCanvas adds a canvas element whose content can be presented
// through the GPU device of provider.
func (d *Document) CreateGPUCanvas(id string, provider gpucontext.DeviceProvider, width, height int) (*Canvas, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	return d.add(id, func() (*Canvas, error) {
		gc, err := ggcanvas.New(provider, width, height)
		if err != nil {
			return nil, fmt.Errorf("host: create gpu canvas %q: %w", id, err)
		}
		return newCanvas(id, gc.Context(), gc, d), nil
	})
}

func (d *Document) add(id string, create func() (*Canvas, error)) (*Canvas, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.elements[id]; ok {
		return nil, &DuplicateIDError{ID: id}
	}
	c, err := create()
	if err != nil {
		return nil, err
	}
	d.elements[id] = c
	logging.Logger().Debug("host: element created", "id", id, "gpu", c.gpu != nil)
	return c, nil
}

// Canvas returns the element registered under id.
func (d *Document) Canvas(id string) (*Canvas, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c, ok := d.elements[id]
	if !ok {
		return nil, &ElementNotFoundError{ID: id}
	}
	return c, nil
}

// Remove closes the element registered under id and drops it from the
// document.
func (d *Document) Remove(id string) error {
	d.mu.Lock()
	c, ok := d.elements[id]
	delete(d.elements, id)
	d.mu.Unlock()

	if !ok {
		return &ElementNotFoundError{ID: id}
	}
	return c.Close()
}

// IDs returns the identifiers of all elements in sorted order.
func (d *Document) IDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]string, 0, len(d.elements))
	for id := range d.elements {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Close closes every element and the font book.
func (d *Document) Close() error {
	d.mu.Lock()
	elements := d.elements
	d.elements = make(map[string]*Canvas)
	d.mu.Unlock()

	var errs []error
	for _, c := range elements {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := d.fonts.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (d *Document) setCursor(shape gpucontext.CursorShape) {
	if d.platform != nil {
		d.platform.SetCursor(shape)
	}
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return nil
}
