// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package easel

import (
	"context"
	"fmt"

	"github.com/gogpu/easel/host"
	"github.com/gogpu/easel/imageload"
	"github.com/gogpu/easel/internal/logging"
)

// Size is a pixel size.
type Size struct {
	Width, Height int
}

// Dimensions records the target size at construction and after the most
// recent Resize. Initial never changes.
type Dimensions struct {
	Initial Size
	Current Size
}

// Option configures a Surface during creation.
type Option func(*surfaceOptions)

type surfaceOptions struct {
	loader       *imageload.Loader
	loaderOpts   []imageload.Option
	onImageError func(src string, err error)
}

// WithLoader makes the Surface use l as its image cache, so several
// surfaces can share loaded images.
func WithLoader(l *imageload.Loader) Option {
	return func(o *surfaceOptions) {
		o.loader = l
	}
}

// WithFetcher sets how image sources are fetched. It is ignored when
// WithLoader is also given.
func WithFetcher(f imageload.Fetcher) Option {
	return func(o *surfaceOptions) {
		o.loaderOpts = append(o.loaderOpts, imageload.WithFetcher(f))
	}
}

// WithImageErrorHandler sets a function called on the Surface goroutine
// for every image load that fails.
func WithImageErrorHandler(fn func(src string, err error)) Option {
	return func(o *surfaceOptions) {
		o.onImageError = fn
	}
}

// Surface wraps a Target with option defaults and an image cache.
//
// Surface is NOT safe for concurrent use.
type Surface struct {
	target Target
	dims   Dimensions
	opts   Options
	style  Style
	images *imageload.Loader

	// pending counts queued draws per loading source; only the draw
	// holding the latest count runs on delivery.
	pending map[string]int

	// bgImage is the background image source currently requested.
	bgImage      string
	onImageError func(src string, err error)
}

// New creates a Surface drawing on t. opts are merged over the default
// option table and applied to the target.
func New(t Target, opts Options, sopts ...Option) (*Surface, error) {
	if t == nil {
		return nil, ErrNilTarget
	}
	var so surfaceOptions
	for _, opt := range sopts {
		opt(&so)
	}

	merged := MergeOptions(DefaultOptions(), opts)
	st, err := ResolveStyle(merged)
	if err != nil {
		return nil, err
	}

	w, h := t.Size()
	s := &Surface{
		target:       t,
		dims:         Dimensions{Initial: Size{w, h}, Current: Size{w, h}},
		opts:         merged,
		style:        st,
		images:       so.loader,
		pending:      make(map[string]int),
		onImageError: so.onImageError,
	}
	if s.images == nil {
		s.images = imageload.NewLoader(so.loaderOpts...)
	}
	if s.onImageError != nil {
		s.images.OnFailure(s.onImageError)
	}
	s.applyElementStyle()
	return s, nil
}

// Open creates a Surface on the canvas element of doc registered under id.
// It returns a *host.ElementNotFoundError if there is none.
func Open(doc *host.Document, id string, opts Options, sopts ...Option) (*Surface, error) {
	c, err := doc.Canvas(id)
	if err != nil {
		return nil, err
	}
	logging.Logger().Debug("easel: target resolved", "id", id)
	return New(c, opts, sopts...)
}

// Target returns the wrapped target.
func (s *Surface) Target() Target { return s.target }

// Options returns the merged options in effect.
func (s *Surface) Options() Options { return s.opts }

// Style returns the resolved options in effect.
func (s *Surface) Style() Style { return s.style }

// Dimensions returns the initial and current target size.
func (s *Surface) Dimensions() Dimensions { return s.dims }

// Loader returns the image cache.
func (s *Surface) Loader() *imageload.Loader { return s.images }

// SetOptions merges opts over the options in effect and re-applies the
// element styling. If any option is invalid nothing changes.
func (s *Surface) SetOptions(opts Options) error {
	merged := MergeOptions(DefaultOptions(), s.opts, opts)
	st, err := ResolveStyle(merged)
	if err != nil {
		return err
	}
	s.opts = merged
	s.style = st
	s.applyElementStyle()
	return nil
}

// applyElementStyle pushes the element-level options to the target.
func (s *Surface) applyElementStyle() {
	s.target.SetBackground(s.style.Background)
	s.target.SetBorder(s.style.Border)
	s.target.SetCursor(s.style.Cursor)
	s.target.SetCompositeOperation(s.style.Composite)
	s.applyBackgroundImage()
}

func (s *Surface) applyBackgroundImage() {
	src := s.style.BackgroundImage
	if src == s.bgImage {
		return
	}
	s.bgImage = src
	if src == "" {
		s.target.SetBackgroundImage(nil)
		return
	}
	s.images.Then(src, func(img *imageload.Image, err error) {
		// A later SetOptions may have replaced the image meanwhile.
		if err != nil || s.bgImage != src {
			return
		}
		s.target.SetBackgroundImage(img.Buf)
	})
}

// Resize sets the target's pixel size. Drawn content is discarded.
func (s *Surface) Resize(width, height int) error {
	if err := s.target.Resize(width, height); err != nil {
		return fmt.Errorf("easel: resize: %w", err)
	}
	s.dims.Current = Size{width, height}
	return nil
}

// Clear erases everything drawn on the target.
func (s *Surface) Clear() {
	s.target.Clear()
}

// Poll runs queued image draws for loads that have finished, without
// blocking. It returns the errors of loads that failed.
func (s *Surface) Poll() error {
	_, err := s.images.Poll()
	return err
}

// Wait blocks until every started image load has been delivered or ctx is
// done, running queued draws as loads finish.
func (s *Surface) Wait(ctx context.Context) error {
	return s.images.Wait(ctx)
}
