// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageload

import (
	"context"
	"errors"
	"sync"

	"github.com/gogpu/easel/internal/logging"
)

// Callback receives the outcome of a load. Exactly one of img and err is nil.
type Callback func(img *Image, err error)

// Option configures a Loader.
type Option func(*Loader)

// WithFetcher sets the Fetcher used to open sources.
// The default is a zero DefaultFetcher.
func WithFetcher(f Fetcher) Option {
	return func(l *Loader) {
		if f != nil {
			l.fetcher = f
		}
	}
}

type entry struct {
	state   State
	img     *Image
	err     error
	pending []Callback
}

type result struct {
	src string
	img *Image
	err error
}

// Loader is an image cache keyed by source string.
//
// All methods must be called from the goroutine that owns the Loader.
// Only fetching and decoding happen elsewhere.
type Loader struct {
	fetcher   Fetcher
	entries   map[string]*entry
	inflight  int
	onFailure []func(src string, err error)

	// mu guards done, the results waiting for delivery.
	mu     sync.Mutex
	done   []result
	notify chan struct{}
}

// NewLoader creates an empty Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		fetcher: &DefaultFetcher{},
		entries: make(map[string]*entry),
		notify:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load starts fetching src unless an entry for it already exists.
// It reports whether a new fetch was started.
func (l *Loader) Load(src string) bool {
	if _, ok := l.entries[src]; ok {
		return false
	}
	l.entries[src] = &entry{state: Loading}
	l.inflight++
	logging.Logger().Debug("imageload: fetch started", "src", src)
	go l.fetch(src)
	return true
}

// LoadAll starts fetching every source that has no entry yet.
// One fetch is issued per unique source.
func (l *Loader) LoadAll(srcs ...string) int {
	started := 0
	for _, src := range srcs {
		if l.Load(src) {
			started++
		}
	}
	return started
}

func (l *Loader) fetch(src string) {
	img, err := l.fetchAndDecode(src)
	if err != nil {
		err = &LoadError{Src: src, Err: err}
	}

	l.mu.Lock()
	l.done = append(l.done, result{src: src, img: img, err: err})
	l.mu.Unlock()

	select {
	case l.notify <- struct{}{}:
	default:
	}
}

func (l *Loader) fetchAndDecode(src string) (*Image, error) {
	rc, err := l.fetcher.Fetch(context.Background(), src)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Decode(src, rc)
}

// OnFailure registers fn to run, on the owner goroutine, each time a load
// is delivered as failed. Handlers run before the entry's callbacks.
func (l *Loader) OnFailure(fn func(src string, err error)) {
	l.onFailure = append(l.onFailure, fn)
}

// State returns the state of the entry for src.
func (l *Loader) State(src string) State {
	e, ok := l.entries[src]
	if !ok {
		return NotStarted
	}
	return e.state
}

// Image returns the decoded image for src. It returns ErrNotLoaded while
// the load is outstanding and the load error for failed entries.
func (l *Loader) Image(src string) (*Image, error) {
	e, ok := l.entries[src]
	if !ok || e.state == Loading {
		return nil, ErrNotLoaded
	}
	if e.state == Failed {
		return nil, e.err
	}
	return e.img, nil
}

// Len returns the number of cache entries.
func (l *Loader) Len() int {
	return len(l.entries)
}

// InFlight returns the number of loads not yet delivered.
func (l *Loader) InFlight() int {
	return l.inflight
}

// Then starts loading src if needed and arranges for fn to run with the
// outcome. For loaded and failed entries fn runs immediately; otherwise it
// is queued and runs when the result is delivered by Poll or Wait.
// Every queued callback runs, in the order Then was called.
func (l *Loader) Then(src string, fn Callback) {
	l.Load(src)
	e := l.entries[src]
	switch e.state {
	case Loaded:
		fn(e.img, nil)
	case Failed:
		fn(nil, e.err)
	default:
		e.pending = append(e.pending, fn)
	}
}

// Poll delivers every completed load without blocking. It returns the
// number of loads delivered and the joined errors of those that failed.
func (l *Loader) Poll() (int, error) {
	l.mu.Lock()
	done := l.done
	l.done = nil
	l.mu.Unlock()

	var errs []error
	for _, r := range done {
		if err := l.deliver(r); err != nil {
			errs = append(errs, err)
		}
	}
	return len(done), errors.Join(errs...)
}

// Wait delivers completed loads until none are outstanding or ctx is done.
// It returns the joined errors of failed loads delivered while waiting,
// plus ctx.Err() if ctx ended first.
func (l *Loader) Wait(ctx context.Context) error {
	var errs []error
	for {
		if _, err := l.Poll(); err != nil {
			errs = append(errs, err)
		}
		if l.inflight == 0 {
			return errors.Join(errs...)
		}
		select {
		case <-ctx.Done():
			return errors.Join(append(errs, ctx.Err())...)
		case <-l.notify:
		}
	}
}

func (l *Loader) deliver(r result) error {
	e := l.entries[r.src]
	l.inflight--

	pending := e.pending
	e.pending = nil

	if r.err != nil {
		e.state = Failed
		e.err = r.err
		logging.Logger().Warn("imageload: load failed", "src", r.src, "err", r.err, "waiting", len(pending))
		for _, fn := range l.onFailure {
			fn(r.src, r.err)
		}
	} else {
		e.state = Loaded
		e.img = r.img
		logging.Logger().Debug("imageload: loaded", "src", r.src,
			"format", r.img.Format, "width", r.img.Width, "height", r.img.Height)
	}

	for _, fn := range pending {
		fn(e.img, e.err)
	}
	return e.err
}
