// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageload

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// encodePNG returns a w x h opaque red PNG.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// gatedFetcher serves images from memory, holding each fetch until the
// test releases it.
type gatedFetcher struct {
	mu    sync.Mutex
	data  map[string][]byte
	gates map[string]chan struct{}
	calls map[string]int
}

func newGatedFetcher() *gatedFetcher {
	return &gatedFetcher{
		data:  make(map[string][]byte),
		gates: make(map[string]chan struct{}),
		calls: make(map[string]int),
	}
}

func (f *gatedFetcher) add(src string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[src] = data
	f.gates[src] = make(chan struct{})
}

func (f *gatedFetcher) release(src string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	close(f.gates[src])
}

func (f *gatedFetcher) count(src string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[src]
}

func (f *gatedFetcher) Fetch(ctx context.Context, src string) (io.ReadCloser, error) {
	f.mu.Lock()
	f.calls[src]++
	gate, ok := f.gates[src]
	data := f.data[src]
	f.mu.Unlock()
	if !ok {
		return nil, os.ErrNotExist
	}
	select {
	case <-gate:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestLoadIsIdempotent(t *testing.T) {
	f := newGatedFetcher()
	f.add("a.png", encodePNG(t, 2, 2))
	l := NewLoader(WithFetcher(f))

	if !l.Load("a.png") {
		t.Fatal("first Load() = false, want true")
	}
	if l.Load("a.png") {
		t.Error("second Load() = true, want false")
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
	if got := l.State("a.png"); got != Loading {
		t.Errorf("State() = %v, want Loading", got)
	}

	f.release("a.png")
	if err := l.Wait(waitCtx(t)); err != nil {
		t.Fatalf("Wait() = %v", err)
	}
	if l.Load("a.png") {
		t.Error("Load() after completion started a new fetch")
	}
	if n := f.count("a.png"); n != 1 {
		t.Errorf("fetch count = %d, want 1", n)
	}
	if got := l.State("a.png"); got != Loaded {
		t.Errorf("State() = %v, want Loaded", got)
	}
}

func TestLoadAllUniqueSources(t *testing.T) {
	f := newGatedFetcher()
	for _, src := range []string{"a", "b", "c"} {
		f.add(src, encodePNG(t, 1, 1))
		f.release(src)
	}
	l := NewLoader(WithFetcher(f))

	if n := l.LoadAll("a", "b", "a", "c", "b"); n != 3 {
		t.Errorf("LoadAll() started %d, want 3", n)
	}
	if err := l.Wait(waitCtx(t)); err != nil {
		t.Fatalf("Wait() = %v", err)
	}
	for _, src := range []string{"a", "b", "c"} {
		if f.count(src) != 1 {
			t.Errorf("fetch count for %s = %d, want 1", src, f.count(src))
		}
	}
	if l.InFlight() != 0 {
		t.Errorf("InFlight() = %d, want 0", l.InFlight())
	}
}

func TestThenQueuesAllCallbacksInOrder(t *testing.T) {
	f := newGatedFetcher()
	f.add("a.png", encodePNG(t, 3, 2))
	l := NewLoader(WithFetcher(f))

	var order []int
	for i := 1; i <= 3; i++ {
		l.Then("a.png", func(img *Image, err error) {
			if err != nil {
				t.Errorf("callback %d: err = %v", i, err)
				return
			}
			if img.Width != 3 || img.Height != 2 {
				t.Errorf("callback %d: size = %dx%d", i, img.Width, img.Height)
			}
			order = append(order, i)
		})
	}
	if len(order) != 0 {
		t.Fatal("callbacks ran before delivery")
	}

	f.release("a.png")
	if err := l.Wait(waitCtx(t)); err != nil {
		t.Fatalf("Wait() = %v", err)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("callback order = %v, want [1 2 3]", order)
	}
}

func TestThenRunsImmediatelyWhenLoaded(t *testing.T) {
	f := newGatedFetcher()
	f.add("a.png", encodePNG(t, 1, 1))
	f.release("a.png")
	l := NewLoader(WithFetcher(f))
	l.Load("a.png")
	if err := l.Wait(waitCtx(t)); err != nil {
		t.Fatal(err)
	}

	ran := false
	l.Then("a.png", func(img *Image, err error) { ran = err == nil && img != nil })
	if !ran {
		t.Error("Then on a loaded image did not run synchronously")
	}
}

func TestFailedLoadReportsError(t *testing.T) {
	l := NewLoader(WithFetcher(newGatedFetcher()))

	var got error
	l.Then("missing.png", func(img *Image, err error) {
		if img != nil {
			t.Error("img != nil on failure")
		}
		got = err
	})

	err := l.Wait(waitCtx(t))
	var lerr *LoadError
	if !errors.As(err, &lerr) || lerr.Src != "missing.png" {
		t.Fatalf("Wait() = %v, want *LoadError for missing.png", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Wait() error does not wrap os.ErrNotExist: %v", err)
	}
	if !errors.Is(got, os.ErrNotExist) {
		t.Errorf("callback error = %v", got)
	}
	if l.State("missing.png") != Failed {
		t.Errorf("State() = %v, want Failed", l.State("missing.png"))
	}
	if _, err := l.Image("missing.png"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Image() error = %v", err)
	}

	// Failed entries are not retried.
	if l.Load("missing.png") {
		t.Error("Load() retried a failed entry")
	}
}

func TestDecodeError(t *testing.T) {
	f := newGatedFetcher()
	f.add("junk", []byte("not an image"))
	f.release("junk")
	l := NewLoader(WithFetcher(f))
	l.Load("junk")
	if err := l.Wait(waitCtx(t)); err == nil {
		t.Fatal("Wait() = nil, want decode error")
	}
}

func TestWaitHonorsContext(t *testing.T) {
	f := newGatedFetcher()
	f.add("slow.png", encodePNG(t, 1, 1))
	l := NewLoader(WithFetcher(f))
	l.Load("slow.png")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait() = %v, want DeadlineExceeded", err)
	}
	if l.State("slow.png") != Loading {
		t.Errorf("State() = %v, want Loading", l.State("slow.png"))
	}

	f.release("slow.png")
	if err := l.Wait(waitCtx(t)); err != nil {
		t.Fatal(err)
	}
}

func TestImageNotLoaded(t *testing.T) {
	l := NewLoader(WithFetcher(newGatedFetcher()))
	if _, err := l.Image("nope"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Image() error = %v, want ErrNotLoaded", err)
	}
	if l.State("nope") != NotStarted {
		t.Errorf("State() = %v, want NotStarted", l.State("nope"))
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		NotStarted: "NotStarted",
		Loading:    "Loading",
		Loaded:     "Loaded",
		Failed:     "Failed",
		State(99):  "Unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
}

func TestDefaultFetcherSources(t *testing.T) {
	data := encodePNG(t, 4, 4)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tile.png"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tile.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	fetcher := &DefaultFetcher{Client: srv.Client(), BaseDir: dir}
	l := NewLoader(WithFetcher(fetcher))

	sources := []string{
		"tile.png",
		filepath.Join(dir, "tile.png"),
		"file://" + filepath.ToSlash(filepath.Join(dir, "tile.png")),
		srv.URL + "/tile.png",
		"data:image/png;base64," + base64.StdEncoding.EncodeToString(data),
	}
	l.LoadAll(sources...)
	if err := l.Wait(waitCtx(t)); err != nil {
		t.Fatalf("Wait() = %v", err)
	}
	for _, src := range sources {
		img, err := l.Image(src)
		if err != nil {
			t.Errorf("Image(%q) error = %v", src, err)
			continue
		}
		if img.Width != 4 || img.Height != 4 || img.Format != "png" {
			t.Errorf("Image(%q) = %dx%d %s", src, img.Width, img.Height, img.Format)
		}
	}
}

func TestDefaultFetcherHTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	l := NewLoader(WithFetcher(&DefaultFetcher{Client: srv.Client()}))
	l.Load(srv.URL + "/missing.png")
	err := l.Wait(waitCtx(t))
	var serr *StatusError
	if !errors.As(err, &serr) || serr.StatusCode != http.StatusNotFound {
		t.Errorf("Wait() = %v, want *StatusError 404", err)
	}
}

func TestOpenDataURIMalformed(t *testing.T) {
	if _, err := openDataURI("data:image/png;base64"); !errors.Is(err, errBadDataURI) {
		t.Errorf("openDataURI without comma = %v", err)
	}
	if _, err := openDataURI("data:;base64,@@@"); !errors.Is(err, errBadDataURI) {
		t.Errorf("openDataURI bad base64 = %v", err)
	}
}

func TestOnFailure(t *testing.T) {
	l := NewLoader(WithFetcher(newGatedFetcher()))
	var failed []string
	l.OnFailure(func(src string, err error) {
		if err == nil {
			t.Error("OnFailure called with nil error")
		}
		failed = append(failed, src)
	})
	l.LoadAll("x.png", "y.png")
	_ = l.Wait(waitCtx(t))
	if len(failed) != 2 {
		t.Errorf("OnFailure calls = %v, want 2", failed)
	}
}
