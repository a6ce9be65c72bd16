// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageload

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Fetcher opens the raw bytes of an image source.
// Fetch is called from worker goroutines and must be safe for concurrent use.
type Fetcher interface {
	Fetch(ctx context.Context, src string) (io.ReadCloser, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, src string) (io.ReadCloser, error)

// Fetch calls f(ctx, src).
func (f FetcherFunc) Fetch(ctx context.Context, src string) (io.ReadCloser, error) {
	return f(ctx, src)
}

// DefaultFetcher resolves sources by their form:
//   - "data:" URIs are decoded in place
//   - "http://" and "https://" URLs are fetched with Client
//   - "file://" URLs and plain paths are opened from disk; relative paths
//     are resolved against BaseDir
type DefaultFetcher struct {
	// Client is used for HTTP sources. nil means http.DefaultClient.
	Client *http.Client

	// BaseDir is the directory relative paths are resolved against.
	// Empty means the working directory.
	BaseDir string
}

// errBadDataURI is returned for malformed data URIs.
var errBadDataURI = errors.New("imageload: malformed data URI")

// Fetch implements Fetcher.
func (f *DefaultFetcher) Fetch(ctx context.Context, src string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(src, "data:"):
		return openDataURI(src)
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return f.fetchHTTP(ctx, src)
	case strings.HasPrefix(src, "file://"):
		u, err := url.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("imageload: parse %q: %w", src, err)
		}
		return os.Open(filepath.FromSlash(u.Path))
	}

	path := src
	if f.BaseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(f.BaseDir, path)
	}
	// #nosec G304 -- image paths are supplied by the application
	return os.Open(path)
}

func (f *DefaultFetcher) fetchHTTP(ctx context.Context, src string) (io.ReadCloser, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("imageload: request %q: %w", src, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, &StatusError{URL: src, StatusCode: resp.StatusCode}
	}
	return resp.Body, nil
}

// openDataURI decodes "data:[<mediatype>][;base64],<data>".
func openDataURI(src string) (io.ReadCloser, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(src, "data:"), ",")
	if !ok {
		return nil, errBadDataURI
	}

	var data []byte
	if strings.HasSuffix(meta, ";base64") {
		b, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errBadDataURI, err)
		}
		data = b
	} else {
		s, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errBadDataURI, err)
		}
		data = []byte(s)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
