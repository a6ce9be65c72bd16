// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-text/typesetting/fontscan"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/easel/internal/logging"
	"github.com/gogpu/easel/style"
)

// FontBookOption configures a FontBook.
type FontBookOption func(*FontBook)

// WithSystemFonts enables lookup of installed font families. The font
// index is built on first use and cached in cacheDir; an empty cacheDir
// selects the user cache directory.
func WithSystemFonts(cacheDir string) FontBookOption {
	return func(b *FontBook) {
		b.system = true
		b.cacheDir = cacheDir
	}
}

// FontBook resolves CSS font descriptions to text faces.
//
// Families are tried in order: registered fonts first, then installed
// system fonts when enabled. When no family matches, the Go fonts are
// used, picking the bold and italic variants from the font's weight and
// style.
//
// FontBook is safe for concurrent use.
type FontBook struct {
	mu       sync.Mutex
	sources  map[string]*text.FontSource
	fallback map[string]*text.FontSource
	missing  map[string]bool

	system   bool
	cacheDir string
	scanOnce sync.Once
	scanErr  error
	fontMap  *fontscan.FontMap
}

// NewFontBook creates a font book with no registered fonts.
func NewFontBook(opts ...FontBookOption) *FontBook {
	b := &FontBook{
		sources:  make(map[string]*text.FontSource),
		fallback: make(map[string]*text.FontSource),
		missing:  make(map[string]bool),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Register adds a font under family, replacing any earlier registration.
func (b *FontBook) Register(family string, data []byte) error {
	src, err := text.NewFontSource(data)
	if err != nil {
		return fmt.Errorf("host: register font %q: %w", family, err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	key := familyKey(family)
	if old, ok := b.sources[key]; ok {
		_ = old.Close()
	}
	b.sources[key] = src
	delete(b.missing, key)
	return nil
}

// RegisterFile adds the font file at path under family.
func (b *FontBook) RegisterFile(family, path string) error {
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return fmt.Errorf("host: register font %q: %w", family, err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	key := familyKey(family)
	if old, ok := b.sources[key]; ok {
		_ = old.Close()
	}
	b.sources[key] = src
	delete(b.missing, key)
	return nil
}

// Face returns a face for f at f.Size.
func (b *FontBook) Face(f style.Font) (text.Face, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, family := range f.Families {
		if src := b.lookup(family); src != nil {
			return src.Face(f.Size), nil
		}
	}
	src, err := b.goFont(f)
	if err != nil {
		return nil, err
	}
	return src.Face(f.Size), nil
}

// lookup finds a registered or installed font for family.
// b.mu must be held.
func (b *FontBook) lookup(family string) *text.FontSource {
	key := familyKey(family)
	if src, ok := b.sources[key]; ok {
		return src
	}
	if !b.system || b.missing[key] {
		return nil
	}

	b.scanOnce.Do(b.scan)
	if b.scanErr != nil {
		b.missing[key] = true
		return nil
	}
	loc, ok := b.fontMap.FindSystemFont(family)
	if !ok {
		logging.Logger().Debug("host: font family not installed", "family", family)
		b.missing[key] = true
		return nil
	}
	src, err := text.NewFontSourceFromFile(loc.File, text.WithCollectionIndex(int(loc.Index)))
	if err != nil {
		logging.Logger().Warn("host: load system font", "family", family, "file", loc.File, "err", err)
		b.missing[key] = true
		return nil
	}
	b.sources[key] = src
	return src
}

func (b *FontBook) scan() {
	b.fontMap = fontscan.NewFontMap(scanLogger{})
	if err := b.fontMap.UseSystemFonts(b.cacheDir); err != nil {
		b.scanErr = err
		logging.Logger().Warn("host: system font scan failed", "err", err)
	}
}

// goFont returns the Go font variant matching f's weight and style.
// b.mu must be held.
func (b *FontBook) goFont(f style.Font) (*text.FontSource, error) {
	italic := f.Style == "italic" || f.Style == "oblique"
	name, data := "regular", goregular.TTF
	switch {
	case f.Bold() && italic:
		name, data = "bolditalic", gobolditalic.TTF
	case f.Bold():
		name, data = "bold", gobold.TTF
	case italic:
		name, data = "italic", goitalic.TTF
	}
	if src, ok := b.fallback[name]; ok {
		return src, nil
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("host: load Go %s font: %w", name, err)
	}
	b.fallback[name] = src
	return src, nil
}

// Close releases every loaded font.
func (b *FontBook) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var errs []error
	for _, m := range []map[string]*text.FontSource{b.sources, b.fallback} {
		for k, src := range m {
			if err := src.Close(); err != nil {
				errs = append(errs, err)
			}
			delete(m, k)
		}
	}
	return errors.Join(errs...)
}

func familyKey(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}

// scanLogger routes fontscan diagnostics to the debug log.
type scanLogger struct{}

func (scanLogger) Printf(format string, args ...interface{}) {
	logging.Logger().Debug("host: fontscan: " + fmt.Sprintf(format, args...))
}
