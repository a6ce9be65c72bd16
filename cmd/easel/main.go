// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command easel renders a demo scene through an easel Surface and writes
// it as PNG.
//
// Usage:
//
//	easel render --style style.yaml --out scene.png --image photo.jpg
//	easel defaults > style.yaml
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gogpu/gg"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/host"
	"github.com/gogpu/easel/style"
)

type globals struct {
	Verbose bool `short:"v" help:"Log debug output to stderr."`
}

type renderCmd struct {
	Style   string        `short:"s" type:"existingfile" help:"YAML file with surface options."`
	Width   int           `short:"W" default:"640" help:"Canvas width in pixels."`
	Height  int           `short:"H" default:"480" help:"Canvas height in pixels."`
	Out     string        `short:"o" default:"easel.png" type:"path" help:"Output PNG file."`
	Images  []string      `name:"image" short:"i" help:"Image sources to place on the scene (path, file://, http(s):// or data: URI)."`
	Fonts   bool          `help:"Resolve font families against installed system fonts."`
	Timeout time.Duration `default:"30s" help:"Maximum time to wait for images."`
}

type defaultsCmd struct{}

var cli struct {
	globals

	Render   renderCmd   `cmd:"" default:"withargs" help:"Render the demo scene."`
	Defaults defaultsCmd `cmd:"" help:"Print the default options as YAML."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("easel"),
		kong.Description("Draw shapes, text and images on a canvas surface."),
		kong.UsageOnError(),
	)
	if cli.Verbose {
		easel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	ctx.FatalIfErrorf(ctx.Run(&cli.globals))
}

func (defaultsCmd) Run(*globals) error {
	return easel.WriteOptions(os.Stdout, easel.DefaultOptions())
}

func (r *renderCmd) Run(*globals) error {
	opts, err := r.loadStyle()
	if err != nil {
		return err
	}

	var docOpts []host.DocumentOption
	if r.Fonts {
		cache, err := os.UserCacheDir()
		if err != nil {
			cache = os.TempDir()
		}
		docOpts = append(docOpts, host.WithFonts(host.NewFontBook(host.WithSystemFonts(filepath.Join(cache, "easel")))))
	}
	doc := host.NewDocument(docOpts...)
	defer doc.Close()

	canvas, err := doc.CreateCanvas("scene", r.Width, r.Height)
	if err != nil {
		return err
	}

	var failed int
	s, err := easel.Open(doc, "scene", opts, easel.WithImageErrorHandler(func(src string, err error) {
		failed++
		fmt.Fprintf(os.Stderr, "easel: %s: %v\n", src, err)
	}))
	if err != nil {
		return err
	}

	s.LoadImages(r.Images...)
	if err := drawScene(s); err != nil {
		return err
	}

	wctx, cancel := context.WithTimeout(context.Background(), r.Timeout)
	defer cancel()
	// Failed loads are reported by the handler; only a timeout is fatal.
	if err := s.Wait(wctx); err != nil && wctx.Err() != nil {
		return err
	}
	drawThumbnails(s, r.Images)

	if err := canvas.SavePNG(r.Out); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d, %d images, %d failed)\n", r.Out, r.Width, r.Height, len(r.Images), failed)
	return nil
}

func (r *renderCmd) loadStyle() (easel.Options, error) {
	if r.Style == "" {
		return easel.Options{}, nil
	}
	f, err := os.Open(r.Style)
	if err != nil {
		return easel.Options{}, err
	}
	defer f.Close()
	opts, err := easel.LoadOptions(f)
	if err != nil {
		return easel.Options{}, fmt.Errorf("%s: %w", r.Style, err)
	}
	return opts, nil
}

// drawScene lays out a title and a row of shapes.
func drawScene(s *easel.Surface) error {
	dims := s.Dimensions().Current
	w, h := float64(dims.Width), float64(dims.Height)

	if err := s.TextCompressed("easel", w/2, h*0.1, w*0.8, easel.WithFont(style.Font{Size: h * 0.08, Weight: "bold", Families: []string{"Go"}})); err != nil {
		return err
	}

	row := h * 0.35
	cell := w / 6
	r := math.Min(cell, h) * 0.3
	steps := []func() error{
		func() error {
			return s.Circle(cell, row, r, easel.WithFill(gg.Hex("#e4572e")))
		},
		func() error {
			return s.Square(2*cell-r, row-r, 2*r, easel.WithFill(gg.Hex("#29335c")), easel.WithStroke(gg.Hex("#f3a712")), easel.WithStrokeWidth(3))
		},
		func() error {
			return s.Polygon([]gg.Point{
				gg.Pt(3*cell, row-r), gg.Pt(3*cell+r, row+r), gg.Pt(3*cell-r, row+r),
			}, easel.WithFill(gg.Hex("#669bbc")))
		},
		func() error {
			return s.QuadraticCurve(4*cell-r, row+r, 4*cell+r, row+r, 4*cell, row-2*r, easel.WithStrokeWidth(2))
		},
		func() error {
			pts := make([]gg.Point, 0, 9)
			for i := 0; i < 9; i++ {
				x := 5*cell - r + float64(i)*r/4
				pts = append(pts, gg.Pt(x, row+r*math.Sin(float64(i)*math.Pi/4)))
			}
			return s.PolyLine(pts, easel.WithStrokeWidth(2))
		},
		func() error {
			return s.Line(cell*0.5, row+1.5*r, w-cell*0.5, row+1.5*r, easel.WithStroke(gg.Hex("#888888")))
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// drawThumbnails scales every loaded image into a square slot along the
// bottom of the scene.
func drawThumbnails(s *easel.Surface, images []string) {
	if len(images) == 0 {
		return
	}
	dims := s.Dimensions().Current
	w, h := float64(dims.Width), float64(dims.Height)
	slot := w / float64(len(images))
	size := math.Min(slot*0.8, h*0.35)
	for i, src := range images {
		img, err := s.Loader().Image(src)
		if err != nil {
			// Failed, or still loading at the timeout.
			continue
		}
		x := slot*float64(i) + (slot-size)/2
		nw, nh := float64(img.Width), float64(img.Height)
		if err := s.ImageClipped(src, 0, 0, nw, nh, x, h*0.6, size, size); err != nil {
			fmt.Fprintf(os.Stderr, "easel: %s: %v\n", src, err)
		}
	}
}
