// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageload

import (
	"fmt"
	"image"
	"io"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/gg"
)

// Image is a decoded image ready for drawing.
type Image struct {
	// Src is the source string the image was loaded from.
	Src string

	// Format is the registered format name ("png", "webp", ...).
	Format string

	// Buf holds the pixels in gg's image buffer format.
	Buf *gg.ImageBuf

	// Width and Height are the natural dimensions in pixels.
	Width, Height int
}

// Decode reads one image from r in any registered format.
func Decode(src string, r io.Reader) (*Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	b := img.Bounds()
	return &Image{
		Src:    src,
		Format: format,
		Buf:    gg.ImageBufFromImage(img),
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}
