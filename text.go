// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package easel

// Text draws str anchored at (x, y) in the fill color, font, alignment and
// baseline from opts or the current options.
func (s *Surface) Text(str string, x, y float64, opts ...DrawOption) error {
	return s.TextCompressed(str, x, y, 0, opts...)
}

// TextCompressed is Text with a maximum width. A run wider than maxWidth
// is narrowed horizontally to fit. A maxWidth of zero or less means no
// limit.
func (s *Surface) TextCompressed(str string, x, y, maxWidth float64, opts ...DrawOption) error {
	p := s.resolveDraw(opts)
	if maxWidth < 0 {
		maxWidth = 0
	}
	return s.withComposite(p, func() error {
		return s.target.FillText(str, x, y, p.text(maxWidth))
	})
}
