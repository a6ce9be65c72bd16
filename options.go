// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package easel

import (
	"errors"
	"fmt"
	"io"
	"maps"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Option keys as they appear in style files and maps.
const (
	KeyCompositeOperation = "compositeOperation"
	KeyBackgroundColor    = "backgroundColor"
	KeyBackgroundImage    = "backgroundImage"
	KeyColor              = "color"
	KeyBorder             = "border"
	KeyFont               = "font"
	KeyTextAlign          = "textAlign"
	KeyTextBaseline       = "textBaseline"
	KeyCursor             = "cursor"
)

// Options is the set of configurable style options of a Surface.
// Empty fields are unset and take their value from a lower layer when
// merged.
type Options struct {
	CompositeOperation string `yaml:"compositeOperation,omitempty" json:"compositeOperation,omitempty"`
	BackgroundColor    string `yaml:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	BackgroundImage    string `yaml:"backgroundImage,omitempty" json:"backgroundImage,omitempty"`
	Color              string `yaml:"color,omitempty" json:"color,omitempty"`
	Border             string `yaml:"border,omitempty" json:"border,omitempty"`
	Font               string `yaml:"font,omitempty" json:"font,omitempty"`
	TextAlign          string `yaml:"textAlign,omitempty" json:"textAlign,omitempty"`
	TextBaseline       string `yaml:"textBaseline,omitempty" json:"textBaseline,omitempty"`
	Cursor             string `yaml:"cursor,omitempty" json:"cursor,omitempty"`

	// Extra holds keys easel does not recognize. They are merged and kept
	// but have no effect.
	Extra map[string]string `yaml:",inline" json:"-"`
}

// DefaultOptions returns the default option table.
func DefaultOptions() Options {
	return Options{
		CompositeOperation: "source-over",
		BackgroundColor:    "none",
		BackgroundImage:    "none",
		Color:              "#000000",
		Border:             "none",
		Font:               "16px Arial",
		TextAlign:          "center",
		TextBaseline:       "middle",
		Cursor:             "default",
	}
}

// MergeOptions merges layers from left to right. A non-empty field of a
// later layer overrides the same field of earlier layers. The inputs are
// not modified.
func MergeOptions(layers ...Options) Options {
	var out Options
	for _, layer := range layers {
		layer.Extra = maps.Clone(layer.Extra)
		if err := mergo.Merge(&out, layer, mergo.WithOverride); err != nil {
			// Both sides are the same struct type, which mergo always accepts.
			panic(fmt.Sprintf("easel: merge options: %v", err))
		}
	}
	return out
}

// OptionsFromMap builds Options from key/value pairs. Unknown keys are kept
// in Extra.
func OptionsFromMap(m map[string]string) Options {
	var o Options
	for k, v := range m {
		if p := o.field(k); p != nil {
			*p = v
			continue
		}
		if o.Extra == nil {
			o.Extra = make(map[string]string)
		}
		o.Extra[k] = v
	}
	return o
}

// Map returns the set options as key/value pairs, Extra included.
func (o Options) Map() map[string]string {
	m := maps.Clone(o.Extra)
	if m == nil {
		m = make(map[string]string)
	}
	for _, k := range optionKeys {
		if v := *o.field(k); v != "" {
			m[k] = v
		}
	}
	return m
}

// Get returns the value of key and whether it is set.
func (o Options) Get(key string) (string, bool) {
	if p := o.field(key); p != nil {
		return *p, *p != ""
	}
	v, ok := o.Extra[key]
	return v, ok
}

var optionKeys = []string{
	KeyCompositeOperation, KeyBackgroundColor, KeyBackgroundImage, KeyColor,
	KeyBorder, KeyFont, KeyTextAlign, KeyTextBaseline, KeyCursor,
}

func (o *Options) field(key string) *string {
	switch key {
	case KeyCompositeOperation:
		return &o.CompositeOperation
	case KeyBackgroundColor:
		return &o.BackgroundColor
	case KeyBackgroundImage:
		return &o.BackgroundImage
	case KeyColor:
		return &o.Color
	case KeyBorder:
		return &o.Border
	case KeyFont:
		return &o.Font
	case KeyTextAlign:
		return &o.TextAlign
	case KeyTextBaseline:
		return &o.TextBaseline
	case KeyCursor:
		return &o.Cursor
	}
	return nil
}

// LoadOptions reads Options from a YAML document. An empty document yields
// empty Options.
func LoadOptions(r io.Reader) (Options, error) {
	var o Options
	if err := yaml.NewDecoder(r).Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("easel: load options: %w", err)
	}
	return o, nil
}

// WriteOptions writes o to w as YAML.
func WriteOptions(w io.Writer, o Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(o); err != nil {
		return fmt.Errorf("easel: write options: %w", err)
	}
	return enc.Close()
}
