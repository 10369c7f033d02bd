// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/load.go
// Summary: Strict JSON decoding of theme documents.

package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/framegrace/texelview/core"
)

// ParseError reports why a theme document was rejected. File is empty
// when the document came from memory, Token when the failure is not
// tied to one token.
type ParseError struct {
	File   string
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	msg := "theme"
	if e.File != "" {
		msg += " " + e.File
	}
	if e.Token != "" {
		msg += fmt.Sprintf(": token %q", e.Token)
	}
	return msg + ": " + e.Reason
}

// Load reads and parses the theme document at path.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.File = path
		}
		return nil, err
	}
	return t, nil
}

// Parse decodes a theme document. The decode is strict: unknown fields
// at any level, trailing data, malformed colors, and unknown modifier
// names all reject the document as a whole.
func Parse(data []byte) (*Theme, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var file themeFile
	if err := dec.Decode(&file); err != nil {
		return nil, &ParseError{Reason: "invalid theme JSON: " + err.Error()}
	}
	if err := dec.Decode(new(json.RawMessage)); err != io.EOF {
		return nil, &ParseError{Reason: "trailing data after theme document"}
	}
	if file.Tokens == nil {
		return nil, &ParseError{Reason: "missing tokens table"}
	}

	names := make([]string, 0, len(file.Tokens))
	for name := range file.Tokens {
		names = append(names, name)
	}
	sort.Strings(names)

	tokens := make(map[string]core.Style, len(file.Tokens))
	for _, name := range names {
		st, err := file.Tokens[name].toStyle()
		if err != nil {
			return nil, &ParseError{Token: name, Reason: err.Error()}
		}
		tokens[name] = st
	}
	return &Theme{tokens: tokens}, nil
}

type themeFile struct {
	Tokens map[string]styleSpec `json:"tokens"`
}

type styleSpec struct {
	FG        *colorSpec `json:"fg"`
	BG        *colorSpec `json:"bg"`
	Modifiers []string   `json:"modifiers"`
}

func (s styleSpec) toStyle() (core.Style, error) {
	var st core.Style
	if s.FG != nil {
		c, err := s.FG.toColor()
		if err != nil {
			return core.Style{}, fmt.Errorf("fg: %s", err)
		}
		st.FG = c
	}
	if s.BG != nil {
		c, err := s.BG.toColor()
		if err != nil {
			return core.Style{}, fmt.Errorf("bg: %s", err)
		}
		st.BG = c
	}
	for _, name := range s.Modifiers {
		mod, ok := modifierNames[name]
		if !ok {
			return core.Style{}, fmt.Errorf("unknown modifier %q", name)
		}
		st.Mods |= mod
	}
	return st, nil
}

var modifierNames = map[string]core.Modifier{
	"bold":      core.ModBold,
	"dim":       core.ModDim,
	"italic":    core.ModItalic,
	"underline": core.ModUnderline,
	"reverse":   core.ModReverse,
}

// colorSpec accepts exactly one of the three document color shapes:
// {"default": true}, {"ansi": 0..255}, {"rgb": [r, g, b]}.
type colorSpec struct {
	Default *bool  `json:"default"`
	ANSI    *int   `json:"ansi"`
	RGB     *[]int `json:"rgb"`
}

func (c *colorSpec) toColor() (core.Color, error) {
	set := 0
	if c.Default != nil {
		set++
	}
	if c.ANSI != nil {
		set++
	}
	if c.RGB != nil {
		set++
	}
	if set != 1 {
		return core.Color{}, fmt.Errorf("color needs exactly one of default, ansi, rgb")
	}
	switch {
	case c.Default != nil:
		if !*c.Default {
			return core.Color{}, fmt.Errorf("default color must be true")
		}
		return core.Color{}, nil
	case c.ANSI != nil:
		n := *c.ANSI
		if n < 0 || n > 255 {
			return core.Color{}, fmt.Errorf("ansi color %d out of range", n)
		}
		return core.ANSI(uint8(n)), nil
	default:
		rgb := *c.RGB
		if len(rgb) != 3 {
			return core.Color{}, fmt.Errorf("rgb needs 3 components, got %d", len(rgb))
		}
		for _, v := range rgb {
			if v < 0 || v > 255 {
				return core.Color{}, fmt.Errorf("rgb component %d out of range", v)
			}
		}
		return core.RGB(uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2])), nil
	}
}
