// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/style.go
// Summary: Color, modifier, and style value types shared by frame and backend.

package core

// ColorMode selects how a Color's Value field is interpreted.
type ColorMode uint8

const (
	// ColorModeDefault means "use the terminal's default color"; Value is unused.
	ColorModeDefault ColorMode = iota
	// ColorModeANSI is a palette index 0-255 stored in Value.
	ColorModeANSI
	// ColorModeRGB is a 24-bit color packed as r<<16 | g<<8 | b in Value.
	ColorModeRGB
)

// Color is a terminal color. The zero value is the terminal default.
type Color struct {
	Mode  ColorMode
	Value uint32
}

// ANSI returns a 256-palette color.
func ANSI(n uint8) Color {
	return Color{Mode: ColorModeANSI, Value: uint32(n)}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorModeRGB, Value: uint32(r)<<16 | uint32(g)<<8 | uint32(b)}
}

// RGBParts unpacks an RGB color. Only meaningful when Mode is ColorModeRGB.
func (c Color) RGBParts() (r, g, b uint8) {
	return uint8(c.Value >> 16), uint8(c.Value >> 8), uint8(c.Value)
}

// Modifier is a bitset of text attributes.
type Modifier uint16

const (
	ModBold Modifier = 1 << iota
	ModDim
	ModItalic
	ModUnderline
	ModReverse
)

// Has reports whether every bit of flag is set.
func (m Modifier) Has(flag Modifier) bool { return m&flag == flag }

// Style pairs foreground and background colors with a modifier set.
// Styles compare with ==; the backend relies on that to decide whether a
// style change needs to be written to the terminal.
type Style struct {
	FG   Color
	BG   Color
	Mods Modifier
}

// WithFG returns a copy of the style with the foreground replaced.
func (s Style) WithFG(c Color) Style {
	s.FG = c
	return s
}

// WithBG returns a copy of the style with the background replaced.
func (s Style) WithBG(c Color) Style {
	s.BG = c
	return s
}

// With returns a copy of the style with the given modifier bits added.
func (s Style) With(mods Modifier) Style {
	s.Mods |= mods
	return s
}
