// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: backend/sgr.go
// Summary: Escape-sequence builders for cursor movement and SGR styling.

package backend

import (
	"strconv"
	"strings"

	"github.com/framegrace/texelview/core"
)

const (
	sgrReset       = "\x1b[0m"
	clearScreen    = "\x1b[2J"
	cursorHide     = "\x1b[?25l"
	cursorShow     = "\x1b[?25h"
	altScreenEnter = "\x1b[?1049h"
	altScreenLeave = "\x1b[?1049l"
)

// cursorTo returns the escape that moves the cursor to the zero-based
// cell (x, y). The wire format is one-based row;column.
func cursorTo(x, y int) string {
	var b strings.Builder
	b.WriteString("\x1b[")
	b.WriteString(strconv.Itoa(y + 1))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(x + 1))
	b.WriteByte('H')
	return b.String()
}

// styleSGR renders one complete SGR sequence for style: a reset parameter
// followed by modifier, foreground, and background parameters. Emitting
// the reset first means the sequence is self-contained and the previous
// active style never bleeds through.
func styleSGR(style core.Style) string {
	var b strings.Builder
	b.WriteString("\x1b[0")
	if style.Mods.Has(core.ModBold) {
		b.WriteString(";1")
	}
	if style.Mods.Has(core.ModDim) {
		b.WriteString(";2")
	}
	if style.Mods.Has(core.ModItalic) {
		b.WriteString(";3")
	}
	if style.Mods.Has(core.ModUnderline) {
		b.WriteString(";4")
	}
	if style.Mods.Has(core.ModReverse) {
		b.WriteString(";7")
	}
	writeColor(&b, style.FG, 38, 39)
	writeColor(&b, style.BG, 48, 49)
	b.WriteByte('m')
	return b.String()
}

func writeColor(b *strings.Builder, c core.Color, set, clear int) {
	switch c.Mode {
	case core.ColorModeANSI:
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(set))
		b.WriteString(";5;")
		b.WriteString(strconv.Itoa(int(c.Value)))
	case core.ColorModeRGB:
		r, g, bl := c.RGBParts()
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(set))
		b.WriteString(";2;")
		b.WriteString(strconv.Itoa(int(r)))
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(int(g)))
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(int(bl)))
	default:
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(clear))
	}
}
