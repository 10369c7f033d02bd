// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: backend/terminal.go
// Summary: Diffing renderer: two frames in, minimal terminal writes out.
// Usage: Owned by a driver; Render is called once per redraw with the
// frame the app just drew.

package backend

import (
	"bufio"
	"io"

	"github.com/framegrace/texelview/core"
)

// Terminal converts the difference between the previously rendered frame
// and the current one into the fewest terminal writes that make the
// screen match. It keeps exactly two pieces of state across calls: the
// previous frame and the style most recently written to the terminal.
type Terminal struct {
	w        *bufio.Writer
	previous *core.Frame
	active   core.Style
}

// NewTerminal creates a renderer writing to w, assuming the terminal
// currently shows a blank width-by-height screen.
func NewTerminal(w io.Writer, width, height int) *Terminal {
	return &Terminal{
		w:        bufio.NewWriter(w),
		previous: core.NewFrame(width, height),
	}
}

// Render writes the changes between the stored previous frame and f.
//
// A dimension change invalidates everything: the screen is cleared, the
// previous frame is replaced by a blank one of the new size, and the
// tracked style resets, so every non-blank cell is re-emitted. Otherwise
// cells equal in rune and style are skipped; for each changed cell a
// style sequence is written only when the cell's style differs from the
// active one, and a cursor move only when the cell does not directly
// follow the previous write. The pass ends with a style reset and a
// flush, and f becomes the new previous frame.
func (t *Terminal) Render(f *core.Frame) error {
	width, height := f.Width(), f.Height()
	if width != t.previous.Width() || height != t.previous.Height() {
		t.w.WriteString(clearScreen)
		t.previous = core.NewFrame(width, height)
		t.active = core.Style{}
	}

	cells := f.Cells()
	prev := t.previous.Cells()
	lastX, lastY := -2, -2
	for idx, cell := range cells {
		if cell == prev[idx] {
			continue
		}
		x, y := idx%width, idx/width
		if cell.Style != t.active {
			t.w.WriteString(styleSGR(cell.Style))
			t.active = cell.Style
		}
		if y != lastY || x != lastX+1 {
			t.w.WriteString(cursorTo(x, y))
		}
		t.w.WriteRune(cell.Rune)
		lastX, lastY = x, y
	}

	t.w.WriteString(sgrReset)
	t.active = core.Style{}
	if err := t.w.Flush(); err != nil {
		return err
	}
	t.previous.CopyFrom(f)
	return nil
}
