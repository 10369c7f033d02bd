// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/frame.go
// Summary: Cell-grid frame buffer with a nested clip/origin scope for widgets.
// Usage: A fresh Frame is built each tick, drawn into by the app's view, then
// handed to a backend for diffing against the previously rendered frame.

package core

// Frame is a flat row-major grid of cells plus the transient coordinate
// state used while rendering: an origin offset applied to all drawing
// coordinates and a clip rect outside of which writes are dropped. Both
// default to the whole buffer and are only narrowed inside RenderIn.
type Frame struct {
	width  int
	height int
	cells  []Cell

	clip    Rect
	originX int
	originY int
}

// NewFrame returns a cleared frame of the given dimensions. Negative
// dimensions are treated as zero.
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f := &Frame{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	f.Clear()
	f.clip = f.Bounds()
	return f
}

// Width returns the buffer width in cells.
func (f *Frame) Width() int { return f.width }

// Height returns the buffer height in cells.
func (f *Frame) Height() int { return f.height }

// Bounds returns the full-buffer rectangle.
func (f *Frame) Bounds() Rect {
	return Rect{Width: f.width, Height: f.height}
}

// Cells exposes the backing cell slice in row-major order. Callers must
// treat it as read-only; it is shared with the frame.
func (f *Frame) Cells() []Cell { return f.cells }

// Clear resets every cell to a blank with the default style. The clip and
// origin are left untouched; they are scoped by RenderIn, not by Clear.
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = BlankCell
	}
}

// Print writes text at (x, y) in the current coordinate space using the
// default style.
func (f *Frame) Print(x, y int, text string) {
	f.PrintStyled(x, y, text, Style{})
}

// PrintStyled writes one line of text starting at (x, y) in the current
// coordinate space. The global position is origin plus (x, y). Nothing is
// written when the row falls outside the buffer or the clip rect. Within
// the row, writing stops at the buffer's right edge (no wrap-around), while
// individual columns outside the clip rect are skipped without stopping the
// rest of the call.
func (f *Frame) PrintStyled(x, y int, text string, style Style) {
	gy := f.originY + y
	if gy < f.clip.Y || gy >= f.clip.Bottom() || gy >= f.height {
		return
	}
	px := f.originX + x
	for _, r := range text {
		if px >= f.width {
			break
		}
		if px < f.clip.X || px >= f.clip.Right() {
			px++
			continue
		}
		f.cells[gy*f.width+px] = Cell{Rune: r, Style: style}
		px++
	}
}

// Fill covers every cell of area (in the current coordinate space) with the
// given rune and style, honoring clip and origin like PrintStyled.
func (f *Frame) Fill(area Rect, r rune, style Style) {
	if area.IsEmpty() {
		return
	}
	line := make([]rune, area.Width)
	for i := range line {
		line[i] = r
	}
	text := string(line)
	for y := area.Y; y < area.Bottom(); y++ {
		f.PrintStyled(area.X, y, text, style)
	}
}

// RenderIn narrows the coordinate space to area and invokes fn with the
// same frame. The area is translated by the current origin, then
// intersected with both the current clip rect and the buffer bounds, so
// nested calls compose and a nested widget can never draw outside any
// ancestor's region. The previous origin and clip are restored when fn
// returns, normally or not.
func (f *Frame) RenderIn(area Rect, fn func(*Frame)) {
	local := Rect{
		X:      f.originX + area.X,
		Y:      f.originY + area.Y,
		Width:  area.Width,
		Height: area.Height,
	}
	nextClip := f.clip.Intersect(local).Intersect(f.Bounds())

	savedClip := f.clip
	savedOX, savedOY := f.originX, f.originY
	defer func() {
		f.clip = savedClip
		f.originX, f.originY = savedOX, savedOY
	}()

	f.clip = nextClip
	f.originX, f.originY = local.X, local.Y
	fn(f)
}

// CharAt returns the rune stored at global buffer coordinates, ignoring
// clip and origin. The bool is false outside the buffer.
func (f *Frame) CharAt(x, y int) (rune, bool) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0, false
	}
	return f.cells[y*f.width+x].Rune, true
}

// StyleAt returns the style stored at global buffer coordinates. The bool
// is false outside the buffer.
func (f *Frame) StyleAt(x, y int) (Style, bool) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return Style{}, false
	}
	return f.cells[y*f.width+x].Style, true
}

// CellAt returns the cell at global buffer coordinates. The bool is false
// outside the buffer.
func (f *Frame) CellAt(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return Cell{}, false
	}
	return f.cells[y*f.width+x], true
}

// CopyFrom replaces this frame's dimensions and cell contents with those of
// other and resets clip and origin to cover the whole buffer. Backends use
// it to retain the last rendered frame.
func (f *Frame) CopyFrom(other *Frame) {
	f.width = other.width
	f.height = other.height
	if len(f.cells) != len(other.cells) {
		f.cells = make([]Cell, len(other.cells))
	}
	copy(f.cells, other.cells)
	f.clip = f.Bounds()
	f.originX, f.originY = 0, 0
}
