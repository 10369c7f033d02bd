// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/geometry.go
// Summary: Rectangle and padding value types with saturating arithmetic.
// Usage: Shared by the layout resolver, the frame buffer, and every widget.

package core

// Rect is a rectangular region in cell coordinates. Fields are never
// negative; derived rects clamp at zero instead of going negative.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect builds a Rect, clamping negative inputs to zero.
func NewRect(x, y, width, height int) Rect {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// IsEmpty reports whether the rectangle covers no cells.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the cell at (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of two rectangles. When they do not
// overlap the result is a zero-size rect anchored at the clamped corner.
func (r Rect) Intersect(o Rect) Rect {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	return Rect{X: x, Y: y, Width: max(0, right-x), Height: max(0, bottom-y)}
}

// Padding is a set of non-negative insets applied to a Rect.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformPadding returns a Padding with the same inset on every side.
func UniformPadding(n int) Padding {
	return Padding{Top: n, Right: n, Bottom: n, Left: n}
}

// Apply shrinks area by the padding. Each inset is clamped to the space
// still available, so oversized padding yields a zero-size rect anchored
// at the clamped corner rather than an inverted one.
func (p Padding) Apply(area Rect) Rect {
	left := min(max(0, p.Left), area.Width)
	right := min(max(0, p.Right), area.Width-left)
	top := min(max(0, p.Top), area.Height)
	bottom := min(max(0, p.Bottom), area.Height-top)
	return Rect{
		X:      area.X + left,
		Y:      area.Y + top,
		Width:  area.Width - left - right,
		Height: area.Height - top - bottom,
	}
}
