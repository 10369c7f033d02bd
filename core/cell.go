// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/cell.go
// Summary: The single character-and-style unit stored in a frame buffer.

package core

// Cell is one character cell. Equality covers both the rune and the style,
// which is exactly the granularity the diffing backend works at.
type Cell struct {
	Rune  rune
	Style Style
}

// BlankCell is the cleared state of a cell: a space in the default style.
var BlankCell = Cell{Rune: ' '}
