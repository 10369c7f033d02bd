// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/block.go
// Summary: Bordered box chrome: per-edge borders, filled body, and a
// title riding the top edge. InnerArea reports where content belongs.

package widgets

import (
	"strings"

	"github.com/framegrace/texelview/core"
)

// BorderType selects the glyph set for a Block's border.
type BorderType uint8

const (
	BorderUnicode BorderType = iota
	BorderAscii
)

// Borders selects which edges a Block draws.
type Borders struct {
	Top    bool
	Right  bool
	Bottom bool
	Left   bool
}

func AllBorders() Borders {
	return Borders{Top: true, Right: true, Bottom: true, Left: true}
}

func NoBorders() Borders {
	return Borders{}
}

type borderGlyphSet struct {
	horizontal  string
	vertical    string
	topLeft     string
	topRight    string
	bottomLeft  string
	bottomRight string
}

func borderGlyphs(t BorderType) borderGlyphSet {
	if t == BorderAscii {
		return borderGlyphSet{
			horizontal:  "-",
			vertical:    "|",
			topLeft:     "+",
			topRight:    "+",
			bottomLeft:  "+",
			bottomRight: "+",
		}
	}
	return borderGlyphSet{
		horizontal:  "─",
		vertical:    "│",
		topLeft:     "┌",
		topRight:    "┐",
		bottomLeft:  "└",
		bottomRight: "┘",
	}
}

// Block draws box chrome around a region. The title renders even when
// borders are off; it sits inside whatever edges remain.
type Block struct {
	title       string
	hasTitle    bool
	style       core.Style
	borderStyle *core.Style
	titleStyle  *core.Style
	bodyStyle   *core.Style
	padding     core.Padding
	margin      core.Padding
	borderType  BorderType
	borders     Borders
}

func NewBlock() Block {
	return Block{borders: AllBorders()}
}

func (b Block) Title(title string) Block {
	b.title = title
	b.hasTitle = true
	return b
}

func (b Block) Style(s core.Style) Block {
	b.style = s
	return b
}

func (b Block) BorderStyle(s core.Style) Block {
	b.borderStyle = &s
	return b
}

func (b Block) TitleStyle(s core.Style) Block {
	b.titleStyle = &s
	return b
}

func (b Block) BodyStyle(s core.Style) Block {
	b.bodyStyle = &s
	return b
}

func (b Block) Padding(p core.Padding) Block {
	b.padding = p
	return b
}

func (b Block) Margin(m core.Padding) Block {
	b.margin = m
	return b
}

func (b Block) BorderType(t BorderType) Block {
	b.borderType = t
	return b
}

func (b Block) Borders(edges Borders) Block {
	b.borders = edges
	return b
}

// InnerArea is the content region left after margin, the active border
// edges, and padding are taken out of area.
func (b Block) InnerArea(area core.Rect) core.Rect {
	area = b.margin.Apply(area)

	left := btoi(b.borders.Left)
	right := btoi(b.borders.Right)
	top := btoi(b.borders.Top)
	bottom := btoi(b.borders.Bottom)

	area = core.NewRect(
		area.X+left,
		area.Y+top,
		area.Width-left-right,
		area.Height-top-bottom,
	)
	return b.padding.Apply(area)
}

func (b Block) Render(f *core.Frame, area core.Rect) {
	area = b.margin.Apply(area)
	if area.IsEmpty() {
		return
	}

	bodyStyle := orStyle(b.bodyStyle, b.style)
	f.Fill(area, ' ', bodyStyle)

	borderStyle := orStyle(b.borderStyle, b.style)
	titleStyle := orStyle(b.titleStyle, borderStyle)
	g := borderGlyphs(b.borderType)

	f.RenderIn(area, func(f *core.Frame) {
		rightX := area.Width - 1
		bottomY := area.Height - 1

		if b.borders.Top {
			f.PrintStyled(0, 0, g.topLeft, borderStyle)
			if area.Width > 2 {
				f.PrintStyled(1, 0, strings.Repeat(g.horizontal, area.Width-2), borderStyle)
			}
			f.PrintStyled(rightX, 0, g.topRight, borderStyle)
		}

		if b.borders.Bottom {
			f.PrintStyled(0, bottomY, g.bottomLeft, borderStyle)
			if area.Width > 2 {
				f.PrintStyled(1, bottomY, strings.Repeat(g.horizontal, area.Width-2), borderStyle)
			}
			f.PrintStyled(rightX, bottomY, g.bottomRight, borderStyle)
		}

		if b.borders.Left {
			for y := 1; y < area.Height-1; y++ {
				f.PrintStyled(0, y, g.vertical, borderStyle)
			}
		}

		if b.borders.Right {
			for y := 1; y < area.Height-1; y++ {
				f.PrintStyled(rightX, y, g.vertical, borderStyle)
			}
		}

		if b.hasTitle {
			available := area.Width - btoi(b.borders.Left) - btoi(b.borders.Right)
			if available > 0 {
				decorated := " " + b.title + " "
				f.PrintStyled(btoi(b.borders.Left), 0, truncateToWidth(decorated, available), titleStyle)
			}
		}
	})
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
