// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/table.go
// Summary: Column-aligned table with a header row, separator rule, and
// a scrolling, selectable body. Column widths come from the same
// constraint resolution that drives split layouts.

package widgets

import (
	"strings"

	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

// TableColumn describes one column: header title, the constraint that
// divides the table width, and the cell alignment.
type TableColumn struct {
	title string
	width core.Constraint
	align Alignment
}

func NewTableColumn(title string, width core.Constraint) TableColumn {
	return TableColumn{title: title, width: width}
}

func (c TableColumn) Align(a Alignment) TableColumn {
	c.align = a
	return c
}

// TableStyle groups the styles of a table.
type TableStyle struct {
	Base     core.Style
	Header   core.Style
	Row      core.Style
	Selected core.Style
	Border   core.Style
}

// TableStyleFromTheme resolves the table.* tokens.
func TableStyleFromTheme(th *theme.Theme) TableStyle {
	return TableStyle{
		Base:     th.StyleOr("table.base", core.Style{FG: core.ANSI(252)}),
		Header:   th.StyleOr("table.header", core.Style{FG: core.ANSI(230), BG: core.RGB(26, 34, 58)}),
		Row:      th.StyleOr("table.row", core.Style{FG: core.ANSI(252)}),
		Selected: th.StyleOr("table.selected", core.Style{FG: core.ANSI(16), BG: core.ANSI(39)}),
		Border:   th.StyleOr("table.border", core.Style{FG: core.ANSI(39)}),
	}
}

// Table lays rows 0 and 1 out as header and separator; body rows start
// at row 2. Rows scroll to keep the selected row visible unless an
// explicit Scroll position pins the window.
type Table struct {
	columns       []TableColumn
	rows          [][]string
	selected      int
	scroll        int
	style         core.Style
	headerStyle   *core.Style
	rowStyle      *core.Style
	selectedStyle *core.Style
	borderStyle   *core.Style
	padding       core.Padding
	margin        core.Padding
}

func NewTable(columns []TableColumn, rows [][]string) Table {
	return Table{columns: columns, rows: rows, scroll: -1}
}

func (t Table) Selected(selected int) Table {
	t.selected = selected
	return t
}

// Scroll pins the first visible body row instead of following the
// selection.
func (t Table) Scroll(scroll int) Table {
	t.scroll = max(scroll, 0)
	return t
}

func (t Table) Style(s core.Style) Table {
	t.style = s
	return t
}

func (t Table) HeaderStyle(s core.Style) Table {
	t.headerStyle = &s
	return t
}

func (t Table) RowStyle(s core.Style) Table {
	t.rowStyle = &s
	return t
}

func (t Table) SelectedStyle(s core.Style) Table {
	t.selectedStyle = &s
	return t
}

func (t Table) BorderStyle(s core.Style) Table {
	t.borderStyle = &s
	return t
}

func (t Table) Padding(p core.Padding) Table {
	t.padding = p
	return t
}

func (t Table) Margin(m core.Padding) Table {
	t.margin = m
	return t
}

func (t Table) Render(f *core.Frame, area core.Rect) {
	area = t.padding.Apply(t.margin.Apply(area))
	if area.IsEmpty() || len(t.columns) == 0 {
		return
	}

	base := t.style
	headerStyle := orStyle(t.headerStyle, base)
	rowStyle := orStyle(t.rowStyle, base)
	selectedStyle := orStyle(t.selectedStyle, rowStyle)
	borderStyle := orStyle(t.borderStyle, headerStyle)

	constraints := make([]core.Constraint, len(t.columns))
	for i, col := range t.columns {
		constraints[i] = col.width
	}
	widths := core.SplitSizes(area.Width, constraints)

	f.RenderIn(area, func(f *core.Frame) {
		f.PrintStyled(0, 0, strings.Repeat(" ", area.Width), headerStyle)
		x := 0
		for idx, col := range t.columns {
			if widths[idx] == 0 {
				continue
			}
			header := alignText(truncateToWidth(col.title, widths[idx]), widths[idx], col.align)
			f.PrintStyled(x, 0, header, headerStyle)
			x += widths[idx]
		}

		if area.Height > 1 {
			f.PrintStyled(0, 1, strings.Repeat("─", area.Width), borderStyle)
		}

		bodyHeight := area.Height - 2
		if bodyHeight <= 0 || len(t.rows) == 0 {
			return
		}

		selected := clampIndex(t.selected, len(t.rows))
		start := t.scroll
		if start < 0 {
			start = scrollStart(selected, bodyHeight, len(t.rows))
		}
		end := min(start+bodyHeight, len(t.rows))

		for rowY, rowIdx := 0, start; rowIdx < end; rowY, rowIdx = rowY+1, rowIdx+1 {
			y := rowY + 2
			style := rowStyle
			if rowIdx == selected {
				style = selectedStyle
			}
			f.PrintStyled(0, y, strings.Repeat(" ", area.Width), style)

			x := 0
			for colIdx, col := range t.columns {
				if widths[colIdx] == 0 {
					continue
				}
				cell := ""
				if colIdx < len(t.rows[rowIdx]) {
					cell = t.rows[rowIdx][colIdx]
				}
				aligned := alignText(truncateToWidth(cell, widths[colIdx]), widths[colIdx], col.align)
				f.PrintStyled(x, y, aligned, style)
				x += widths[colIdx]
			}
		}
	})
}
