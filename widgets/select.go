// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/select.go
// Summary: Collapsible dropdown. Row 0 shows the committed value and a
// state arrow; when expanded, the option list scrolls beneath it with
// an uncommitted highlight cursor.

package widgets

import (
	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

// SelectStyle groups the styles of a dropdown.
type SelectStyle struct {
	Base      core.Style
	Selected  core.Style
	Dropdown  core.Style
	Highlight core.Style
}

// SelectStyleFromTheme resolves the select.* tokens.
func SelectStyleFromTheme(th *theme.Theme) SelectStyle {
	return SelectStyle{
		Base:      th.StyleOr("select.base", core.Style{FG: core.ANSI(252), BG: core.RGB(18, 26, 48)}),
		Selected:  th.StyleOr("select.selected", core.Style{FG: core.ANSI(16), BG: core.ANSI(39)}),
		Dropdown:  th.StyleOr("select.dropdown", core.Style{FG: core.ANSI(252), BG: core.RGB(22, 32, 56)}),
		Highlight: th.StyleOr("select.highlight", core.Style{FG: core.ANSI(16), BG: core.ANSI(39)}),
	}
}

// Select distinguishes the committed selection from the highlight the
// user is moving through the expanded list. Selected stays -1 until a
// choice is committed, which keeps the placeholder on the closed row.
type Select struct {
	options        []string
	selected       int
	highlighted    int
	expanded       bool
	placeholder    string
	maxVisible     int
	style          core.Style
	selectedStyle  *core.Style
	dropdownStyle  *core.Style
	highlightStyle *core.Style
	padding        core.Padding
	margin         core.Padding
}

func NewSelect(options ...string) Select {
	return Select{options: options, selected: -1}
}

func (s Select) Selected(selected int) Select {
	s.selected = selected
	return s
}

func (s Select) Highlighted(highlighted int) Select {
	s.highlighted = highlighted
	return s
}

func (s Select) Expanded(expanded bool) Select {
	s.expanded = expanded
	return s
}

func (s Select) Placeholder(placeholder string) Select {
	s.placeholder = placeholder
	return s
}

// MaxVisible caps how many dropdown rows render below the value row.
func (s Select) MaxVisible(n int) Select {
	s.maxVisible = max(n, 1)
	return s
}

func (s Select) Style(st core.Style) Select {
	s.style = st
	return s
}

func (s Select) SelectedStyle(st core.Style) Select {
	s.selectedStyle = &st
	return s
}

func (s Select) DropdownStyle(st core.Style) Select {
	s.dropdownStyle = &st
	return s
}

func (s Select) HighlightStyle(st core.Style) Select {
	s.highlightStyle = &st
	return s
}

func (s Select) Padding(p core.Padding) Select {
	s.padding = p
	return s
}

func (s Select) Margin(m core.Padding) Select {
	s.margin = m
	return s
}

func (s Select) Render(f *core.Frame, area core.Rect) {
	area = s.padding.Apply(s.margin.Apply(area))
	if area.IsEmpty() {
		return
	}

	width := area.Width
	base := s.style
	selectedStyle := orStyle(s.selectedStyle, base)
	dropdownStyle := orStyle(s.dropdownStyle, base)
	highlightStyle := orStyle(s.highlightStyle, selectedStyle)

	if len(s.options) == 0 {
		f.RenderIn(area, func(f *core.Frame) {
			value := truncateToWidth(s.placeholder, width-2)
			f.PrintStyled(0, 0, padLine(value, width), base)
			f.PrintStyled(width-1, 0, "▾", base)
		})
		return
	}

	hasSelection := s.selected >= 0
	selected := clampIndex(s.selected, len(s.options))
	highlighted := clampIndex(s.highlighted, len(s.options))

	f.RenderIn(area, func(f *core.Frame) {
		value := s.placeholder
		if hasSelection && s.options[selected] != "" {
			value = s.options[selected]
		}
		value = truncateToWidth(value, width-2)
		valueStyle := base
		if hasSelection {
			valueStyle = selectedStyle
		}

		f.PrintStyled(0, 0, padLine(value, width), base)
		if value != "" {
			f.PrintStyled(0, 0, value, valueStyle)
		}
		arrow := "▾"
		if s.expanded {
			arrow = "▴"
		}
		f.PrintStyled(width-1, 0, arrow, base)

		if !s.expanded || area.Height <= 1 {
			return
		}

		viewport := area.Height - 1
		maxVisible := s.maxVisible
		if maxVisible <= 0 {
			maxVisible = len(s.options)
		}
		rows := min(viewport, max(maxVisible, 1))
		start := scrollStart(highlighted, rows, len(s.options))
		end := min(start+rows, len(s.options))

		for rowIdx, optionIdx := 0, start; optionIdx < end; rowIdx, optionIdx = rowIdx+1, optionIdx+1 {
			y := rowIdx + 1
			pointer, marker := " ", " "
			if optionIdx == highlighted {
				pointer = "›"
			}
			if hasSelection && optionIdx == selected {
				marker = "●"
			}
			label := truncateToWidth(s.options[optionIdx], width-3)

			style := dropdownStyle
			switch {
			case optionIdx == highlighted:
				style = highlightStyle
			case hasSelection && optionIdx == selected:
				style = selectedStyle
			}

			f.PrintStyled(0, y, padLine(pointer+marker+" "+label, width), style)
		}
	})
}
