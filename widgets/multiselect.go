package widgets

import (
	"slices"

	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

// MultiSelectStyle groups the styles of a multi-select list.
type MultiSelectStyle struct {
	Base      core.Style
	Selected  core.Style
	Highlight core.Style
	Marker    core.Style
}

// MultiSelectStyleFromTheme resolves the multiselect.* tokens.
func MultiSelectStyleFromTheme(th *theme.Theme) MultiSelectStyle {
	return MultiSelectStyle{
		Base:      th.StyleOr("multiselect.base", core.Style{FG: core.ANSI(252)}),
		Selected:  th.StyleOr("multiselect.selected", core.Style{FG: core.ANSI(16), BG: core.ANSI(39)}),
		Highlight: th.StyleOr("multiselect.highlight", core.Style{FG: core.ANSI(16), BG: core.ANSI(45)}),
		Marker:    th.StyleOr("multiselect.marker", core.Style{FG: core.ANSI(39)}),
	}
}

// MultiSelect renders "[x] label" rows where any number of options can
// be selected at once; the highlight cursor is independent of the
// selection set.
type MultiSelect struct {
	options        []string
	selected       []int
	highlighted    int
	focused        bool
	maxVisible     int
	style          core.Style
	selectedStyle  *core.Style
	highlightStyle *core.Style
	markerStyle    *core.Style
	padding        core.Padding
	margin         core.Padding
}

func NewMultiSelect(options ...string) MultiSelect {
	return MultiSelect{options: options}
}

// Selected replaces the set of selected option indices.
func (m MultiSelect) Selected(selected []int) MultiSelect {
	m.selected = selected
	return m
}

func (m MultiSelect) Highlighted(highlighted int) MultiSelect {
	m.highlighted = highlighted
	return m
}

func (m MultiSelect) Focused(focused bool) MultiSelect {
	m.focused = focused
	return m
}

func (m MultiSelect) MaxVisible(n int) MultiSelect {
	m.maxVisible = max(n, 1)
	return m
}

func (m MultiSelect) Style(s core.Style) MultiSelect {
	m.style = s
	return m
}

func (m MultiSelect) SelectedStyle(s core.Style) MultiSelect {
	m.selectedStyle = &s
	return m
}

func (m MultiSelect) HighlightStyle(s core.Style) MultiSelect {
	m.highlightStyle = &s
	return m
}

func (m MultiSelect) MarkerStyle(s core.Style) MultiSelect {
	m.markerStyle = &s
	return m
}

func (m MultiSelect) Padding(p core.Padding) MultiSelect {
	m.padding = p
	return m
}

func (m MultiSelect) Margin(pad core.Padding) MultiSelect {
	m.margin = pad
	return m
}

func (m MultiSelect) Render(f *core.Frame, area core.Rect) {
	area = m.padding.Apply(m.margin.Apply(area))
	if area.IsEmpty() || len(m.options) == 0 {
		return
	}

	width := area.Width
	base := m.style
	selectedStyle := orStyle(m.selectedStyle, base)
	highlightStyle := orStyle(m.highlightStyle, selectedStyle)
	markerStyle := orStyle(m.markerStyle, base)
	highlighted := clampIndex(m.highlighted, len(m.options))

	viewport := area.Height
	maxVisible := m.maxVisible
	if maxVisible <= 0 {
		maxVisible = len(m.options)
	}
	rows := min(viewport, max(maxVisible, 1))
	start := scrollStart(highlighted, rows, len(m.options))
	end := min(start+rows, len(m.options))

	f.RenderIn(area, func(f *core.Frame) {
		for rowIdx, optionIdx := 0, start; optionIdx < end; rowIdx, optionIdx = rowIdx+1, optionIdx+1 {
			isSelected := slices.Contains(m.selected, optionIdx)
			isHighlight := m.focused && optionIdx == highlighted

			pointer, marker := " ", " "
			if isHighlight {
				pointer = "›"
			}
			if isSelected {
				marker = "x"
			}
			label := truncateToWidth(m.options[optionIdx], width-5)

			style := base
			switch {
			case isHighlight:
				style = highlightStyle
			case isSelected:
				style = selectedStyle
			}

			f.PrintStyled(0, rowIdx, padLine(pointer+"["+marker+"] "+label, width), style)
			if width > 2 {
				f.PrintStyled(1, rowIdx, "[", markerStyle)
				f.PrintStyled(2, rowIdx, marker, markerStyle)
				f.PrintStyled(3, rowIdx, "]", markerStyle)
			}
		}
	})
}
