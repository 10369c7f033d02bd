package widgets

import (
	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

// RadioGroupStyle groups the styles of a radio group.
type RadioGroupStyle struct {
	Base      core.Style
	Selected  core.Style
	Highlight core.Style
	Marker    core.Style
}

// RadioGroupStyleFromTheme resolves the radio.* tokens.
func RadioGroupStyleFromTheme(th *theme.Theme) RadioGroupStyle {
	return RadioGroupStyle{
		Base:      th.StyleOr("radio.base", core.Style{FG: core.ANSI(252)}),
		Selected:  th.StyleOr("radio.selected", core.Style{FG: core.ANSI(16), BG: core.ANSI(39)}),
		Highlight: th.StyleOr("radio.highlight", core.Style{FG: core.ANSI(16), BG: core.ANSI(45)}),
		Marker:    th.StyleOr("radio.marker", core.Style{FG: core.ANSI(39)}),
	}
}

// RadioGroup renders one option per row with a filled or hollow marker.
// The pointer column only shows while the group has focus; Selected
// stays -1 until a choice is made.
type RadioGroup struct {
	options        []string
	selected       int
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

func NewRadioGroup(options ...string) RadioGroup {
	return RadioGroup{options: options, selected: -1}
}

func (r RadioGroup) Selected(selected int) RadioGroup {
	r.selected = selected
	return r
}

func (r RadioGroup) Highlighted(highlighted int) RadioGroup {
	r.highlighted = highlighted
	return r
}

func (r RadioGroup) Focused(focused bool) RadioGroup {
	r.focused = focused
	return r
}

func (r RadioGroup) MaxVisible(n int) RadioGroup {
	r.maxVisible = max(n, 1)
	return r
}

func (r RadioGroup) Style(s core.Style) RadioGroup {
	r.style = s
	return r
}

func (r RadioGroup) SelectedStyle(s core.Style) RadioGroup {
	r.selectedStyle = &s
	return r
}

func (r RadioGroup) HighlightStyle(s core.Style) RadioGroup {
	r.highlightStyle = &s
	return r
}

func (r RadioGroup) MarkerStyle(s core.Style) RadioGroup {
	r.markerStyle = &s
	return r
}

func (r RadioGroup) Padding(p core.Padding) RadioGroup {
	r.padding = p
	return r
}

func (r RadioGroup) Margin(m core.Padding) RadioGroup {
	r.margin = m
	return r
}

func (r RadioGroup) Render(f *core.Frame, area core.Rect) {
	area = r.padding.Apply(r.margin.Apply(area))
	if area.IsEmpty() || len(r.options) == 0 {
		return
	}

	width := area.Width
	base := r.style
	selectedStyle := orStyle(r.selectedStyle, base)
	highlightStyle := orStyle(r.highlightStyle, selectedStyle)
	markerStyle := orStyle(r.markerStyle, base)

	hasSelection := r.selected >= 0
	selected := clampIndex(r.selected, len(r.options))
	highlighted := clampIndex(r.highlighted, len(r.options))

	viewport := area.Height
	maxVisible := r.maxVisible
	if maxVisible <= 0 {
		maxVisible = len(r.options)
	}
	rows := min(viewport, max(maxVisible, 1))
	start := scrollStart(highlighted, rows, len(r.options))
	end := min(start+rows, len(r.options))

	f.RenderIn(area, func(f *core.Frame) {
		for rowIdx, optionIdx := 0, start; optionIdx < end; rowIdx, optionIdx = rowIdx+1, optionIdx+1 {
			isHighlight := r.focused && optionIdx == highlighted
			isSelected := hasSelection && optionIdx == selected

			pointer, marker := " ", "○"
			if isHighlight {
				pointer = "›"
			}
			if isSelected {
				marker = "●"
			}
			label := truncateToWidth(r.options[optionIdx], width-3)

			style := base
			switch {
			case isHighlight:
				style = highlightStyle
			case isSelected:
				style = selectedStyle
			}

			f.PrintStyled(0, rowIdx, padLine(pointer+marker+" "+label, width), style)
			if width > 1 {
				f.PrintStyled(1, rowIdx, marker, markerStyle)
			}
		}
	})
}
