package widgets

import (
	"strings"

	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

// TabsStyle groups the styles of a tab strip.
type TabsStyle struct {
	Base     core.Style
	Active   core.Style
	Inactive core.Style
	Border   core.Style
}

// TabsStyleFromTheme resolves the tabs.* tokens.
func TabsStyleFromTheme(th *theme.Theme) TabsStyle {
	return TabsStyle{
		Base:     th.StyleOr("tabs.bg", core.Style{BG: core.RGB(20, 24, 44)}),
		Active:   th.StyleOr("tabs.active", core.Style{FG: core.ANSI(16), BG: core.ANSI(39)}),
		Inactive: th.StyleOr("tabs.inactive", core.Style{FG: core.ANSI(252)}),
		Border:   th.StyleOr("tabs.border", core.Style{FG: core.ANSI(39)}),
	}
}

// Tabs renders a one-row tab strip: "[ one | two | three ]". Labels
// that do not fit are clipped; the closing bracket always lands on the
// last column.
type Tabs struct {
	labels        []string
	selected      int
	style         core.Style
	activeStyle   *core.Style
	inactiveStyle *core.Style
	borderStyle   *core.Style
	padding       core.Padding
	margin        core.Padding
}

func NewTabs(labels ...string) Tabs {
	return Tabs{labels: labels}
}

func (t Tabs) Selected(selected int) Tabs {
	t.selected = selected
	return t
}

func (t Tabs) Style(s core.Style) Tabs {
	t.style = s
	return t
}

func (t Tabs) ActiveStyle(s core.Style) Tabs {
	t.activeStyle = &s
	return t
}

func (t Tabs) InactiveStyle(s core.Style) Tabs {
	t.inactiveStyle = &s
	return t
}

func (t Tabs) BorderStyle(s core.Style) Tabs {
	t.borderStyle = &s
	return t
}

func (t Tabs) Padding(p core.Padding) Tabs {
	t.padding = p
	return t
}

func (t Tabs) Margin(m core.Padding) Tabs {
	t.margin = m
	return t
}

func (t Tabs) Render(f *core.Frame, area core.Rect) {
	area = t.padding.Apply(t.margin.Apply(area))
	if area.IsEmpty() || len(t.labels) == 0 {
		return
	}

	selected := clampIndex(t.selected, len(t.labels))
	base := t.style
	active := orStyle(t.activeStyle, base)
	inactive := orStyle(t.inactiveStyle, base)
	border := orStyle(t.borderStyle, base)
	width := area.Width

	f.RenderIn(area, func(f *core.Frame) {
		f.PrintStyled(0, 0, strings.Repeat(" ", width), base)
		f.PrintStyled(0, 0, "[", border)

		cursor := 1
		for idx, label := range t.labels {
			clipped := truncateToWidth(" "+label+" ", width-cursor)
			if clipped == "" {
				break
			}
			style := inactive
			if idx == selected {
				style = active
			}
			f.PrintStyled(cursor, 0, clipped, style)
			cursor += displayWidth(clipped)
			if cursor >= width-1 {
				break
			}
			f.PrintStyled(cursor, 0, "|", border)
			cursor++
		}

		if width > 1 {
			f.PrintStyled(width-1, 0, "]", border)
		}
	})
}
