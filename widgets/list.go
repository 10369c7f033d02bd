package widgets

import (
	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

// ListStyle groups the item and selected-row styles.
type ListStyle struct {
	Item     core.Style
	Selected core.Style
}

// ListStyleFromTheme resolves the list.* tokens.
func ListStyleFromTheme(th *theme.Theme) ListStyle {
	return ListStyle{
		Item:     th.StyleOr("list.item", core.Style{FG: core.ANSI(252), BG: core.RGB(22, 32, 56)}),
		Selected: th.StyleOr("list.selected", core.Style{FG: core.ANSI(16), BG: core.ANSI(39)}),
	}
}

// List renders one item per row, scrolling so the selected item stays
// in view. Each row is padded to the full width so row styles cover the
// whole line.
type List struct {
	items          []string
	selected       int
	style          core.Style
	itemStyle      *core.Style
	selectedStyle  *core.Style
	selectedPrefix string
	padding        core.Padding
	margin         core.Padding
}

func NewList(items ...string) List {
	return List{items: items, selectedPrefix: "›"}
}

func (l List) Selected(selected int) List {
	l.selected = selected
	return l
}

func (l List) Style(s core.Style) List {
	l.style = s
	return l
}

func (l List) ItemStyle(s core.Style) List {
	l.itemStyle = &s
	return l
}

func (l List) SelectedStyle(s core.Style) List {
	l.selectedStyle = &s
	return l
}

func (l List) SelectedPrefix(prefix string) List {
	l.selectedPrefix = prefix
	return l
}

func (l List) Padding(p core.Padding) List {
	l.padding = p
	return l
}

func (l List) Margin(m core.Padding) List {
	l.margin = m
	return l
}

func (l List) Render(f *core.Frame, area core.Rect) {
	area = l.padding.Apply(l.margin.Apply(area))
	if area.IsEmpty() || len(l.items) == 0 {
		return
	}

	selected := clampIndex(l.selected, len(l.items))
	start := scrollStart(selected, area.Height, len(l.items))
	end := min(start+area.Height, len(l.items))
	itemStyle := orStyle(l.itemStyle, l.style)
	selectedStyle := orStyle(l.selectedStyle, itemStyle)

	f.RenderIn(area, func(f *core.Frame) {
		for row, idx := 0, start; idx < end; row, idx = row+1, idx+1 {
			marker, style := " ", itemStyle
			if idx == selected {
				marker, style = l.selectedPrefix, selectedStyle
			}
			f.PrintStyled(0, row, padLine(marker+" "+l.items[idx], area.Width), style)
		}
	})
}
