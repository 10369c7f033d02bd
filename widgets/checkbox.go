package widgets

import (
	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

// CheckboxStyle groups the styles of a checkbox.
type CheckboxStyle struct {
	Base    core.Style
	Checked core.Style
	Box     core.Style
	Focus   core.Style
}

// CheckboxStyleFromTheme resolves the checkbox.* tokens.
func CheckboxStyleFromTheme(th *theme.Theme) CheckboxStyle {
	return CheckboxStyle{
		Base:    th.StyleOr("checkbox.base", core.Style{FG: core.ANSI(252)}),
		Checked: th.StyleOr("checkbox.checked", core.Style{FG: core.ANSI(16), BG: core.ANSI(39)}),
		Box:     th.StyleOr("checkbox.box", core.Style{FG: core.ANSI(39)}),
		Focus:   th.StyleOr("checkbox.focus", core.Style{FG: core.ANSI(16), BG: core.ANSI(45)}),
	}
}

// Checkbox renders "[x] label" on a single row.
type Checkbox struct {
	label        string
	checked      bool
	focused      bool
	style        core.Style
	checkedStyle *core.Style
	boxStyle     *core.Style
	focusStyle   *core.Style
	padding      core.Padding
	margin       core.Padding
}

func NewCheckbox(label string) Checkbox {
	return Checkbox{label: label}
}

func (c Checkbox) Checked(checked bool) Checkbox {
	c.checked = checked
	return c
}

func (c Checkbox) Focused(focused bool) Checkbox {
	c.focused = focused
	return c
}

func (c Checkbox) Style(s core.Style) Checkbox {
	c.style = s
	return c
}

func (c Checkbox) CheckedStyle(s core.Style) Checkbox {
	c.checkedStyle = &s
	return c
}

func (c Checkbox) BoxStyle(s core.Style) Checkbox {
	c.boxStyle = &s
	return c
}

func (c Checkbox) FocusStyle(s core.Style) Checkbox {
	c.focusStyle = &s
	return c
}

func (c Checkbox) Padding(p core.Padding) Checkbox {
	c.padding = p
	return c
}

func (c Checkbox) Margin(m core.Padding) Checkbox {
	c.margin = m
	return c
}

func (c Checkbox) Render(f *core.Frame, area core.Rect) {
	area = c.padding.Apply(c.margin.Apply(area))
	if area.IsEmpty() {
		return
	}

	width := area.Width
	base := c.style
	checkedStyle := orStyle(c.checkedStyle, base)
	boxStyle := orStyle(c.boxStyle, base)
	focusStyle := orStyle(c.focusStyle, base)

	f.RenderIn(area, func(f *core.Frame) {
		marker := "[ ]"
		if c.checked {
			marker = "[x]"
		}
		row := padLine(marker+" "+c.label, width)

		f.PrintStyled(0, 0, row, base)
		if c.focused {
			f.PrintStyled(0, 0, row, focusStyle)
		}

		f.PrintStyled(0, 0, truncateToWidth(marker, width), boxStyle)
		if c.checked {
			f.PrintStyled(1, 0, "x", checkedStyle)
		}
	})
}
