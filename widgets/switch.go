package widgets

import (
	"strings"

	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

// SwitchStyle groups the styles of a toggle switch.
type SwitchStyle struct {
	Base  core.Style
	On    core.Style
	Off   core.Style
	Thumb core.Style
	Focus core.Style
}

// SwitchStyleFromTheme resolves the switch.* tokens.
func SwitchStyleFromTheme(th *theme.Theme) SwitchStyle {
	return SwitchStyle{
		Base:  th.StyleOr("switch.base", core.Style{FG: core.ANSI(252)}),
		On:    th.StyleOr("switch.on", core.Style{FG: core.ANSI(16), BG: core.ANSI(39)}),
		Off:   th.StyleOr("switch.off", core.Style{FG: core.ANSI(252), BG: core.ANSI(238)}),
		Thumb: th.StyleOr("switch.thumb", core.Style{FG: core.ANSI(231)}),
		Focus: th.StyleOr("switch.focus", core.Style{FG: core.ANSI(16), BG: core.ANSI(45)}),
	}
}

// Switch renders a two-state toggle; the thumb sits on the side that
// matches the state.
type Switch struct {
	on         bool
	focused    bool
	style      core.Style
	onStyle    *core.Style
	offStyle   *core.Style
	thumbStyle *core.Style
	focusStyle *core.Style
	padding    core.Padding
	margin     core.Padding
}

func NewSwitch() Switch {
	return Switch{}
}

func (s Switch) On(on bool) Switch {
	s.on = on
	return s
}

func (s Switch) Focused(focused bool) Switch {
	s.focused = focused
	return s
}

func (s Switch) Style(st core.Style) Switch {
	s.style = st
	return s
}

func (s Switch) OnStyle(st core.Style) Switch {
	s.onStyle = &st
	return s
}

func (s Switch) OffStyle(st core.Style) Switch {
	s.offStyle = &st
	return s
}

func (s Switch) ThumbStyle(st core.Style) Switch {
	s.thumbStyle = &st
	return s
}

func (s Switch) FocusStyle(st core.Style) Switch {
	s.focusStyle = &st
	return s
}

func (s Switch) Padding(p core.Padding) Switch {
	s.padding = p
	return s
}

func (s Switch) Margin(m core.Padding) Switch {
	s.margin = m
	return s
}

func (s Switch) Render(f *core.Frame, area core.Rect) {
	area = s.padding.Apply(s.margin.Apply(area))
	if area.IsEmpty() {
		return
	}

	width := area.Width
	base := s.style
	onStyle := orStyle(s.onStyle, base)
	offStyle := orStyle(s.offStyle, base)
	thumbStyle := orStyle(s.thumbStyle, base)
	focusStyle := orStyle(s.focusStyle, base)

	f.RenderIn(area, func(f *core.Frame) {
		row := strings.Repeat(" ", width)
		f.PrintStyled(0, 0, row, base)
		if s.focused {
			f.PrintStyled(0, 0, row, focusStyle)
		}

		track, trackStyle, thumbX := "[OFF ]", offStyle, 1
		if s.on {
			track, trackStyle, thumbX = "[ ON ]", onStyle, 4
		}
		f.PrintStyled(0, 0, truncateToWidth(track, width), trackStyle)
		if width > thumbX {
			f.PrintStyled(thumbX, 0, "●", thumbStyle)
		}
	})
}
