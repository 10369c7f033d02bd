package widgets

import (
	"strings"

	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

// SliderStyle groups the styles of a slider.
type SliderStyle struct {
	Base  core.Style
	Track core.Style
	Fill  core.Style
	Thumb core.Style
	Focus core.Style
}

// SliderStyleFromTheme resolves the slider.* tokens.
func SliderStyleFromTheme(th *theme.Theme) SliderStyle {
	return SliderStyle{
		Base:  th.StyleOr("slider.base", core.Style{FG: core.ANSI(252)}),
		Track: th.StyleOr("slider.track", core.Style{FG: core.ANSI(244)}),
		Fill:  th.StyleOr("slider.fill", core.Style{FG: core.ANSI(39)}),
		Thumb: th.StyleOr("slider.thumb", core.Style{FG: core.ANSI(39)}),
		Focus: th.StyleOr("slider.focus", core.Style{FG: core.ANSI(16), BG: core.ANSI(45)}),
	}
}

// Slider renders a horizontal track with the filled span and thumb at
// the position proportional to value within [min, max].
type Slider struct {
	min        int
	max        int
	value      int
	focused    bool
	style      core.Style
	trackStyle *core.Style
	fillStyle  *core.Style
	thumbStyle *core.Style
	focusStyle *core.Style
	padding    core.Padding
	margin     core.Padding
}

func NewSlider(minValue, maxValue int) Slider {
	return Slider{min: minValue, max: max(minValue, maxValue), value: minValue}
}

// Value clamps into [min, max].
func (s Slider) Value(value int) Slider {
	s.value = min(max(value, s.min), s.max)
	return s
}

func (s Slider) Focused(focused bool) Slider {
	s.focused = focused
	return s
}

func (s Slider) Style(st core.Style) Slider {
	s.style = st
	return s
}

func (s Slider) TrackStyle(st core.Style) Slider {
	s.trackStyle = &st
	return s
}

func (s Slider) FillStyle(st core.Style) Slider {
	s.fillStyle = &st
	return s
}

func (s Slider) ThumbStyle(st core.Style) Slider {
	s.thumbStyle = &st
	return s
}

func (s Slider) FocusStyle(st core.Style) Slider {
	s.focusStyle = &st
	return s
}

func (s Slider) Padding(p core.Padding) Slider {
	s.padding = p
	return s
}

func (s Slider) Margin(m core.Padding) Slider {
	s.margin = m
	return s
}

func (s Slider) Render(f *core.Frame, area core.Rect) {
	area = s.padding.Apply(s.margin.Apply(area))
	if area.IsEmpty() {
		return
	}

	width := area.Width
	base := s.style
	trackStyle := orStyle(s.trackStyle, base)
	fillStyle := orStyle(s.fillStyle, trackStyle)
	thumbStyle := orStyle(s.thumbStyle, fillStyle)
	focusStyle := orStyle(s.focusStyle, base)

	span := s.max - s.min
	value := min(max(s.value, s.min), s.max)
	thumbPos := 0
	if width > 1 && span > 0 {
		thumbPos = (value - s.min) * (width - 1) / span
	}

	f.RenderIn(area, func(f *core.Frame) {
		row := strings.Repeat(" ", width)
		f.PrintStyled(0, 0, row, base)
		if s.focused {
			f.PrintStyled(0, 0, row, focusStyle)
		}

		f.PrintStyled(0, 0, strings.Repeat("─", width), trackStyle)
		f.PrintStyled(0, 0, strings.Repeat("━", thumbPos+1), fillStyle)
		f.PrintStyled(thumbPos, 0, "●", thumbStyle)
	})
}
