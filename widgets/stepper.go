package widgets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

// StepperStyle groups the styles of a numeric stepper.
type StepperStyle struct {
	Base     core.Style
	Value    core.Style
	Controls core.Style
	Focus    core.Style
}

// StepperStyleFromTheme resolves the stepper.* tokens.
func StepperStyleFromTheme(th *theme.Theme) StepperStyle {
	return StepperStyle{
		Base:     th.StyleOr("stepper.base", core.Style{FG: core.ANSI(252)}),
		Value:    th.StyleOr("stepper.value", core.Style{FG: core.ANSI(252)}),
		Controls: th.StyleOr("stepper.controls", core.Style{FG: core.ANSI(39)}),
		Focus:    th.StyleOr("stepper.focus", core.Style{FG: core.ANSI(16), BG: core.ANSI(45)}),
	}
}

// Stepper renders "[-] value [+]" with the value right-aligned in a
// slot wide enough for the largest value in range.
type Stepper struct {
	min           int
	max           int
	value         int
	step          int
	focused       bool
	style         core.Style
	valueStyle    *core.Style
	controlsStyle *core.Style
	focusStyle    *core.Style
	padding       core.Padding
	margin        core.Padding
}

func NewStepper(minValue, maxValue int) Stepper {
	return Stepper{min: minValue, max: max(minValue, maxValue), value: minValue, step: 1}
}

// Value clamps into [min, max].
func (s Stepper) Value(value int) Stepper {
	s.value = min(max(value, s.min), s.max)
	return s
}

func (s Stepper) Step(step int) Stepper {
	s.step = max(step, 1)
	return s
}

func (s Stepper) Focused(focused bool) Stepper {
	s.focused = focused
	return s
}

func (s Stepper) Style(st core.Style) Stepper {
	s.style = st
	return s
}

func (s Stepper) ValueStyle(st core.Style) Stepper {
	s.valueStyle = &st
	return s
}

func (s Stepper) ControlsStyle(st core.Style) Stepper {
	s.controlsStyle = &st
	return s
}

func (s Stepper) FocusStyle(st core.Style) Stepper {
	s.focusStyle = &st
	return s
}

func (s Stepper) Padding(p core.Padding) Stepper {
	s.padding = p
	return s
}

func (s Stepper) Margin(m core.Padding) Stepper {
	s.margin = m
	return s
}

func (s Stepper) Render(f *core.Frame, area core.Rect) {
	area = s.padding.Apply(s.margin.Apply(area))
	if area.IsEmpty() {
		return
	}

	width := area.Width
	base := s.style
	valueStyle := orStyle(s.valueStyle, base)
	controlsStyle := orStyle(s.controlsStyle, base)
	focusStyle := orStyle(s.focusStyle, base)

	value := min(max(s.value, s.min), s.max)
	valueWidth := max(len(strconv.Itoa(s.max)), len(strconv.Itoa(s.min)), 1)
	content := fmt.Sprintf("[-] %*d [+]", valueWidth, value)
	clipped := truncateToWidth(content, width)
	const valueStart = 4

	f.RenderIn(area, func(f *core.Frame) {
		row := strings.Repeat(" ", width)
		f.PrintStyled(0, 0, row, base)
		if s.focused {
			f.PrintStyled(0, 0, row, focusStyle)
		}

		f.PrintStyled(0, 0, clipped, base)
		if width >= 3 {
			f.PrintStyled(0, 0, "[-]", controlsStyle)
		}
		if width > valueStart {
			valueText := alignText(strconv.Itoa(value), valueWidth, AlignRight)
			f.PrintStyled(valueStart, 0, truncateToWidth(valueText, width-valueStart), valueStyle)
		}
		if plusStart := valueStart + valueWidth + 1; width > plusStart {
			f.PrintStyled(plusStart, 0, truncateToWidth("[+]", width-plusStart), controlsStyle)
		}
	})
}
