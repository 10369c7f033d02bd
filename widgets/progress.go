package widgets

import (
	"fmt"
	"strings"

	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

// ProgressBarStyle groups the styles of a progress bar.
type ProgressBarStyle struct {
	Base  core.Style
	Track core.Style
	Fill  core.Style
	Label core.Style
}

// ProgressBarStyleFromTheme resolves the progress.* tokens.
func ProgressBarStyleFromTheme(th *theme.Theme) ProgressBarStyle {
	return ProgressBarStyle{
		Base:  th.StyleOr("progress.base", core.Style{FG: core.ANSI(252)}),
		Track: th.StyleOr("progress.track", core.Style{FG: core.ANSI(244)}),
		Fill:  th.StyleOr("progress.fill", core.Style{FG: core.ANSI(39)}),
		Label: th.StyleOr("progress.label", core.Style{FG: core.ANSI(252)}),
	}
}

// ProgressBar fills the track proportionally to value/max, with an
// optional right-aligned percent label.
type ProgressBar struct {
	value      int
	max        int
	showLabel  bool
	style      core.Style
	trackStyle *core.Style
	fillStyle  *core.Style
	labelStyle *core.Style
	padding    core.Padding
	margin     core.Padding
}

func NewProgressBar() ProgressBar {
	return ProgressBar{max: 100, showLabel: true}
}

func (p ProgressBar) Value(value int) ProgressBar {
	p.value = max(value, 0)
	return p
}

func (p ProgressBar) Max(maxValue int) ProgressBar {
	p.max = max(maxValue, 1)
	return p
}

func (p ProgressBar) ShowLabel(show bool) ProgressBar {
	p.showLabel = show
	return p
}

func (p ProgressBar) Style(s core.Style) ProgressBar {
	p.style = s
	return p
}

func (p ProgressBar) TrackStyle(s core.Style) ProgressBar {
	p.trackStyle = &s
	return p
}

func (p ProgressBar) FillStyle(s core.Style) ProgressBar {
	p.fillStyle = &s
	return p
}

func (p ProgressBar) LabelStyle(s core.Style) ProgressBar {
	p.labelStyle = &s
	return p
}

func (p ProgressBar) Padding(pad core.Padding) ProgressBar {
	p.padding = pad
	return p
}

func (p ProgressBar) Margin(m core.Padding) ProgressBar {
	p.margin = m
	return p
}

func (p ProgressBar) Render(f *core.Frame, area core.Rect) {
	area = p.padding.Apply(p.margin.Apply(area))
	if area.IsEmpty() {
		return
	}

	width := area.Width
	base := p.style
	trackStyle := orStyle(p.trackStyle, base)
	fillStyle := orStyle(p.fillStyle, trackStyle)
	labelStyle := orStyle(p.labelStyle, base)

	limit := max(p.max, 1)
	value := min(p.value, limit)
	filled := value * width / limit

	f.RenderIn(area, func(f *core.Frame) {
		f.PrintStyled(0, 0, strings.Repeat("░", width), trackStyle)
		if filled > 0 {
			f.PrintStyled(0, 0, strings.Repeat("█", filled), fillStyle)
		}

		if p.showLabel {
			label := fmt.Sprintf("%3d%%", value*100/limit)
			clipped := truncateToWidth(label, width)
			f.PrintStyled(width-displayWidth(clipped), 0, clipped, labelStyle)
		}
	})
}
