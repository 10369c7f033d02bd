package widgets

import (
	"github.com/framegrace/texelview/core"
)

// Text prints pre-formatted lines as-is. Lines beyond the area are
// dropped and long lines are clipped by the frame.
type Text struct {
	content string
	style   core.Style
	padding core.Padding
	margin  core.Padding
}

func NewText(content string) Text {
	return Text{content: content}
}

func (t Text) Style(s core.Style) Text {
	t.style = s
	return t
}

func (t Text) Padding(p core.Padding) Text {
	t.padding = p
	return t
}

func (t Text) Margin(m core.Padding) Text {
	t.margin = m
	return t
}

func (t Text) Render(f *core.Frame, area core.Rect) {
	area = t.padding.Apply(t.margin.Apply(area))
	if area.IsEmpty() {
		return
	}
	f.RenderIn(area, func(f *core.Frame) {
		for y, line := range splitLines(t.content) {
			if y >= area.Height {
				break
			}
			f.PrintStyled(0, y, line, t.style)
		}
	})
}
