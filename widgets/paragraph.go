package widgets

import (
	"github.com/framegrace/texelview/core"
)

// Paragraph flows text into the area width before printing. The default
// word wrap keeps words whole and falls back to char-chunking for words
// wider than the area.
type Paragraph struct {
	content string
	style   core.Style
	wrap    WrapMode
	padding core.Padding
	margin  core.Padding
}

func NewParagraph(content string) Paragraph {
	return Paragraph{content: content, wrap: WrapWord}
}

func (p Paragraph) Style(s core.Style) Paragraph {
	p.style = s
	return p
}

func (p Paragraph) Wrap(mode WrapMode) Paragraph {
	p.wrap = mode
	return p
}

func (p Paragraph) Padding(pad core.Padding) Paragraph {
	p.padding = pad
	return p
}

func (p Paragraph) Margin(m core.Padding) Paragraph {
	p.margin = m
	return p
}

func (p Paragraph) Render(f *core.Frame, area core.Rect) {
	area = p.padding.Apply(p.margin.Apply(area))
	if area.IsEmpty() {
		return
	}
	lines := wrapLines(p.content, area.Width, p.wrap)
	f.RenderIn(area, func(f *core.Frame) {
		for y, line := range lines {
			if y >= area.Height {
				break
			}
			f.PrintStyled(0, y, line, p.style)
		}
	})
}
