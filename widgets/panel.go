package widgets

import (
	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

// PanelStyle groups the styles a Panel applies to its Block.
type PanelStyle struct {
	Body   core.Style
	Border core.Style
	Title  core.Style
}

// PanelStyleFromTheme resolves the panel.* tokens.
func PanelStyleFromTheme(th *theme.Theme) PanelStyle {
	return PanelStyleFromThemePrefix(th, "panel")
}

// PanelStyleFromThemePrefix resolves <prefix>.body, <prefix>.border and
// <prefix>.title, so one theme can describe several panel roles.
func PanelStyleFromThemePrefix(th *theme.Theme, prefix string) PanelStyle {
	return PanelStyle{
		Body:   th.StyleOr(prefix+".body", core.Style{BG: core.RGB(22, 32, 56)}),
		Border: th.StyleOr(prefix+".border", core.Style{FG: core.ANSI(39)}),
		Title:  th.StyleOr(prefix+".title", core.Style{FG: core.RGB(200, 220, 255)}),
	}
}

// Panel is a titled Block that hosts a render callback in its inner
// area, the way layout zones host their widgets.
type Panel struct {
	block Block
}

func NewPanel(title string) Panel {
	return Panel{block: NewBlock().Title(title)}
}

func (p Panel) Block(b Block) Panel {
	p.block = b
	return p
}

func (p Panel) Styles(st PanelStyle) Panel {
	p.block = p.block.BodyStyle(st.Body).BorderStyle(st.Border).TitleStyle(st.Title)
	return p
}

func (p Panel) Padding(pad core.Padding) Panel {
	p.block = p.block.Padding(pad)
	return p
}

func (p Panel) Margin(m core.Padding) Panel {
	p.block = p.block.Margin(m)
	return p
}

func (p Panel) Render(f *core.Frame, area core.Rect, renderInner func(*core.Frame, core.Rect)) {
	p.block.Render(f, area)
	renderInner(f, p.block.InnerArea(area))
}
