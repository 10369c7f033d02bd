package widgets

import (
	"strings"

	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

// StatusBarStyle groups the styles of a status bar row.
type StatusBarStyle struct {
	Base  core.Style
	Left  core.Style
	Right core.Style
}

// StatusBarStyleFromTheme resolves the statusbar.* tokens, falling back
// to the app.footer.* tokens shared with full-app chrome.
func StatusBarStyleFromTheme(th *theme.Theme) StatusBarStyle {
	fallbackBase := th.StyleOr("app.footer.bg", core.Style{BG: core.RGB(28, 28, 28)})
	fallbackText := th.StyleOr("app.footer.text", core.Style{FG: core.ANSI(250)})
	return StatusBarStyle{
		Base:  th.StyleOr("statusbar.bg", fallbackBase),
		Left:  th.StyleOr("statusbar.left", fallbackText),
		Right: th.StyleOr("statusbar.right", fallbackText),
	}
}

// StatusBar renders one row with a left-aligned and a right-aligned
// segment. The left segment wins when they would collide.
type StatusBar struct {
	left       string
	right      string
	style      core.Style
	leftStyle  *core.Style
	rightStyle *core.Style
	margin     core.Padding
}

func NewStatusBar() StatusBar {
	return StatusBar{}
}

func (b StatusBar) Left(text string) StatusBar {
	b.left = text
	return b
}

func (b StatusBar) Right(text string) StatusBar {
	b.right = text
	return b
}

func (b StatusBar) Style(s core.Style) StatusBar {
	b.style = s
	return b
}

func (b StatusBar) LeftStyle(s core.Style) StatusBar {
	b.leftStyle = &s
	return b
}

func (b StatusBar) RightStyle(s core.Style) StatusBar {
	b.rightStyle = &s
	return b
}

func (b StatusBar) Margin(m core.Padding) StatusBar {
	b.margin = m
	return b
}

func (b StatusBar) Render(f *core.Frame, area core.Rect) {
	area = b.margin.Apply(area)
	if area.IsEmpty() {
		return
	}

	width := area.Width
	base := b.style
	leftStyle := orStyle(b.leftStyle, base)
	rightStyle := orStyle(b.rightStyle, base)

	left := truncateToWidth(b.left, width)
	right := truncateToWidth(b.right, width-displayWidth(left))
	rightWidth := displayWidth(right)

	f.RenderIn(area, func(f *core.Frame) {
		f.PrintStyled(0, 0, strings.Repeat(" ", width), base)
		if left != "" {
			f.PrintStyled(0, 0, left, leftStyle)
		}
		if right != "" {
			f.PrintStyled(width-rightWidth, 0, right, rightStyle)
		}
	})
}
