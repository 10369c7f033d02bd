// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/sourceview/sourceview.go
// Summary: Syntax-highlighted file pager. go-enry detects the language,
// chroma tokenizes the content, and the token colors are mapped onto
// frame styles once at load time; scrolling just re-draws cached lines.

package sourceview

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelview/config"
	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
	"github.com/framegrace/texelview/widgets"
)

// KeyMsg is a key press forwarded from the driver.
type KeyMsg core.KeyEvent

// ResizeMsg reports new frame dimensions.
type ResizeMsg core.ResizeEvent

const defaultChromaStyle = "monokai"

// span is a run of text sharing one style within a highlighted line.
type span struct {
	text  string
	style core.Style
}

type line []span

// Model is the pager state: the highlighted lines never change after
// load, so Update only moves the scroll window.
type Model struct {
	path     string
	language string
	lines    []line

	scroll   int
	viewport int

	base    core.Style
	gutter  core.Style
	status  widgets.StatusBarStyle
	numbers bool
}

// Load reads and highlights a file.
func Load(path string, th *theme.Theme) (*Model, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sourceview: read %s: %w", path, err)
	}
	return New(path, content, th), nil
}

// New highlights content under the given display name. The name drives
// language detection; content that defeats detection falls back to the
// plain-text lexer rather than failing.
func New(path string, content []byte, th *theme.Theme) *Model {
	language := enry.GetLanguage(filepath.Base(path), content)
	text := string(content)

	styleName := config.App("sourceview").GetString("chroma_style", defaultChromaStyle)
	chStyle := styles.Get(styleName)

	base := th.StyleOr("sourceview.text", core.Style{FG: core.ANSI(252)})

	return &Model{
		path:     path,
		language: language,
		lines:    highlight(text, pickLexer(language, path, text), chStyle, base),
		base:     base,
		gutter:   th.StyleOr("sourceview.gutter", core.Style{FG: core.ANSI(240)}),
		status:   widgets.StatusBarStyleFromTheme(th),
		numbers:  config.App("sourceview").GetBool("line_numbers", true),
	}
}

// pickLexer resolves a chroma lexer from the detected language, the
// file name, then content analysis, in that order.
func pickLexer(language, path, text string) chroma.Lexer {
	if language != "" {
		if l := lexers.Get(language); l != nil {
			return l
		}
	}
	if l := lexers.Match(filepath.Base(path)); l != nil {
		return l
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

// highlight tokenizes the whole document once and splits the styled
// runs on newlines. Tokens whose color matches the chroma style's base
// text color keep the theme's base style so the document follows the
// terminal theme instead of the chroma background.
func highlight(text string, lexer chroma.Lexer, chStyle *chroma.Style, base core.Style) []line {
	tokens, err := chroma.Tokenise(chroma.Coalesce(lexer), nil, text)
	if err != nil {
		return plainLines(text, base)
	}

	baseColour := chStyle.Get(chroma.Text).Colour
	var out []line
	current := line{}
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		style := tokenStyle(chStyle.Get(tok.Type), baseColour, base)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				out = append(out, current)
				current = line{}
			}
			if part == "" {
				continue
			}
			current = append(current, span{text: part, style: style})
		}
	}
	out = append(out, current)
	// A trailing newline produces one empty final line; drop it so the
	// pager's length matches what an editor would report.
	if n := len(out); n > 0 && len(out[n-1]) == 0 && strings.HasSuffix(text, "\n") {
		out = out[:n-1]
	}
	return out
}

func plainLines(text string, base core.Style) []line {
	raw := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	out := make([]line, len(raw))
	for i, l := range raw {
		if l != "" {
			out[i] = line{{text: l, style: base}}
		}
	}
	return out
}

// tokenStyle maps one chroma style entry onto a frame style.
func tokenStyle(entry chroma.StyleEntry, baseColour chroma.Colour, base core.Style) core.Style {
	s := base
	if entry.Bold == chroma.Yes {
		s.Mods |= core.ModBold
	}
	if entry.Italic == chroma.Yes {
		s.Mods |= core.ModItalic
	}
	if entry.Underline == chroma.Yes {
		s.Mods |= core.ModUnderline
	}
	if entry.Colour.IsSet() && entry.Colour != baseColour {
		s.FG = core.RGB(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
	}
	return s
}

// Language reports what enry detected, or "plain" when nothing matched.
func (m *Model) Language() string {
	if m.language == "" {
		return "plain"
	}
	return m.language
}

// Lines reports the highlighted line count.
func (m *Model) Lines() int { return len(m.lines) }

// MapEvent translates driver occurrences into pager messages. Ticks are
// ignored: nothing in the pager changes without input.
func MapEvent(ev core.Event) (core.Msg, bool) {
	switch ev := ev.(type) {
	case core.KeyEvent:
		return KeyMsg(ev), true
	case core.ResizeEvent:
		return ResizeMsg(ev), true
	}
	return nil, false
}

func (m *Model) Update(msg core.Msg) core.Command {
	switch msg := msg.(type) {
	case ResizeMsg:
		m.viewport = max(msg.Height-1, 0)
		m.clampScroll()
	case KeyMsg:
		return m.handleKey(core.KeyEvent(msg))
	}
	return core.None()
}

func (m *Model) handleKey(ev core.KeyEvent) core.Command {
	page := max(m.viewport-1, 1)
	switch ev.Key {
	case core.KeyUp:
		m.scroll--
	case core.KeyDown:
		m.scroll++
	case core.KeyPgUp:
		m.scroll -= page
	case core.KeyPgDn:
		m.scroll += page
	case core.KeyHome:
		m.scroll = 0
	case core.KeyEnd:
		m.scroll = len(m.lines)
	case core.KeyEsc:
		return core.Quit()
	case core.KeyRune:
		switch ev.Rune {
		case 'q':
			return core.Quit()
		case 'g':
			m.scroll = 0
		case 'G':
			m.scroll = len(m.lines)
		case ' ':
			m.scroll += page
		}
		if ev.Ctrl && ev.Rune == 'c' {
			return core.Quit()
		}
	}
	m.clampScroll()
	return core.None()
}

func (m *Model) clampScroll() {
	limit := max(len(m.lines)-m.viewport, 0)
	m.scroll = min(max(m.scroll, 0), limit)
}

func (m *Model) View(f *core.Frame) {
	lay := core.Split("root", core.Vertical,
		core.NewSlot(core.Fill(), core.Leaf("body")),
		core.NewSlot(core.Fixed(1), core.Leaf("status")),
	).Resolve(f.Bounds())

	if area, ok := lay.Area("body"); ok {
		m.viewport = area.Height
		m.clampScroll()
		m.viewBody(f, area)
	}
	if area, ok := lay.Area("status"); ok {
		widgets.NewStatusBar().
			Left(fmt.Sprintf("%s · %s", m.path, m.Language())).
			Right(m.position()).
			Style(m.status.Base).
			LeftStyle(m.status.Left).
			RightStyle(m.status.Right).
			Render(f, area)
	}
}

func (m *Model) position() string {
	if len(m.lines) <= m.viewport {
		return "all"
	}
	if m.scroll == 0 {
		return "top"
	}
	if m.scroll >= len(m.lines)-m.viewport {
		return "end"
	}
	return fmt.Sprintf("%d%%", m.scroll*100/(len(m.lines)-m.viewport))
}

func (m *Model) viewBody(f *core.Frame, area core.Rect) {
	gutterWidth := 0
	if m.numbers {
		gutterWidth = len(fmt.Sprint(len(m.lines))) + 1
	}

	f.RenderIn(area, func(f *core.Frame) {
		for row := 0; row < area.Height; row++ {
			idx := m.scroll + row
			if idx >= len(m.lines) {
				break
			}
			if m.numbers {
				f.PrintStyled(0, row, fmt.Sprintf("%*d", gutterWidth-1, idx+1), m.gutter)
			}
			x := gutterWidth
			for _, sp := range m.lines[idx] {
				f.PrintStyled(x, row, sp.text, sp.style)
				x += runewidth.StringWidth(sp.text)
				if x >= area.Width {
					break
				}
			}
		}
	})
}
