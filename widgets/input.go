// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/input.go
// Summary: Single-line text input plus the pure editing operations that
// drive it. Rendering and editing are split so update logic stays free
// of frame concerns.
// Usage: value, cursor, ok := widgets.ApplyKey(value, cursor, ev)

package widgets

import (
	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

// EditOp identifies a single-line editing operation.
type EditOp uint8

const (
	EditInsert EditOp = iota
	EditBackspace
	EditLeft
	EditRight
	EditHome
	EditEnd
)

// Edit is one editing operation; Rune is only read for EditInsert.
type Edit struct {
	Op   EditOp
	Rune rune
}

func InsertRune(r rune) Edit {
	return Edit{Op: EditInsert, Rune: r}
}

// ApplyEdit returns value and cursor after one edit. The cursor is a
// rune index and is clamped into [0, len] before the edit applies, so a
// stale position cannot corrupt the value.
func ApplyEdit(value string, cursor int, edit Edit) (string, int) {
	chars := []rune(value)
	cursor = min(max(cursor, 0), len(chars))

	switch edit.Op {
	case EditInsert:
		chars = append(chars[:cursor], append([]rune{edit.Rune}, chars[cursor:]...)...)
		cursor++
	case EditBackspace:
		if cursor > 0 {
			chars = append(chars[:cursor-1], chars[cursor:]...)
			cursor--
		}
	case EditLeft:
		cursor = max(cursor-1, 0)
	case EditRight:
		cursor = min(cursor+1, len(chars))
	case EditHome:
		cursor = 0
	case EditEnd:
		cursor = len(chars)
	}

	return string(chars), cursor
}

// ApplyKey routes editing keys through ApplyEdit. The boolean reports
// whether the event was consumed; chords with Ctrl or Alt set and
// non-editing keys are left to the caller.
func ApplyKey(value string, cursor int, ev core.KeyEvent) (string, int, bool) {
	if ev.Ctrl || ev.Alt {
		return value, cursor, false
	}

	var edit Edit
	switch ev.Key {
	case core.KeyRune:
		edit = InsertRune(ev.Rune)
	case core.KeyBackspace:
		edit = Edit{Op: EditBackspace}
	case core.KeyLeft:
		edit = Edit{Op: EditLeft}
	case core.KeyRight:
		edit = Edit{Op: EditRight}
	case core.KeyHome:
		edit = Edit{Op: EditHome}
	case core.KeyEnd:
		edit = Edit{Op: EditEnd}
	default:
		return value, cursor, false
	}

	value, cursor = ApplyEdit(value, cursor, edit)
	return value, cursor, true
}

// InputStyle groups the styles of a text input.
type InputStyle struct {
	Base        core.Style
	Focus       core.Style
	Placeholder core.Style
	Cursor      core.Style
}

// InputStyleFromTheme resolves the input.* tokens.
func InputStyleFromTheme(th *theme.Theme) InputStyle {
	return InputStyle{
		Base:        th.StyleOr("input.text", core.Style{FG: core.ANSI(252)}),
		Focus:       th.StyleOr("input.focus", core.Style{BG: core.RGB(28, 38, 68)}),
		Placeholder: th.StyleOr("input.placeholder", core.Style{FG: core.ANSI(244)}),
		Cursor:      th.StyleOr("input.cursor", core.Style{FG: core.ANSI(16), BG: core.ANSI(39)}),
	}
}

// Input renders a single-line text field. When empty it shows the
// placeholder; when focused it inverts the cell under the cursor.
type Input struct {
	value            string
	cursor           int
	placeholder      string
	focused          bool
	style            core.Style
	placeholderStyle *core.Style
	cursorStyle      *core.Style
	focusStyle       *core.Style
	padding          core.Padding
	margin           core.Padding
}

func NewInput() Input {
	return Input{}
}

// Value sets the text, pulling the cursor back when the new text is
// shorter than the old position.
func (in Input) Value(v string) Input {
	in.value = v
	if n := len([]rune(v)); in.cursor > n {
		in.cursor = n
	}
	return in
}

func (in Input) Cursor(c int) Input {
	in.cursor = c
	return in
}

func (in Input) Placeholder(p string) Input {
	in.placeholder = p
	return in
}

func (in Input) Focused(focused bool) Input {
	in.focused = focused
	return in
}

func (in Input) Style(s core.Style) Input {
	in.style = s
	return in
}

func (in Input) PlaceholderStyle(s core.Style) Input {
	in.placeholderStyle = &s
	return in
}

func (in Input) CursorStyle(s core.Style) Input {
	in.cursorStyle = &s
	return in
}

func (in Input) FocusStyle(s core.Style) Input {
	in.focusStyle = &s
	return in
}

func (in Input) Padding(p core.Padding) Input {
	in.padding = p
	return in
}

func (in Input) Margin(m core.Padding) Input {
	in.margin = m
	return in
}

func (in Input) Render(f *core.Frame, area core.Rect) {
	area = in.padding.Apply(in.margin.Apply(area))
	if area.IsEmpty() {
		return
	}

	width := area.Width
	base := in.style
	if in.focused {
		base = orStyle(in.focusStyle, in.style)
	}
	cursorStyle := orStyle(in.cursorStyle, base)
	placeholderStyle := orStyle(in.placeholderStyle, base)

	display, displayStyle := in.value, base
	if in.value == "" {
		display, displayStyle = in.placeholder, placeholderStyle
	}
	clipped := truncateToWidth(display, width)

	f.RenderIn(area, func(f *core.Frame) {
		f.PrintStyled(0, 0, padLine(clipped, width), base)
		if clipped != "" {
			f.PrintStyled(0, 0, clipped, displayStyle)
		}
		if !in.focused {
			return
		}

		cursorX := min(max(in.cursor, 0), width-1)
		source := []rune(in.value)
		if in.value == "" {
			source = []rune(clipped)
		}
		cell := " "
		if cursorX < len(source) {
			cell = string(source[cursorX])
		}
		f.PrintStyled(cursorX, 0, cell, cursorStyle)
	})
}
