// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/widgets_test.go
// Summary: Exercises the display widgets against fixed frames: text,
// blocks, lists, status bars, inputs, tabs, tables, and form fields.

package widgets

import (
	"testing"

	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

func wantChar(t *testing.T, f *core.Frame, x, y int, want rune) {
	t.Helper()
	got, ok := f.CharAt(x, y)
	if !ok {
		t.Fatalf("CharAt(%d,%d) out of range", x, y)
	}
	if got != want {
		t.Fatalf("char at (%d,%d) = %q, want %q", x, y, got, want)
	}
}

func wantStyle(t *testing.T, f *core.Frame, x, y int, want core.Style) {
	t.Helper()
	got, ok := f.StyleAt(x, y)
	if !ok {
		t.Fatalf("StyleAt(%d,%d) out of range", x, y)
	}
	if got != want {
		t.Fatalf("style at (%d,%d) = %+v, want %+v", x, y, got, want)
	}
}

func TestTextRendersMultilineInsideArea(t *testing.T) {
	f := core.NewFrame(10, 4)
	NewText("ab\ncd\nef").Render(f, core.NewRect(2, 1, 2, 2))

	wantChar(t, f, 2, 1, 'a')
	wantChar(t, f, 3, 1, 'b')
	wantChar(t, f, 2, 2, 'c')
	wantChar(t, f, 3, 2, 'd')
	// The third line does not fit the two-row area.
	wantChar(t, f, 2, 3, ' ')
}

func TestTextAppliesInlineStyle(t *testing.T) {
	f := core.NewFrame(6, 2)
	style := core.Style{FG: core.ANSI(45), BG: core.ANSI(16)}
	NewText("hi").Style(style).Render(f, core.NewRect(1, 0, 3, 1))

	wantStyle(t, f, 1, 0, style)
	wantStyle(t, f, 2, 0, style)
}

func TestBlockRendersUnicodeBorders(t *testing.T) {
	f := core.NewFrame(8, 4)
	NewBlock().Render(f, core.NewRect(0, 0, 8, 4))

	wantChar(t, f, 0, 0, '┌')
	wantChar(t, f, 7, 0, '┐')
	wantChar(t, f, 0, 3, '└')
	wantChar(t, f, 7, 3, '┘')
	wantChar(t, f, 3, 0, '─')
	wantChar(t, f, 0, 1, '│')
	wantChar(t, f, 7, 2, '│')
}

func TestBlockTitleTruncatedToInnerWidth(t *testing.T) {
	f := core.NewFrame(7, 3)
	NewBlock().Title("abcdef").Render(f, core.NewRect(0, 0, 7, 3))

	wantChar(t, f, 1, 0, ' ')
	wantChar(t, f, 2, 0, 'a')
	wantChar(t, f, 3, 0, 'b')
	wantChar(t, f, 4, 0, 'c')
	wantChar(t, f, 5, 0, 'd')
}

func TestBlockAsciiBorders(t *testing.T) {
	f := core.NewFrame(6, 3)
	NewBlock().BorderType(BorderAscii).Render(f, core.NewRect(0, 0, 6, 3))

	wantChar(t, f, 0, 0, '+')
	wantChar(t, f, 1, 0, '-')
	wantChar(t, f, 0, 1, '|')
}

func TestBlockMarginAndPaddingShrinkInnerArea(t *testing.T) {
	block := NewBlock().
		Margin(core.UniformPadding(1)).
		Padding(core.UniformPadding(1))
	inner := block.InnerArea(core.NewRect(0, 0, 10, 6))

	want := core.NewRect(3, 3, 4, 0)
	if inner != want {
		t.Fatalf("inner area = %+v, want %+v", inner, want)
	}
}

func TestBlockWithoutBordersStillRendersTitle(t *testing.T) {
	f := core.NewFrame(8, 2)
	NewBlock().Title("no-border").Borders(NoBorders()).Render(f, core.NewRect(0, 0, 8, 2))

	wantChar(t, f, 0, 0, ' ')
	wantChar(t, f, 1, 0, 'n')
}

func TestListScrollsToKeepSelectedVisible(t *testing.T) {
	f := core.NewFrame(12, 3)
	NewList("zero", "one", "two", "three", "four", "five").
		Selected(4).
		Render(f, core.NewRect(0, 0, 12, 3))

	wantChar(t, f, 2, 0, 't')
	wantChar(t, f, 2, 1, 't')
	wantChar(t, f, 0, 2, '›')
	wantChar(t, f, 2, 2, 'f')
}

func TestListEmptyIsNoop(t *testing.T) {
	f := core.NewFrame(4, 2)
	NewList().Render(f, core.NewRect(0, 0, 4, 2))

	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			wantChar(t, f, x, y, ' ')
		}
	}
}

func TestListSelectedStyleAndPrefix(t *testing.T) {
	f := core.NewFrame(8, 2)
	selectedStyle := core.Style{BG: core.ANSI(34)}
	NewList("one", "two").
		Selected(1).
		SelectedPrefix(">").
		SelectedStyle(selectedStyle).
		Render(f, core.NewRect(0, 0, 8, 2))

	wantChar(t, f, 0, 1, '>')
	wantStyle(t, f, 0, 1, selectedStyle)
}

func TestParagraphWrapsWordsAndClipsHeight(t *testing.T) {
	f := core.NewFrame(12, 2)
	NewParagraph("alpha beta gamma").
		Wrap(WrapWord).
		Render(f, core.NewRect(0, 0, 5, 2))

	wantChar(t, f, 0, 0, 'a')
	wantChar(t, f, 0, 1, 'b')
}

func TestParagraphCharAndNoWrapDiffer(t *testing.T) {
	f := core.NewFrame(5, 2)
	NewParagraph("abcdef").Wrap(WrapChar).Render(f, core.NewRect(0, 0, 3, 2))
	wantChar(t, f, 0, 1, 'd')

	f2 := core.NewFrame(5, 2)
	NewParagraph("abcdef").Wrap(WrapNone).Render(f2, core.NewRect(0, 0, 3, 2))
	wantChar(t, f2, 0, 1, ' ')
}

func TestStatusBarPlacesSegments(t *testing.T) {
	f := core.NewFrame(14, 1)
	NewStatusBar().Left("left").Right("right").Render(f, core.NewRect(0, 0, 14, 1))

	wantChar(t, f, 0, 0, 'l')
	wantChar(t, f, 9, 0, 'r')
}

func TestStatusBarCollisionTruncatesRight(t *testing.T) {
	f := core.NewFrame(8, 1)
	NewStatusBar().Left("left-side").Right("right-side").Render(f, core.NewRect(0, 0, 8, 1))

	wantChar(t, f, 0, 0, 'l')
	wantChar(t, f, 7, 0, 'd')
}

func TestApplyEditUpdatesValueAndCursor(t *testing.T) {
	value, cursor := "ab", 2
	value, cursor = ApplyEdit(value, cursor, Edit{Op: EditLeft})
	value, cursor = ApplyEdit(value, cursor, Edit{Op: EditBackspace})
	value, cursor = ApplyEdit(value, cursor, InsertRune('z'))

	if value != "zb" || cursor != 1 {
		t.Fatalf("got %q cursor %d, want %q cursor 1", value, cursor, "zb")
	}
}

func TestApplyKeyRoutesEditingKeys(t *testing.T) {
	value, cursor, ok := ApplyKey("ab", 2, core.KeyEvent{Key: core.KeyBackspace})
	if !ok || value != "a" || cursor != 1 {
		t.Fatalf("backspace: got %q cursor %d ok %v", value, cursor, ok)
	}
	if _, _, ok := ApplyKey("ab", 2, core.KeyEvent{Key: core.KeyRune, Rune: 'c', Ctrl: true}); ok {
		t.Fatal("ctrl chord consumed as text input")
	}
	if _, _, ok := ApplyKey("ab", 2, core.KeyEvent{Key: core.KeyEnter}); ok {
		t.Fatal("non-editing key consumed")
	}
}

func TestInputRendersPlaceholderWhenEmpty(t *testing.T) {
	f := core.NewFrame(10, 1)
	style := core.Style{FG: core.ANSI(245)}
	NewInput().
		Placeholder("search").
		PlaceholderStyle(style).
		Render(f, core.NewRect(0, 0, 10, 1))

	wantChar(t, f, 0, 0, 's')
	wantStyle(t, f, 0, 0, style)
}

func TestInputWidthOneAndCursorBounds(t *testing.T) {
	f := core.NewFrame(1, 1)
	NewInput().
		Value("abc").
		Cursor(99).
		Focused(true).
		Render(f, core.NewRect(0, 0, 1, 1))

	wantChar(t, f, 0, 0, 'a')
}

func TestInputCursorCellUsesCursorStyle(t *testing.T) {
	f := core.NewFrame(8, 1)
	cursorStyle := core.Style{FG: core.ANSI(16), BG: core.ANSI(39)}
	NewInput().
		Value("abc").
		Cursor(1).
		Focused(true).
		CursorStyle(cursorStyle).
		Render(f, core.NewRect(0, 0, 8, 1))

	wantChar(t, f, 1, 0, 'b')
	wantStyle(t, f, 1, 0, cursorStyle)
}

func TestPanelRendersTitleAndInner(t *testing.T) {
	f := core.NewFrame(12, 4)
	panel := NewPanel("x").Styles(PanelStyle{})

	panel.Render(f, core.NewRect(0, 0, 12, 4), func(f *core.Frame, inner core.Rect) {
		f.RenderIn(inner, func(f *core.Frame) {
			f.Print(0, 0, "ok")
		})
	})

	wantChar(t, f, 2, 0, 'x')
	wantChar(t, f, 1, 1, 'o')
}

func TestTabsHighlightSelected(t *testing.T) {
	f := core.NewFrame(20, 1)
	active := core.Style{BG: core.ANSI(39)}
	NewTabs("A", "B", "C").
		Selected(1).
		ActiveStyle(active).
		Render(f, core.NewRect(0, 0, 20, 1))

	wantChar(t, f, 6, 0, 'B')
	wantStyle(t, f, 6, 0, active)
}

func TestTabsClosingBracketOnLastColumn(t *testing.T) {
	f := core.NewFrame(8, 1)
	NewTabs("alpha", "beta").Render(f, core.NewRect(0, 0, 8, 1))

	wantChar(t, f, 0, 0, '[')
	wantChar(t, f, 7, 0, ']')
}

func TestTableAlignsColumns(t *testing.T) {
	f := core.NewFrame(12, 4)
	columns := []TableColumn{
		NewTableColumn("L", core.Fixed(4)),
		NewTableColumn("C", core.Fixed(4)).Align(AlignCenter),
		NewTableColumn("R", core.Fixed(4)).Align(AlignRight),
	}
	rows := [][]string{{"a", "b", "c"}}
	NewTable(columns, rows).Render(f, core.NewRect(0, 0, 12, 4))

	wantChar(t, f, 0, 2, 'a')
	wantChar(t, f, 5, 2, 'b')
	wantChar(t, f, 11, 2, 'c')
}

func TestTableScrollFollowsSelection(t *testing.T) {
	f := core.NewFrame(6, 4)
	columns := []TableColumn{NewTableColumn("N", core.Fill())}
	rows := [][]string{{"r0"}, {"r1"}, {"r2"}, {"r3"}}
	NewTable(columns, rows).Selected(3).Render(f, core.NewRect(0, 0, 6, 4))

	// Two body rows fit; the window slides to rows 2 and 3.
	wantChar(t, f, 1, 2, '2')
	wantChar(t, f, 1, 3, '3')
}

func TestTableScrollPinsWindow(t *testing.T) {
	f := core.NewFrame(6, 4)
	columns := []TableColumn{NewTableColumn("N", core.Fill())}
	rows := [][]string{{"r0"}, {"r1"}, {"r2"}, {"r3"}}
	NewTable(columns, rows).Selected(3).Scroll(0).Render(f, core.NewRect(0, 0, 6, 4))

	wantChar(t, f, 1, 2, '0')
	wantChar(t, f, 1, 3, '1')
}

func TestTableHeaderAndSelectedRowStyles(t *testing.T) {
	f := core.NewFrame(8, 4)
	header := core.Style{FG: core.ANSI(230)}
	selected := core.Style{BG: core.ANSI(39)}
	columns := []TableColumn{NewTableColumn("H", core.Fill())}
	rows := [][]string{{"x"}, {"y"}}
	NewTable(columns, rows).
		Selected(1).
		HeaderStyle(header).
		SelectedStyle(selected).
		Render(f, core.NewRect(0, 0, 8, 4))

	wantChar(t, f, 0, 0, 'H')
	wantStyle(t, f, 0, 0, header)
	wantChar(t, f, 0, 1, '─')
	wantChar(t, f, 0, 3, 'y')
	wantStyle(t, f, 0, 3, selected)
}

func TestFormFieldRendersLabelAndHelp(t *testing.T) {
	f := core.NewFrame(20, 4)
	NewFormField("Name").HelpText("Required").Render(
		f, core.NewRect(0, 0, 20, 4),
		func(f *core.Frame, area core.Rect) {
			f.RenderIn(area, func(f *core.Frame) {
				f.Print(0, 0, "input")
			})
		})

	wantChar(t, f, 0, 0, 'N')
	wantChar(t, f, 0, 1, 'i')
	wantChar(t, f, 0, 3, 'R')
}

func TestFormFieldErrorDisplacesHelp(t *testing.T) {
	f := core.NewFrame(20, 3)
	errStyle := core.Style{FG: core.ANSI(196)}
	NewFormField("Name").
		HelpText("Required").
		ErrorText("too long").
		ErrorStyle(errStyle).
		Render(f, core.NewRect(0, 0, 20, 3), func(f *core.Frame, area core.Rect) {})

	wantChar(t, f, 0, 2, 't')
	wantStyle(t, f, 0, 2, errStyle)
}

func TestStyleBundlesUseThemeTokens(t *testing.T) {
	th, err := theme.Parse([]byte(`{
	  "tokens": {
	    "panel.title": { "fg": { "ansi": 111 } },
	    "list.selected": { "fg": { "ansi": 222 } },
	    "statusbar.right": { "fg": { "ansi": 123 } },
	    "input.placeholder": { "fg": { "ansi": 77 } }
	  }
	}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := PanelStyleFromTheme(th).Title.FG; got != core.ANSI(111) {
		t.Errorf("panel title fg = %+v, want ansi 111", got)
	}
	if got := ListStyleFromTheme(th).Selected.FG; got != core.ANSI(222) {
		t.Errorf("list selected fg = %+v, want ansi 222", got)
	}
	if got := StatusBarStyleFromTheme(th).Right.FG; got != core.ANSI(123) {
		t.Errorf("statusbar right fg = %+v, want ansi 123", got)
	}
	if got := InputStyleFromTheme(th).Placeholder.FG; got != core.ANSI(77) {
		t.Errorf("input placeholder fg = %+v, want ansi 77", got)
	}
}
