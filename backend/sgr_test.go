package backend

import (
	"testing"

	"github.com/framegrace/texelview/core"
)

func TestStyleSGR(t *testing.T) {
	cases := []struct {
		name  string
		style core.Style
		want  string
	}{
		{"default", core.Style{}, "\x1b[0;39;49m"},
		{"bold ansi fg", core.Style{FG: core.ANSI(1), Mods: core.ModBold}, "\x1b[0;1;38;5;1;49m"},
		{"ansi bg", core.Style{BG: core.ANSI(240)}, "\x1b[0;39;48;5;240m"},
		{"rgb pair", core.Style{FG: core.RGB(10, 20, 30), BG: core.RGB(0, 0, 0)}, "\x1b[0;38;2;10;20;30;48;2;0;0;0m"},
		{
			"all modifiers",
			core.Style{Mods: core.ModBold | core.ModDim | core.ModItalic | core.ModUnderline | core.ModReverse},
			"\x1b[0;1;2;3;4;7;39;49m",
		},
	}
	for _, tc := range cases {
		if got := styleSGR(tc.style); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestStyleSGRDistinguishesBlackFromDefault(t *testing.T) {
	rgbBlack := styleSGR(core.Style{BG: core.RGB(0, 0, 0)})
	def := styleSGR(core.Style{})
	if rgbBlack == def {
		t.Fatalf("RGB black and terminal default produced the same sequence %q", def)
	}
}

func TestCursorTo(t *testing.T) {
	if got := cursorTo(0, 0); got != "\x1b[1;1H" {
		t.Errorf("origin: got %q, want %q", got, "\x1b[1;1H")
	}
	if got := cursorTo(9, 4); got != "\x1b[5;10H" {
		t.Errorf("(9,4): got %q, want %q", got, "\x1b[5;10H")
	}
}
