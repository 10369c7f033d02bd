package backend

import (
	"testing"

	"github.com/framegrace/texelview/core"
)

func TestDecodeInputSingleKeys(t *testing.T) {
	cases := []struct {
		in   string
		want core.KeyEvent
	}{
		{"a", core.KeyEvent{Key: core.KeyRune, Rune: 'a'}},
		{"é", core.KeyEvent{Key: core.KeyRune, Rune: 'é'}},
		{"\r", core.KeyEvent{Key: core.KeyEnter}},
		{"\n", core.KeyEvent{Key: core.KeyEnter}},
		{"\t", core.KeyEvent{Key: core.KeyTab}},
		{"\x7f", core.KeyEvent{Key: core.KeyBackspace}},
		{"\x08", core.KeyEvent{Key: core.KeyBackspace}},
		{"\x03", core.KeyEvent{Key: core.KeyRune, Rune: 'c', Ctrl: true}},
		{"\x1a", core.KeyEvent{Key: core.KeyRune, Rune: 'z', Ctrl: true}},
		{"\x1b", core.KeyEvent{Key: core.KeyEsc}},
		{"\x1b[A", core.KeyEvent{Key: core.KeyUp}},
		{"\x1b[B", core.KeyEvent{Key: core.KeyDown}},
		{"\x1b[C", core.KeyEvent{Key: core.KeyRight}},
		{"\x1b[D", core.KeyEvent{Key: core.KeyLeft}},
		{"\x1b[H", core.KeyEvent{Key: core.KeyHome}},
		{"\x1b[F", core.KeyEvent{Key: core.KeyEnd}},
		{"\x1b[Z", core.KeyEvent{Key: core.KeyTab}},
		{"\x1b[1~", core.KeyEvent{Key: core.KeyHome}},
		{"\x1b[3~", core.KeyEvent{Key: core.KeyDelete}},
		{"\x1b[4~", core.KeyEvent{Key: core.KeyEnd}},
		{"\x1b[5~", core.KeyEvent{Key: core.KeyPgUp}},
		{"\x1b[6~", core.KeyEvent{Key: core.KeyPgDn}},
		{"\x1b[7~", core.KeyEvent{Key: core.KeyHome}},
		{"\x1b[8~", core.KeyEvent{Key: core.KeyEnd}},
		{"\x1bOA", core.KeyEvent{Key: core.KeyUp}},
		{"\x1bOH", core.KeyEvent{Key: core.KeyHome}},
		{"\x1bx", core.KeyEvent{Key: core.KeyRune, Rune: 'x', Alt: true}},
	}
	for _, tc := range cases {
		events, n := decodeInput([]byte(tc.in))
		if n != len(tc.in) {
			t.Errorf("%q: consumed %d bytes, want %d", tc.in, n, len(tc.in))
			continue
		}
		if len(events) != 1 {
			t.Errorf("%q: got %d events, want 1", tc.in, len(events))
			continue
		}
		if events[0] != core.Event(tc.want) {
			t.Errorf("%q: got %#v, want %#v", tc.in, events[0], tc.want)
		}
	}
}

func TestDecodeInputSequence(t *testing.T) {
	events, n := decodeInput([]byte("\x1b[Aab\x03"))
	if n != 6 {
		t.Fatalf("consumed %d bytes, want 6", n)
	}
	want := []core.Event{
		core.KeyEvent{Key: core.KeyUp},
		core.KeyEvent{Key: core.KeyRune, Rune: 'a'},
		core.KeyEvent{Key: core.KeyRune, Rune: 'b'},
		core.KeyEvent{Key: core.KeyRune, Rune: 'c', Ctrl: true},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d: got %#v, want %#v", i, events[i], want[i])
		}
	}
}

func TestDecodeInputLeavesPartialSequences(t *testing.T) {
	cases := []struct {
		in       string
		events   int
		consumed int
	}{
		{"\x1b[", 0, 0},
		{"\x1b[5", 0, 0},
		{"\x1bO", 0, 0},
		{"q\x1b[", 1, 1},
		{"h\xc3", 1, 1}, // first byte of a two-byte rune
	}
	for _, tc := range cases {
		events, n := decodeInput([]byte(tc.in))
		if len(events) != tc.events || n != tc.consumed {
			t.Errorf("%q: got %d events and %d consumed, want %d and %d",
				tc.in, len(events), n, tc.events, tc.consumed)
		}
	}
}

func TestDecodeInputResumesAcrossChunks(t *testing.T) {
	first := []byte("q\x1b[")
	events, n := decodeInput(first)
	if len(events) != 1 || n != 1 {
		t.Fatalf("first chunk: got %d events and %d consumed, want 1 and 1", len(events), n)
	}

	pending := append([]byte{}, first[n:]...)
	pending = append(pending, 'B')
	events, n = decodeInput(pending)
	if n != len(pending) {
		t.Fatalf("second chunk: consumed %d bytes, want %d", n, len(pending))
	}
	if len(events) != 1 || events[0] != core.Event(core.KeyEvent{Key: core.KeyDown}) {
		t.Fatalf("second chunk: got %#v, want KeyDown", events)
	}
}

func TestDecodeInputDoubleEscape(t *testing.T) {
	events, n := decodeInput([]byte("\x1b\x1b"))
	if n != 2 || len(events) != 2 {
		t.Fatalf("got %d events and %d consumed, want 2 and 2", len(events), n)
	}
	for i, ev := range events {
		if ev != core.Event(core.KeyEvent{Key: core.KeyEsc}) {
			t.Errorf("event %d: got %#v, want KeyEsc", i, ev)
		}
	}
}

func TestDecodeInputDropsUnknownSequences(t *testing.T) {
	// An unrecognized CSI final and a stray invalid byte both vanish
	// without desynchronizing the keys around them.
	events, n := decodeInput([]byte("\x1b[99Xq\xffz"))
	if n != 8 {
		t.Fatalf("consumed %d bytes, want 8", n)
	}
	want := []core.Event{
		core.KeyEvent{Key: core.KeyRune, Rune: 'q'},
		core.KeyEvent{Key: core.KeyRune, Rune: 'z'},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d: got %#v, want %#v", i, events[i], want[i])
		}
	}
}
