// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: backend/input.go
// Summary: Decodes raw tty bytes into key events.
// Usage: The ANSI driver feeds each read chunk through decodeInput and
// carries any unconsumed tail into the next read.

package backend

import (
	"unicode/utf8"

	"github.com/framegrace/texelview/core"
)

// decodeInput parses a chunk of raw terminal input into key events and
// reports how many bytes were consumed. A trailing partial escape
// sequence or UTF-8 rune is left unconsumed for the caller to complete
// with the next read. A bare ESC at the end of a chunk is taken as the
// Escape key: terminals deliver the bytes of one sequence in one burst.
func decodeInput(buf []byte) ([]core.Event, int) {
	var events []core.Event
	i := 0
	for i < len(buf) {
		b := buf[i]
		switch {
		case b == 0x1b:
			ev, n := decodeEscape(buf[i:])
			if n == 0 {
				return events, i
			}
			if ev != nil {
				events = append(events, ev)
			}
			i += n
		case b == '\r' || b == '\n':
			events = append(events, core.KeyEvent{Key: core.KeyEnter})
			i++
		case b == '\t':
			events = append(events, core.KeyEvent{Key: core.KeyTab})
			i++
		case b == 0x7f || b == 0x08:
			events = append(events, core.KeyEvent{Key: core.KeyBackspace})
			i++
		case b >= 0x01 && b <= 0x1a:
			events = append(events, core.KeyEvent{
				Key: core.KeyRune, Rune: rune('a' + b - 0x01), Ctrl: true,
			})
			i++
		case b < 0x20:
			// Remaining control bytes carry no key of ours.
			i++
		default:
			r, size := utf8.DecodeRune(buf[i:])
			if r == utf8.RuneError && size == 1 {
				if !utf8.FullRune(buf[i:]) {
					return events, i
				}
				i++
				continue
			}
			events = append(events, core.KeyEvent{Key: core.KeyRune, Rune: r})
			i += size
		}
	}
	return events, len(buf)
}

// decodeEscape decodes one sequence starting at the ESC in buf[0]. It
// returns the event (nil for sequences we ignore) and the bytes consumed,
// or (nil, 0) when the sequence is incomplete in this chunk.
func decodeEscape(buf []byte) (core.Event, int) {
	if len(buf) == 1 {
		return core.KeyEvent{Key: core.KeyEsc}, 1
	}
	switch buf[1] {
	case '[':
		return decodeCSI(buf)
	case 'O':
		if len(buf) < 3 {
			return nil, 0
		}
		if key, ok := finalKey(buf[2]); ok {
			return core.KeyEvent{Key: key}, 3
		}
		return nil, 3
	case 0x1b:
		// ESC ESC: deliver the first, reconsider the second next round.
		return core.KeyEvent{Key: core.KeyEsc}, 1
	default:
		if buf[1] < 0x20 {
			// ESC followed by a control byte: deliver the ESC alone.
			return core.KeyEvent{Key: core.KeyEsc}, 1
		}
		r, size := utf8.DecodeRune(buf[1:])
		if r == utf8.RuneError && size == 1 {
			if !utf8.FullRune(buf[1:]) {
				return nil, 0
			}
			return core.KeyEvent{Key: core.KeyEsc}, 1
		}
		return core.KeyEvent{Key: core.KeyRune, Rune: r, Alt: true}, 1 + size
	}
}

// decodeCSI decodes ESC [ params final. Unknown finals are consumed and
// dropped so one unsupported sequence cannot poison the stream.
func decodeCSI(buf []byte) (core.Event, int) {
	i := 2
	for i < len(buf) && (buf[i] == ';' || (buf[i] >= '0' && buf[i] <= '9')) {
		i++
	}
	if i >= len(buf) {
		return nil, 0
	}
	final := buf[i]
	consumed := i + 1
	if final >= 'A' && final <= 'Z' || final == '~' {
		params := string(buf[2:i])
		if final == '~' {
			return tildeKey(params), consumed
		}
		if key, ok := finalKey(final); ok {
			return core.KeyEvent{Key: key}, consumed
		}
	}
	if final < 0x40 || final > 0x7e {
		// Malformed: consume the would-be final byte anyway.
		return nil, consumed
	}
	return nil, consumed
}

func finalKey(b byte) (core.Key, bool) {
	switch b {
	case 'A':
		return core.KeyUp, true
	case 'B':
		return core.KeyDown, true
	case 'C':
		return core.KeyRight, true
	case 'D':
		return core.KeyLeft, true
	case 'H':
		return core.KeyHome, true
	case 'F':
		return core.KeyEnd, true
	case 'Z':
		return core.KeyTab, true // back-tab arrives as shift-tab
	}
	return 0, false
}

func tildeKey(params string) core.Event {
	switch params {
	case "1", "7":
		return core.KeyEvent{Key: core.KeyHome}
	case "3":
		return core.KeyEvent{Key: core.KeyDelete}
	case "4", "8":
		return core.KeyEvent{Key: core.KeyEnd}
	case "5":
		return core.KeyEvent{Key: core.KeyPgUp}
	case "6":
		return core.KeyEvent{Key: core.KeyPgDn}
	}
	return nil
}
