// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/event.go
// Summary: The discrete occurrences a driver delivers to the program loop.

package core

// Event is one occurrence from the terminal: a key press, a resize, or a
// synthesized tick when nothing arrived within the tick interval.
type Event interface {
	isEvent()
}

// Key identifies a non-printable key, or KeyRune for printable input.
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyEsc
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
)

// KeyEvent is a single key press. Printable input arrives as KeyRune with
// the rune set; Ctrl combinations carry the lowercase letter with Ctrl set.
type KeyEvent struct {
	Key  Key
	Rune rune
	Alt  bool
	Ctrl bool
}

// ResizeEvent reports new terminal dimensions.
type ResizeEvent struct {
	Width  int
	Height int
}

// TickEvent is synthesized when no input arrived within the tick interval.
type TickEvent struct{}

func (KeyEvent) isEvent()    {}
func (ResizeEvent) isEvent() {}
func (TickEvent) isEvent()   {}
