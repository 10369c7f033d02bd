// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: backend/guard.go
// Summary: Raw-mode and alternate-screen guard for the ANSI driver.
// Usage: g, err := acquireGuard(in, out); defer g.release()

package backend

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// guard owns the terminal state the ANSI driver disturbs: raw mode on
// the input fd, plus the alternate screen and hidden cursor on the
// output. release undoes it all in reverse order and is idempotent.
type guard struct {
	in       *os.File
	out      io.Writer
	oldState *term.State
	released bool
}

func acquireGuard(in *os.File, out io.Writer) (*guard, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("guard: fd %d is not a terminal", fd)
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("guard: enter raw mode: %w", err)
	}
	if _, err := io.WriteString(out, altScreenEnter+cursorHide+clearScreen); err != nil {
		term.Restore(fd, oldState)
		return nil, fmt.Errorf("guard: switch to alternate screen: %w", err)
	}
	return &guard{in: in, out: out, oldState: oldState}, nil
}

func (g *guard) release() {
	if g == nil || g.released {
		return
	}
	g.released = true
	// Screen first, cooked mode last, mirroring acquisition.
	io.WriteString(g.out, sgrReset+cursorShow+altScreenLeave)
	term.Restore(int(g.in.Fd()), g.oldState)
}
