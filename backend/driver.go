// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: backend/driver.go
// Summary: core.Driver over a raw tty using the diffing ANSI renderer.
// Usage: p, _ := core.NewProgram(core.ProgramConfig{Driver: backend.NewANSIDriver(), ...})

package backend

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/term"

	"github.com/framegrace/texelview/core"
)

// ANSIDriver renders frames as escape sequences on a tty and decodes
// its input stream into events. It owns raw mode and the alternate
// screen between Init and Fini.
type ANSIDriver struct {
	in  *os.File
	out *os.File

	guard     *guard
	term      *Terminal
	events    chan core.Event
	stop      chan struct{}
	inputDone chan struct{}
	winch     chan os.Signal
	finiOnce  sync.Once
}

// NewANSIDriver drives the process's controlling terminal.
func NewANSIDriver() *ANSIDriver {
	return NewANSIDriverFiles(os.Stdin, os.Stdout)
}

// NewANSIDriverFiles drives an explicit fd pair, such as a pty slave.
func NewANSIDriverFiles(in, out *os.File) *ANSIDriver {
	return &ANSIDriver{in: in, out: out}
}

func (d *ANSIDriver) Init() error {
	g, err := acquireGuard(d.in, d.out)
	if err != nil {
		return err
	}
	w, h, err := term.GetSize(int(d.out.Fd()))
	if err != nil {
		g.release()
		return fmt.Errorf("ansi driver: query size: %w", err)
	}
	d.guard = g
	d.term = NewTerminal(d.out, w, h)
	d.events = make(chan core.Event, 32)
	d.stop = make(chan struct{})
	d.inputDone = make(chan struct{})
	d.winch = make(chan os.Signal, 1)
	signal.Notify(d.winch, syscall.SIGWINCH)

	go func() {
		d.readLoop()
		close(d.inputDone)
	}()
	go func() {
		d.winchLoop()
		select {
		case <-d.inputDone:
			// No sender remains, so the channel may close.
			close(d.events)
		default:
		}
	}()
	return nil
}

func (d *ANSIDriver) Fini() {
	d.finiOnce.Do(func() {
		signal.Stop(d.winch)
		close(d.stop)
		d.guard.release()
	})
}

func (d *ANSIDriver) Size() (int, int) {
	w, h, err := term.GetSize(int(d.out.Fd()))
	if err != nil {
		return 0, 0
	}
	return w, h
}

func (d *ANSIDriver) Events() <-chan core.Event {
	return d.events
}

func (d *ANSIDriver) Render(f *core.Frame) error {
	return d.term.Render(f)
}

// readLoop pumps raw bytes through decodeInput, carrying a partial
// trailing sequence into the next read. A Read blocked at shutdown is
// abandoned; the process is about to exit.
func (d *ANSIDriver) readLoop() {
	var pending []byte
	buf := make([]byte, 256)
	for {
		n, err := d.in.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			events, used := decodeInput(pending)
			rest := copy(pending, pending[used:])
			pending = pending[:rest]
			for _, ev := range events {
				d.send(ev)
			}
		}
		if err != nil {
			return
		}
		select {
		case <-d.stop:
			return
		default:
		}
	}
}

func (d *ANSIDriver) winchLoop() {
	for {
		select {
		case <-d.stop:
			return
		case <-d.inputDone:
			return
		case <-d.winch:
			if w, h, err := term.GetSize(int(d.out.Fd())); err == nil {
				d.send(core.ResizeEvent{Width: w, Height: h})
			}
		}
	}
}

func (d *ANSIDriver) send(ev core.Event) {
	select {
	case d.events <- ev:
	case <-d.stop:
	}
}
