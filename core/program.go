// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/program.go
// Summary: The outer run loop: wait for an event, update, redraw.
// Usage: Wire an App and a backend Driver into a Program and call Run;
// Run blocks until the app quits or the driver fails.

package core

import (
	"errors"
	"fmt"
	"time"
)

// DefaultTickInterval is how long Run waits for input before synthesizing
// a TickEvent.
const DefaultTickInterval = 250 * time.Millisecond

// Driver pairs an event source with a render sink. Implementations own
// the real terminal (or a simulation of one); the program loop is the
// only caller.
type Driver interface {
	// Init acquires the terminal. Fini must restore it on every exit
	// path; Run defers it right after a successful Init.
	Init() error
	Fini()
	// Size reports the current terminal dimensions in cells.
	Size() (int, int)
	// Events delivers key and resize occurrences. Closing the channel
	// ends the run loop.
	Events() <-chan Event
	// Render realizes the frame on the terminal.
	Render(f *Frame) error
}

// EventMapper translates one occurrence into an application message. The
// bool is false to ignore the occurrence: no update, no redraw.
type EventMapper func(Event) (Msg, bool)

// ProgramConfig wires up a Program.
type ProgramConfig struct {
	App    App
	Driver Driver
	// MapEvent is required; a program with no mapping would never update.
	MapEvent EventMapper
	// TickInterval defaults to DefaultTickInterval when zero.
	TickInterval time.Duration
}

// Program drives one App against one Driver. The loop is strictly
// sequential: wait for an event (or synthesize a tick), map it, drain the
// scheduler, redraw. The only state surviving between iterations is the
// app model and the driver's previous frame.
type Program struct {
	app      App
	driver   Driver
	mapEvent EventMapper
	tick     time.Duration
}

// NewProgram validates the config and returns a runnable program.
func NewProgram(cfg ProgramConfig) (*Program, error) {
	if cfg.App == nil {
		return nil, errors.New("program: app is required")
	}
	if cfg.Driver == nil {
		return nil, errors.New("program: driver is required")
	}
	if cfg.MapEvent == nil {
		return nil, errors.New("program: event mapper is required")
	}
	tick := cfg.TickInterval
	if tick <= 0 {
		tick = DefaultTickInterval
	}
	return &Program{
		app:      cfg.App,
		driver:   cfg.Driver,
		mapEvent: cfg.MapEvent,
		tick:     tick,
	}, nil
}

// Run blocks until the app quits, the driver's event channel closes, or a
// terminal write fails. The driver is restored on every exit path.
func (p *Program) Run() error {
	if err := p.driver.Init(); err != nil {
		return fmt.Errorf("program: init driver: %w", err)
	}
	defer p.driver.Fini()

	if init, ok := p.app.(Initializer); ok {
		if ProcessCommand(p.app, init.Init()) {
			return nil
		}
	}

	width, height := p.driver.Size()
	frame := NewFrame(width, height)
	if err := p.draw(frame); err != nil {
		return err
	}

	for {
		var ev Event
		select {
		case driverEv, ok := <-p.driver.Events():
			if !ok {
				return nil
			}
			ev = driverEv
		case <-time.After(p.tick):
			ev = TickEvent{}
		}

		// The frame is rebuilt at the new size before any further
		// drawing, whether or not the resize maps to a message.
		if resize, ok := ev.(ResizeEvent); ok {
			frame = NewFrame(resize.Width, resize.Height)
		}

		msg, ok := p.mapEvent(ev)
		if !ok {
			continue
		}
		if ProcessMessage(p.app, msg) {
			return nil
		}
		if err := p.draw(frame); err != nil {
			return err
		}
	}
}

func (p *Program) draw(frame *Frame) error {
	frame.Clear()
	p.app.View(frame)
	return p.driver.Render(frame)
}
