// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/program_test.go
// Summary: Exercises the run loop against a scripted in-memory driver.

package core

import (
	"errors"
	"testing"
	"time"
)

// scriptDriver feeds pre-queued events and records renders.
type scriptDriver struct {
	width, height int
	events        chan Event

	initErr   error
	renderErr error

	inited   bool
	finished bool
	renders  int
	lastDims [2]int
}

func newScriptDriver(w, h int, events ...Event) *scriptDriver {
	d := &scriptDriver{width: w, height: h, events: make(chan Event, len(events)+1)}
	for _, ev := range events {
		d.events <- ev
	}
	return d
}

func (d *scriptDriver) Init() error {
	if d.initErr != nil {
		return d.initErr
	}
	d.inited = true
	return nil
}

func (d *scriptDriver) Fini() { d.finished = true }

func (d *scriptDriver) Size() (int, int) { return d.width, d.height }

func (d *scriptDriver) Events() <-chan Event { return d.events }

func (d *scriptDriver) Render(f *Frame) error {
	if d.renderErr != nil {
		return d.renderErr
	}
	d.renders++
	d.lastDims = [2]int{f.Width(), f.Height()}
	return nil
}

// keyApp quits on 'q', counts everything else.
type keyApp struct {
	seen int
}

func (a *keyApp) Update(msg Msg) Command {
	if r, ok := msg.(rune); ok && r == 'q' {
		return Quit()
	}
	a.seen++
	return None()
}

func (a *keyApp) View(f *Frame) { f.Print(0, 0, "view") }

func mapKeys(ev Event) (Msg, bool) {
	switch e := ev.(type) {
	case KeyEvent:
		return e.Rune, true
	case ResizeEvent:
		return 'r', true
	default:
		return nil, false
	}
}

func TestNewProgramValidation(t *testing.T) {
	_, err := NewProgram(ProgramConfig{Driver: newScriptDriver(1, 1), MapEvent: mapKeys})
	if err == nil {
		t.Fatal("expected error for missing app")
	}
	_, err = NewProgram(ProgramConfig{App: &keyApp{}, MapEvent: mapKeys})
	if err == nil {
		t.Fatal("expected error for missing driver")
	}
	_, err = NewProgram(ProgramConfig{App: &keyApp{}, Driver: newScriptDriver(1, 1)})
	if err == nil {
		t.Fatal("expected error for missing mapper")
	}
}

func TestRunQuitsOnCommand(t *testing.T) {
	driver := newScriptDriver(10, 4,
		KeyEvent{Key: KeyRune, Rune: 'a'},
		KeyEvent{Key: KeyRune, Rune: 'q'},
	)
	app := &keyApp{}
	p, err := NewProgram(ProgramConfig{
		App: app, Driver: driver, MapEvent: mapKeys, TickInterval: time.Second,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !driver.inited || !driver.finished {
		t.Fatalf("driver lifecycle: inited=%v finished=%v", driver.inited, driver.finished)
	}
	if app.seen != 1 {
		t.Fatalf("app saw %d messages, want 1", app.seen)
	}
	// Initial draw plus one redraw for 'a'; quit returns before drawing.
	if driver.renders != 2 {
		t.Fatalf("renders = %d, want 2", driver.renders)
	}
}

func TestRunIgnoredEventsDoNotRedraw(t *testing.T) {
	driver := newScriptDriver(8, 2,
		TickEvent{}, TickEvent{},
		KeyEvent{Key: KeyRune, Rune: 'q'},
	)
	p, err := NewProgram(ProgramConfig{
		App: &keyApp{}, Driver: driver, MapEvent: mapKeys, TickInterval: time.Second,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Ticks map to no message: only the initial draw happened.
	if driver.renders != 1 {
		t.Fatalf("renders = %d, want 1", driver.renders)
	}
}

func TestRunRebuildsFrameOnResize(t *testing.T) {
	driver := newScriptDriver(10, 4,
		ResizeEvent{Width: 20, Height: 7},
		KeyEvent{Key: KeyRune, Rune: 'q'},
	)
	p, err := NewProgram(ProgramConfig{
		App: &keyApp{}, Driver: driver, MapEvent: mapKeys, TickInterval: time.Second,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if driver.lastDims != [2]int{20, 7} {
		t.Fatalf("last rendered frame %v, want [20 7]", driver.lastDims)
	}
}

func TestRunSynthesizesTicks(t *testing.T) {
	driver := newScriptDriver(4, 2)
	app := &tickQuitApp{quitAfter: 3}
	p, err := NewProgram(ProgramConfig{
		App:    app,
		Driver: driver,
		MapEvent: func(ev Event) (Msg, bool) {
			_, isTick := ev.(TickEvent)
			return "tick", isTick
		},
		TickInterval: time.Millisecond,
	})
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan error, 1)
	go func() { done <- p.Run() }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run loop never saw synthesized ticks")
	}
	if app.ticks < 3 {
		t.Fatalf("ticks = %d, want >= 3", app.ticks)
	}
}

type tickQuitApp struct {
	ticks     int
	quitAfter int
}

func (a *tickQuitApp) Update(msg Msg) Command {
	a.ticks++
	if a.ticks >= a.quitAfter {
		return Quit()
	}
	return None()
}

func (a *tickQuitApp) View(f *Frame) {}

func TestRunStopsWhenEventsClose(t *testing.T) {
	driver := newScriptDriver(4, 2)
	close(driver.events)
	p, err := NewProgram(ProgramConfig{
		App: &keyApp{}, Driver: driver, MapEvent: mapKeys, TickInterval: time.Second,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !driver.finished {
		t.Fatal("driver not restored")
	}
}

func TestRunPropagatesInitError(t *testing.T) {
	driver := newScriptDriver(4, 2)
	driver.initErr = errors.New("no tty")
	p, err := NewProgram(ProgramConfig{App: &keyApp{}, Driver: driver, MapEvent: mapKeys})
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Run(); err == nil {
		t.Fatal("expected init error")
	}
	if driver.finished {
		t.Fatal("Fini must not run when Init failed")
	}
}

func TestRunPropagatesRenderError(t *testing.T) {
	driver := newScriptDriver(4, 2)
	driver.renderErr = errors.New("broken pipe")
	p, err := NewProgram(ProgramConfig{App: &keyApp{}, Driver: driver, MapEvent: mapKeys})
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Run(); err == nil {
		t.Fatal("expected render error")
	}
	if !driver.finished {
		t.Fatal("driver must still be restored after a render failure")
	}
}

// initQuitApp verifies the Init hook runs before the first draw and that
// its command is scheduled.
type initQuitApp struct {
	keyApp
	initRan bool
}

func (a *initQuitApp) Init() Command {
	a.initRan = true
	return Quit()
}

func TestRunInitCommandCanQuit(t *testing.T) {
	driver := newScriptDriver(4, 2)
	app := &initQuitApp{}
	p, err := NewProgram(ProgramConfig{App: app, Driver: driver, MapEvent: mapKeys})
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !app.initRan {
		t.Fatal("Init never ran")
	}
	if driver.renders != 0 {
		t.Fatalf("renders = %d, want 0 when Init quits", driver.renders)
	}
}
