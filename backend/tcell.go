// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: backend/tcell.go
// Summary: core.Driver backed by a tcell.Screen.
// Usage: d, err := backend.NewTcellDriver(); tests pass tcell.NewSimulationScreen
// through NewTcellDriverWith.

package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelview/core"
)

// TcellDriver adapts a tcell.Screen to the core.Driver contract. tcell
// keeps its own back buffer, so Render blits every cell and lets Show
// diff against the physical screen.
type TcellDriver struct {
	screen   tcell.Screen
	events   chan core.Event
	quit     chan struct{}
	styles   map[core.Style]tcell.Style
	finiOnce sync.Once
}

func NewTcellDriver() (*TcellDriver, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTcellDriverWith(s), nil
}

// NewTcellDriverWith wraps an existing screen, typically a simulation
// screen under test.
func NewTcellDriverWith(s tcell.Screen) *TcellDriver {
	return &TcellDriver{
		screen: s,
		events: make(chan core.Event, 32),
		quit:   make(chan struct{}),
		styles: make(map[core.Style]tcell.Style),
	}
}

func (d *TcellDriver) Init() error {
	if err := d.screen.Init(); err != nil {
		return err
	}
	d.screen.HideCursor()
	go d.poll()
	return nil
}

func (d *TcellDriver) Fini() {
	d.finiOnce.Do(func() {
		close(d.quit)
		d.screen.Fini()
	})
}

func (d *TcellDriver) Size() (int, int) {
	return d.screen.Size()
}

func (d *TcellDriver) Events() <-chan core.Event {
	return d.events
}

func (d *TcellDriver) Render(f *core.Frame) error {
	w := f.Width()
	for i, c := range f.Cells() {
		r := c.Rune
		if r == 0 {
			r = ' '
		}
		d.screen.SetContent(i%w, i/w, r, nil, d.style(c.Style))
	}
	d.screen.Show()
	return nil
}

// poll drains tcell's event queue until Fini makes PollEvent return nil.
func (d *TcellDriver) poll() {
	defer close(d.events)
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		switch tev := ev.(type) {
		case *tcell.EventKey:
			kev, ok := translateKey(tev)
			if !ok {
				continue
			}
			if !d.send(kev) {
				return
			}
		case *tcell.EventResize:
			w, h := tev.Size()
			if !d.send(core.ResizeEvent{Width: w, Height: h}) {
				return
			}
		}
	}
}

func (d *TcellDriver) send(ev core.Event) bool {
	select {
	case d.events <- ev:
		return true
	case <-d.quit:
		return false
	}
}

// translateKey maps a tcell key event onto our key set. Enter, Tab and
// Escape share codes with KeyCtrlM, KeyCtrlI and KeyCtrlLeftSq, so the
// explicit cases must win before the control-letter range.
func translateKey(ev *tcell.EventKey) (core.KeyEvent, bool) {
	alt := ev.Modifiers()&tcell.ModAlt != 0
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0
	switch ev.Key() {
	case tcell.KeyRune:
		return core.KeyEvent{Key: core.KeyRune, Rune: ev.Rune(), Alt: alt, Ctrl: ctrl}, true
	case tcell.KeyEnter:
		return core.KeyEvent{Key: core.KeyEnter, Alt: alt}, true
	case tcell.KeyTab, tcell.KeyBacktab:
		return core.KeyEvent{Key: core.KeyTab, Alt: alt}, true
	case tcell.KeyEscape:
		return core.KeyEvent{Key: core.KeyEsc}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return core.KeyEvent{Key: core.KeyBackspace, Alt: alt}, true
	case tcell.KeyDelete:
		return core.KeyEvent{Key: core.KeyDelete, Alt: alt}, true
	case tcell.KeyUp:
		return core.KeyEvent{Key: core.KeyUp, Alt: alt}, true
	case tcell.KeyDown:
		return core.KeyEvent{Key: core.KeyDown, Alt: alt}, true
	case tcell.KeyLeft:
		return core.KeyEvent{Key: core.KeyLeft, Alt: alt}, true
	case tcell.KeyRight:
		return core.KeyEvent{Key: core.KeyRight, Alt: alt}, true
	case tcell.KeyHome:
		return core.KeyEvent{Key: core.KeyHome, Alt: alt}, true
	case tcell.KeyEnd:
		return core.KeyEvent{Key: core.KeyEnd, Alt: alt}, true
	case tcell.KeyPgUp:
		return core.KeyEvent{Key: core.KeyPgUp, Alt: alt}, true
	case tcell.KeyPgDn:
		return core.KeyEvent{Key: core.KeyPgDn, Alt: alt}, true
	}
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return core.KeyEvent{
			Key: core.KeyRune, Rune: rune('a' + k - tcell.KeyCtrlA), Ctrl: true, Alt: alt,
		}, true
	}
	return core.KeyEvent{}, false
}

func (d *TcellDriver) style(s core.Style) tcell.Style {
	if ts, ok := d.styles[s]; ok {
		return ts
	}
	ts := tcell.StyleDefault.
		Foreground(tcellColor(s.FG)).
		Background(tcellColor(s.BG)).
		Bold(s.Mods.Has(core.ModBold)).
		Dim(s.Mods.Has(core.ModDim)).
		Italic(s.Mods.Has(core.ModItalic)).
		Underline(s.Mods.Has(core.ModUnderline)).
		Reverse(s.Mods.Has(core.ModReverse))
	d.styles[s] = ts
	return ts
}

func tcellColor(c core.Color) tcell.Color {
	switch c.Mode {
	case core.ColorModeANSI:
		return tcell.PaletteColor(int(c.Value))
	case core.ColorModeRGB:
		r, g, b := c.RGBParts()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}
