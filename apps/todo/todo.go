// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/todo/todo.go
// Summary: SQLite-persisted todo list: a list of items with done marks,
// an input row for new entries, and a status line. Store failures are
// surfaced on the status line instead of killing the loop.

package todo

import (
	"fmt"
	"log"

	"github.com/framegrace/texelview/config"
	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
	"github.com/framegrace/texelview/widgets"
)

// KeyMsg is a key press forwarded from the driver.
type KeyMsg core.KeyEvent

// ResizeMsg reports new frame dimensions.
type ResizeMsg core.ResizeEvent

type mode uint8

const (
	modeList mode = iota
	modeInsert
)

type styleSet struct {
	panel  widgets.PanelStyle
	items  widgets.MultiSelectStyle
	input  widgets.InputStyle
	status widgets.StatusBarStyle
	errs   core.Style
	empty  core.Style
}

// Model is the todo app state. Items mirror the store; every mutation
// writes through before the model copy changes.
type Model struct {
	store  *Store
	styles styleSet

	items []Item
	sel   int

	mode   mode
	input  string
	cursor int

	lastErr string
}

// DataPath resolves the database location beside the app's config.
func DataPath() (string, error) {
	name := config.App("todo").GetString("database", "todo.db")
	return config.AppDataPath("todo", name)
}

// New loads the item list from an open store.
func New(store *Store, th *theme.Theme) (*Model, error) {
	items, err := store.List()
	if err != nil {
		return nil, err
	}
	return &Model{
		store: store,
		styles: styleSet{
			panel:  widgets.PanelStyleFromTheme(th),
			items:  widgets.MultiSelectStyleFromTheme(th),
			input:  widgets.InputStyleFromTheme(th),
			status: widgets.StatusBarStyleFromTheme(th),
			errs:   th.StyleOr("todo.error", core.Style{FG: core.ANSI(203)}),
			empty:  th.StyleOr("todo.empty", core.Style{FG: core.ANSI(244)}),
		},
		items: items,
	}, nil
}

// MapEvent translates driver occurrences into todo messages.
func MapEvent(ev core.Event) (core.Msg, bool) {
	switch ev := ev.(type) {
	case core.KeyEvent:
		return KeyMsg(ev), true
	case core.ResizeEvent:
		return ResizeMsg(ev), true
	}
	return nil, false
}

func (m *Model) Update(msg core.Msg) core.Command {
	if key, ok := msg.(KeyMsg); ok {
		return m.handleKey(core.KeyEvent(key))
	}
	return core.None()
}

func (m *Model) handleKey(ev core.KeyEvent) core.Command {
	if ev.Ctrl && ev.Rune == 'c' {
		return core.Quit()
	}
	if m.mode == modeInsert {
		return m.handleInsertKey(ev)
	}

	switch ev.Key {
	case core.KeyUp:
		m.sel = clamp(m.sel-1, 0, len(m.items)-1)
	case core.KeyDown:
		m.sel = clamp(m.sel+1, 0, len(m.items)-1)
	case core.KeyEnter:
		m.toggle()
	case core.KeyDelete:
		m.remove()
	case core.KeyEsc:
		return core.Quit()
	case core.KeyRune:
		switch ev.Rune {
		case ' ':
			m.toggle()
		case 'a', 'i':
			m.mode = modeInsert
			m.input, m.cursor = "", 0
		case 'd':
			m.remove()
		case 'q':
			return core.Quit()
		}
	}
	return core.None()
}

func (m *Model) handleInsertKey(ev core.KeyEvent) core.Command {
	switch ev.Key {
	case core.KeyEnter:
		m.commit()
		return core.None()
	case core.KeyEsc:
		m.mode = modeList
		return core.None()
	}
	if value, cursor, ok := widgets.ApplyKey(m.input, m.cursor, ev); ok {
		m.input, m.cursor = value, cursor
	}
	return core.None()
}

// commit persists the typed title and appends the stored item.
func (m *Model) commit() {
	title := m.input
	m.mode = modeList
	m.input, m.cursor = "", 0
	if title == "" {
		return
	}
	item, err := m.store.Add(title)
	if err != nil {
		m.fail(err)
		return
	}
	m.lastErr = ""
	m.items = append(m.items, item)
	m.sel = len(m.items) - 1
}

func (m *Model) toggle() {
	if m.sel >= len(m.items) {
		return
	}
	it := &m.items[m.sel]
	if err := m.store.SetDone(it.ID, !it.Done); err != nil {
		m.fail(err)
		return
	}
	m.lastErr = ""
	it.Done = !it.Done
}

func (m *Model) remove() {
	if m.sel >= len(m.items) {
		return
	}
	it := m.items[m.sel]
	if err := m.store.Delete(it.ID); err != nil {
		m.fail(err)
		return
	}
	m.lastErr = ""
	m.items = append(m.items[:m.sel], m.items[m.sel+1:]...)
	m.sel = clamp(m.sel, 0, len(m.items)-1)
}

func (m *Model) fail(err error) {
	log.Printf("Todo: %v", err)
	m.lastErr = err.Error()
}

func (m *Model) View(f *core.Frame) {
	inputRows := 0
	if m.mode == modeInsert {
		inputRows = 1
	}

	lay := core.Split("root", core.Vertical,
		core.NewSlot(core.Fill(), core.Leaf("items")),
		core.NewSlot(core.Fixed(inputRows), core.Leaf("input")),
		core.NewSlot(core.Fixed(1), core.Leaf("status")),
	).Resolve(f.Bounds())

	if area, ok := lay.Area("items"); ok {
		m.viewItems(f, area)
	}
	if area, ok := lay.Area("input"); ok && m.mode == modeInsert {
		widgets.NewInput().
			Value(m.input).
			Cursor(m.cursor).
			Placeholder("new item").
			Focused(true).
			Style(m.styles.input.Base).
			FocusStyle(m.styles.input.Focus).
			PlaceholderStyle(m.styles.input.Placeholder).
			CursorStyle(m.styles.input.Cursor).
			Render(f, area)
	}
	if area, ok := lay.Area("status"); ok {
		left := "a add · space toggle · d delete · q quit"
		style := m.styles.status.Left
		if m.mode == modeInsert {
			left = "enter save · esc cancel"
		}
		if m.lastErr != "" {
			left = m.lastErr
			style = m.styles.errs
		}
		widgets.NewStatusBar().
			Left(left).
			Right(m.progress()).
			Style(m.styles.status.Base).
			LeftStyle(style).
			RightStyle(m.styles.status.Right).
			Render(f, area)
	}
}

func (m *Model) progress() string {
	done := 0
	for _, it := range m.items {
		if it.Done {
			done++
		}
	}
	return fmt.Sprintf("%d/%d done", done, len(m.items))
}

func (m *Model) viewItems(f *core.Frame, area core.Rect) {
	widgets.NewPanel("todo").
		Styles(m.styles.panel).
		Padding(core.Padding{Left: 1, Right: 1}).
		Render(f, area, func(f *core.Frame, inner core.Rect) {
			if len(m.items) == 0 {
				widgets.NewText("nothing to do · press a to add").
					Style(m.styles.empty).
					Render(f, inner)
				return
			}
			labels := make([]string, len(m.items))
			var done []int
			for i, it := range m.items {
				labels[i] = it.Title
				if it.Done {
					done = append(done, i)
				}
			}
			widgets.NewMultiSelect(labels...).
				Selected(done).
				Highlighted(m.sel).
				Focused(m.mode == modeList).
				MaxVisible(inner.Height).
				Style(m.styles.items.Base).
				SelectedStyle(m.styles.items.Selected).
				HighlightStyle(m.styles.items.Highlight).
				MarkerStyle(m.styles.items.Marker).
				Render(f, inner)
		})
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
