// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package todo

import (
	"strings"
	"testing"

	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := New(openTestStore(t), theme.Empty())
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func press(m *Model, ev core.KeyEvent) core.Command {
	return m.Update(KeyMsg(ev))
}

func typeText(m *Model, text string) {
	for _, r := range text {
		press(m, core.KeyEvent{Key: core.KeyRune, Rune: r})
	}
}

func addItem(m *Model, title string) {
	press(m, core.KeyEvent{Key: core.KeyRune, Rune: 'a'})
	typeText(m, title)
	press(m, core.KeyEvent{Key: core.KeyEnter})
}

func TestAddItemWritesThrough(t *testing.T) {
	m := newTestModel(t)
	addItem(m, "first task")

	if m.mode != modeList {
		t.Fatal("still in insert mode after enter")
	}
	if len(m.items) != 1 || m.items[0].Title != "first task" {
		t.Fatalf("items = %+v", m.items)
	}

	stored, err := m.store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(stored) != 1 || stored[0].Title != "first task" {
		t.Fatalf("stored = %+v", stored)
	}
}

func TestEmptyInputIsDiscarded(t *testing.T) {
	m := newTestModel(t)
	press(m, core.KeyEvent{Key: core.KeyRune, Rune: 'a'})
	press(m, core.KeyEvent{Key: core.KeyEnter})

	if len(m.items) != 0 {
		t.Fatalf("items = %+v, want none", m.items)
	}
}

func TestEscCancelsInsert(t *testing.T) {
	m := newTestModel(t)
	press(m, core.KeyEvent{Key: core.KeyRune, Rune: 'i'})
	typeText(m, "abandoned")
	press(m, core.KeyEvent{Key: core.KeyEsc})

	if m.mode != modeList || len(m.items) != 0 {
		t.Fatalf("mode=%v items=%+v, want empty list mode", m.mode, m.items)
	}
}

func TestToggleAndDelete(t *testing.T) {
	m := newTestModel(t)
	addItem(m, "one")
	addItem(m, "two")

	m.sel = 0
	press(m, core.KeyEvent{Key: core.KeyRune, Rune: ' '})
	if !m.items[0].Done {
		t.Fatal("item 0 not toggled")
	}

	press(m, core.KeyEvent{Key: core.KeyRune, Rune: 'd'})
	if len(m.items) != 1 || m.items[0].Title != "two" {
		t.Fatalf("after delete items = %+v", m.items)
	}

	stored, _ := m.store.List()
	if len(stored) != 1 || stored[0].Title != "two" {
		t.Fatalf("stored after delete = %+v", stored)
	}
}

func TestSelectionClamps(t *testing.T) {
	m := newTestModel(t)
	addItem(m, "only")

	press(m, core.KeyEvent{Key: core.KeyUp})
	if m.sel != 0 {
		t.Fatalf("sel above top = %d", m.sel)
	}
	press(m, core.KeyEvent{Key: core.KeyDown})
	if m.sel != 0 {
		t.Fatalf("sel past end = %d", m.sel)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)
	if cmd := press(m, core.KeyEvent{Key: core.KeyRune, Rune: 'q'}); cmd.Kind != core.CommandQuit {
		t.Fatalf("q: kind = %v, want quit", cmd.Kind)
	}
	if cmd := press(m, core.KeyEvent{Key: core.KeyRune, Rune: 'c', Ctrl: true}); cmd.Kind != core.CommandQuit {
		t.Fatalf("ctrl+c: kind = %v, want quit", cmd.Kind)
	}
}

func TestViewShowsItemsAndProgress(t *testing.T) {
	m := newTestModel(t)
	addItem(m, "ship it")
	press(m, core.KeyEvent{Key: core.KeyEnter}) // toggle done

	f := core.NewFrame(44, 10)
	m.View(f)

	var screen strings.Builder
	for y := 0; y < 10; y++ {
		for x := 0; x < 44; x++ {
			r, _ := f.CharAt(x, y)
			screen.WriteRune(r)
		}
		screen.WriteByte('\n')
	}
	out := screen.String()
	if !strings.Contains(out, "ship it") {
		t.Fatalf("view missing item title:\n%s", out)
	}
	if !strings.Contains(out, "1/1 done") {
		t.Fatalf("view missing progress:\n%s", out)
	}
}
