// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package todo

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(filepath.Join(t.TempDir(), "todo.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRoundtrip(t *testing.T) {
	s := openTestStore(t)

	first, err := s.Add("write the runbook")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := s.Add("rotate the keys")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("ids not distinct: %d", first.ID)
	}

	if err := s.SetDone(first.ID, true); err != nil {
		t.Fatalf("set done: %v", err)
	}

	items, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("list len = %d, want 2", len(items))
	}
	if items[0].ID != first.ID || !items[0].Done {
		t.Fatalf("first item = %+v, want id %d done", items[0], first.ID)
	}
	if items[1].Title != "rotate the keys" || items[1].Done {
		t.Fatalf("second item = %+v, want open 'rotate the keys'", items[1])
	}
}

func TestStoreDelete(t *testing.T) {
	s := openTestStore(t)

	kept, _ := s.Add("keep")
	gone, _ := s.Add("drop")
	if err := s.Delete(gone.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	items, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].ID != kept.ID {
		t.Fatalf("after delete items = %+v, want only %d", items, kept.ID)
	}
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.db")

	s, err := OpenStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.Add("survives reopen"); err != nil {
		t.Fatalf("add: %v", err)
	}
	s.Close()

	reopened, err := OpenStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	items, err := reopened.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Title != "survives reopen" {
		t.Fatalf("reopened items = %+v", items)
	}
}
