// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/todo/store.go
// Summary: SQLite persistence for todo items via database/sql and the
// modernc driver. The store holds business data only; UI state (the
// selection, the input buffer) never touches the database.

package todo

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const storeSchema = `
CREATE TABLE IF NOT EXISTS items (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT    NOT NULL,
	done       INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL
);
`

// Item is one todo entry as stored.
type Item struct {
	ID        int64
	Title     string
	Done      bool
	CreatedAt time.Time
}

// Store wraps the items table. Safe for the single-threaded program
// loop; no internal locking.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("todo: open store %s: %w", path, err)
	}
	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("todo: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a new open item and returns it with its assigned ID.
func (s *Store) Add(title string) (Item, error) {
	now := time.Now()
	res, err := s.db.Exec(
		"INSERT INTO items (title, done, created_at) VALUES (?, 0, ?)",
		title, now.Unix(),
	)
	if err != nil {
		return Item{}, fmt.Errorf("todo: add item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Item{}, fmt.Errorf("todo: add item: %w", err)
	}
	return Item{ID: id, Title: title, CreatedAt: now}, nil
}

// SetDone updates one item's completion flag.
func (s *Store) SetDone(id int64, done bool) error {
	flag := 0
	if done {
		flag = 1
	}
	if _, err := s.db.Exec("UPDATE items SET done = ? WHERE id = ?", flag, id); err != nil {
		return fmt.Errorf("todo: set done %d: %w", id, err)
	}
	return nil
}

// Delete removes one item.
func (s *Store) Delete(id int64) error {
	if _, err := s.db.Exec("DELETE FROM items WHERE id = ?", id); err != nil {
		return fmt.Errorf("todo: delete %d: %w", id, err)
	}
	return nil
}

// List returns every item, oldest first.
func (s *Store) List() ([]Item, error) {
	rows, err := s.db.Query("SELECT id, title, done, created_at FROM items ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("todo: list items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		var done int
		var created int64
		if err := rows.Scan(&it.ID, &it.Title, &done, &created); err != nil {
			return nil, fmt.Errorf("todo: scan item: %w", err)
		}
		it.Done = done != 0
		it.CreatedAt = time.Unix(created, 0)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("todo: list items: %w", err)
	}
	return items, nil
}
