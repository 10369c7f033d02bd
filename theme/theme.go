// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme.go
// Summary: Immutable token-to-style table loaded from a theme document.
// Usage: th, err := theme.Load("dark.json"); st := th.StyleOr("list.selected", fallback)

// Package theme maps style tokens such as "list.selected" to concrete
// styles. A theme is loaded from a strict JSON document: any unknown
// field, unknown modifier, or malformed color rejects the whole file,
// so a theme is either fully applied or not at all.
package theme

import (
	"sort"

	"github.com/framegrace/texelview/core"
)

type Theme struct {
	tokens map[string]core.Style
}

// Empty returns a theme with no tokens; every lookup falls through.
func Empty() *Theme {
	return &Theme{tokens: map[string]core.Style{}}
}

// Style returns the style bound to token, reporting whether the token
// exists in the document.
func (t *Theme) Style(token string) (core.Style, bool) {
	st, ok := t.tokens[token]
	return st, ok
}

// StyleOr resolves token, falling back when the theme does not define
// it. Widgets resolve every token through this so a sparse theme still
// renders.
func (t *Theme) StyleOr(token string, fallback core.Style) core.Style {
	if st, ok := t.tokens[token]; ok {
		return st
	}
	return fallback
}

// Tokens lists the defined token names in sorted order.
func (t *Theme) Tokens() []string {
	names := make([]string, 0, len(t.tokens))
	for name := range t.tokens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of defined tokens.
func (t *Theme) Len() int { return len(t.tokens) }
