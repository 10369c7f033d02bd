// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/doc.go
// Summary: Package documentation for the widget catalog.

// Package widgets is the widget catalog for texelview: small value
// types that draw themselves into a frame region. A widget holds no
// state between frames; the application re-describes the ones it wants
// on every View pass, which keeps the catalog free of identity,
// focus-tracking, and event plumbing.
//
// Every widget follows the same shape: a constructor, chainable
// configuration methods that return the modified value, and a
// Render(frame, area) method. Style bundles (ListStyle, PanelStyle, …)
// resolve their tokens from a theme.Theme with hard-coded fallbacks, so
// rendering works with a sparse theme or none at all.
package widgets
