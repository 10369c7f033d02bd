// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package core is the texelview runtime: an immediate-mode terminal UI
// kernel. An application describes the whole screen each tick by drawing
// into a Frame; the layout resolver partitions the screen into named
// zones; a backend diffs consecutive frames into minimal terminal writes;
// and the scheduler drives the app's Update/View cycle from events using
// an Elm-style command algebra.
//
// The package is deliberately free of terminal I/O. Drivers live in the
// backend package; widgets in the widgets package.
package core
