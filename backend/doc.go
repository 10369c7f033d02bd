// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend realizes core frames on a terminal and feeds terminal
// input back to the program loop. Two drivers are provided: an ANSI
// driver that diffs frames into minimal escape sequences on a raw-mode
// tty, and a tcell driver for environments where tcell's terminfo
// handling is preferable. Both satisfy core.Driver.
package backend
