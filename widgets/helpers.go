// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/helpers.go
// Summary: Shared text-shaping helpers: truncation, alignment, wrapping,
// scroll-window math. Widths are display columns via go-runewidth, so
// double-width runes budget two columns.

package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelview/core"
)

type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

type WrapMode uint8

const (
	WrapWord WrapMode = iota
	WrapChar
	WrapNone
)

func displayWidth(s string) int { return runewidth.StringWidth(s) }

// truncateToWidth keeps the longest prefix of s that fits in width
// display columns.
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > width {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String()
}

// padLine truncates s to width and pads the remainder with spaces, so
// the result always covers exactly width columns.
func padLine(s string, width int) string {
	clipped := truncateToWidth(s, width)
	if pad := width - displayWidth(clipped); pad > 0 {
		return clipped + strings.Repeat(" ", pad)
	}
	return clipped
}

func alignText(text string, width int, align Alignment) string {
	clipped := truncateToWidth(text, width)
	free := width - displayWidth(clipped)
	if free < 0 {
		free = 0
	}
	var left int
	switch align {
	case AlignCenter:
		left = free / 2
	case AlignRight:
		left = free
	}
	return strings.Repeat(" ", left) + clipped + strings.Repeat(" ", free-left)
}

// splitLines splits on newlines the way terminals think about lines: a
// trailing newline ends the last line instead of opening an empty one,
// and a \r left by CRLF input is stripped.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func wrapLines(text string, width int, mode WrapMode) []string {
	if width <= 0 {
		return nil
	}
	switch mode {
	case WrapNone:
		lines := splitLines(text)
		out := make([]string, len(lines))
		for i, line := range lines {
			out[i] = truncateToWidth(line, width)
		}
		return out
	case WrapChar:
		var out []string
		for _, line := range splitLines(text) {
			out = append(out, chunkLine(line, width)...)
		}
		return out
	default:
		var out []string
		for _, source := range splitLines(text) {
			if source == "" {
				out = append(out, "")
				continue
			}
			current := ""
			for _, word := range strings.Fields(source) {
				wordLen := displayWidth(word)
				if wordLen > width {
					if current != "" {
						out = append(out, current)
						current = ""
					}
					out = append(out, chunkLine(word, width)...)
					continue
				}
				sep := 0
				if current != "" {
					sep = 1
				}
				if displayWidth(current)+sep+wordLen > width {
					out = append(out, current)
					current = ""
				}
				if current != "" {
					current += " "
				}
				current += word
			}
			if current != "" {
				out = append(out, current)
			}
		}
		return out
	}
}

func chunkLine(line string, width int) []string {
	if line == "" {
		return []string{""}
	}
	var out []string
	var b strings.Builder
	used := 0
	for _, r := range line {
		rw := runewidth.RuneWidth(r)
		if used+rw > width && b.Len() > 0 {
			out = append(out, b.String())
			b.Reset()
			used = 0
		}
		b.WriteRune(r)
		used += rw
	}
	if b.Len() > 0 {
		out = append(out, b.String())
	}
	return out
}

// scrollStart returns the first visible index of a viewport-sized
// window over length items that keeps selected in view, preferring the
// smallest scroll that shows it.
func scrollStart(selected, viewport, length int) int {
	if viewport <= 0 || length <= 0 {
		return 0
	}
	maxStart := length - viewport
	if maxStart < 0 {
		maxStart = 0
	}
	follow := selected + 1 - viewport
	if follow < 0 {
		follow = 0
	}
	if follow > maxStart {
		return maxStart
	}
	return follow
}

func orStyle(opt *core.Style, fallback core.Style) core.Style {
	if opt != nil {
		return *opt
	}
	return fallback
}

// clampIndex bounds idx into [0, length); callers guarantee length > 0.
func clampIndex(idx, length int) int {
	if idx < 0 {
		return 0
	}
	if idx >= length {
		return length - 1
	}
	return idx
}
