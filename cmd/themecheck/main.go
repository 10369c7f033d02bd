// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/themecheck/main.go
// Summary: Validates a theme document and prints its token table, or
// the exact parse failure. Exit status 1 on a rejected document.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: themecheck <theme.json>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	path := flag.Arg(0)
	th, err := theme.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "themecheck: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: %d tokens\n", path, th.Len())
	for _, token := range th.Tokens() {
		style, _ := th.Style(token)
		fmt.Printf("  %-28s %s\n", token, describeStyle(style))
	}
}

func describeStyle(s core.Style) string {
	out := "fg=" + describeColor(s.FG) + " bg=" + describeColor(s.BG)
	if mods := describeMods(s.Mods); mods != "" {
		out += " " + mods
	}
	return out
}

func describeColor(c core.Color) string {
	switch c.Mode {
	case core.ColorModeANSI:
		return fmt.Sprintf("ansi(%d)", c.Value)
	case core.ColorModeRGB:
		r, g, b := c.RGBParts()
		return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
	default:
		return "default"
	}
}

func describeMods(m core.Modifier) string {
	names := []struct {
		flag core.Modifier
		name string
	}{
		{core.ModBold, "bold"},
		{core.ModDim, "dim"},
		{core.ModItalic, "italic"},
		{core.ModUnderline, "underline"},
		{core.ModReverse, "reverse"},
	}
	out := ""
	for _, n := range names {
		if m.Has(n.flag) {
			if out != "" {
				out += ","
			}
			out += n.name
		}
	}
	return out
}
