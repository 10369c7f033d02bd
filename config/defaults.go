// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for system and app configuration files. Keys
// listed here are exactly the ones the binaries and demo apps read.

package config

func applySystemDefaults(cfg Config) {
	cfg.Defaults("general", Section{
		"default_app": "dashboard",
		"theme":       "",
	})
	cfg.Defaults("render", Section{
		"driver": "ansi",
	})
}

func applyAppDefaults(app string, cfg Section) {
	switch app {
	case "dashboard":
		cfg.Defaults(Section{
			"tick_ms": 1000,
		})
	case "sourceview":
		cfg.Defaults(Section{
			"chroma_style": "monokai",
			"line_numbers": true,
		})
	case "todo":
		cfg.Defaults(Section{
			"database": "todo.db",
		})
	}
}
