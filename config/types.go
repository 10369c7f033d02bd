// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed access to sections. Values arrive from encoding/json,
// so numbers are float64 and anything may be a string a user typed; the
// getters coerce rather than fail, falling back to the default.

package config

import "strconv"

// Section returns the named section, or nil when the config or the
// section is missing. A nil Section is safe to read from: every getter
// returns its default.
func (c Config) Section(name string) Section {
	if c == nil {
		return nil
	}
	return c[name]
}

// Defaults fills a named section with defaults, creating it if needed.
// Existing keys are never overwritten.
func (c Config) Defaults(name string, defaults Section) {
	if c == nil || defaults == nil {
		return
	}
	section := c[name]
	if section == nil {
		section = make(Section, len(defaults))
		c[name] = section
	}
	section.Defaults(defaults)
}

// Defaults fills missing keys, never overwriting existing ones.
func (s Section) Defaults(defaults Section) {
	if s == nil {
		return
	}
	for key, value := range defaults {
		if _, ok := s[key]; !ok {
			s[key] = value
		}
	}
}

// GetString returns the string under key, or def.
func (s Section) GetString(key, def string) string {
	if val, ok := s[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return def
}

// GetInt returns the integer under key, or def. JSON numbers arrive as
// float64 and are truncated; numeric strings parse.
func (s Section) GetInt(key string, def int) int {
	switch v := s[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

// GetBool returns the boolean under key, or def. Strings parse with
// strconv; numbers are true when non-zero.
func (s Section) GetBool(key string, def bool) bool {
	switch v := s[key].(type) {
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return def
}
