// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texelview configuration and app data.

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelview"), nil
}

func systemConfigPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, systemConfigName), nil
}

func appConfigPath(app string) (string, error) {
	if app == "" {
		return "", fmt.Errorf("app name is required")
	}
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "apps", app, "config.json"), nil
}

// ThemePath resolves a theme name to its document under the config
// dir's themes/ directory.
func ThemePath(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("theme name is required")
	}
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "themes", name+".json"), nil
}

// AppDataPath resolves a data file that lives beside an app's config,
// creating the app directory if needed.
func AppDataPath(app, file string) (string, error) {
	if app == "" || file == "" {
		return "", fmt.Errorf("app and file names are required")
	}
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, "apps", app)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, file), nil
}
