// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load logic for the config store. A missing file is not an
// error: defaults are applied and written so the user has a starter
// document to edit.

package config

import "log"

func loadSystemLocked() error {
	path, err := systemConfigPath()
	if err != nil {
		log.Printf("Config: Failed to resolve system config path: %v", err)
		system = make(Config)
		applySystemDefaults(system)
		return err
	}

	cfg := make(Config)
	exists, readErr := readJSON(path, &cfg)
	if readErr != nil {
		log.Printf("Config: Failed to read system config %s: %v", path, readErr)
		cfg = make(Config)
	}

	applySystemDefaults(cfg)
	if !exists {
		if err := writeJSON(path, cfg); err != nil {
			log.Printf("Config: Failed to write default system config: %v", err)
			if readErr == nil {
				readErr = err
			}
		}
	}

	system = cfg
	if readErr == nil && exists {
		log.Printf("Config: Loaded system config from %s", path)
	}
	return readErr
}

func loadAppLocked(name string) (Section, error) {
	path, err := appConfigPath(name)
	if err != nil {
		return nil, err
	}

	cfg := make(Section)
	exists, readErr := readJSON(path, &cfg)
	if readErr != nil {
		log.Printf("Config: Failed to read app config %s: %v", path, readErr)
		cfg = make(Section)
	}

	applyAppDefaults(name, cfg)
	if !exists {
		if err := writeJSON(path, cfg); err != nil {
			log.Printf("Config: Failed to write default app config: %v", err)
			if readErr == nil {
				readErr = err
			}
		}
	}

	if readErr == nil && exists {
		log.Printf("Config: Loaded app %q config from %s", name, path)
	}
	return cfg, readErr
}
