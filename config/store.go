// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load logic for the config store.

package config

import "log"

// loadSystemLocked reads the user file and fills missing keys from the
// embedded defaults. The file is never created here; only SaveSystem
// writes it.
func loadSystemLocked() error {
	path, err := Path()
	if err != nil {
		log.Printf("Config: Failed to resolve config path: %v", err)
		system = defaultConfig()
		return nil
	}

	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log.Printf("Config: Failed to read config %s: %v", path, readErr)
		cfg = nil
	}
	if cfg == nil {
		cfg = make(Config)
	}
	applyDefaults(cfg)

	system = cfg
	if readErr == nil && exists {
		log.Printf("Config: Loaded config from %s", path)
	}
	return readErr
}
