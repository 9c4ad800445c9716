// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Applies embedded defaults to a loaded configuration.

package config

import "log"

// applyDefaults registers every embedded default section without touching
// keys the user already set.
func applyDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	def, err := embeddedDefaults()
	if err != nil {
		log.Printf("Config: Embedded defaults unusable: %v", err)
		return
	}
	for name := range def {
		if section := def.Section(name); section != nil {
			cfg.RegisterDefaults(name, section)
		}
	}
}
