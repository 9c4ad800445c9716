// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/embedded.go
// Summary: Loads and caches parsed defaults from the embedded JSON file.
// defaults/table.json is the single source of truth.

package config

import (
	"encoding/json"
	"sync"

	"github.com/framegrace/texeltable/defaults"
)

var (
	embeddedOnce sync.Once
	embedded     Config
	embeddedErr  error
)

// embeddedDefaults returns the parsed defaults, cached after the first call.
func embeddedDefaults() (Config, error) {
	embeddedOnce.Do(func() {
		var cfg Config
		if err := json.Unmarshal(defaults.TableConfig(), &cfg); err != nil {
			embeddedErr = err
			return
		}
		embedded = cfg
	})
	return embedded, embeddedErr
}

// defaultConfig returns a copy of the embedded defaults.
func defaultConfig() Config {
	cfg, err := embeddedDefaults()
	if err != nil || cfg == nil {
		return make(Config)
	}
	return Clone(cfg)
}
