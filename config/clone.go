// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/clone.go
// Summary: Copy helpers so callers can edit a config without touching the
// shared store.

package config

// Clone returns a copy of cfg with every section copied as well. Values
// inside a section are scalars in table.json, so one level is enough.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	out := make(Config, len(cfg))
	for name, raw := range cfg {
		if section := asSection(raw); section != nil {
			out[name] = cloneSection(section)
			continue
		}
		out[name] = raw
	}
	return out
}

func cloneSection(s Section) Section {
	out := make(Section, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// asSection returns raw as a Section when it is a JSON object.
func asSection(raw interface{}) Section {
	switch v := raw.(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}
