// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded default configuration file.

package defaults

import _ "embed"

//go:embed table.json
var tableConfig []byte

// TableConfig returns the embedded table.json defaults.
func TableConfig() []byte {
	return tableConfig
}
