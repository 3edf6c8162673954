// Package config loads style presets for difftext.
//
// Presets are read from TOML or YAML files, chosen by extension, and may be
// overridden by environment variables:
//
//	┌─────────────────────────────┐
//	│  2. Environment Variables   │  ← DIFFTEXT_<STYLE>_<FIELD>
//	├─────────────────────────────┤
//	│  1. Preset file + includes  │  ← styles.toml / styles.yaml
//	└─────────────────────────────┘
//
// A preset file holds a table of named styles:
//
//	include = ["common.toml"]
//
//	[styles.price]
//	kind = "currency"
//	type = "decimal"
//	currency = "EUR"
//	locale = "de"
//	min = 0
//
//	[styles.phone]
//	kind = "pattern"
//	pattern = "+# (###) ###-##-##"
//	placeholders = { "#" = "digit" }
//
// Included files are merged below the including file.
package config
