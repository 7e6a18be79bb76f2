// Package config loads runtime configuration for the pwimport CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with --config or -c. Files ending in
//     .yaml or .yml are decoded as YAML, anything else as JSON.
//  3. Command-line flags registered by RegisterFlags. Only flags the user
//     actually set override earlier values.
//
// # File schema
//
// Durations use timex.Duration, so "10s" and integer nanoseconds both work:
//
//	{
//	  "store": "sqlite",
//	  "sqlite_path": "/home/me/.pwimport/vault.db",
//	  "store_timeout": "10s",
//	  "preview_rows": 5,
//	  "log_level": "debug"
//	}
//
// Environment variables are not read.
package config
