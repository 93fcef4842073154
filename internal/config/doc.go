// Package config handles configuration loading and defaults.
//
// Configuration is layered in priority order:
// 1. Built-in defaults
// 2. A TOML config file, only when one is named with -config
// 3. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence. There
// is no config file discovery and no environment lookup: without -config the
// formatter's behavior depends only on its input and flags.
//
// Config files are validated against an embedded JSON Schema before they are
// decoded, so misspelled keys are reported instead of silently ignored.
package config
