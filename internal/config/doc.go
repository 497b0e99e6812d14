// Package config loads contour's settings file.
//
// # Overview
//
// Settings live in a TOML file, ~/.config/contour/config.toml by default.
// Every field is optional and a missing file is not an error: Load returns
// Default() so contour works without any configuration.
//
// # TOML Format
//
//	steps = 200          # resample step count, 1..1048576
//	domain_min = 0.0     # optional output range; both bounds or neither
//	domain_max = 10.0
//	workers = 4          # >1 resamples in parallel
//	poll_seconds = 2     # refresh cadence for HTTP sources
//	log_file = "~/.local/state/contour/contour.log"
//	log_level = "info"   # debug, info, warn, error
//
// Tilde expansion is applied to the config path and to log_file.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Invalid values: steps out of range, a single domain bound, an empty or
//     inverted domain, an unknown log level
//
// Non-positive workers or poll_seconds fall back to the defaults.
package config
