// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// parley.
//
// Configuration is read from ~/.parley/config.toml (or config.json as a
// fallback), overlaid with PARLEY_* environment variables, then clamped to
// safe bounds. All options affect rendering and storage only; message
// tokenization has no configuration surface.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    // fall back to config.Default()
//	}
package config
