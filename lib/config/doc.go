// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for nbascores.
//
// Configuration comes from at most one file, named by the --config flag
// (via [LoadFile]) or the NBASCORES_CONFIG environment variable (via
// [Load]). There is no ~/.config discovery and no file search. Without
// either, [Load] returns [Default] unchanged: every setting has a
// working default, so a config file is an optimisation, not a
// requirement.
//
// After loading, ${HOME} and ${VAR:-default} patterns in path fields
// are expanded. Command-line flags override file values; that merge
// happens in cmd/nbascores, not here.
//
// Key exports:
//
//   - [Config] -- master struct with Feed, Cache, UI, and Log sections
//   - [Default] -- returns a Config with the built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Validate] -- range and format checks
//
// This package depends on no other nbascores packages.
package config
