// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides the terminal building blocks shared by the
// scoreboard views: the color theme, bar glyph sets and the score-flow
// chart, scrollbars, the change-glow animation, fuzzy matching, and
// ANSI-aware overlay splicing for floating menus.
//
// Nothing here knows about bubbletea's update loop. Views own their
// state and call these helpers from View.
package tui
