// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli holds the pieces of the nbascores command line shared
// between main and its tests: categorised errors that carry a hint for
// the user, handled exit codes, and the command logger.
//
// Errors from the feed layer are mapped onto categories by [Classify]
// so that main can print one consistent message:
//
//	nbascores: fetch box score for game 0022000780: GET http://...: HTTP 404: not found
//
//	Check the game id with --game or pick another date with -d.
package cli
