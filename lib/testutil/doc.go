// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for nbascores packages.
//
// [RequireReceive] wraps the select-with-timeout pattern so tests
// never block forever on a channel.
//
// [FeedServer] serves canned feed payloads over httptest and records
// how often each path was requested. [FeedDir] writes payloads into a
// temporary directory laid out like an offline feed directory.
//
// All helpers call t.Fatalf on failure rather than returning errors.
package testutil
