// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports what build of nbascores is running, for
// --version and for the User-Agent sent to the feed server.
//
// Release builds stamp the commit, dirty flag, and build time with
// -ldflags -X. Development builds leave them at their defaults, and
// [Info] then reads the revision the Go toolchain records in the
// binary's build info.
package version
