// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package nbafeed fetches and decodes the league's JSON feeds.
//
// A [Fetcher] turns a [Resource] (which feed, for which season, date,
// and game) into raw bytes. [HTTPFetcher] talks to the feed server with
// per-request timeouts, gzip transport, conditional GETs backed by a
// [feedcache.Store], and bounded exponential backoff for transient
// failures. [DirFetcher] reads the same resources from a directory for
// offline use and fixtures.
//
// [Client] sits on top of a Fetcher and hands back decoded values from
// lib/nba. It also serves as the box-score decoder's roster lookup: the
// league players feed is fetched at most once per process, with
// concurrent lookups sharing the one request.
//
// Transport failures are [*FetchError] values naming the operation and
// URL; decode failures wrap [*nba.DecodeError].
package nbafeed
