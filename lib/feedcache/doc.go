// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package feedcache stores fetched feed bodies keyed by URL, together
// with the validators (ETag, Last-Modified) needed for conditional GET
// requests.
//
// A 304 Not Modified answer is only useful if the body it refers to is
// still at hand, so the feed client consults the [Store] before every
// request and writes to it after every 200. Two stores are provided:
//
//   - [MemoryStore] keeps entries for the life of the process, bounded
//     by the number of distinct URLs (a few per game).
//   - [RedisStore] shares entries between nbascores processes through
//     Redis. Entries are CBOR envelopes with an LZ4-compressed body and
//     a BLAKE3 digest that is verified on read; a corrupt entry reads
//     as a miss and is deleted.
//
// Every entry carries the [Digest] of its body so callers can tell a
// changed payload from a re-sent one without comparing bytes.
package feedcache
