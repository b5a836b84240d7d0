// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding configuration and block
// compression used for data nbascores stores outside the process.
//
// The upstream feeds speak JSON, and lib/nba owns that boundary. Cached
// feed entries (lib/feedcache) are written as CBOR envelopes whose body
// is LZ4 block-compressed, so that a shared cache such as Redis holds
// compact, deterministic bytes:
//
//	data, err := codec.Marshal(entry)
//	err = codec.Unmarshal(data, &entry)
//
//	packed, compressed := codec.Compress(body)
//	body, err := codec.Decompress(packed, compressed, originalSize)
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same logical value always encodes to identical bytes.
package codec
