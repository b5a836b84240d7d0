// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package feedcache

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest is a 32-byte BLAKE3 keyed hash of a feed body.
type Digest [32]byte

// bodyDomainKey separates feed body digests from any other BLAKE3 use.
// The bytes are the ASCII domain name, zero-padded to 32.
var bodyDomainKey = [32]byte{
	'n', 'b', 'a', 's', 'c', 'o', 'r', 'e', 's', '.', 'f', 'e', 'e', 'd', '.',
	'b', 'o', 'd', 'y', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Sum returns the digest of body.
func Sum(body []byte) Digest {
	hasher, err := blake3.NewKeyed(bodyDomainKey[:])
	if err != nil {
		panic("feedcache: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(body)
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// IsZero reports whether d is the zero digest, which no body hashes to
// in practice and which marks "unknown".
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// String returns the full hex encoding.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Short returns the first 12 hex characters, for log lines.
func (d Digest) Short() string {
	return hex.EncodeToString(d[:6])
}
