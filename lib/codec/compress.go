// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// Compress LZ4 block-compresses data. When the result would not be
// smaller than the input, Compress returns data unchanged and false;
// callers store that flag next to the bytes and hand it back to
// [Decompress].
func Compress(data []byte) ([]byte, bool) {
	if len(data) == 0 {
		return data, false
	}
	destination := make([]byte, lz4.CompressBlockBound(len(data)))
	written, err := lz4.CompressBlock(data, destination, nil)
	if err != nil || written == 0 || written >= len(data) {
		return data, false
	}
	return destination[:written], true
}

// Decompress reverses [Compress]. The uncompressedSize must match the
// original length exactly.
func Decompress(data []byte, compressed bool, uncompressedSize int) ([]byte, error) {
	if !compressed {
		if len(data) != uncompressedSize {
			return nil, fmt.Errorf("uncompressed block: size %d does not match expected %d",
				len(data), uncompressedSize)
		}
		return data, nil
	}
	if uncompressedSize < 0 {
		return nil, fmt.Errorf("lz4 decompress: negative size %d", uncompressedSize)
	}
	destination := make([]byte, uncompressedSize)
	read, err := lz4.UncompressBlock(data, destination)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	if read != uncompressedSize {
		return nil, fmt.Errorf("lz4 decompress: got %d bytes, expected %d", read, uncompressedSize)
	}
	return destination, nil
}
