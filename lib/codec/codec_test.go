// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"
)

type sampleEntry struct {
	URL   string `cbor:"url"`
	ETag  string `cbor:"etag,omitempty"`
	Count int    `cbor:"count"`
}

func TestMarshalDeterministic(t *testing.T) {
	entry := map[string]any{"zeta": 1, "alpha": "two", "mid": []int{3}}

	first, err := Marshal(entry)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	for range 10 {
		again, err := Marshal(entry)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("deterministic encoding violated: %x != %x", first, again)
		}
	}
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	data, err := Marshal(map[string]any{"url": "http://x/schedule.json", "count": 2, "extra": true})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded sampleEntry
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.URL != "http://x/schedule.json" || decoded.Count != 2 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	var decoded sampleEntry
	if err := Unmarshal([]byte{0xFF, 0xFE, 0xFD}, &decoded); err == nil {
		t.Error("Unmarshal should reject invalid CBOR")
	}
}

func TestCompressRoundtrip(t *testing.T) {
	body := []byte(strings.Repeat(`{"points":"12","rebounds":"4"},`, 200))

	packed, compressed := Compress(body)
	if !compressed {
		t.Fatal("repetitive JSON should compress")
	}
	if len(packed) >= len(body) {
		t.Errorf("compressed size %d not smaller than %d", len(packed), len(body))
	}

	restored, err := Decompress(packed, compressed, len(body))
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(restored, body) {
		t.Error("roundtrip mismatch")
	}
}

func TestCompressIncompressibleReturnsInput(t *testing.T) {
	body := []byte("{}")
	packed, compressed := Compress(body)
	if compressed {
		t.Fatal("two-byte input should not compress")
	}
	if !bytes.Equal(packed, body) {
		t.Errorf("packed = %q, want input unchanged", packed)
	}
	restored, err := Decompress(packed, false, len(body))
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(restored, body) {
		t.Errorf("restored = %q", restored)
	}
}

func TestDecompressSizeMismatch(t *testing.T) {
	if _, err := Decompress([]byte("abc"), false, 4); err == nil {
		t.Error("expected size mismatch error for stored block")
	}

	body := []byte(strings.Repeat("abcd", 100))
	packed, compressed := Compress(body)
	if !compressed {
		t.Fatal("expected compression")
	}
	if _, err := Decompress(packed, true, len(body)-1); err == nil {
		t.Error("expected error for wrong uncompressed size")
	}
}
