// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP I/O and network error helpers for the
// feed client.
//
// Response helpers bound every body read at MaxResponseSize so a
// misbehaving server cannot exhaust memory. The largest legitimate
// payload, the league-wide players feed, is a few megabytes.
//
// IsRetryableNetworkError classifies transport failures that are worth
// another attempt.
package netutil

import (
	"fmt"
	"io"
	"strings"
)

// MaxResponseSize is the bound on feed response body reads: 64 MB.
const MaxResponseSize int64 = 64 << 20

// maxErrorBody bounds how much of an error body is quoted back in an
// error message.
const maxErrorBody = 512

// ReadResponse reads a response body up to MaxResponseSize bytes. A
// body that reaches the limit is reported as an error rather than
// silently truncated, since a truncated JSON document only fails later
// with a confusing parse error.
func ReadResponse(body io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, MaxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if int64(len(data)) > MaxResponseSize {
		return nil, fmt.Errorf("response body exceeds %d bytes", MaxResponseSize)
	}
	return data, nil
}

// ErrorBody reads an HTTP error response body and returns a short,
// single-line excerpt for diagnostic messages. Read errors are ignored.
func ErrorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, maxErrorBody+1))
	text := strings.Join(strings.Fields(string(data)), " ")
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody] + "..."
	}
	return text
}
