// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbafeed

import (
	"context"
	"time"

	"github.com/bureau-foundation/nbascores/lib/feedcache"
)

// Fetcher retrieves raw feed documents.
type Fetcher interface {
	Fetch(ctx context.Context, resource Resource) (Payload, error)
}

// Payload is a fetched feed document.
type Payload struct {
	Body   []byte
	Digest feedcache.Digest

	// Location is the URL or file path the body came from.
	Location string

	// NotModified is true when the server answered 304 and Body is the
	// cached copy.
	NotModified bool

	FetchedAt time.Time
}
