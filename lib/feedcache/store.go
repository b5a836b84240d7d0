// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package feedcache

import (
	"context"
	"sync"
	"time"
)

// Entry is one cached feed response.
type Entry struct {
	URL          string
	ETag         string
	LastModified string
	Body         []byte
	Digest       Digest
	FetchedAt    time.Time
}

// HasValidators reports whether the entry can back a conditional GET.
func (e *Entry) HasValidators() bool {
	return e.ETag != "" || e.LastModified != ""
}

// Store persists entries by URL. Implementations are safe for
// concurrent use. Get reports a miss as (Entry{}, false, nil); errors
// are reserved for a store that could not be reached, and callers treat
// them as a miss after logging.
type Store interface {
	Get(ctx context.Context, url string) (Entry, bool, error)
	Put(ctx context.Context, entry Entry) error
}

// MemoryStore is an in-process Store with no eviction. It lives for
// the duration of the feed client.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

func (store *MemoryStore) Get(_ context.Context, url string) (Entry, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	entry, ok := store.entries[url]
	return entry, ok, nil
}

// Put stores entry, filling in its digest when unset.
func (store *MemoryStore) Put(_ context.Context, entry Entry) error {
	if entry.Digest.IsZero() {
		entry.Digest = Sum(entry.Body)
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	store.entries[entry.URL] = entry
	return nil
}

// Len returns the number of cached URLs.
func (store *MemoryStore) Len() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.entries)
}
