// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package feedcache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bureau-foundation/nbascores/lib/codec"
)

// KeyPrefix namespaces every key RedisStore writes.
const KeyPrefix = "nbascores:feed:"

// RedisClient is the subset of the go-redis client RedisStore uses.
// *redis.Client satisfies it.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore is a Store backed by Redis.
type RedisStore struct {
	client RedisClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisStore returns a RedisStore writing entries with the given
// TTL. A nil logger discards log output.
func NewRedisStore(client RedisClient, ttl time.Duration, logger *slog.Logger) *RedisStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RedisStore{client: client, ttl: ttl, logger: logger}
}

// DialRedis parses a redis:// URL, connects, and verifies the
// connection with PING.
func DialRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}
	client := redis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", options.Addr, err)
	}
	return client, nil
}

// envelope is the stored form of an Entry.
type envelope struct {
	URL          string `cbor:"url"`
	ETag         string `cbor:"etag,omitempty"`
	LastModified string `cbor:"last_modified,omitempty"`
	FetchedAt    int64  `cbor:"fetched_at"`
	Size         int    `cbor:"size"`
	Compressed   bool   `cbor:"compressed,omitempty"`
	Body         []byte `cbor:"body"`
	Digest       Digest `cbor:"digest"`
}

func (store *RedisStore) key(url string) string {
	return KeyPrefix + url
}

func (store *RedisStore) Get(ctx context.Context, url string) (Entry, bool, error) {
	data, err := store.client.Get(ctx, store.key(url)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("reading feed cache for %s: %w", url, err)
	}

	entry, err := decodeEnvelope(data)
	if err != nil || entry.URL != url {
		store.logger.Warn("discarding corrupt feed cache entry",
			"url", url,
			"error", err,
		)
		store.client.Del(ctx, store.key(url))
		return Entry{}, false, nil
	}
	return entry, true, nil
}

func (store *RedisStore) Put(ctx context.Context, entry Entry) error {
	if entry.Digest.IsZero() {
		entry.Digest = Sum(entry.Body)
	}
	data, err := encodeEnvelope(entry)
	if err != nil {
		return err
	}
	if err := store.client.Set(ctx, store.key(entry.URL), data, store.ttl).Err(); err != nil {
		return fmt.Errorf("writing feed cache for %s: %w", entry.URL, err)
	}
	return nil
}

func encodeEnvelope(entry Entry) ([]byte, error) {
	body, compressed := codec.Compress(entry.Body)
	data, err := codec.Marshal(envelope{
		URL:          entry.URL,
		ETag:         entry.ETag,
		LastModified: entry.LastModified,
		FetchedAt:    entry.FetchedAt.UnixNano(),
		Size:         len(entry.Body),
		Compressed:   compressed,
		Body:         body,
		Digest:       entry.Digest,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding feed cache entry: %w", err)
	}
	return data, nil
}

func decodeEnvelope(data []byte) (Entry, error) {
	var stored envelope
	if err := codec.Unmarshal(data, &stored); err != nil {
		return Entry{}, fmt.Errorf("decoding envelope: %w", err)
	}
	body, err := codec.Decompress(stored.Body, stored.Compressed, stored.Size)
	if err != nil {
		return Entry{}, err
	}
	if Sum(body) != stored.Digest {
		return Entry{}, fmt.Errorf("digest mismatch for %s", stored.URL)
	}
	return Entry{
		URL:          stored.URL,
		ETag:         stored.ETag,
		LastModified: stored.LastModified,
		Body:         body,
		Digest:       stored.Digest,
		FetchedAt:    time.Unix(0, stored.FetchedAt),
	}, nil
}
