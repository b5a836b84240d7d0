// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbafeed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/nbascores/lib/clock"
	"github.com/bureau-foundation/nbascores/lib/feedcache"
)

// DirFetcher reads feed documents from a directory:
//
//	schedule.json
//	players.json
//	{date}_{gameId}_boxscore.json
//	{date}_{gameId}_pbp.json
//
// Files may contain comments and trailing commas; they are normalised
// to strict JSON before decoding.
type DirFetcher struct {
	directory string
	clock     clock.Clock
}

// NewDirFetcher returns a DirFetcher reading from directory, which must
// exist.
func NewDirFetcher(directory string, clk clock.Clock) (*DirFetcher, error) {
	info, err := os.Stat(directory)
	if err != nil {
		return nil, fmt.Errorf("feed directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("feed directory %s is not a directory", directory)
	}
	if clk == nil {
		clk = clock.Real()
	}
	return &DirFetcher{directory: directory, clock: clk}, nil
}

func (fetcher *DirFetcher) Fetch(ctx context.Context, resource Resource) (Payload, error) {
	path := filepath.Join(fetcher.directory, resource.FileName())
	if err := resource.validate(); err != nil {
		return Payload{}, &FetchError{Operation: resource.Operation(), URL: path, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return Payload{}, &FetchError{Operation: resource.Operation(), URL: path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Payload{}, &FetchError{Operation: resource.Operation(), URL: path, Err: err}
	}
	body := jsonc.ToJSON(data)
	return Payload{
		Body:      body,
		Digest:    feedcache.Sum(body),
		Location:  path,
		FetchedAt: fetcher.clock.Now(),
	}, nil
}
