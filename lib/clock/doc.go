// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source so that retry
// backoff and refresh scheduling can be tested without sleeping.
//
// Production code holds a Clock field set to Real(). Tests use Fake(),
// which only moves when Advance is called:
//
//	fake := clock.Fake(time.Date(2021, 4, 12, 19, 0, 0, 0, time.UTC))
//	client := nbafeed.NewHTTPFetcher(nbafeed.HTTPConfig{Clock: fake})
//	go client.Fetch(ctx, request)
//	fake.WaitForTimers(1) // the fetcher is now waiting out a backoff
//	fake.Advance(time.Second)
package clock
