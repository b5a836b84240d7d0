// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbafeed

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/bureau-foundation/nbascores/lib/netutil"
)

// FetchError is a transport failure. StatusCode is zero when no HTTP
// response was received (network errors, missing offline files).
type FetchError struct {
	Operation  string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: GET %s: HTTP %d: %v", e.Operation, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Operation, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a FetchError for a resource that
// does not exist: HTTP 403 or 404 (the feed server answers 403 for
// games it has no document for) or a missing offline file.
func IsNotFound(err error) bool {
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		return false
	}
	return fetchErr.StatusCode == http.StatusNotFound ||
		fetchErr.StatusCode == http.StatusForbidden ||
		errors.Is(fetchErr.Err, fs.ErrNotExist)
}

// IsTransient reports whether err is a FetchError worth retrying:
// 408, 429, any 5xx, or a retryable network failure.
func IsTransient(err error) bool {
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		return false
	}
	if fetchErr.StatusCode != 0 {
		return netutil.IsRetryableStatus(fetchErr.StatusCode)
	}
	return netutil.IsRetryableNetworkError(fetchErr.Err)
}
