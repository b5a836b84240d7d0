// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nba

import (
	"errors"
	"fmt"
)

// Feed names one of the upstream JSON documents.
type Feed string

const (
	FeedSchedule   Feed = "schedule"
	FeedBoxScore   Feed = "boxscore"
	FeedPlayByPlay Feed = "playbyplay"
	FeedPlayers    Feed = "players"
)

// DecodeError reports a payload whose required structure is missing
// or malformed. Field is the dotted JSON path of the offending element,
// empty when the document as a whole failed to parse.
type DecodeError struct {
	Feed  Feed
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decoding %s feed: %v", e.Feed, e.Err)
	}
	return fmt.Sprintf("decoding %s feed: %s: %v", e.Feed, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ErrMissingField is wrapped by a [DecodeError] for absent required
// structure.
var ErrMissingField = errors.New("required field is missing")

func missingField(feed Feed, field string) *DecodeError {
	return &DecodeError{Feed: feed, Field: field, Err: ErrMissingField}
}

func malformed(feed Feed, err error) *DecodeError {
	return &DecodeError{Feed: feed, Err: err}
}
