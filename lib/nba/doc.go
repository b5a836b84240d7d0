// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package nba decodes the league's JSON feeds into immutable snapshots:
// the season schedule, per-game box scores, per-game play-by-play, and
// the league-wide player roster.
//
// The feeds are inconsistent in ways that must not become errors.
// Statistics arrive as strings, numbers, empty strings, or not at all,
// depending on the endpoint and on whether the game has started. Every
// statistic is therefore carried as a [Stat]: the feed text, with
// accessors that default to zero. Only missing structure (a schedule
// without its league wrapper, a box score without a team block, a
// play-by-play document without its game) fails decoding, always as a
// [*DecodeError] naming the feed and field.
//
// Box scores come in two shapes. Once a game starts the payload carries
// a stats block with per-player lines and team totals; before that only
// the basic game data is present, and [DecodeBoxScore] fills the player
// list from a [RosterLookup], home team first. [BoxScore.Source]
// records which path produced the players.
//
// Decoded values own their strings and are never mutated after
// decoding; a refresh decodes a fresh snapshot.
package nba
