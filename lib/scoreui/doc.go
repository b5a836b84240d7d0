// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package scoreui is the interactive scoreboard: a bubbletea model
// with two tabs. The Game tab shows the line score, a score-flow chart,
// and the play-by-play list; the Boxscore tab shows one team's player
// table at a time.
//
// [Navigation] holds the view state (tab, team side, list cursors,
// chart visibility) and is mutated only from Model.Update. Data comes
// from an immutable [nbafeed.GameSnapshot]; a refresh replaces it
// wholesale and never applies partially.
package scoreui
