// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// FuzzyResult is the outcome of matching one text against a pattern.
// Score is zero when the text does not match. Positions are rune
// indexes of the matched characters in ascending order.
type FuzzyResult struct {
	Score     int
	Positions []int
}

// FuzzyMatch runs fzf's v2 matcher over text, ignoring case. An empty
// pattern matches nothing. slab may be nil; passing one reuses fzf's
// scratch buffers across calls.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{}
	}
	lowered := []rune(strings.ToLower(string(pattern)))
	chars := util.ToChars([]byte(strings.ToLower(text)))
	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, lowered, true, slab)
	if result.Start < 0 || result.Score <= 0 {
		return FuzzyResult{}
	}
	match := FuzzyResult{Score: result.Score}
	if positions != nil {
		match.Positions = append([]int(nil), *positions...)
		slices.Sort(match.Positions)
	}
	return match
}

// FuzzyFilter matches every text against query and returns the indexes
// of the matches in input order together with their results. An empty
// query keeps everything with zero results.
func FuzzyFilter(texts []string, query string) ([]int, []FuzzyResult) {
	if query == "" {
		indexes := make([]int, len(texts))
		for index := range indexes {
			indexes[index] = index
		}
		return indexes, make([]FuzzyResult, len(texts))
	}
	pattern := []rune(query)
	slab := util.MakeSlab(100*1024, 2048)
	var indexes []int
	var results []FuzzyResult
	for index, text := range texts {
		if result := FuzzyMatch(text, pattern, slab); result.Score > 0 {
			indexes = append(indexes, index)
			results = append(results, result)
		}
	}
	return indexes, results
}

// HighlightRunes renders text with the runes at positions styled by
// match and the rest by base.
func HighlightRunes(text string, positions []int, base, match lipgloss.Style) string {
	if len(positions) == 0 {
		return base.Render(text)
	}
	marked := make(map[int]bool, len(positions))
	for _, position := range positions {
		marked[position] = true
	}
	var builder strings.Builder
	var run []rune
	runMatched := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runMatched {
			builder.WriteString(match.Render(string(run)))
		} else {
			builder.WriteString(base.Render(string(run)))
		}
		run = run[:0]
	}
	for index, character := range []rune(text) {
		if marked[index] != runMatched {
			flush()
			runMatched = marked[index]
		}
		run = append(run, character)
	}
	flush()
	return builder.String()
}
