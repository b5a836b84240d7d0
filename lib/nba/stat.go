// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nba

import (
	"math"
	"strconv"
	"strings"
)

// Stat is a statistic as the feed published it. The empty Stat means
// the feed omitted the value, which is normal before a player checks in
// or before tip-off. Text that is not a number or a mm:ss playing time
// decodes as the empty Stat, so it reads and renders as zero.
type Stat string

// UnmarshalJSON accepts a JSON string, a JSON number, or null. Any
// other JSON value (objects, arrays, booleans) decodes as absent, and so
// does text that is not numeric.
func (s *Stat) UnmarshalJSON(data []byte) error {
	var text feedText
	if err := text.UnmarshalJSON(data); err != nil {
		return err
	}
	*s = Stat(strings.TrimSpace(string(text)))
	if !s.numeric() {
		*s = ""
	}
	return nil
}

// numeric reports whether s is a signed integer, a finite decimal, or a
// mm:ss playing time.
func (s Stat) numeric() bool {
	text := string(s)
	if text == "" {
		return false
	}
	if minutes, seconds, found := strings.Cut(text, ":"); found {
		return allDigits(minutes) && allDigits(seconds)
	}
	value, err := strconv.ParseFloat(text, 64)
	return err == nil && !math.IsInf(value, 0) && !math.IsNaN(value)
}

func allDigits(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Present reports whether the feed supplied a value.
func (s Stat) Present() bool {
	return s != ""
}

// String returns the feed text, or "0" when absent or not numeric.
func (s Stat) String() string {
	if !s.numeric() {
		return "0"
	}
	return string(s)
}

// Int returns the statistic as an integer. Fractional values are
// truncated; plus/minus values such as "+7" parse with their sign.
// Values outside the range of int read as zero.
func (s Stat) Int() int {
	if s == "" {
		return 0
	}
	if value, err := strconv.Atoi(string(s)); err == nil {
		return value
	}
	value, err := strconv.ParseFloat(string(s), 64)
	if err != nil || math.IsNaN(value) {
		return 0
	}
	value = math.Trunc(value)
	if value < math.MinInt || value >= math.MaxInt {
		return 0
	}
	return int(value)
}

// Float returns the statistic as a float64, zero when absent or
// unparseable.
func (s Stat) Float() float64 {
	if s == "" {
		return 0
	}
	value, err := strconv.ParseFloat(string(s), 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0
	}
	return value
}

// Minutes interprets the statistic as playing time, accepting both
// "33" and "33:15". The result is in fractional minutes.
func (s Stat) Minutes() float64 {
	text := string(s)
	if text == "" {
		return 0
	}
	minutes, seconds, found := strings.Cut(text, ":")
	if !found {
		return s.Float()
	}
	whole, err := strconv.Atoi(minutes)
	if err != nil {
		return 0
	}
	fraction, _ := strconv.Atoi(seconds)
	return float64(whole) + float64(fraction)/60
}
