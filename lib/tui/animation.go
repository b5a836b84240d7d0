// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"
)

// GlowDuration is how long a newly arrived play stays highlighted.
// Intensity starts at 1.0 and decays linearly to 0.0.
const GlowDuration = 8 * time.Second

// GlowKind selects the highlight color.
type GlowKind int

const (
	// GlowPlay marks a play that did not change the score.
	GlowPlay GlowKind = iota
	// GlowScoring marks a play that changed the score.
	GlowScoring
)

type glowEntry struct {
	ignition time.Time
	kind     GlowKind
}

// GlowTracker remembers when items were ignited and reports how much
// glow they have left. Time is passed in by the caller so the tracker
// can be driven by UI ticks and tested with fixed instants.
type GlowTracker struct {
	duration time.Duration
	entries  map[string]glowEntry
}

// NewGlowTracker creates a tracker whose entries fade over duration.
// A non-positive duration uses GlowDuration.
func NewGlowTracker(duration time.Duration) *GlowTracker {
	if duration <= 0 {
		duration = GlowDuration
	}
	return &GlowTracker{
		duration: duration,
		entries:  make(map[string]glowEntry),
	}
}

// Ignite starts (or restarts) the glow for key.
func (tracker *GlowTracker) Ignite(key string, kind GlowKind, now time.Time) {
	tracker.entries[key] = glowEntry{ignition: now, kind: kind}
}

// Intensity returns key's remaining glow in [0, 1].
func (tracker *GlowTracker) Intensity(key string, now time.Time) float64 {
	entry, exists := tracker.entries[key]
	if !exists {
		return 0
	}
	elapsed := now.Sub(entry.ignition)
	if elapsed < 0 {
		return 1
	}
	if elapsed >= tracker.duration {
		return 0
	}
	return 1 - float64(elapsed)/float64(tracker.duration)
}

// Kind returns the kind key was ignited with; GlowPlay when unknown.
func (tracker *GlowTracker) Kind(key string) GlowKind {
	return tracker.entries[key].kind
}

// Sweep drops fully faded entries and reports whether any remain lit.
func (tracker *GlowTracker) Sweep(now time.Time) bool {
	for key, entry := range tracker.entries {
		if now.Sub(entry.ignition) >= tracker.duration {
			delete(tracker.entries, key)
		}
	}
	return len(tracker.entries) > 0
}

// Reset forgets every entry.
func (tracker *GlowTracker) Reset() {
	clear(tracker.entries)
}
