package engine

import (
	"fmt"
	"sort"
)

const (
	minFeedback = 6
	maxFeedback = 8

	// tableFallbackCount bounds the last-resort slice used when filtering
	// empties the pool entirely (pathologically small or miscategorized table).
	tableFallbackCount = 4
)

// Select filters the phrase table to the working categories, applies the
// persona style filter, and slices a seeded windowed selection. Pure and
// deterministic in (categories, persona, seed).
func Select(categories []Category, persona string, seed int) []FeedbackItem {
	wanted := make(map[Category]bool, len(categories))
	for _, c := range categories {
		wanted[c] = true
	}

	pool := make([]Phrase, 0, len(phraseTable))
	for _, p := range phraseTable {
		if wanted[p.Category] {
			pool = append(pool, p)
		}
	}

	pool = filterByStyle(pool, persona)

	if len(pool) == 0 {
		n := tableFallbackCount
		if n > len(phraseTable) {
			n = len(phraseTable)
		}
		out := make([]FeedbackItem, 0, n)
		for i, p := range phraseTable[:n] {
			out = append(out, newItem(p, fmt.Sprintf("feedback-%d-fallback-%d", seed, i)))
		}
		return out
	}

	ordered := seededOrder(pool, seed, "")

	count := targetCount(seed)
	if count > len(ordered) {
		count = len(ordered)
	}

	out := make([]FeedbackItem, 0, count)
	for i, p := range ordered[:count] {
		out = append(out, newItem(p, fmt.Sprintf("feedback-%d-%d", seed, i)))
	}
	return out
}

// targetCount is 6 + seed%3, clamped to [6, 8].
func targetCount(seed int) int {
	count := minFeedback + seed%3
	if count < minFeedback {
		count = minFeedback
	}
	if count > maxFeedback {
		count = maxFeedback
	}
	return count
}

// seededOrder sorts phrases ascending by their seeded hash key, breaking
// ties by original table position so the order is fully reproducible.
func seededOrder(pool []Phrase, seed int, salt string) []Phrase {
	ordered := make([]Phrase, len(pool))
	copy(ordered, pool)
	sort.SliceStable(ordered, func(i, j int) bool {
		return orderKey(ordered[i].Text, seed, salt) < orderKey(ordered[j].Text, seed, salt)
	})
	return ordered
}

func newItem(p Phrase, id string) FeedbackItem {
	return FeedbackItem{
		ID:         id,
		Text:       p.Text,
		Category:   p.Category,
		Type:       p.Type,
		Suggestion: p.Suggestion,
	}
}
