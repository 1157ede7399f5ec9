package engine

import "fmt"

// Generate runs the full feedback pipeline. It is a pure function of its
// arguments: calling it twice with byte-identical inputs returns identical
// lists, ids included. It never returns an error; every empty-pool condition
// resolves through a documented fallback.
func Generate(description string, img *ImageMetadata, persona string) []FeedbackItem {
	seed := Seed(description, img, persona)
	categories := Categories(description, persona)

	items := Select(categories, persona, seed)
	items = append(items, ImageFeedback(img, persona, seed)...)
	items = dedupeByText(items)
	items = Prioritize(items, persona)

	if len(items) > maxFeedback {
		items = items[:maxFeedback]
	}

	if len(items) < minFeedback && len(phraseTable) >= minFeedback {
		items = topUp(items, persona, seed)
	}

	return items
}

// GenerateResult bundles the feedback list with the derived next test steps.
func GenerateResult(description string, img *ImageMetadata, persona string) Result {
	feedback := Generate(description, img, persona)
	return Result{
		Persona:   persona,
		Seed:      Seed(description, img, persona),
		Feedback:  feedback,
		NextSteps: NextSteps(feedback, persona),
	}
}

// dedupeByText drops later items whose trimmed, case-folded text already
// appeared, regardless of id or source.
func dedupeByText(items []FeedbackItem) []FeedbackItem {
	seen := make(map[string]bool, len(items))
	out := make([]FeedbackItem, 0, len(items))
	for _, item := range items {
		key := normalizeText(item.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// topUp appends unused table entries until the list reaches the minimum, or
// the fallback pool runs out. The fallback order uses a salted hash so it
// does not simply replay the primary selection order.
func topUp(items []FeedbackItem, persona string, seed int) []FeedbackItem {
	used := make(map[string]bool, len(items))
	for _, item := range items {
		used[normalizeText(item.Text)] = true
	}

	pool := make([]Phrase, 0, len(phraseTable))
	for _, p := range phraseTable {
		if !used[normalizeText(p.Text)] {
			pool = append(pool, p)
		}
	}
	pool = filterByStyle(pool, persona)
	pool = seededOrder(pool, seed, "fallback")

	for i := 0; len(items) < minFeedback && i < len(pool); i++ {
		items = append(items, newItem(pool[i], fmt.Sprintf("feedback-fallback-%d-%d", seed, i)))
	}
	return items
}
