package engine

import "testing"

func TestClassifyStyle(t *testing.T) {
	cases := []struct {
		name     string
		phrase   Phrase
		expected Style
	}{
		{
			name:     "metrics_vocabulary",
			phrase:   Phrase{Text: "This hurts conversion and inflates bounce rate."},
			expected: StyleStakeholder,
		},
		{
			name:     "percentage_lift",
			phrase:   Phrase{Text: "Expect a 15% lift from the simplified layout."},
			expected: StyleStakeholder,
		},
		{
			name:     "wcag_reference",
			phrase:   Phrase{Text: "This fails WCAG 1.4.3 on the lighter backgrounds."},
			expected: StyleAccessibility,
		},
		{
			name:     "contrast_ratio",
			phrase:   Phrase{Text: "Body copy should hold a 4.5:1 contrast ratio."},
			expected: StyleAccessibility,
		},
		{
			name:     "suggestion_counts_too",
			phrase:   Phrase{Text: "Buttons feel cramped.", Suggestion: "Grow them to the WCAG target size minimum."},
			expected: StyleAccessibility,
		},
		{
			name:     "plain_wording",
			phrase:   Phrase{Text: "The layout is easy to scan.", Suggestion: "Keep the grouping as is."},
			expected: StyleGeneric,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyStyle(tc.phrase); got != tc.expected {
				t.Fatalf("got %v, want %v", got, tc.expected)
			}
		})
	}
}

// The persona filter depends on the two patterns never matching the same
// table entry, so the table itself is checked for that invariant.
func TestPhraseTableStylesAreMutuallyExclusive(t *testing.T) {
	for _, p := range phraseTable {
		combined := p.Text + " " + p.Suggestion
		if stakeholderPattern.MatchString(combined) && accessibilityPattern.MatchString(combined) {
			t.Fatalf("phrase matches both style patterns: %q", p.Text)
		}
	}
}

func TestPhraseTableCoversEveryPersonaPerCategory(t *testing.T) {
	categories := []Category{
		CategoryUsability, CategoryHierarchy, CategoryAccessibility,
		CategoryNavigation, CategoryForm, CategoryMobile,
	}
	for _, cat := range categories {
		generic := 0
		for _, p := range phraseTable {
			if p.Category == cat && ClassifyStyle(p) == StyleGeneric {
				generic++
			}
		}
		if generic == 0 {
			t.Fatalf("category %q has no generic phrasing; End-User and General Designer would starve", cat)
		}
	}
}

func TestFilterByStyleFallbackChain(t *testing.T) {
	generic := Phrase{Text: "Plain observation.", Category: CategoryUsability, Type: PolarityIssue}
	stakeholder := Phrase{Text: "This depresses conversion.", Category: CategoryUsability, Type: PolarityIssue}
	a11y := Phrase{Text: "This fails WCAG 2.4.7.", Category: CategoryUsability, Type: PolarityIssue}

	t.Run("restricts_to_persona_style", func(t *testing.T) {
		got := filterByStyle([]Phrase{generic, stakeholder, a11y}, PersonaStakeholder)
		if len(got) != 1 || got[0].Text != stakeholder.Text {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("falls_back_to_generic", func(t *testing.T) {
		got := filterByStyle([]Phrase{generic, a11y}, PersonaStakeholder)
		if len(got) != 1 || got[0].Text != generic.Text {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("falls_back_to_unrestricted_pool", func(t *testing.T) {
		got := filterByStyle([]Phrase{a11y}, PersonaStakeholder)
		if len(got) != 1 || got[0].Text != a11y.Text {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("unknown_persona_reads_generic", func(t *testing.T) {
		got := filterByStyle([]Phrase{generic, stakeholder, a11y}, "Visionary")
		if len(got) != 1 || got[0].Text != generic.Text {
			t.Fatalf("got %v", got)
		}
	})
}
