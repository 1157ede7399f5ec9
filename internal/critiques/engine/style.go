package engine

import "regexp"

// Style is the rhetorical flavor of a phrase's wording, independent of its
// category. The table is authored so no phrase matches both non-generic
// patterns; a phrase is generic exactly when it matches neither.
type Style int

const (
	StyleGeneric Style = iota
	StyleStakeholder
	StyleAccessibility
)

func (s Style) String() string {
	switch s {
	case StyleStakeholder:
		return "stakeholder"
	case StyleAccessibility:
		return "accessibility"
	default:
		return "generic"
	}
}

// stakeholderPattern captures business-metrics vocabulary.
var stakeholderPattern = regexp.MustCompile(`(?i)\b(conversion|retention|roi|funnel|completion rate|abandonment|bounce rate|drop-?off|churn|engagement|revenue|kpis?)\b|\b\d+(\.\d+)?\s*%|\b\d+-\d+%`)

// accessibilityPattern captures formal accessibility-standard vocabulary.
var accessibilityPattern = regexp.MustCompile(`(?i)\bwcag\b|\ba11y\b|contrast ratio|\b\d+(\.\d+)?:1\b|focus (order|visible|indicator|ring)|target size|screen readers?|assistive technolog`)

// ClassifyStyle assigns exactly one style to a phrase by matching its text
// and suggestion together.
func ClassifyStyle(p Phrase) Style {
	combined := p.Text + " " + p.Suggestion
	switch {
	case accessibilityPattern.MatchString(combined):
		return StyleAccessibility
	case stakeholderPattern.MatchString(combined):
		return StyleStakeholder
	default:
		return StyleGeneric
	}
}

// styleFor maps a persona to the style it should receive. End-User, General
// Designer, and unknown personas all read generic phrasing.
func styleFor(persona string) Style {
	switch persona {
	case PersonaStakeholder:
		return StyleStakeholder
	case PersonaAccessibilityExpert:
		return StyleAccessibility
	default:
		return StyleGeneric
	}
}

// filterByStyle restricts pool to the persona's style, falling back to
// generic phrasing and then to the unrestricted pool so a persona never
// empties the candidate set on its own.
func filterByStyle(pool []Phrase, persona string) []Phrase {
	want := styleFor(persona)

	matched := make([]Phrase, 0, len(pool))
	for _, p := range pool {
		if ClassifyStyle(p) == want {
			matched = append(matched, p)
		}
	}
	if len(matched) > 0 {
		return matched
	}

	if want != StyleGeneric {
		for _, p := range pool {
			if ClassifyStyle(p) == StyleGeneric {
				matched = append(matched, p)
			}
		}
		if len(matched) > 0 {
			return matched
		}
	}

	return pool
}
