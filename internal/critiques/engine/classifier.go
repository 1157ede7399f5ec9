package engine

import "regexp"

// keywordPatterns map description vocabulary to categories. Patterns are
// word-bounded so "formation" does not trip the form detector. Slice order
// fixes the first-seen order of the resulting category set.
var keywordPatterns = []struct {
	category Category
	pattern  *regexp.Regexp
}{
	{CategoryNavigation, regexp.MustCompile(`(?i)\b(nav|navigation|menu|header|footer|sidebar|breadcrumbs?|links?|tabs?)\b`)},
	{CategoryForm, regexp.MustCompile(`(?i)\b(forms?|inputs?|fields?|buttons?|submit|checkbox(es)?|radio|dropdowns?|select|textarea|login|log in|sign ?up|register|password|email)\b`)},
	{CategoryHierarchy, regexp.MustCompile(`(?i)\b(headings?|titles?|hierarchy|layout|sections?|grid|columns?|cards?|hero|banner|spacing)\b`)},
	{CategoryMobile, regexp.MustCompile(`(?i)\b(mobile|phone|responsive|tablet|touch|swipe|handheld|viewport)\b`)},
	{CategoryUsability, regexp.MustCompile(`(?i)\b(users?|usability|flows?|tasks?|clicks?|interactions?|journey|onboarding|checkout|search)\b`)},
	{CategoryAccessibility, regexp.MustCompile(`(?i)\b(accessib\w*|contrast|screen readers?|aria|alt text|wcag|keyboard|a11y)\b`)},
}

// defaultCategories always participate in selection so a vague description
// still yields a usable pool.
var defaultCategories = []Category{CategoryUsability, CategoryHierarchy}

// DetectKeywords returns the categories whose vocabulary appears in the
// description, in fixed pattern order. Empty input yields an empty set.
func DetectKeywords(description string) []Category {
	if description == "" {
		return nil
	}
	var found []Category
	for _, kp := range keywordPatterns {
		if kp.pattern.MatchString(description) {
			found = append(found, kp.category)
		}
	}
	return found
}

// Categories builds the working category set for one generation: detected
// keywords plus the fixed defaults, and for the Accessibility Expert persona
// the accessibility and mobile categories regardless of the description.
// Order is first-seen and therefore stable across calls.
func Categories(description, persona string) []Category {
	seen := make(map[Category]bool, 8)
	var out []Category
	add := func(c Category) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	for _, c := range DetectKeywords(description) {
		add(c)
	}
	for _, c := range defaultCategories {
		add(c)
	}
	if persona == PersonaAccessibilityExpert {
		add(CategoryAccessibility)
		add(CategoryMobile)
	}
	return out
}
