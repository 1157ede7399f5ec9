package engine

import "sort"

// preferredCategories fixes each persona's category priority. Unknown
// personas take the General Designer profile.
var preferredCategories = map[string][]Category{
	PersonaEndUser:             {CategoryUsability, CategoryNavigation, CategoryMobile},
	PersonaStakeholder:         {CategoryUsability, CategoryHierarchy},
	PersonaAccessibilityExpert: {CategoryAccessibility, CategoryMobile},
	PersonaGeneralDesigner:     {CategoryHierarchy, CategoryUsability, CategoryNavigation},
}

// PreferredCategories returns the persona's preferred-category list.
func PreferredCategories(persona string) []Category {
	if cats, ok := preferredCategories[persona]; ok {
		return cats
	}
	return preferredCategories[PersonaGeneralDesigner]
}

// Prioritize stable-sorts items so preferred-category items come first and,
// within each partition, issues come before strengths. Ties keep their
// relative input order.
func Prioritize(items []FeedbackItem, persona string) []FeedbackItem {
	preferred := make(map[Category]bool, 4)
	for _, c := range PreferredCategories(persona) {
		preferred[c] = true
	}

	rank := func(item FeedbackItem) int {
		r := 0
		if !preferred[item.Category] {
			r += 2
		}
		if item.Type != PolarityIssue {
			r++
		}
		return r
	}

	out := make([]FeedbackItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return rank(out[i]) < rank(out[j])
	})
	return out
}
