package critiques

import (
	"fmt"
	"strings"

	"critique-backend/internal/critiques/engine"
)

// ExportText renders a completed critique as a plain-text report.
func ExportText(critique Critique) string {
	var b strings.Builder
	fmt.Fprintf(&b, "UX Critique (%s)\n", critique.Result.Persona)
	if critique.Description != "" {
		fmt.Fprintf(&b, "Screen: %s\n", critique.Description)
	}
	b.WriteString("\n")

	for _, category := range groupedCategories(critique.Result.Feedback) {
		fmt.Fprintf(&b, "%s\n", categoryHeading(category))
		for _, item := range critique.Result.Feedback {
			if item.Category != category {
				continue
			}
			marker := "+"
			if item.Type == engine.PolarityIssue {
				marker = "!"
			}
			fmt.Fprintf(&b, "  [%s] %s\n", marker, item.Text)
			if item.Suggestion != "" {
				fmt.Fprintf(&b, "      Suggestion: %s\n", item.Suggestion)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("Next steps\n")
	for i, step := range critique.Result.NextSteps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}
	return b.String()
}

// ExportMarkdown renders a completed critique as a Markdown report.
func ExportMarkdown(critique Critique) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# UX Critique (%s)\n\n", critique.Result.Persona)
	if critique.Description != "" {
		fmt.Fprintf(&b, "**Screen:** %s\n\n", critique.Description)
	}

	for _, category := range groupedCategories(critique.Result.Feedback) {
		fmt.Fprintf(&b, "## %s\n\n", categoryHeading(category))
		for _, item := range critique.Result.Feedback {
			if item.Category != category {
				continue
			}
			marker := "✅"
			if item.Type == engine.PolarityIssue {
				marker = "⚠️"
			}
			fmt.Fprintf(&b, "- %s %s\n", marker, item.Text)
			if item.Suggestion != "" {
				fmt.Fprintf(&b, "  - *Suggestion:* %s\n", item.Suggestion)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("## Next steps\n\n")
	for i, step := range critique.Result.NextSteps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}

// groupedCategories returns the categories present in feedback, first-seen order.
func groupedCategories(feedback []engine.FeedbackItem) []engine.Category {
	seen := make(map[engine.Category]bool)
	var out []engine.Category
	for _, item := range feedback {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}

func categoryHeading(category engine.Category) string {
	switch category {
	case engine.CategoryUsability:
		return "Usability"
	case engine.CategoryHierarchy:
		return "Visual hierarchy"
	case engine.CategoryAccessibility:
		return "Accessibility"
	case engine.CategoryNavigation:
		return "Navigation"
	case engine.CategoryForm:
		return "Forms"
	case engine.CategoryMobile:
		return "Mobile"
	}
	return string(category)
}
