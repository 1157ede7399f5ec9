package engine

import "fmt"

const (
	minNextSteps = 3
	maxNextSteps = 5
)

var personaSampleQuestions = map[string]string{
	PersonaEndUser:             `Ask a participant: "What would you do first on this screen, and what do you expect to happen?"`,
	PersonaStakeholder:         `Ask a participant: "Does this screen convince you this product is worth paying for? Why or why not?"`,
	PersonaAccessibilityExpert: `Ask a participant: "Can you complete the main task using only the keyboard?"`,
	PersonaGeneralDesigner:     `Ask a participant: "Describe the structure of this page from memory after a five-second look."`,
}

var personaAudienceNotes = map[string]string{
	PersonaEndUser:             "Recruit participants who match your real end users, not colleagues who already know the product.",
	PersonaStakeholder:         "Walk the flow with a decision-maker audience and capture objections before visual design.",
	PersonaAccessibilityExpert: "Include participants who rely on assistive technology; simulated impairment is not a substitute.",
	PersonaGeneralDesigner:     "Test with a mixed audience so layout assumptions are challenged from more than one angle.",
}

var genericNextSteps = []string{
	"Run a five-second test to check what the layout communicates at a glance.",
	"Prototype the primary flow and measure how long a first-time user needs.",
	"Review the wireframe against your design system before adding visual detail.",
}

// NextSteps derives 3 to 5 short testing suggestions from the feedback
// distribution and the active persona.
func NextSteps(items []FeedbackItem, persona string) []string {
	var steps []string

	if worst := categoryWithMostIssues(items); worst != "" {
		steps = append(steps, fmt.Sprintf("Start with a focused review of %s: it drew the most issues in this critique.", worst))
	}

	if q, ok := personaSampleQuestions[persona]; ok {
		steps = append(steps, q)
	} else {
		steps = append(steps, personaSampleQuestions[PersonaGeneralDesigner])
	}

	if note, ok := personaAudienceNotes[persona]; ok {
		steps = append(steps, note)
	} else {
		steps = append(steps, personaAudienceNotes[PersonaGeneralDesigner])
	}

	if hint := deviceMethodHint(items); hint != "" {
		steps = append(steps, hint)
	}

	for i := 0; len(steps) < minNextSteps && i < len(genericNextSteps); i++ {
		steps = append(steps, genericNextSteps[i])
	}
	if len(steps) > maxNextSteps {
		steps = steps[:maxNextSteps]
	}
	return steps
}

// categoryWithMostIssues returns the category carrying the most issue-polarity
// items, ties broken by first appearance in the list.
func categoryWithMostIssues(items []FeedbackItem) Category {
	counts := make(map[Category]int, 6)
	var order []Category
	for _, item := range items {
		if item.Type != PolarityIssue {
			continue
		}
		if counts[item.Category] == 0 {
			order = append(order, item.Category)
		}
		counts[item.Category]++
	}

	var best Category
	bestCount := 0
	for _, c := range order {
		if counts[c] > bestCount {
			best = c
			bestCount = counts[c]
		}
	}
	return best
}

func deviceMethodHint(items []FeedbackItem) string {
	hasMobile := false
	hasForm := false
	for _, item := range items {
		switch item.Category {
		case CategoryMobile:
			hasMobile = true
		case CategoryForm:
			hasForm = true
		}
	}
	switch {
	case hasMobile && hasForm:
		return "Test the form on a real phone: small-screen input is where both concerns compound."
	case hasMobile:
		return "Run at least one session on an actual handset rather than a resized browser window."
	case hasForm:
		return "Watch someone fill the form end to end, including a deliberate mistake, to exercise error states."
	default:
		return ""
	}
}
