package critiques

import (
	"strings"
	"testing"

	"critique-backend/internal/critiques/engine"
)

func exportFixture() Critique {
	return Critique{
		ID:          "critique-1",
		Description: "Login page",
		Status:      StatusCompleted,
		Result: &engine.Result{
			Persona: engine.PersonaEndUser,
			Seed:    42,
			Feedback: []engine.FeedbackItem{
				{ID: "feedback-42-0", Text: "Primary action is clear.", Category: engine.CategoryUsability, Type: engine.PolarityPositive},
				{ID: "feedback-42-1", Text: "No visible error states.", Category: engine.CategoryForm, Type: engine.PolarityIssue, Suggestion: "Design inline validation."},
				{ID: "feedback-42-2", Text: "Labels sit far from inputs.", Category: engine.CategoryForm, Type: engine.PolarityIssue},
			},
			NextSteps: []string{"Review the form flow.", "Watch someone fill the form."},
		},
	}
}

func TestExportTextGroupsByCategory(t *testing.T) {
	out := ExportText(exportFixture())

	if !strings.Contains(out, "UX Critique (End-User)") {
		t.Fatalf("expected persona header, got:\n%s", out)
	}
	if !strings.Contains(out, "Screen: Login page") {
		t.Fatalf("expected screen line")
	}
	usabilityIdx := strings.Index(out, "Usability")
	formsIdx := strings.Index(out, "Forms")
	if usabilityIdx < 0 || formsIdx < 0 {
		t.Fatalf("expected both category headings, got:\n%s", out)
	}
	if usabilityIdx > formsIdx {
		t.Fatalf("expected first-seen category order")
	}
	if !strings.Contains(out, "Suggestion: Design inline validation.") {
		t.Fatalf("expected suggestion line")
	}
	if !strings.Contains(out, "1. Review the form flow.") {
		t.Fatalf("expected numbered next steps")
	}
}

func TestExportMarkdownStructure(t *testing.T) {
	out := ExportMarkdown(exportFixture())

	if !strings.HasPrefix(out, "# UX Critique (End-User)") {
		t.Fatalf("expected markdown title, got:\n%s", out)
	}
	if !strings.Contains(out, "## Forms") {
		t.Fatalf("expected Forms heading")
	}
	if !strings.Contains(out, "*Suggestion:* Design inline validation.") {
		t.Fatalf("expected suggestion bullet")
	}
	if !strings.Contains(out, "## Next steps") {
		t.Fatalf("expected next steps heading")
	}
	// Both issues live under one Forms heading.
	if strings.Count(out, "## Forms") != 1 {
		t.Fatalf("expected a single Forms heading")
	}
}
