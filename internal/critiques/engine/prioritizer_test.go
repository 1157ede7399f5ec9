package engine

import (
	"reflect"
	"testing"
)

func TestPrioritizePartitionsAndPolarity(t *testing.T) {
	items := []FeedbackItem{
		{ID: "a", Category: CategoryForm, Type: PolarityPositive},
		{ID: "b", Category: CategoryUsability, Type: PolarityPositive},
		{ID: "c", Category: CategoryForm, Type: PolarityIssue},
		{ID: "d", Category: CategoryNavigation, Type: PolarityIssue},
		{ID: "e", Category: CategoryMobile, Type: PolarityIssue},
	}

	got := Prioritize(items, PersonaEndUser)

	ids := make([]string, 0, len(got))
	for _, item := range got {
		ids = append(ids, item.ID)
	}
	// End-User prefers usability/navigation/mobile: their issues first, then
	// their strengths, then the form partition with the same polarity rule.
	want := []string{"d", "e", "b", "c", "a"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
}

func TestPrioritizeIsStable(t *testing.T) {
	items := []FeedbackItem{
		{ID: "first", Category: CategoryUsability, Type: PolarityIssue},
		{ID: "second", Category: CategoryUsability, Type: PolarityIssue},
		{ID: "third", Category: CategoryNavigation, Type: PolarityIssue},
	}

	got := Prioritize(items, PersonaEndUser)
	want := []string{"first", "second", "third"}
	for i, item := range got {
		if item.ID != want[i] {
			t.Fatalf("position %d = %q, want %q (ties must keep input order)", i, item.ID, want[i])
		}
	}
}

func TestPrioritizeUnknownPersonaUsesGeneralDesigner(t *testing.T) {
	items := []FeedbackItem{
		{ID: "form", Category: CategoryForm, Type: PolarityIssue},
		{ID: "hierarchy", Category: CategoryHierarchy, Type: PolarityIssue},
	}

	got := Prioritize(items, "Chief Vibes Officer")
	if got[0].ID != "hierarchy" {
		t.Fatalf("unknown persona should take the General Designer profile, got %q first", got[0].ID)
	}
}

func TestPrioritizeDoesNotMutateInput(t *testing.T) {
	items := []FeedbackItem{
		{ID: "a", Category: CategoryForm, Type: PolarityPositive},
		{ID: "b", Category: CategoryUsability, Type: PolarityIssue},
	}
	orig := make([]FeedbackItem, len(items))
	copy(orig, items)

	Prioritize(items, PersonaEndUser)
	if !reflect.DeepEqual(items, orig) {
		t.Fatalf("input slice was mutated")
	}
}
