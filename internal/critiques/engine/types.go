package engine

// Category is the topical classification of a feedback phrase.
type Category string

const (
	CategoryUsability     Category = "usability"
	CategoryHierarchy     Category = "hierarchy"
	CategoryAccessibility Category = "accessibility"
	CategoryNavigation    Category = "navigation"
	CategoryForm          Category = "form"
	CategoryMobile        Category = "mobile"
)

// Polarity marks a phrase as a strength or an issue.
type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityIssue    Polarity = "issue"
)

// Persona names the reviewer viewpoint that biases category priority and
// rhetorical style. Unknown names silently take the General Designer profile.
const (
	PersonaEndUser             = "End-User"
	PersonaStakeholder         = "Stakeholder"
	PersonaAccessibilityExpert = "Accessibility Expert"
	PersonaGeneralDesigner     = "General Designer"
)

// Personas lists the supported persona names in display order.
func Personas() []string {
	return []string{
		PersonaEndUser,
		PersonaStakeholder,
		PersonaAccessibilityExpert,
		PersonaGeneralDesigner,
	}
}

// KnownPersona reports whether name is one of the closed persona set.
func KnownPersona(name string) bool {
	switch name {
	case PersonaEndUser, PersonaStakeholder, PersonaAccessibilityExpert, PersonaGeneralDesigner:
		return true
	}
	return false
}

// Phrase is one immutable entry of the static feedback table.
type Phrase struct {
	Text       string
	Category   Category
	Type       Polarity
	Suggestion string
}

// FeedbackItem is a generated phrase with a deterministic id. Items are
// created fresh on every generation call and never mutated afterwards.
type FeedbackItem struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Category   Category `json:"category"`
	Type       Polarity `json:"type"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// ImageMetadata describes an uploaded wireframe image. It is produced by the
// upload layer's dimension probe and consumed read-only by the engine.
type ImageMetadata struct {
	Width              int     `json:"width"`
	Height             int     `json:"height"`
	AspectRatio        float64 `json:"aspectRatio"`
	IsMobileFriendly   bool    `json:"isMobileFriendly"`
	HasLargeDimensions bool    `json:"hasLargeDimensions"`
	Orientation        string  `json:"orientation"`
}

// Result is the full output of one generation call.
type Result struct {
	Persona   string         `json:"persona"`
	Seed      int            `json:"seed"`
	Feedback  []FeedbackItem `json:"feedback"`
	NextSteps []string       `json:"nextSteps"`
}
