package engine

// phraseTable is the static pool all feedback is drawn from. Order matters:
// the selector's tie-break and the small-table fallback both rely on it.
// Each category carries generic, stakeholder-flavored, and
// accessibility-flavored entries so every persona has reachable candidates.
var phraseTable = []Phrase{
	// usability
	{
		Text:     "The primary action is easy to find and visually distinct from secondary actions.",
		Category: CategoryUsability,
		Type:     PolarityPositive,
	},
	{
		Text:       "Several elements compete for attention, making it hard to know what to do first.",
		Category:   CategoryUsability,
		Type:       PolarityIssue,
		Suggestion: "Pick one primary action per screen and de-emphasize the rest.",
	},
	{
		Text:       "The flow from entry point to task completion takes more steps than users will tolerate.",
		Category:   CategoryUsability,
		Type:       PolarityIssue,
		Suggestion: "Map the happy path and remove any step that does not add information or confidence.",
	},
	{
		Text:     "Interactive elements look interactive; nothing reads as clickable when it is not.",
		Category: CategoryUsability,
		Type:     PolarityPositive,
	},
	{
		Text:       "There is no visible feedback after the user acts, which leaves them guessing whether anything happened.",
		Category:   CategoryUsability,
		Type:       PolarityIssue,
		Suggestion: "Add a loading, success, or error state for every action that changes data.",
	},
	{
		Text:       "Friction on this screen will show up directly as funnel drop-off; every extra decision costs conversion.",
		Category:   CategoryUsability,
		Type:       PolarityIssue,
		Suggestion: "Instrument the step and A/B test a reduced variant against the current layout.",
	},
	{
		Text:     "A streamlined task flow here typically lifts completion rate by 10-20% in comparable products.",
		Category: CategoryUsability,
		Type:     PolarityPositive,
	},
	{
		Text:       "Pointer targets appear smaller than the 24x24 CSS pixel minimum of WCAG 2.5.8, which penalizes motor-impaired users.",
		Category:   CategoryUsability,
		Type:       PolarityIssue,
		Suggestion: "Grow hit areas to at least the target size minimum even if the visible glyph stays small.",
	},

	// hierarchy
	{
		Text:     "The visual hierarchy reads top-down without effort; headings and content levels are clearly separated.",
		Category: CategoryHierarchy,
		Type:     PolarityPositive,
	},
	{
		Text:       "Heading sizes are too close together, so section boundaries blur when scanning.",
		Category:   CategoryHierarchy,
		Type:       PolarityIssue,
		Suggestion: "Use a type scale with clearly distinct steps between heading levels.",
	},
	{
		Text:       "Related controls are scattered instead of grouped, which breaks the law of proximity.",
		Category:   CategoryHierarchy,
		Type:       PolarityIssue,
		Suggestion: "Cluster related fields and actions inside a shared container with consistent spacing.",
	},
	{
		Text:     "Whitespace is used deliberately; dense regions and breathing room alternate in a way that guides the eye.",
		Category: CategoryHierarchy,
		Type:     PolarityPositive,
	},
	{
		Text:       "The most profitable content sits below the fold; burying it suppresses engagement and downstream revenue.",
		Category:   CategoryHierarchy,
		Type:       PolarityIssue,
		Suggestion: "Reorder sections so the highest-value proposition is visible without scrolling.",
	},
	{
		Text:     "Clear information hierarchy like this correlates with lower bounce rate on landing screens.",
		Category: CategoryHierarchy,
		Type:     PolarityPositive,
	},
	{
		Text:       "The visual order and the reading order appear to diverge, which WCAG 1.3.2 flags as a meaningful-sequence failure.",
		Category:   CategoryHierarchy,
		Type:       PolarityIssue,
		Suggestion: "Make the DOM order follow the visual order so assistive technology narrates the layout coherently.",
	},

	// accessibility
	{
		Text:       "Text over imagery and the lighter gray labels will not hold up for low-vision users.",
		Category:   CategoryAccessibility,
		Type:       PolarityIssue,
		Suggestion: "Check every text layer against its real background, not the average page color.",
	},
	{
		Text:     "Form fields appear to have persistent visible labels rather than placeholder-only labeling.",
		Category: CategoryAccessibility,
		Type:     PolarityPositive,
	},
	{
		Text:       "Color appears to be the only signal distinguishing states, which excludes color-blind users.",
		Category:   CategoryAccessibility,
		Type:       PolarityIssue,
		Suggestion: "Pair every color cue with an icon, weight, or text change.",
	},
	{
		Text:       "Body text likely falls below the 4.5:1 contrast ratio required by WCAG 1.4.3 on these background tones.",
		Category:   CategoryAccessibility,
		Type:       PolarityIssue,
		Suggestion: "Darken the text color or lighten the background until the ratio passes AA.",
	},
	{
		Text:       "No focus order is indicated for keyboard traversal; without a visible focus indicator this fails WCAG 2.4.7.",
		Category:   CategoryAccessibility,
		Type:       PolarityIssue,
		Suggestion: "Annotate tab sequence in the wireframe and specify a focus-visible treatment for every control.",
	},
	{
		Text:     "Touch and pointer controls look generous enough to satisfy the WCAG 2.5.5 target size guidance.",
		Category: CategoryAccessibility,
		Type:     PolarityPositive,
	},
	{
		Text:       "Imagery carries meaning but no alt text positions are marked in the annotation layer.",
		Category:   CategoryAccessibility,
		Type:       PolarityIssue,
		Suggestion: "Mark which images are decorative and draft alt text for the rest while intent is still fresh.",
	},

	// navigation
	{
		Text:     "The navigation groups destinations the way users think about them, not the way the org chart does.",
		Category: CategoryNavigation,
		Type:     PolarityPositive,
	},
	{
		Text:       "There is no indication of where the user currently is within the navigation.",
		Category:   CategoryNavigation,
		Type:       PolarityIssue,
		Suggestion: "Mark the active section with more than a subtle color shift.",
	},
	{
		Text:       "Too many top-level destinations force users to read the whole menu before choosing.",
		Category:   CategoryNavigation,
		Type:       PolarityIssue,
		Suggestion: "Cap top-level items around seven and demote the rest into grouped submenus.",
	},
	{
		Text:     "Breadcrumb-free deep pages still offer an obvious way back, which keeps exploration safe.",
		Category: CategoryNavigation,
		Type:     PolarityPositive,
	},
	{
		Text:       "Ambiguous menu labels inflate bounce rate because visitors cannot predict what a click will cost them.",
		Category:   CategoryNavigation,
		Type:       PolarityIssue,
		Suggestion: "Run a quick card sort or tree test before locking the information architecture.",
	},
	{
		Text:       "The menu seems operable only by hover, which keyboard and switch users cannot do; WCAG 2.1.1 requires full keyboard operation.",
		Category:   CategoryNavigation,
		Type:       PolarityIssue,
		Suggestion: "Specify click-to-open behavior and a logical focus order through the menu tree.",
	},

	// form
	{
		Text:     "The form asks only for what the task needs; optional data is deferred instead of demanded.",
		Category: CategoryForm,
		Type:     PolarityPositive,
	},
	{
		Text:       "Field labels and inputs are far enough apart that the association breaks in a quick scan.",
		Category:   CategoryForm,
		Type:       PolarityIssue,
		Suggestion: "Place labels directly above their inputs with tighter spacing than between fields.",
	},
	{
		Text:       "There is no visible error state design, and error handling is where most forms fall apart.",
		Category:   CategoryForm,
		Type:       PolarityIssue,
		Suggestion: "Design inline validation with the message adjacent to the offending field.",
	},
	{
		Text:     "The submit action states what happens next rather than a generic label.",
		Category: CategoryForm,
		Type:     PolarityPositive,
	},
	{
		Text:       "Every extra required field measurably raises form abandonment; this layout asks for more than it needs up front.",
		Category:   CategoryForm,
		Type:       PolarityIssue,
		Suggestion: "Defer secondary fields to a later step and track completion rate per field.",
	},
	{
		Text:       "Error recovery is not described in text; WCAG 3.3.1 expects errors identified in text, not color alone.",
		Category:   CategoryForm,
		Type:       PolarityIssue,
		Suggestion: "Specify error text content and its programmatic association with the field.",
	},
	{
		Text:     "Input purposes look explicit enough for autofill to work, which WCAG 1.3.5 rewards.",
		Category: CategoryForm,
		Type:     PolarityPositive,
	},

	// mobile
	{
		Text:       "At typical phone widths this layout forces horizontal panning, which most users read as broken.",
		Category:   CategoryMobile,
		Type:       PolarityIssue,
		Suggestion: "Define how columns collapse below tablet width before visual design starts.",
	},
	{
		Text:     "Primary actions sit within comfortable thumb reach on a handheld layout.",
		Category: CategoryMobile,
		Type:     PolarityPositive,
	},
	{
		Text:       "Controls are packed tightly enough that touch use will produce mis-taps.",
		Category:   CategoryMobile,
		Type:       PolarityIssue,
		Suggestion: "Add spacing between adjacent tappable elements and enlarge small icon buttons.",
	},
	{
		Text:       "Mobile visitors are usually the majority of the funnel; a desktop-first layout here risks conversion on the biggest segment.",
		Category:   CategoryMobile,
		Type:       PolarityIssue,
		Suggestion: "Prototype the narrow viewport first and report engagement for mobile separately.",
	},
	{
		Text:     "A single-column rhythm like this usually keeps task completion rate steady across device sizes.",
		Category: CategoryMobile,
		Type:     PolarityPositive,
	},
	{
		Text:       "Small-screen touch targets here look below the WCAG 2.5.8 minimum, and zoom behavior is unspecified.",
		Category:   CategoryMobile,
		Type:       PolarityIssue,
		Suggestion: "Annotate minimum target sizes and confirm pinch zoom is not suppressed.",
	},
	{
		Text:       "Content priority on small screens is unclear; everything seems to survive the collapse.",
		Category:   CategoryMobile,
		Type:       PolarityIssue,
		Suggestion: "Decide explicitly what is hidden, stacked, or deferred on narrow viewports.",
	},
}

// responsivePhrase is the synthetic entry appended for oversized canvases.
// It deliberately bypasses the style filter: there are no persona variants.
var responsivePhrase = Phrase{
	Text:       "The canvas is wider than common desktop viewports, so the design needs explicit responsive breakpoints to avoid clipping on ordinary screens.",
	Category:   CategoryMobile,
	Type:       PolarityIssue,
	Suggestion: "Define breakpoints for standard widths and describe how the layout reflows at each.",
}

// PhraseTable returns the static table. Callers must not mutate entries.
func PhraseTable() []Phrase {
	return phraseTable
}
