// Package classifier assigns an intent to an utterance using lexical trigger
// patterns. It is pluggable: the dialogue manager depends only on the
// Classifier interface, so the pattern set can be swapped without touching
// the state machine.
package classifier

import (
	"regexp"
	"strings"

	"appointment-assistant/internal/model"
)

// Result is a classified intent with its confidence in [0,1].
type Result struct {
	Intent     model.Intent
	Confidence float64
}

// Classifier classifies utterance text given the conversation's active mode.
type Classifier interface {
	Classify(text string, active model.Mode) Result
}

// PatternClassifier is the lexical-pattern implementation.
type PatternClassifier struct {
	patterns map[model.Intent][]*regexp.Regexp
}

var _ Classifier = (*PatternClassifier)(nil)

// New creates a PatternClassifier with the built-in trigger phrase sets.
func New() *PatternClassifier {
	return &PatternClassifier{patterns: map[model.Intent][]*regexp.Regexp{
		model.IntentSwitchMode: compile(
			`switch\s+to\s+(?:appointment|scheduling|knowledge|question)\s*mode`,
			`\b(?:appointment|scheduling|knowledge|question)\s+mode\b`,
		),
		model.IntentKnowledgeQuery: compile(
			`\bwhat\s+(?:is|are|does)\b`,
			`\bwho\s+(?:is|are)\b`,
			`\bhow\s+(?:does|do)\b`,
			`\bwhen\s+(?:was|is)\b.*\b(?:invented|born|founded|discovered|built)\b`,
			`\bwhere\s+(?:is|are)\b`,
			`\bwhy\s+(?:is|are)\b`,
			`\bexplain\b`,
			`\btell\s+me\s+(?:about|more)\b`,
			`\bdefine\b`, `\bdefinition\b`, `\bmeaning\s+of\b`,
			`can\s+you\s+explain`,
		),
		model.IntentCheckAvailability: compile(
			`check\s+avail[ai]bility`, // covers the "availibility" misspelling
			`when\s+.*\bavailable\b`,
			`what\s+times\s+are\s+available`,
			`available\s+times`,
			`\bis\s+\w+\s+available\b`,
			`avail[ai]bility\s+of`,
			`when\s+can\s+.*\bmeet\b`,
			`\bfree\s+(?:on|at|this|next|tomorrow)\b`,
		),
		model.IntentCancelAppointment: compile(
			`cancel\s+(?:an?\s+|the\s+|my\s+|this\s+|that\s+)?appointment`,
			`cancel\s+.*\b(?:meeting|with)\b`,
			`\bcancel\s+it\b`,
			`(?:remove|delete)\s+(?:an?\s+|the\s+|my\s+|this\s+)?appointment`,
			`(?:want|need)\s*(?:to)?\s*cancel`,
			`don'?t\s+want\s+(?:the|this)\s+appointment`,
		),
		model.IntentScheduleAppointment: compile(
			`(?:schedule|book|make|set\s+up|create)\s+(?:an?\s+|another\s+|new\s+)?(?:appointment|meeting|consultation|visit)`,
			`(?:schedule|book|make)\s+.*\b(?:with|for)\b`,
			`\bsee\s+(?:a\s+|the\s+)?doctor\b`,
			`need\s+(?:a\s+|to\s+see\s+a\s+)?doctor`,
		),
		model.IntentListAppointments: compile(
			`(?:list|show|view)\s+(?:my\s+|all\s+)?appointments`,
			`what\s+appointments`,
			`\bmy\s+(?:appointments|schedule)\b`,
			`do\s+i\s+have\s+.*appointments?`,
		),
	}}
}

func compile(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		res = append(res, regexp.MustCompile(expr))
	}
	return res
}

// classificationOrder fixes tie-breaking between intents: the first matching
// intent in this order wins the primary slot, mirroring the precedence of
// more specific triggers over generic scheduling verbs.
var classificationOrder = []model.Intent{
	model.IntentSwitchMode,
	model.IntentKnowledgeQuery,
	model.IntentCheckAvailability,
	model.IntentCancelAppointment,
	model.IntentScheduleAppointment,
	model.IntentListAppointments,
}

// Classify returns the primary intent and a confidence score. Confidence is
// divided across competing intent matches; a question-form utterance with no
// appointment trigger defaults to KnowledgeQuery at reduced confidence.
func (c *PatternClassifier) Classify(text string, active model.Mode) Result {
	lower := strings.ToLower(text)

	var matched []model.Intent
	for _, intent := range classificationOrder {
		for _, re := range c.patterns[intent] {
			if re.MatchString(lower) {
				matched = append(matched, intent)
				break
			}
		}
	}

	if len(matched) > 0 {
		// SwitchMode and KnowledgeQuery triggers are deliberate phrasings;
		// they are not diluted by an incidental appointment keyword match.
		primary := matched[0]
		confidence := baseConfidence
		if primary != model.IntentSwitchMode && primary != model.IntentKnowledgeQuery {
			confidence = baseConfidence / float64(len(matched))
		}
		return Result{Intent: primary, Confidence: confidence}
	}

	if isQuestionForm(lower) {
		return Result{Intent: model.IntentKnowledgeQuery, Confidence: questionConfidence}
	}

	return Result{Intent: model.IntentUnknown, Confidence: 0}
}

var interrogativeRe = regexp.MustCompile(`^\s*(?:what|who|when|where|why|how|is|are|does|do|can|could)\b`)

var appointmentHintRe = regexp.MustCompile(
	`\b(?:appointment|schedule|book|meeting|cancel|available|avail[ai]bility|reschedule)\b`)

func isQuestionForm(lower string) bool {
	if appointmentHintRe.MatchString(lower) {
		return false
	}
	return strings.HasSuffix(strings.TrimSpace(lower), "?") || interrogativeRe.MatchString(lower)
}
