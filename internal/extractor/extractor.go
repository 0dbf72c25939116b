// Package extractor parses raw utterance text into typed candidate entities
// for the dialogue engine. Extraction is heuristic and side-effect-free:
// unmatched fragments are omitted, never an error.
package extractor

import (
	"regexp"
	"sort"
	"strings"
)

// Extractor recognizes person, date, time and recurrence entities.
type Extractor struct{}

// New creates a new entity extractor.
func New() *Extractor {
	return &Extractor{}
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	regexp.MustCompile(`\b(?:in|after)\s+\d+\s+(?:day|days|week|weeks|month|months)\b`),
	regexp.MustCompile(`\b\d+\s+(?:day|days|week|weeks|month|months)\s+from\s+(?:now|today)\b`),
	regexp.MustCompile(`\b(?:next|this)\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday|week|month)\b`),
	regexp.MustCompile(`\b(?:tomorrow|today|yesterday)\b`),
	regexp.MustCompile(`\b(?:january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s*\d{4})?\b`),
	regexp.MustCompile(`\b\d{1,2}(?:st|nd|rd|th)?\s+(?:of\s+)?(?:january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)(?:,?\s*\d{4})?\b`),
	regexp.MustCompile(`\b(?:end|beginning|start)\s+of\s+(?:next\s+)?month\b`),
	regexp.MustCompile(`\b(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
}

var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}[:.]\d{2}\s*(?:am|pm|a\.m\.|p\.m\.)?`),
	regexp.MustCompile(`\b\d{1,2}\s*(?:am|pm|a\.m\.|p\.m\.)`),
	regexp.MustCompile(`\b\d{1,2}\s*o'?\s?clock\b`),
	regexp.MustCompile(`\b(?:morning|afternoon|evening|night|noon|midday)\b`),
}

var recurrencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bevery\s+[a-z]+\b`),
	regexp.MustCompile(`\b(?:weekly|daily|monthly)\b`),
}

var personPhraseRe = regexp.MustCompile(
	`\b(?:with|for|of|see)\s+((?:dr|mr|mrs|ms|miss|prof)\.?\s+)?([a-z][a-z]+)(?:\s+([a-z][a-z]+))?`)

var numericTokenRe = regexp.MustCompile(`^\d`)

// Extract returns the ordered list of entities found in text. Tokens that
// plausibly belong to more than one kind are emitted once per candidate kind.
func (e *Extractor) Extract(text string) []Entity {
	lower := strings.ToLower(text)
	var entities []Entity

	entities = append(entities, matchAll(lower, KindDateExpr, datePatterns)...)
	entities = append(entities, matchAll(lower, KindTimeExpr, timePatterns)...)
	entities = append(entities, matchAll(lower, KindRecurrence, recurrencePatterns)...)
	entities = append(entities, e.extractPersons(lower, entities)...)

	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Span[0] < entities[j].Span[0]
	})
	return entities
}

// matchAll applies patterns in priority order, claiming spans so a later,
// looser pattern cannot re-report a fragment of an earlier match.
func matchAll(lower string, kind Kind, patterns []*regexp.Regexp) []Entity {
	var out []Entity
	var claimed [][2]int

	for _, re := range patterns {
		for _, loc := range re.FindAllStringIndex(lower, -1) {
			span := [2]int{loc[0], loc[1]}
			if overlapsAny(span, claimed) {
				continue
			}
			claimed = append(claimed, span)
			out = append(out, Entity{
				Kind:    kind,
				RawText: lower[span[0]:span[1]],
				Span:    span,
			})
		}
	}
	return out
}

// extractPersons finds person-name candidates. Matching is advisory: names
// are recognized case-insensitively and are not validated against any
// directory.
func (e *Extractor) extractPersons(lower string, others []Entity) []Entity {
	var out []Entity
	taken := make([][2]int, 0, len(others))
	for _, ent := range others {
		taken = append(taken, ent.Span)
	}

	// A single-token reply is most likely a direct answer to "who?".
	// It is kept as a person candidate even when another kind also matched,
	// so slot context can pick the right reading.
	tokens := strings.Fields(lower)
	if len(tokens) == 1 {
		word := strings.Trim(tokens[0], ".,!?")
		if isNameWord(word) {
			start := strings.Index(lower, word)
			out = append(out, Entity{
				Kind:    KindPerson,
				RawText: capitalize(word),
				Span:    [2]int{start, start + len(word)},
			})
		}
		return out
	}

	// "with Dr Smith", "availability of john", "see prof jones" forms.
	for _, m := range personPhraseRe.FindAllStringSubmatchIndex(lower, -1) {
		name, span, ok := buildName(lower, m)
		if !ok || overlapsAny(span, taken) {
			continue
		}
		out = append(out, Entity{Kind: KindPerson, RawText: name, Span: span})
		taken = append(taken, span)
	}
	if len(out) > 0 {
		return out
	}

	// Fallback: the first plausible name-like token anywhere in the text.
	offset := 0
	for _, token := range tokens {
		start := strings.Index(lower[offset:], token) + offset
		offset = start + len(token)
		word := strings.Trim(token, ".,!?")
		span := [2]int{start, start + len(word)}
		if !isNameWord(word) || overlapsAny(span, taken) {
			continue
		}
		out = append(out, Entity{Kind: KindPerson, RawText: capitalize(word), Span: span})
		break
	}
	return out
}

// buildName assembles "Title First Last" from a personPhraseRe match,
// dropping parts that are ordinary words rather than names.
func buildName(lower string, m []int) (string, [2]int, bool) {
	group := func(i int) (string, int, int) {
		if m[2*i] < 0 {
			return "", -1, -1
		}
		return lower[m[2*i]:m[2*i+1]], m[2*i], m[2*i+1]
	}

	first, firstStart, firstEnd := group(2)
	if !isNameWord(first) {
		return "", [2]int{}, false
	}

	parts := []string{}
	start, end := firstStart, firstEnd

	if title, titleStart, _ := group(1); title != "" {
		base := strings.Trim(strings.TrimSpace(title), ".")
		if titles[base] {
			parts = append(parts, capitalize(base))
			start = titleStart
		}
	}
	parts = append(parts, capitalize(first))

	if last, _, lastEnd := group(3); last != "" && isNameWord(last) {
		parts = append(parts, capitalize(last))
		end = lastEnd
	}

	return strings.Join(parts, " "), [2]int{start, end}, true
}

func isNameWord(word string) bool {
	if len(word) <= 1 {
		return false
	}
	if stopWords[word] || temporalWords[word] || domainWords[word] {
		return false
	}
	// Covers bare numbers and date fragments like "15th" or "3rd".
	if numericTokenRe.MatchString(word) {
		return false
	}
	return true
}

func overlapsAny(span [2]int, taken [][2]int) bool {
	for _, t := range taken {
		if span[0] < t[1] && t[0] < span[1] {
			return true
		}
	}
	return false
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
