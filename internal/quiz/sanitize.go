package quiz

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultOutcomeTag is assigned when the model omits a co_tag.
const DefaultOutcomeTag = "General"

// enumPrefix matches manual enumeration markers the model sometimes adds
// despite instructions: "A)", "b.", "12.", "iv)", "Answer:", "Option 3:".
var enumPrefix = regexp.MustCompile(`(?i)^\s*(option\s*\d+\s*:|answer\s*:|[a-z0-9]{1,3}[).])\s*`)

// StripEnumPrefix removes a leading enumeration marker and trims the
// surrounding whitespace. Applying it to already-clean text is a no-op.
func StripEnumPrefix(s string) string {
	return strings.TrimSpace(enumPrefix.ReplaceAllString(s, ""))
}

// SanitizeItems turns parsed raw items into canonical Questions: enumeration
// prefixes stripped from every option and from the answer, question IDs
// assigned as the string form of the zero-based position, and missing
// outcome tags defaulted. IDs are never renumbered after this point.
//
// Index-vs-text answer ambiguity in legacy records is deliberately left
// alone here; the evaluator resolves it at read time.
func SanitizeItems(items []RawItem) []Question {
	questions := make([]Question, 0, len(items))
	for i, it := range items {
		opts := make([]string, len(it.Options))
		for j, o := range it.Options {
			opts[j] = StripEnumPrefix(o)
		}

		tag := strings.TrimSpace(it.CoTag)
		if tag == "" {
			tag = DefaultOutcomeTag
		}

		questions = append(questions, Question{
			QuestionID: strconv.Itoa(i),
			Text:       strings.TrimSpace(it.Question),
			Options:    opts,
			Answer:     StripEnumPrefix(it.answerText()),
			OutcomeTag: tag,
		})
	}
	return questions
}
