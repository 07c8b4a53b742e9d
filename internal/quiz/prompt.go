package quiz

import (
	"fmt"
	"strings"
)

// SystemPrompt pins the model into strict-JSON mode. The generation service
// is not schema-constrained, so the prompt is the only enforcement point.
const SystemPrompt = "You are a specialized JSON generator for academic assessments. Do not include introductory text."

// DefaultSourceUnits bounds the source text sent to the model. The budget
// is a proxy for tokens at roughly 4 characters per unit.
const DefaultSourceUnits = 2000

// TruncateSource prefix-cuts text to maxUnits*4 characters. Content beyond
// the budget is dropped, not summarized.
func TruncateSource(text string, maxUnits int) string {
	limit := maxUnits * 4
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

// BuildPrompt composes the generation instruction. Every structural
// requirement on the output is spelled out as a literal rule, including
// that answers must be option text rather than indexes, since nothing
// downstream can force the model to comply.
func BuildPrompt(text string, numQuestions int, courseID string, outcomes []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate exactly %d multiple choice questions from this text:\n", numQuestions)
	b.WriteString(TruncateSource(text, DefaultSourceUnits))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "COURSE: %s\n", courseID)
	b.WriteString("OUTCOMES TO COVER:\n")
	b.WriteString(strings.Join(outcomes, "\n"))
	b.WriteString("\n\nSTRICT RULES:\n")
	b.WriteString("1. Provide the output ONLY as a valid JSON array. No prose before or after it.\n")
	b.WriteString("2. Each object must have: \"question\", \"options\" (array of 4), \"answer\", and \"co_tag\".\n")
	b.WriteString("3. \"answer\" must be the literal text of one of the options, never an index or a letter.\n")
	b.WriteString("4. Do not prefix options or answers with enumeration markers such as \"A)\" or \"1.\".\n")
	b.WriteString("5. Distribute questions across the outcomes provided.\n")

	return b.String()
}
