// Package grading reconciles a stored question set against a student's raw
// submitted answers. Stored answers are not schema-consistent: depending on
// which generation of the pipeline wrote the record, the answer field is
// either a zero-based option index in string form or the literal text of
// the correct option. Classification happens once per question here;
// nothing upstream is expected to repair old records.
package grading

import (
	"math"
	"strconv"
	"strings"
)

// Question is the minimal view of a stored item needed for scoring.
type Question struct {
	ID         string
	Text       string
	Options    []string
	Answer     string
	OutcomeTag string
}

// Outcome records one question's verdict. OutcomeTag is carried through
// unchanged so callers can aggregate by learning outcome later.
type Outcome struct {
	QuestionID    string `json:"question_id"`
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
	StudentAnswer string `json:"student_answer"`
	IsCorrect     bool   `json:"is_correct"`
	OutcomeTag    string `json:"co_tag"`
}

type Summary struct {
	Outcomes   []Outcome
	Score      int
	Total      int
	Percentage float64
}

type answerKind int

const (
	answerIndex answerKind = iota
	answerLiteral
)

// answerSpec is the stored answer after classification: a legacy option
// index or literal option text. raw keeps the trimmed original for the
// display fallback when an index cannot be resolved.
type answerSpec struct {
	kind  answerKind
	index int
	raw   string
}

func classifyAnswer(stored string) answerSpec {
	s := strings.TrimSpace(stored)
	if isAllDigits(s) {
		idx, err := strconv.Atoi(s)
		if err != nil {
			// Digit run too long for an int; resolves as out of bounds.
			idx = -1
		}
		return answerSpec{kind: answerIndex, index: idx, raw: s}
	}
	return answerSpec{kind: answerLiteral, raw: s}
}

// resolve returns the correct-answer display value and whether it is
// gradable. An out-of-bounds index is not gradable: the verdict is always
// incorrect and the display falls back to the raw stored string.
func (a answerSpec) resolve(options []string) (string, bool) {
	if a.kind == answerIndex {
		if a.index < 0 || a.index >= len(options) {
			return a.raw, false
		}
		return options[a.index], true
	}
	return a.raw, true
}

// Evaluate scores every question against the submitted answers, keyed by
// question ID. Missing entries count as empty answers. Malformed stored
// answers never abort scoring; they resolve to incorrect.
func Evaluate(questions []Question, answers map[string]string) Summary {
	outcomes := make([]Outcome, 0, len(questions))
	score := 0

	for _, q := range questions {
		submitted := answers[q.ID]
		display, gradable := classifyAnswer(q.Answer).resolve(q.Options)

		trimmed := strings.TrimSpace(submitted)
		correct := gradable && trimmed != "" && strings.EqualFold(trimmed, display)
		if correct {
			score++
		}

		outcomes = append(outcomes, Outcome{
			QuestionID:    q.ID,
			Question:      q.Text,
			CorrectAnswer: display,
			StudentAnswer: submitted,
			IsCorrect:     correct,
			OutcomeTag:    q.OutcomeTag,
		})
	}

	total := len(questions)
	pct := 0.0
	if total > 0 {
		pct = math.Round(float64(score)/float64(total)*100*100) / 100
	}
	return Summary{Outcomes: outcomes, Score: score, Total: total, Percentage: pct}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
