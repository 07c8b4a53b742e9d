package quiz

import "github.com/quizforge/quizforge/internal/grading"

// Question is one generated multiple-choice item. Answer holds either the
// literal text of the correct option (current records) or a zero-based
// option index as a string (records written before answers were
// canonicalized). The representation is untagged in storage and resolved
// at evaluation time.
type Question struct {
	QuestionID string   `json:"question_id"`
	Text       string   `json:"question"`
	Options    []string `json:"options"`
	Answer     string   `json:"answer,omitempty"`
	OutcomeTag string   `json:"co_tag"`
}

type Quiz struct {
	ID            string     `json:"quiz_id"`
	Title         string     `json:"title"`
	CourseID      string     `json:"course_id"`
	CreatedBy     string     `json:"created_by"`
	Questions     []Question `json:"questions"`
	QuestionCount int        `json:"question_count"`
	CreatedAt     int64      `json:"created_at"`
}

// QuizSummary is the listing projection. Submitted is only meaningful when
// the list was built for a particular student.
type QuizSummary struct {
	ID            string `json:"quiz_id"`
	Title         string `json:"title"`
	CourseID      string `json:"course_id"`
	QuestionCount int    `json:"question_count"`
	CreatedAt     int64  `json:"created_at"`
	Submitted     bool   `json:"submitted"`
}

// Result is one student's scored attempt. Immutable once written; at most
// one exists per (quiz_id, student_id).
type Result struct {
	ID             string            `json:"result_id"`
	QuizID         string            `json:"quiz_id"`
	StudentID      string            `json:"student_id"`
	Score          int               `json:"score"`
	TotalQuestions int               `json:"total_questions"`
	Percentage     float64           `json:"percentage"`
	SubmittedAt    int64             `json:"submitted_at"`
	Details        []grading.Outcome `json:"details"`
}
