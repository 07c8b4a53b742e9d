package quiz

import (
	"context"
	"errors"
)

// ErrResultNotFound is internal to the store contract: GetResult reports it
// when a student has no result for a quiz. It never reaches API callers.
var ErrResultNotFound = errors.New("result not found")

type ListOpts struct {
	CourseID  string // filter, empty for all
	CreatedBy string // filter, empty for all
	Limit     int
	Offset    int
}

// Store is the keyed repository for quizzes and results. Quizzes are
// written once and never updated; results are write-once per
// (quiz_id, student_id), and PutResult must enforce that uniqueness
// itself — the application-level GetResult check is only a fast path.
type Store interface {
	PutQuiz(ctx context.Context, q Quiz) error
	GetQuiz(ctx context.Context, id string) (Quiz, error)
	ListQuizzes(ctx context.Context, opts ListOpts) ([]QuizSummary, error)

	// PutResult returns ErrDuplicateSubmission when a result already
	// exists for the same quiz and student.
	PutResult(ctx context.Context, r Result) error
	GetResult(ctx context.Context, quizID, studentID string) (Result, error)
}
