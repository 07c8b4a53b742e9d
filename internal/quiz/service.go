package quiz

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/grading"
	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/storage"
)

// TextExtractor turns document bytes into plain text, page order preserved.
type TextExtractor interface {
	Text(data []byte) (string, error)
}

// GenTemperature leans deterministic without pinning the model entirely.
const GenTemperature = 0.2

type Service struct {
	store     Store
	gen       llm.Client
	extractor TextExtractor
	blobs     storage.BlobStore // optional; nil disables source archiving
}

func NewService(store Store, gen llm.Client, extractor TextExtractor, blobs storage.BlobStore) *Service {
	return &Service{store: store, gen: gen, extractor: extractor, blobs: blobs}
}

type GenerateInput struct {
	Document     []byte
	Title        string
	CourseID     string
	CreatedBy    string
	NumQuestions int
	Outcomes     []string
}

// Generate runs the whole creation pipeline: extract, compose, call the
// generation service, parse, sanitize, persist. Any failure before the
// store write aborts the operation with nothing persisted.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (Quiz, error) {
	text, err := s.extractor.Text(in.Document)
	if err != nil {
		return Quiz{}, wrapErr(ErrEmptyDocument, err)
	}
	if strings.TrimSpace(text) == "" {
		return Quiz{}, ErrEmptyDocument
	}

	prompt := BuildPrompt(text, in.NumQuestions, in.CourseID, in.Outcomes)
	raw, err := s.gen.Complete(ctx, llm.Request{
		System:      SystemPrompt,
		Prompt:      prompt,
		Temperature: GenTemperature,
	})
	if err != nil {
		return Quiz{}, wrapErr(ErrGenerationService, err)
	}

	items, err := ParseItems(raw)
	if err != nil {
		return Quiz{}, err
	}

	q := Quiz{
		ID:        uuid.NewString(),
		Title:     in.Title,
		CourseID:  in.CourseID,
		CreatedBy: in.CreatedBy,
		Questions: SanitizeItems(items),
		CreatedAt: time.Now().Unix(),
	}
	q.QuestionCount = len(q.Questions)

	if err := s.store.PutQuiz(ctx, q); err != nil {
		return Quiz{}, err
	}

	if s.blobs != nil {
		key := storage.SourceDocKey(q.ID)
		if err := s.blobs.Put(key, bytes.NewReader(in.Document)); err != nil {
			log.Printf("archive source document %s: %v", key, err)
		}
	}
	return q, nil
}

// Submit scores a student's answers against a stored quiz and persists the
// result. The GetResult check is a fast-path rejection; the store's unique
// key is what actually prevents the double-insert race.
func (s *Service) Submit(ctx context.Context, quizID, studentID string, answers map[string]string) (Result, error) {
	if _, err := s.store.GetResult(ctx, quizID, studentID); err == nil {
		return Result{}, ErrDuplicateSubmission
	} else if !errors.Is(err, ErrResultNotFound) {
		return Result{}, err
	}

	q, err := s.store.GetQuiz(ctx, quizID)
	if err != nil {
		return Result{}, err
	}

	summary := grading.Evaluate(gradingView(q.Questions), answers)
	r := Result{
		ID:             uuid.NewString(),
		QuizID:         quizID,
		StudentID:      studentID,
		Score:          summary.Score,
		TotalQuestions: summary.Total,
		Percentage:     summary.Percentage,
		SubmittedAt:    time.Now().Unix(),
		Details:        summary.Outcomes,
	}
	if err := s.store.PutResult(ctx, r); err != nil {
		return Result{}, err
	}
	return r, nil
}

// StaffQuizzes lists quizzes authored by the caller, newest first.
func (s *Service) StaffQuizzes(ctx context.Context, staffID string) ([]QuizSummary, error) {
	return s.store.ListQuizzes(ctx, ListOpts{CreatedBy: staffID})
}

// StaffQuiz returns the full quiz, answers included.
func (s *Service) StaffQuiz(ctx context.Context, quizID string) (Quiz, error) {
	return s.store.GetQuiz(ctx, quizID)
}

// StudentQuizzes lists quizzes visible to a student, flagging the ones the
// student has already submitted.
func (s *Service) StudentQuizzes(ctx context.Context, courseID, studentID string) ([]QuizSummary, error) {
	list, err := s.store.ListQuizzes(ctx, ListOpts{CourseID: courseID})
	if err != nil {
		return nil, err
	}
	for i := range list {
		if _, err := s.store.GetResult(ctx, list[i].ID, studentID); err == nil {
			list[i].Submitted = true
		} else if !errors.Is(err, ErrResultNotFound) {
			return nil, err
		}
	}
	return list, nil
}

// StudentQuiz returns a quiz with answers stripped. A student who already
// submitted gets ErrDuplicateSubmission instead of a second look at the
// questions.
func (s *Service) StudentQuiz(ctx context.Context, quizID, studentID string) (Quiz, error) {
	if _, err := s.store.GetResult(ctx, quizID, studentID); err == nil {
		return Quiz{}, ErrDuplicateSubmission
	} else if !errors.Is(err, ErrResultNotFound) {
		return Quiz{}, err
	}

	q, err := s.store.GetQuiz(ctx, quizID)
	if err != nil {
		return Quiz{}, err
	}
	// Copy before stripping so a store handing out shared slices keeps
	// its answers intact.
	stripped := make([]Question, len(q.Questions))
	copy(stripped, q.Questions)
	for i := range stripped {
		stripped[i].Answer = ""
	}
	q.Questions = stripped
	return q, nil
}

func gradingView(questions []Question) []grading.Question {
	out := make([]grading.Question, len(questions))
	for i, q := range questions {
		out[i] = grading.Question{
			ID:         q.QuestionID,
			Text:       q.Text,
			Options:    q.Options,
			Answer:     q.Answer,
			OutcomeTag: q.OutcomeTag,
		}
	}
	return out
}
