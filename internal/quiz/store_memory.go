package quiz

import (
	"context"
	"sort"
	"sync"
)

// memoryStore keeps everything in maps. Used by tests and offline dev. The
// results map is keyed by quizID+"|"+studentID, so the one-result-per-pair
// rule holds under the same lock that does the insert — the same guarantee
// the SQL stores get from their unique index.
type memoryStore struct {
	mu      sync.RWMutex
	quizzes map[string]Quiz
	results map[string]Result
}

func NewInMemoryStore() Store {
	return &memoryStore{
		quizzes: map[string]Quiz{},
		results: map[string]Result{},
	}
}

func resultKey(quizID, studentID string) string { return quizID + "|" + studentID }

func (m *memoryStore) PutQuiz(ctx context.Context, q Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quizzes[q.ID] = q
	return nil
}

func (m *memoryStore) GetQuiz(ctx context.Context, id string) (Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.quizzes[id]
	if !ok {
		return Quiz{}, ErrQuizNotFound
	}
	return q, nil
}

func (m *memoryStore) ListQuizzes(ctx context.Context, opts ListOpts) ([]QuizSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []QuizSummary
	for _, q := range m.quizzes {
		if opts.CourseID != "" && q.CourseID != opts.CourseID {
			continue
		}
		if opts.CreatedBy != "" && q.CreatedBy != opts.CreatedBy {
			continue
		}
		out = append(out, QuizSummary{
			ID:            q.ID,
			Title:         q.Title,
			CourseID:      q.CourseID,
			QuestionCount: q.QuestionCount,
			CreatedAt:     q.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return out[i].ID > out[j].ID
	})
	if opts.Offset > 0 {
		if opts.Offset >= len(out) {
			return nil, nil
		}
		out = out[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (m *memoryStore) PutResult(ctx context.Context, r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := resultKey(r.QuizID, r.StudentID)
	if _, exists := m.results[k]; exists {
		return ErrDuplicateSubmission
	}
	m.results[k] = r
	return nil
}

func (m *memoryStore) GetResult(ctx context.Context, quizID, studentID string) (Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.results[resultKey(quizID, studentID)]
	if !ok {
		return Result{}, ErrResultNotFound
	}
	return r, nil
}
