package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/quizforge/quizforge/internal/grading"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) PutQuiz(ctx context.Context, q Quiz) error {
	qj, err := json.Marshal(q.Questions)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO quizzes (id,title,course_id,created_by,questions_json,question_count,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		q.ID, q.Title, q.CourseID, q.CreatedBy, string(qj), len(q.Questions), q.CreatedAt)
	return err
}

func (s *SQLStore) GetQuiz(ctx context.Context, id string) (Quiz, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,title,course_id,created_by,questions_json,question_count,created_at
		FROM quizzes WHERE id=$1`, id)
	var q Quiz
	var qjson string
	if err := row.Scan(&q.ID, &q.Title, &q.CourseID, &q.CreatedBy, &qjson, &q.QuestionCount, &q.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Quiz{}, ErrQuizNotFound
		}
		return Quiz{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &q.Questions); err != nil {
		return Quiz{}, err
	}
	return q, nil
}

func (s *SQLStore) ListQuizzes(ctx context.Context, opts ListOpts) ([]QuizSummary, error) {
	query := `SELECT id,title,course_id,question_count,created_at FROM quizzes`
	var where []string
	var args []any
	if opts.CourseID != "" {
		args = append(args, opts.CourseID)
		where = append(where, fmt.Sprintf("course_id=$%d", len(args)))
	}
	if opts.CreatedBy != "" {
		args = append(args, opts.CreatedBy)
		where = append(where, fmt.Sprintf("created_by=$%d", len(args)))
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []QuizSummary
	for rows.Next() {
		var qs QuizSummary
		if err := rows.Scan(&qs.ID, &qs.Title, &qs.CourseID, &qs.QuestionCount, &qs.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, qs)
	}
	return out, rows.Err()
}

func (s *SQLStore) PutResult(ctx context.Context, r Result) error {
	dj, err := json.Marshal(r.Details)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO quiz_results (id,quiz_id,student_id,score,total_questions,percentage,details_json,submitted_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		r.ID, r.QuizID, r.StudentID, r.Score, r.TotalQuestions, r.Percentage, string(dj), r.SubmittedAt)
	if err != nil && isUniqueViolation(err) {
		return wrapErr(ErrDuplicateSubmission, err)
	}
	return err
}

func (s *SQLStore) GetResult(ctx context.Context, quizID, studentID string) (Result, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,quiz_id,student_id,score,total_questions,percentage,details_json,submitted_at
		FROM quiz_results WHERE quiz_id=$1 AND student_id=$2`, quizID, studentID)
	var r Result
	var djson string
	if err := row.Scan(&r.ID, &r.QuizID, &r.StudentID, &r.Score, &r.TotalQuestions, &r.Percentage, &djson, &r.SubmittedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Result{}, ErrResultNotFound
		}
		return Result{}, err
	}
	if err := json.Unmarshal([]byte(djson), &r.Details); err != nil {
		r.Details = []grading.Outcome{}
	}
	return r, nil
}

// isUniqueViolation recognizes the compound-key constraint on
// quiz_results(quiz_id, student_id) for both supported drivers.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
