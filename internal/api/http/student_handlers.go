package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	authmw "github.com/quizforge/quizforge/internal/auth/middleware"
	"github.com/quizforge/quizforge/internal/quiz"
)

// ListStudentQuizzesHandler lists available quizzes, flagging those the
// calling student already submitted.
func ListStudentQuizzesHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courseID := strings.TrimSpace(r.URL.Query().Get("course_id"))
		list, err := svc.StudentQuizzes(r.Context(), courseID, authmw.SubjectFromContext(r.Context()))
		if err != nil {
			writeQuizError(w, err)
			return
		}
		if list == nil {
			list = []quiz.QuizSummary{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"quizzes": list})
	}
}

// GetStudentQuizHandler serves the quiz with answers stripped. A student
// who already submitted is refused another look at the questions.
func GetStudentQuizHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := svc.StudentQuiz(r.Context(), chi.URLParam(r, "quizID"), authmw.SubjectFromContext(r.Context()))
		if errors.Is(err, quiz.ErrDuplicateSubmission) {
			writeJSON(w, http.StatusForbidden, map[string]any{
				"submitted": true,
				"message":   "you have already submitted this quiz",
			})
			return
		}
		if err != nil {
			writeQuizError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"submitted": false,
			"questions": q.Questions,
		})
	}
}

// SubmitQuizHandler scores the student's answers and persists the result.
func SubmitQuizHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Answers json.RawMessage `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeQuizError(w, quiz.ErrInvalidAnswerPayload)
			return
		}
		// Only a non-object payload is rejected. Individual values that are
		// not strings are carried through as raw text and simply grade
		// incorrect; one corrupt answer must not abort the submission.
		answers := map[string]string{}
		if len(req.Answers) > 0 && string(req.Answers) != "null" {
			var rawAnswers map[string]json.RawMessage
			if err := json.Unmarshal(req.Answers, &rawAnswers); err != nil {
				writeQuizError(w, quiz.ErrInvalidAnswerPayload)
				return
			}
			for k, v := range rawAnswers {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					s = string(v)
				}
				answers[k] = s
			}
		}

		res, err := svc.Submit(r.Context(), chi.URLParam(r, "quizID"), authmw.SubjectFromContext(r.Context()), answers)
		if err != nil {
			writeQuizError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"score":      res.Score,
			"total":      res.TotalQuestions,
			"percentage": res.Percentage,
			"breakdown":  res.Details,
		})
	}
}
