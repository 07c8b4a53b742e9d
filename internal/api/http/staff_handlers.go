package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	authmw "github.com/quizforge/quizforge/internal/auth/middleware"
	"github.com/quizforge/quizforge/internal/quiz"
)

const maxUploadBytes = 32 << 20

// UploadQuizHandler accepts a multipart form with a "pdf" file plus
// generation parameters and runs the whole creation pipeline. Nothing is
// persisted when any stage fails.
func UploadQuizHandler(svc *quiz.Service, maxQuestions, defaultQuestions int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad multipart form"})
			return
		}
		f, _, err := r.FormFile("pdf")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "no PDF uploaded"})
			return
		}
		defer f.Close()
		doc, err := io.ReadAll(f)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "could not read upload"})
			return
		}

		courseID := strings.TrimSpace(r.FormValue("course_id"))
		if courseID == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "course ID is required"})
			return
		}
		title := strings.TrimSpace(r.FormValue("title"))
		if title == "" {
			title = "Untitled Quiz"
		}

		numQuestions := defaultQuestions
		if v := r.FormValue("num_questions"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				writeJSON(w, http.StatusBadRequest, map[string]string{"message": "num_questions must be a positive integer"})
				return
			}
			numQuestions = n
		}
		if numQuestions > maxQuestions {
			numQuestions = maxQuestions
		}

		var outcomes []string
		if v := r.FormValue("course_outcomes"); v != "" {
			if err := json.Unmarshal([]byte(v), &outcomes); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"message": "course_outcomes must be a JSON array of strings"})
				return
			}
		}

		q, err := svc.Generate(r.Context(), quiz.GenerateInput{
			Document:     doc,
			Title:        title,
			CourseID:     courseID,
			CreatedBy:    authmw.SubjectFromContext(r.Context()),
			NumQuestions: numQuestions,
			Outcomes:     outcomes,
		})
		if err != nil {
			writeQuizError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message":   "quiz generated successfully",
			"quiz_id":   q.ID,
			"title":     q.Title,
			"course_id": q.CourseID,
			"questions": q.Questions,
		})
	}
}

// ListStaffQuizzesHandler returns quizzes authored by the caller, newest
// first.
func ListStaffQuizzesHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.StaffQuizzes(r.Context(), authmw.SubjectFromContext(r.Context()))
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

// GetStaffQuizHandler returns the full quiz, answers included.
func GetStaffQuizHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := svc.StaffQuiz(r.Context(), chi.URLParam(r, "quizID"))
		if err != nil {
			writeQuizError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"quiz_id":   q.ID,
			"title":     q.Title,
			"course_id": q.CourseID,
			"questions": q.Questions,
		})
	}
}
