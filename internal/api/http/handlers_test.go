package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	authmw "github.com/quizforge/quizforge/internal/auth/middleware"
	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/rbac"
)

type staticExtractor string

func (s staticExtractor) Text(data []byte) (string, error) { return string(s), nil }

func newTestRouter(t *testing.T) (*chi.Mux, quiz.Store) {
	t.Helper()
	store := quiz.NewInMemoryStore()
	svc := quiz.NewService(store, llm.NewMockClient(""), staticExtractor("notes"), nil)

	r := chi.NewRouter()
	r.Get("/student/quiz/{quizID}", GetStudentQuizHandler(svc))
	r.Post("/student/quiz/{quizID}/submit", SubmitQuizHandler(svc))
	return r, store
}

// identify fakes an authenticated request the way the JWT middleware would.
func identify(r *http.Request, sub, role string) *http.Request {
	ctx := authmw.WithSubject(r.Context(), sub)
	return r.WithContext(rbac.WithRole(ctx, role))
}

func seedQuiz(t *testing.T, store quiz.Store) quiz.Quiz {
	t.Helper()
	q := quiz.Quiz{
		ID:       "quiz-1",
		Title:    "Unit 1",
		CourseID: "BIO101",
		Questions: []quiz.Question{
			{QuestionID: "0", Text: "Capital?", Options: []string{"Paris", "Lyon", "Nice", "Lille"}, Answer: "Paris", OutcomeTag: "CO1"},
		},
		QuestionCount: 1,
	}
	if err := store.PutQuiz(context.Background(), q); err != nil {
		t.Fatal(err)
	}
	return q
}

func TestSubmitQuizHandler_Success(t *testing.T) {
	r, store := newTestRouter(t)
	q := seedQuiz(t, store)

	req := httptest.NewRequest("POST", "/student/quiz/"+q.ID+"/submit",
		strings.NewReader(`{"answers":{"0":"paris"}}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, identify(req, "student-1", "student"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Score      int     `json:"score"`
		Total      int     `json:"total"`
		Percentage float64 `json:"percentage"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Score != 1 || resp.Total != 1 || resp.Percentage != 100.00 {
		t.Errorf("got %+v", resp)
	}
}

func TestSubmitQuizHandler_InvalidPayload(t *testing.T) {
	r, store := newTestRouter(t)
	q := seedQuiz(t, store)

	req := httptest.NewRequest("POST", "/student/quiz/"+q.ID+"/submit",
		strings.NewReader(`{"answers":["not","a","mapping"]}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, identify(req, "student-1", "student"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid_answer_payload") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestSubmitQuizHandler_Duplicate(t *testing.T) {
	r, store := newTestRouter(t)
	q := seedQuiz(t, store)

	body := `{"answers":{"0":"Paris"}}`
	first := httptest.NewRequest("POST", "/student/quiz/"+q.ID+"/submit", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, identify(first, "student-1", "student"))
	if rec.Code != http.StatusOK {
		t.Fatalf("first submit: status = %d", rec.Code)
	}

	second := httptest.NewRequest("POST", "/student/quiz/"+q.ID+"/submit", strings.NewReader(body))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, identify(second, "student-1", "student"))
	if rec.Code != http.StatusConflict {
		t.Fatalf("second submit: status = %d, want 409", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "duplicate_submission") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestSubmitQuizHandler_QuizNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest("POST", "/student/quiz/missing/submit", strings.NewReader(`{"answers":{}}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, identify(req, "student-1", "student"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetStudentQuizHandler_StripsAnswers(t *testing.T) {
	r, store := newTestRouter(t)
	q := seedQuiz(t, store)

	req := httptest.NewRequest("GET", "/student/quiz/"+q.ID, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, identify(req, "student-1", "student"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `"answer"`) {
		t.Errorf("answers leaked: %s", rec.Body.String())
	}
}

func TestGetStudentQuizHandler_AfterSubmission(t *testing.T) {
	r, store := newTestRouter(t)
	q := seedQuiz(t, store)

	submit := httptest.NewRequest("POST", "/student/quiz/"+q.ID+"/submit", strings.NewReader(`{"answers":{}}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, identify(submit, "student-1", "student"))
	if rec.Code != http.StatusOK {
		t.Fatalf("submit: status = %d", rec.Code)
	}

	get := httptest.NewRequest("GET", "/student/quiz/"+q.ID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, identify(get, "student-1", "student"))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"submitted":true`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}
