package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizforge/quizforge/internal/quiz"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeQuizError maps the core error taxonomy onto HTTP statuses. Only the
// kind and message leave the server.
func writeQuizError(w http.ResponseWriter, err error) {
	var qe *quiz.Error
	if !errors.As(err, &qe) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal error"})
		return
	}

	status := http.StatusInternalServerError
	switch qe.Kind {
	case quiz.KindEmptyDocument, quiz.KindInvalidAnswerPayload:
		status = http.StatusBadRequest
	case quiz.KindQuizNotFound:
		status = http.StatusNotFound
	case quiz.KindDuplicateSubmission:
		status = http.StatusConflict
	case quiz.KindGenerationService, quiz.KindNoArrayFound, quiz.KindMalformedJSON:
		status = http.StatusBadGateway
	}
	writeJSON(w, status, map[string]string{
		"error":   string(qe.Kind),
		"message": qe.Message,
	})
}
