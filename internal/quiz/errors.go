package quiz

import "fmt"

// Kind is the machine-readable error category surfaced to callers.
type Kind string

const (
	KindEmptyDocument        Kind = "empty_document"
	KindGenerationService    Kind = "generation_service"
	KindNoArrayFound         Kind = "no_array_found"
	KindMalformedJSON        Kind = "malformed_json"
	KindDuplicateSubmission  Kind = "duplicate_submission"
	KindQuizNotFound         Kind = "quiz_not_found"
	KindInvalidAnswerPayload Kind = "invalid_answer_payload"
)

// Error pairs a Kind with a human-readable message. Only the kind and
// message cross the API boundary; the wrapped cause stays server-side.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches by kind, so errors.Is(err, ErrDuplicateSubmission) works for
// any wrapped instance.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrEmptyDocument        = &Error{Kind: KindEmptyDocument, Message: "the uploaded document seems to be empty or contains only images"}
	ErrGenerationService    = &Error{Kind: KindGenerationService, Message: "generation service unreachable"}
	ErrNoArrayFound         = &Error{Kind: KindNoArrayFound, Message: "model response did not contain a JSON array"}
	ErrMalformedJSON        = &Error{Kind: KindMalformedJSON, Message: "model generated an invalid JSON structure"}
	ErrDuplicateSubmission  = &Error{Kind: KindDuplicateSubmission, Message: "quiz already submitted"}
	ErrQuizNotFound         = &Error{Kind: KindQuizNotFound, Message: "quiz not found"}
	ErrInvalidAnswerPayload = &Error{Kind: KindInvalidAnswerPayload, Message: "invalid answers format; expected an object keyed by question id"}
)

func wrapErr(kind *Error, cause error) *Error {
	return &Error{Kind: kind.Kind, Message: kind.Message, Err: cause}
}
