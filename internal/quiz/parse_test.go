package quiz

import (
	"errors"
	"testing"
)

func TestParseItems_IgnoresSurroundingProse(t *testing.T) {
	raw := `Sure! Here is the quiz: [
		{"question":"Q1?","options":["a","b","c","d"],"answer":"a","co_tag":"CO1"},
		{"question":"Q2?","options":["a","b","c","d"],"answer":"b"}
	] Hope that helps!`

	items, err := ParseItems(raw)
	if err != nil {
		t.Fatalf("ParseItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Question != "Q1?" || items[0].CoTag != "CO1" {
		t.Errorf("first item parsed wrong: %+v", items[0])
	}
}

func TestParseItems_NoArray(t *testing.T) {
	for _, raw := range []string{
		"I could not generate any questions.",
		"only an opening [ bracket",
		"only a closing ] bracket",
		"] reversed [",
	} {
		if _, err := ParseItems(raw); !errors.Is(err, ErrNoArrayFound) {
			t.Errorf("ParseItems(%q) = %v, want ErrNoArrayFound", raw, err)
		}
	}
}

func TestParseItems_MalformedJSON(t *testing.T) {
	_, err := ParseItems(`Here you go: [{"question": "Q1?", "options": [truncated`)
	if !errors.Is(err, ErrMalformedJSON) {
		t.Fatalf("got %v, want ErrMalformedJSON", err)
	}
}

func TestAnswerText_ToleratesNumericAnswer(t *testing.T) {
	items, err := ParseItems(`[{"question":"Q","options":["a","b","c","d"],"answer":0}]`)
	if err != nil {
		t.Fatalf("ParseItems: %v", err)
	}
	if got := items[0].answerText(); got != "0" {
		t.Errorf("answerText = %q, want %q", got, "0")
	}
}

func TestAnswerText_Missing(t *testing.T) {
	items, err := ParseItems(`[{"question":"Q","options":["a","b","c","d"]}]`)
	if err != nil {
		t.Fatalf("ParseItems: %v", err)
	}
	if got := items[0].answerText(); got != "" {
		t.Errorf("answerText = %q, want empty", got)
	}
}
