package quiz

import (
	"encoding/json"
	"strings"
)

// RawItem is one item as the model emitted it, before sanitization.
// Answer is decoded loosely: older model outputs put a bare option index
// (sometimes a JSON number) where current ones put the option text.
type RawItem struct {
	Question string          `json:"question"`
	Options  []string        `json:"options"`
	Answer   json.RawMessage `json:"answer"`
	CoTag    string          `json:"co_tag"`
}

// ParseItems extracts the item array from raw completion text. Models
// routinely wrap valid JSON in conversational prose, so everything outside
// the first '[' and the last ']' is discarded. No repair of truncated or
// otherwise broken arrays is attempted; the caller retries the whole
// generation instead.
func ParseItems(raw string) ([]RawItem, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoArrayFound
	}

	var items []RawItem
	if err := json.Unmarshal([]byte(raw[start:end+1]), &items); err != nil {
		return nil, wrapErr(ErrMalformedJSON, err)
	}
	return items, nil
}

// answerText renders the raw answer field as a string regardless of the
// JSON type the model chose. A numeric 0 becomes "0", which the evaluator
// later classifies as a legacy index.
func (it RawItem) answerText() string {
	if len(it.Answer) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(it.Answer, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(it.Answer, &n); err == nil {
		return n.String()
	}
	return strings.TrimSpace(string(it.Answer))
}
