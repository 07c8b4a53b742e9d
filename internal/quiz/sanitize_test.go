package quiz

import (
	"encoding/json"
	"strconv"
	"testing"
)

func rawItem(q, answer string, opts ...string) RawItem {
	aj, _ := json.Marshal(answer)
	return RawItem{Question: q, Options: opts, Answer: aj, CoTag: ""}
}

func TestSanitizeItems_AssignsSequentialIDs(t *testing.T) {
	items := make([]RawItem, 5)
	for i := range items {
		items[i] = rawItem("Q?", "a", "a", "b", "c", "d")
	}
	qs := SanitizeItems(items)
	if len(qs) != 5 {
		t.Fatalf("got %d questions, want 5", len(qs))
	}
	for i, q := range qs {
		if q.QuestionID != strconv.Itoa(i) {
			t.Errorf("question %d has id %q", i, q.QuestionID)
		}
	}
}

func TestSanitizeItems_DefaultsOutcomeTag(t *testing.T) {
	qs := SanitizeItems([]RawItem{rawItem("Q?", "a", "a", "b", "c", "d")})
	if qs[0].OutcomeTag != "General" {
		t.Errorf("co_tag = %q, want General", qs[0].OutcomeTag)
	}

	it := rawItem("Q?", "a", "a", "b", "c", "d")
	it.CoTag = "CO2"
	qs = SanitizeItems([]RawItem{it})
	if qs[0].OutcomeTag != "CO2" {
		t.Errorf("co_tag = %q, want CO2", qs[0].OutcomeTag)
	}
}

func TestStripEnumPrefix(t *testing.T) {
	cases := []struct{ in, want string }{
		{"A) Paris", "Paris"},
		{"b. Lyon", "Lyon"},
		{"12. Nice", "Nice"},
		{"iv) Lille", "Lille"},
		{"Answer: Paris", "Paris"},
		{"answer:Paris", "Paris"},
		{"Option 3: Paris", "Paris"},
		{"  Paris  ", "Paris"},
		{"Paris", "Paris"},
		{"", ""},
	}
	for _, c := range cases {
		if got := StripEnumPrefix(c.in); got != c.want {
			t.Errorf("StripEnumPrefix(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSanitizeItems_Idempotent(t *testing.T) {
	items := []RawItem{rawItem("What is the capital?", "B) Paris", "A) Paris", "B) Lyon", "C) Nice", "D) Lille")}
	once := SanitizeItems(items)

	// Re-sanitizing already-clean output must not change anything.
	again := make([]RawItem, len(once))
	for i, q := range once {
		aj, _ := json.Marshal(q.Answer)
		again[i] = RawItem{Question: q.Text, Options: q.Options, Answer: aj, CoTag: q.OutcomeTag}
	}
	twice := SanitizeItems(again)

	for i := range once {
		if once[i].Text != twice[i].Text || once[i].Answer != twice[i].Answer {
			t.Errorf("question %d changed on second pass: %+v vs %+v", i, once[i], twice[i])
		}
		for j := range once[i].Options {
			if once[i].Options[j] != twice[i].Options[j] {
				t.Errorf("option %d/%d changed on second pass: %q vs %q", i, j, once[i].Options[j], twice[i].Options[j])
			}
		}
	}
}

func TestSanitizeItems_NumericAnswerPreserved(t *testing.T) {
	it := RawItem{Question: "Q?", Options: []string{"a", "b", "c", "d"}, Answer: json.RawMessage("2")}
	qs := SanitizeItems([]RawItem{it})
	if qs[0].Answer != "2" {
		t.Errorf("answer = %q, want %q", qs[0].Answer, "2")
	}
}
