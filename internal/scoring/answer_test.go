package scoring

import (
	"encoding/json"
	"testing"
)

func TestAnswerSetJSONRoundTrip(t *testing.T) {
	in := []byte(`{"1":5,"3":"A","22":"Z","26":2}`)
	var answers AnswerSet
	if err := json.Unmarshal(in, &answers); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a := answers[1]; a.Kind != AnswerRating || a.Rating != 5 {
		t.Errorf("answer 1 = %+v, want rating 5", a)
	}
	if a := answers[3]; a.Kind != AnswerScenario || a.Choice != "A" {
		t.Errorf("answer 3 = %+v, want choice A", a)
	}
	if a := answers[22]; a.Kind != AnswerScenario || a.Choice != "Z" {
		t.Errorf("answer 22 = %+v, want choice Z preserved verbatim", a)
	}

	out, err := json.Marshal(answers)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back AnswerSet
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("re-unmarshal: %v", err)
	}
	if len(back) != len(answers) {
		t.Fatalf("round trip lost answers: %d vs %d", len(back), len(answers))
	}
	for id, a := range answers {
		if back[id] != a {
			t.Errorf("answer %d changed: %+v -> %+v", id, a, back[id])
		}
	}
}

func TestAnswerUnmarshalRejectsGarbage(t *testing.T) {
	var a Answer
	if err := json.Unmarshal([]byte(`{"v":1}`), &a); err == nil {
		t.Fatal("expected error for object answer")
	}
	if err := json.Unmarshal([]byte(`1.5`), &a); err == nil {
		t.Fatal("expected error for fractional rating")
	}
}
