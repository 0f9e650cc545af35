package scoring

import (
	"encoding/json"
	"fmt"
)

// AnswerKind tags the two answer variants.
type AnswerKind int

const (
	// AnswerRating carries a Likert rating in [1,7].
	AnswerRating AnswerKind = iota
	// AnswerScenario carries a scenario option label, normally one of A–E.
	AnswerScenario
)

// Answer is a tagged union: either a numeric rating or a scenario choice.
// On the wire it is a bare JSON number or string, matching the answer maps
// the assessment UI produces.
type Answer struct {
	Kind   AnswerKind
	Rating int
	Choice string
}

// Rating builds a rating answer.
func Rating(v int) Answer { return Answer{Kind: AnswerRating, Rating: v} }

// Choice builds a scenario answer.
func Choice(label string) Answer { return Answer{Kind: AnswerScenario, Choice: label} }

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerRating:
		return json.Marshal(a.Rating)
	case AnswerScenario:
		return json.Marshal(a.Choice)
	default:
		return nil, fmt.Errorf("scoring: unknown answer kind %d", a.Kind)
	}
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("scoring: empty answer")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Choice(s)
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("scoring: answer must be a number or string: %w", err)
	}
	*a = Rating(v)
	return nil
}

// AnswerSet maps question id to answer. It need not cover the questionnaire;
// unanswered dimensions fall back to the scale midpoint. JSON keys are the
// question ids as decimal strings.
type AnswerSet map[int]Answer
