package assessment

import "github.com/studyarc/studyarc/internal/scoring"

const (
	StatusInProgress = "in_progress"
	StatusSubmitted  = "submitted"
)

// Attempt is one pass through the questionnaire. Answers accumulate across
// saves so the UI can stop and resume; Position is the last question index
// the user was on.
type Attempt struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	Status      string            `json:"status"` // in_progress|submitted
	Answers     scoring.AnswerSet `json:"answers"`
	Position    int               `json:"position"`
	StartedAt   int64             `json:"started_at"`
	SubmittedAt int64             `json:"submitted_at,omitempty"`
	ResultID    string            `json:"result_id,omitempty"`
}

// Result is a stored assessment outcome. The id and timestamp are assigned
// here, not by the scoring engine.
type Result struct {
	ID        string                   `json:"id"`
	UserID    string                   `json:"user_id"`
	AttemptID string                   `json:"attempt_id"`
	Result    scoring.AssessmentResult `json:"result"`
	CreatedAt int64                    `json:"created_at"`
}

// ResultSummary is a history row.
type ResultSummary struct {
	ID                 string `json:"id"`
	PrimaryArchetype   string `json:"primary_archetype"`
	SecondaryArchetype string `json:"secondary_archetype"`
	CreatedAt          int64  `json:"created_at"`
}
