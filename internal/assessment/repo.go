package assessment

import (
	"context"
	"errors"

	"github.com/studyarc/studyarc/internal/scoring"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrSubmitted = errors.New("attempt already submitted")
)

// ListOpts filters result history.
type ListOpts struct {
	UserID string
	Limit  int
	Offset int
}

// Store persists attempts and results. Submit is idempotent: resubmitting a
// submitted attempt returns the stored outcome unchanged.
type Store interface {
	// StartAttempt returns the user's open attempt if one exists, otherwise
	// creates a fresh one.
	StartAttempt(ctx context.Context, userID string) (Attempt, error)
	GetAttempt(ctx context.Context, id string) (Attempt, error)
	// SaveAnswers merges partial answers into the attempt and records the
	// current question position.
	SaveAnswers(ctx context.Context, attemptID string, answers scoring.AnswerSet, position int) (Attempt, error)
	Submit(ctx context.Context, attemptID string) (Attempt, Result, error)

	GetResult(ctx context.Context, id string) (Result, error)
	ListResults(ctx context.Context, opts ListOpts) ([]ResultSummary, error)
}
