package assessment

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/studyarc/studyarc/internal/scoring"
)

// memoryStore backs tests and offline demos; no event log.
type memoryStore struct {
	mu       sync.RWMutex
	engine   *scoring.Engine
	attempts map[string]Attempt
	results  map[string]Result
}

func NewInMemoryStore(engine *scoring.Engine) Store {
	return &memoryStore{
		engine:   engine,
		attempts: map[string]Attempt{},
		results:  map[string]Result{},
	}
}

func (m *memoryStore) StartAttempt(_ context.Context, userID string) (Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var open *Attempt
	for _, a := range m.attempts {
		if a.UserID == userID && a.Status == StatusInProgress {
			if open == nil || a.StartedAt > open.StartedAt {
				cp := a
				open = &cp
			}
		}
	}
	if open != nil {
		return cloneAttempt(*open), nil
	}
	a := Attempt{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    StatusInProgress,
		Answers:   scoring.AnswerSet{},
		StartedAt: time.Now().Unix(),
	}
	m.attempts[a.ID] = a
	return cloneAttempt(a), nil
}

func (m *memoryStore) GetAttempt(_ context.Context, id string) (Attempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.attempts[id]
	if !ok {
		return Attempt{}, fmt.Errorf("attempt %s: %w", id, ErrNotFound)
	}
	return cloneAttempt(a), nil
}

func (m *memoryStore) SaveAnswers(_ context.Context, attemptID string, answers scoring.AnswerSet, position int) (Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.attempts[attemptID]
	if !ok {
		return Attempt{}, fmt.Errorf("attempt %s: %w", attemptID, ErrNotFound)
	}
	if a.Status == StatusSubmitted {
		return Attempt{}, ErrSubmitted
	}
	merged := scoring.AnswerSet{}
	for id, ans := range a.Answers {
		merged[id] = ans
	}
	for id, ans := range answers {
		merged[id] = ans
	}
	a.Answers = merged
	if position > a.Position {
		a.Position = position
	}
	m.attempts[attemptID] = a
	return cloneAttempt(a), nil
}

func (m *memoryStore) Submit(_ context.Context, attemptID string) (Attempt, Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.attempts[attemptID]
	if !ok {
		return Attempt{}, Result{}, fmt.Errorf("attempt %s: %w", attemptID, ErrNotFound)
	}
	if a.Status == StatusSubmitted {
		res, ok := m.results[a.ResultID]
		if !ok {
			return Attempt{}, Result{}, fmt.Errorf("result %s: %w", a.ResultID, ErrNotFound)
		}
		return cloneAttempt(a), res, nil
	}
	res := Result{
		ID:        uuid.NewString(),
		UserID:    a.UserID,
		AttemptID: a.ID,
		Result:    m.engine.ComputeResult(a.Answers),
		CreatedAt: time.Now().Unix(),
	}
	a.Status = StatusSubmitted
	a.SubmittedAt = res.CreatedAt
	a.ResultID = res.ID
	m.attempts[attemptID] = a
	m.results[res.ID] = res
	return cloneAttempt(a), res, nil
}

func (m *memoryStore) GetResult(_ context.Context, id string) (Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res, ok := m.results[id]
	if !ok {
		return Result{}, fmt.Errorf("result %s: %w", id, ErrNotFound)
	}
	return res, nil
}

func (m *memoryStore) ListResults(_ context.Context, opts ListOpts) ([]ResultSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []ResultSummary{}
	for _, res := range m.results {
		if res.UserID != opts.UserID {
			continue
		}
		out = append(out, ResultSummary{
			ID:                 res.ID,
			PrimaryArchetype:   res.Result.PrimaryArchetype,
			SecondaryArchetype: res.Result.SecondaryArchetype,
			CreatedAt:          res.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	if opts.Offset > 0 {
		if opts.Offset >= len(out) {
			return []ResultSummary{}, nil
		}
		out = out[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out, nil
}

func cloneAttempt(a Attempt) Attempt {
	answers := scoring.AnswerSet{}
	for id, ans := range a.Answers {
		answers[id] = ans
	}
	a.Answers = answers
	return a
}
