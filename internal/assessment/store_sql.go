package assessment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studyarc/studyarc/internal/scoring"
	syncx "github.com/studyarc/studyarc/internal/sync"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
	engine *scoring.Engine
	events *syncx.EventRepo
	siteID string
}

func NewSQLStore(db *sql.DB, driver string, engine *scoring.Engine, events *syncx.EventRepo, siteID string) *SQLStore {
	return &SQLStore{db: db, driver: driver, engine: engine, events: events, siteID: siteID}
}

func (s *SQLStore) StartAttempt(ctx context.Context, userID string) (Attempt, error) {
	// Resume an open attempt if the user has one.
	row := s.db.QueryRowContext(ctx,
		`SELECT id FROM attempts WHERE user_id=$1 AND status=$2 ORDER BY started_at DESC LIMIT 1`,
		userID, StatusInProgress)
	var existing string
	switch err := row.Scan(&existing); {
	case err == nil:
		return s.GetAttempt(ctx, existing)
	case !errors.Is(err, sql.ErrNoRows):
		return Attempt{}, err
	}

	a := Attempt{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    StatusInProgress,
		Answers:   scoring.AnswerSet{},
		StartedAt: time.Now().Unix(),
	}
	buf, _ := json.Marshal(a.Answers)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (id,user_id,status,answers_json,position,started_at)
		 VALUES ($1,$2,$3,$4,0,$5)`,
		a.ID, a.UserID, a.Status, string(buf), a.StartedAt)
	if err != nil {
		return Attempt{}, err
	}
	return a, nil
}

func (s *SQLStore) GetAttempt(ctx context.Context, id string) (Attempt, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,user_id,status,answers_json,position,started_at,submitted_at,result_id
		 FROM attempts WHERE id=$1`, id)
	var a Attempt
	var ajson string
	var submittedAt sql.NullInt64
	var resultID sql.NullString
	if err := row.Scan(&a.ID, &a.UserID, &a.Status, &ajson, &a.Position, &a.StartedAt, &submittedAt, &resultID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Attempt{}, fmt.Errorf("attempt %s: %w", id, ErrNotFound)
		}
		return Attempt{}, err
	}
	if err := json.Unmarshal([]byte(ajson), &a.Answers); err != nil {
		a.Answers = scoring.AnswerSet{}
	}
	a.SubmittedAt = submittedAt.Int64
	a.ResultID = resultID.String
	return a, nil
}

func (s *SQLStore) SaveAnswers(ctx context.Context, attemptID string, answers scoring.AnswerSet, position int) (Attempt, error) {
	a, err := s.GetAttempt(ctx, attemptID)
	if err != nil {
		return Attempt{}, err
	}
	if a.Status == StatusSubmitted {
		return Attempt{}, ErrSubmitted
	}
	if a.Answers == nil {
		a.Answers = scoring.AnswerSet{}
	}
	for id, ans := range answers {
		a.Answers[id] = ans
	}
	if position > a.Position {
		a.Position = position
	}
	buf, _ := json.Marshal(a.Answers)
	_, err = s.db.ExecContext(ctx,
		`UPDATE attempts SET answers_json=$1, position=$2 WHERE id=$3`,
		string(buf), a.Position, attemptID)
	if err != nil {
		return Attempt{}, err
	}
	return a, nil
}

func (s *SQLStore) Submit(ctx context.Context, attemptID string) (Attempt, Result, error) {
	a, err := s.GetAttempt(ctx, attemptID)
	if err != nil {
		return Attempt{}, Result{}, err
	}
	if a.Status == StatusSubmitted {
		res, err := s.GetResult(ctx, a.ResultID)
		if err != nil {
			return Attempt{}, Result{}, err
		}
		return a, res, nil
	}

	outcome := s.engine.ComputeResult(a.Answers)
	res := Result{
		ID:        uuid.NewString(),
		UserID:    a.UserID,
		AttemptID: a.ID,
		Result:    outcome,
		CreatedAt: time.Now().Unix(),
	}
	rbuf, err := json.Marshal(outcome)
	if err != nil {
		return Attempt{}, Result{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Attempt{}, Result{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO results (id,user_id,attempt_id,result_json,created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		res.ID, res.UserID, res.AttemptID, string(rbuf), res.CreatedAt); err != nil {
		return Attempt{}, Result{}, err
	}
	a.Status = StatusSubmitted
	a.SubmittedAt = res.CreatedAt
	a.ResultID = res.ID
	if _, err = tx.ExecContext(ctx,
		`UPDATE attempts SET status=$1, submitted_at=$2, result_id=$3 WHERE id=$4`,
		a.Status, a.SubmittedAt, a.ResultID, a.ID); err != nil {
		return Attempt{}, Result{}, err
	}
	if err = tx.Commit(); err != nil {
		return Attempt{}, Result{}, err
	}

	if s.events != nil {
		_ = s.events.Append(ctx, syncx.Event{
			SiteID:   s.siteID,
			Type:     "AttemptSubmitted",
			Key:      a.ID,
			DataJSON: string(rbuf),
		})
	}
	return a, res, nil
}

func (s *SQLStore) GetResult(ctx context.Context, id string) (Result, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,user_id,attempt_id,result_json,created_at FROM results WHERE id=$1`, id)
	var res Result
	var rjson string
	if err := row.Scan(&res.ID, &res.UserID, &res.AttemptID, &rjson, &res.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Result{}, fmt.Errorf("result %s: %w", id, ErrNotFound)
		}
		return Result{}, err
	}
	if err := json.Unmarshal([]byte(rjson), &res.Result); err != nil {
		return Result{}, err
	}
	return res, nil
}

func (s *SQLStore) ListResults(ctx context.Context, opts ListOpts) ([]ResultSummary, error) {
	limit := opts.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,result_json,created_at FROM results
		 WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		opts.UserID, limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ResultSummary{}
	for rows.Next() {
		var id, rjson string
		var createdAt int64
		if err := rows.Scan(&id, &rjson, &createdAt); err != nil {
			return nil, err
		}
		var outcome scoring.AssessmentResult
		if err := json.Unmarshal([]byte(rjson), &outcome); err != nil {
			continue
		}
		out = append(out, ResultSummary{
			ID:                 id,
			PrimaryArchetype:   outcome.PrimaryArchetype,
			SecondaryArchetype: outcome.SecondaryArchetype,
			CreatedAt:          createdAt,
		})
	}
	return out, rows.Err()
}
