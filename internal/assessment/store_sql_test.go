package assessment

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/studyarc/studyarc/internal/db"
	"github.com/studyarc/studyarc/internal/scoring"
	syncx "github.com/studyarc/studyarc/internal/sync"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// Named in-memory DB shared across the pool's connections.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	dbh, err := db.Open(ctx, db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = dbh.Close() })
	return dbh
}

func seedUser(t *testing.T, dbh *sql.DB) string {
	t.Helper()
	id := uuid.NewString()
	_, err := dbh.Exec(
		`INSERT INTO users (id, username, password_hash, role, created_at) VALUES ($1,$2,'x','student',$3)`,
		id, "user-"+id[:8], time.Now().Unix())
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return id
}

func TestSQLStoreAttemptLifecycle(t *testing.T) {
	ctx := context.Background()
	dbh := openTestDB(t)
	store := NewSQLStore(dbh, "sqlite", scoring.Default(), syncx.NewEventRepo(dbh), "test")
	userID := seedUser(t, dbh)

	a, err := store.StartAttempt(ctx, userID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	resumed, err := store.StartAttempt(ctx, userID)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.ID != a.ID {
		t.Fatalf("resume returned %s, want %s", resumed.ID, a.ID)
	}

	if _, err := store.SaveAnswers(ctx, a.ID, scoring.AnswerSet{1: scoring.Rating(7), 2: scoring.Rating(1)}, 2); err != nil {
		t.Fatalf("save: %v", err)
	}
	saved, err := store.SaveAnswers(ctx, a.ID, scoring.AnswerSet{3: scoring.Choice("A")}, 3)
	if err != nil {
		t.Fatalf("save more: %v", err)
	}
	if len(saved.Answers) != 3 || saved.Position != 3 {
		t.Fatalf("saved attempt: %+v", saved)
	}

	sub, res, err := store.Submit(ctx, a.ID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if sub.Status != StatusSubmitted || sub.ResultID != res.ID {
		t.Fatalf("attempt after submit: %+v", sub)
	}
	if res.Result.Dimensions[0].Score != 100 {
		t.Fatalf("dimension 0 = %d, want 100", res.Result.Dimensions[0].Score)
	}

	// Idempotent resubmit, and saving is rejected afterwards.
	_, res2, err := store.Submit(ctx, a.ID)
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if res2.ID != res.ID {
		t.Fatalf("resubmit stored a new result %s", res2.ID)
	}
	if _, err := store.SaveAnswers(ctx, a.ID, scoring.AnswerSet{4: scoring.Choice("B")}, 4); !errors.Is(err, ErrSubmitted) {
		t.Fatalf("save after submit: %v, want ErrSubmitted", err)
	}

	// Submission landed in the event log.
	var n int
	if err := dbh.QueryRow(`SELECT COUNT(*) FROM event_log WHERE typ='AttemptSubmitted' AND key=$1`, a.ID).Scan(&n); err != nil {
		t.Fatalf("count events: %v", err)
	}
	if n != 1 {
		t.Fatalf("event rows = %d, want 1", n)
	}
}

func TestSQLStoreResultHistory(t *testing.T) {
	ctx := context.Background()
	dbh := openTestDB(t)
	store := NewSQLStore(dbh, "sqlite", scoring.Default(), nil, "test")
	userID := seedUser(t, dbh)
	other := seedUser(t, dbh)

	var last Result
	for i := 0; i < 2; i++ {
		a, err := store.StartAttempt(ctx, userID)
		if err != nil {
			t.Fatalf("start %d: %v", i, err)
		}
		if _, last, err = store.Submit(ctx, a.ID); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	if a, err := store.StartAttempt(ctx, other); err != nil {
		t.Fatalf("start other: %v", err)
	} else if _, _, err := store.Submit(ctx, a.ID); err != nil {
		t.Fatalf("submit other: %v", err)
	}

	list, err := store.ListResults(ctx, ListOpts{UserID: userID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("history rows = %d, want 2", len(list))
	}

	got, err := store.GetResult(ctx, last.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != userID || len(got.Result.Dimensions) != 12 {
		t.Fatalf("round-tripped result: %+v", got)
	}

	if _, err := store.GetResult(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing result: %v", err)
	}
}
