package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studyarc/studyarc/internal/assessment"
	authmw "github.com/studyarc/studyarc/internal/auth/middleware"
	"github.com/studyarc/studyarc/internal/rbac"
	"github.com/studyarc/studyarc/internal/scoring"
)

// POST /attempts — opens (or resumes) the caller's attempt.
func StartAttemptHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := authmw.SubjectFromContext(r.Context())
		if sub == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		a, err := store.StartAttempt(r.Context(), sub)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

// POST /attempts/{attemptID}/responses
// { "answers": {"1": 5, "3": "A"}, "position": 3 }
func SaveAnswersHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "attemptID")
		var req struct {
			Answers  scoring.AnswerSet `json:"answers"`
			Position int               `json:"position"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if !ownsAttempt(r, store, id) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		a, err := store.SaveAnswers(r.Context(), id, req.Answers, req.Position)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

// POST /attempts/{attemptID}/submit — scores the attempt and stores the result.
func SubmitAttemptHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "attemptID")
		if !ownsAttempt(r, store, id) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		a, res, err := store.Submit(r.Context(), id)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"attempt": a,
			"result":  res,
		})
	}
}

// GET /attempts/{attemptID} — owner, or a role with attempt:view-all.
func GetAttemptHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "attemptID")
		a, err := store.GetAttempt(r.Context(), id)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		sub := authmw.SubjectFromContext(r.Context())
		role := rbac.RoleFromContext(r.Context())
		if a.UserID != sub && !rbac.Can(role, "attempt:view-all") {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

// ownsAttempt checks the attempt belongs to the caller. Missing attempts pass
// through so the store can answer 404 instead of leaking a 403.
func ownsAttempt(r *http.Request, store assessment.Store, attemptID string) bool {
	a, err := store.GetAttempt(r.Context(), attemptID)
	if err != nil {
		return true
	}
	return a.UserID == authmw.SubjectFromContext(r.Context())
}
