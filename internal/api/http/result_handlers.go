package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/studyarc/studyarc/internal/assessment"
	authmw "github.com/studyarc/studyarc/internal/auth/middleware"
	"github.com/studyarc/studyarc/internal/rbac"
)

// GET /results?user_id=...&limit=50&offset=0
// Callers without result:view-all are pinned to their own history.
func ListResultsHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := authmw.SubjectFromContext(r.Context())
		role := rbac.RoleFromContext(r.Context())

		userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
		if userID == "" || !rbac.Can(role, "result:view-all") {
			userID = sub
		}
		list, err := store.ListResults(r.Context(), assessment.ListOpts{
			UserID: userID,
			Limit:  parseIntDefault(r.URL.Query().Get("limit"), 50),
			Offset: parseIntDefault(r.URL.Query().Get("offset"), 0),
		})
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// GET /results/{resultID} — owner, or a role with result:view-all.
func GetResultHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "resultID")
		res, err := store.GetResult(r.Context(), id)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		sub := authmw.SubjectFromContext(r.Context())
		role := rbac.RoleFromContext(r.Context())
		if res.UserID != sub && !rbac.Can(role, "result:view-all") {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
