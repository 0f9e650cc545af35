package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	authmw "github.com/studyarc/studyarc/internal/auth/middleware"
	"github.com/studyarc/studyarc/internal/catalog"
)

type profile struct {
	DisplayName string            `json:"display_name"`
	Intake      map[string]string `json:"intake"` // intake question id -> chosen value(s), multi joined by comma
	UpdatedAt   int64             `json:"updated_at,omitempty"`
}

// GET /profile — the caller's intake profile; empty profile if never set up.
func GetProfileHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := authmw.SubjectFromContext(r.Context())
		var p profile
		var intakeJSON string
		err := db.QueryRowContext(r.Context(),
			`SELECT display_name, intake_json, updated_at FROM profiles WHERE user_id=$1`,
			userID).Scan(&p.DisplayName, &intakeJSON, &p.UpdatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusOK, profile{Intake: map[string]string{}})
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if json.Unmarshal([]byte(intakeJSON), &p.Intake) != nil {
			p.Intake = map[string]string{}
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// PUT /profile  { "display_name": "...", "intake": {"1": "engineering", ...} }
func PutProfileHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := authmw.SubjectFromContext(r.Context())
		var p profile
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if p.Intake == nil {
			p.Intake = map[string]string{}
		}
		for key := range p.Intake {
			if !validIntakeID(key) {
				http.Error(w, "unknown intake question: "+key, http.StatusBadRequest)
				return
			}
		}
		buf, _ := json.Marshal(p.Intake)
		p.UpdatedAt = time.Now().Unix()
		_, err := db.ExecContext(r.Context(),
			`INSERT INTO profiles (user_id, display_name, intake_json, updated_at)
			 VALUES ($1,$2,$3,$4)
			 ON CONFLICT (user_id) DO UPDATE SET display_name=EXCLUDED.display_name,
			   intake_json=EXCLUDED.intake_json, updated_at=EXCLUDED.updated_at`,
			userID, p.DisplayName, string(buf), p.UpdatedAt)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func validIntakeID(key string) bool {
	id, err := strconv.Atoi(key)
	if err != nil {
		return false
	}
	for _, q := range catalog.IntakeQuestions {
		if q.ID == id {
			return true
		}
	}
	return false
}
