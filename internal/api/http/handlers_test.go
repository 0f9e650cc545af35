package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/studyarc/studyarc/internal/assessment"
	authmw "github.com/studyarc/studyarc/internal/auth/middleware"
	"github.com/studyarc/studyarc/internal/catalog"
	"github.com/studyarc/studyarc/internal/rbac"
	"github.com/studyarc/studyarc/internal/scoring"
)

func testRouter(t *testing.T) (*chi.Mux, *authmw.AuthService, assessment.Store) {
	t.Helper()
	engine := scoring.Default()
	store := assessment.NewInMemoryStore(engine)
	authSvc := authmw.NewAuthService("test-secret")

	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(authmw.JWTMiddleware(authSvc))
		pr.With(rbac.Require("catalog:view")).
			Get("/catalog/questions", QuestionsHandler(engine.Catalog()))
		pr.With(rbac.Require("catalog:view")).
			Get("/catalog/archetypes/{archetypeID}", ArchetypeHandler())
		pr.With(rbac.Require("attempt:create")).
			Post("/attempts", StartAttemptHandler(store))
		pr.With(rbac.Require("attempt:save")).
			Post("/attempts/{attemptID}/responses", SaveAnswersHandler(store))
		pr.With(rbac.Require("attempt:submit")).
			Post("/attempts/{attemptID}/submit", SubmitAttemptHandler(store))
		pr.With(rbac.RequireAny("attempt:view-own", "attempt:view-all")).
			Get("/attempts/{attemptID}", GetAttemptHandler(store))
		pr.With(rbac.RequireAny("result:view-own", "result:view-all")).
			Get("/results", ListResultsHandler(store))
		pr.With(rbac.RequireAny("result:view-own", "result:view-all")).
			Get("/results/{resultID}", GetResultHandler(store))
	})
	return r, authSvc, store
}

func doJSON(t *testing.T, r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAttemptFlowOverHTTP(t *testing.T) {
	r, authSvc, _ := testRouter(t)
	tok, err := authSvc.IssueJWT("u1", "student")
	if err != nil {
		t.Fatalf("issue jwt: %v", err)
	}

	rec := doJSON(t, r, "POST", "/attempts", tok, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("start attempt: %d %s", rec.Code, rec.Body)
	}
	var a assessment.Attempt
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode attempt: %v", err)
	}

	rec = doJSON(t, r, "POST", "/attempts/"+a.ID+"/responses", tok,
		`{"answers":{"1":7,"3":"A"},"position":3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("save answers: %d %s", rec.Code, rec.Body)
	}

	rec = doJSON(t, r, "POST", "/attempts/"+a.ID+"/submit", tok, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("submit: %d %s", rec.Code, rec.Body)
	}
	var out struct {
		Attempt assessment.Attempt `json:"attempt"`
		Result  assessment.Result  `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode submit: %v", err)
	}
	if out.Attempt.Status != assessment.StatusSubmitted {
		t.Fatalf("status = %q", out.Attempt.Status)
	}
	if out.Result.Result.Dimensions[0].Score != 100 {
		t.Fatalf("dimension 0 = %d, want 100", out.Result.Result.Dimensions[0].Score)
	}

	rec = doJSON(t, r, "GET", "/results/"+out.Result.ID, tok, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get result: %d %s", rec.Code, rec.Body)
	}
	rec = doJSON(t, r, "GET", "/results", tok, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list results: %d", rec.Code)
	}
	var list []assessment.ResultSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil || len(list) != 1 {
		t.Fatalf("history = %s (err %v)", rec.Body, err)
	}
}

func TestOwnershipEnforced(t *testing.T) {
	r, authSvc, store := testRouter(t)
	alice, _ := authSvc.IssueJWT("alice", "student")
	mallory, _ := authSvc.IssueJWT("mallory", "student")
	counselor, _ := authSvc.IssueJWT("counselor-1", "counselor")

	rec := doJSON(t, r, "POST", "/attempts", alice, "")
	var a assessment.Attempt
	_ = json.Unmarshal(rec.Body.Bytes(), &a)

	if rec := doJSON(t, r, "GET", "/attempts/"+a.ID, mallory, ""); rec.Code != http.StatusForbidden {
		t.Fatalf("foreign attempt read: %d, want 403", rec.Code)
	}
	if rec := doJSON(t, r, "POST", "/attempts/"+a.ID+"/submit", mallory, ""); rec.Code != http.StatusForbidden {
		t.Fatalf("foreign submit: %d, want 403", rec.Code)
	}
	if rec := doJSON(t, r, "GET", "/attempts/"+a.ID, counselor, ""); rec.Code != http.StatusOK {
		t.Fatalf("counselor attempt read: %d, want 200", rec.Code)
	}

	_, res, err := store.Submit(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rec := doJSON(t, r, "GET", "/results/"+res.ID, mallory, ""); rec.Code != http.StatusForbidden {
		t.Fatalf("foreign result read: %d, want 403", rec.Code)
	}
	if rec := doJSON(t, r, "GET", "/results/"+res.ID, counselor, ""); rec.Code != http.StatusOK {
		t.Fatalf("counselor result read: %d, want 200", rec.Code)
	}
}

func TestAuthAndRBACGates(t *testing.T) {
	r, authSvc, _ := testRouter(t)

	if rec := doJSON(t, r, "GET", "/catalog/questions", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: %d, want 401", rec.Code)
	}
	if rec := doJSON(t, r, "GET", "/catalog/questions", "not-a-jwt", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: %d, want 401", rec.Code)
	}

	counselor, _ := authSvc.IssueJWT("c1", "counselor")
	if rec := doJSON(t, r, "POST", "/attempts", counselor, ""); rec.Code != http.StatusForbidden {
		t.Fatalf("counselor creating attempt: %d, want 403", rec.Code)
	}
}

func TestCatalogHandlers(t *testing.T) {
	r, authSvc, _ := testRouter(t)
	tok, _ := authSvc.IssueJWT("u1", "student")

	rec := doJSON(t, r, "GET", "/catalog/questions", tok, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("questions: %d", rec.Code)
	}
	var qs []catalog.Question
	if err := json.Unmarshal(rec.Body.Bytes(), &qs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(qs) != 26 {
		t.Fatalf("questions = %d, want 26", len(qs))
	}

	rec = doJSON(t, r, "GET", "/catalog/archetypes/deepDiver", tok, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("archetype: %d", rec.Code)
	}
	rec = doJSON(t, r, "GET", "/catalog/archetypes/nope", tok, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing archetype: %d, want 404", rec.Code)
	}
}
