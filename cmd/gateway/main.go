package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"

	api "github.com/studyarc/studyarc/internal/api/http"
	"github.com/studyarc/studyarc/internal/assessment"
	auth "github.com/studyarc/studyarc/internal/auth/middleware"
	"github.com/studyarc/studyarc/internal/config"
	"github.com/studyarc/studyarc/internal/db"
	"github.com/studyarc/studyarc/internal/rbac"
	"github.com/studyarc/studyarc/internal/scoring"
	syncx "github.com/studyarc/studyarc/internal/sync"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	if err := seedAdmin(ctx, dbh, cfg); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	// --- Engine + stores ---
	engine := scoring.Default()
	events := syncx.NewEventRepo(dbh)
	store := assessment.NewSQLStore(dbh, cfg.DBDriver, engine, events, cfg.SiteID)

	authSvc := auth.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.EnableLocal {
		r.Post("/auth/signup", api.SignupHandler(dbh, authSvc))
		r.Post("/auth/login", api.LoginHandler(dbh, authSvc))
	}

	// Protected API (JWT → subject+role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.Route("/catalog", func(cr chi.Router) {
			cr.Use(rbac.Require("catalog:view"))
			cr.Get("/questions", api.QuestionsHandler(engine.Catalog()))
			cr.Get("/questions/intake", api.IntakeQuestionsHandler())
			cr.Get("/dimensions", api.DimensionsHandler())
			cr.Get("/archetypes", api.ArchetypesHandler())
			cr.Get("/archetypes/{archetypeID}", api.ArchetypeHandler())
		})

		pr.With(rbac.Require("attempt:create")).
			Post("/attempts", api.StartAttemptHandler(store))
		pr.With(rbac.Require("attempt:save")).
			Post("/attempts/{attemptID}/responses", api.SaveAnswersHandler(store))
		pr.With(rbac.Require("attempt:submit")).
			Post("/attempts/{attemptID}/submit", api.SubmitAttemptHandler(store))
		pr.With(rbac.RequireAny("attempt:view-own", "attempt:view-all")).
			Get("/attempts/{attemptID}", api.GetAttemptHandler(store))

		pr.With(rbac.RequireAny("result:view-own", "result:view-all")).
			Get("/results", api.ListResultsHandler(store))
		pr.With(rbac.RequireAny("result:view-own", "result:view-all")).
			Get("/results/{resultID}", api.GetResultHandler(store))

		pr.With(rbac.Require("profile:edit")).
			Get("/profile", api.GetProfileHandler(dbh))
		pr.With(rbac.Require("profile:edit")).
			Put("/profile", api.PutProfileHandler(dbh))

		pr.With(rbac.Require("user:change_password")).
			Post("/users/change-password", api.ChangePasswordHandler(dbh))
		pr.With(rbac.Require("users:list")).
			Get("/users", api.ListUsersHandler(dbh))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

// seedAdmin provisions the admin account when a bcrypt hash is configured.
func seedAdmin(ctx context.Context, dbh *sql.DB, cfg config.Config) error {
	if cfg.AdminPassHash == "" {
		return nil
	}
	var exists int
	err := dbh.QueryRowContext(ctx, `SELECT 1 FROM users WHERE username=$1`, cfg.AdminUser).Scan(&exists)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	_, err = dbh.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, role, created_at)
		 VALUES ($1,$2,$3,'admin',$4)`,
		uuid.NewString(), cfg.AdminUser, cfg.AdminPassHash, time.Now().Unix())
	return err
}
