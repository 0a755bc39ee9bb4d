package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/memodrill/memodrill/internal/api/http"
	auth "github.com/memodrill/memodrill/internal/auth/middleware"
	"github.com/memodrill/memodrill/internal/config"
	"github.com/memodrill/memodrill/internal/db"
	"github.com/memodrill/memodrill/internal/eval"
	"github.com/memodrill/memodrill/internal/quiz"
	"github.com/memodrill/memodrill/internal/rbac"
)

func main() {
	cfg := config.FromEnv()

	// --- Grading policy ---
	evalCfg, err := eval.NewConfig(
		eval.WithCaseSensitive(cfg.EvalCaseSensitive),
		eval.WithStrictMatching(cfg.EvalStrictMatching),
		eval.WithSimilarityThreshold(cfg.EvalSimilarityThreshold),
		eval.WithPartialCredit(cfg.EvalAllowPartialCredit),
	)
	if err != nil {
		log.Fatalf("eval config: %v", err)
	}
	engine := eval.New(evalCfg)

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := quiz.NewSQLStore(dbh, engine)

	authSvc := auth.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, dbh))

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		// Author-only: create quizzes, read them with answers
		pr.With(rbac.Require("quiz:create")).
			Post("/quizzes", api.UploadQuizHandler(store))
		pr.With(rbac.Require("quiz:view-full")).
			Get("/quizzes/{quizID}/full", api.GetQuizFullHandler(store))

		pr.With(rbac.Require("quiz:view")).
			Get("/quizzes", api.ListQuizzesHandler(store))
		pr.With(rbac.Require("quiz:view")).
			Get("/quizzes/{quizID}", api.GetQuizHandler(store))

		// Learner flow
		pr.With(rbac.Require("session:create")).
			Post("/sessions", api.CreateSessionHandler(store))
		pr.With(rbac.Require("session:save")).
			Post("/sessions/{sessionID}/answers", api.SaveAnswersHandler(store))
		pr.With(rbac.Require("session:submit")).
			Post("/sessions/{sessionID}/submit", api.SubmitSessionHandler(store))
		pr.With(rbac.RequireAny("session:view-own", "session:view-all")).
			Get("/sessions/{sessionID}", api.GetSessionHandler(store))
		pr.With(rbac.RequireAny("session:view-own", "session:view-all")).
			Get("/sessions", api.ListSessionsHandler(store))

		pr.With(rbac.Require("users:bulk_upsert")).
			Post("/users/bulk", api.BulkUpsertUsersHandler(dbh))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
