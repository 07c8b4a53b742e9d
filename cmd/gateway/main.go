package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/quizforge/quizforge/internal/api/http"
	auth "github.com/quizforge/quizforge/internal/auth/middleware"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/db"
	"github.com/quizforge/quizforge/internal/extract"
	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/rbac"
	"github.com/quizforge/quizforge/internal/storage"
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
	store := quiz.NewSQLStore(dbh)

	// --- Generation client ---
	gen, err := llm.New(llm.Config{
		Provider: cfg.GenProvider,
		APIKey:   cfg.GenAPIKey,
		BaseURL:  cfg.GenBaseURL,
		Model:    cfg.GenModel,
		Timeout:  cfg.GenTimeout,
	})
	if err != nil {
		log.Fatalf("generation client: %v", err)
	}

	// --- Blob archive for uploaded source documents ---
	blobs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	svc := quiz.NewService(store, gen, extract.PDF{}, blobs)
	authSvc := auth.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(2 * time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/register", auth.RegisterHandler(dbh))
	r.Post("/auth/login", auth.LoginHandler(dbh, authSvc))

	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.With(rbac.Require("quiz:create")).
			Post("/staff/quiz/upload", api.UploadQuizHandler(svc, cfg.NumQuestionsMax, cfg.NumQuestionsDefault))
		pr.With(rbac.Require("quiz:list-own")).
			Get("/staff/quizzes", api.ListStaffQuizzesHandler(svc))
		pr.With(rbac.Require("quiz:view-full")).
			Get("/staff/quiz/{quizID}", api.GetStaffQuizHandler(svc))

		pr.With(rbac.Require("quiz:list")).
			Get("/student/quizzes", api.ListStudentQuizzesHandler(svc))
		pr.With(rbac.Require("quiz:take")).
			Get("/student/quiz/{quizID}", api.GetStudentQuizHandler(svc))
		pr.With(rbac.Require("quiz:submit")).
			Post("/student/quiz/{quizID}/submit", api.SubmitQuizHandler(svc))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s, model=%s)", cfg.HTTPAddr, cfg.DBDriver, gen.ModelID())
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
