package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/crumble-app/crumble-backend/internal/db"
	"github.com/crumble-app/crumble-backend/internal/gamify"
	"github.com/crumble-app/crumble-backend/internal/handlers"
	mw "github.com/crumble-app/crumble-backend/internal/middleware"
	"github.com/crumble-app/crumble-backend/internal/store"
	"github.com/crumble-app/crumble-backend/internal/userlock"
)

func mustGetenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	port := mustGetenv("PORT", "8080")
	databaseURL := os.Getenv("DATABASE_URL")

	var st store.Store
	if databaseURL == "" {
		logger.Warn("DATABASE_URL not set; using in-memory store, data will not survive restarts")
		st = store.NewMemoryStore()
	} else {
		dbConn, err := sqlx.Open("pgx", databaseURL)
		if err != nil {
			logger.Fatal("failed to open db", zap.Error(err))
		}
		dbConn.SetMaxOpenConns(10)
		dbConn.SetConnMaxLifetime(2 * time.Hour)
		if err = dbConn.Ping(); err != nil {
			logger.Fatal("failed to ping db", zap.Error(err))
		}
		if err := db.RunMigrations(dbConn); err != nil {
			logger.Fatal("failed migrations", zap.Error(err))
		}
		st = store.NewPostgresStore(dbConn)
	}

	svc := gamify.NewService(st, userlock.New())

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(mw.ZapRequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := handlers.NewAuthHandler(st, []byte(jwtSecret))
	userHandler := handlers.NewUserHandler(st, svc)
	ghostHandler := handlers.NewGhostModeHandler(svc)
	socialHandler := handlers.NewSocialHandler(st)
	rewardsHandler := handlers.NewRewardsHandler(svc)
	achievementsHandler := handlers.NewAchievementsHandler(svc)
	contentHandler := handlers.NewContentHandler(st)
	quizHandler := handlers.NewQuizHandler(st)
	authMW := mw.NewAuthMiddleware([]byte(jwtSecret))

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", authHandler.Register)
		api.Post("/auth/login", authHandler.Login)
		api.Get("/messages/generate", contentHandler.GenerateMessage)
		api.Get("/breakup-messages", contentHandler.BreakupMessages)
		api.Group(func(pr chi.Router) {
			pr.Use(authMW.RequireAuth)
			pr.Get("/user/me", userHandler.GetMe)
			pr.Post("/user/points", userHandler.UpdatePoints)
			pr.Get("/user/ghost-mode/settings", ghostHandler.GetSettings)
			pr.Put("/user/ghost-mode/settings", ghostHandler.UpdateSettings)
			pr.Get("/user/social-platforms", socialHandler.List)
			pr.Post("/user/social-platforms", socialHandler.Connect)
			pr.Delete("/user/social-platforms", socialHandler.Disconnect)
			pr.Get("/user/rewards", rewardsHandler.List)
			pr.Post("/user/rewards/claim", rewardsHandler.Claim)
			pr.Get("/user/achievements", achievementsHandler.List)
			pr.Get("/user/achievements/recent", achievementsHandler.Recent)
			pr.Post("/quiz/responses", quizHandler.SaveResponse)
			pr.Get("/quiz/responses", quizHandler.ListResponses)
		})
	})

	srv := &http.Server{Addr: ":" + port, Handler: r}
	go func() {
		logger.Info("server starting", zap.String("addr", ":"+port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown initiated")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info("server stopped")
}
