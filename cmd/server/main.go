package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vocabpractice/internal/config"
	"vocabpractice/internal/database"
	"vocabpractice/internal/handlers"
	"vocabpractice/internal/repository"
	"vocabpractice/internal/scoring"
	"vocabpractice/internal/service"

	"github.com/rs/cors"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Seed starter vocabulary
	if err := db.SeedWords(); err != nil {
		log.Printf("Warning: Failed to seed words: %v", err)
	}

	// Initialize repositories
	wordRepo := repository.NewWordRepository(db)
	practiceRepo := repository.NewPracticeRepository(db)

	// Initialize scoring client (webhook with rule-based fallback)
	scorer := scoring.NewClient(cfg.ScoringWebhookURL, cfg.ScoringTimeout, nil)

	// Initialize services
	wordService := service.NewWordService(wordRepo)
	practiceService := service.NewPracticeService(practiceRepo, wordRepo, scorer, cfg.TimeZone)
	statsService := service.NewStatsService(practiceRepo, cfg.TimeZone)

	// Initialize handlers
	wordHandler := handlers.NewWordHandler(wordService)
	practiceHandler := handlers.NewPracticeHandler(practiceService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Setup routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handlers.Home)
	mux.HandleFunc("GET /api/word", wordHandler.GetRandomWord)
	mux.HandleFunc("GET /api/words", wordHandler.ListWords)
	mux.HandleFunc("POST /api/words", wordHandler.CreateWord)
	mux.HandleFunc("POST /api/validate-sentence", practiceHandler.ValidateSentence)
	mux.HandleFunc("GET /api/dashboard-stats", statsHandler.Dashboard)
	mux.HandleFunc("GET /api/practice-history", statsHandler.PracticeHistory)
	mux.HandleFunc("GET /api/summary", statsHandler.Summary)
	mux.HandleFunc("GET /api/history", statsHandler.History)

	// Allow the frontend origins
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// Wrap with logging middleware
	handler := handlers.Logging(corsHandler.Handler(mux))

	// Start server. WriteTimeout must exceed the scoring webhook timeout or
	// submissions get cut off mid-fallback.
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.ScoringTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
