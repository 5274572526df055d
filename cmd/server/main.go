package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ela-ravi/ai-interviewer-reactjs/internal/agents"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/archive"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/config"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/handlers"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/interview"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/jobs"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/llm"
	_ "github.com/ela-ravi/ai-interviewer-reactjs/internal/llm/gemini"
	_ "github.com/ela-ravi/ai-interviewer-reactjs/internal/llm/openrouter"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/prompts"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/routers"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/session"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func registerRoutes(router *chi.Mux, interviewHandler *handlers.InterviewHandler, archiveHandler *handlers.ArchiveHandler, healthHandler *handlers.HealthHandler) {
	routers.HealthRoutes(router, healthHandler)
	routers.InterviewRoutes(router, interviewHandler, archiveHandler)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// initDatabase connects to PostgreSQL for transcript archival. The service
// runs without it; only the archive endpoints depend on the connection.
func initDatabase() (*gorm.DB, error) {
	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		return nil, nil
	}

	user := getEnv("POSTGRES_USER", "postgres")
	password := getEnv("POSTGRES_PASSWORD", "postgres")
	dbname := getEnv("POSTGRES_DB", "postgres")
	port := getEnv("POSTGRES_PORT", "5432")
	sslmode := getEnv("POSTGRES_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func main() {
	_ = godotenv.Load()

	logger := utils.GetLogger()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider),
		zap.Duration("session_timeout", cfg.SessionTimeout))

	// prompt manager
	promptManager, err := prompts.NewManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	// LLM provider based on configuration
	provider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize LLM provider", zap.Error(err))
	}

	store := session.NewStore(cfg.SessionTimeout, logger)

	service := interview.NewService(
		store,
		agents.NewInterviewer(provider, promptManager, logger),
		agents.NewCoach(provider, promptManager, logger),
		agents.NewScorer(provider, promptManager, logger),
		logger,
	)

	interviewHandler := handlers.NewInterviewHandler(service, logger)
	healthHandler := handlers.NewHealthHandler(provider, promptManager, cfg)

	// Transcript archive (only if database is configured)
	var archiveHandler *handlers.ArchiveHandler
	db, err := initDatabase()
	if err != nil {
		logger.Error("Failed to initialize database, transcript archive will be disabled", zap.Error(err))
	}
	if db != nil {
		archiver, err := archive.NewArchiver(db)
		if err != nil {
			logger.Error("Failed to initialize transcript archive", zap.Error(err))
		} else {
			service.SetArchiver(archiver)
			archiveHandler = handlers.NewArchiveHandler(archiver)
			logger.Info("Transcript archive initialized")
		}
	}
	if archiveHandler == nil {
		archiveHandler = handlers.NewArchiveHandler(nil)
	}

	// expired session sweeper
	sweeperJob := jobs.NewSessionSweeperJob(store, cfg.SweepSchedule, logger)
	if err := sweeperJob.Start(); err != nil {
		logger.Error("Failed to start session sweeper job", zap.Error(err))
	} else {
		logger.Info("Session sweeper job started", zap.String("schedule", cfg.SweepSchedule))
	}

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))

	registerRoutes(router, interviewHandler, archiveHandler, healthHandler)

	serverAddr := ":" + cfg.Port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("Interview service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Interview service shutting down...")

	sweeperJob.Stop()
	logger.Info("Session sweeper job stopped")

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("Interview service exited")
}
