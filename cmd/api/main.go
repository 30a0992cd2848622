// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ai-universe/assistant-platform/internal/assistant"
	"github.com/ai-universe/assistant-platform/internal/auth"
	"github.com/ai-universe/assistant-platform/internal/config"
	"github.com/ai-universe/assistant-platform/internal/handler"
	"github.com/ai-universe/assistant-platform/internal/llm"
	"github.com/ai-universe/assistant-platform/internal/middleware"
	"github.com/ai-universe/assistant-platform/internal/service"
	"github.com/ai-universe/assistant-platform/internal/store"
	"github.com/ai-universe/assistant-platform/pkg/logger"
	"github.com/ai-universe/assistant-platform/pkg/tracing"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting API server")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "assistant-platform", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Open the conversation store
	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error("failed to open store", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	// Initialize LLM client
	var llmClient llm.Client
	if cfg.AnthropicAPIKey != "" {
		client, err := llm.NewAnthropicClient(cfg.AnthropicAPIKey)
		if err != nil {
			log.Error("failed to create Anthropic client", zap.Error(err))
			os.Exit(1)
		}
		llmClient = client.WithTimeout(cfg.CompletionTimeout)
	} else {
		client, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey)
		if err != nil {
			log.Error("failed to create OpenAI client", zap.Error(err))
			os.Exit(1)
		}
		llmClient = client.WithTimeout(cfg.CompletionTimeout)
	}
	log.Info("completion client ready", zap.String("provider", llmClient.Name()))

	// Assistant catalog
	registry := assistant.Default()
	log.Info("assistant registry loaded", zap.Int("assistants", registry.Len()))

	// Services and handlers
	chatSvc := service.NewChatService(db, llmClient, log)
	verifier := auth.NewVerifier(cfg.IdentityJWTSecret, log)

	routes := handler.Router(handler.Handlers{
		Chat:       handler.NewChatHandler(registry, chatSvc, log),
		Chats:      handler.NewChatsHandler(db, log),
		Stats:      handler.NewStatsHandler(db, log),
		Auth:       handler.NewAuthHandler(db, verifier, log),
		Assistants: handler.NewAssistantsHandler(registry),
		Health:     handler.NewHealthHandler(db),
	})

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	r.Mount("/", routes)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
