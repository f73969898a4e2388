package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kiraleos/wellness-backend/internal/api"
	"github.com/kiraleos/wellness-backend/internal/auth"
	"github.com/kiraleos/wellness-backend/internal/config"
	"github.com/kiraleos/wellness-backend/internal/core"
	"github.com/kiraleos/wellness-backend/internal/logger"
	"github.com/kiraleos/wellness-backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logg.Sync()

	if !cfg.EnvFileLoaded {
		logg.Info("No .env file found, relying on environment variables")
	}

	if err := run(cfg, logg); err != nil {
		logg.Fatal("server stopped with error", "error", err)
	}
	logg.Info("Server exiting gracefully")
}

func run(cfg *config.Config, logg *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbStore, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer dbStore.Close()

	kb, err := core.LoadKnowledgeBase(cfg.KnowledgeBasePath)
	if err != nil {
		return err
	}
	logg.Info("knowledge base loaded", "items", kb.Len(), "has_chatbot_info", kb.ChatbotInfo() != "")

	generator, closeGenerator, err := newGenerationClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeGenerator()

	chatService := core.NewChatService(kb, generator, cfg.GenerationMaxTokens, cfg.GenerationTimeout, logg)
	timelineService := core.NewTimelineService(dbStore, cfg.Location, time.Now)

	apiHandler := api.NewAPIHandler(chatService, timelineService, dbStore, auth.NewVerifier(cfg.JWTSecret), logg)
	router := api.NewRouter(apiHandler)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Leaves room for a generation call that runs to its own timeout.
		WriteTimeout: cfg.GenerationTimeout + 15*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logg.Info("Starting server", "addr", srv.Addr, "provider", cfg.LLMProvider, "timezone", cfg.Location.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not listen on %s: %w", srv.Addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logg.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newGenerationClient(ctx context.Context, cfg *config.Config) (core.GenerationClient, func(), error) {
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		return core.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.ChatModel), func() {}, nil
	default:
		client, err := core.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.ChatModel)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { _ = client.Close() }, nil
	}
}
