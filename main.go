package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "fitness-backend/cmd/api"
	"fitness-backend/internal/storage"
	"fitness-backend/pkg/ai"
	"fitness-backend/pkg/config"
	"fitness-backend/pkg/events"
	"fitness-backend/pkg/logger"
	"fitness-backend/pkg/oauthsession"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize storage (dependency injection)
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	repos, closeStore, err := storage.Open(connectCtx, cfg, log)
	cancel()
	if err != nil {
		log.Fatalf("failed to open %s storage: %v", cfg.StorageBackend, err)
	}

	// Initialize chat provider; the coach answers with an error when missing
	var chat ai.ChatCompletionProvider
	provider, err := ai.NewChatProvider(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		APIKey:        cfg.LLMAPIKey,
		BaseURL:       cfg.LLMBaseURL,
		Model:         cfg.LLMModel,
		GeminiAPIKey:  cfg.GeminiApiKey,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
	})
	if err != nil {
		log.Warnf("AI coach disabled: %v", err)
	} else {
		chat = provider
		log.Infow("AI provider initialized", "provider", provider.Name())
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers)
		log.Infow("kafka publisher enabled", "brokers", cfg.KafkaBrokers, "prefix", cfg.KafkaTopicPrefix)
	}

	usecases := api.NewUsecases(cfg, log, repos, api.Gateways{
		Sessions:  oauthsession.NewClient(cfg.OAuthSessionURL),
		Chat:      chat,
		Publisher: publisher,
	})

	seeded, err := usecases.Exercises.SeedCatalog(ctx)
	if err != nil {
		log.Fatalf("failed to seed exercise catalog: %v", err)
	}
	if seeded {
		log.Info("seeded exercise catalog")
	}

	// Start server
	srv := api.NewHandler(usecases, cfg, log).Server(":" + cfg.Port)
	go func() {
		log.Infow("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown: %v", err)
	}
	if err := publisher.Close(); err != nil {
		log.Errorf("close publisher: %v", err)
	}
	if err := closeStore(shutdownCtx); err != nil {
		log.Errorf("close storage: %v", err)
	}
}
