package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/taxtech-ae/einvoice-assistant/internal/api"
	"github.com/taxtech-ae/einvoice-assistant/internal/config"
	"github.com/taxtech-ae/einvoice-assistant/internal/core"
	"github.com/taxtech-ae/einvoice-assistant/internal/dataset"
	"github.com/taxtech-ae/einvoice-assistant/internal/logger"
	"github.com/taxtech-ae/einvoice-assistant/internal/store"
)

func main() {
	// Load configuration
	config.LoadConfig()

	log := logger.New(config.AppConfig.LogLevel, config.AppConfig.LogFormat)
	defer log.Sync()

	// Load the four e-invoice tables; falls back to synthetic data when the
	// CSV exports are missing.
	tables := dataset.Load(config.AppConfig.DataDir, log)

	// Initialize database store
	dbStore, err := store.NewSQLiteStore(config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer dbStore.Close()

	// Assemble the answering pipeline
	classifier := core.NewClassifier()
	assembler := core.NewAssembler()
	producer := core.NewProducer(config.AppConfig.OpenAIEndpoint, config.AppConfig.OpenAITimeout, log)

	defaults := core.Defaults{
		APIKey:      config.AppConfig.OpenAIAPIKey,
		Model:       config.AppConfig.OpenAIModel,
		Temperature: config.AppConfig.Temperature,
	}
	chatService := core.NewChatService(dbStore, classifier, assembler, producer, tables, defaults, log)

	if !core.HasValidKey(config.AppConfig.OpenAIAPIKey) {
		log.Info("no OpenAI API key configured, answering from canned responses")
	}

	// Initialize API Handler and Router
	apiHandler := api.NewAPIHandler(chatService, log)
	router := api.NewRouter(apiHandler)

	// Start HTTP server
	serverAddr := fmt.Sprintf(":%s", config.AppConfig.HTTPPort)

	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // hosted completion calls can take time
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown handling
	go func() {
		log.Info("starting server", zap.String("addr", serverAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("could not listen", zap.String("addr", serverAddr), zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	// Give active connections time to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exiting gracefully")
}
