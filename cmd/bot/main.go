package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"steambot/internal/config"
	"steambot/internal/handler"
	"steambot/internal/middleware"
	"steambot/internal/repository/steamapi"
	"steambot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Steam Store Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Initialize catalog client and services
	catalog := steamapi.NewClient(cfg.APIBaseURL, cfg.APITimeout, logger)
	settingsService := service.NewSettingsService(catalog)
	searchService := service.NewSearchService(catalog)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(middleware.Recover(logger))
	bot.Use(middleware.Logging(logger))

	// Shutdown context bounds every catalog call made for an update.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize handler
	h := handler.NewHandler(ctx, bot, settingsService, searchService, catalog, handler.NewStateStore(), logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}
