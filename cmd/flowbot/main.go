package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/naseer2426/command-bots/internal/api"
	"github.com/naseer2426/command-bots/internal/config"
	"github.com/naseer2426/command-bots/internal/flowbot"
	"github.com/naseer2426/command-bots/internal/guidetree"
	"github.com/naseer2426/command-bots/internal/logging"
	"github.com/naseer2426/command-bots/internal/telegram"
	"github.com/naseer2426/command-bots/internal/webhook"
)

func main() {
	cfg, err := config.LoadFlowBot()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bot := initBot(cfg, logger)
	if err := bot.RegisterCommands(ctx); err != nil {
		logger.Warn("failed to set bot commands", "error", err)
	} else {
		logger.Info("commands set successfully")
	}

	router := api.NewRouter(&api.TelegramWebhook{
		Bot:    bot,
		Logger: logger,
		Secret: cfg.WebhookSecret,
	})
	if err := api.Serve(ctx, logger, router, cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func initBot(cfg *config.FlowBot, logger *slog.Logger) *flowbot.Bot {
	return flowbot.NewBot(
		telegram.NewTelegramAPI(cfg.TelegramBotToken, cfg.HTTPTimeout),
		webhook.NewClient(cfg.WebhookURL, cfg.HTTPTimeout),
		guidetree.NewClient(cfg.APIHost, cfg.FlowID, cfg.HTTPTimeout),
		cfg.PreviousNodeID,
		logger,
	)
}
