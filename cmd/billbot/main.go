package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"

	"github.com/naseer2426/command-bots/internal/api"
	"github.com/naseer2426/command-bots/internal/billbot"
	"github.com/naseer2426/command-bots/internal/config"
	"github.com/naseer2426/command-bots/internal/db"
	"github.com/naseer2426/command-bots/internal/ledger"
	"github.com/naseer2426/command-bots/internal/logging"
	"github.com/naseer2426/command-bots/internal/telegram"
)

func main() {
	cfg, err := config.LoadBillBot()
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

	bot, err := initBot(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to start bill bot", "error", err, "hint", hint(cfg))
		os.Exit(1)
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

func initBot(ctx context.Context, cfg *config.BillBot, logger *slog.Logger) (*billbot.Bot, error) {
	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	store, err := initLedger(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	bot := billbot.NewBot(telegram.NewTelegramAPI(cfg.TelegramBotToken, cfg.HTTPTimeout), store, location, logger)
	if err := bot.Init(ctx); err != nil {
		return nil, err
	}
	logger.Info("ledger ready", "backend", cfg.LedgerBackend)
	return bot, nil
}

func initLedger(ctx context.Context, cfg *config.BillBot, logger *slog.Logger) (ledger.Store, error) {
	switch cfg.LedgerBackend {
	case config.LedgerPostgres:
		database, err := db.Connect(cfg.DatabaseURL, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return ledger.NewPostgresStore(database), nil
	default:
		return ledger.NewSheetsStore(ctx, []byte(cfg.GoogleServiceAccountJSON), cfg.SpreadsheetID, cfg.SheetName)
	}
}

func hint(cfg *config.BillBot) string {
	if cfg.LedgerBackend == config.LedgerPostgres {
		return "check DATABASE_URL and that the database accepts connections"
	}
	return "check GOOGLE_SERVICE_ACCOUNT_JSON holds a service account key and the spreadsheet is shared with its client_email"
}
