// Package billbot is the expense bot: /a appends one bill row per message
// to the configured ledger.
package billbot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/naseer2426/command-bots/internal/command"
	"github.com/naseer2426/command-bots/internal/ledger"
	"github.com/naseer2426/command-bots/internal/telegram"
)

type Bot struct {
	telegram telegram.Client
	ledger   ledger.Store
	location *time.Location
	now      func() time.Time
	logger   *slog.Logger
}

func NewBot(tg telegram.Client, store ledger.Store, location *time.Location, logger *slog.Logger) *Bot {
	return &Bot{
		telegram: tg,
		ledger:   store,
		location: location,
		now:      time.Now,
		logger:   logger.With("component", "billbot"),
	}
}

// Init prepares the ledger and publishes the command list. A ledger failure
// is returned so the process can stop before serving; the command list is
// best effort.
func (b *Bot) Init(ctx context.Context) error {
	if err := b.ledger.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialise ledger: %w", err)
	}
	if err := b.telegram.SetMyCommands(ctx, "startup", botCommands); err != nil {
		b.logger.WarnContext(ctx, "Failed to set bot commands", "error", err)
	}
	return nil
}

func (b *Bot) HandleUpdate(ctx context.Context, requestID string, update *telegram.Update) error {
	if update.Message == nil || update.Message.Text == "" {
		return nil
	}
	msg := command.FromTelegram(update.Message)
	cmd := command.Parse(msg.Text)
	log := b.logger.With("request_id", requestID, "chat_id", msg.ChatID, "command", cmd.Kind.String())

	switch cmd.Kind {
	case command.KindStart:
		return b.telegram.SendMessage(ctx, requestID, msg.ChatID, greeting(msg.UserName))
	case command.KindHelp:
		return b.telegram.SendMessage(ctx, requestID, msg.ChatID, msgUsage)
	case command.KindAddBill:
		return b.handleAddBill(ctx, log, requestID, msg, cmd.Args)
	case command.KindNone, command.KindMenu:
		return b.telegram.SendMessage(ctx, requestID, msg.ChatID, msgUseCommand)
	default:
		log.DebugContext(ctx, "ignoring unsupported command", "name", cmd.Name)
		return nil
	}
}

func (b *Bot) handleAddBill(ctx context.Context, log *slog.Logger, requestID string, msg command.Message, args string) error {
	name, price, err := parseBill(args)
	switch {
	case errors.Is(err, errMissingArgs):
		return b.telegram.SendMessage(ctx, requestID, msg.ChatID, msgUsage)
	case errors.Is(err, errInvalidPrice):
		return b.telegram.SendMessage(ctx, requestID, msg.ChatID, msgInvalidPrice)
	}

	if err := b.telegram.SendChatAction(ctx, requestID, msg.ChatID, telegram.ChatActionTyping); err != nil {
		log.WarnContext(ctx, "Failed to send typing action", "error", err)
	}

	bill := ledger.Bill{
		Username: msg.UserName,
		Name:     name,
		Price:    price,
		Date:     b.now().In(b.location),
	}
	log.InfoContext(ctx, "Handling /a command", "user_id", msg.UserID, "bill", name, "price", price)
	if err := b.ledger.Append(ctx, bill); err != nil {
		log.ErrorContext(ctx, "Failed to append bill", "error", err)
		return b.telegram.SendMessage(ctx, requestID, msg.ChatID, msgSaveFailed)
	}
	return b.telegram.SendMessage(ctx, requestID, msg.ChatID, savedMessage(name, price))
}
