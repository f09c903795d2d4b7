// Package flowbot is the contact and guide-tree bot: it relays /add to a
// generic webhook and /add_node, /append_node to the flow-graph API.
package flowbot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/naseer2426/command-bots/internal/command"
	"github.com/naseer2426/command-bots/internal/guidetree"
	"github.com/naseer2426/command-bots/internal/telegram"
	"github.com/naseer2426/command-bots/internal/webhook"
)

// Contacts is the webhook used by /add.
type Contacts interface {
	AddContact(ctx context.Context, requestID, name, email string) (*webhook.Response, error)
}

// GuideTree is the flow-graph API used by /add_node and /append_node.
type GuideTree interface {
	AddNode(ctx context.Context, requestID string, telegramID int64, node guidetree.Node) (*guidetree.Response, error)
	AppendNode(ctx context.Context, requestID string, telegramID int64, previousNodeID string, node guidetree.Node) (*guidetree.Response, error)
}

// Bot is built once at startup and shared by every update. It holds no
// per-chat state.
type Bot struct {
	telegram       telegram.Client
	contacts       Contacts
	guideTree      GuideTree
	previousNodeID string
	logger         *slog.Logger
}

func NewBot(tg telegram.Client, contacts Contacts, guideTree GuideTree, previousNodeID string, logger *slog.Logger) *Bot {
	return &Bot{
		telegram:       tg,
		contacts:       contacts,
		guideTree:      guideTree,
		previousNodeID: previousNodeID,
		logger:         logger.With("component", "flowbot"),
	}
}

// RegisterCommands publishes the command list shown in Telegram clients.
func (b *Bot) RegisterCommands(ctx context.Context) error {
	return b.telegram.SetMyCommands(ctx, "startup", botCommands)
}

// HandleUpdate routes one Telegram update. The returned error only reports
// replies that could not be delivered; integration failures are answered
// in the chat.
func (b *Bot) HandleUpdate(ctx context.Context, requestID string, update *telegram.Update) error {
	switch {
	case update.CallbackQuery != nil:
		return b.handleCallback(ctx, requestID, update.CallbackQuery)
	case update.Message != nil:
		return b.handleMessage(ctx, requestID, command.FromTelegram(update.Message))
	}
	return nil
}

func (b *Bot) handleMessage(ctx context.Context, requestID string, msg command.Message) error {
	if msg.Text == "" {
		return nil
	}

	cmd := command.Parse(msg.Text)
	log := b.logger.With("request_id", requestID, "chat_id", msg.ChatID, "command", cmd.Kind.String())

	switch cmd.Kind {
	case command.KindStart:
		return b.handleStart(ctx, requestID, msg)
	case command.KindHelp:
		return b.telegram.SendMessage(ctx, requestID, msg.ChatID, msgHelp)
	case command.KindInfo:
		return b.telegram.SendMessage(ctx, requestID, msg.ChatID, msgInfo)
	case command.KindCreate:
		return b.telegram.Send(ctx, requestID, telegram.SendMessageRequest{
			ChatID:      msg.ChatID,
			Text:        msgCreate,
			ReplyMarkup: createKeyboard(),
		})
	case command.KindAdd:
		return b.handleAdd(ctx, log, requestID, msg, cmd.Args)
	case command.KindAddNode:
		return b.handleAddNode(ctx, log, requestID, msg, cmd.Args)
	case command.KindAppendNode:
		return b.handleAppendNode(ctx, log, requestID, msg, cmd.Args)
	case command.KindMenu:
		return b.telegram.Send(ctx, requestID, telegram.SendMessageRequest{
			ChatID:      msg.ChatID,
			Text:        msgMenu,
			ReplyMarkup: menuKeyboard(),
		})
	case command.KindNone:
		return b.telegram.SendMessage(ctx, requestID, msg.ChatID, msgUseCommand)
	default:
		log.DebugContext(ctx, "ignoring unsupported command", "name", cmd.Name)
		return nil
	}
}

func (b *Bot) handleCallback(ctx context.Context, requestID string, query *telegram.CallbackQuery) error {
	log := b.logger.With("request_id", requestID, "callback_id", query.ID, "action", query.Data)

	var sendErr error
	if text, ok := callbackReplies[query.Data]; ok && query.Message != nil {
		log.InfoContext(ctx, "Handling callback", "chat_id", query.Message.Chat.ID)
		sendErr = b.telegram.SendMessage(ctx, requestID, query.Message.Chat.ID, text)
	} else {
		log.DebugContext(ctx, "ignoring callback")
	}

	// Acknowledge the callback query
	ackErr := b.telegram.AnswerCallbackQuery(ctx, requestID, query.ID)
	return errors.Join(sendErr, ackErr)
}
