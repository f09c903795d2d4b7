package flowbot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/naseer2426/command-bots/internal/command"
	"github.com/naseer2426/command-bots/internal/guidetree"
	"github.com/naseer2426/command-bots/internal/telegram"
)

func (b *Bot) handleStart(ctx context.Context, requestID string, msg command.Message) error {
	text := fmt.Sprintf("Hello %s, your user ID is %d", msg.UserName, msg.UserID)
	return b.telegram.SendMessage(ctx, requestID, msg.ChatID, text)
}

// handleAdd expects "name|email". Input without a separator gets the format
// help and never reaches the webhook.
func (b *Bot) handleAdd(ctx context.Context, log *slog.Logger, requestID string, msg command.Message, args string) error {
	if !strings.Contains(args, "|") {
		return b.telegram.Send(ctx, requestID, telegram.SendMessageRequest{
			ChatID:    msg.ChatID,
			Text:      msgAddFormat,
			ParseMode: telegram.ParseModeMarkdown,
		})
	}

	b.typing(ctx, log, requestID, msg.ChatID)

	values := strings.Split(args, "|")
	name, email := strings.TrimSpace(values[0]), strings.TrimSpace(values[1])

	log.InfoContext(ctx, "Handling /add command", "user_id", msg.UserID)
	resp, err := b.contacts.AddContact(ctx, requestID, name, email)
	if err != nil {
		log.ErrorContext(ctx, "Failed to add contact", "error", err)
		return b.telegram.SendMessage(ctx, requestID, msg.ChatID, msgError)
	}
	return b.replyOutcome(ctx, log, requestID, msg.ChatID, resp.OK(), resp.Status)
}

func (b *Bot) handleAddNode(ctx context.Context, log *slog.Logger, requestID string, msg command.Message, args string) error {
	b.typing(ctx, log, requestID, msg.ChatID)

	node := parseNode(args)
	log.InfoContext(ctx, "Handling /add_node command", "user_id", msg.UserID, "label", node.Label)
	resp, err := b.guideTree.AddNode(ctx, requestID, msg.UserID, node)
	if err != nil {
		log.ErrorContext(ctx, "Failed to add node", "error", err)
		return b.telegram.SendMessage(ctx, requestID, msg.ChatID, msgError)
	}
	return b.replyOutcome(ctx, log, requestID, msg.ChatID, resp.OK(), nodeStatus(resp))
}

func (b *Bot) handleAppendNode(ctx context.Context, log *slog.Logger, requestID string, msg command.Message, args string) error {
	b.typing(ctx, log, requestID, msg.ChatID)

	node := parseNode(args)
	log.InfoContext(ctx, "Handling /append_node command", "user_id", msg.UserID, "label", node.Label)
	resp, err := b.guideTree.AppendNode(ctx, requestID, msg.UserID, b.previousNodeID, node)
	if err != nil {
		log.ErrorContext(ctx, "Failed to append node", "error", err)
		return b.telegram.SendMessage(ctx, requestID, msg.ChatID, msgError)
	}
	return b.replyOutcome(ctx, log, requestID, msg.ChatID, resp.OK(), nodeStatus(resp))
}

// parseNode reads "label|name|type". Only the label is taken as given; the
// segment count is not checked and the API rejects what it cannot use.
func parseNode(args string) guidetree.Node {
	parts := strings.Split(args, "|")
	node := guidetree.Node{
		Label: strings.TrimSpace(parts[0]),
		Name:  guidetree.DefaultNodeName,
		Type:  guidetree.DefaultNodeType,
	}
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		node.Name = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		node.Type = strings.TrimSpace(parts[2])
	}
	return node
}

func nodeStatus(resp *guidetree.Response) any {
	if resp.Status == nil {
		return nil
	}
	return *resp.Status
}

func (b *Bot) replyOutcome(ctx context.Context, log *slog.Logger, requestID string, chatID int64, ok bool, status any) error {
	if !ok {
		log.WarnContext(ctx, "Integration rejected request", "status", status)
		return b.telegram.SendMessage(ctx, requestID, chatID, msgFailure)
	}
	return b.telegram.SendMessage(ctx, requestID, chatID, msgSuccess)
}

// typing shows the typing indicator. Errors are only logged.
func (b *Bot) typing(ctx context.Context, log *slog.Logger, requestID string, chatID int64) {
	if err := b.telegram.SendChatAction(ctx, requestID, chatID, telegram.ChatActionTyping); err != nil {
		log.WarnContext(ctx, "Failed to send typing action", "error", err)
	}
}
