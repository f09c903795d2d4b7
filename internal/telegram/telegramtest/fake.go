// Package telegramtest provides a recording telegram.Client for tests.
package telegramtest

import (
	"context"
	"sync"

	"github.com/naseer2426/command-bots/internal/telegram"
)

// Fake records every call. Err, when set, is returned from every method.
type Fake struct {
	mu       sync.Mutex
	Sent     []telegram.SendMessageRequest
	Actions  []telegram.SendChatActionRequest
	Acks     []string
	Commands [][]telegram.BotCommand
	Err      error
}

var _ telegram.Client = &Fake{}

func (f *Fake) SendMessage(ctx context.Context, requestID string, chatID int64, text string) error {
	return f.Send(ctx, requestID, telegram.SendMessageRequest{ChatID: chatID, Text: text})
}

func (f *Fake) Send(_ context.Context, _ string, req telegram.SendMessageRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Sent = append(f.Sent, req)
	return f.Err
}

func (f *Fake) SendChatAction(_ context.Context, _ string, chatID int64, action string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Actions = append(f.Actions, telegram.SendChatActionRequest{ChatID: chatID, Action: action})
	return f.Err
}

func (f *Fake) AnswerCallbackQuery(_ context.Context, _ string, callbackQueryID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Acks = append(f.Acks, callbackQueryID)
	return f.Err
}

func (f *Fake) SetMyCommands(_ context.Context, _ string, commands []telegram.BotCommand) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Commands = append(f.Commands, commands)
	return f.Err
}

// Texts returns the text of every sent message in order.
func (f *Fake) Texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	texts := make([]string, len(f.Sent))
	for i, m := range f.Sent {
		texts[i] = m.Text
	}
	return texts
}

// MessageUpdate builds a text message update from a user in a private chat.
func MessageUpdate(text string) *telegram.Update {
	return &telegram.Update{
		UpdateID: 1,
		Message: &telegram.Message{
			MessageID: 1,
			Text:      text,
			Chat:      telegram.Chat{ID: 100, Type: "private"},
			From:      &telegram.User{ID: 200, Username: "alice", FirstName: "Alice"},
		},
	}
}
