package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.telegram.org"

var ErrTokenNotSet = errors.New("TELEGRAM_BOT_TOKEN is not set")

// Client is the subset of the Bot API the bots talk to.
type Client interface {
	SendMessage(ctx context.Context, requestID string, chatID int64, text string) error
	Send(ctx context.Context, requestID string, req SendMessageRequest) error
	SendChatAction(ctx context.Context, requestID string, chatID int64, action string) error
	AnswerCallbackQuery(ctx context.Context, requestID string, callbackQueryID string) error
	SetMyCommands(ctx context.Context, requestID string, commands []BotCommand) error
}

var _ Client = &TelegramAPI{}

type TelegramAPI struct {
	token  string
	client *resty.Client
}

func NewTelegramAPI(token string, timeout time.Duration) *TelegramAPI {
	client := resty.New().SetBaseURL(defaultBaseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &TelegramAPI{
		token:  token,
		client: client,
	}
}

// SetBaseURL points the client at a different Bot API server.
func (t *TelegramAPI) SetBaseURL(url string) *TelegramAPI {
	t.client.SetBaseURL(url)
	return t
}

// SendMessage sends a plain text message to a Telegram chat
func (t *TelegramAPI) SendMessage(ctx context.Context, requestID string, chatID int64, text string) error {
	return t.Send(ctx, requestID, SendMessageRequest{
		ChatID: chatID,
		Text:   text,
	})
}

// Send sends a message with optional parse mode and keyboard markup
func (t *TelegramAPI) Send(ctx context.Context, requestID string, req SendMessageRequest) error {
	return t.call(ctx, requestID, "sendMessage", req)
}

func (t *TelegramAPI) SendChatAction(ctx context.Context, requestID string, chatID int64, action string) error {
	return t.call(ctx, requestID, "sendChatAction", SendChatActionRequest{
		ChatID: chatID,
		Action: action,
	})
}

// AnswerCallbackQuery clears the loading state of the pressed button.
func (t *TelegramAPI) AnswerCallbackQuery(ctx context.Context, requestID string, callbackQueryID string) error {
	return t.call(ctx, requestID, "answerCallbackQuery", AnswerCallbackQueryRequest{
		CallbackQueryID: callbackQueryID,
	})
}

func (t *TelegramAPI) SetMyCommands(ctx context.Context, requestID string, commands []BotCommand) error {
	return t.call(ctx, requestID, "setMyCommands", SetMyCommandsRequest{
		Commands: commands,
	})
}

func (t *TelegramAPI) call(ctx context.Context, requestID, method string, body any) error {
	token := t.token
	if token == "" {
		return ErrTokenNotSet
	}

	var result APIResponse
	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-ID", requestID).
		SetBody(body).
		SetResult(&result).
		SetError(&result).
		Post(fmt.Sprintf("/bot%s/%s", token, method))

	if err != nil {
		return fmt.Errorf("http call to telegram %s failed: %w", method, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("telegram %s returned non-2xx status: %d %s", method, resp.StatusCode(), result.Description)
	}

	if !result.OK {
		return fmt.Errorf("telegram %s returned error: %s", method, result.Description)
	}

	return nil
}
