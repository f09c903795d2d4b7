package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/naseer2426/command-bots/internal/telegram"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// UpdateHandler is implemented by each bot.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, requestID string, update *telegram.Update) error
}

type TelegramWebhook struct {
	Bot    UpdateHandler
	Logger *slog.Logger
	// Secret, when set, must match the secret token Telegram sends with
	// every update.
	Secret string
}

// VerifySecret rejects updates that do not carry the configured secret.
func (t *TelegramWebhook) VerifySecret(c *gin.Context) {
	if t.Secret == "" {
		c.Next()
		return
	}
	got := c.GetHeader(secretTokenHeader)
	if subtle.ConstantTimeCompare([]byte(got), []byte(t.Secret)) != 1 {
		t.Logger.Warn("rejected webhook call with bad secret token", "request_id", requestid.Get(c))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid secret token"})
		return
	}
	c.Next()
}

// TelegramWebhook answers 200 once the update is decoded, even when the bot
// fails: a non-2xx makes Telegram redeliver the update, and failed commands
// are not retried.
func (t *TelegramWebhook) TelegramWebhook(c *gin.Context) {
	requestID := requestid.Get(c)
	update, err := t.parseBody(c)
	if err != nil {
		t.Logger.Error("parse telegram update failed", "request_id", requestID, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if update.Message == nil && update.CallbackQuery == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if err := t.Bot.HandleUpdate(c.Request.Context(), requestID, update); err != nil {
		t.Logger.Error("handle update failed", "request_id", requestID, "update_id", update.UpdateID, "error", err)
		c.JSON(http.StatusOK, gin.H{"status": "failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (t *TelegramWebhook) parseBody(c *gin.Context) (*telegram.Update, error) {
	// Parse the JSON manually
	var update telegram.Update
	bodyBytes, err := c.GetRawData()
	if err != nil {
		return nil, errors.New("failed to read body")
	}
	if err := json.Unmarshal(bodyBytes, &update); err != nil {
		return nil, fmt.Errorf("invalid payload - %s", string(bodyBytes))
	}

	return &update, nil
}
