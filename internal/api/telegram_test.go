package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/naseer2426/command-bots/internal/telegram"
)

type fakeBot struct {
	updates    []*telegram.Update
	requestIDs []string
	err        error
}

func (b *fakeBot) HandleUpdate(_ context.Context, requestID string, update *telegram.Update) error {
	b.updates = append(b.updates, update)
	b.requestIDs = append(b.requestIDs, requestID)
	return b.err
}

func newTestRouter(bot UpdateHandler, secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(&TelegramWebhook{
		Bot:    bot,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Secret: secret,
	})
}

func post(router *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/telegram/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const messageUpdate = `{"update_id":1,"message":{"message_id":3,"text":"/start","chat":{"id":10,"type":"private"},"from":{"id":20,"username":"alice"}}}`

func TestWebhookDispatchesMessage(t *testing.T) {
	bot := &fakeBot{}
	router := newTestRouter(bot, "")

	w := post(router, messageUpdate, map[string]string{"X-Request-ID": "req-123"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(bot.updates) != 1 {
		t.Fatalf("expected 1 update, got %d", len(bot.updates))
	}
	if bot.updates[0].Message.Text != "/start" || bot.updates[0].Message.From.Username != "alice" {
		t.Errorf("unexpected update %+v", bot.updates[0].Message)
	}
	if bot.requestIDs[0] != "req-123" {
		t.Errorf("expected request id from header, got %q", bot.requestIDs[0])
	}
}

func TestWebhookDispatchesCallback(t *testing.T) {
	bot := &fakeBot{}
	router := newTestRouter(bot, "")

	body := `{"update_id":2,"callback_query":{"id":"cb","data":"delete","message":{"message_id":4,"chat":{"id":10}}}}`
	w := post(router, body, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(bot.updates) != 1 || bot.updates[0].CallbackQuery.Data != "delete" {
		t.Fatalf("expected callback update, got %+v", bot.updates)
	}
	if bot.requestIDs[0] == "" {
		t.Errorf("expected generated request id")
	}
}

func TestWebhookIgnoresOtherUpdates(t *testing.T) {
	bot := &fakeBot{}
	router := newTestRouter(bot, "")

	w := post(router, `{"update_id":3}`, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ignored") {
		t.Fatalf("expected ignored 200, got %d %s", w.Code, w.Body.String())
	}
	if len(bot.updates) != 0 {
		t.Errorf("bot should not see empty updates")
	}
}

func TestWebhookBadPayload(t *testing.T) {
	router := newTestRouter(&fakeBot{}, "")

	w := post(router, `{not json`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestWebhookHandlerErrorIsNotRedelivered(t *testing.T) {
	router := newTestRouter(&fakeBot{err: errors.New("telegram down")}, "")

	w := post(router, messageUpdate, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 so telegram does not retry, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "failed") {
		t.Errorf("expected failed status, got %s", w.Body.String())
	}
}

func TestWebhookSecret(t *testing.T) {
	t.Run("rejects missing secret", func(t *testing.T) {
		bot := &fakeBot{}
		w := post(newTestRouter(bot, "s3cret"), messageUpdate, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if len(bot.updates) != 0 {
			t.Errorf("bot should not see unauthenticated updates")
		}
	})

	t.Run("accepts matching secret", func(t *testing.T) {
		bot := &fakeBot{}
		w := post(newTestRouter(bot, "s3cret"), messageUpdate, map[string]string{secretTokenHeader: "s3cret"})
		if w.Code != http.StatusOK || len(bot.updates) != 1 {
			t.Fatalf("expected dispatched update, got %d", w.Code)
		}
	})
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(&fakeBot{}, "")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
