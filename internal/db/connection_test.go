package db

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func TestConnectRequiresDSN(t *testing.T) {
	_, err := Connect("", slog.New(slog.NewTextHandler(io.Discard, nil)))
	if !errors.Is(err, ErrDSNNotSet) {
		t.Fatalf("expected ErrDSNNotSet, got %v", err)
	}
}
