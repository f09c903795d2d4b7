package logging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowThreshold = 200 * time.Millisecond

// gormLogger implements GORM's logger.Interface on top of slog.
type gormLogger struct {
	log           *slog.Logger
	slowThreshold time.Duration
}

func NewGormLogger(log *slog.Logger) logger.Interface {
	return &gormLogger{
		log:           log.With("component", "gorm"),
		slowThreshold: defaultSlowThreshold,
	}
}

// LogMode is a no-op; the slog handler level decides what is written.
func (l *gormLogger) LogMode(_ logger.LogLevel) logger.Interface {
	return l
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	l.log.InfoContext(ctx, msg, "data", fmt.Sprint(data...))
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	l.log.WarnContext(ctx, msg, "data", fmt.Sprint(data...))
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	l.log.ErrorContext(ctx, msg, "data", fmt.Sprint(data...))
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	attrs := []any{"elapsed", elapsed, "rows", rows, "sql", sql}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		l.log.ErrorContext(ctx, "database query failed", append(attrs, "error", err)...)
	case elapsed > l.slowThreshold:
		l.log.WarnContext(ctx, "slow database query", attrs...)
	default:
		l.log.DebugContext(ctx, "database query", attrs...)
	}
}
