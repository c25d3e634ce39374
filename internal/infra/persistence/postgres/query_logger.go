package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"trajmatch/config"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	slowQueryThreshold = 200 * time.Millisecond

	// Route upserts inline the whole JSONB marker list.
	maxLoggedSQLLength = 512
)

// queryLogger forwards gorm output to slog under the route store component.
type queryLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}
	if base == nil {
		level = logger.Silent
		base = slog.New(slog.DiscardHandler)
	}

	return &queryLogger{
		logger: base.With(slog.String("component", "route_store")),
		level:  level,
	}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) printf(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < min {
		return
	}
	l.logger.LogAttrs(ctx, level, "Route store message", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed queries, slow queries at warn and, in debug, every query.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}
	elapsed := time.Since(begin)

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		level, msg, extra = slog.LevelError, "Route store query failed", slog.String("error", err.Error())
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		level, msg, extra = slog.LevelWarn, "Route store slow query", slog.Duration("threshold", slowQueryThreshold)
	case l.level >= logger.Info:
		level, msg = slog.LevelInfo, "Route store query"
	default:
		return
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", truncateSQL(sql)),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}
	l.logger.LogAttrs(ctx, level, msg, attrs...)
}

func truncateSQL(sql string) string {
	if len(sql) <= maxLoggedSQLLength {
		return sql
	}

	return fmt.Sprintf("%s... (%d bytes)", sql[:maxLoggedSQLLength], len(sql))
}
