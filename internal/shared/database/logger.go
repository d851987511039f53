package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/changhyeonkim/format-check/go-api-server/internal/config"
)

const slowQueryThreshold = 200 * time.Millisecond

// GormLogger routes GORM output to slog. Request-scoped attributes come from ctx.
type GormLogger struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
	// bound parameters may carry member emails and phone numbers
	hideSQL bool
}

// newLogger picks the level from the environment: prod logs errors only, the test env nothing.
func newLogger(cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Info
	switch {
	case cfg.IsProduction():
		level = gormlogger.Error
	case cfg.App.Env == "test":
		level = gormlogger.Silent
	}

	return &GormLogger{
		logger:        slog.With("component", "gorm", "driver", cfg.Database.Driver),
		level:         level,
		slowThreshold: slowQueryThreshold,
		hideSQL:       cfg.IsProduction(),
	}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, data...)
}

func (l *GormLogger) printf(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, msg string, data ...interface{}) {
	if l.level < threshold {
		return
	}
	l.logger.Log(ctx, level, fmt.Sprintf(msg, data...))
}

// Trace logs failed and slow statements; other statements go out at debug level.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	attrs := []any{"elapsed", elapsed.String(), "rows", rows}
	if !l.hideSQL {
		attrs = append(attrs, "sql", sql)
	}

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logger.ErrorContext(ctx, "쿼리 실행 실패", append(attrs, "error", err)...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		l.logger.WarnContext(ctx, "느린 쿼리 감지", append(attrs, "threshold", l.slowThreshold.String())...)
	case l.level >= gormlogger.Info:
		l.logger.DebugContext(ctx, "쿼리 실행", attrs...)
	}
}
