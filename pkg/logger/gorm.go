package logger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormLogger routes gorm's query log through slog
type GormLogger struct {
	LogLevel      logger.LogLevel
	SlowThreshold time.Duration

	// IgnoreRecordNotFound keeps empty lookups out of the error log
	IgnoreRecordNotFound bool
}

func NewGormLogger(logLevel logger.LogLevel, slowThreshold time.Duration) *GormLogger {
	return &GormLogger{
		LogLevel:             logLevel,
		SlowThreshold:        slowThreshold,
		IgnoreRecordNotFound: true,
	}
}

func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Info {
		Log.InfoContext(ctx, fmt.Sprintf(msg, data...), slog.String("component", "gorm"))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Warn {
		Log.WarnContext(ctx, fmt.Sprintf(msg, data...), slog.String("component", "gorm"))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Error {
		Log.ErrorContext(ctx, fmt.Sprintf(msg, data...), slog.String("component", "gorm"))
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.LogLevel <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	fields := []any{
		slog.String("component", "gorm"),
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}

	if err != nil && l.LogLevel >= logger.Error && !(l.IgnoreRecordNotFound && errors.Is(err, gorm.ErrRecordNotFound)) {
		fields = append(fields, slog.String("error", err.Error()))
		Log.ErrorContext(ctx, "SQL Error", fields...)
		return
	}

	if l.SlowThreshold != 0 && elapsed > l.SlowThreshold && l.LogLevel >= logger.Warn {
		Log.WarnContext(ctx, "Slow SQL", fields...)
		return
	}

	if l.LogLevel >= logger.Info {
		Log.DebugContext(ctx, "SQL", fields...)
	}
}
