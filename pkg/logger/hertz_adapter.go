package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// hlogBridge routes Hertz framework logs through slog so server and
// application logs share one sink. It implements hlog.FullLogger.
type hlogBridge struct {
	logger *slog.Logger
}

// NewHertzSlogAdapter wraps logger as a Hertz hlog.FullLogger.
func NewHertzSlogAdapter(logger *slog.Logger) hlog.FullLogger {
	return &hlogBridge{logger: logger}
}

// slogLevel maps hlog levels onto slog's four levels. Trace collapses into
// Debug, Notice into Info, and Fatal into Error; the bridge never exits the
// process.
func slogLevel(level hlog.Level) slog.Level {
	switch level {
	case hlog.LevelTrace, hlog.LevelDebug:
		return slog.LevelDebug
	case hlog.LevelInfo, hlog.LevelNotice:
		return slog.LevelInfo
	case hlog.LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func (b *hlogBridge) log(ctx context.Context, level hlog.Level, msg string) {
	b.logger.Log(ctx, slogLevel(level), msg)
}

func (b *hlogBridge) plain(level hlog.Level, v ...interface{}) {
	b.log(context.Background(), level, fmt.Sprint(v...))
}

func (b *hlogBridge) formatted(ctx context.Context, level hlog.Level, format string, v ...interface{}) {
	b.log(ctx, level, fmt.Sprintf(format, v...))
}

func (b *hlogBridge) Trace(v ...interface{})  { b.plain(hlog.LevelTrace, v...) }
func (b *hlogBridge) Debug(v ...interface{})  { b.plain(hlog.LevelDebug, v...) }
func (b *hlogBridge) Info(v ...interface{})   { b.plain(hlog.LevelInfo, v...) }
func (b *hlogBridge) Notice(v ...interface{}) { b.plain(hlog.LevelNotice, v...) }
func (b *hlogBridge) Warn(v ...interface{})   { b.plain(hlog.LevelWarn, v...) }
func (b *hlogBridge) Error(v ...interface{})  { b.plain(hlog.LevelError, v...) }
func (b *hlogBridge) Fatal(v ...interface{})  { b.plain(hlog.LevelFatal, v...) }

func (b *hlogBridge) Tracef(format string, v ...interface{}) {
	b.formatted(context.Background(), hlog.LevelTrace, format, v...)
}

func (b *hlogBridge) Debugf(format string, v ...interface{}) {
	b.formatted(context.Background(), hlog.LevelDebug, format, v...)
}

func (b *hlogBridge) Infof(format string, v ...interface{}) {
	b.formatted(context.Background(), hlog.LevelInfo, format, v...)
}

func (b *hlogBridge) Noticef(format string, v ...interface{}) {
	b.formatted(context.Background(), hlog.LevelNotice, format, v...)
}

func (b *hlogBridge) Warnf(format string, v ...interface{}) {
	b.formatted(context.Background(), hlog.LevelWarn, format, v...)
}

func (b *hlogBridge) Errorf(format string, v ...interface{}) {
	b.formatted(context.Background(), hlog.LevelError, format, v...)
}

func (b *hlogBridge) Fatalf(format string, v ...interface{}) {
	b.formatted(context.Background(), hlog.LevelFatal, format, v...)
}

func (b *hlogBridge) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	b.formatted(ctx, hlog.LevelTrace, format, v...)
}

func (b *hlogBridge) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	b.formatted(ctx, hlog.LevelDebug, format, v...)
}

func (b *hlogBridge) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	b.formatted(ctx, hlog.LevelInfo, format, v...)
}

func (b *hlogBridge) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	b.formatted(ctx, hlog.LevelNotice, format, v...)
}

func (b *hlogBridge) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	b.formatted(ctx, hlog.LevelWarn, format, v...)
}

func (b *hlogBridge) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	b.formatted(ctx, hlog.LevelError, format, v...)
}

func (b *hlogBridge) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	b.formatted(ctx, hlog.LevelFatal, format, v...)
}

// SetLevel is a no-op; the slog handler level is fixed at setup.
func (b *hlogBridge) SetLevel(level hlog.Level) {}

// SetOutput is a no-op; the slog handler owns its writer.
func (b *hlogBridge) SetOutput(writer io.Writer) {}
