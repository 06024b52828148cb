package logger

import (
	"context"
	"fmt"
	"log/slog"
)

// Notifier delivers alert messages to an operator channel.
type Notifier interface {
	SendMessage(msg string)
}

// telegramHandler fans records out to the wrapped handler and forwards
// anything at or above the alert level to the notifier.
type telegramHandler struct {
	next     slog.Handler
	notifier Notifier
	level    slog.Level
	attrs    []slog.Attr
}

// SetupTelegramHandler wraps an existing logger so records at or above
// level are also pushed to the notifier.
func SetupTelegramHandler(log *slog.Logger, notifier Notifier, level slog.Level) *slog.Logger {
	return slog.New(&telegramHandler{
		next:     log.Handler(),
		notifier: notifier,
		level:    level,
	})
}

func (h *telegramHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *telegramHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= h.level && h.notifier != nil {
		msg := fmt.Sprintf("[%s] %s", record.Level, record.Message)
		for _, attr := range h.attrs {
			msg += fmt.Sprintf("\n%s: %s", attr.Key, attr.Value)
		}
		record.Attrs(func(attr slog.Attr) bool {
			msg += fmt.Sprintf("\n%s: %s", attr.Key, attr.Value)
			return true
		})
		h.notifier.SendMessage(msg)
	}
	return h.next.Handle(ctx, record)
}

func (h *telegramHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &telegramHandler{
		next:     h.next.WithAttrs(attrs),
		notifier: h.notifier,
		level:    h.level,
		attrs:    append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

func (h *telegramHandler) WithGroup(name string) slog.Handler {
	return &telegramHandler{
		next:     h.next.WithGroup(name),
		notifier: h.notifier,
		level:    h.level,
		attrs:    h.attrs,
	}
}
