package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

// consoleHandler renders records as single human-readable lines:
// "15:04:05 INFO  message key=value key=value".
type consoleHandler struct {
	mu     sync.Mutex
	writer io.Writer
	level  *slog.LevelVar
	attrs  []slog.Attr
	groups []string
}

func newConsoleHandler(w io.Writer, lvl *slog.LevelVar) slog.Handler {
	return &consoleHandler{writer: w, level: lvl}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	timestamp := record.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	var buf bytes.Buffer
	buf.Grow(128)
	buf.WriteString(timestamp.Format("15:04:05"))
	buf.WriteByte(' ')
	buf.WriteString(levelTag(record.Level))
	buf.WriteByte(' ')
	buf.WriteString(strings.TrimSpace(record.Message))

	for _, attr := range h.attrs {
		writeAttr(&buf, h.groups, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(&buf, h.groups, attr)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := &consoleHandler{writer: h.writer, level: h.level, groups: h.groups}
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := &consoleHandler{writer: h.writer, level: h.level, attrs: h.attrs}
	clone.groups = append(append([]string(nil), h.groups...), name)
	return clone
}

func writeAttr(buf *bytes.Buffer, groups []string, attr slog.Attr) {
	value := attr.Value.Resolve()
	if value.Kind() == slog.KindGroup {
		nested := groups
		if attr.Key != "" {
			nested = append(append([]string(nil), groups...), attr.Key)
		}
		for _, member := range value.Group() {
			writeAttr(buf, nested, member)
		}
		return
	}
	if attr.Key == "" {
		return
	}
	buf.WriteByte(' ')
	for _, group := range groups {
		buf.WriteString(group)
		buf.WriteByte('.')
	}
	buf.WriteString(attr.Key)
	buf.WriteByte('=')
	buf.WriteString(formatValue(value))
}

func formatValue(value slog.Value) string {
	text := value.String()
	if strings.ContainsAny(text, " \t") {
		return strconv.Quote(text)
	}
	return text
}

func levelTag(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN "
	case level >= slog.LevelInfo:
		return "INFO "
	default:
		return "DEBUG"
	}
}
