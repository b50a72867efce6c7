// Package logger configures the process-wide slog logger.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// Config selects the level, output format and destination of log records
type Config struct {
	Level  string    `yaml:"level"`
	Format string    `yaml:"format"` // "text", "json" or "console"
	Output io.Writer `yaml:"-"`
}

var (
	once sync.Once
	lg   *slog.Logger
)

// Init installs the default logger. Only the first call has an effect.
func Init(cfg Config) {
	once.Do(func() {
		lg = New(cfg)
		slog.SetDefault(lg)
	})
}

// L returns the default logger, initialising a debug console logger if Init was never called
func L() *slog.Logger {
	once.Do(func() {
		lg = New(Config{Level: "debug", Format: "console"})
		slog.SetDefault(lg)
	})
	return lg
}

// New builds a logger without touching the process default
func New(cfg Config) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	level := ParseLevel(cfg.Level)

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(cfg.Output, &slog.HandlerOptions{Level: level})
	case "text":
		handler = slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{Level: level})
	default:
		handler = &consoleHandler{w: cfg.Output, level: level}
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// consoleHandler writes one short line per record:
//
//	12:00:00.000 DEBUG camera enabled  flight=true physics=false
type consoleHandler struct {
	w     io.Writer
	level slog.Level
	attrs []slog.Attr
	group string
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format("15:04:05.000"))
	b.WriteByte(' ')
	b.WriteString(levelTag(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		b.WriteString(formatAttr(h.group, a))
	}
	r.Attrs(func(a slog.Attr) bool {
		b.WriteString(formatAttr(h.group, a))
		return true
	})
	b.WriteByte('\n')

	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &consoleHandler{
		w:     h.w,
		level: h.level,
		attrs: append(append([]slog.Attr{}, h.attrs...), attrs...),
		group: h.group,
	}
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	prefix := name
	if h.group != "" {
		prefix = h.group + "." + name
	}
	return &consoleHandler{
		w:     h.w,
		level: h.level,
		attrs: append([]slog.Attr{}, h.attrs...),
		group: prefix,
	}
}

func levelTag(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARN "
	case l >= slog.LevelInfo:
		return "INFO "
	default:
		return "DEBUG"
	}
}

func formatAttr(group string, a slog.Attr) string {
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	return fmt.Sprintf("  %s=%v", key, a.Value)
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Elapsed formats a duration for log attributes in milliseconds
func Elapsed(d time.Duration) slog.Attr {
	return slog.Float64("ms", float64(d.Microseconds())/1000)
}
