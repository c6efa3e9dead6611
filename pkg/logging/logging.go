package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"jha_chat/pkg/config"
	"jha_chat/pkg/version"

	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFile = "jha.log"
const (
	maxLogSizeMB  = 5
	maxLogBackups = 5
	maxLogAgeDays = 14
)

// Attribute keys whose values never reach the log file.
var secretKeys = map[string]bool{
	"api_key":       true,
	"authorization": true,
	"credential":    true,
}

const redacted = "[redacted]"

// Init configures slog to write structured logs to a rotating file. Every
// record carries the app name and build version.
// On failure the returned logger discards output so callers can keep going.
func Init(cfg config.Config) (*slog.Logger, error) {
	handlerOptions := &slog.HandlerOptions{
		Level:       ParseLevel(cfg.LogLevel),
		ReplaceAttr: redactSecrets,
	}

	logPath := strings.TrimSpace(cfg.LogFile)
	if logPath == "" {
		logPath = DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		logger := newLogger(cfg.LogFormat, io.Discard, handlerOptions)
		slog.SetDefault(logger)
		return logger, err
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	}

	logger := newLogger(cfg.LogFormat, writer, handlerOptions)
	slog.SetDefault(logger)
	return logger, nil
}

// DefaultLogPath returns ~/.jha/logs/jha.log, or a relative path when the
// home directory is unknown.
func DefaultLogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(homeDir) == "" {
		return filepath.Join(".jha", "logs", defaultLogFile)
	}
	return filepath.Join(homeDir, ".jha", "logs", defaultLogFile)
}

// ParseLevel maps a config level name to a slog level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newHandler(format string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text":
		return slog.NewTextHandler(out, opts)
	default:
		return slog.NewJSONHandler(out, opts)
	}
}

func newLogger(format string, out io.Writer, opts *slog.HandlerOptions) *slog.Logger {
	return slog.New(newHandler(format, out, opts)).With(
		slog.String("app", "jha"),
		slog.String("version", version.Summary()),
	)
}

// redactSecrets replaces credential-bearing attributes, at any group depth.
func redactSecrets(_ []string, a slog.Attr) slog.Attr {
	if secretKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, redacted)
	}
	return a
}
