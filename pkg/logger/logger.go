// Package logger предоставляет общий интерфейс логирования для всех слоёв приложения.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Logger — интерфейс структурированного логирования, внедряется во все компоненты.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

// SlogLogger реализует Logger поверх стандартного slog.
type SlogLogger struct {
	log *slog.Logger
}

// NewSlogLogger создаёт логгер с текстовым хендлером в stderr.
// Уровень задаётся переменной окружения LOG_LEVEL (debug/info/warn/error).
func NewSlogLogger() *SlogLogger {
	lvl := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	return &SlogLogger{
		log: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})),
	}
}

func (l *SlogLogger) Debugf(format string, args ...any) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

func (l *SlogLogger) Infof(format string, args ...any) {
	l.log.Info(fmt.Sprintf(format, args...))
}

func (l *SlogLogger) Warnf(format string, args ...any) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

func (l *SlogLogger) Errorf(err error, format string, args ...any) {
	l.log.Error(fmt.Sprintf(format, args...), slog.Any("error", err))
}

// Discard — логгер, отбрасывающий все сообщения. Используется в тестах.
type Discard struct{}

func (Discard) Debugf(string, ...any)        {}
func (Discard) Infof(string, ...any)         {}
func (Discard) Warnf(string, ...any)         {}
func (Discard) Errorf(error, string, ...any) {}
