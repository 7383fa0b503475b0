// Package logger открывает файл журнала и строит корневой zerolog.Logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"homework_bot/internal/config"
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

// NameField хранит имя компонента, записавшего событие.
const NameField = "logger"

func init() {
	zerolog.TimeFieldFormat = timeFormat
	zerolog.ErrorFieldName = "err"
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}
}

// Open пересоздаёт файл журнала и возвращает логгер вместе с файлом,
// который вызывающий должен закрыть.
func Open(cfg *config.Log) (zerolog.Logger, io.Closer, error) {
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	var w io.Writer = f
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: timeFormat}
		w = zerolog.MultiLevelWriter(f, cw)
	}

	return New(w, ParseLevel(cfg.Level)), f, nil
}

func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Caller().
		Logger()
}

// Named возвращает логгер компонента. Вызывать один раз на компонент:
// повторный вызов продублирует поле.
func Named(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str(NameField, name).Logger()
}

func ParseLevel(raw string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil || raw == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// Since удобен для логирования длительности запросов.
func Since(t time.Time) time.Duration {
	return time.Since(t).Round(time.Millisecond)
}
