// Package logger printf-style логгер поверх log/slog с цветным выводом tint.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// Logger логгер сервиса
type Logger struct {
	log   *slog.Logger
	level *slog.LevelVar
	file  *os.File
}

// New создает логгер, который пишет в stdout и, если указан file, дублирует вывод в файл
func New(file, level string) (*Logger, error) {
	var (
		writer  io.Writer = os.Stdout
		noColor           = !isTerminal(os.Stdout)
		f       *os.File
	)

	if file != "" {
		var err error
		f, err = os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", file, err)
		}
		writer = io.MultiWriter(os.Stdout, f)
		// escape-последовательности в файле не нужны
		noColor = true
	}

	l := newLogger(writer, level, noColor)
	l.file = f
	return l, nil
}

// NewWithWriter создает логгер без цвета, пишущий в w
func NewWithWriter(w io.Writer, level string) *Logger {
	return newLogger(w, level, true)
}

func newLogger(w io.Writer, level string, noColor bool) *Logger {
	lv := new(slog.LevelVar)
	lv.Set(ParseLevel(level))

	handler := tint.NewHandler(w, &tint.Options{
		Level:      lv,
		TimeFormat: time.DateTime,
		NoColor:    noColor,
	})

	return &Logger{
		log:   slog.New(handler),
		level: lv,
	}
}

// ParseLevel переводит строковый уровень в slog.Level, по умолчанию info
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

// SetLevel меняет уровень логирования на лету
func (l *Logger) SetLevel(level string) {
	l.level.Set(ParseLevel(level))
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.logf(slog.LevelDebug, format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.logf(slog.LevelInfo, format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.logf(slog.LevelWarn, format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.logf(slog.LevelError, format, v...)
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) logf(level slog.Level, format string, v ...interface{}) {
	ctx := context.Background()
	if !l.log.Enabled(ctx, level) {
		return
	}
	l.log.Log(ctx, level, fmt.Sprintf(format, v...))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
