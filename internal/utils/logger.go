package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// InitLogger configures the package logger with file rotation. An empty
// file name logs to stderr only.
func InitLogger(file string, maxSizeMB, maxBackups, maxAgeDays int, compress bool, level string) {
	var w io.Writer = os.Stderr
	if file != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   compress,
		})
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	logger = zerolog.New(w).With().Timestamp().Logger().Level(lvl)
}

// SetLogLevel changes the minimum level at runtime. Unknown levels are
// ignored.
func SetLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return
	}
	logger = logger.Level(lvl)
}

// SetLoggerForTest replaces the package logger so tests can capture
// output.
func SetLoggerForTest(l zerolog.Logger) {
	logger = l
}

func withFields(ev *zerolog.Event, kv []any) *zerolog.Event {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		ev = ev.Interface(key, kv[i+1])
	}
	return ev
}

// Debug logs at debug level with alternating key-value pairs.
func Debug(msg string, kv ...any) { withFields(logger.Debug(), kv).Msg(msg) }

// Info logs at info level with alternating key-value pairs.
func Info(msg string, kv ...any) { withFields(logger.Info(), kv).Msg(msg) }

// Warn logs at warn level with alternating key-value pairs.
func Warn(msg string, kv ...any) { withFields(logger.Warn(), kv).Msg(msg) }

// Error logs at error level with alternating key-value pairs.
func Error(msg string, kv ...any) { withFields(logger.Error(), kv).Msg(msg) }
