package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Fields are attached to a single log event.
type Fields map[string]interface{}

// Logger wraps zerolog.Logger with a map based field API.
type Logger struct {
	zlog zerolog.Logger
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

// New builds a Logger writing to out, or stdout when out is nil. The
// development environment gets console output at debug level; every other
// environment gets JSON lines at info level.
func New(env string, out io.Writer) *Logger {
	if out == nil {
		out = os.Stdout
	}

	level := zerolog.InfoLevel

	if env == "development" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
		level = zerolog.DebugLevel
	}

	return &Logger{
		zlog: zerolog.New(out).Level(level).With().Timestamp().Logger(),
	}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

func (l *Logger) Debug(msg string, fields Fields) {
	withFields(l.zlog.Debug(), fields).Msg(msg)
}

func (l *Logger) Info(msg string, fields Fields) {
	withFields(l.zlog.Info(), fields).Msg(msg)
}

func (l *Logger) Warn(msg string, fields Fields) {
	withFields(l.zlog.Warn(), fields).Msg(msg)
}

func (l *Logger) Error(msg string, err error, fields Fields) {
	withFields(l.zlog.Error().Err(err), fields).Msg(msg)
}

// Fatal logs and exits the process with status 1.
func (l *Logger) Fatal(msg string, err error, fields Fields) {
	withFields(l.zlog.Fatal().Err(err), fields).Msg(msg)
}

// With returns a child logger carrying fields on every event.
func (l *Logger) With(fields Fields) *Logger {
	ctx := l.zlog.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}

	return &Logger{zlog: ctx.Logger()}
}

func withFields(event *zerolog.Event, fields Fields) *zerolog.Event {
	for key, value := range fields {
		event = event.Interface(key, value)
	}

	return event
}
