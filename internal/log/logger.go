// Package log is sweep's logging facade over logrus. A package-level logger
// writes to stderr; components may derive loggers with extra fields.
package log

import (
	"io"
	"os"

	"sweep/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug = false
	logger  = NewLogger(WithOutput(os.Stderr), WithLevel(logrus.WarnLevel))
)

// Field is a single structured key/value pair
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

type options struct {
	out   io.Writer
	level logrus.Level
}

// Option configures a Logger
type Option func(*options)

// WithOutput sets the destination writer
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithLevel sets the minimum level for Info. Debug output is controlled by
// SetDebug only.
func WithLevel(level logrus.Level) Option {
	return func(o *options) { o.level = level }
}

// Logger wraps a logrus entry
type Logger struct {
	entry *logrus.Entry
	level logrus.Level
}

// NewLogger builds a Logger. Without options it writes text to stdout at info level.
func NewLogger(opts ...Option) *Logger {
	o := options{out: os.Stdout, level: logrus.InfoLevel}
	for _, opt := range opts {
		opt(&o)
	}

	base := logrus.New()
	base.SetLevel(logrus.TraceLevel)
	base.SetOutput(o.out)
	base.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	return &Logger{entry: logrus.NewEntry(base), level: o.level}
}

// Configure replaces the package-level logger
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// SetDebug enables or disables debug output for every logger
func SetDebug(debug bool) {
	isDebug = debug
}

// With returns a child logger carrying fields
func (l *Logger) With(fields ...Field) *Logger {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(lf), level: l.level}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	if isDebug {
		l.entry.Debug(msg)
	}
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug {
		l.entry.Debugf(format, args...)
	}
}

// Info logs an informational message
func (l *Logger) Info(msg string) {
	if l.level >= logrus.InfoLevel {
		l.entry.Info(msg)
	}
}

// Infof logs a formatted informational message
func (l *Logger) Infof(format string, args ...interface{}) {
	if l.level >= logrus.InfoLevel {
		l.entry.Infof(format, args...)
	}
}

// Package-level helpers use the configured logger.

func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { logger.Infof(format, args...) }

// LogWithError attaches err and, for application errors, its kind and subject
func LogWithError(err error) *Logger {
	if err == nil {
		return logger.With(F("error", "<nil>"))
	}

	fields := []Field{F("error", err.Error())}

	var configErr *errors.ConfigError
	var discErr *errors.DiscoveryError
	var remErr *errors.RemovalError
	var parseErr *errors.ParseError
	var appErr *errors.ApplicationError
	switch {
	case errors.As(err, &configErr):
		fields = append(fields, F("error_kind", int(configErr.Kind())), F("param", configErr.Param()))
	case errors.As(err, &discErr):
		fields = append(fields, F("error_kind", int(discErr.Kind())), F("command", discErr.Command()))
	case errors.As(err, &remErr):
		fields = append(fields, F("error_kind", int(remErr.Kind())), F("target", remErr.Target()))
	case errors.As(err, &parseErr):
		fields = append(fields, F("error_kind", int(parseErr.Kind())), F("input", parseErr.Input()))
	case errors.As(err, &appErr):
		fields = append(fields, F("error_kind", int(appErr.Kind())))
	}
	return logger.With(fields...)
}
