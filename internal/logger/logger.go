// Package logger configures logrus and derives request-scoped entries.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Context keys read by WithContext. Gin contexts resolve them through c.Get.
const (
	userKey       = "email"
	requestIDKey  = "request_id"
	departmentKey = "department_id"
)

// Logger is a logrus entry whose helpers keep returning *Logger
type Logger struct {
	*logrus.Entry
}

// Setup switches the standard logger to JSON at the given level. A non-empty
// file adds a rotating copy of every line.
func Setup(level, file string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(output(file))

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

func output(file string) io.Writer {
	if file == "" {
		return os.Stdout
	}
	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   file,
		MaxSize:    100, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	})
}

// New returns an entry on the standard logger
func New() *Logger {
	return &Logger{Entry: logrus.NewEntry(logrus.StandardLogger())}
}

// WithContext tags the entry with the caller, request id and department found in ctx
func WithContext(ctx context.Context) *Logger {
	l := New()
	if ctx == nil {
		return l
	}

	fields := logrus.Fields{"user": "anonymous"}
	if email, ok := ctx.Value(userKey).(string); ok && email != "" {
		fields["user"] = email
	}
	if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
		fields["request_id"] = id
	}
	if dept := ctx.Value(departmentKey); dept != nil {
		if s, ok := dept.(fmt.Stringer); ok {
			fields["department_id"] = s.String()
		}
	}
	return &Logger{Entry: l.Entry.WithFields(fields)}
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithFields(fields)}
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{Entry: l.Entry.WithError(err)}
}
