package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus to give every component the same structured JSON output.
type Logger struct {
	entry *logrus.Entry
}

// Init configures the global logrus settings. Call once from main before any
// Logger is created.
func Init(level logrus.Level) {
	logrus.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(level)
}

// ParseLevel maps a config string to a logrus level, defaulting to info.
func ParseLevel(s string) logrus.Level {
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// New creates a Logger with the component name preset on every entry.
func New(component string) *Logger {
	return &Logger{
		entry: logrus.WithField("component", component),
	}
}

// WithUser returns a Logger that also tags entries with the acting user.
func (l *Logger) WithUser(userID uint) *Logger {
	return &Logger{entry: l.entry.WithField("user_id", userID)}
}

// WithFields returns a Logger with extra structured fields attached.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{entry: l.entry.WithFields(fields)}
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
}

func (l *Logger) Info(message string) {
	l.entry.Info(message)
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
}

func (l *Logger) Fatal(message string) {
	l.entry.Fatal(message)
}
