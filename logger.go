package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus logger so call sites can pass trailing key/value
// pairs instead of building a logrus.Fields map.
type Logger struct {
	logger *logrus.Logger
}

// NewLogger writes text-formatted entries to w. level is any name logrus
// understands; unknown names fall back to info.
func NewLogger(w io.Writer, level string) *Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return &Logger{logger: l}
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.logger.WithFields(fields(args)).Debug(msg)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.logger.WithFields(fields(args)).Warn(msg)
}

// fields pairs up args as key, value. A trailing key without a value is
// dropped.
func fields(args []interface{}) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(args); i += 2 {
		f[fmt.Sprint(args[i])] = args[i+1]
	}
	return f
}
