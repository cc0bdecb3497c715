package main

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// newLogger writes diagnostics to w. Normal output never goes through it.
func newLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})

	level := logrus.WarnLevel
	if v := strings.TrimSpace(os.Getenv("GLB_LOG_LEVEL")); v != "" {
		if parsed, err := logrus.ParseLevel(v); err == nil {
			level = parsed
		}
	}
	if debugEnabled() {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
	return logger
}
