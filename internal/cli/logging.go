package cli

import (
	"io"
	"time"

	"github.com/lydakis/dapx/internal/config"
	"github.com/sirupsen/logrus"
)

// newLogger builds the process logger from log_level and log_format. Logs go
// to w, never to stdout.
func newLogger(cfg *config.Config, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}
	return logger
}
