// SPDX-License-Identifier: MIT

// Package logging configures a logrus logger from config.LogConfig.
//
// Output always goes to the console writer. When a file is configured, it is
// also written there through a lumberjack rotating logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/tradelanes/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup applies cfg to logger and returns a Closer for the log file, if any.
// An unknown level is reported on logger and replaced by info.
func Setup(logger *log.Logger, cfg config.LogConfig, console io.Writer) (io.Closer, error) {
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	var closer io.Closer = nopCloser{}
	out := console
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("logging: create log dir: %w", err)
		}
		fileLogger := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		out = io.MultiWriter(console, fileLogger)
		closer = fileLogger
	}
	logger.SetOutput(out)

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		logger.SetLevel(log.InfoLevel)
		logger.Warnf("Invalid log level '%s', using 'info'", cfg.Level)
	} else {
		logger.SetLevel(level)
	}

	return closer, nil
}
