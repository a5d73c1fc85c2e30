package main

import (
	"io"
	"os"

	"github.com/nicolagi/logbook"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogging sends diagnostics to stderr and, when a log file is configured, to a
// size-rotated file as well. The todo files themselves are never written through this.
func setupLogging(cfg *logbook.Config) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.WarnLevel
	}
	log.SetLevel(level)
	if cfg.Log.File == "" {
		return
	}
	maxSize := cfg.Log.MaxSizeMB
	if maxSize == 0 {
		maxSize = 10
	}
	log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    maxSize,
		MaxBackups: cfg.Log.MaxBackups,
	}))
}
