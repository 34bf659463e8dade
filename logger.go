package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// initLogger wires the root logger to a colored console writer plus a
// plain file under logs/. Level comes from MAAUMA_LOG_LEVEL (default
// info); every line carries a per-session id so GUI-submitted logs from
// several runs can be told apart.
func initLogger() (*os.File, error) {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return nil, err
	}
	logFile, err := os.OpenFile(filepath.Join("logs", "agent.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	level := zerolog.InfoLevel
	if raw := os.Getenv("MAAUMA_LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			level = parsed
		}
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(console, logFile)).
		Level(level).
		With().
		Timestamp().
		Str("session_id", uuid.NewString()).
		Logger()
	return logFile, nil
}
