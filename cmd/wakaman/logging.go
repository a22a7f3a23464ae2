package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wakaman/internal/games/wakaman"
	"github.com/vovakirdan/wakaman/internal/storage"
)

const defaultLogFile = "~/.arcade/wakaman.log"

// newLogger builds the command logger writing to w and hands it to the game.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "wakaman",
		Level:           level,
	})
	wakaman.SetLogger(logger)
	return logger, nil
}

// fileLogger logs to --log-file so output never lands on the alt screen.
// The returned close func is never nil.
func fileLogger() (*log.Logger, func(), error) {
	path, err := storage.ExpandHome(flagLogFile)
	if err != nil {
		return nil, func() {}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}

	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, func() {}, err
	}
	return logger, func() { f.Close() }, nil
}
