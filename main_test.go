package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"darkfortress/pkg/engine/logger"
	"darkfortress/pkg/game/levelgen"
)

func initFileLogger(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "darkfortress.log")
	cfg := logger.DefaultConfig()
	cfg.ConsoleEnabled = false
	cfg.FileEnabled = true
	cfg.FilePath = path
	if err := logger.Initialize(cfg); err != nil {
		t.Fatalf("logger.Initialize() error = %v", err)
	}
	return path
}

func TestFinish_LogsBeforeClosing(t *testing.T) {
	path := initFileLogger(t)

	if code := finish(errors.New("boom")); code != 1 {
		t.Errorf("finish() = %d, want 1", code)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "level generation failed") || !strings.Contains(string(data), "boom") {
		t.Errorf("log file = %q, want the failure record", data)
	}
	// A second close finds nothing left open
	if err := logger.Close(); err != nil {
		t.Errorf("logger.Close() after finish = %v, want nil", err)
	}
}

func TestFinish_ExitCodes(t *testing.T) {
	initFileLogger(t)
	if code := finish(nil); code != 0 {
		t.Errorf("finish(nil) = %d, want 0", code)
	}

	initFileLogger(t)
	err := fmt.Errorf("building: %w", levelgen.ErrUnknownArchitecture)
	if code := finish(err); code != 2 {
		t.Errorf("finish(unknown architecture) = %d, want 2", code)
	}
}
