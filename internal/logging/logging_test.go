package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "superhero.log")

	logger, closeFn, err := Open(path, "debug", "superhero")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	logger.Debug("level loaded", "stage", 2)
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "level loaded") || !strings.Contains(out, "stage=2") {
		t.Errorf("log file missing entry:\n%s", out)
	}
	if !strings.Contains(out, "superhero") {
		t.Errorf("log file missing prefix:\n%s", out)
	}
}

func TestOpenFiltersByLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "superhero.log")

	logger, closeFn, err := Open(path, "warn", "")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	closeFn()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("info entry should be filtered at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn entry should be written")
	}
}

func TestOpenWithoutPath(t *testing.T) {
	logger, closeFn, err := Open("", "info", "x")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	logger.Info("dropped")
	if err := closeFn(); err != nil {
		t.Errorf("close of discard logger = %v", err)
	}
}

func TestOpenRejectsBadLevel(t *testing.T) {
	if _, _, err := Open("", "loud", ""); err == nil {
		t.Error("expected error for unknown level")
	}
}
