package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Console: &buf})

	log.Debug("hidden")
	log.Info("quiz saved", zap.String("pack_id", "quiz-1"))
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "quiz saved") || !strings.Contains(out, "quiz-1") {
		t.Errorf("missing info line: %q", out)
	}
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Console: &buf, Debug: true})

	log.Debug("visible")
	_ = log.Sync()

	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug line missing: %q", buf.String())
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	log := New(Options{File: path})

	log.Warn("limit reached", zap.String("user", "alice"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"limit reached"`) {
		t.Errorf("expected JSON line, got %q", data)
	}
}

func TestNew_Nop(t *testing.T) {
	log := New(Options{})
	if log.Core().Enabled(zap.ErrorLevel) {
		t.Errorf("expected no-op logger")
	}
}
