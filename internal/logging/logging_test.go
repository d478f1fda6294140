package logging

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogFilePath(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	got := LogFilePath("logs", "chartgen", start)
	want := filepath.Join("logs", "chartgen.20260314_092653.log")
	if got != want {
		t.Errorf("LogFilePath() = %q, want %q", got, want)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetupWritesToFile(t *testing.T) {
	var buf bytes.Buffer
	m := NewSlogManager()
	m.Setup(&buf, "debug")

	m.Logger().Debug("figure assembled", "constellation", "Ori")
	if !strings.Contains(buf.String(), "figure assembled") {
		t.Errorf("file writer missing record, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "constellation=Ori") {
		t.Errorf("file writer missing attr, got %q", buf.String())
	}
}

func TestLoggerBeforeSetup(t *testing.T) {
	m := NewSlogManager()
	if m.Logger() == nil {
		t.Fatal("Logger() returned nil before Setup")
	}
}

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&a, nil),
		slog.NewTextHandler(&b, nil),
		nil,
	)
	logger := slog.New(h)
	logger.Info("hello")

	for name, buf := range map[string]*bytes.Buffer{"a": &a, "b": &b} {
		if !strings.Contains(buf.String(), "hello") {
			t.Errorf("handler %s missed record", name)
		}
	}
}

func TestMultiHandlerLevelFiltering(t *testing.T) {
	var quiet, chatty bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&chatty, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("multi handler should be enabled when any child is")
	}

	slog.New(h).Info("routine")
	if quiet.Len() != 0 {
		t.Errorf("error-level handler received info record: %q", quiet.String())
	}
	if chatty.Len() == 0 {
		t.Error("debug-level handler missed info record")
	}
}
