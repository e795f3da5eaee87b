package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, level))

	logger.Info("paper saved", String("paper_id", "abc"), Int("sections", 3))
	line := buf.String()
	if !strings.Contains(line, "INFO") {
		t.Errorf("missing level tag: %q", line)
	}
	if !strings.Contains(line, "paper saved") {
		t.Errorf("missing message: %q", line)
	}
	if !strings.Contains(line, `paper_id="abc"`) || !strings.Contains(line, "sections=3") {
		t.Errorf("missing attributes: %q", line)
	}
}

func TestConsoleHandlerHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, level))

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info line emitted below level: %q", buf.String())
	}
	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("warn line missing: %q", buf.String())
	}
}

func TestConsoleHandlerWithAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, level)).
		With(String("component", "store")).
		WithGroup("save")

	logger.Info("done", Int("bytes", 42))
	line := buf.String()
	if !strings.Contains(line, `component="store"`) {
		t.Errorf("missing inherited attr: %q", line)
	}
	if !strings.Contains(line, "save.bytes=42") {
		t.Errorf("missing grouped attr: %q", line)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("goes nowhere", Error(nil))
	if logger.Enabled(nil, slog.LevelError) { //nolint:staticcheck // nil context fine for handler check
		t.Fatal("noop logger should never be enabled")
	}
}
