package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatText, Output: &buf})

	logger.Info("inhibition applied", "state", "suspend")

	out := buf.String()
	if !strings.Contains(out, "inhibition applied") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "state=suspend") {
		t.Errorf("output missing attr: %q", out)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("guard acquired")

	if !strings.Contains(buf.String(), `"msg":"guard acquired"`) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Format: FormatText, Output: &buf})

	logger.Info("should be dropped")
	logger.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Error("info message leaked past warn level")
	}
	if !strings.Contains(out, "should appear") {
		t.Error("warn message missing")
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		v    int
		want slog.Level
	}{
		{v: 0, want: slog.LevelInfo},
		{v: 1, want: slog.LevelDebug},
		{v: 2, want: slog.LevelDebug - 4},
		{v: 5, want: slog.LevelDebug - 4},
	}

	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.v); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	logger := NewDiscard()
	ctx := NewContext(context.Background(), logger)

	if got := FromContext(ctx); got != logger {
		t.Error("FromContext should return the attached logger")
	}
	if got := FromContext(context.Background()); got == nil {
		t.Error("FromContext without logger should fall back to slog.Default")
	}
}

func TestMultiHandler_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	)
	logger := slog.New(h)

	logger.Info("fan out")

	if !strings.Contains(a.String(), "fan out") {
		t.Error("first handler missed the record")
	}
	if !strings.Contains(b.String(), "fan out") {
		t.Error("second handler missed the record")
	}
}
