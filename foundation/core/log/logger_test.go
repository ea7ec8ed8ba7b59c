// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, context fields, correlation IDs,
//              coded error mapping and timers.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation
// - 2026-10-18 v0.1.1: Concurrent writes through derived loggers

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	mdwerror "github.com/msto63/minidecl/foundation/core/error"
)

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{
		Level:  level,
		Format: FormatJSON,
		Output: buf,
	})
	return logger, buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerLevelFiltering(t *testing.T) {
	tests := []struct {
		name     string
		minLevel Level
		want     int
	}{
		{"trace logs everything", LevelTrace, 5},
		{"info drops trace and debug", LevelInfo, 3},
		{"error keeps only error", LevelError, 1},
		{"above fatal logs nothing", LevelFatal + 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(tt.minLevel)

			logger.Trace("t")
			logger.Debug("d")
			logger.Info("i")
			logger.Warn("w")
			logger.Error("e")

			if got := len(decodeLines(t, buf)); got != tt.want {
				t.Errorf("got %d entries, want %d", got, tt.want)
			}
		})
	}
}

func TestLoggerContextFields(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo)

	logger := base.
		WithName("parser").
		WithField("component", "lexer").
		WithCorrelationID("run-42")

	logger.Info("tokenized", Fields{"tokens": 7})

	entries := decodeLines(t, buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	entry := entries[0]
	checks := map[string]interface{}{
		"logger":         "parser",
		"component":      "lexer",
		"correlation_id": "run-42",
		"message":        "tokenized",
		"level":          "info",
		"tokens":         float64(7),
	}
	for key, want := range checks {
		if entry[key] != want {
			t.Errorf("%s = %v, want %v", key, entry[key], want)
		}
	}
}

func TestLoggerWithDoesNotMutateReceiver(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo)
	_ = base.WithField("extra", true).WithLevel(LevelError)

	base.Info("plain")

	entries := decodeLines(t, buf)
	if len(entries) != 1 {
		t.Fatalf("expected base logger to still log at info, got %d entries", len(entries))
	}
	if _, ok := entries[0]["extra"]; ok {
		t.Error("field added to derived logger leaked into base logger")
	}
}

func TestLogErrorSeverityMapping(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{
			name:      "syntax error is low severity",
			err:       mdwerror.New("expected semicolon").WithCode(mdwerror.CodeSyntax),
			wantLevel: "info",
		},
		{
			name:      "unknown code is medium severity",
			err:       mdwerror.New("odd"),
			wantLevel: "warn",
		},
		{
			name:      "config error is high severity",
			err:       mdwerror.New("bad config").WithCode(mdwerror.CodeInvalidConfig),
			wantLevel: "error",
		},
		{
			name:      "plain error logs at error",
			err:       errors.New("boom"),
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace)
			logger.LogError(tt.err)

			entries := decodeLines(t, buf)
			if len(entries) != 1 {
				t.Fatalf("expected 1 entry, got %d", len(entries))
			}
			if entries[0]["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %s", entries[0]["level"], tt.wantLevel)
			}
		})
	}
}

func TestLogErrorAddsCodedFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)

	err := mdwerror.New("expected semicolon").
		WithCode(mdwerror.CodeSyntax).
		WithOperation("parser.Parse").
		WithDetail("offset", 17)
	logger.LogError(err)

	entry := decodeLines(t, buf)[0]
	if entry["error_code"] != "SYNTAX" {
		t.Errorf("error_code = %v", entry["error_code"])
	}
	if entry["error_operation"] != "parser.Parse" {
		t.Errorf("error_operation = %v", entry["error_operation"])
	}
	if entry["error_offset"] != float64(17) {
		t.Errorf("error_offset = %v", entry["error_offset"])
	}
}

func TestLogErrorNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)
	logger.LogError(nil)

	if buf.Len() != 0 {
		t.Errorf("expected no output for nil error, got %q", buf.String())
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	timer := logger.StartTimer("parse").WithField("tokens", 3)
	elapsed := timer.Stop()
	if elapsed < 0 {
		t.Errorf("negative elapsed time %v", elapsed)
	}
	if again := timer.Stop(); again != 0 {
		t.Errorf("second Stop returned %v, want 0", again)
	}

	entries := decodeLines(t, buf)
	if len(entries) != 1 {
		t.Fatalf("expected exactly one timer entry, got %d", len(entries))
	}
	if entries[0]["message"] != "parse completed" {
		t.Errorf("message = %v", entries[0]["message"])
	}
	if entries[0]["operation"] != "parse" {
		t.Errorf("operation = %v", entries[0]["operation"])
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	logger.StartTimer("parse").StopWithError(errors.New("expected semicolon"))

	entry := decodeLines(t, buf)[0]
	if entry["message"] != "parse failed" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["success"] != false {
		t.Errorf("success = %v, want false", entry["success"])
	}
	if entry["error"] != "expected semicolon" {
		t.Errorf("error = %v", entry["error"])
	}
}

func TestLoggerConcurrentDerivedWrites(t *testing.T) {
	base, buf := newBufferLogger(LevelDebug)

	const goroutines, perGoroutine = 50, 20
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			derived := base.WithField("worker", id)
			for j := 0; j < perGoroutine; j++ {
				derived.Debug("tick", Fields{"n": j})
				derived.StartTimer("work").Stop()
			}
		}(i)
	}
	wg.Wait()

	entries := decodeLines(t, buf)
	if want := goroutines * perGoroutine * 2; len(entries) != want {
		t.Errorf("got %d entries, want %d", len(entries), want)
	}
}

func TestSetLevel(t *testing.T) {
	logger, _ := newBufferLogger(LevelInfo)

	if logger.IsLevelEnabled(LevelDebug) {
		t.Error("debug should be disabled at info")
	}

	logger.SetLevel(LevelDebug)
	if !logger.IsLevelEnabled(LevelDebug) || logger.GetLevel() != LevelDebug {
		t.Error("debug should be enabled after SetLevel")
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	custom, _ := newBufferLogger(LevelWarn)
	SetDefault(custom)

	if GetDefault() != custom {
		t.Error("SetDefault did not replace the default logger")
	}
}
