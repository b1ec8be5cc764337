package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func resetLoggingState() {
	mutex.Lock()
	moduleLoggers = make(map[string]*slog.Logger)
	moduleLevelVars = make(map[string]*slog.LevelVar)
	isInitialized = false
	globalConfig = Config{}
	logBuffer = nil
	logCallback = nil
	mutex.Unlock()
}

func TestModuleLevelOverride(t *testing.T) {
	resetLoggingState()

	// Initialize with global info level, but camera module at debug
	Initialize(Config{
		Level:  "info",
		Format: "text",
		Modules: map[string]string{
			"camera": "debug",
			"api":    "warn",
		},
	})

	tests := []struct {
		module      string
		wantDebug   bool
		wantInfo    bool
		wantWarn    bool
		description string
	}{
		{"camera", true, true, true, "camera module should log debug (override to debug)"},
		{"api", false, false, true, "api module should only log warn (override to warn)"},
		{"other", false, true, true, "other module should log info (global default)"},
	}

	for _, tt := range tests {
		t.Run(tt.module, func(t *testing.T) {
			logger := GetLogger(tt.module)

			// Get the handler from the logger to test Enabled
			handler := logger.Handler()

			gotDebug := handler.Enabled(context.Background(), slog.LevelDebug)
			gotInfo := handler.Enabled(context.Background(), slog.LevelInfo)
			gotWarn := handler.Enabled(context.Background(), slog.LevelWarn)

			if gotDebug != tt.wantDebug {
				t.Errorf("module %q: Debug enabled = %v, want %v", tt.module, gotDebug, tt.wantDebug)
			}
			if gotInfo != tt.wantInfo {
				t.Errorf("module %q: Info enabled = %v, want %v", tt.module, gotInfo, tt.wantInfo)
			}
			if gotWarn != tt.wantWarn {
				t.Errorf("module %q: Warn enabled = %v, want %v", tt.module, gotWarn, tt.wantWarn)
			}
		})
	}
}

func TestModuleLevelActualOutput(t *testing.T) {
	resetLoggingState()

	var buf bytes.Buffer

	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(handler).With("module", "test")

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")

	output := buf.String()

	if !strings.Contains(output, "debug message") {
		t.Error("Debug message not found in output")
	}
	if !strings.Contains(output, "info message") {
		t.Error("Info message not found in output")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("Warn message not found in output")
	}
}

func TestModuleLevelWithMultiHandler(t *testing.T) {
	resetLoggingState()

	// Initialize with debug level for the monitor module
	Initialize(Config{
		Level:  "info",
		Format: "text",
		Modules: map[string]string{
			"monitor": "debug",
		},
	})

	logger := GetLogger("monitor")
	handler := logger.Handler()

	if !handler.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("Debug should be enabled for monitor module, handler type: %T", handler)
	}
}

func TestMultiHandlerDebugOutput(t *testing.T) {
	var buf bytes.Buffer

	// Create two handlers - one with debug, one with info
	debugHandler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	infoHandler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})

	multi := NewMultiHandler(debugHandler, infoHandler)
	logger := slog.New(multi).With("module", "test")

	// Write debug log - should appear once (from debugHandler)
	logger.Debug("debug only message")

	output := buf.String()
	if !strings.Contains(output, "debug only message") {
		t.Errorf("Debug message not written via MultiHandler. Output: %s", output)
	}

	count := strings.Count(output, "debug only message")
	if count != 1 {
		t.Errorf("Expected 1 debug message, got %d. Output: %s", count, output)
	}
}

func TestGetLoggerBeforeInitialize(t *testing.T) {
	resetLoggingState()

	// Get logger BEFORE Initialize - should default to info level
	loggerBefore := GetLogger("monitor")
	handlerBefore := loggerBefore.Handler()

	if handlerBefore.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Logger created before Initialize should NOT have debug enabled")
	}

	// Now Initialize with debug level for monitor
	Initialize(Config{
		Level:  "info",
		Format: "text",
		Modules: map[string]string{
			"monitor": "debug",
		},
	})

	// Get logger AFTER Initialize - should be SAME logger (cached) with updated level
	loggerAfter := GetLogger("monitor")

	if loggerBefore != loggerAfter {
		t.Error("Logger should be cached - same pointer before and after Initialize")
	}

	// The cached logger should now have debug enabled (LevelVar was updated)
	if !handlerBefore.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Cached logger should have debug enabled after Initialize updates LevelVar")
	}
}

func TestParseLevelValues(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
		isNil bool
	}{
		{"debug", slog.LevelDebug, false},
		{"DEBUG", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"critical", LevelCritical, false},
		{"invalid", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseLevel(tt.input)
			if tt.isNil {
				if got != nil {
					t.Errorf("parseLevel(%q) = %v, want nil", tt.input, *got)
				}
			} else {
				if got == nil {
					t.Errorf("parseLevel(%q) = nil, want %v", tt.input, tt.want)
				} else if *got != tt.want {
					t.Errorf("parseLevel(%q) = %v, want %v", tt.input, *got, tt.want)
				}
			}
		})
	}
}

func TestRingBufferWraparound(t *testing.T) {
	rb := NewRingBuffer(4)

	for _, msg := range []string{"a", "b", "c", "d", "e", "f"} {
		rb.Write(LogEntry{Message: msg})
	}

	if rb.Count() != 4 {
		t.Fatalf("Count() = %d, want 4", rb.Count())
	}

	entries := rb.ReadAll()
	want := []string{"c", "d", "e", "f"}
	if len(entries) != len(want) {
		t.Fatalf("ReadAll() returned %d entries, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i].Message != w {
			t.Errorf("entries[%d].Message = %q, want %q", i, entries[i].Message, w)
		}
	}

	last := rb.ReadLast(2)
	if len(last) != 2 || last[0].Message != "e" || last[1].Message != "f" {
		t.Errorf("ReadLast(2) = %v, want [e f]", last)
	}

	all := rb.ReadLast(0)
	if len(all) != 4 {
		t.Errorf("ReadLast(0) returned %d entries, want 4", len(all))
	}
}

func TestBufferHandlerCapture(t *testing.T) {
	resetLoggingState()
	mutex.Lock()
	logBuffer = NewRingBuffer(16)
	mutex.Unlock()

	var received []LogEntry
	SetLogCallback(func(entry LogEntry) {
		received = append(received, entry)
	})
	defer SetLogCallback(nil)

	levelVar := &slog.LevelVar{}
	levelVar.Set(slog.LevelDebug)
	logger := slog.New(NewBufferHandler(levelVar)).With("module", "camera")

	logger.Info("connection opened", "device", "HD Pro Webcam C920")
	logger.Log(context.Background(), LevelCritical, "device lost")

	entries := GetBuffer().ReadAll()
	if len(entries) != 2 {
		t.Fatalf("buffer has %d entries, want 2", len(entries))
	}

	first := entries[0]
	if first.Module != "camera" {
		t.Errorf("Module = %q, want %q", first.Module, "camera")
	}
	if first.Level != "info" {
		t.Errorf("Level = %q, want %q", first.Level, "info")
	}
	if first.Message != "connection opened" {
		t.Errorf("Message = %q, want %q", first.Message, "connection opened")
	}
	if first.Attributes["device"] != "HD Pro Webcam C920" {
		t.Errorf("Attributes[device] = %v, want %q", first.Attributes["device"], "HD Pro Webcam C920")
	}

	if entries[1].Level != "critical" {
		t.Errorf("Level = %q, want %q", entries[1].Level, "critical")
	}
	if entries[1].Seq != first.Seq+1 {
		t.Errorf("Seq = %d after %d, want consecutive", entries[1].Seq, first.Seq)
	}

	if len(received) != 2 {
		t.Errorf("callback received %d entries, want 2", len(received))
	}
}

func TestFormatLogLine(t *testing.T) {
	entry := LogEntry{
		Level:   "warn",
		Module:  "camera",
		Message: "retrying open",
		Attributes: map[string]any{
			"device":  "cam0",
			"attempt": 2,
		},
	}

	line := FormatLogLine(entry)
	if !strings.Contains(line, "[WARN]") {
		t.Errorf("line %q missing level marker", line)
	}
	if !strings.Contains(line, "[camera]") {
		t.Errorf("line %q missing module", line)
	}
	if !strings.Contains(line, "retrying open") {
		t.Errorf("line %q missing message", line)
	}
	if !strings.Contains(line, "attempt=2 device=cam0") {
		t.Errorf("line %q missing sorted attributes", line)
	}
}
