package duvc

import "testing"

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogDebug, "debug"},
		{LogInfo, "info"},
		{LogWarning, "warning"},
		{LogError, "error"},
		{LogCritical, "critical"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestLogSinkFiltering(t *testing.T) {
	type entry struct {
		level LogLevel
		msg   string
	}
	var got []entry
	SetLogSink(func(level LogLevel, message string) {
		got = append(got, entry{level: level, msg: message})
	})
	SetLogLevel(LogWarning)
	t.Cleanup(func() {
		SetLogSink(nil)
		SetLogLevel(LogDebug)
	})

	logDebugf("level %d", 0)
	logInfof("level %d", 1)
	logWarnf("level %d", 2)
	logErrorf("level %d", 3)

	if len(got) != 2 {
		t.Fatalf("messages: expected 2, got %d", len(got))
	}
	if got[0].level != LogWarning || got[0].msg != "level 2" {
		t.Errorf("first message: expected warning %q, got %v %q", "level 2", got[0].level, got[0].msg)
	}
	if got[1].level != LogError || got[1].msg != "level 3" {
		t.Errorf("second message: expected error %q, got %v %q", "level 3", got[1].level, got[1].msg)
	}

	if GetLogLevel() != LogWarning {
		t.Errorf("GetLogLevel: expected warning, got %v", GetLogLevel())
	}
}

func TestLogNilSink(t *testing.T) {
	SetLogSink(nil)
	logErrorf("dropped without a sink")
}
