package duvc

import (
	"fmt"
	"sync"
)

// LogLevel orders the severities the package reports through the sink.
type LogLevel int

// Log levels, least to most severe.
const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarning
	LogError
	LogCritical
)

// String returns the lowercase level name.
func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "debug"
	case LogInfo:
		return "info"
	case LogWarning:
		return "warning"
	case LogError:
		return "error"
	default:
		return "critical"
	}
}

// LogSink receives every message the package emits at or above the
// configured level. The sink runs on whatever goroutine produced the
// message, including hot-plug delivery goroutines, and must not block for
// long.
type LogSink func(level LogLevel, message string)

var logState struct {
	mu    sync.Mutex
	sink  LogSink
	level LogLevel
}

// SetLogSink installs the process-wide sink. A nil sink silences the
// package, which is the initial state.
func SetLogSink(sink LogSink) {
	logState.mu.Lock()
	defer logState.mu.Unlock()
	logState.sink = sink
}

// SetLogLevel sets the minimum severity forwarded to the sink.
func SetLogLevel(level LogLevel) {
	logState.mu.Lock()
	defer logState.mu.Unlock()
	logState.level = level
}

// GetLogLevel returns the current minimum severity.
func GetLogLevel() LogLevel {
	logState.mu.Lock()
	defer logState.mu.Unlock()
	return logState.level
}

func logMessage(level LogLevel, message string) {
	logState.mu.Lock()
	sink, min := logState.sink, logState.level
	logState.mu.Unlock()
	if sink != nil && level >= min {
		sink(level, message)
	}
}

func logDebugf(format string, args ...any) {
	logMessage(LogDebug, fmt.Sprintf(format, args...))
}

func logInfof(format string, args ...any) {
	logMessage(LogInfo, fmt.Sprintf(format, args...))
}

func logWarnf(format string, args ...any) {
	logMessage(LogWarning, fmt.Sprintf(format, args...))
}

func logErrorf(format string, args ...any) {
	logMessage(LogError, fmt.Sprintf(format, args...))
}
