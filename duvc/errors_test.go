package duvc

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCodeString(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected string
	}{
		{ErrDeviceNotFound, "DEVICE_NOT_FOUND"},
		{ErrDeviceBusy, "DEVICE_BUSY"},
		{ErrPropertyNotSupported, "PROPERTY_NOT_SUPPORTED"},
		{ErrInvalidValue, "INVALID_VALUE"},
		{ErrPermissionDenied, "PERMISSION_DENIED"},
		{ErrSystemError, "SYSTEM_ERROR"},
		{ErrInvalidArgument, "INVALID_ARGUMENT"},
		{ErrNotImplemented, "NOT_IMPLEMENTED"},
		{ErrorCode(99), "UNKNOWN(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.code.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestErrorFormat(t *testing.T) {
	bare := newError(ErrDeviceNotFound, "no such device", nil)
	if got := bare.Error(); got != "DEVICE_NOT_FOUND: no such device" {
		t.Errorf("without cause: got %q", got)
	}

	wrapped := newError(ErrSystemError, "open device", errors.New("access violation"))
	if got := wrapped.Error(); got != "SYSTEM_ERROR: open device: access violation" {
		t.Errorf("with cause: got %q", got)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("native failure")
	err := newError(ErrSystemError, "get property", cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorCode
	}{
		{
			name:     "direct",
			err:      newError(ErrDeviceBusy, "device is busy", nil),
			expected: ErrDeviceBusy,
		},
		{
			name:     "wrapped with fmt",
			err:      fmt.Errorf("while probing: %w", newError(ErrPropertyNotSupported, "no focus", nil)),
			expected: ErrPropertyNotSupported,
		},
		{
			name:     "foreign error",
			err:      errors.New("something else"),
			expected: ErrSystemError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := newError(ErrInvalidValue, "out of range", nil)
	if !IsCode(err, ErrInvalidValue) {
		t.Error("expected IsCode true for matching code")
	}
	if IsCode(err, ErrDeviceBusy) {
		t.Error("expected IsCode false for different code")
	}
	if IsCode(errors.New("foreign"), ErrSystemError) {
		t.Error("expected IsCode false for foreign error")
	}
	if IsCode(nil, ErrSystemError) {
		t.Error("expected IsCode false for nil")
	}
}
