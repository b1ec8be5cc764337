//go:build windows

package com

import (
	"strings"
	"testing"
)

func TestHRESULTSeverity(t *testing.T) {
	tests := []struct {
		name      string
		hr        HRESULT
		succeeded bool
	}{
		{"S_OK", S_OK, true},
		{"S_FALSE", S_FALSE, true},
		{"E_FAIL", E_FAIL, false},
		{"E_ACCESSDENIED", E_ACCESSDENIED, false},
		{"VFW_E_DEVICE_IN_USE", VFW_E_DEVICE_IN_USE, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hr.Succeeded(); got != tt.succeeded {
				t.Errorf("Succeeded: expected %v, got %v", tt.succeeded, got)
			}
			if got := tt.hr.Failed(); got == tt.succeeded {
				t.Errorf("Failed: expected %v, got %v", !tt.succeeded, got)
			}
		})
	}
}

func TestHRESULTFields(t *testing.T) {
	// HRESULT_FROM_WIN32(ERROR_ACCESS_DENIED): facility 7, code 5.
	if got := E_ACCESSDENIED.Facility(); got != 7 {
		t.Errorf("Facility: expected 7, got %d", got)
	}
	if got := E_ACCESSDENIED.Code(); got != 5 {
		t.Errorf("Code: expected 5, got %d", got)
	}
	if got := E_DEVICE_IN_USE.Code(); got != 2404 {
		t.Errorf("E_DEVICE_IN_USE code: expected 2404, got %d", got)
	}
	if got := VFW_E_CANNOT_CONNECT.Facility(); got != 4 {
		t.Errorf("VFW facility: expected 4, got %d", got)
	}
}

func TestHRESULTErrorFormat(t *testing.T) {
	if got := E_ACCESSDENIED.Error(); !strings.HasPrefix(got, "0x80070005: ") {
		t.Errorf("Error: expected hex prefix, got %q", got)
	}

	details := E_ACCESSDENIED.Details()
	if !strings.HasPrefix(details, "HRESULT: 0x80070005 (Facility: 7, Code: 5) [FAILURE]") {
		t.Errorf("Details: unexpected %q", details)
	}
	if ok := S_OK.Details(); !strings.Contains(ok, "[SUCCESS]") {
		t.Errorf("Details for S_OK: expected SUCCESS marker, got %q", ok)
	}
}

func TestHRESULTClassification(t *testing.T) {
	deviceErrors := []HRESULT{
		E_ACCESSDENIED,
		E_FILE_NOT_FOUND,
		E_DEVICE_NOT_CONNECTED,
		E_PROP_ID_UNSUPPORTED,
		E_DEVICE_IN_USE,
		VFW_E_CANNOT_CONNECT,
		VFW_E_CANNOT_RENDER,
		VFW_E_DEVICE_IN_USE,
	}
	for _, hr := range deviceErrors {
		if !hr.IsDeviceError() {
			t.Errorf("0x%08X: expected IsDeviceError", uint32(hr))
		}
	}
	if E_FAIL.IsDeviceError() {
		t.Error("E_FAIL should not be a device error")
	}

	busyErrors := []HRESULT{E_SHARING_VIOLATION, E_DEVICE_IN_USE, VFW_E_DEVICE_IN_USE}
	for _, hr := range busyErrors {
		if !hr.IsBusyError() {
			t.Errorf("0x%08X: expected IsBusyError", uint32(hr))
		}
	}
	if E_ACCESSDENIED.IsBusyError() {
		t.Error("E_ACCESSDENIED should not be a busy error")
	}

	if !E_ACCESSDENIED.IsPermissionError() {
		t.Error("E_ACCESSDENIED: expected IsPermissionError")
	}
	if E_SHARING_VIOLATION.IsPermissionError() {
		t.Error("E_SHARING_VIOLATION should not be a permission error")
	}
}
