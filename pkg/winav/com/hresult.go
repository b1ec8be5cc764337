//go:build windows

package com

import (
	"fmt"
	"strings"

	"golang.org/x/sys/windows"
)

// HRESULT is a Windows COM status code. Failed codes satisfy error so
// call sites can return and wrap them directly; the message is resolved
// from the system message table.
type HRESULT uint32

// Well-known results. The E_PROP_* and 0x8007xxxx values are the
// HRESULT_FROM_WIN32 forms of the corresponding Win32 codes.
const (
	S_OK    HRESULT = 0x00000000
	S_FALSE HRESULT = 0x00000001

	E_NOTIMPL      HRESULT = 0x80004001
	E_NOINTERFACE  HRESULT = 0x80004002
	E_POINTER      HRESULT = 0x80004003
	E_ABORT        HRESULT = 0x80004004
	E_FAIL         HRESULT = 0x80004005
	E_ACCESSDENIED HRESULT = 0x80070005
	E_OUTOFMEMORY  HRESULT = 0x8007000E
	E_INVALIDARG   HRESULT = 0x80070057

	RPC_E_CHANGED_MODE HRESULT = 0x80010106

	E_FILE_NOT_FOUND       HRESULT = 0x80070002 // ERROR_FILE_NOT_FOUND
	E_SHARING_VIOLATION    HRESULT = 0x80070020 // ERROR_SHARING_VIOLATION
	E_DEVICE_NOT_CONNECTED HRESULT = 0x8007048F // ERROR_DEVICE_NOT_CONNECTED
	E_PROP_ID_UNSUPPORTED  HRESULT = 0x80070490 // ERROR_NOT_FOUND
	E_PROP_SET_UNSUPPORTED HRESULT = 0x80070492 // ERROR_SET_NOT_FOUND
	E_DEVICE_IN_USE        HRESULT = 0x80070964 // ERROR_DEVICE_IN_USE

	VFW_E_CANNOT_CONNECT HRESULT = 0x80040217
	VFW_E_CANNOT_RENDER  HRESULT = 0x80040218
	VFW_E_DEVICE_IN_USE  HRESULT = 0x80040228
)

// Succeeded reports whether the severity bit is clear.
func (hr HRESULT) Succeeded() bool { return int32(hr) >= 0 }

// Failed reports whether the severity bit is set.
func (hr HRESULT) Failed() bool { return int32(hr) < 0 }

// Facility extracts the facility field.
func (hr HRESULT) Facility() uint16 { return uint16((hr >> 16) & 0x1FFF) }

// Code extracts the low-order code field.
func (hr HRESULT) Code() uint16 { return uint16(hr & 0xFFFF) }

// Message resolves the system message for hr. When the message table has
// no text for the code, a hex rendering is returned instead.
func (hr HRESULT) Message() string {
	buf := make([]uint16, 512)
	n, err := windows.FormatMessage(
		windows.FORMAT_MESSAGE_FROM_SYSTEM|windows.FORMAT_MESSAGE_IGNORE_INSERTS,
		0, uint32(hr), 0, buf, nil)
	if err != nil || n == 0 {
		return fmt.Sprintf("system error 0x%08X", uint32(hr))
	}
	return strings.TrimSpace(windows.UTF16ToString(buf[:n]))
}

func (hr HRESULT) Error() string {
	return fmt.Sprintf("0x%08X: %s", uint32(hr), hr.Message())
}

// Details returns a verbose rendering with the facility and code fields
// split out, for diagnostics output.
func (hr HRESULT) Details() string {
	severity := "SUCCESS"
	if hr.Failed() {
		severity = "FAILURE"
	}
	return fmt.Sprintf("HRESULT: 0x%08X (Facility: %d, Code: %d) [%s] - %s",
		uint32(hr), hr.Facility(), hr.Code(), severity, hr.Message())
}

// IsDeviceError reports whether hr is one of the codes DirectShow returns
// when a device is unplugged, held by another process, or cannot be bound.
func (hr HRESULT) IsDeviceError() bool {
	switch hr {
	case E_ACCESSDENIED,
		E_FILE_NOT_FOUND,
		E_DEVICE_NOT_CONNECTED,
		E_PROP_ID_UNSUPPORTED,
		E_DEVICE_IN_USE,
		VFW_E_CANNOT_CONNECT,
		VFW_E_CANNOT_RENDER,
		VFW_E_DEVICE_IN_USE:
		return true
	}
	return false
}

// IsBusyError reports whether hr means another process holds the device.
func (hr HRESULT) IsBusyError() bool {
	switch hr {
	case E_SHARING_VIOLATION, E_DEVICE_IN_USE, VFW_E_DEVICE_IN_USE:
		return true
	}
	return false
}

// IsPermissionError reports whether hr means access was denied, typically
// by a privacy setting blocking camera use.
func (hr HRESULT) IsPermissionError() bool {
	return hr == E_ACCESSDENIED
}
