package duvc

import (
	"errors"
	"fmt"
)

// ErrorCode classifies every failure the package produces.
type ErrorCode int

// Error codes.
const (
	// ErrDeviceNotFound means the device is not present or no longer matches
	// any enumerated entry.
	ErrDeviceNotFound ErrorCode = iota + 1
	// ErrDeviceBusy means the device is exclusively held by another process.
	ErrDeviceBusy
	// ErrPropertyNotSupported means the device cannot do this operation at
	// all: the property has no native mapping or the control interface that
	// would carry it never bound.
	ErrPropertyNotSupported
	// ErrInvalidValue means a value or payload does not fit the property.
	ErrInvalidValue
	// ErrPermissionDenied means the OS refused access.
	ErrPermissionDenied
	// ErrSystemError means a native call failed for a reason other than lack
	// of support.
	ErrSystemError
	// ErrInvalidArgument means the caller passed something malformed.
	ErrInvalidArgument
	// ErrNotImplemented means no platform backend exists for this build.
	ErrNotImplemented
)

var errorCodeNames = map[ErrorCode]string{
	ErrDeviceNotFound:       "DEVICE_NOT_FOUND",
	ErrDeviceBusy:           "DEVICE_BUSY",
	ErrPropertyNotSupported: "PROPERTY_NOT_SUPPORTED",
	ErrInvalidValue:         "INVALID_VALUE",
	ErrPermissionDenied:     "PERMISSION_DENIED",
	ErrSystemError:          "SYSTEM_ERROR",
	ErrInvalidArgument:      "INVALID_ARGUMENT",
	ErrNotImplemented:       "NOT_IMPLEMENTED",
}

// String returns the stable code name.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(c))
}

// Error is the structured error type returned by every fallible operation.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf extracts the ErrorCode from err. Errors that did not originate in
// this package report ErrSystemError.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrSystemError
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
