//go:build !windows

package duvc

import "testing"

func TestStubPlatform(t *testing.T) {
	if _, err := ListDevices(); !IsCode(err, ErrNotImplemented) {
		t.Errorf("ListDevices: expected NOT_IMPLEMENTED, got %v", err)
	}
	if _, err := IsDeviceConnected(Device{Name: "any"}); !IsCode(err, ErrNotImplemented) {
		t.Errorf("IsDeviceConnected: expected NOT_IMPLEMENTED, got %v", err)
	}
	if _, err := OpenConnection(Device{Name: "any"}); !IsCode(err, ErrNotImplemented) {
		t.Errorf("OpenConnection: expected NOT_IMPLEMENTED, got %v", err)
	}
	if _, err := OpenVendorAccessor(Device{Name: "any"}); !IsCode(err, ErrNotImplemented) {
		t.Errorf("OpenVendorAccessor: expected NOT_IMPLEMENTED, got %v", err)
	}
}

func TestStubNotifier(t *testing.T) {
	err := RegisterDeviceChangeCallback(func(added bool, path string) {})
	if !IsCode(err, ErrNotImplemented) {
		t.Errorf("RegisterDeviceChangeCallback: expected NOT_IMPLEMENTED, got %v", err)
	}
	UnregisterDeviceChangeCallback()
}
