//go:build !windows

package duvc

// The DirectShow backend only exists on Windows. Other builds keep the full
// API surface but answer every device operation with ErrNotImplemented so
// callers get a labeled error instead of a nil backend.

type stubPlatform struct{}

func newPlatform() platform {
	return stubPlatform{}
}

func errUnsupportedOS() error {
	return newError(ErrNotImplemented, "camera control requires Windows", nil)
}

func (stubPlatform) listDevices() ([]Device, error) {
	return nil, errUnsupportedOS()
}

func (stubPlatform) isConnected(Device) (bool, error) {
	return false, errUnsupportedOS()
}

func (stubPlatform) openConnection(Device) (*Connection, error) {
	return nil, errUnsupportedOS()
}

func (stubPlatform) openVendorAccessor(Device) (*VendorAccessor, error) {
	return nil, errUnsupportedOS()
}

type stubNotifier struct{}

func newPlatformNotifier() deviceNotifier {
	return stubNotifier{}
}

func (stubNotifier) start(func(added bool, path string)) error {
	return errUnsupportedOS()
}

func (stubNotifier) stop() {}
