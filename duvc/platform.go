package duvc

import "strings"

// platform is the per-OS backend behind the package-level entry points.
// Implementations live in platform_windows.go and platform_stub.go; the
// build picks one.
type platform interface {
	listDevices() ([]Device, error)
	isConnected(dev Device) (bool, error)
	openConnection(dev Device) (*Connection, error)
	openVendorAccessor(dev Device) (*VendorAccessor, error)
}

// activePlatform is swapped out by tests.
var activePlatform platform = newPlatform()

// ListDevices enumerates all video-capture devices currently known to the
// OS. An empty result is a successful answer: "no cameras" and "category
// enumerator returned nothing" are deliberately not distinguished here.
func ListDevices() ([]Device, error) {
	devices, err := activePlatform.listDevices()
	if err != nil {
		return nil, wrapSystem("enumerate devices", err)
	}
	return devices, nil
}

// IsDeviceConnected re-enumerates and reports whether the device is still
// present. Absence is a successful false, never an error.
func IsDeviceConnected(dev Device) (bool, error) {
	if !dev.IsValid() {
		return false, newError(ErrInvalidArgument, "device has no name or path", nil)
	}
	connected, err := activePlatform.isConnected(dev)
	if err != nil {
		return false, wrapSystem("check device", err)
	}
	return connected, nil
}

// OpenConnection binds to the device's control object. A device that no
// longer matches any enumerated entry yields ErrDeviceNotFound. The caller
// owns the connection and must Close it.
func OpenConnection(dev Device) (*Connection, error) {
	if !dev.IsValid() {
		return nil, newError(ErrInvalidArgument, "device has no name or path", nil)
	}
	conn, err := activePlatform.openConnection(dev)
	if err != nil {
		return nil, wrapSystem("open device", err)
	}
	return conn, nil
}

// OpenVendorAccessor binds to the device's low-level property-set object.
// Devices without vendor property support yield ErrPropertyNotSupported.
func OpenVendorAccessor(dev Device) (*VendorAccessor, error) {
	if !dev.IsValid() {
		return nil, newError(ErrInvalidArgument, "device has no name or path", nil)
	}
	acc, err := activePlatform.openVendorAccessor(dev)
	if err != nil {
		return nil, wrapSystem("open vendor accessor", err)
	}
	return acc, nil
}

// FindDeviceByID re-enumerates and returns the device whose stable ID
// matches, comparing case-insensitively.
func FindDeviceByID(id string) (Device, error) {
	devices, err := ListDevices()
	if err != nil {
		return Device{}, err
	}
	for _, d := range devices {
		if strings.EqualFold(d.ID(), id) {
			return d, nil
		}
	}
	return Device{}, newError(ErrDeviceNotFound, "no device with id "+id, nil)
}
