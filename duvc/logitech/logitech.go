// Package logitech reaches Logitech's vendor-specific camera properties
// through the generic vendor property accessor.
//
// Property payloads are raw bytes in whatever layout Logitech's drivers
// document for each property; the typed helpers cover the common
// fixed-size integer payloads.
package logitech

import (
	"github.com/allanhanan/duvc-ctl-sub002/duvc"
)

// PropertySet is the GUID of the Logitech vendor property set.
var PropertySet = duvc.GUID{
	Data1: 0x49E40325,
	Data2: 0xF9BA,
	Data3: 0x11D6,
	Data4: [8]byte{0x94, 0xB5, 0x00, 0xB0, 0xD0, 0xC1, 0x4C, 0x3B},
}

// Property identifies one Logitech vendor property.
type Property uint32

// Logitech vendor property IDs.
const (
	PropertyRightLight     Property = 1  // RightLight auto exposure
	PropertyRightSound     Property = 2  // RightSound audio processing
	PropertyFaceTracking   Property = 3  // face tracking enable/disable
	PropertyLedIndicator   Property = 4  // LED indicator control
	PropertyProcessorUsage Property = 5  // processor usage optimization
	PropertyRawDataBits    Property = 6  // raw data bit depth
	PropertyFocusAssist    Property = 7  // focus assist beam
	PropertyVideoStandard  Property = 8  // video standard selection
	PropertyDigitalZoomROI Property = 9  // digital zoom region of interest
	PropertyTiltPan        Property = 10 // combined tilt and pan control
)

var propertyNames = map[Property]string{
	PropertyRightLight:     "right_light",
	PropertyRightSound:     "right_sound",
	PropertyFaceTracking:   "face_tracking",
	PropertyLedIndicator:   "led_indicator",
	PropertyProcessorUsage: "processor_usage",
	PropertyRawDataBits:    "raw_data_bits",
	PropertyFocusAssist:    "focus_assist",
	PropertyVideoStandard:  "video_standard",
	PropertyDigitalZoomROI: "digital_zoom_roi",
	PropertyTiltPan:        "tilt_pan",
}

func (p Property) String() string {
	if name, ok := propertyNames[p]; ok {
		return name
	}
	return "unknown"
}

// Supports reports whether the device answers for the Logitech property
// set at all. Devices without vendor property support are a successful
// false, not an error.
func Supports(dev duvc.Device) (bool, error) {
	acc, err := duvc.OpenVendorAccessor(dev)
	if err != nil {
		if duvc.IsCode(err, duvc.ErrNotImplemented) {
			return false, err
		}
		return false, nil
	}
	defer acc.Close()

	if !acc.IsValid() {
		return false, nil
	}
	support, err := acc.QuerySupport(PropertySet, uint32(PropertyRightLight))
	if err != nil {
		return false, nil
	}
	return support.CanGet() || support.CanSet(), nil
}

// GetProperty reads a Logitech property's raw payload.
func GetProperty(dev duvc.Device, prop Property) ([]byte, error) {
	acc, err := open(dev)
	if err != nil {
		return nil, err
	}
	defer acc.Close()
	return acc.GetProperty(PropertySet, uint32(prop))
}

// SetProperty writes a Logitech property's raw payload.
func SetProperty(dev duvc.Device, prop Property, data []byte) error {
	acc, err := open(dev)
	if err != nil {
		return err
	}
	defer acc.Close()
	return acc.SetProperty(PropertySet, uint32(prop), data)
}

// GetPropertyTyped reads a Logitech property into a fixed-layout value
// type, typically int32 or uint32.
func GetPropertyTyped[T any](dev duvc.Device, prop Property) (T, error) {
	var zero T
	acc, err := open(dev)
	if err != nil {
		return zero, err
	}
	defer acc.Close()
	return duvc.GetPropertyTyped[T](acc, PropertySet, uint32(prop))
}

// SetPropertyTyped writes a fixed-layout value as a Logitech property
// payload.
func SetPropertyTyped[T any](dev duvc.Device, prop Property, value T) error {
	acc, err := open(dev)
	if err != nil {
		return err
	}
	defer acc.Close()
	return duvc.SetPropertyTyped(acc, PropertySet, uint32(prop), value)
}

func open(dev duvc.Device) (*duvc.VendorAccessor, error) {
	acc, err := duvc.OpenVendorAccessor(dev)
	if err != nil {
		return nil, err
	}
	if !acc.IsValid() {
		acc.Close()
		return nil, &duvc.Error{
			Code:    duvc.ErrPropertyNotSupported,
			Message: "device does not support vendor properties",
		}
	}
	return acc, nil
}
