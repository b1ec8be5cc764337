package duvc

import (
	"fmt"
	"unsafe"
)

// VendorSupport is the support bitmask returned by QuerySupport.
type VendorSupport uint32

// Support direction bits.
const (
	VendorSupportGet VendorSupport = 0x1
	VendorSupportSet VendorSupport = 0x2
)

// CanGet reports whether the property can be read.
func (s VendorSupport) CanGet() bool { return s&VendorSupportGet != 0 }

// CanSet reports whether the property can be written.
func (s VendorSupport) CanSet() bool { return s&VendorSupportSet != 0 }

// vendorBackend is the low-level property-set interface. GetSized with a nil
// buffer probes the required payload size; with a buffer it fills it and
// returns the byte count actually produced.
type vendorBackend interface {
	QuerySupported(set GUID, id uint32) (uint32, error)
	GetSized(set GUID, id uint32, buf []byte) (int, error)
	Set(set GUID, id uint32, data []byte) error
}

// VendorAccessor reaches vendor-proprietary properties addressed by a
// property-set GUID and a numeric ID. The accessor attaches no meaning to
// any ID; payload layout is whatever the vendor documents. Like Connection,
// it is bound to one device and not safe for concurrent use.
type VendorAccessor struct {
	device  Device
	backend vendorBackend
	release func() error
	valid   bool
	closed  bool
}

// Device returns the device this accessor is bound to.
func (a *VendorAccessor) Device() Device {
	return a.device
}

// IsValid reports whether the property-set interface bound successfully.
func (a *VendorAccessor) IsValid() bool {
	return a.valid && !a.closed
}

// Close releases the native interface and the accessor's COM thread.
func (a *VendorAccessor) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.backend = nil
	if a.release != nil {
		return a.release()
	}
	return nil
}

func (a *VendorAccessor) ready() error {
	if a.closed || a.backend == nil {
		return newError(ErrSystemError, "property set interface not available", nil)
	}
	return nil
}

// QuerySupport asks which directions the device supports for a property.
func (a *VendorAccessor) QuerySupport(set GUID, id uint32) (VendorSupport, error) {
	if err := a.ready(); err != nil {
		return 0, err
	}
	flags, err := a.backend.QuerySupported(set, id)
	if err != nil {
		return 0, newError(ErrPropertyNotSupported,
			fmt.Sprintf("vendor property %s/%d not supported", set, id), err)
	}
	return VendorSupport(flags), nil
}

// GetProperty reads a vendor property's raw payload. The size is negotiated
// with the device first; callers always receive exactly the bytes the device
// produced.
func (a *VendorAccessor) GetProperty(set GUID, id uint32) ([]byte, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	size, err := a.backend.GetSized(set, id, nil)
	if err != nil || size == 0 {
		return nil, newError(ErrPropertyNotSupported,
			fmt.Sprintf("vendor property %s/%d size query failed", set, id), err)
	}
	buf := make([]byte, size)
	n, err := a.backend.GetSized(set, id, buf)
	if err != nil {
		return nil, newError(ErrSystemError,
			fmt.Sprintf("vendor property %s/%d read failed", set, id), err)
	}
	if n < len(buf) {
		buf = buf[:n]
	}
	return buf, nil
}

// SetProperty writes a vendor property's raw payload in one call.
func (a *VendorAccessor) SetProperty(set GUID, id uint32, data []byte) error {
	if err := a.ready(); err != nil {
		return err
	}
	if err := a.backend.Set(set, id, data); err != nil {
		return newError(ErrSystemError,
			fmt.Sprintf("vendor property %s/%d write failed", set, id), err)
	}
	return nil
}

// GetPropertyTyped reads a vendor property into a fixed-layout value type.
// The payload length must match the size of T exactly; anything else is
// ErrInvalidValue. T must be a plain value type whose in-memory layout
// matches the vendor's documented binary layout.
func GetPropertyTyped[T any](a *VendorAccessor, set GUID, id uint32) (T, error) {
	var zero T
	data, err := a.GetProperty(set, id)
	if err != nil {
		return zero, err
	}
	want := int(unsafe.Sizeof(zero))
	if len(data) != want {
		return zero, newError(ErrInvalidValue,
			fmt.Sprintf("vendor property size mismatch: expected %d bytes, got %d", want, len(data)), nil)
	}
	value := *(*T)(unsafe.Pointer(unsafe.SliceData(data)))
	return value, nil
}

// SetPropertyTyped writes a fixed-layout value as a vendor property payload.
func SetPropertyTyped[T any](a *VendorAccessor, set GUID, id uint32, value T) error {
	size := int(unsafe.Sizeof(value))
	data := unsafe.Slice((*byte)(unsafe.Pointer(&value)), size)
	buf := make([]byte, size)
	copy(buf, data)
	return a.SetProperty(set, id, buf)
}
