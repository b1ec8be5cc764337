package duvc

import (
	"errors"
	"fmt"
)

// propertyBackend is one bound native control interface. The Windows
// implementations marshal every call onto the connection's COM thread.
type propertyBackend interface {
	Get(id int32) (value, flags int32, err error)
	Set(id int32, value, flags int32) error
	GetRange(id int32) (min, max, step, def, flags int32, err error)
}

// Connection is a live binding to one device's control object. It holds one
// backend per property family; either may be absent when the device does not
// expose that family. A Connection is not safe for concurrent use; callers
// that share one across goroutines must serialize access themselves.
type Connection struct {
	device  Device
	cam     propertyBackend
	vid     propertyBackend
	release func() error
	valid   bool
	closed  bool
}

// Device returns the device this connection is bound to.
func (c *Connection) Device() Device {
	return c.device
}

// IsValid reports whether the underlying filter bound successfully and the
// connection has not been closed. A valid connection with a missing family
// backend simply fails that family's calls with ErrPropertyNotSupported.
func (c *Connection) IsValid() bool {
	return c.valid && !c.closed
}

// SupportsCam reports whether the camera-motion control interface bound.
func (c *Connection) SupportsCam() bool {
	return c.cam != nil
}

// SupportsVid reports whether the image-processing control interface bound.
func (c *Connection) SupportsVid() bool {
	return c.vid != nil
}

// Close releases the native interfaces and the connection's COM thread.
// Closing twice is harmless.
func (c *Connection) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.cam = nil
	c.vid = nil
	if c.release != nil {
		return c.release()
	}
	return nil
}

// Get reads the current value and mode of a property.
func (c *Connection) Get(prop Property) (PropSetting, error) {
	backend, id, err := c.resolve(prop)
	if err != nil {
		return PropSetting{}, err
	}
	value, flags, err := backend.Get(id)
	if err != nil {
		return PropSetting{}, wrapSystem(fmt.Sprintf("get %s", prop), err)
	}
	return PropSetting{Value: value, Mode: flagsToMode(flags)}, nil
}

// Set writes a property value and mode.
func (c *Connection) Set(prop Property, setting PropSetting) error {
	backend, id, err := c.resolve(prop)
	if err != nil {
		return err
	}
	if err := backend.Set(id, setting.Value, modeToFlags(setting.Mode)); err != nil {
		return wrapSystem(fmt.Sprintf("set %s", prop), err)
	}
	return nil
}

// GetRange reads the accepted range and default of a property.
func (c *Connection) GetRange(prop Property) (PropRange, error) {
	backend, id, err := c.resolve(prop)
	if err != nil {
		return PropRange{}, err
	}
	min, max, step, def, flags, err := backend.GetRange(id)
	if err != nil {
		return PropRange{}, wrapSystem(fmt.Sprintf("get range %s", prop), err)
	}
	return PropRange{
		Min:         min,
		Max:         max,
		Step:        step,
		Default:     def,
		DefaultMode: flagsToMode(flags),
	}, nil
}

// resolve maps a property to its backend and native ID. An unmapped property
// and an unbound family backend produce the same ErrPropertyNotSupported:
// both mean "skip this property" to every caller.
func (c *Connection) resolve(prop Property) (propertyBackend, int32, error) {
	if prop == nil {
		return nil, 0, newError(ErrInvalidArgument, "nil property", nil)
	}
	if c.closed {
		return nil, 0, newError(ErrInvalidArgument, "connection is closed", nil)
	}
	id := prop.nativeID()
	if id == unsupportedNativeID {
		return nil, 0, notSupported(prop, c.device)
	}
	var backend propertyBackend
	switch prop.family() {
	case familyCam:
		backend = c.cam
	default:
		backend = c.vid
	}
	if backend == nil {
		return nil, 0, notSupported(prop, c.device)
	}
	return backend, id, nil
}

func notSupported(prop Property, dev Device) error {
	return newError(ErrPropertyNotSupported,
		fmt.Sprintf("property %s not supported by %s", prop, dev.Name), nil)
}

// wrapSystem turns a raw backend failure into a SystemError while leaving
// already-classified errors untouched.
func wrapSystem(op string, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return newError(ErrSystemError, op+" failed", err)
}
