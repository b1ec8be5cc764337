package duvc

import (
	"fmt"
	"sync"
)

// Camera is a long-lived handle to one device. The connection underneath is
// opened on first use and reused until Close, so repeated property access
// avoids re-binding the device every call. Methods may be called from any
// goroutine; the lazily opened connection is guarded here.
type Camera struct {
	device Device

	mu   sync.Mutex
	conn *Connection
}

// OpenCamera validates that the device is currently present and returns a
// handle for it. The connection itself is not opened until the first
// property call.
func OpenCamera(dev Device) (*Camera, error) {
	if !dev.IsValid() {
		return nil, newError(ErrInvalidArgument, "device has no name or path", nil)
	}
	connected, err := IsDeviceConnected(dev)
	if err != nil {
		return nil, err
	}
	if !connected {
		return nil, newError(ErrDeviceNotFound, "device not connected: "+dev.Name, nil)
	}
	return &Camera{device: dev}, nil
}

// OpenCameraByIndex opens the n-th device of the current enumeration. The
// index is only stable until the next hot-plug event.
func OpenCameraByIndex(index int) (*Camera, error) {
	devices, err := ListDevices()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(devices) {
		return nil, newError(ErrDeviceNotFound,
			fmt.Sprintf("device index %d out of range (%d devices)", index, len(devices)), nil)
	}
	return &Camera{device: devices[index]}, nil
}

// Device returns the device this camera is bound to.
func (c *Camera) Device() Device {
	return c.device
}

// IsValid reports whether the camera can still do property calls.
func (c *Camera) IsValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn == nil || c.conn.IsValid()
}

// Close releases the connection if one was opened.
func (c *Camera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

func (c *Camera) connection() (*Connection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil && c.conn.IsValid() {
		return c.conn, nil
	}
	conn, err := OpenConnection(c.device)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	return conn, nil
}

// Get reads the current value and mode of a property.
func (c *Camera) Get(prop Property) (PropSetting, error) {
	conn, err := c.connection()
	if err != nil {
		return PropSetting{}, err
	}
	return conn.Get(prop)
}

// Set writes a property value and mode.
func (c *Camera) Set(prop Property, setting PropSetting) error {
	conn, err := c.connection()
	if err != nil {
		return err
	}
	return conn.Set(prop, setting)
}

// GetRange reads the accepted range and default of a property.
func (c *Camera) GetRange(prop Property) (PropRange, error) {
	conn, err := c.connection()
	if err != nil {
		return PropRange{}, err
	}
	return conn.GetRange(prop)
}
