//go:build windows

package duvc

import (
	"errors"

	"golang.org/x/sys/windows"

	"github.com/allanhanan/duvc-ctl-sub002/pkg/winav/com"
	"github.com/allanhanan/duvc-ctl-sub002/pkg/winav/dshow"
)

// dsPlatform implements the platform interface over DirectShow.
type dsPlatform struct{}

func newPlatform() platform {
	return dsPlatform{}
}

// withApartment runs fn inside a short-lived single-threaded apartment,
// for one-shot operations that hold no COM state afterwards.
func withApartment(fn func() error) error {
	t, err := com.NewThread()
	if err != nil {
		return err
	}
	defer t.Close()
	return t.Do(fn)
}

func (dsPlatform) listDevices() ([]Device, error) {
	var devices []Device
	err := withApartment(func() error {
		infos, err := dshow.Enumerate()
		if err != nil {
			return err
		}
		devices = make([]Device, 0, len(infos))
		for _, info := range infos {
			devices = append(devices, Device{Name: info.Name, Path: info.Path})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logInfof("enumerated %d video devices", len(devices))
	return devices, nil
}

func (p dsPlatform) isConnected(dev Device) (bool, error) {
	devices, err := p.listDevices()
	if err != nil {
		return false, err
	}
	for _, d := range devices {
		if dev.Equal(d) {
			return true, nil
		}
	}
	return false, nil
}

func (dsPlatform) openConnection(dev Device) (*Connection, error) {
	thread, err := com.NewThread()
	if err != nil {
		return nil, newError(ErrSystemError, "failed to start COM thread", err)
	}

	var (
		filter *dshow.IBaseFilter
		cam    *dshow.IAMCameraControl
		vid    *dshow.IAMVideoProcAmp
	)
	err = thread.Do(func() error {
		f, err := dshow.BindFilter(dev.Name, dev.Path)
		if err != nil {
			return err
		}
		if f == nil {
			return newError(ErrDeviceNotFound, "device not found: "+dev.ID(), nil)
		}
		filter = f

		// A missing control interface is not a bind failure; that
		// family's calls will report PropertyNotSupported.
		if c, err := f.CameraControl(); err == nil {
			cam = c
		}
		if v, err := f.VideoProcAmp(); err == nil {
			vid = v
		}
		return nil
	})
	if err != nil {
		thread.Close()
		return nil, classifyHR("bind device filter", err)
	}

	release := func() error {
		err := thread.Do(func() error {
			if cam != nil {
				cam.Release()
			}
			if vid != nil {
				vid.Release()
			}
			filter.Release()
			return nil
		})
		thread.Close()
		return err
	}

	conn := &Connection{
		device:  dev,
		release: release,
		valid:   true,
	}
	if cam != nil {
		conn.cam = &dsPropertyBackend{thread: thread, ctrl: cam}
	}
	if vid != nil {
		conn.vid = &dsPropertyBackend{thread: thread, ctrl: vid}
	}
	logDebugf("opened connection to %s (cam=%v vid=%v)", dev.Name, cam != nil, vid != nil)
	return conn, nil
}

func (dsPlatform) openVendorAccessor(dev Device) (*VendorAccessor, error) {
	thread, err := com.NewThread()
	if err != nil {
		return nil, newError(ErrSystemError, "failed to start COM thread", err)
	}

	var (
		filter *dshow.IBaseFilter
		props  *dshow.IKsPropertySet
	)
	err = thread.Do(func() error {
		f, err := dshow.BindFilter(dev.Name, dev.Path)
		if err != nil {
			return err
		}
		if f == nil {
			return newError(ErrDeviceNotFound, "device not found: "+dev.ID(), nil)
		}
		filter = f

		if p, err := f.PropertySet(); err == nil {
			props = p
		} else {
			logDebugf("device %s has no property set interface", dev.Name)
		}
		return nil
	})
	if err != nil {
		thread.Close()
		return nil, classifyHR("bind device filter", err)
	}

	release := func() error {
		err := thread.Do(func() error {
			if props != nil {
				props.Release()
			}
			filter.Release()
			return nil
		})
		thread.Close()
		return err
	}

	acc := &VendorAccessor{
		device:  dev,
		release: release,
		valid:   props != nil,
	}
	if props != nil {
		acc.backend = &ksBackend{thread: thread, props: props}
	}
	return acc, nil
}

// dsControl is what IAMCameraControl and IAMVideoProcAmp share; the two
// interfaces have identical method shapes.
type dsControl interface {
	Get(property int32) (value, flags int32, err error)
	Set(property, value, flags int32) error
	GetRange(property int32) (min, max, step, def, flags int32, err error)
}

// dsPropertyBackend marshals control calls onto the connection's COM
// thread.
type dsPropertyBackend struct {
	thread *com.Thread
	ctrl   dsControl
}

func (b *dsPropertyBackend) Get(id int32) (value, flags int32, err error) {
	err = b.thread.Do(func() error {
		var e error
		value, flags, e = b.ctrl.Get(id)
		return e
	})
	return
}

func (b *dsPropertyBackend) Set(id, value, flags int32) error {
	return b.thread.Do(func() error {
		return b.ctrl.Set(id, value, flags)
	})
}

func (b *dsPropertyBackend) GetRange(id int32) (min, max, step, def, flags int32, err error) {
	err = b.thread.Do(func() error {
		var e error
		min, max, step, def, flags, e = b.ctrl.GetRange(id)
		return e
	})
	return
}

// ksBackend marshals IKsPropertySet calls onto the accessor's COM thread.
type ksBackend struct {
	thread *com.Thread
	props  *dshow.IKsPropertySet
}

func nativeGUID(g GUID) windows.GUID {
	return windows.GUID{Data1: g.Data1, Data2: g.Data2, Data3: g.Data3, Data4: g.Data4}
}

func (b *ksBackend) QuerySupported(set GUID, id uint32) (support uint32, err error) {
	g := nativeGUID(set)
	err = b.thread.Do(func() error {
		var e error
		support, e = b.props.QuerySupported(&g, id)
		return e
	})
	return
}

func (b *ksBackend) GetSized(set GUID, id uint32, buf []byte) (n int, err error) {
	g := nativeGUID(set)
	err = b.thread.Do(func() error {
		ret, e := b.props.Get(&g, id, buf)
		n = int(ret)
		return e
	})
	return
}

func (b *ksBackend) Set(set GUID, id uint32, data []byte) error {
	g := nativeGUID(set)
	return b.thread.Do(func() error {
		return b.props.Set(&g, id, data)
	})
}

// classifyHR converts a DirectShow failure into the narrowest error code
// its HRESULT supports, defaulting to SystemError. Errors this package
// already classified pass through untouched.
func classifyHR(op string, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	var hr com.HRESULT
	if errors.As(err, &hr) {
		switch {
		case hr.IsBusyError():
			return newError(ErrDeviceBusy, op+": device in use", err)
		case hr.IsPermissionError():
			return newError(ErrPermissionDenied, op+": access denied", err)
		case hr == com.E_DEVICE_NOT_CONNECTED || hr == com.E_FILE_NOT_FOUND:
			return newError(ErrDeviceNotFound, op+": device not connected", err)
		}
	}
	return newError(ErrSystemError, op+" failed", err)
}
