//go:build windows

package dshow

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/allanhanan/duvc-ctl-sub002/pkg/winav/com"
)

// IBaseFilter vtable. Only QueryInterface and Release are called; the
// IMediaFilter slots are laid out to keep the offsets honest.
type IBaseFilterVtbl struct {
	QueryInterface  uintptr
	AddRef          uintptr
	Release         uintptr
	GetClassID      uintptr
	Stop            uintptr
	Pause           uintptr
	Run             uintptr
	GetState        uintptr
	SetSyncSource   uintptr
	GetSyncSource   uintptr
	EnumPins        uintptr
	FindPin         uintptr
	QueryFilterInfo uintptr
	JoinFilterGraph uintptr
	QueryVendorInfo uintptr
}

type IBaseFilter struct {
	vtbl *IBaseFilterVtbl
}

func (f *IBaseFilter) Release() {
	if f != nil && f.vtbl != nil {
		syscall.SyscallN(f.vtbl.Release, uintptr(unsafe.Pointer(f)))
	}
}

func (f *IBaseFilter) queryInterface(iid *windows.GUID, obj unsafe.Pointer) error {
	hr, _, _ := syscall.SyscallN(f.vtbl.QueryInterface,
		uintptr(unsafe.Pointer(f)),
		uintptr(unsafe.Pointer(iid)),
		uintptr(obj))
	if r := com.HRESULT(hr); r.Failed() {
		return r
	}
	return nil
}

// CameraControl queries the filter for IAMCameraControl. Devices without
// camera controls return an error here, not from later calls.
func (f *IBaseFilter) CameraControl() (*IAMCameraControl, error) {
	var c *IAMCameraControl
	if err := f.queryInterface(&IID_IAMCameraControl, unsafe.Pointer(&c)); err != nil {
		return nil, err
	}
	return c, nil
}

// VideoProcAmp queries the filter for IAMVideoProcAmp.
func (f *IBaseFilter) VideoProcAmp() (*IAMVideoProcAmp, error) {
	var v *IAMVideoProcAmp
	if err := f.queryInterface(&IID_IAMVideoProcAmp, unsafe.Pointer(&v)); err != nil {
		return nil, err
	}
	return v, nil
}

// PropertySet queries the filter for IKsPropertySet, the vendor extension
// surface.
func (f *IBaseFilter) PropertySet() (*IKsPropertySet, error) {
	var p *IKsPropertySet
	if err := f.queryInterface(&IID_IKsPropertySet, unsafe.Pointer(&p)); err != nil {
		return nil, err
	}
	return p, nil
}

// IAMCameraControl vtable
type IAMCameraControlVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
	GetRange       uintptr
	Set            uintptr
	Get            uintptr
}

type IAMCameraControl struct {
	vtbl *IAMCameraControlVtbl
}

func (c *IAMCameraControl) Release() {
	if c != nil && c.vtbl != nil {
		syscall.SyscallN(c.vtbl.Release, uintptr(unsafe.Pointer(c)))
	}
}

// GetRange queries the range, step, default and capability flags for a
// CameraControl property.
func (c *IAMCameraControl) GetRange(property int32) (min, max, step, def, flags int32, err error) {
	hr, _, _ := syscall.SyscallN(c.vtbl.GetRange,
		uintptr(unsafe.Pointer(c)),
		uintptr(property),
		uintptr(unsafe.Pointer(&min)),
		uintptr(unsafe.Pointer(&max)),
		uintptr(unsafe.Pointer(&step)),
		uintptr(unsafe.Pointer(&def)),
		uintptr(unsafe.Pointer(&flags)))
	if r := com.HRESULT(hr); r.Failed() {
		return 0, 0, 0, 0, 0, fmt.Errorf("IAMCameraControl::GetRange: %w", r)
	}
	return
}

// Get reads the current value and mode flags of a CameraControl property.
func (c *IAMCameraControl) Get(property int32) (value, flags int32, err error) {
	hr, _, _ := syscall.SyscallN(c.vtbl.Get,
		uintptr(unsafe.Pointer(c)),
		uintptr(property),
		uintptr(unsafe.Pointer(&value)),
		uintptr(unsafe.Pointer(&flags)))
	if r := com.HRESULT(hr); r.Failed() {
		return 0, 0, fmt.Errorf("IAMCameraControl::Get: %w", r)
	}
	return
}

// Set writes a CameraControl property value with the given mode flags.
func (c *IAMCameraControl) Set(property, value, flags int32) error {
	hr, _, _ := syscall.SyscallN(c.vtbl.Set,
		uintptr(unsafe.Pointer(c)),
		uintptr(property),
		uintptr(value),
		uintptr(flags))
	if r := com.HRESULT(hr); r.Failed() {
		return fmt.Errorf("IAMCameraControl::Set: %w", r)
	}
	return nil
}

// IAMVideoProcAmp vtable
type IAMVideoProcAmpVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
	GetRange       uintptr
	Set            uintptr
	Get            uintptr
}

type IAMVideoProcAmp struct {
	vtbl *IAMVideoProcAmpVtbl
}

func (v *IAMVideoProcAmp) Release() {
	if v != nil && v.vtbl != nil {
		syscall.SyscallN(v.vtbl.Release, uintptr(unsafe.Pointer(v)))
	}
}

// GetRange queries the range, step, default and capability flags for a
// VideoProcAmp property.
func (v *IAMVideoProcAmp) GetRange(property int32) (min, max, step, def, flags int32, err error) {
	hr, _, _ := syscall.SyscallN(v.vtbl.GetRange,
		uintptr(unsafe.Pointer(v)),
		uintptr(property),
		uintptr(unsafe.Pointer(&min)),
		uintptr(unsafe.Pointer(&max)),
		uintptr(unsafe.Pointer(&step)),
		uintptr(unsafe.Pointer(&def)),
		uintptr(unsafe.Pointer(&flags)))
	if r := com.HRESULT(hr); r.Failed() {
		return 0, 0, 0, 0, 0, fmt.Errorf("IAMVideoProcAmp::GetRange: %w", r)
	}
	return
}

// Get reads the current value and mode flags of a VideoProcAmp property.
func (v *IAMVideoProcAmp) Get(property int32) (value, flags int32, err error) {
	hr, _, _ := syscall.SyscallN(v.vtbl.Get,
		uintptr(unsafe.Pointer(v)),
		uintptr(property),
		uintptr(unsafe.Pointer(&value)),
		uintptr(unsafe.Pointer(&flags)))
	if r := com.HRESULT(hr); r.Failed() {
		return 0, 0, fmt.Errorf("IAMVideoProcAmp::Get: %w", r)
	}
	return
}

// Set writes a VideoProcAmp property value with the given mode flags.
func (v *IAMVideoProcAmp) Set(property, value, flags int32) error {
	hr, _, _ := syscall.SyscallN(v.vtbl.Set,
		uintptr(unsafe.Pointer(v)),
		uintptr(property),
		uintptr(value),
		uintptr(flags))
	if r := com.HRESULT(hr); r.Failed() {
		return fmt.Errorf("IAMVideoProcAmp::Set: %w", r)
	}
	return nil
}
