//go:build windows

package dshow

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/allanhanan/duvc-ctl-sub002/pkg/winav/com"
)

// IKsPropertySet vtable
type IKsPropertySetVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
	Set            uintptr
	Get            uintptr
	QuerySupported uintptr
}

// IKsPropertySet is the kernel streaming property interface capture
// filters expose for vendor-specific extension units.
type IKsPropertySet struct {
	vtbl *IKsPropertySetVtbl
}

func (p *IKsPropertySet) Release() {
	if p != nil && p.vtbl != nil {
		syscall.SyscallN(p.vtbl.Release, uintptr(unsafe.Pointer(p)))
	}
}

// QuerySupported reports the KSPROPERTY_SUPPORT_GET/SET flags for one
// property of a property set.
func (p *IKsPropertySet) QuerySupported(set *windows.GUID, id uint32) (uint32, error) {
	var support uint32
	hr, _, _ := syscall.SyscallN(p.vtbl.QuerySupported,
		uintptr(unsafe.Pointer(p)),
		uintptr(unsafe.Pointer(set)),
		uintptr(id),
		uintptr(unsafe.Pointer(&support)))
	if r := com.HRESULT(hr); r.Failed() {
		return 0, fmt.Errorf("IKsPropertySet::QuerySupported: %w", r)
	}
	return support, nil
}

// Get reads a property payload into buf and returns the number of bytes
// the driver produced. A nil buf probes the required size without
// transferring data.
func (p *IKsPropertySet) Get(set *windows.GUID, id uint32, buf []byte) (uint32, error) {
	var data uintptr
	if len(buf) > 0 {
		data = uintptr(unsafe.Pointer(&buf[0]))
	}

	var returned uint32
	hr, _, _ := syscall.SyscallN(p.vtbl.Get,
		uintptr(unsafe.Pointer(p)),
		uintptr(unsafe.Pointer(set)),
		uintptr(id),
		0,
		0,
		data,
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&returned)))
	if r := com.HRESULT(hr); r.Failed() {
		return 0, fmt.Errorf("IKsPropertySet::Get: %w", r)
	}
	return returned, nil
}

// Set writes a property payload.
func (p *IKsPropertySet) Set(set *windows.GUID, id uint32, data []byte) error {
	var payload uintptr
	if len(data) > 0 {
		payload = uintptr(unsafe.Pointer(&data[0]))
	}

	hr, _, _ := syscall.SyscallN(p.vtbl.Set,
		uintptr(unsafe.Pointer(p)),
		uintptr(unsafe.Pointer(set)),
		uintptr(id),
		0,
		0,
		payload,
		uintptr(len(data)))
	if r := com.HRESULT(hr); r.Failed() {
		return fmt.Errorf("IKsPropertySet::Set: %w", r)
	}
	return nil
}
