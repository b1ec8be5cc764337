//go:build windows

// Package com provides minimal COM runtime plumbing for DirectShow
// interop without cgo.
//
// COM interface pointers are represented as Go structs whose first field
// points at the interface vtable, so a *T is bit-compatible with the
// native interface pointer and methods dispatch through syscall.SyscallN.
//
// # Apartment Threads
//
// DirectShow objects must be created and used on the thread that entered
// their apartment. Thread pins an OS thread, initializes a single-threaded
// apartment on it, and runs submitted functions there:
//
//	t, err := com.NewThread()
//	if err != nil {
//	    return err
//	}
//	defer t.Close()
//	err = t.Do(func() error {
//	    // create and call COM objects here
//	    return nil
//	})
package com

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	COINIT_APARTMENTTHREADED = 0x2
	CLSCTX_INPROC_SERVER     = 0x1
)

var (
	modole32    = windows.NewLazySystemDLL("ole32.dll")
	modoleaut32 = windows.NewLazySystemDLL("oleaut32.dll")

	procCoInitializeEx   = modole32.NewProc("CoInitializeEx")
	procCoUninitialize   = modole32.NewProc("CoUninitialize")
	procCoCreateInstance = modole32.NewProc("CoCreateInstance")
	procCoTaskMemFree    = modole32.NewProc("CoTaskMemFree")

	procVariantInit  = modoleaut32.NewProc("VariantInit")
	procVariantClear = modoleaut32.NewProc("VariantClear")
	procSysStringLen = modoleaut32.NewProc("SysStringLen")
)

// Initialize enters a single-threaded apartment on the calling OS thread.
// Re-entering an apartment that already exists is not an error, including
// one initialized with a different threading model.
func Initialize() error {
	hr, _, _ := syscall.SyscallN(procCoInitializeEx.Addr(), 0, COINIT_APARTMENTTHREADED)
	if r := HRESULT(hr); r.Failed() && r != RPC_E_CHANGED_MODE {
		return fmt.Errorf("CoInitializeEx: %w", r)
	}
	return nil
}

// Uninitialize leaves the apartment entered by Initialize. Each successful
// Initialize needs a matching Uninitialize on the same thread.
func Uninitialize() {
	syscall.SyscallN(procCoUninitialize.Addr())
}

// CreateInstance creates an in-process COM object and stores the requested
// interface pointer in obj, which must point at a *T interface wrapper.
func CreateInstance(clsid, iid *windows.GUID, obj unsafe.Pointer) error {
	hr, _, _ := syscall.SyscallN(procCoCreateInstance.Addr(),
		uintptr(unsafe.Pointer(clsid)),
		0,
		CLSCTX_INPROC_SERVER,
		uintptr(unsafe.Pointer(iid)),
		uintptr(obj))
	if r := HRESULT(hr); r.Failed() {
		return fmt.Errorf("CoCreateInstance: %w", r)
	}
	return nil
}

// TaskMemFree releases memory the COM allocator handed out, such as the
// string returned by IMoniker::GetDisplayName.
func TaskMemFree(p unsafe.Pointer) {
	if p != nil {
		syscall.SyscallN(procCoTaskMemFree.Addr(), uintptr(p))
	}
}
