//go:build windows

package com

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// VT_BSTR identifies a BSTR payload in a Variant.
const VT_BSTR = 8

// Variant mirrors the native VARIANT layout: a 16-bit type tag, three
// reserved words, then the value union. The union spans two pointer-sized
// words on both 386 and amd64, with a BSTR living in the first.
type Variant struct {
	VT  uint16
	_   [3]uint16
	Val [2]uintptr
}

// Init prepares the variant to receive a value.
func (v *Variant) Init() {
	syscall.SyscallN(procVariantInit.Addr(), uintptr(unsafe.Pointer(v)))
}

// Clear releases whatever the variant references, including BSTRs.
func (v *Variant) Clear() {
	syscall.SyscallN(procVariantClear.Addr(), uintptr(unsafe.Pointer(v)))
}

// BSTR returns the string payload, or "" when the variant holds none.
func (v *Variant) BSTR() string {
	if v.VT != VT_BSTR || v.Val[0] == 0 {
		return ""
	}
	n, _, _ := syscall.SyscallN(procSysStringLen.Addr(), v.Val[0])
	if n == 0 {
		return ""
	}
	p := (*uint16)(unsafe.Pointer(v.Val[0]))
	return windows.UTF16ToString(unsafe.Slice(p, n))
}
