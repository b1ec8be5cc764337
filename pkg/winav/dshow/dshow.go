//go:build windows

// Package dshow provides the DirectShow surface needed to enumerate video
// capture devices and drive their UVC control interfaces.
//
// This package does not use cgo. Interfaces are called through hand-laid
// vtables (see package com), which keeps cross-compilation from non-Windows
// hosts working.
//
// # Device Enumeration
//
// Use Enumerate to discover video input devices:
//
//	devices, err := dshow.Enumerate()
//	for _, dev := range devices {
//	    fmt.Printf("%s: %s\n", dev.Name, dev.Path)
//	}
//
// # Property Control
//
// Bind a filter and query its control interfaces:
//
//	filter, err := dshow.BindFilter(name, path)
//	defer filter.Release()
//	cam, err := filter.CameraControl()
//	defer cam.Release()
//	value, flags, err := cam.Get(dshow.CameraControl_Zoom)
//
// All calls must happen on the apartment thread that created the objects.
package dshow

import (
	"golang.org/x/sys/windows"
)

// Class and interface identifiers for the system device enumerator and
// the capture control interfaces.
var (
	CLSID_SystemDeviceEnum         = windows.GUID{Data1: 0x62BE5D10, Data2: 0x60EB, Data3: 0x11D0, Data4: [8]byte{0xBD, 0x3B, 0x00, 0xA0, 0xC9, 0x11, 0xCE, 0x86}}
	CLSID_VideoInputDeviceCategory = windows.GUID{Data1: 0x860BB310, Data2: 0x5D01, Data3: 0x11D0, Data4: [8]byte{0xBD, 0x3B, 0x00, 0xA0, 0xC9, 0x11, 0xCE, 0x86}}

	IID_ICreateDevEnum   = windows.GUID{Data1: 0x29840822, Data2: 0x5B84, Data3: 0x11D0, Data4: [8]byte{0xBD, 0x3B, 0x00, 0xA0, 0xC9, 0x11, 0xCE, 0x86}}
	IID_IPropertyBag     = windows.GUID{Data1: 0x55272A00, Data2: 0x42CB, Data3: 0x11CE, Data4: [8]byte{0x81, 0x35, 0x00, 0xAA, 0x00, 0x4B, 0xB8, 0x51}}
	IID_IBaseFilter      = windows.GUID{Data1: 0x56A86895, Data2: 0x0AD4, Data3: 0x11CE, Data4: [8]byte{0xB0, 0x3A, 0x00, 0x20, 0xAF, 0x0B, 0xA7, 0x70}}
	IID_IAMCameraControl = windows.GUID{Data1: 0xC6E13370, Data2: 0x30AC, Data3: 0x11D0, Data4: [8]byte{0xA1, 0x8C, 0x00, 0xA0, 0xC9, 0x11, 0x89, 0x56}}
	IID_IAMVideoProcAmp  = windows.GUID{Data1: 0xC6E13360, Data2: 0x30AC, Data3: 0x11D0, Data4: [8]byte{0xA1, 0x8C, 0x00, 0xA0, 0xC9, 0x11, 0x89, 0x56}}
	IID_IKsPropertySet   = windows.GUID{Data1: 0x31EFAC30, Data2: 0x515C, Data3: 0x11D0, Data4: [8]byte{0xA9, 0xAA, 0x00, 0xAA, 0x00, 0x61, 0xBE, 0x93}}
	IID_IUnknown         = windows.GUID{Data1: 0x00000000, Data2: 0x0000, Data3: 0x0000, Data4: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}}
)

// CameraControl property identifiers.
const (
	CameraControl_Pan                   = 0
	CameraControl_Tilt                  = 1
	CameraControl_Roll                  = 2
	CameraControl_Zoom                  = 3
	CameraControl_Exposure              = 4
	CameraControl_Iris                  = 5
	CameraControl_Focus                 = 6
	CameraControl_ScanMode              = 7
	CameraControl_Privacy               = 8
	CameraControl_PanRelative           = 9
	CameraControl_TiltRelative          = 10
	CameraControl_RollRelative          = 11
	CameraControl_ZoomRelative          = 12
	CameraControl_ExposureRelative      = 13
	CameraControl_IrisRelative          = 14
	CameraControl_FocusRelative         = 15
	CameraControl_PanTilt               = 16
	CameraControl_PanTiltRelative       = 17
	CameraControl_FocusSimple           = 18
	CameraControl_DigitalZoom           = 19
	CameraControl_DigitalZoomRelative   = 20
	CameraControl_BacklightCompensation = 21
	CameraControl_Lamp                  = 22
)

// VideoProcAmp property identifiers.
const (
	VideoProcAmp_Brightness            = 0
	VideoProcAmp_Contrast              = 1
	VideoProcAmp_Hue                   = 2
	VideoProcAmp_Saturation            = 3
	VideoProcAmp_Sharpness             = 4
	VideoProcAmp_Gamma                 = 5
	VideoProcAmp_ColorEnable           = 6
	VideoProcAmp_WhiteBalance          = 7
	VideoProcAmp_BacklightCompensation = 8
	VideoProcAmp_Gain                  = 9
)

// Mode flags shared by both control interfaces.
const (
	CameraControl_Flags_Auto   = 0x0001
	CameraControl_Flags_Manual = 0x0002
)

// KSPROPERTY support flags reported by IKsPropertySet::QuerySupported.
const (
	KSPROPERTY_SUPPORT_GET = 1
	KSPROPERTY_SUPPORT_SET = 2
)

// DeviceInfo describes one video capture device from the system
// enumerator. Path is preferred for identity; Name is the human-readable
// label and may collide across identical cameras.
type DeviceInfo struct {
	Name string // friendly name from the property bag
	Path string // device path, or the moniker display name as fallback
}
