// Package duvc controls USB Video Class cameras through the DirectShow
// property interfaces on Windows.
//
// # Overview
//
// Every camera exposes two fixed property families: camera-motion controls
// (pan, tilt, zoom, exposure, focus, ...) and image-processing controls
// (brightness, contrast, white balance, ...). Each property carries an
// integer value plus an Auto/Manual mode, and reports a range with min, max,
// step and default. Vendor-specific controls outside the two families are
// reachable through a raw property-set accessor addressed by a GUID and a
// numeric ID.
//
// # Usage
//
// List devices and read a property once:
//
//	devices, err := duvc.ListDevices()
//	setting, err := duvc.Get(devices[0], duvc.CamPropZoom)
//
// Hold a device open for repeated access:
//
//	cam, err := duvc.OpenCamera(devices[0])
//	defer cam.Close()
//	r, err := cam.GetRange(duvc.VidPropBrightness)
//	err = cam.Set(duvc.VidPropBrightness, duvc.PropSetting{Value: r.Clamp(128), Mode: duvc.CamModeManual})
//
// Watch for cameras arriving and leaving:
//
//	duvc.RegisterDeviceChangeCallback(func(added bool, path string) { ... })
//	defer duvc.UnregisterDeviceChangeCallback()
//
// # Platform support
//
// The DirectShow backend requires Windows. On other systems every entry
// point that would touch a device returns an error with code
// [ErrNotImplemented]; the pure data types, range helpers and parsers work
// everywhere.
//
// # Threading
//
// Connections are apartment-bound COM objects. Each open connection owns a
// dedicated OS thread that performs all native calls, so the exported
// methods may be called from any goroutine. Calls block until the driver
// answers; there is no cancellation below the OS call.
package duvc
