package api

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"

	"github.com/allanhanan/duvc-ctl-sub002/duvc"
)

// fakeCameraService is a test implementation of cameras.Service backed by
// maps. Property state is keyed by device path and property name.
type fakeCameraService struct {
	devices  []duvc.Device
	settings map[string]duvc.PropSetting
	ranges   map[string]duvc.PropRange
	vendor   map[string][]byte
	support  map[string]duvc.VendorSupport
}

func newFakeCameraService(devices ...duvc.Device) *fakeCameraService {
	return &fakeCameraService{
		devices:  devices,
		settings: make(map[string]duvc.PropSetting),
		ranges:   make(map[string]duvc.PropRange),
		vendor:   make(map[string][]byte),
		support:  make(map[string]duvc.VendorSupport),
	}
}

func propKey(dev duvc.Device, prop duvc.Property) string {
	return dev.Path + "/" + prop.String()
}

func vendorKey(dev duvc.Device, set duvc.GUID, id uint32) string {
	return dev.Path + "/" + set.String() + "/" + strconv.FormatUint(uint64(id), 10)
}

func (f *fakeCameraService) List(_ context.Context) ([]duvc.Device, error) {
	return f.devices, nil
}

func (f *fakeCameraService) Find(_ context.Context, id string) (duvc.Device, error) {
	for _, d := range f.devices {
		if strings.EqualFold(d.ID(), id) {
			return d, nil
		}
	}
	return duvc.Device{}, &duvc.Error{Code: duvc.ErrDeviceNotFound, Message: "no device with id " + id}
}

func (f *fakeCameraService) IsConnected(_ context.Context, _ duvc.Device) (bool, error) {
	return true, nil
}

func (f *fakeCameraService) GetProperty(_ context.Context, dev duvc.Device, prop duvc.Property) (duvc.PropSetting, error) {
	setting, ok := f.settings[propKey(dev, prop)]
	if !ok {
		return duvc.PropSetting{}, &duvc.Error{Code: duvc.ErrPropertyNotSupported, Message: prop.String() + " not supported"}
	}
	return setting, nil
}

func (f *fakeCameraService) GetPropertyRange(_ context.Context, dev duvc.Device, prop duvc.Property) (duvc.PropRange, error) {
	r, ok := f.ranges[propKey(dev, prop)]
	if !ok {
		return duvc.PropRange{}, &duvc.Error{Code: duvc.ErrPropertyNotSupported, Message: prop.String() + " not supported"}
	}
	return r, nil
}

func (f *fakeCameraService) SetProperty(_ context.Context, dev duvc.Device, prop duvc.Property, setting duvc.PropSetting) error {
	if r, ok := f.ranges[propKey(dev, prop)]; ok && !r.IsValid(setting.Value) {
		return &duvc.Error{Code: duvc.ErrInvalidValue, Message: "value out of range"}
	}
	f.settings[propKey(dev, prop)] = setting
	return nil
}

func (f *fakeCameraService) Capabilities(_ context.Context, _ duvc.Device) (*duvc.DeviceCapabilities, error) {
	return nil, &duvc.Error{Code: duvc.ErrNotImplemented, Message: "no backend on this platform"}
}

func (f *fakeCameraService) VendorQuery(_ context.Context, dev duvc.Device, set duvc.GUID, id uint32) (duvc.VendorSupport, error) {
	return f.support[vendorKey(dev, set, id)], nil
}

func (f *fakeCameraService) VendorGet(_ context.Context, dev duvc.Device, set duvc.GUID, id uint32) ([]byte, error) {
	data, ok := f.vendor[vendorKey(dev, set, id)]
	if !ok {
		return nil, &duvc.Error{Code: duvc.ErrPropertyNotSupported, Message: "vendor property not supported"}
	}
	return data, nil
}

func (f *fakeCameraService) VendorSet(_ context.Context, dev duvc.Device, set duvc.GUID, id uint32, data []byte) error {
	f.vendor[vendorKey(dev, set, id)] = data
	return nil
}

func TestMapCoreError(t *testing.T) {
	tests := []struct {
		code       duvc.ErrorCode
		wantStatus int
	}{
		{duvc.ErrDeviceNotFound, 404},
		{duvc.ErrPropertyNotSupported, 404},
		{duvc.ErrInvalidValue, 422},
		{duvc.ErrInvalidArgument, 400},
		{duvc.ErrDeviceBusy, 409},
		{duvc.ErrPermissionDenied, 403},
		{duvc.ErrNotImplemented, 501},
		{duvc.ErrSystemError, 500},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := mapCoreError(&duvc.Error{Code: tt.code, Message: "test failure"})

			var se huma.StatusError
			if !errors.As(err, &se) {
				t.Fatalf("mapCoreError returned %T, want a status error", err)
			}
			if se.GetStatus() != tt.wantStatus {
				t.Errorf("status = %d, want %d", se.GetStatus(), tt.wantStatus)
			}
		})
	}
}

func TestMapCoreError_PlainError(t *testing.T) {
	err := mapCoreError(errors.New("something broke"))

	var se huma.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("mapCoreError returned %T, want a status error", err)
	}
	if se.GetStatus() != 500 {
		t.Errorf("status = %d, want 500", se.GetStatus())
	}
}

func TestParseProperty(t *testing.T) {
	tests := []struct {
		domain   string
		name     string
		want     string
		wantFail bool
	}{
		{"cam", "Zoom", "Zoom", false},
		{"cam", "zoom", "Zoom", false},
		{"cam", "PANTILT", "PanTilt", false},
		{"vid", "brightness", "Brightness", false},
		{"vid", "whitebalance", "WhiteBalance", false},
		{"cam", "Brightness", "", true},
		{"vid", "Zoom", "", true},
		{"cam", "Warp", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.domain+"/"+tt.name, func(t *testing.T) {
			prop, err := parseProperty(tt.domain, tt.name)
			if tt.wantFail {
				if err == nil {
					t.Fatalf("parseProperty(%q, %q) succeeded, want error", tt.domain, tt.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseProperty(%q, %q) failed: %v", tt.domain, tt.name, err)
			}
			if prop.String() != tt.want {
				t.Errorf("property = %q, want %q", prop.String(), tt.want)
			}
		})
	}
}

func TestDeviceToSummary(t *testing.T) {
	dev := duvc.Device{
		Name: "HD Pro Webcam C920",
		Path: `\\?\usb#vid_046d&pid_082d`,
	}

	summary := deviceToSummary(dev, true)

	if summary.DeviceName != dev.Name {
		t.Errorf("DeviceName = %q, want %q", summary.DeviceName, dev.Name)
	}
	if summary.DevicePath != dev.Path {
		t.Errorf("DevicePath = %q, want %q", summary.DevicePath, dev.Path)
	}
	if !summary.Connected {
		t.Error("Connected = false, want true")
	}

	// The token must round-trip back to the raw ID
	decoded, err := duvc.DecodeDeviceID(summary.DeviceID)
	if err != nil {
		t.Fatalf("DecodeDeviceID failed: %v", err)
	}
	if decoded != dev.ID() {
		t.Errorf("decoded ID = %q, want %q", decoded, dev.ID())
	}
}

func TestCapabilityEntries(t *testing.T) {
	supported := map[duvc.CamProp]duvc.PropertyCapability{
		duvc.CamPropZoom: {
			Supported: true,
			Range:     duvc.PropRange{Min: 100, Max: 400, Step: 10, Default: 100, DefaultMode: duvc.CamModeManual},
			Current:   duvc.PropSetting{Value: 150, Mode: duvc.CamModeManual},
		},
	}
	lookup := func(p duvc.CamProp) (duvc.PropertyCapability, bool) {
		cap, ok := supported[p]
		return cap, ok
	}

	entries := capabilityEntries(duvc.CamProps(), lookup)

	if len(entries) != len(duvc.CamProps()) {
		t.Fatalf("got %d entries, want %d", len(entries), len(duvc.CamProps()))
	}

	var zoom, pan *int
	for i, entry := range entries {
		switch entry.Property {
		case "Zoom":
			v := i
			zoom = &v
		case "Pan":
			v := i
			pan = &v
		}
	}
	if zoom == nil || pan == nil {
		t.Fatal("expected entries for Zoom and Pan")
	}

	if !entries[*zoom].Supported {
		t.Error("Zoom should be supported")
	}
	if entries[*zoom].Range == nil || entries[*zoom].Range.Max != 400 {
		t.Errorf("Zoom range = %+v, want Max 400", entries[*zoom].Range)
	}
	if entries[*zoom].Current == nil || entries[*zoom].Current.Value != 150 {
		t.Errorf("Zoom current = %+v, want Value 150", entries[*zoom].Current)
	}

	if entries[*pan].Supported {
		t.Error("Pan should be unsupported")
	}
	if entries[*pan].Range != nil || entries[*pan].Current != nil {
		t.Error("unsupported entries should carry no range or current value")
	}
}
