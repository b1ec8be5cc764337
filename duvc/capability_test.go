package duvc

import "testing"

func TestGetDeviceCapabilities(t *testing.T) {
	camBackend := &fakeControl{
		values: map[int32][2]int32{
			0: {10, flagManual}, // Pan
			3: {2, flagAuto},    // Zoom
		},
		ranges: map[int32][5]int32{
			0:  {-180, 180, 1, 0, flagManual},   // Pan
			3:  {1, 5, 1, 1, flagAuto},          // Zoom
			19: {100, 400, 10, 100, flagManual}, // DigitalZoom, current read fails
		},
	}
	vidBackend := &fakeControl{
		values: map[int32][2]int32{0: {128, flagAuto}},
		ranges: map[int32][5]int32{0: {0, 255, 1, 128, flagAuto}},
	}
	fake := &fakePlatform{devices: testDevices(), cam: camBackend, vid: vidBackend}
	withFakePlatform(t, fake)

	caps, err := GetDeviceCapabilities(fake.devices[0])
	if err != nil {
		t.Fatalf("GetDeviceCapabilities error: %v", err)
	}
	if !caps.Device().Equal(fake.devices[0]) {
		t.Errorf("Device: expected %q, got %q", fake.devices[0].Name, caps.Device().Name)
	}
	if fake.released != fake.opened {
		t.Errorf("probe connection leaked: opened %d, released %d", fake.opened, fake.released)
	}

	pan, ok := caps.Camera(CamPropPan)
	if !ok || !pan.Supported {
		t.Fatalf("expected Pan supported, got %+v", pan)
	}
	if pan.Range.Min != -180 || pan.Range.Max != 180 {
		t.Errorf("Pan range: expected -180..180, got %d..%d", pan.Range.Min, pan.Range.Max)
	}
	if pan.Current.Value != 10 || pan.Current.Mode != CamModeManual {
		t.Errorf("Pan current: expected 10/manual, got %+v", pan.Current)
	}

	// Range succeeded but the current read failed; still supported.
	dz, _ := caps.Camera(CamPropDigitalZoom)
	if !dz.Supported {
		t.Error("expected DigitalZoom supported")
	}
	if dz.Current != (PropSetting{}) {
		t.Errorf("DigitalZoom current: expected zero, got %+v", dz.Current)
	}

	if focus, _ := caps.Camera(CamPropFocus); focus.Supported {
		t.Error("expected Focus unsupported")
	}

	supported := caps.SupportedCamProps()
	want := []CamProp{CamPropPan, CamPropZoom, CamPropDigitalZoom}
	if len(supported) != len(want) {
		t.Fatalf("SupportedCamProps: expected %v, got %v", want, supported)
	}
	for i, prop := range want {
		if supported[i] != prop {
			t.Errorf("SupportedCamProps[%d]: expected %v, got %v", i, prop, supported[i])
		}
	}

	vid := caps.SupportedVidProps()
	if len(vid) != 1 || vid[0] != VidPropBrightness {
		t.Errorf("SupportedVidProps: expected [Brightness], got %v", vid)
	}
}

func TestGetDeviceCapabilitiesMissingFamily(t *testing.T) {
	camBackend := &fakeControl{
		ranges: map[int32][5]int32{0: {-180, 180, 1, 0, flagManual}},
	}
	fake := &fakePlatform{devices: testDevices(), cam: camBackend}
	withFakePlatform(t, fake)

	caps, err := GetDeviceCapabilities(fake.devices[0])
	if err != nil {
		t.Fatalf("GetDeviceCapabilities error: %v", err)
	}
	if got := caps.SupportedVidProps(); len(got) != 0 {
		t.Errorf("SupportedVidProps without backend: expected none, got %v", got)
	}
	if got := caps.SupportedCamProps(); len(got) != 1 {
		t.Errorf("SupportedCamProps: expected 1, got %v", got)
	}
}

func TestGetDeviceCapabilitiesDeviceGone(t *testing.T) {
	withFakePlatform(t, &fakePlatform{})

	_, err := GetDeviceCapabilities(Device{Name: "Unplugged"})
	if !IsCode(err, ErrDeviceNotFound) {
		t.Errorf("expected DEVICE_NOT_FOUND, got %v", err)
	}
}

func TestCapabilitiesRefresh(t *testing.T) {
	camBackend := &fakeControl{
		ranges: map[int32][5]int32{
			0: {-180, 180, 1, 0, flagManual},
			3: {1, 5, 1, 1, flagAuto},
		},
	}
	fake := &fakePlatform{devices: testDevices(), cam: camBackend}
	withFakePlatform(t, fake)

	caps, err := GetDeviceCapabilities(fake.devices[0])
	if err != nil {
		t.Fatalf("GetDeviceCapabilities error: %v", err)
	}
	if got := caps.SupportedCamProps(); len(got) != 2 {
		t.Fatalf("initial scan: expected 2 supported, got %v", got)
	}

	delete(camBackend.ranges, 3)
	if err := caps.Refresh(); err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	got := caps.SupportedCamProps()
	if len(got) != 1 || got[0] != CamPropPan {
		t.Errorf("after refresh: expected [Pan], got %v", got)
	}
	if fake.opened != 2 || fake.released != 2 {
		t.Errorf("expected one transient connection per scan, got opened %d released %d", fake.opened, fake.released)
	}
}

func TestPropertyCapabilitySupportsAuto(t *testing.T) {
	tests := []struct {
		name     string
		cap      PropertyCapability
		expected bool
	}{
		{
			name:     "supported with auto default",
			cap:      PropertyCapability{Supported: true, Range: PropRange{DefaultMode: CamModeAuto}},
			expected: true,
		},
		{
			name:     "supported with manual default",
			cap:      PropertyCapability{Supported: true, Range: PropRange{DefaultMode: CamModeManual}},
			expected: false,
		},
		{
			name:     "unsupported",
			cap:      PropertyCapability{Range: PropRange{DefaultMode: CamModeAuto}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cap.SupportsAuto(); got != tt.expected {
				t.Errorf("SupportsAuto: expected %v, got %v", tt.expected, got)
			}
		})
	}
}
