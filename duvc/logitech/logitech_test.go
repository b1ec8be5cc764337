package logitech

import "testing"

func TestPropertySetGUID(t *testing.T) {
	const want = "49e40325-f9ba-11d6-94b5-00b0d0c14c3b"
	if got := PropertySet.String(); got != want {
		t.Errorf("PropertySet: expected %q, got %q", want, got)
	}
}

func TestPropertyString(t *testing.T) {
	tests := []struct {
		prop     Property
		expected string
	}{
		{PropertyRightLight, "right_light"},
		{PropertyRightSound, "right_sound"},
		{PropertyFaceTracking, "face_tracking"},
		{PropertyLedIndicator, "led_indicator"},
		{PropertyProcessorUsage, "processor_usage"},
		{PropertyRawDataBits, "raw_data_bits"},
		{PropertyFocusAssist, "focus_assist"},
		{PropertyVideoStandard, "video_standard"},
		{PropertyDigitalZoomROI, "digital_zoom_roi"},
		{PropertyTiltPan, "tilt_pan"},
		{Property(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.prop.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
