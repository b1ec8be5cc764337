package duvc

import "testing"

func TestPropRangeClamp(t *testing.T) {
	tests := []struct {
		name     string
		r        PropRange
		value    int32
		expected int32
	}{
		{
			name:     "inside range",
			r:        PropRange{Min: 0, Max: 100, Step: 1, Default: 50},
			value:    50,
			expected: 50,
		},
		{
			name:     "below min",
			r:        PropRange{Min: 0, Max: 100, Step: 1},
			value:    -10,
			expected: 0,
		},
		{
			name:     "above max",
			r:        PropRange{Min: 0, Max: 100, Step: 1},
			value:    150,
			expected: 100,
		},
		{
			name:     "at min",
			r:        PropRange{Min: 0, Max: 100, Step: 1},
			value:    0,
			expected: 0,
		},
		{
			name:     "at max",
			r:        PropRange{Min: 0, Max: 100, Step: 1},
			value:    100,
			expected: 100,
		},
		{
			name:     "rounds down to step",
			r:        PropRange{Min: 0, Max: 100, Step: 10},
			value:    14,
			expected: 10,
		},
		{
			name:     "rounds up to step",
			r:        PropRange{Min: 0, Max: 100, Step: 10},
			value:    15,
			expected: 20,
		},
		{
			name:     "rounds below half step",
			r:        PropRange{Min: 0, Max: 100, Step: 10},
			value:    4,
			expected: 0,
		},
		{
			name:     "zero step treated as one",
			r:        PropRange{Min: 0, Max: 10, Step: 0},
			value:    7,
			expected: 7,
		},
		{
			name:     "negative range rounds to step",
			r:        PropRange{Min: -180, Max: 180, Step: 45},
			value:    -157,
			expected: -135,
		},
		{
			name:     "negative range rounds toward min",
			r:        PropRange{Min: -180, Max: 180, Step: 45},
			value:    -170,
			expected: -180,
		},
		{
			name:     "unaligned max not overshot",
			r:        PropRange{Min: 0, Max: 17, Step: 10},
			value:    16,
			expected: 10,
		},
		{
			name:     "value at unaligned max",
			r:        PropRange{Min: 0, Max: 17, Step: 10},
			value:    17,
			expected: 17,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Clamp(tt.value); got != tt.expected {
				t.Errorf("Clamp(%d): expected %d, got %d", tt.value, tt.expected, got)
			}
		})
	}
}

func TestPropRangeIsValid(t *testing.T) {
	tests := []struct {
		name     string
		r        PropRange
		value    int32
		expected bool
	}{
		{"aligned inside", PropRange{Min: 0, Max: 100, Step: 10}, 50, true},
		{"at min", PropRange{Min: 0, Max: 100, Step: 10}, 0, true},
		{"at max", PropRange{Min: 0, Max: 100, Step: 10}, 100, true},
		{"unaligned", PropRange{Min: 0, Max: 100, Step: 10}, 55, false},
		{"below min", PropRange{Min: 0, Max: 100, Step: 10}, -10, false},
		{"above max", PropRange{Min: 0, Max: 100, Step: 10}, 110, false},
		{"zero step treated as one", PropRange{Min: 0, Max: 10, Step: 0}, 7, true},
		{"negative aligned", PropRange{Min: -180, Max: 180, Step: 45}, -90, true},
		{"negative unaligned", PropRange{Min: -180, Max: 180, Step: 45}, -100, false},
		{"unaligned max rejected", PropRange{Min: 0, Max: 17, Step: 10}, 17, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsValid(tt.value); got != tt.expected {
				t.Errorf("IsValid(%d): expected %v, got %v", tt.value, tt.expected, got)
			}
		})
	}
}

func TestCamModeString(t *testing.T) {
	if got := CamModeAuto.String(); got != "auto" {
		t.Errorf("CamModeAuto: expected %q, got %q", "auto", got)
	}
	if got := CamModeManual.String(); got != "manual" {
		t.Errorf("CamModeManual: expected %q, got %q", "manual", got)
	}
}

func TestParseCamMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected CamMode
		wantErr  bool
	}{
		{name: "auto", input: "auto", expected: CamModeAuto},
		{name: "manual", input: "manual", expected: CamModeManual},
		{name: "uppercase", input: "AUTO", expected: CamModeAuto},
		{name: "mixed case", input: "Manual", expected: CamModeManual},
		{name: "surrounding space", input: "  auto  ", expected: CamModeAuto},
		{name: "unknown", input: "automatic", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCamMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				if !IsCode(err, ErrInvalidArgument) {
					t.Errorf("expected INVALID_ARGUMENT, got %v", CodeOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCamMode(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseCamMode(%q): expected %v, got %v", tt.input, tt.expected, got)
			}
		})
	}
}
