package duvc

import "strings"

// CamMode selects who drives a property: the device (Auto) or the caller
// (Manual).
type CamMode int

// Control modes attached to every property value.
const (
	CamModeAuto CamMode = iota
	CamModeManual
)

// String returns the mode name used by the CLI and API.
func (m CamMode) String() string {
	if m == CamModeAuto {
		return "auto"
	}
	return "manual"
}

// ParseCamMode parses "auto" or "manual", case-insensitively.
func ParseCamMode(s string) (CamMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return CamModeAuto, nil
	case "manual":
		return CamModeManual, nil
	}
	return CamModeManual, newError(ErrInvalidArgument, "unknown mode: "+s, nil)
}

// PropSetting is one property's current or desired state. While Mode is
// CamModeAuto the device may ignore Value entirely; a reported Value is then
// only the last reading, not a commitment.
type PropSetting struct {
	Value int32   `json:"value"`
	Mode  CamMode `json:"mode"`
}

// PropRange describes the values a device accepts for one property.
// Min <= Default <= Max, and valid values are aligned to Step from Min.
// Drivers occasionally report a step of zero; the helpers below treat any
// step below one as one.
type PropRange struct {
	Min         int32   `json:"min"`
	Max         int32   `json:"max"`
	Step        int32   `json:"step"`
	Default     int32   `json:"default"`
	DefaultMode CamMode `json:"default_mode"`
}

func (r PropRange) step() int32 {
	if r.Step < 1 {
		return 1
	}
	return r.Step
}

// IsValid reports whether value is inside the range and aligned to the step.
func (r PropRange) IsValid(value int32) bool {
	return value >= r.Min && value <= r.Max && (value-r.Min)%r.step() == 0
}

// Clamp returns the nearest valid value for this range.
func (r PropRange) Clamp(value int32) int32 {
	if value <= r.Min {
		return r.Min
	}
	if value >= r.Max {
		return r.Max
	}
	step := r.step()
	steps := (value - r.Min + step/2) / step
	v := r.Min + steps*step
	if v > r.Max {
		v -= step
	}
	return v
}
