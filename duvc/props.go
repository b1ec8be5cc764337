package duvc

import "strings"

// CamProp identifies a camera-motion property. The set is closed; passing
// anything outside it to a Connection is a programming error surfaced as
// ErrInvalidArgument.
type CamProp int

// Camera-motion properties.
const (
	CamPropPan CamProp = iota
	CamPropTilt
	CamPropRoll
	CamPropZoom
	CamPropExposure
	CamPropIris
	CamPropFocus
	CamPropScanMode
	CamPropPrivacy
	CamPropPanRelative
	CamPropTiltRelative
	CamPropRollRelative
	CamPropZoomRelative
	CamPropExposureRelative
	CamPropIrisRelative
	CamPropFocusRelative
	CamPropPanTilt
	CamPropPanTiltRelative
	CamPropFocusSimple
	CamPropDigitalZoom
	CamPropDigitalZoomRelative
	CamPropBacklightCompensation
	CamPropLamp
)

// VidProp identifies an image-processing property.
type VidProp int

// Image-processing properties.
const (
	VidPropBrightness VidProp = iota
	VidPropContrast
	VidPropHue
	VidPropSaturation
	VidPropSharpness
	VidPropGamma
	VidPropColorEnable
	VidPropWhiteBalance
	VidPropBacklightCompensation
	VidPropGain
)

var camPropNames = [...]string{
	CamPropPan:                   "Pan",
	CamPropTilt:                  "Tilt",
	CamPropRoll:                  "Roll",
	CamPropZoom:                  "Zoom",
	CamPropExposure:              "Exposure",
	CamPropIris:                  "Iris",
	CamPropFocus:                 "Focus",
	CamPropScanMode:              "ScanMode",
	CamPropPrivacy:               "Privacy",
	CamPropPanRelative:           "PanRelative",
	CamPropTiltRelative:          "TiltRelative",
	CamPropRollRelative:          "RollRelative",
	CamPropZoomRelative:          "ZoomRelative",
	CamPropExposureRelative:      "ExposureRelative",
	CamPropIrisRelative:          "IrisRelative",
	CamPropFocusRelative:         "FocusRelative",
	CamPropPanTilt:               "PanTilt",
	CamPropPanTiltRelative:       "PanTiltRelative",
	CamPropFocusSimple:           "FocusSimple",
	CamPropDigitalZoom:           "DigitalZoom",
	CamPropDigitalZoomRelative:   "DigitalZoomRelative",
	CamPropBacklightCompensation: "BacklightCompensation",
	CamPropLamp:                  "Lamp",
}

var vidPropNames = [...]string{
	VidPropBrightness:            "Brightness",
	VidPropContrast:              "Contrast",
	VidPropHue:                   "Hue",
	VidPropSaturation:            "Saturation",
	VidPropSharpness:             "Sharpness",
	VidPropGamma:                 "Gamma",
	VidPropColorEnable:           "ColorEnable",
	VidPropWhiteBalance:          "WhiteBalance",
	VidPropBacklightCompensation: "BacklightCompensation",
	VidPropGain:                  "Gain",
}

// String returns the canonical property name.
func (p CamProp) String() string {
	if p >= 0 && int(p) < len(camPropNames) {
		return camPropNames[p]
	}
	return "Unknown"
}

// String returns the canonical property name.
func (p VidProp) String() string {
	if p >= 0 && int(p) < len(vidPropNames) {
		return vidPropNames[p]
	}
	return "Unknown"
}

// CamProps returns every camera-motion property in declaration order.
func CamProps() []CamProp {
	props := make([]CamProp, len(camPropNames))
	for i := range props {
		props[i] = CamProp(i)
	}
	return props
}

// VidProps returns every image-processing property in declaration order.
func VidProps() []VidProp {
	props := make([]VidProp, len(vidPropNames))
	for i := range props {
		props[i] = VidProp(i)
	}
	return props
}

// ParseCamProp resolves a camera property from its name, ignoring case.
func ParseCamProp(s string) (CamProp, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for i, name := range camPropNames {
		if strings.ToLower(name) == want {
			return CamProp(i), nil
		}
	}
	return 0, newError(ErrInvalidArgument, "unknown camera property: "+s, nil)
}

// ParseVidProp resolves a video property from its name, ignoring case.
func ParseVidProp(s string) (VidProp, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for i, name := range vidPropNames {
		if strings.ToLower(name) == want {
			return VidProp(i), nil
		}
	}
	return 0, newError(ErrInvalidArgument, "unknown video property: "+s, nil)
}

// Property is either a CamProp or a VidProp. The interface is sealed so the
// two families stay the only ones a Connection will accept.
type Property interface {
	String() string
	family() propFamily
	nativeID() int32
}

type propFamily int

const (
	familyCam propFamily = iota
	familyVid
)

func (f propFamily) String() string {
	if f == familyCam {
		return "cam"
	}
	return "vid"
}

func (p CamProp) family() propFamily { return familyCam }
func (p VidProp) family() propFamily { return familyVid }
