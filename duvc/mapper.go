package duvc

// Native property identifiers from the DirectShow control interfaces.
// CamProp maps onto the IAMCameraControl identifier space and VidProp onto
// the IAMVideoProcAmp one. The unsupported sentinel is -1: a property that
// maps to it is rejected before any native round-trip.
const unsupportedNativeID int32 = -1

var camPropNativeIDs = [...]int32{
	CamPropPan:                   0,
	CamPropTilt:                  1,
	CamPropRoll:                  2,
	CamPropZoom:                  3,
	CamPropExposure:              4,
	CamPropIris:                  5,
	CamPropFocus:                 6,
	CamPropScanMode:              7,
	CamPropPrivacy:               8,
	CamPropPanRelative:           9,
	CamPropTiltRelative:          10,
	CamPropRollRelative:          11,
	CamPropZoomRelative:          12,
	CamPropExposureRelative:      13,
	CamPropIrisRelative:          14,
	CamPropFocusRelative:         15,
	CamPropPanTilt:               16,
	CamPropPanTiltRelative:       17,
	CamPropFocusSimple:           18,
	CamPropDigitalZoom:           19,
	CamPropDigitalZoomRelative:   20,
	CamPropBacklightCompensation: 21,
	CamPropLamp:                  22,
}

var vidPropNativeIDs = [...]int32{
	VidPropBrightness:            0,
	VidPropContrast:              1,
	VidPropHue:                   2,
	VidPropSaturation:            3,
	VidPropSharpness:             4,
	VidPropGamma:                 5,
	VidPropColorEnable:           6,
	VidPropWhiteBalance:          7,
	VidPropBacklightCompensation: 8,
	VidPropGain:                  9,
}

func (p CamProp) nativeID() int32 {
	if p >= 0 && int(p) < len(camPropNativeIDs) {
		return camPropNativeIDs[p]
	}
	return unsupportedNativeID
}

func (p VidProp) nativeID() int32 {
	if p >= 0 && int(p) < len(vidPropNativeIDs) {
		return vidPropNativeIDs[p]
	}
	return unsupportedNativeID
}

// Control flag bits shared by both families. Decoding ignores any bit it
// does not know about.
const (
	flagAuto   int32 = 0x0001
	flagManual int32 = 0x0002
)

func modeToFlags(mode CamMode) int32 {
	if mode == CamModeAuto {
		return flagAuto
	}
	return flagManual
}

func flagsToMode(flags int32) CamMode {
	if flags&flagAuto != 0 {
		return CamModeAuto
	}
	return CamModeManual
}
