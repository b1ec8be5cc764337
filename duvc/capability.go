package duvc

// PropertyCapability is one property's place in a capability snapshot.
type PropertyCapability struct {
	Supported bool        `json:"supported"`
	Range     PropRange   `json:"range"`
	Current   PropSetting `json:"current"`
}

// SupportsAuto reports whether the device defaults this property to
// automatic control.
func (p PropertyCapability) SupportsAuto() bool {
	return p.Supported && p.Range.DefaultMode == CamModeAuto
}

// DeviceCapabilities is a point-in-time scan of everything a device
// supports across both property families.
type DeviceCapabilities struct {
	device Device
	cam    map[CamProp]PropertyCapability
	vid    map[VidProp]PropertyCapability
}

// GetDeviceCapabilities opens the device and probes every property of both
// families. Unsupported properties appear in the snapshot with Supported
// false; only failing to reach the device at all is an error.
func GetDeviceCapabilities(dev Device) (*DeviceCapabilities, error) {
	caps := &DeviceCapabilities{device: dev}
	if err := caps.Refresh(); err != nil {
		return nil, err
	}
	return caps, nil
}

// GetDeviceCapabilitiesByIndex scans the n-th device of the current
// enumeration.
func GetDeviceCapabilitiesByIndex(index int) (*DeviceCapabilities, error) {
	cam, err := OpenCameraByIndex(index)
	if err != nil {
		return nil, err
	}
	defer cam.Close()
	return GetDeviceCapabilities(cam.Device())
}

// Refresh re-probes the device and replaces the snapshot.
func (dc *DeviceCapabilities) Refresh() error {
	conn, err := OpenConnection(dc.device)
	if err != nil {
		return err
	}
	defer conn.Close()

	cam := make(map[CamProp]PropertyCapability, len(camPropNames))
	for _, prop := range CamProps() {
		cam[prop] = probeCapability(conn, prop)
	}
	vid := make(map[VidProp]PropertyCapability, len(vidPropNames))
	for _, prop := range VidProps() {
		vid[prop] = probeCapability(conn, prop)
	}

	dc.cam = cam
	dc.vid = vid
	return nil
}

// probeCapability treats any per-property failure as "unsupported": devices
// routinely reject range queries for properties they lack.
func probeCapability(conn *Connection, prop Property) PropertyCapability {
	r, err := conn.GetRange(prop)
	if err != nil {
		return PropertyCapability{}
	}
	cap := PropertyCapability{Supported: true, Range: r}
	if cur, err := conn.Get(prop); err == nil {
		cap.Current = cur
	}
	return cap
}

// Device returns the scanned device.
func (dc *DeviceCapabilities) Device() Device {
	return dc.device
}

// Camera returns the capability of one camera-motion property.
func (dc *DeviceCapabilities) Camera(prop CamProp) (PropertyCapability, bool) {
	cap, ok := dc.cam[prop]
	return cap, ok
}

// Video returns the capability of one image-processing property.
func (dc *DeviceCapabilities) Video(prop VidProp) (PropertyCapability, bool) {
	cap, ok := dc.vid[prop]
	return cap, ok
}

// SupportedCamProps lists the supported camera-motion properties in
// declaration order.
func (dc *DeviceCapabilities) SupportedCamProps() []CamProp {
	var props []CamProp
	for _, prop := range CamProps() {
		if dc.cam[prop].Supported {
			props = append(props, prop)
		}
	}
	return props
}

// SupportedVidProps lists the supported image-processing properties in
// declaration order.
func (dc *DeviceCapabilities) SupportedVidProps() []VidProp {
	var props []VidProp
	for _, prop := range VidProps() {
		if dc.vid[prop].Supported {
			props = append(props, prop)
		}
	}
	return props
}
