package models

// Vendor property models. Payloads cross the API hex-encoded because
// vendor properties carry opaque driver-defined bytes of arbitrary size.

type VendorSupportData struct {
	DeviceID    string `json:"device_id" example:"XFxcP1x1c2IjdmlkXzA0NmQ" doc:"Stable URL-safe device identifier"`
	PropertySet string `json:"property_set" example:"49e40325-f9ba-11d6-94b5-00b0d0c14c3b" doc:"Vendor property set GUID"`
	PropertyID  uint32 `json:"property_id" example:"2" doc:"Property identifier within the set"`
	CanGet      bool   `json:"can_get" example:"true" doc:"Whether the property can be read"`
	CanSet      bool   `json:"can_set" example:"true" doc:"Whether the property can be written"`
}

type VendorSupportResponse struct {
	Body VendorSupportData
}

type VendorValueData struct {
	DeviceID    string `json:"device_id" example:"XFxcP1x1c2IjdmlkXzA0NmQ" doc:"Stable URL-safe device identifier"`
	PropertySet string `json:"property_set" example:"49e40325-f9ba-11d6-94b5-00b0d0c14c3b" doc:"Vendor property set GUID"`
	PropertyID  uint32 `json:"property_id" example:"2" doc:"Property identifier within the set"`
	Data        string `json:"data" example:"01000000" doc:"Hex-encoded payload bytes"`
	Size        int    `json:"size" example:"4" doc:"Payload size in bytes"`
}

type VendorValueResponse struct {
	Body VendorValueData
}

// VendorSetBody is the request body for writing a vendor property.
type VendorSetBody struct {
	Data string `json:"data" minLength:"2" pattern:"^([0-9a-fA-F]{2})+$" example:"01000000" doc:"Hex-encoded payload bytes"`
}

// VendorWriteData acknowledges a vendor property write.
type VendorWriteData struct {
	DeviceID    string `json:"device_id" example:"XFxcP1x1c2IjdmlkXzA0NmQ" doc:"Stable URL-safe device identifier"`
	PropertySet string `json:"property_set" example:"49e40325-f9ba-11d6-94b5-00b0d0c14c3b" doc:"Vendor property set GUID"`
	PropertyID  uint32 `json:"property_id" example:"2" doc:"Property identifier within the set"`
	Size        int    `json:"size" example:"4" doc:"Number of bytes written"`
}

type VendorWriteResponse struct {
	Body VendorWriteData
}
