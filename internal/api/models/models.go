package models

// Health check models
type HealthData struct {
	Status  string `json:"status" example:"ok" doc:"Service status"`
	Message string `json:"message" example:"API is healthy" doc:"Status message"`
}

type HealthResponse struct {
	Body HealthData
}

// DeviceSummary represents one enumerated camera with snake_case fields.
// DeviceID is URL-safe and stable across re-enumeration; DevicePath is the
// raw system path and may contain characters that do not survive routing.
type DeviceSummary struct {
	DeviceID   string `json:"device_id" example:"XFxcP1x1c2IjdmlkXzA0NmQ" doc:"Stable URL-safe device identifier"`
	DeviceName string `json:"device_name" example:"HD Pro Webcam C920" doc:"Friendly device name"`
	DevicePath string `json:"device_path" example:"\\\\?\\usb#vid_046d&pid_082d" doc:"System device path"`
	Connected  bool   `json:"connected" example:"true" doc:"Whether the device is currently present"`
}

// Device API response models
type DeviceListData struct {
	Devices []DeviceSummary `json:"devices" doc:"List of enumerated camera devices"`
	Count   int             `json:"count" example:"2" doc:"Number of devices found"`
}

type DeviceListResponse struct {
	Body DeviceListData
}

type DeviceDetailResponse struct {
	Body DeviceSummary
}

// Property value models
type PropertyValueData struct {
	DeviceID string `json:"device_id" example:"XFxcP1x1c2IjdmlkXzA0NmQ" doc:"Stable URL-safe device identifier"`
	Domain   string `json:"domain" example:"cam" doc:"Property domain: cam or vid"`
	Property string `json:"property" example:"Zoom" doc:"Property name"`
	Value    int32  `json:"value" example:"150" doc:"Current value"`
	Mode     string `json:"mode" example:"manual" doc:"Control mode: auto or manual"`
}

type PropertyValueResponse struct {
	Body PropertyValueData
}

type PropertyRangeData struct {
	DeviceID    string `json:"device_id" example:"XFxcP1x1c2IjdmlkXzA0NmQ" doc:"Stable URL-safe device identifier"`
	Domain      string `json:"domain" example:"cam" doc:"Property domain: cam or vid"`
	Property    string `json:"property" example:"Zoom" doc:"Property name"`
	Min         int32  `json:"min" example:"100" doc:"Minimum accepted value"`
	Max         int32  `json:"max" example:"400" doc:"Maximum accepted value"`
	Step        int32  `json:"step" example:"10" doc:"Step between valid values"`
	Default     int32  `json:"default" example:"100" doc:"Device default value"`
	DefaultMode string `json:"default_mode" example:"manual" doc:"Device default control mode"`
}

type PropertyRangeResponse struct {
	Body PropertyRangeData
}

// PropertySetBody is the request body for writing a property. With Clamp
// set, out-of-range values are snapped to the nearest valid value instead
// of being rejected.
type PropertySetBody struct {
	Value int32  `json:"value" example:"150" doc:"Value to write"`
	Mode  string `json:"mode,omitempty" enum:"auto,manual" example:"manual" doc:"Control mode, defaults to manual"`
	Clamp bool   `json:"clamp,omitempty" example:"false" doc:"Snap the value to the device range instead of rejecting it"`
}

// Capability models
type PropertyRangeInfo struct {
	Min         int32  `json:"min" example:"100" doc:"Minimum accepted value"`
	Max         int32  `json:"max" example:"400" doc:"Maximum accepted value"`
	Step        int32  `json:"step" example:"10" doc:"Step between valid values"`
	Default     int32  `json:"default" example:"100" doc:"Device default value"`
	DefaultMode string `json:"default_mode" example:"manual" doc:"Device default control mode"`
}

type PropertyValueInfo struct {
	Value int32  `json:"value" example:"150" doc:"Current value"`
	Mode  string `json:"mode" example:"manual" doc:"Control mode: auto or manual"`
}

type CapabilityEntry struct {
	Property  string             `json:"property" example:"Zoom" doc:"Property name"`
	Supported bool               `json:"supported" example:"true" doc:"Whether the device supports this property"`
	Range     *PropertyRangeInfo `json:"range,omitempty" doc:"Accepted value range when supported"`
	Current   *PropertyValueInfo `json:"current,omitempty" doc:"Value at scan time when readable"`
}

type CapabilitiesData struct {
	DeviceID string            `json:"device_id" example:"XFxcP1x1c2IjdmlkXzA0NmQ" doc:"Stable URL-safe device identifier"`
	Camera   []CapabilityEntry `json:"camera" doc:"Camera motion properties"`
	Video    []CapabilityEntry `json:"video" doc:"Image processing properties"`
}

type CapabilitiesResponse struct {
	Body CapabilitiesData
}

// Log models
type LogEntryInfo struct {
	Seq        uint64         `json:"seq" example:"42" doc:"Monotonic sequence number"`
	Timestamp  string         `json:"timestamp" example:"2025-01-09T10:30:00.123Z" doc:"Log timestamp"`
	Level      string         `json:"level" example:"info" doc:"Log level"`
	Module     string         `json:"module" example:"camera" doc:"Source module"`
	Message    string         `json:"message" doc:"Log message"`
	Attributes map[string]any `json:"attributes,omitempty" doc:"Structured log attributes"`
}

type LogsData struct {
	Entries []LogEntryInfo `json:"entries" doc:"Buffered log entries in chronological order"`
	Count   int            `json:"count" example:"100" doc:"Number of entries returned"`
}

type LogsResponse struct {
	Body LogsData
}

// Error response
type ErrorData struct {
	Status  string `json:"status" example:"error" doc:"Error status"`
	Message string `json:"message" example:"Device not found" doc:"Error message"`
}

type ErrorResponse struct {
	Body ErrorData
}

// Version models
type VersionData struct {
	Version   string `json:"version" example:"dev" doc:"Application version"`
	GitCommit string `json:"git_commit" example:"abc1234" doc:"Git commit SHA"`
	BuildDate string `json:"build_date" example:"2025-01-09 14:30" doc:"Build timestamp"`
	BuildID   string `json:"build_id" example:"a1b2c3d4" doc:"Unique build identifier"`
	GoVersion string `json:"go_version" example:"go1.23.0" doc:"Go compiler version"`
	Compiler  string `json:"compiler" example:"gc" doc:"Compiler used"`
	Platform  string `json:"platform" example:"windows/amd64" doc:"Platform"`
}

type VersionResponse struct {
	Body VersionData
}
