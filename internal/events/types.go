package events

// Event type constants for kelindar/event.
const (
	TypeDeviceChange uint32 = iota + 1
	TypePropertyWrite
	TypeLogEntry
)

// Event interface required by kelindar/event.
type Event interface {
	Type() uint32
}

// DeviceChangeEvent is published when a camera arrives or departs.
type DeviceChangeEvent struct {
	DeviceID   string `json:"device_id" example:"XFxcP1x1c2IjdmlkXzA0NmQ" doc:"Stable URL-safe device identifier"`
	DeviceName string `json:"device_name" example:"HD Pro Webcam C920" doc:"Friendly device name"`
	DevicePath string `json:"device_path" example:"\\\\?\\usb#vid_046d&pid_082d" doc:"System device path"`
	Action     string `json:"action" example:"added" doc:"Action type: added, removed"`
	Timestamp  string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for DeviceChangeEvent.
func (e DeviceChangeEvent) Type() uint32 { return TypeDeviceChange }

// PropertyWriteEvent is published after a property write through the API
// succeeds, so SSE clients can track setting changes.
type PropertyWriteEvent struct {
	DeviceID  string `json:"device_id" example:"XFxcP1x1c2IjdmlkXzA0NmQ" doc:"Stable URL-safe device identifier"`
	Domain    string `json:"domain" example:"cam" doc:"Property domain: cam or vid"`
	Property  string `json:"property" example:"Zoom" doc:"Property name"`
	Value     int32  `json:"value" example:"150" doc:"Written value"`
	Mode      string `json:"mode" example:"manual" doc:"Control mode: auto or manual"`
	Timestamp string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for PropertyWriteEvent.
func (e PropertyWriteEvent) Type() uint32 { return TypePropertyWrite }

// LogEntryEvent represents a log entry for SSE streaming.
type LogEntryEvent struct {
	Seq        uint64         `json:"seq" example:"42" doc:"Monotonic sequence number for deduplication"`
	Timestamp  string         `json:"timestamp" example:"2025-01-09T10:30:00.123Z" doc:"Log timestamp"`
	Level      string         `json:"level" example:"info" doc:"Log level"`
	Module     string         `json:"module" example:"api" doc:"Source module"`
	Message    string         `json:"message" doc:"Log message"`
	Attributes map[string]any `json:"attributes,omitempty" doc:"Structured log attributes"`
}

// Type returns the event type identifier for LogEntryEvent.
func (e LogEntryEvent) Type() uint32 { return TypeLogEntry }
