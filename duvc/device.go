package duvc

import (
	"encoding/base64"
	"strings"
)

// Device identifies one enumerated camera. Name is the human-readable
// friendly name and is not unique; Path is the OS device path and is the
// primary key. Values are immutable once produced by enumeration.
type Device struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// IsValid reports whether the device carries any identifying information.
func (d Device) IsValid() bool {
	return d.Name != "" || d.Path != ""
}

// ID returns the stable identifier: the path when present, otherwise the
// name.
func (d Device) ID() string {
	if d.Path != "" {
		return d.Path
	}
	return d.Name
}

// Equal reports whether two devices refer to the same hardware. Paths are
// compared first, case-insensitively; when either path is empty the
// comparison falls back to the name.
func (d Device) Equal(other Device) bool {
	if d.Path != "" && other.Path != "" {
		return strings.EqualFold(d.Path, other.Path)
	}
	return strings.EqualFold(d.Name, other.Name)
}

// EncodeDeviceID converts a device ID into a URL-safe token for use in API
// paths. Device paths contain characters that do not survive URL routing.
func EncodeDeviceID(id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}

// DecodeDeviceID reverses EncodeDeviceID.
func DecodeDeviceID(token string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", newError(ErrInvalidArgument, "malformed device id", err)
	}
	return string(raw), nil
}
