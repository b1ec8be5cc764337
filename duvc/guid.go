package duvc

import (
	"encoding/binary"

	"github.com/gofrs/uuid/v5"
)

// GUID is a Windows-layout 128-bit identifier used to address vendor
// property sets. The field layout matches the native GUID struct so Windows
// code can pass it straight through.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// ParseGUID accepts the usual textual forms, with or without braces or
// hyphens, e.g. "{49e40325-f9ba-11d6-94b5-00b0d0c14c3b}".
func ParseGUID(s string) (GUID, error) {
	u, err := uuid.FromString(s)
	if err != nil {
		return GUID{}, newError(ErrInvalidArgument, "malformed GUID: "+s, err)
	}
	return guidFromBytes(u.Bytes()), nil
}

// String formats the GUID in canonical hyphenated lowercase form.
func (g GUID) String() string {
	var b [16]byte
	binary.BigEndian.PutUint32(b[0:4], g.Data1)
	binary.BigEndian.PutUint16(b[4:6], g.Data2)
	binary.BigEndian.PutUint16(b[6:8], g.Data3)
	copy(b[8:], g.Data4[:])
	u, err := uuid.FromBytes(b[:])
	if err != nil {
		return ""
	}
	return u.String()
}

// IsZero reports whether the GUID is all zeroes.
func (g GUID) IsZero() bool {
	return g == GUID{}
}

func guidFromBytes(b []byte) GUID {
	var g GUID
	g.Data1 = binary.BigEndian.Uint32(b[0:4])
	g.Data2 = binary.BigEndian.Uint16(b[4:6])
	g.Data3 = binary.BigEndian.Uint16(b[6:8])
	copy(g.Data4[:], b[8:16])
	return g
}
