//go:build windows

package dshow

import (
	"fmt"
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/allanhanan/duvc-ctl-sub002/pkg/winav/com"
)

// ICreateDevEnum vtable
type ICreateDevEnumVtbl struct {
	QueryInterface        uintptr
	AddRef                uintptr
	Release               uintptr
	CreateClassEnumerator uintptr
}

type ICreateDevEnum struct {
	vtbl *ICreateDevEnumVtbl
}

func (d *ICreateDevEnum) Release() {
	if d != nil && d.vtbl != nil {
		syscall.SyscallN(d.vtbl.Release, uintptr(unsafe.Pointer(d)))
	}
}

// CreateClassEnumerator returns a moniker enumerator for the device class.
// A nil enumerator with nil error means the class has no devices (S_FALSE).
func (d *ICreateDevEnum) CreateClassEnumerator(class *windows.GUID) (*IEnumMoniker, error) {
	var em *IEnumMoniker
	hr, _, _ := syscall.SyscallN(d.vtbl.CreateClassEnumerator,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(class)),
		uintptr(unsafe.Pointer(&em)),
		0)
	r := com.HRESULT(hr)
	if r == com.S_FALSE {
		return nil, nil
	}
	if r.Failed() {
		return nil, fmt.Errorf("CreateClassEnumerator: %w", r)
	}
	return em, nil
}

// IEnumMoniker vtable
type IEnumMonikerVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
	Next           uintptr
	Skip           uintptr
	Reset          uintptr
	Clone          uintptr
}

type IEnumMoniker struct {
	vtbl *IEnumMonikerVtbl
}

func (e *IEnumMoniker) Release() {
	if e != nil && e.vtbl != nil {
		syscall.SyscallN(e.vtbl.Release, uintptr(unsafe.Pointer(e)))
	}
}

// Next fetches the next moniker, or nil when the enumeration is done.
func (e *IEnumMoniker) Next() (*IMoniker, error) {
	var m *IMoniker
	var fetched uint32
	hr, _, _ := syscall.SyscallN(e.vtbl.Next,
		uintptr(unsafe.Pointer(e)),
		1,
		uintptr(unsafe.Pointer(&m)),
		uintptr(unsafe.Pointer(&fetched)))
	r := com.HRESULT(hr)
	if r != com.S_OK || fetched == 0 {
		if r.Failed() {
			return nil, fmt.Errorf("IEnumMoniker::Next: %w", r)
		}
		return nil, nil
	}
	return m, nil
}

// IMoniker vtable. The full IPersistStream chain has to be laid out so the
// IMoniker slots land at the right offsets.
type IMonikerVtbl struct {
	QueryInterface      uintptr
	AddRef              uintptr
	Release             uintptr
	GetClassID          uintptr
	IsDirty             uintptr
	Load                uintptr
	Save                uintptr
	GetSizeMax          uintptr
	BindToObject        uintptr
	BindToStorage       uintptr
	Reduce              uintptr
	ComposeWith         uintptr
	Enum                uintptr
	IsEqual             uintptr
	Hash                uintptr
	IsRunning           uintptr
	GetTimeOfLastChange uintptr
	Inverse             uintptr
	CommonPrefixWith    uintptr
	RelativePathTo      uintptr
	GetDisplayName      uintptr
	ParseDisplayName    uintptr
	IsSystemMoniker     uintptr
}

type IMoniker struct {
	vtbl *IMonikerVtbl
}

func (m *IMoniker) Release() {
	if m != nil && m.vtbl != nil {
		syscall.SyscallN(m.vtbl.Release, uintptr(unsafe.Pointer(m)))
	}
}

// BindFilter binds the moniker to its base filter object.
func (m *IMoniker) BindFilter() (*IBaseFilter, error) {
	var f *IBaseFilter
	hr, _, _ := syscall.SyscallN(m.vtbl.BindToObject,
		uintptr(unsafe.Pointer(m)),
		0,
		0,
		uintptr(unsafe.Pointer(&IID_IBaseFilter)),
		uintptr(unsafe.Pointer(&f)))
	if r := com.HRESULT(hr); r.Failed() {
		return nil, fmt.Errorf("IMoniker::BindToObject: %w", r)
	}
	return f, nil
}

// PropertyBag binds the moniker to its property storage.
func (m *IMoniker) PropertyBag() (*IPropertyBag, error) {
	var b *IPropertyBag
	hr, _, _ := syscall.SyscallN(m.vtbl.BindToStorage,
		uintptr(unsafe.Pointer(m)),
		0,
		0,
		uintptr(unsafe.Pointer(&IID_IPropertyBag)),
		uintptr(unsafe.Pointer(&b)))
	if r := com.HRESULT(hr); r.Failed() {
		return nil, fmt.Errorf("IMoniker::BindToStorage: %w", r)
	}
	return b, nil
}

// DisplayName returns the moniker display name, which doubles as a stable
// device path for capture devices that expose no DevicePath property.
func (m *IMoniker) DisplayName() (string, error) {
	var p *uint16
	hr, _, _ := syscall.SyscallN(m.vtbl.GetDisplayName,
		uintptr(unsafe.Pointer(m)),
		0,
		0,
		uintptr(unsafe.Pointer(&p)))
	if r := com.HRESULT(hr); r.Failed() {
		return "", fmt.Errorf("IMoniker::GetDisplayName: %w", r)
	}
	if p == nil {
		return "", nil
	}
	defer com.TaskMemFree(unsafe.Pointer(p))
	return windows.UTF16PtrToString(p), nil
}

// IPropertyBag vtable
type IPropertyBagVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
	Read           uintptr
	Write          uintptr
}

type IPropertyBag struct {
	vtbl *IPropertyBagVtbl
}

func (b *IPropertyBag) Release() {
	if b != nil && b.vtbl != nil {
		syscall.SyscallN(b.vtbl.Release, uintptr(unsafe.Pointer(b)))
	}
}

// ReadString reads a string-valued property such as "FriendlyName" or
// "DevicePath".
func (b *IPropertyBag) ReadString(name string) (string, error) {
	pname, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return "", err
	}

	var v com.Variant
	v.Init()
	defer v.Clear()

	hr, _, _ := syscall.SyscallN(b.vtbl.Read,
		uintptr(unsafe.Pointer(b)),
		uintptr(unsafe.Pointer(pname)),
		uintptr(unsafe.Pointer(&v)),
		0)
	if r := com.HRESULT(hr); r.Failed() {
		return "", fmt.Errorf("IPropertyBag::Read %s: %w", name, r)
	}
	return v.BSTR(), nil
}

// CreateDevEnum creates the system device enumerator.
func CreateDevEnum() (*ICreateDevEnum, error) {
	var d *ICreateDevEnum
	if err := com.CreateInstance(&CLSID_SystemDeviceEnum, &IID_ICreateDevEnum, unsafe.Pointer(&d)); err != nil {
		return nil, err
	}
	return d, nil
}

// Enumerate lists all video input devices. A system without any capture
// devices yields an empty slice, not an error.
func Enumerate() ([]DeviceInfo, error) {
	devEnum, err := CreateDevEnum()
	if err != nil {
		return nil, err
	}
	defer devEnum.Release()

	em, err := devEnum.CreateClassEnumerator(&CLSID_VideoInputDeviceCategory)
	if err != nil {
		return nil, err
	}
	if em == nil {
		return nil, nil
	}
	defer em.Release()

	var devices []DeviceInfo
	for {
		moniker, err := em.Next()
		if err != nil || moniker == nil {
			break
		}
		info := readDeviceInfo(moniker)
		moniker.Release()
		if info.Name != "" || info.Path != "" {
			devices = append(devices, info)
		}
	}
	return devices, nil
}

// BindFilter re-enumerates the video input category and binds the filter
// for the first device matching by path, or by name when either side has
// no path. Both comparisons are case-insensitive. A nil filter with nil
// error means no device matched.
func BindFilter(name, path string) (*IBaseFilter, error) {
	devEnum, err := CreateDevEnum()
	if err != nil {
		return nil, err
	}
	defer devEnum.Release()

	em, err := devEnum.CreateClassEnumerator(&CLSID_VideoInputDeviceCategory)
	if err != nil || em == nil {
		return nil, err
	}
	defer em.Release()

	for {
		moniker, err := em.Next()
		if err != nil || moniker == nil {
			return nil, err
		}
		info := readDeviceInfo(moniker)

		match := false
		if path != "" && info.Path != "" {
			match = strings.EqualFold(path, info.Path)
		} else if name != "" && info.Name != "" {
			match = strings.EqualFold(name, info.Name)
		}

		if !match {
			moniker.Release()
			continue
		}

		filter, err := moniker.BindFilter()
		moniker.Release()
		if err != nil {
			return nil, err
		}
		return filter, nil
	}
}

// readDeviceInfo pulls the friendly name and device path off a moniker,
// falling back to the display name when the bag has no DevicePath.
func readDeviceInfo(m *IMoniker) DeviceInfo {
	var info DeviceInfo

	if bag, err := m.PropertyBag(); err == nil && bag != nil {
		info.Name, _ = bag.ReadString("FriendlyName")
		info.Path, _ = bag.ReadString("DevicePath")
		bag.Release()
	}

	if info.Path == "" {
		if dn, err := m.DisplayName(); err == nil {
			info.Path = dn
		}
	}
	return info
}
