//go:build windows

package hotplug

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

// KSCATEGORY_VIDEO_CAMERA
var testClass = windows.GUID{
	Data1: 0xE5323777,
	Data2: 0xF976,
	Data3: 0x4F5B,
	Data4: [8]byte{0x9B, 0x55, 0xB9, 0x46, 0x99, 0xC4, 0x6E, 0x44},
}

func TestNewMonitor(t *testing.T) {
	m, err := NewMonitor(testClass)
	if err != nil {
		t.Fatalf("NewMonitor error: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close error: %v", err)
	}
}

func TestMonitorRunCancel(t *testing.T) {
	m, err := NewMonitor(testClass)
	if err != nil {
		t.Fatalf("NewMonitor error: %v", err)
	}
	defer func() { _ = m.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan Event, 4)
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx, events) }()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run: expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	// Run closes the events channel on the way out.
	for range events {
	}
}

func TestMonitorCloseDuringRun(t *testing.T) {
	m, err := NewMonitor(testClass)
	if err != nil {
		t.Fatalf("NewMonitor error: %v", err)
	}

	events := make(chan Event, 4)
	done := make(chan error, 1)
	go func() { done <- m.Run(context.Background(), events) }()

	if err := m.Close(); err != nil {
		t.Errorf("Close error: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run after Close: expected nil, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Close")
	}
}

func TestMonitorRunAfterClose(t *testing.T) {
	m, err := NewMonitor(testClass)
	if err != nil {
		t.Fatalf("NewMonitor error: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Errorf("second Close error: %v", err)
	}

	events := make(chan Event)
	if err := m.Run(context.Background(), events); !errors.Is(err, ErrMonitorClosed) {
		t.Errorf("Run: expected ErrMonitorClosed, got %v", err)
	}
}

func TestParseBroadcast(t *testing.T) {
	if got := parseBroadcast(DBT_DEVICEARRIVAL, 0); got != nil {
		t.Errorf("nil lparam: expected nil, got %+v", got)
	}

	hdr := devBroadcastHdr{DeviceType: 2} // DBT_DEVTYP_PORT
	hdr.Size = uint32(unsafe.Sizeof(hdr))
	if got := parseBroadcast(DBT_DEVICEARRIVAL, uintptr(unsafe.Pointer(&hdr))); got != nil {
		t.Errorf("non-interface broadcast: expected nil, got %+v", got)
	}
	runtime.KeepAlive(&hdr)

	const path = `\\?\USB#VID_046D&PID_082D#5&1a2b3c4d&0&0000`
	u16, err := windows.UTF16FromString(path)
	if err != nil {
		t.Fatalf("UTF16FromString error: %v", err)
	}
	size := int(unsafe.Offsetof(devBroadcastDeviceInterface{}.Name)) + 2*len(u16)
	raw := make([]byte, size)
	di := (*devBroadcastDeviceInterface)(unsafe.Pointer(&raw[0]))
	di.Size = uint32(size)
	di.DeviceType = DBT_DEVTYP_DEVICEINTERFACE
	copy(unsafe.Slice(&di.Name[0], len(u16)), u16)

	ev := parseBroadcast(DBT_DEVICEREMOVECOMPLETE, uintptr(unsafe.Pointer(di)))
	runtime.KeepAlive(raw)
	if ev == nil {
		t.Fatal("expected event for device interface broadcast")
	}
	if ev.Action != ActionRemove {
		t.Errorf("Action: expected %q, got %q", ActionRemove, ev.Action)
	}
	if ev.Path != path {
		t.Errorf("Path: expected %q, got %q", path, ev.Path)
	}
}
