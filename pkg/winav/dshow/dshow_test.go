//go:build windows

package dshow

import (
	"testing"

	"github.com/allanhanan/duvc-ctl-sub002/pkg/winav/com"
)

func TestPropertyIdentifiers(t *testing.T) {
	if CameraControl_Pan != 0 || CameraControl_Lamp != 22 {
		t.Errorf("camera control ids: expected 0 and 22, got %d and %d",
			CameraControl_Pan, CameraControl_Lamp)
	}
	if VideoProcAmp_Brightness != 0 || VideoProcAmp_Gain != 9 {
		t.Errorf("videoprocamp ids: expected 0 and 9, got %d and %d",
			VideoProcAmp_Brightness, VideoProcAmp_Gain)
	}
	if CameraControl_Flags_Auto != 0x1 || CameraControl_Flags_Manual != 0x2 {
		t.Error("unexpected mode flag values")
	}
	if KSPROPERTY_SUPPORT_GET != 1 || KSPROPERTY_SUPPORT_SET != 2 {
		t.Error("unexpected ks support flag values")
	}
}

func TestEnumerate(t *testing.T) {
	thread, err := com.NewThread()
	if err != nil {
		t.Fatalf("NewThread error: %v", err)
	}
	defer func() { _ = thread.Close() }()

	var devices []DeviceInfo
	err = thread.Do(func() error {
		var derr error
		devices, derr = Enumerate()
		return derr
	})
	if err != nil {
		t.Fatalf("Enumerate error: %v", err)
	}

	// The list may be empty on a machine without cameras, but every entry
	// must carry an identity.
	for i, dev := range devices {
		if dev.Name == "" && dev.Path == "" {
			t.Errorf("device %d has neither name nor path", i)
		}
	}
}

func TestBindFilterNoMatch(t *testing.T) {
	thread, err := com.NewThread()
	if err != nil {
		t.Fatalf("NewThread error: %v", err)
	}
	defer func() { _ = thread.Close() }()

	err = thread.Do(func() error {
		filter, berr := BindFilter("no such camera", `\\?\usb#vid_0000&pid_0000#none`)
		if berr != nil {
			return berr
		}
		if filter != nil {
			filter.Release()
			t.Error("expected no filter for an unknown device")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("BindFilter error: %v", err)
	}
}
