package duvc

import "sync"

// DeviceChangeCallback receives hot-plug events. It runs on a goroutine the
// package owns, not the one that registered it, and must not block for long.
// The path is the raw OS device-interface path of the camera that appeared
// or disappeared; callers re-resolve it against ListDevices themselves.
type DeviceChangeCallback func(added bool, devicePath string)

// deviceNotifier is the per-OS subscription to device-change signals.
// start subscribes and begins delivering through fn; stop tears the
// subscription down. start failing must leave nothing behind.
type deviceNotifier interface {
	start(fn func(added bool, path string)) error
	stop()
}

// newDeviceNotifier is swapped out by tests.
var newDeviceNotifier = newPlatformNotifier

// Single-callback slot. Holding exactly one subscription and one callback
// is a deliberate constraint; fan-out belongs to the layer above.
var monitorState struct {
	mu       sync.Mutex
	notifier deviceNotifier
}

// RegisterDeviceChangeCallback subscribes to arrival/removal of
// video-capture devices. Only one callback can be registered at a time:
// registering while already registered logs a warning and keeps the first
// callback. A panic inside the callback is recovered and logged.
func RegisterDeviceChangeCallback(callback DeviceChangeCallback) error {
	if callback == nil {
		return newError(ErrInvalidArgument, "nil device change callback", nil)
	}

	monitorState.mu.Lock()
	defer monitorState.mu.Unlock()

	if monitorState.notifier != nil {
		logWarnf("device change callback already registered")
		return nil
	}

	notifier := newDeviceNotifier()
	if err := notifier.start(func(added bool, path string) {
		dispatchDeviceChange(callback, added, path)
	}); err != nil {
		return wrapSystem("register device notifications", err)
	}

	monitorState.notifier = notifier
	logInfof("device change monitoring started")
	return nil
}

// UnregisterDeviceChangeCallback tears down the subscription. Calling it
// while nothing is registered is a no-op.
func UnregisterDeviceChangeCallback() {
	monitorState.mu.Lock()
	defer monitorState.mu.Unlock()

	if monitorState.notifier == nil {
		return
	}
	monitorState.notifier.stop()
	monitorState.notifier = nil
	logInfof("device change monitoring stopped")
}

func dispatchDeviceChange(callback DeviceChangeCallback, added bool, path string) {
	defer func() {
		if r := recover(); r != nil {
			logErrorf("panic in device change callback: %v", r)
		}
	}()
	if added {
		logInfof("device added: %s", path)
	} else {
		logInfof("device removed: %s", path)
	}
	callback(added, path)
}
