//go:build windows

// Package hotplug provides device hotplug monitoring using
// WM_DEVICECHANGE broadcasts.
//
// A message-only window registered for device interface notifications
// receives arrival and removal broadcasts without any visible UI. The
// window and its message pump live on a dedicated locked OS thread;
// events are delivered over a channel.
package hotplug

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Action constants for device events.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// Event represents one device interface arrival or removal.
type Event struct {
	Action string // "add" or "remove"
	Path   string // device interface path from the broadcast
}

// Window message and broadcast constants.
const (
	WM_DESTROY      = 0x0002
	WM_CLOSE        = 0x0010
	WM_DEVICECHANGE = 0x0219

	DBT_DEVICEARRIVAL          = 0x8000
	DBT_DEVICEREMOVECOMPLETE   = 0x8004
	DBT_DEVTYP_DEVICEINTERFACE = 5

	DEVICE_NOTIFY_WINDOW_HANDLE = 0
)

// HWND_MESSAGE parents a window into the message-only hierarchy.
const hwndMessage = ^uintptr(2)

const className = "DuvcDeviceNotificationWindow"

// ErrMonitorClosed is returned by Run when the monitor was closed before
// or while attaching.
var ErrMonitorClosed = errors.New("hotplug: monitor closed")

var (
	moduser32 = windows.NewLazySystemDLL("user32.dll")

	procCreateWindowExW              = moduser32.NewProc("CreateWindowExW")
	procDefWindowProcW               = moduser32.NewProc("DefWindowProcW")
	procDestroyWindow                = moduser32.NewProc("DestroyWindow")
	procDispatchMessageW             = moduser32.NewProc("DispatchMessageW")
	procGetMessageW                  = moduser32.NewProc("GetMessageW")
	procPostMessageW                 = moduser32.NewProc("PostMessageW")
	procPostQuitMessage              = moduser32.NewProc("PostQuitMessage")
	procRegisterClassW               = moduser32.NewProc("RegisterClassW")
	procRegisterDeviceNotificationW  = moduser32.NewProc("RegisterDeviceNotificationW")
	procTranslateMessage             = moduser32.NewProc("TranslateMessage")
	procUnregisterDeviceNotification = moduser32.NewProc("UnregisterDeviceNotification")
)

type wndClass struct {
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   windows.Handle
	Icon       windows.Handle
	Cursor     windows.Handle
	Background windows.Handle
	MenuName   *uint16
	ClassName  *uint16
}

type point struct {
	X, Y int32
}

type message struct {
	HWND    windows.HWND
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

type devBroadcastHdr struct {
	Size       uint32
	DeviceType uint32
	Reserved   uint32
}

type devBroadcastDeviceInterface struct {
	Size       uint32
	DeviceType uint32
	Reserved   uint32
	ClassGUID  windows.GUID
	Name       [1]uint16
}

// Monitor listens for arrival and removal of one device interface class.
// The notification window is created by NewMonitor; broadcasts queue in
// the window's message queue until Run starts pumping them.
type Monitor struct {
	attach    chan attachReq
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

type attachReq struct {
	ctx    context.Context
	events chan<- Event
	result chan<- error
}

// NewMonitor creates the notification window for the given device
// interface class, typically the video input device category GUID. The
// window lives on a dedicated locked OS thread owned by the monitor;
// Close releases it.
func NewMonitor(class windows.GUID) (*Monitor, error) {
	m := &Monitor{
		attach: make(chan attachReq),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	initc := make(chan error, 1)
	go m.thread(class, initc)

	if err := <-initc; err != nil {
		return nil, err
	}
	return m, nil
}

// thread owns the window for its whole life: creation, message pump, and
// destruction all happen here.
func (m *Monitor) thread(class windows.GUID, initc chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(m.done)

	w := &notifyWindow{quit: make(chan struct{})}
	if err := w.create(&class); err != nil {
		initc <- err
		return
	}
	defer w.destroy()
	initc <- nil

	var req attachReq
	select {
	case req = <-m.attach:
	case <-m.quit:
		return
	}
	w.events = req.events

	watcher := make(chan struct{})
	go func() {
		select {
		case <-req.ctx.Done():
		case <-m.quit:
		case <-watcher:
			return
		}
		// Unblock any in-flight delivery first so the pump can process
		// the close message.
		close(w.quit)
		postMessage(w.hwnd, WM_CLOSE, 0, 0)
	}()
	defer close(watcher)

	err := pump()
	if req.ctx.Err() != nil {
		err = req.ctx.Err()
	}
	req.result <- err
}

// Run attaches the events channel and pumps window messages until the
// context is cancelled or the monitor is closed. The events channel is
// closed when Run returns. A monitor supports a single Run.
func (m *Monitor) Run(ctx context.Context, events chan<- Event) error {
	defer close(events)

	result := make(chan error, 1)
	select {
	case m.attach <- attachReq{ctx: ctx, events: events, result: result}:
	case <-m.done:
		return ErrMonitorClosed
	}
	return <-result
}

// Close destroys the notification window and releases the monitor's OS
// thread. Safe to call more than once; a blocked Run returns first.
func (m *Monitor) Close() error {
	m.closeOnce.Do(func() { close(m.quit) })
	<-m.done
	return nil
}

type notifyWindow struct {
	hwnd   windows.HWND
	notify windows.Handle
	events chan<- Event
	quit   chan struct{}
}

var (
	classOnce sync.Once
	classErr  error

	activeMu sync.Mutex
	active   = map[windows.HWND]*notifyWindow{}

	wndProcPtr = windows.NewCallback(notifyWndProc)
)

func registerClass() error {
	name, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return err
	}
	var inst windows.Handle
	if err := windows.GetModuleHandleEx(windows.GET_MODULE_HANDLE_EX_FLAG_UNCHANGED_REFCOUNT, nil, &inst); err != nil {
		return err
	}

	wc := wndClass{
		WndProc:   wndProcPtr,
		Instance:  inst,
		ClassName: name,
	}
	r, _, e := syscall.SyscallN(procRegisterClassW.Addr(), uintptr(unsafe.Pointer(&wc)))
	if r == 0 && e != windows.ERROR_CLASS_ALREADY_EXISTS {
		return fmt.Errorf("RegisterClass: %w", e)
	}
	return nil
}

func (w *notifyWindow) create(class *windows.GUID) error {
	classOnce.Do(func() { classErr = registerClass() })
	if classErr != nil {
		return classErr
	}

	name, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return err
	}
	title, err := windows.UTF16PtrFromString("duvc device monitor")
	if err != nil {
		return err
	}
	var inst windows.Handle
	if err := windows.GetModuleHandleEx(windows.GET_MODULE_HANDLE_EX_FLAG_UNCHANGED_REFCOUNT, nil, &inst); err != nil {
		return err
	}

	hwnd, _, e := syscall.SyscallN(procCreateWindowExW.Addr(),
		0,
		uintptr(unsafe.Pointer(name)),
		uintptr(unsafe.Pointer(title)),
		0,
		0, 0, 0, 0,
		hwndMessage,
		0,
		uintptr(inst),
		0)
	if hwnd == 0 {
		return fmt.Errorf("CreateWindowEx: %w", e)
	}
	w.hwnd = windows.HWND(hwnd)

	activeMu.Lock()
	active[w.hwnd] = w
	activeMu.Unlock()

	if err := w.registerNotifications(class); err != nil {
		w.destroy()
		return err
	}
	return nil
}

func (w *notifyWindow) registerNotifications(class *windows.GUID) error {
	filter := devBroadcastDeviceInterface{
		DeviceType: DBT_DEVTYP_DEVICEINTERFACE,
		ClassGUID:  *class,
	}
	filter.Size = uint32(unsafe.Sizeof(filter))

	h, _, e := syscall.SyscallN(procRegisterDeviceNotificationW.Addr(),
		uintptr(w.hwnd),
		uintptr(unsafe.Pointer(&filter)),
		DEVICE_NOTIFY_WINDOW_HANDLE)
	if h == 0 {
		return fmt.Errorf("RegisterDeviceNotification: %w", e)
	}
	w.notify = windows.Handle(h)
	return nil
}

// destroy must run on the thread that created the window.
func (w *notifyWindow) destroy() {
	if w.notify != 0 {
		syscall.SyscallN(procUnregisterDeviceNotification.Addr(), uintptr(w.notify))
		w.notify = 0
	}
	if w.hwnd != 0 {
		activeMu.Lock()
		delete(active, w.hwnd)
		activeMu.Unlock()
		syscall.SyscallN(procDestroyWindow.Addr(), uintptr(w.hwnd))
		w.hwnd = 0
	}
}

// deliver blocks until the consumer takes the event or the monitor shuts
// down. Blocking backpressures the message pump, which is fine for the
// low rate of hotplug events.
func (w *notifyWindow) deliver(ev Event) {
	if w.events == nil {
		return
	}
	select {
	case w.events <- ev:
	case <-w.quit:
	}
}

func notifyWndProc(hwnd, msg, wparam, lparam uintptr) uintptr {
	switch msg {
	case WM_DEVICECHANGE:
		if wparam == DBT_DEVICEARRIVAL || wparam == DBT_DEVICEREMOVECOMPLETE {
			if ev := parseBroadcast(wparam, lparam); ev != nil {
				activeMu.Lock()
				w := active[windows.HWND(hwnd)]
				activeMu.Unlock()
				if w != nil {
					w.deliver(*ev)
				}
			}
		}
	case WM_DESTROY:
		syscall.SyscallN(procPostQuitMessage.Addr(), 0)
		return 0
	}
	r, _, _ := syscall.SyscallN(procDefWindowProcW.Addr(), hwnd, msg, wparam, lparam)
	return r
}

// parseBroadcast extracts the event from a WM_DEVICECHANGE lparam.
// Broadcasts for anything other than device interfaces are ignored.
func parseBroadcast(wparam, lparam uintptr) *Event {
	if lparam == 0 {
		return nil
	}
	hdr := (*devBroadcastHdr)(unsafe.Pointer(lparam))
	if hdr.DeviceType != DBT_DEVTYP_DEVICEINTERFACE {
		return nil
	}
	di := (*devBroadcastDeviceInterface)(unsafe.Pointer(lparam))

	action := ActionAdd
	if wparam == DBT_DEVICEREMOVECOMPLETE {
		action = ActionRemove
	}
	return &Event{Action: action, Path: windows.UTF16PtrToString(&di.Name[0])}
}

func pump() error {
	var m message
	for {
		r, _, e := syscall.SyscallN(procGetMessageW.Addr(),
			uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(r) {
		case 0:
			return nil // WM_QUIT
		case -1:
			return fmt.Errorf("GetMessage: %w", e)
		}
		syscall.SyscallN(procTranslateMessage.Addr(), uintptr(unsafe.Pointer(&m)))
		syscall.SyscallN(procDispatchMessageW.Addr(), uintptr(unsafe.Pointer(&m)))
	}
}

func postMessage(hwnd windows.HWND, msg uint32, wparam, lparam uintptr) {
	syscall.SyscallN(procPostMessageW.Addr(), uintptr(hwnd), uintptr(msg), wparam, lparam)
}
