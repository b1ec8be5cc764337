//go:build windows

package duvc

import (
	"context"

	"github.com/allanhanan/duvc-ctl-sub002/pkg/winav/dshow"
	"github.com/allanhanan/duvc-ctl-sub002/pkg/winav/hotplug"
)

// winNotifier bridges the hotplug monitor's event channel to the single
// registered callback.
type winNotifier struct {
	monitor *hotplug.Monitor
	cancel  context.CancelFunc
	done    chan struct{}
}

func newPlatformNotifier() deviceNotifier {
	return &winNotifier{}
}

func (n *winNotifier) start(fn func(added bool, path string)) error {
	monitor, err := hotplug.NewMonitor(dshow.CLSID_VideoInputDeviceCategory)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan hotplug.Event, 8)
	done := make(chan struct{})

	go func() {
		if err := monitor.Run(ctx, events); err != nil && ctx.Err() == nil {
			logErrorf("device monitor stopped: %v", err)
		}
	}()
	go func() {
		defer close(done)
		for ev := range events {
			fn(ev.Action == hotplug.ActionAdd, ev.Path)
		}
	}()

	n.monitor = monitor
	n.cancel = cancel
	n.done = done
	return nil
}

// stop tears the monitor down and waits until the last callback returns.
func (n *winNotifier) stop() {
	n.cancel()
	n.monitor.Close()
	<-n.done
}
