// Package metrics exposes Prometheus metrics for camera control operations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	devicesPresent = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "duvc",
		Subsystem: "devices",
		Name:      "present",
		Help:      "Number of camera devices currently enumerable on the system",
	})

	propertyOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "duvc",
		Subsystem: "property",
		Name:      "operations_total",
		Help:      "Property operations by kind, domain, and outcome",
	}, []string{"op", "domain", "outcome"})

	propertyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "duvc",
		Subsystem: "property",
		Name:      "operation_duration_seconds",
		Help:      "Latency of property operations against the device",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"op", "domain"})

	hotplugEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "duvc",
		Subsystem: "hotplug",
		Name:      "events_total",
		Help:      "Device arrival and removal notifications by action",
	}, []string{"action"})

	vendorOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "duvc",
		Subsystem: "vendor",
		Name:      "operations_total",
		Help:      "Vendor property operations by kind and outcome",
	}, []string{"op", "outcome"})
)

// SetDevicesPresent updates the device gauge after an enumeration pass.
func SetDevicesPresent(count int) {
	devicesPresent.Set(float64(count))
}

// ObservePropertyOp records one property operation. op is one of
// "get", "set", or "range"; domain is "cam" or "vid".
func ObservePropertyOp(op, domain string, elapsed time.Duration, err error) {
	propertyOps.WithLabelValues(op, domain, outcome(err)).Inc()
	propertyLatency.WithLabelValues(op, domain).Observe(elapsed.Seconds())
}

// ObserveVendorOp records one vendor property operation. op is one of
// "get", "set", or "query".
func ObserveVendorOp(op string, err error) {
	vendorOps.WithLabelValues(op, outcome(err)).Inc()
}

// RecordHotplug counts a device change notification. action is
// "added" or "removed".
func RecordHotplug(action string) {
	hotplugEvents.WithLabelValues(action).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
