// Package cameras is the service layer between the HTTP API and the core
// duvc package. Handlers depend on the Service interface so tests can
// substitute a fake without real hardware.
package cameras

import (
	"context"
	"log/slog"
	"time"

	"github.com/allanhanan/duvc-ctl-sub002/duvc"
	"github.com/allanhanan/duvc-ctl-sub002/internal/logging"
	"github.com/allanhanan/duvc-ctl-sub002/internal/metrics"
)

// Service defines the camera control operations the API server consumes.
type Service interface {
	List(ctx context.Context) ([]duvc.Device, error)
	Find(ctx context.Context, id string) (duvc.Device, error)
	IsConnected(ctx context.Context, dev duvc.Device) (bool, error)
	GetProperty(ctx context.Context, dev duvc.Device, prop duvc.Property) (duvc.PropSetting, error)
	GetPropertyRange(ctx context.Context, dev duvc.Device, prop duvc.Property) (duvc.PropRange, error)
	SetProperty(ctx context.Context, dev duvc.Device, prop duvc.Property, setting duvc.PropSetting) error
	Capabilities(ctx context.Context, dev duvc.Device) (*duvc.DeviceCapabilities, error)
	VendorQuery(ctx context.Context, dev duvc.Device, set duvc.GUID, id uint32) (duvc.VendorSupport, error)
	VendorGet(ctx context.Context, dev duvc.Device, set duvc.GUID, id uint32) ([]byte, error)
	VendorSet(ctx context.Context, dev duvc.Device, set duvc.GUID, id uint32, data []byte) error
}

// ServiceImpl implements Service directly on the duvc package. Every call
// opens and closes its own device binding; there is no connection cache, so
// a camera released here is immediately available to other processes.
type ServiceImpl struct {
	logger *slog.Logger
}

// NewService creates the default camera service.
func NewService() Service {
	return &ServiceImpl{
		logger: logging.GetLogger("camera"),
	}
}

// List enumerates all cameras currently present.
func (s *ServiceImpl) List(_ context.Context) ([]duvc.Device, error) {
	devices, err := duvc.ListDevices()
	if err != nil {
		s.logger.Error("Device enumeration failed", "error", err)
		return nil, err
	}
	metrics.SetDevicesPresent(len(devices))
	return devices, nil
}

// Find resolves a raw device ID against the current enumeration.
func (s *ServiceImpl) Find(_ context.Context, id string) (duvc.Device, error) {
	return duvc.FindDeviceByID(id)
}

// IsConnected reports whether the device is still present.
func (s *ServiceImpl) IsConnected(_ context.Context, dev duvc.Device) (bool, error) {
	return duvc.IsDeviceConnected(dev)
}

// GetProperty reads one property's current value and mode.
func (s *ServiceImpl) GetProperty(_ context.Context, dev duvc.Device, prop duvc.Property) (duvc.PropSetting, error) {
	start := time.Now()
	setting, err := duvc.Get(dev, prop)
	metrics.ObservePropertyOp("get", domainOf(prop), time.Since(start), err)
	if err != nil {
		s.logger.Debug("Property read failed", "device", dev.Name, "property", prop.String(), "error", err)
		return duvc.PropSetting{}, err
	}
	return setting, nil
}

// GetPropertyRange reads one property's accepted range and defaults.
func (s *ServiceImpl) GetPropertyRange(_ context.Context, dev duvc.Device, prop duvc.Property) (duvc.PropRange, error) {
	start := time.Now()
	r, err := duvc.GetRange(dev, prop)
	metrics.ObservePropertyOp("range", domainOf(prop), time.Since(start), err)
	if err != nil {
		s.logger.Debug("Range read failed", "device", dev.Name, "property", prop.String(), "error", err)
		return duvc.PropRange{}, err
	}
	return r, nil
}

// SetProperty writes one property.
func (s *ServiceImpl) SetProperty(_ context.Context, dev duvc.Device, prop duvc.Property, setting duvc.PropSetting) error {
	start := time.Now()
	err := duvc.Set(dev, prop, setting)
	metrics.ObservePropertyOp("set", domainOf(prop), time.Since(start), err)
	if err != nil {
		s.logger.Warn("Property write failed",
			"device", dev.Name,
			"property", prop.String(),
			"value", setting.Value,
			"mode", setting.Mode.String(),
			"error", err)
		return err
	}
	s.logger.Info("Property written",
		"device", dev.Name,
		"property", prop.String(),
		"value", setting.Value,
		"mode", setting.Mode.String())
	return nil
}

// Capabilities probes every property of both families in one pass.
func (s *ServiceImpl) Capabilities(_ context.Context, dev duvc.Device) (*duvc.DeviceCapabilities, error) {
	start := time.Now()
	caps, err := duvc.GetDeviceCapabilities(dev)
	if err != nil {
		s.logger.Debug("Capability scan failed", "device", dev.Name, "duration", time.Since(start), "error", err)
		return nil, err
	}
	s.logger.Debug("Capability scan complete",
		"device", dev.Name,
		"camera_props", len(caps.SupportedCamProps()),
		"video_props", len(caps.SupportedVidProps()),
		"duration", time.Since(start))
	return caps, nil
}

// VendorQuery reports get/set support for one vendor property.
func (s *ServiceImpl) VendorQuery(_ context.Context, dev duvc.Device, set duvc.GUID, id uint32) (duvc.VendorSupport, error) {
	acc, err := duvc.OpenVendorAccessor(dev)
	if err != nil {
		metrics.ObserveVendorOp("query", err)
		return 0, err
	}
	defer acc.Close()

	support, err := acc.QuerySupport(set, id)
	metrics.ObserveVendorOp("query", err)
	return support, err
}

// VendorGet reads one vendor property's raw payload.
func (s *ServiceImpl) VendorGet(_ context.Context, dev duvc.Device, set duvc.GUID, id uint32) ([]byte, error) {
	acc, err := duvc.OpenVendorAccessor(dev)
	if err != nil {
		metrics.ObserveVendorOp("get", err)
		return nil, err
	}
	defer acc.Close()

	data, err := acc.GetProperty(set, id)
	metrics.ObserveVendorOp("get", err)
	if err != nil {
		s.logger.Debug("Vendor read failed", "device", dev.Name, "set", set.String(), "id", id, "error", err)
		return nil, err
	}
	return data, nil
}

// VendorSet writes one vendor property's raw payload.
func (s *ServiceImpl) VendorSet(_ context.Context, dev duvc.Device, set duvc.GUID, id uint32, data []byte) error {
	acc, err := duvc.OpenVendorAccessor(dev)
	if err != nil {
		metrics.ObserveVendorOp("set", err)
		return err
	}
	defer acc.Close()

	err = acc.SetProperty(set, id, data)
	metrics.ObserveVendorOp("set", err)
	if err != nil {
		s.logger.Warn("Vendor write failed", "device", dev.Name, "set", set.String(), "id", id, "size", len(data), "error", err)
		return err
	}
	s.logger.Info("Vendor property written", "device", dev.Name, "set", set.String(), "id", id, "size", len(data))
	return nil
}

// domainOf returns the metrics label for a property's family.
func domainOf(prop duvc.Property) string {
	if _, ok := prop.(duvc.CamProp); ok {
		return "cam"
	}
	return "vid"
}
