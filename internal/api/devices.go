package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/allanhanan/duvc-ctl-sub002/duvc"
	"github.com/allanhanan/duvc-ctl-sub002/internal/api/models"
	"github.com/allanhanan/duvc-ctl-sub002/internal/events"
)

// DeviceIDInput carries the device path parameter.
type DeviceIDInput struct {
	DeviceID string `path:"device_id" example:"XFxcP1x1c2IjdmlkXzA0NmQ" doc:"Stable URL-safe device identifier"`
}

// PropertyPathInput addresses one property of one device.
type PropertyPathInput struct {
	DeviceIDInput
	Domain   string `path:"domain" enum:"cam,vid" example:"cam" doc:"Property domain: cam for motion control, vid for image processing"`
	Property string `path:"property" example:"Zoom" doc:"Property name, matched case-insensitively"`
}

// PropertySetInput combines the property path with the write body.
type PropertySetInput struct {
	PropertyPathInput
	Body models.PropertySetBody
}

// resolveDevice decodes the URL token and matches it against the current
// enumeration.
func (s *Server) resolveDevice(ctx context.Context, token string) (duvc.Device, error) {
	id, err := duvc.DecodeDeviceID(token)
	if err != nil {
		return duvc.Device{}, mapCoreError(err)
	}
	dev, err := s.cameras.Find(ctx, id)
	if err != nil {
		return duvc.Device{}, mapCoreError(err)
	}
	return dev, nil
}

// parseProperty resolves the domain and name path segments to a property.
// Unknown names are a 404: the resource does not exist on any device.
func parseProperty(domain, name string) (duvc.Property, error) {
	if domain == "cam" {
		prop, err := duvc.ParseCamProp(name)
		if err != nil {
			return nil, huma.Error404NotFound("Unknown camera property: " + name)
		}
		return prop, nil
	}
	prop, err := duvc.ParseVidProp(name)
	if err != nil {
		return nil, huma.Error404NotFound("Unknown video property: " + name)
	}
	return prop, nil
}

// deviceToSummary converts a core device to its API representation.
func deviceToSummary(dev duvc.Device, connected bool) models.DeviceSummary {
	return models.DeviceSummary{
		DeviceID:   duvc.EncodeDeviceID(dev.ID()),
		DeviceName: dev.Name,
		DevicePath: dev.Path,
		Connected:  connected,
	}
}

// rangeToInfo converts a core range to its API representation.
func rangeToInfo(r duvc.PropRange) *models.PropertyRangeInfo {
	return &models.PropertyRangeInfo{
		Min:         r.Min,
		Max:         r.Max,
		Step:        r.Step,
		Default:     r.Default,
		DefaultMode: r.DefaultMode.String(),
	}
}

// capabilityEntries converts one family's probe results in declaration
// order.
func capabilityEntries[P duvc.Property](props []P, lookup func(P) (duvc.PropertyCapability, bool)) []models.CapabilityEntry {
	entries := make([]models.CapabilityEntry, 0, len(props))
	for _, prop := range props {
		cap, ok := lookup(prop)
		entry := models.CapabilityEntry{
			Property:  prop.String(),
			Supported: ok && cap.Supported,
		}
		if entry.Supported {
			entry.Range = rangeToInfo(cap.Range)
			entry.Current = &models.PropertyValueInfo{
				Value: cap.Current.Value,
				Mode:  cap.Current.Mode.String(),
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// publishPropertyWrite notifies SSE subscribers of a successful write.
func (s *Server) publishPropertyWrite(deviceID, domain, property string, setting duvc.PropSetting) {
	if s.eventBus == nil {
		return
	}
	s.eventBus.Publish(events.PropertyWriteEvent{
		DeviceID:  deviceID,
		Domain:    domain,
		Property:  property,
		Value:     setting.Value,
		Mode:      setting.Mode.String(),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// registerDeviceRoutes registers device enumeration and property endpoints.
func (s *Server) registerDeviceRoutes() {
	// List all devices
	huma.Register(s.api, huma.Operation{
		OperationID: "list-devices",
		Method:      http.MethodGet,
		Path:        "/api/devices",
		Summary:     "List Devices",
		Description: "List all camera devices currently present",
		Tags:        []string{"devices"},
		Security:    withAuth(),
		Errors:      []int{401, 500, 501},
	}, func(ctx context.Context, input *struct{}) (*models.DeviceListResponse, error) {
		devices, err := s.cameras.List(ctx)
		if err != nil {
			return nil, mapCoreError(err)
		}

		summaries := make([]models.DeviceSummary, len(devices))
		for i, dev := range devices {
			// Enumeration just returned the device, so it is present.
			summaries[i] = deviceToSummary(dev, true)
		}

		return &models.DeviceListResponse{
			Body: models.DeviceListData{
				Devices: summaries,
				Count:   len(summaries),
			},
		}, nil
	})

	// Get one device with a fresh presence check
	huma.Register(s.api, huma.Operation{
		OperationID: "get-device",
		Method:      http.MethodGet,
		Path:        "/api/devices/{device_id}",
		Summary:     "Device Detail",
		Description: "Get one device with a fresh presence check",
		Tags:        []string{"devices"},
		Security:    withAuth(),
		Errors:      []int{400, 401, 404, 500, 501},
	}, func(ctx context.Context, input *DeviceIDInput) (*models.DeviceDetailResponse, error) {
		dev, err := s.resolveDevice(ctx, input.DeviceID)
		if err != nil {
			return nil, err
		}

		connected, err := s.cameras.IsConnected(ctx, dev)
		if err != nil {
			return nil, mapCoreError(err)
		}

		return &models.DeviceDetailResponse{Body: deviceToSummary(dev, connected)}, nil
	})

	// Scan all properties of both families
	huma.Register(s.api, huma.Operation{
		OperationID: "device-capabilities",
		Method:      http.MethodGet,
		Path:        "/api/devices/{device_id}/capabilities",
		Summary:     "Capabilities",
		Description: "Probe every camera and video property and report support, ranges, and current values",
		Tags:        []string{"devices"},
		Security:    withAuth(),
		Errors:      []int{400, 401, 404, 500, 501},
	}, func(ctx context.Context, input *DeviceIDInput) (*models.CapabilitiesResponse, error) {
		dev, err := s.resolveDevice(ctx, input.DeviceID)
		if err != nil {
			return nil, err
		}

		caps, err := s.cameras.Capabilities(ctx, dev)
		if err != nil {
			return nil, mapCoreError(err)
		}

		return &models.CapabilitiesResponse{
			Body: models.CapabilitiesData{
				DeviceID: input.DeviceID,
				Camera:   capabilityEntries(duvc.CamProps(), caps.Camera),
				Video:    capabilityEntries(duvc.VidProps(), caps.Video),
			},
		}, nil
	})

	// Read one property
	huma.Register(s.api, huma.Operation{
		OperationID: "get-property",
		Method:      http.MethodGet,
		Path:        "/api/devices/{device_id}/props/{domain}/{property}",
		Summary:     "Get Property",
		Description: "Read one property's current value and control mode",
		Tags:        []string{"properties"},
		Security:    withAuth(),
		Errors:      []int{400, 401, 404, 500, 501},
	}, func(ctx context.Context, input *PropertyPathInput) (*models.PropertyValueResponse, error) {
		dev, err := s.resolveDevice(ctx, input.DeviceID)
		if err != nil {
			return nil, err
		}

		prop, err := parseProperty(input.Domain, input.Property)
		if err != nil {
			return nil, err
		}

		setting, err := s.cameras.GetProperty(ctx, dev, prop)
		if err != nil {
			return nil, mapCoreError(err)
		}

		return &models.PropertyValueResponse{
			Body: models.PropertyValueData{
				DeviceID: input.DeviceID,
				Domain:   input.Domain,
				Property: prop.String(),
				Value:    setting.Value,
				Mode:     setting.Mode.String(),
			},
		}, nil
	})

	// Read one property's range
	huma.Register(s.api, huma.Operation{
		OperationID: "get-property-range",
		Method:      http.MethodGet,
		Path:        "/api/devices/{device_id}/props/{domain}/{property}/range",
		Summary:     "Get Property Range",
		Description: "Read the accepted value range and defaults for one property",
		Tags:        []string{"properties"},
		Security:    withAuth(),
		Errors:      []int{400, 401, 404, 500, 501},
	}, func(ctx context.Context, input *PropertyPathInput) (*models.PropertyRangeResponse, error) {
		dev, err := s.resolveDevice(ctx, input.DeviceID)
		if err != nil {
			return nil, err
		}

		prop, err := parseProperty(input.Domain, input.Property)
		if err != nil {
			return nil, err
		}

		r, err := s.cameras.GetPropertyRange(ctx, dev, prop)
		if err != nil {
			return nil, mapCoreError(err)
		}

		return &models.PropertyRangeResponse{
			Body: models.PropertyRangeData{
				DeviceID:    input.DeviceID,
				Domain:      input.Domain,
				Property:    prop.String(),
				Min:         r.Min,
				Max:         r.Max,
				Step:        r.Step,
				Default:     r.Default,
				DefaultMode: r.DefaultMode.String(),
			},
		}, nil
	})

	// Write one property
	huma.Register(s.api, huma.Operation{
		OperationID: "set-property",
		Method:      http.MethodPut,
		Path:        "/api/devices/{device_id}/props/{domain}/{property}",
		Summary:     "Set Property",
		Description: "Write one property's value and control mode. With clamp set, out-of-range values snap to the nearest valid value.",
		Tags:        []string{"properties"},
		Security:    withAuth(),
		Errors:      []int{400, 401, 404, 409, 422, 500, 501},
	}, func(ctx context.Context, input *PropertySetInput) (*models.PropertyValueResponse, error) {
		dev, err := s.resolveDevice(ctx, input.DeviceID)
		if err != nil {
			return nil, err
		}

		prop, err := parseProperty(input.Domain, input.Property)
		if err != nil {
			return nil, err
		}

		setting := duvc.PropSetting{Value: input.Body.Value, Mode: duvc.CamModeManual}
		if input.Body.Mode != "" {
			mode, err := duvc.ParseCamMode(input.Body.Mode)
			if err != nil {
				return nil, mapCoreError(err)
			}
			setting.Mode = mode
		}

		if input.Body.Clamp {
			r, err := s.cameras.GetPropertyRange(ctx, dev, prop)
			if err != nil {
				return nil, mapCoreError(err)
			}
			setting.Value = r.Clamp(setting.Value)
		}

		if err := s.cameras.SetProperty(ctx, dev, prop, setting); err != nil {
			return nil, mapCoreError(err)
		}

		s.publishPropertyWrite(input.DeviceID, input.Domain, prop.String(), setting)

		return &models.PropertyValueResponse{
			Body: models.PropertyValueData{
				DeviceID: input.DeviceID,
				Domain:   input.Domain,
				Property: prop.String(),
				Value:    setting.Value,
				Mode:     setting.Mode.String(),
			},
		}, nil
	})
}

// mapCoreError converts duvc errors to Huma HTTP errors.
func mapCoreError(err error) error {
	var coreErr *duvc.Error
	if errors.As(err, &coreErr) {
		switch coreErr.Code {
		case duvc.ErrDeviceNotFound:
			return huma.Error404NotFound(coreErr.Message)
		case duvc.ErrPropertyNotSupported:
			return huma.Error404NotFound(coreErr.Message)
		case duvc.ErrInvalidValue:
			return huma.Error422UnprocessableEntity(coreErr.Message)
		case duvc.ErrInvalidArgument:
			return huma.Error400BadRequest(coreErr.Message)
		case duvc.ErrDeviceBusy:
			return huma.Error409Conflict(coreErr.Message)
		case duvc.ErrPermissionDenied:
			return huma.Error403Forbidden(coreErr.Message)
		case duvc.ErrNotImplemented:
			return huma.Error501NotImplemented(coreErr.Message)
		default:
			return huma.Error500InternalServerError(coreErr.Message)
		}
	}
	return huma.Error500InternalServerError(err.Error())
}
