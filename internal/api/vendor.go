package api

import (
	"context"
	"encoding/hex"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/allanhanan/duvc-ctl-sub002/duvc"
	"github.com/allanhanan/duvc-ctl-sub002/internal/api/models"
)

// VendorPathInput addresses one vendor property of one device.
type VendorPathInput struct {
	DeviceIDInput
	PropertySet string `path:"property_set" example:"49e40325-f9ba-11d6-94b5-00b0d0c14c3b" doc:"Vendor property set GUID"`
	PropertyID  uint32 `path:"property_id" example:"2" doc:"Property identifier within the set"`
}

// VendorSetInput combines the vendor path with the write body.
type VendorSetInput struct {
	VendorPathInput
	Body models.VendorSetBody
}

// registerVendorRoutes registers raw vendor property endpoints. Payloads
// are opaque driver-defined bytes and cross the API hex-encoded.
func (s *Server) registerVendorRoutes() {
	// Query get/set support
	huma.Register(s.api, huma.Operation{
		OperationID: "vendor-support",
		Method:      http.MethodGet,
		Path:        "/api/devices/{device_id}/vendor/{property_set}/{property_id}/support",
		Summary:     "Vendor Property Support",
		Description: "Query whether the device supports reading and writing one vendor property",
		Tags:        []string{"vendor"},
		Security:    withAuth(),
		Errors:      []int{400, 401, 404, 500, 501},
	}, func(ctx context.Context, input *VendorPathInput) (*models.VendorSupportResponse, error) {
		dev, set, err := s.resolveVendorTarget(ctx, input)
		if err != nil {
			return nil, err
		}

		support, err := s.cameras.VendorQuery(ctx, dev, set, input.PropertyID)
		if err != nil {
			return nil, mapCoreError(err)
		}

		return &models.VendorSupportResponse{
			Body: models.VendorSupportData{
				DeviceID:    input.DeviceID,
				PropertySet: set.String(),
				PropertyID:  input.PropertyID,
				CanGet:      support.CanGet(),
				CanSet:      support.CanSet(),
			},
		}, nil
	})

	// Read a vendor property payload
	huma.Register(s.api, huma.Operation{
		OperationID: "vendor-get",
		Method:      http.MethodGet,
		Path:        "/api/devices/{device_id}/vendor/{property_set}/{property_id}",
		Summary:     "Get Vendor Property",
		Description: "Read one vendor property's raw payload, hex-encoded",
		Tags:        []string{"vendor"},
		Security:    withAuth(),
		Errors:      []int{400, 401, 404, 500, 501},
	}, func(ctx context.Context, input *VendorPathInput) (*models.VendorValueResponse, error) {
		dev, set, err := s.resolveVendorTarget(ctx, input)
		if err != nil {
			return nil, err
		}

		data, err := s.cameras.VendorGet(ctx, dev, set, input.PropertyID)
		if err != nil {
			return nil, mapCoreError(err)
		}

		return &models.VendorValueResponse{
			Body: models.VendorValueData{
				DeviceID:    input.DeviceID,
				PropertySet: set.String(),
				PropertyID:  input.PropertyID,
				Data:        hex.EncodeToString(data),
				Size:        len(data),
			},
		}, nil
	})

	// Write a vendor property payload
	huma.Register(s.api, huma.Operation{
		OperationID: "vendor-set",
		Method:      http.MethodPut,
		Path:        "/api/devices/{device_id}/vendor/{property_set}/{property_id}",
		Summary:     "Set Vendor Property",
		Description: "Write one vendor property's raw payload, hex-encoded",
		Tags:        []string{"vendor"},
		Security:    withAuth(),
		Errors:      []int{400, 401, 404, 409, 422, 500, 501},
	}, func(ctx context.Context, input *VendorSetInput) (*models.VendorWriteResponse, error) {
		dev, set, err := s.resolveVendorTarget(ctx, &input.VendorPathInput)
		if err != nil {
			return nil, err
		}

		data, err := hex.DecodeString(input.Body.Data)
		if err != nil {
			return nil, huma.Error400BadRequest("Payload is not valid hex", err)
		}

		if err := s.cameras.VendorSet(ctx, dev, set, input.PropertyID, data); err != nil {
			return nil, mapCoreError(err)
		}

		return &models.VendorWriteResponse{
			Body: models.VendorWriteData{
				DeviceID:    input.DeviceID,
				PropertySet: set.String(),
				PropertyID:  input.PropertyID,
				Size:        len(data),
			},
		}, nil
	})
}

// resolveVendorTarget resolves the device token and property set GUID from
// a vendor route.
func (s *Server) resolveVendorTarget(ctx context.Context, input *VendorPathInput) (duvc.Device, duvc.GUID, error) {
	dev, err := s.resolveDevice(ctx, input.DeviceID)
	if err != nil {
		return duvc.Device{}, duvc.GUID{}, err
	}

	set, err := duvc.ParseGUID(input.PropertySet)
	if err != nil {
		return duvc.Device{}, duvc.GUID{}, mapCoreError(err)
	}

	return dev, set, nil
}
