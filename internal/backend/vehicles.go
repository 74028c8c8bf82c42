package backend

import (
	"context"
	"net/http"
	"net/url"

	"megacitycab/internal/models"
)

func (c *Client) ApprovedVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := c.getJSON(ctx, "/auth/approvedvehicles", "", &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (c *Client) AllVehicles(ctx context.Context, token string) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := c.getJSON(ctx, "/auth/getallvehicles", token, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// RegisterVehicle posts the owner's form as multipart text fields plus any
// attached images.
func (c *Client) RegisterVehicle(ctx context.Context, reg *models.VehicleRegistration) (string, error) {
	fields := reg.Fields()
	parts := make([]part, 0, len(fields)+len(reg.Images))
	for _, f := range fields {
		parts = append(parts, textPart(f[0], f[1]))
	}
	for _, img := range reg.Images {
		if img != nil {
			parts = append(parts, filePart(img.FieldName, img))
		}
	}

	var msg string
	if err := c.sendMultipart(ctx, http.MethodPost, "/auth/vehicleregister", "", parts, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

func (c *Client) ApproveVehicle(ctx context.Context, token, id string) error {
	return c.sendJSON(ctx, http.MethodPut, "/admin/approve/"+url.PathEscape(id), token, nil, nil)
}

func (c *Client) RejectVehicle(ctx context.Context, token, id string) error {
	return c.sendJSON(ctx, http.MethodPut, "/admin/reject/"+url.PathEscape(id), token, nil, nil)
}
