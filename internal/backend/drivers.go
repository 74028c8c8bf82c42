package backend

import (
	"context"
	"net/http"
	"net/url"

	"megacitycab/internal/models"
)

func (c *Client) AllDrivers(ctx context.Context, token string) ([]models.Driver, error) {
	var drivers []models.Driver
	if err := c.getJSON(ctx, "/drivers/admin/all", token, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

func (c *Client) PendingDrivers(ctx context.Context, token string) ([]models.Driver, error) {
	var drivers []models.Driver
	if err := c.getJSON(ctx, "/admin/pending-drivers", token, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

func (c *Client) ApproveDriver(ctx context.Context, token, id string) error {
	return c.sendJSON(ctx, http.MethodPut, "/admin/approve-driver/"+url.PathEscape(id), token, nil, nil)
}

func (c *Client) RejectDriver(ctx context.Context, token, id string) error {
	return c.sendJSON(ctx, http.MethodPut, "/admin/reject-driver/"+url.PathEscape(id), token, nil, nil)
}

// ToggleDriverStatus flips a driver between active and blocked and returns
// the new state.
func (c *Client) ToggleDriverStatus(ctx context.Context, token, id string) (*models.Driver, error) {
	var driver models.Driver
	path := "/drivers/" + url.PathEscape(id) + "/toggle-status"
	if err := c.sendJSON(ctx, http.MethodPut, path, token, struct{}{}, &driver); err != nil {
		return nil, err
	}
	return &driver, nil
}

func (c *Client) DeleteDriver(ctx context.Context, token, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/drivers/admin/delete/"+url.PathEscape(id), token, nil, nil)
}

// RegisterDriver is the public sign-up without a vehicle.
func (c *Client) RegisterDriver(ctx context.Context, reg *models.DriverRegistration, images models.DriverImages) (string, error) {
	driver, err := jsonPart("driver", reg)
	if err != nil {
		return "", err
	}
	parts := []part{driver}
	if images.Profile != nil {
		parts = append(parts, filePart("profileImage", images.Profile))
	}
	if images.License != nil {
		parts = append(parts, filePart("licenseImage", images.License))
	}

	var msg string
	if err := c.sendMultipart(ctx, http.MethodPost, "/auth/registerwithoutvehicle", "", parts, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

// AddDriver is the admin variant, which registers the driver with an empty
// vehicle record.
func (c *Client) AddDriver(ctx context.Context, token string, reg *models.DriverRegistration, images models.DriverImages) (string, error) {
	driver, err := jsonPart("driver", reg)
	if err != nil {
		return "", err
	}
	vehicle, err := jsonPart("vehicle", struct{}{})
	if err != nil {
		return "", err
	}
	parts := []part{driver}
	if images.Profile != nil {
		parts = append(parts, filePart("driverImage", images.Profile))
	}
	if images.License != nil {
		parts = append(parts, filePart("licenseImage", images.License))
	}
	parts = append(parts, vehicle)

	var msg string
	if err := c.sendMultipart(ctx, http.MethodPost, "/drivers/auth/register-with-vehicle", token, parts, &msg); err != nil {
		return "", err
	}
	return msg, nil
}
