package backend

import (
	"context"
	"net/http"
	"net/url"

	"megacitycab/internal/models"
)

type customerEnvelope struct {
	Data    *models.Customer `json:"data"`
	Message string           `json:"message,omitempty"`
}

func (c *Client) Customer(ctx context.Context, token, id string) (*models.Customer, error) {
	var env customerEnvelope
	if err := c.getJSON(ctx, "/customerprofile/"+url.PathEscape(id), token, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return &models.Customer{}, nil
	}
	return env.Data, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, token, id string, update *models.CustomerUpdate) (*models.Customer, error) {
	var env customerEnvelope
	if err := c.sendJSON(ctx, http.MethodPut, "/customerprofile/"+url.PathEscape(id), token, update, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return &models.Customer{
			FirstName: update.FirstName,
			LastName:  update.LastName,
			Email:     update.Email,
			Phone:     update.Phone,
			Address:   update.Address,
		}, nil
	}
	return env.Data, nil
}
