package backend

import (
	"context"
	"net/http"

	"megacitycab/internal/models"
)

func (c *Client) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
