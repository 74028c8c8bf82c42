package backend

import (
	"context"
	"net/http"

	"megacitycab/internal/models"
)

func (c *Client) CreateBooking(ctx context.Context, token string, req *models.BookingRequest) (*models.Booking, error) {
	var created models.Booking
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/createbooking", token, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
