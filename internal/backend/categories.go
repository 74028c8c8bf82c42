package backend

import (
	"context"
	"net/http"
	"net/url"

	"megacitycab/internal/models"
)

func (c *Client) Categories(ctx context.Context, token string) ([]models.Category, error) {
	var categories []models.Category
	if err := c.getJSON(ctx, "/auth/allcategory", token, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) AddCategory(ctx context.Context, token string, category *models.Category) (*models.Category, error) {
	var created models.Category
	if err := c.sendJSON(ctx, http.MethodPost, "/admin/addcategory", token, category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCategory(ctx context.Context, token, id string, category *models.Category) (*models.Category, error) {
	var updated models.Category
	if err := c.sendJSON(ctx, http.MethodPut, "/admin/updatecategory/"+url.PathEscape(id), token, category, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCategory(ctx context.Context, token, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/admin/deletecategory/"+url.PathEscape(id), token, nil, nil)
}
