package backend

import (
	"context"
	"net/http"
	"net/url"

	"megacitycab/internal/models"
)

func (c *Client) Admins(ctx context.Context, token string) ([]models.Admin, error) {
	var admins []models.Admin
	if err := c.getJSON(ctx, "/admin/alladmins", token, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (c *Client) Admin(ctx context.Context, token, id string) (*models.Admin, error) {
	var admin models.Admin
	if err := c.getJSON(ctx, "/admin/"+url.PathEscape(id), token, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (c *Client) UpdateAdmin(ctx context.Context, token, id string, update *models.AdminUpdate) (*models.Admin, error) {
	var admin models.Admin
	if err := c.sendJSON(ctx, http.MethodPut, "/admin/"+url.PathEscape(id), token, update, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (c *Client) DeleteAdmin(ctx context.Context, token, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/admin/"+url.PathEscape(id), token, nil, nil)
}

// UploadAdminPicture returns the stored picture's URL.
func (c *Client) UploadAdminPicture(ctx context.Context, token, id string, upload *models.FileUpload) (string, error) {
	var pictureURL string
	path := "/admin/uploadProfilePicture/" + url.PathEscape(id)
	if err := c.sendMultipart(ctx, http.MethodPost, path, token, []part{filePart("file", upload)}, &pictureURL); err != nil {
		return "", err
	}
	return pictureURL, nil
}
