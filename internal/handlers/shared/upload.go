package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"megacitycab/internal/models"
	"megacitycab/internal/utils"
	"megacitycab/internal/validators"
)

// ReadUpload loads an optional multipart file. A missing field yields nil.
// Parts of maxSize bytes or more are rejected without being buffered; a
// non-positive maxSize falls back to 10MB.
func ReadUpload(c *gin.Context, field string, maxSize int64) (*models.FileUpload, error) {
	if maxSize <= 0 {
		maxSize = utils.MaxImageSize
	}

	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", field, err)
	}
	if header.Size >= maxSize {
		return nil, tooLarge(field, header.Size, maxSize)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", field, err)
	}
	if int64(len(data)) >= maxSize {
		return nil, tooLarge(field, int64(len(data)), maxSize)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return &models.FileUpload{
		FieldName:   field,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// ReadUploads reads each named field, skipping the ones left empty.
func ReadUploads(c *gin.Context, maxSize int64, fields ...string) ([]*models.FileUpload, error) {
	var uploads []*models.FileUpload
	for _, field := range fields {
		upload, err := ReadUpload(c, field, maxSize)
		if err != nil {
			return nil, err
		}
		if upload != nil {
			uploads = append(uploads, upload)
		}
	}
	return uploads, nil
}

func tooLarge(field string, size, maxSize int64) validators.ValidationErrors {
	return validators.ValidationErrors{{
		Field:   field,
		Tag:     "image_size",
		Value:   fmt.Sprintf("%d", size),
		Message: fmt.Sprintf("image must be smaller than %dMB", maxSize/(1024*1024)),
	}}
}
