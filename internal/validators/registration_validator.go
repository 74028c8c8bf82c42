package validators

import (
	"fmt"

	"megacitycab/internal/models"
	"megacitycab/internal/utils"
)

// ImageRules bounds what an uploaded picture may be.
type ImageRules struct {
	MaxSize      int64
	AllowedTypes []string
}

func DefaultImageRules() ImageRules {
	return ImageRules{MaxSize: utils.MaxImageSize, AllowedTypes: utils.AllowedImageTypes}
}

func ValidateDriverForm(form *models.DriverForm) ValidationErrors {
	return ValidateStruct(form)
}

func ValidateVehicleRegistration(form *models.VehicleRegistration) ValidationErrors {
	return ValidateStruct(form)
}

// ValidateImage checks the sniffed content type and the size. A nil upload is
// accepted since every image on the registration forms is optional.
func ValidateImage(upload *models.FileUpload, rules ImageRules) *ValidationError {
	if upload == nil {
		return nil
	}

	contentType := utils.DetectImageType(upload.Data)
	if !utils.Contains(rules.AllowedTypes, contentType) {
		return &ValidationError{
			Field:   upload.FieldName,
			Tag:     "image_type",
			Value:   contentType,
			Message: utils.ErrUnsupportedImage.Error(),
		}
	}

	if rules.MaxSize > 0 && int64(len(upload.Data)) >= rules.MaxSize {
		return &ValidationError{
			Field:   upload.FieldName,
			Tag:     "image_size",
			Value:   fmt.Sprintf("%d", len(upload.Data)),
			Message: fmt.Sprintf("image must be smaller than %dMB", rules.MaxSize/(1024*1024)),
		}
	}

	return nil
}

func ValidateImages(uploads []*models.FileUpload, rules ImageRules) ValidationErrors {
	var errs ValidationErrors
	for _, upload := range uploads {
		if err := ValidateImage(upload, rules); err != nil {
			errs = append(errs, *err)
		}
	}
	return errs
}
