package config

// UploadConfig bounds the images accepted by the registration forms before
// they are forwarded to the backend.
type UploadConfig struct {
	MaxImageSize      int64    `yaml:"max_image_size"`
	MaxRequestSize    int64    `yaml:"max_request_size"`
	AllowedImageTypes []string `yaml:"allowed_image_types"`
	MaxImageWidth     uint     `yaml:"max_image_width"`
	MaxImageHeight    uint     `yaml:"max_image_height"`
	JPEGQuality       int      `yaml:"jpeg_quality"`
}

func loadUploadConfig() *UploadConfig {
	return &UploadConfig{
		MaxImageSize:      getEnvAsInt64("UPLOAD_MAX_IMAGE_SIZE", 10*1024*1024),
		MaxRequestSize:    getEnvAsInt64("UPLOAD_MAX_REQUEST_SIZE", 48*1024*1024),
		AllowedImageTypes: getEnvAsSlice("UPLOAD_ALLOWED_IMAGE_TYPES", []string{"image/jpeg", "image/png", "image/gif"}),
		MaxImageWidth:     uint(getEnvAsInt("UPLOAD_MAX_IMAGE_WIDTH", 1600)),
		MaxImageHeight:    uint(getEnvAsInt("UPLOAD_MAX_IMAGE_HEIGHT", 1600)),
		JPEGQuality:       getEnvAsInt("UPLOAD_JPEG_QUALITY", 85),
	}
}
