package utils

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"

	_ "image/gif"

	"github.com/nfnt/resize"
)

var (
	ErrUnsupportedImage = errors.New("only JPEG, PNG and GIF images are allowed")
	ErrImageTooLarge    = errors.New("image must be smaller than 10MB")
)

type ImageDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DetectImageType sniffs the content type from the leading bytes.
func DetectImageType(data []byte) string {
	return http.DetectContentType(data)
}

func GetImageDimensions(data []byte) (*ImageDimensions, error) {
	config, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &ImageDimensions{Width: config.Width, Height: config.Height}, nil
}

// FitWithin scales width x height down to fit maxWidth x maxHeight keeping the
// aspect ratio. Sizes that already fit are returned unchanged.
func FitWithin(width, height, maxWidth, maxHeight uint) (uint, uint) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	widthRatio := float64(maxWidth) / float64(width)
	heightRatio := float64(maxHeight) / float64(height)

	if widthRatio < heightRatio {
		return maxWidth, uint(float64(height) * widthRatio)
	}
	return uint(float64(width) * heightRatio), maxHeight
}

// ResizeImage downscales data when it exceeds the bounds. GIFs are returned
// as-is since re-encoding would drop animation frames.
func ResizeImage(data []byte, contentType string, maxWidth, maxHeight uint, quality int) ([]byte, error) {
	if contentType == "image/gif" || maxWidth == 0 || maxHeight == 0 {
		return data, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := uint(bounds.Dx()), uint(bounds.Dy())
	newWidth, newHeight := FitWithin(width, height, maxWidth, maxHeight)
	if newWidth == width && newHeight == height {
		return data, nil
	}

	resized := resize.Resize(newWidth, newHeight, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := EncodeImage(&buf, resized, format, quality); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func EncodeImage(buf *bytes.Buffer, img image.Image, format string, quality int) error {
	switch format {
	case "jpeg", "jpg":
		return jpeg.Encode(buf, img, &jpeg.Options{Quality: quality})
	case "png":
		return png.Encode(buf, img)
	default:
		return ErrUnsupportedImage
	}
}
