package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 25.0, RoundCurrency(25.004))
	assert.Equal(t, 10.13, RoundCurrency(10.126))
	assert.Equal(t, "Rs. 25.00", FormatCurrency(25, "LKR"))
}

func TestIsTenDigitPhone(t *testing.T) {
	assert.True(t, IsTenDigitPhone("0771234567"))
	assert.False(t, IsTenDigitPhone("077123456"))
	assert.False(t, IsTenDigitPhone("07712345678"))
	assert.False(t, IsTenDigitPhone("077-123456"))
}

func TestParsePickup(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Colombo")
	require.NoError(t, err)

	got, err := ParsePickup("2026-03-01", "09:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 9, 30, 0, 0, loc), got)

	_, err = ParsePickup("01/03/2026", "09:30", loc)
	assert.Error(t, err)
}

func TestStringToIntFallsBackToZero(t *testing.T) {
	assert.Equal(t, 4, StringToInt(" 4 "))
	assert.Equal(t, 0, StringToInt("four"))
}

func TestFitWithin(t *testing.T) {
	w, h := FitWithin(800, 600, 1600, 1600)
	assert.Equal(t, []uint{800, 600}, []uint{w, h})

	w, h = FitWithin(3200, 1600, 1600, 1600)
	assert.Equal(t, []uint{1600, 800}, []uint{w, h})

	w, h = FitWithin(1000, 4000, 1600, 1600)
	assert.Equal(t, []uint{400, 1600}, []uint{w, h})
}

func TestResizeImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		img.Set(x, 5, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	out, err := ResizeImage(buf.Bytes(), "image/png", 10, 10, 85)
	require.NoError(t, err)

	dims, err := GetImageDimensions(out)
	require.NoError(t, err)
	assert.Equal(t, 10, dims.Width)
	assert.Equal(t, 5, dims.Height)
	assert.Equal(t, "image/png", DetectImageType(out))

	same, err := ResizeImage(buf.Bytes(), "image/png", 100, 100, 85)
	require.NoError(t, err)
	assert.Equal(t, buf.Bytes(), same)
}
