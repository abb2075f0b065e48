package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "m"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://aid.example.org/track")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_TrackingURL(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://aid.example.org/track/")

	assert.Equal(t, "https://aid.example.org/track/B40-1A2B3C", service.TrackingURL("B40-1A2B3C"))
}

func TestQRCodeService_GenerateTrackingQR(t *testing.T) {
	service := NewQRCodeService(128, "M", "https://aid.example.org/track")

	qrBytes, err := service.GenerateTrackingQR("B40-1A2B3C")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}
