package qrcode

import (
	"net/url"
	"strings"

	"foodaid/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service encoding tracking URLs under baseURL.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// TrackingURL joins the base URL and the escaped tracking number.
func (s *qrcodeService) TrackingURL(trackingNumber string) string {
	return s.baseURL + "/" + url.PathEscape(trackingNumber)
}

// GenerateTrackingQR encodes the tracking URL as a PNG.
func (s *qrcodeService) GenerateTrackingQR(trackingNumber string) ([]byte, error) {
	qrCode, err := qrcode.New(s.TrackingURL(trackingNumber), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
