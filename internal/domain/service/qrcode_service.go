package service

// QRCodeService renders tracking numbers as scannable codes.
type QRCodeService interface {
	// GenerateTrackingQR returns a PNG QR code pointing at the public tracking page.
	GenerateTrackingQR(trackingNumber string) ([]byte, error)

	// TrackingURL returns the public tracking URL encoded in the QR code.
	TrackingURL(trackingNumber string) string
}
