package service

// QRCodeService defines the interface for canteen QR code generation and parsing
type QRCodeService interface {
	// GenerateCanteenQR renders a PNG QR code linking to the canteen page
	GenerateCanteenQR(canteenID string) ([]byte, error)

	// ParseCanteenQR extracts the canteen id from scanned QR content
	ParseCanteenQR(qrData string) (string, error)
}
