package qrcode

import (
	"strings"

	"canteen/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const canteenPathSegment = "/canteens/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance.
// The encoded content is <baseURL>/canteens/<id>.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
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
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateCanteenQR generates a PNG QR code pointing at the canteen
func (s *qrcodeService) GenerateCanteenQR(canteenID string) ([]byte, error) {
	qrCode, err := qrcode.New(s.canteenLink(canteenID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseCanteenQR extracts the canteen id from a scanned link
func (s *qrcodeService) ParseCanteenQR(qrData string) (string, error) {
	idx := strings.LastIndex(qrData, canteenPathSegment)
	if idx < 0 {
		return "", errors.Errorf("not a canteen link: %q", qrData)
	}

	if s.baseURL != "" && qrData[:idx] != s.baseURL {
		return "", errors.Errorf("unexpected QR code origin: %q", qrData[:idx])
	}

	canteenID := qrData[idx+len(canteenPathSegment):]
	if !primitive.IsValidObjectID(canteenID) {
		return "", errors.Errorf("invalid canteen id: %q", canteenID)
	}

	return canteenID, nil
}

func (s *qrcodeService) canteenLink(canteenID string) string {
	return s.baseURL + canteenPathSegment + canteenID
}
