package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBaseURL   = "http://localhost:8080/api"
	testCanteenID = "64b7f0c2e1a4c3b2a1d0e9f8"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, testBaseURL)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateCanteenQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M", testBaseURL)

		qrBytes, err := service.GenerateCanteenQR(testCanteenID)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(qrBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
	}
}

func TestQRCodeService_ParseCanteenQR(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL+"/")

	tests := []struct {
		name    string
		data    string
		want    string
		wantErr string
	}{
		{name: "valid link", data: testBaseURL + "/canteens/" + testCanteenID, want: testCanteenID},
		{name: "not a canteen link", data: testBaseURL + "/dishes/" + testCanteenID, wantErr: "not a canteen link"},
		{name: "foreign origin", data: "http://evil.example/canteens/" + testCanteenID, wantErr: "unexpected QR code origin"},
		{name: "malformed id", data: testBaseURL + "/canteens/abc", wantErr: "invalid canteen id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseCanteenQR(tt.data)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQRCodeService_LinkRoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M", testBaseURL).(*qrcodeService)

	parsed, err := svc.ParseCanteenQR(svc.canteenLink(testCanteenID))

	require.NoError(t, err)
	assert.Equal(t, testCanteenID, parsed)
}
