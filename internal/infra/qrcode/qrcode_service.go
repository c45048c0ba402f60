// Package qrcode renders magic-link consume URLs as scannable PNG images.
package qrcode

import (
	"fmt"

	"horizon/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateLoginQR renders the magic-link consume URL as a PNG QR code.
// The URL embeds the raw single-use token, so the image must be treated
// with the same care as the link itself.
func (s *qrcodeService) GenerateLoginQR(consumeURL string) ([]byte, error) {
	if consumeURL == "" {
		return nil, fmt.Errorf("consume URL must not be empty")
	}

	qrCode, err := qrcode.New(consumeURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
