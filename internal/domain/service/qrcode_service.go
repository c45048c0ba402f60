package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateLoginQR renders the magic-link consume URL as a PNG QR code so
	// a second device can scan it to log in.
	GenerateLoginQR(consumeURL string) ([]byte, error)
}
