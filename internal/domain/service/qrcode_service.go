package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateURLQR encodes an absolute URL as a PNG QR code
	GenerateURLQR(url string) ([]byte, error)
}
