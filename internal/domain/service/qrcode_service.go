package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateRouteQR renders a PNG QR code pointing at the shared route.
	GenerateRouteQR(routeName string) ([]byte, error)

	// ParseRouteQR extracts the route name from the QR payload.
	ParseRouteQR(qrData string) (string, error)
}
