package qrcode

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"trajmatch/config"
	"trajmatch/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const routePayloadType = "route"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// RoutePayload is the JSON encoded in a route share code
type RoutePayload struct {
	Route string `json:"route"`
	Type  string `json:"type"`
	URL   string `json:"url,omitempty"`
}

// NewQRCodeService builds the service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return newQRCodeService(256, "M", "")
	}

	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
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
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateRouteQR renders a PNG whose payload names the route and, when a
// base URL is configured, where to load it from.
func (s *qrcodeService) GenerateRouteQR(routeName string) ([]byte, error) {
	if strings.TrimSpace(routeName) == "" {
		return nil, fmt.Errorf("route name is required")
	}

	payload := RoutePayload{Route: routeName, Type: routePayloadType}
	if s.baseURL != "" {
		payload.URL = s.baseURL + "/" + url.PathEscape(routeName)
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseRouteQR returns the route name carried by a decoded share code.
func (s *qrcodeService) ParseRouteQR(qrData string) (string, error) {
	var payload RoutePayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if payload.Type != routePayloadType {
		return "", fmt.Errorf("invalid QR code type: %s", payload.Type)
	}
	if strings.TrimSpace(payload.Route) == "" {
		return "", fmt.Errorf("QR code carries no route name")
	}

	return payload.Route, nil
}
