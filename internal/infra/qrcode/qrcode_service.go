package qrcode

import (
	"encoding/base64"
	"image/color"
	"strconv"
	"strings"

	"taponn/config"
	"taponn/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 200
	minSize     = 64
	maxSize     = 2048
)

type qrcodeService struct {
	defaultSize  int
	defaultLevel string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, "M"
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			level = cfg.QRCode.ErrorCorrectionLevel
		}
	}

	return &qrcodeService{
		defaultSize:  size,
		defaultLevel: level,
	}
}

// RenderPNG draws data using the given options, falling back to configured defaults.
func (s *qrcodeService) RenderPNG(data string, opts service.QRRenderOptions) ([]byte, error) {
	if data == "" {
		return nil, errors.New("qr payload is empty")
	}

	levelName := opts.ErrorCorrectionLevel
	if levelName == "" {
		levelName = s.defaultLevel
	}

	qrCode, err := qrcode.New(data, recoveryLevel(levelName))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	if opts.ForegroundColor != "" {
		fg, err := parseHexColor(opts.ForegroundColor)
		if err != nil {
			return nil, err
		}
		qrCode.ForegroundColor = fg
	}
	if opts.BackgroundColor != "" {
		bg, err := parseHexColor(opts.BackgroundColor)
		if err != nil {
			return nil, err
		}
		qrCode.BackgroundColor = bg
	}
	qrCode.DisableBorder = opts.Margin == 0

	pngBytes, err := qrCode.PNG(clampSize(opts.Size, s.defaultSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// RenderDataURL returns the PNG as a data URL suitable for an <img> src.
func (s *qrcodeService) RenderDataURL(data string, opts service.QRRenderOptions) (string, error) {
	pngBytes, err := s.RenderPNG(data, opts)
	if err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes), nil
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

func clampSize(size, fallback int) int {
	if size <= 0 {
		size = fallback
	}

	return min(max(size, minSize), maxSize)
}

// parseHexColor accepts #RRGGBB and #RGB.
func parseHexColor(hex string) (color.Color, error) {
	raw := strings.TrimPrefix(hex, "#")
	if len(raw) == 3 {
		raw = string([]byte{raw[0], raw[0], raw[1], raw[1], raw[2], raw[2]})
	}
	if len(raw) != 6 {
		return nil, errors.Errorf("invalid hex color %q", hex)
	}

	value, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex color %q", hex)
	}

	return color.RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xff,
	}, nil
}
