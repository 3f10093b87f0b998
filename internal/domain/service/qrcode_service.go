package service

// QRRenderOptions controls how a payload is drawn.
type QRRenderOptions struct {
	Size                 int
	ForegroundColor      string // #RRGGBB or #RGB
	BackgroundColor      string
	ErrorCorrectionLevel string // L, M, Q or H
	Margin               int    // zero disables the quiet zone
}

// QRCodeService renders QR payloads into images.
type QRCodeService interface {
	// RenderPNG encodes data as a PNG image.
	RenderPNG(data string, opts QRRenderOptions) ([]byte, error)

	// RenderDataURL encodes data as a base64 PNG data URL.
	RenderDataURL(data string, opts QRRenderOptions) (string, error)
}
