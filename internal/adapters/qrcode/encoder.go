package qrcode

import (
	"fmt"

	goqrcode "github.com/skip2/go-qrcode"

	"galaticketing/internal/domain"
)

// DefaultSize is the PNG edge length in pixels used when callers pass a non-positive size.
const DefaultSize = 300

type encoder struct {
	level goqrcode.RecoveryLevel
}

// NewEncoder returns a QREncoder producing PNG images with medium error correction.
func NewEncoder() domain.QREncoder {
	return &encoder{level: goqrcode.Medium}
}

// PNG encodes content as a QR code PNG of size x size pixels.
func (e *encoder) PNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qr content is empty: %w", domain.ErrInvalidInput)
	}
	if size <= 0 {
		size = DefaultSize
	}
	png, err := goqrcode.Encode(content, e.level, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
