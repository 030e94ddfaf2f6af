// Package badge renders check-in codes as QR images for reprinted badges.
package badge

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
	"github.com/stpnv0/AttendanceDesk/internal/domain"
)

const (
	DefaultSize = 256
	MinSize     = 64
	MaxSize     = 1024

	ContentType = "image/png"
)

type Renderer struct {
	level qrcode.RecoveryLevel
}

func NewRenderer() *Renderer {
	return &Renderer{level: qrcode.Medium}
}

// QRCode encodes the code as a size x size PNG. A zero size means DefaultSize.
func (r *Renderer) QRCode(code string, size int) ([]byte, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", domain.ErrValidation)
	}
	if size == 0 {
		size = DefaultSize
	}
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: size must be between %d and %d", domain.ErrValidation, MinSize, MaxSize)
	}

	png, err := qrcode.Encode(code, r.level, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}

	return png, nil
}
