// Package qr renders payment-link QR codes shown at the walk-in desk. Pure
// rendering; no registry state is involved.
package qr

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

const pngSize = 256

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// PaymentPNG encodes the payment link as a PNG QR image.
func (g *Generator) PaymentPNG(link string) ([]byte, error) {
	if link == "" {
		return nil, fmt.Errorf("payment link is not configured")
	}
	return qrcode.Encode(link, qrcode.Medium, pngSize)
}
