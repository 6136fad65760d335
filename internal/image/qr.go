package imagepkg

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

// GenerateQRPNG returns PNG bytes of a QR code for text, drawn in the site
// palette (accent modules on the banner background).
func GenerateQRPNG(text string, size int) ([]byte, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr encode %q: %w", text, err)
	}
	q.ForegroundColor = Accent
	q.BackgroundColor = BannerBackground
	return q.PNG(size)
}

// GenerateQRImage returns the QR code as an image for further composition.
func GenerateQRImage(text string, size int) (image.Image, error) {
	b, err := GenerateQRPNG(text, size)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(b))
}
