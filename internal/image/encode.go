package imagepkg

import (
	"image"
	"io"

	ico "github.com/biessek/golang-ico"
	"github.com/disintegration/imaging"
)

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// EncodeICO writes img as a single-entry Windows icon.
func EncodeICO(w io.Writer, img image.Image) error {
	return ico.Encode(w, img)
}
