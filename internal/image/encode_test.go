package imagepkg

import (
	"bytes"
	"encoding/binary"
	"image/color"
	"image/png"
	"testing"

	ico "github.com/biessek/golang-ico"
)

func TestEncodeICO(t *testing.T) {
	src := RenderIcon(32).Image()

	var buf bytes.Buffer
	if err := EncodeICO(&buf, src); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	var header [3]uint16
	if err := binary.Read(bytes.NewReader(data[:6]), binary.LittleEndian, &header); err != nil {
		t.Fatal(err)
	}
	if header != [3]uint16{0, 1, 1} {
		t.Fatalf("header = %v", header)
	}
	if data[6] != 32 || data[7] != 32 {
		t.Errorf("entry dims = %d×%d, want 32×32", data[6], data[7])
	}

	img, err := ico.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != src.Bounds() {
		t.Fatalf("decoded bounds %v, want %v", img.Bounds(), src.Bounds())
	}
	got := color.NRGBAModel.Convert(img.At(5, 27)).(color.NRGBA)
	if got != Accent {
		t.Errorf("decoded body pixel = %v, want %v", got, Accent)
	}
}

func TestEncodePNGRoundTripsIcon(t *testing.T) {
	src := RenderIcon(32).Image()
	var buf bytes.Buffer
	if err := EncodePNG(&buf, src); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != src.Bounds() {
		t.Errorf("decoded bounds %v, want %v", img.Bounds(), src.Bounds())
	}
}

func TestGenerateQRImage(t *testing.T) {
	img, err := GenerateQRImage("https://fb.lscode.me", 256)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Dx(); got != 256 {
		t.Errorf("qr width = %d", got)
	}
	// the quiet zone is background
	r, g, b, _ := img.At(0, 0).RGBA()
	if uint8(r>>8) != BannerBackground.R || uint8(g>>8) != BannerBackground.G || uint8(b>>8) != BannerBackground.B {
		t.Errorf("corner = %v, want background", img.At(0, 0))
	}
}
