package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Surface is the set of drawing primitives the composers need.
// Rectangles use inclusive corners: r.Max is the last covered pixel.
// Polygon vertices are pixel edges instead, so a polygon from x=4 to x=28
// covers columns 4..27.
type Surface interface {
	Bounds() image.Rectangle
	Polygon(pts []image.Point, c color.Color)
	Rectangle(r image.Rectangle, c color.Color)
	OutlineRectangle(r image.Rectangle, c color.Color, width int)
	RoundedRectangle(r image.Rectangle, radius float64, c color.Color)
	Measure(text string, face font.Face) TextBox
	Text(pt image.Point, text string, face font.Face, c color.Color)
}

// TextBox is the ink bounding box of a string drawn with its line top at
// the origin.
type TextBox struct {
	Left, Top, Right, Bottom int
}

func (b TextBox) Width() int  { return b.Right - b.Left }
func (b TextBox) Height() int { return b.Bottom - b.Top }

// Canvas is a gg-backed Surface.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas creates a w×h canvas filled with bg. Use a transparent bg for
// images that need an alpha channel.
func NewCanvas(w, h int, bg color.Color) *Canvas {
	return &Canvas{dc: gg.NewContextForImage(imaging.New(w, h, bg))}
}

func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.dc.Width(), c.dc.Height())
}

// Polygon fills the path through pts, vertices on pixel edges.
func (c *Canvas) Polygon(pts []image.Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c.dc.NewSubPath()
	for _, p := range pts {
		c.dc.LineTo(float64(p.X), float64(p.Y))
	}
	c.dc.ClosePath()
	c.dc.SetColor(col)
	c.dc.Fill()
}

// Rectangle fills r. The fill is always opaque; any alpha in col is dropped.
func (c *Canvas) Rectangle(r image.Rectangle, col color.Color) {
	c.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y),
		float64(r.Dx()+1), float64(r.Dy()+1))
	c.dc.SetColor(opaque(col))
	c.dc.Fill()
}

// OutlineRectangle strokes a border of the given width inside r. A border
// too wide to leave a hole fills r.
func (c *Canvas) OutlineRectangle(r image.Rectangle, col color.Color, width int) {
	if width <= 0 {
		return
	}
	if 2*width > r.Dx() || 2*width > r.Dy() {
		c.Rectangle(r, col)
		return
	}
	w := width - 1
	c.Rectangle(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w), col)
	c.Rectangle(image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y), col)
	c.Rectangle(image.Rect(r.Min.X, r.Min.Y, r.Min.X+w, r.Max.Y), col)
	c.Rectangle(image.Rect(r.Max.X-w, r.Min.Y, r.Max.X, r.Max.Y), col)
}

func (c *Canvas) RoundedRectangle(r image.Rectangle, radius float64, col color.Color) {
	c.dc.DrawRoundedRectangle(float64(r.Min.X), float64(r.Min.Y),
		float64(r.Dx()+1), float64(r.Dy()+1), radius)
	c.dc.SetColor(col)
	c.dc.Fill()
}

func (c *Canvas) Measure(text string, face font.Face) TextBox {
	return measure(text, face)
}

func (c *Canvas) Text(pt image.Point, text string, face font.Face, col color.Color) {
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	c.dc.DrawString(text, float64(pt.X), float64(pt.Y+face.Metrics().Ascent.Ceil()))
}

// Image returns a copy of the current pixels.
func (c *Canvas) Image() *image.NRGBA {
	return imaging.Clone(c.dc.Image())
}

func measure(text string, face font.Face) TextBox {
	b, _ := font.BoundString(face, text)
	ascent := face.Metrics().Ascent.Ceil()
	return TextBox{
		Left:   b.Min.X.Floor(),
		Top:    ascent + b.Min.Y.Floor(),
		Right:  b.Max.X.Ceil(),
		Bottom: ascent + b.Max.Y.Ceil(),
	}
}

func opaque(col color.Color) color.Color {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	n.A = 0xff
	return n
}
