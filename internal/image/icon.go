package imagepkg

import (
	"fmt"
	"image"
	"image/color"

	"github.com/youruser/siteassets/internal/fonts"
	"golang.org/x/image/font"
)

// IconLetter is the glyph drawn on the page.
const IconLetter = "F"

// IconGeometry holds the shape measurements for one icon size. Every length
// is an integer fraction of Size.
type IconGeometry struct {
	Size   int
	Margin int
	Fold   int
}

func NewIconGeometry(size int) IconGeometry {
	return IconGeometry{Size: size, Margin: size / 8, Fold: size / 4}
}

// Body is the page outline with its top-right corner cut off.
func (g IconGeometry) Body() []image.Point {
	s, m, f := g.Size, g.Margin, g.Fold
	return []image.Point{
		{m, m},
		{s - m - f, m},
		{s - m, m + f},
		{s - m, s - m},
		{m, s - m},
	}
}

// FoldTriangle fills the cut corner.
func (g IconGeometry) FoldTriangle() []image.Point {
	s, m, f := g.Size, g.Margin, g.Fold
	return []image.Point{
		{s - m - f, m},
		{s - m - f, m + f},
		{s - m, m + f},
	}
}

// GlyphOrigin centres box on the icon. The size/16 term pushes the glyph
// down; without it the letter sits visibly high on the page.
func (g IconGeometry) GlyphOrigin(box TextBox) image.Point {
	s := g.Size
	return image.Point{
		X: floorDiv(s-box.Width(), 2),
		Y: floorDiv(s-box.Height(), 2) - box.Top + s/16,
	}
}

// GlyphPoints is the requested point size of the letter.
func (g IconGeometry) GlyphPoints() float64 {
	return float64(int(float64(g.Size) * 0.5))
}

// RenderIcon draws the folded-page icon at size×size on a transparent
// background. Sizes as small as 1 are valid; the shapes just degenerate.
func RenderIcon(size int) *Canvas {
	if size <= 0 {
		panic(fmt.Sprintf("imagepkg: icon size must be positive, got %d", size))
	}
	g := NewIconGeometry(size)
	face := fonts.Resolve(fonts.Files(fonts.BoldPaths, g.GlyphPoints())...)
	c := NewCanvas(size, size, color.Transparent)
	composeIcon(c, g, face)
	return c
}

func composeIcon(s Surface, g IconGeometry, face font.Face) {
	s.Polygon(g.Body(), Accent)
	s.Polygon(g.FoldTriangle(), FoldBlue)

	box := s.Measure(IconLetter, face)
	s.Text(g.GlyphOrigin(box), IconLetter, face, White)
}
