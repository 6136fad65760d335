package imagepkg

import (
	"image"
	"image/color"

	"github.com/youruser/siteassets/internal/fonts"
	"golang.org/x/image/font"
)

// Banner canvas size, the usual Open Graph preview size.
const (
	BannerWidth  = 1200
	BannerHeight = 630
)

const (
	patternStep    = 80
	patternStagger = 40
	accentStrips   = 8
	panelPadding   = 60
)

// PanelRect is the content panel behind the text.
var PanelRect = image.Rect(panelPadding, 150, BannerWidth-panelPadding, BannerHeight-100)

// BottomAccent is the thin line under the footer.
var BottomAccent = image.Rect(100, BannerHeight-20, BannerWidth-100, BannerHeight-16)

// FontRole selects a face from a fonts.Set.
type FontRole int

const (
	TitleFont FontRole = iota
	SubtitleFont
)

func (r FontRole) face(s fonts.Set) font.Face {
	if r == TitleFont {
		return s.Title
	}
	return s.Subtitle
}

// TextLine is one horizontally centred line at a fixed y. Lines do not
// reflow: each Y is absolute, whatever the height of the line above.
type TextLine struct {
	Role  string
	Text  string
	Y     int
	Font  FontRole
	Color color.Color
}

// BannerLines are drawn on the panel, above the tag row.
var BannerLines = []TextLine{
	{Role: "title", Text: "Файлы: missing manual", Y: 200, Font: TitleFont, Color: White},
	{Role: "subtitle", Text: "Полное руководство по файлам и форматам", Y: 310, Font: SubtitleFont, Color: SubtitleColor},
	{Role: "tagline", Text: "От байтов до терабайтов", Y: 360, Font: SubtitleFont, Color: Accent},
}

// FooterLine sits below the panel, after the tag row.
var FooterLine = TextLine{Role: "footer", Text: "fb.lscode.me", Y: BannerHeight - 70, Font: SubtitleFont, Color: SubtitleColor}

// BannerTags are drawn as pills, in this order.
var BannerTags = []string{"JSON", "YAML", "UTF-8", "Linux", "Python", "ZFS"}

// TagRowY is the top of the pill row.
const TagRowY = 440

// BannerTagStyle is the pill geometry of the tag row.
var BannerTagStyle = TagRowStyle{Padding: 40, Spacing: 30, Height: 45, Radius: 8, TextDY: 6}

// bannerFonts ranks whole font sets: Helvetica for both roles, then DejaVu
// bold and regular.
func bannerFonts() []fonts.SetCandidate {
	cands := make([]fonts.SetCandidate, 0, len(fonts.BoldPaths))
	for i := range fonts.BoldPaths {
		if i >= len(fonts.RegularPaths) {
			break
		}
		cands = append(cands, fonts.SetCandidate{
			Title:    fonts.File{Path: fonts.BoldPaths[i], Points: 72},
			Subtitle: fonts.File{Path: fonts.RegularPaths[i], Points: 32},
		})
	}
	return cands
}

// RenderBanner draws the 1200×630 social preview image.
func RenderBanner() *Canvas {
	c := NewCanvas(BannerWidth, BannerHeight, BannerBackground)
	composeBanner(c, fonts.ResolveSet(bannerFonts()...))
	return c
}

func composeBanner(s Surface, fs fonts.Set) {
	drawPattern(s)
	drawAccentBar(s)
	s.Rectangle(PanelRect, PanelColor)
	for _, l := range BannerLines {
		drawLine(s, l, fs)
	}
	drawTags(s, fs.Subtitle)
	drawLine(s, FooterLine, fs)
	s.Rectangle(BottomAccent, Accent)
}

// drawPattern tiles small file glyphs over the background, shifting every
// other row by half a cell. Cells past the right and bottom edges are clipped.
func drawPattern(s Surface) {
	b := s.Bounds()
	for x := 0; x < b.Dx(); x += patternStep {
		for y := 0; y < b.Dy(); y += patternStep {
			o := (y / patternStep) % 2 * patternStagger
			s.OutlineRectangle(image.Rect(x+o+10, y+10, x+o+50, y+60), PatternColor, 2)
			s.Rectangle(image.Rect(x+o+10, y+10, x+o+30, y+20), PatternColor)
		}
	}
}

// accentStrip is one band of the top accent bar.
type accentStrip struct {
	Rect image.Rectangle
	// Alpha is the intended fade. Rectangle fills opaque, so every strip
	// comes out as solid Accent.
	Alpha uint8
}

func accentBar(width int) []accentStrip {
	strips := make([]accentStrip, accentStrips)
	for i := range strips {
		strips[i] = accentStrip{
			Rect:  image.Rect(0, i*2, width, i*2+2),
			Alpha: uint8(255 - i*30),
		}
	}
	return strips
}

func drawAccentBar(s Surface) {
	for _, st := range accentBar(s.Bounds().Dx()) {
		c := Accent
		c.A = st.Alpha
		s.Rectangle(st.Rect, c)
	}
}

func drawLine(s Surface, l TextLine, fs fonts.Set) {
	face := l.Font.face(fs)
	box := s.Measure(l.Text, face)
	s.Text(image.Pt(CenterX(s.Bounds().Dx(), box.Width()), l.Y), l.Text, face, l.Color)
}

func drawTags(s Surface, face font.Face) {
	width := func(t string) int { return s.Measure(t, face).Width() }
	row := LayoutTagRow(BannerTags, width, s.Bounds().Dx(), BannerTagStyle)
	st := BannerTagStyle
	for _, p := range row.Pills {
		s.RoundedRectangle(image.Rect(p.X, TagRowY, p.End(), TagRowY+st.Height), st.Radius, TagColor)
		tx := p.X + floorDiv(p.Width-width(p.Text), 2)
		s.Text(image.Pt(tx, TagRowY+st.TextDY), p.Text, face, Accent)
	}
}
