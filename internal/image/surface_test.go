package imagepkg

import (
	"image"
	"image/color"
	"unicode/utf8"

	"golang.org/x/image/font"
)

type op struct {
	kind  string
	rect  image.Rectangle
	pts   []image.Point
	pt    image.Point
	text  string
	color color.Color
}

// recorder is a Surface that logs every call. Text measures 10px per rune
// and 20px tall, independent of the face.
type recorder struct {
	bounds image.Rectangle
	ops    []op
}

func newRecorder(w, h int) *recorder {
	return &recorder{bounds: image.Rect(0, 0, w, h)}
}

func (r *recorder) Bounds() image.Rectangle { return r.bounds }

func (r *recorder) Polygon(pts []image.Point, c color.Color) {
	r.ops = append(r.ops, op{kind: "polygon", pts: pts, color: c})
}

func (r *recorder) Rectangle(rect image.Rectangle, c color.Color) {
	r.ops = append(r.ops, op{kind: "rect", rect: rect, color: c})
}

func (r *recorder) OutlineRectangle(rect image.Rectangle, c color.Color, width int) {
	r.ops = append(r.ops, op{kind: "outline", rect: rect, color: c})
}

func (r *recorder) RoundedRectangle(rect image.Rectangle, radius float64, c color.Color) {
	r.ops = append(r.ops, op{kind: "rounded", rect: rect, color: c})
}

func (r *recorder) Measure(text string, face font.Face) TextBox {
	return TextBox{Left: 0, Top: 3, Right: 10 * utf8.RuneCountInString(text), Bottom: 23}
}

func (r *recorder) Text(pt image.Point, text string, face font.Face, c color.Color) {
	r.ops = append(r.ops, op{kind: "text", pt: pt, text: text, color: c})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) texts() []op {
	var out []op
	for _, o := range r.ops {
		if o.kind == "text" {
			out = append(out, o)
		}
	}
	return out
}
