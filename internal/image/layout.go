package imagepkg

// floorDiv divides rounding toward negative infinity, so centring a string
// wider than its container still moves it left by the full half-overflow.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// CenterX returns the x that centres something width wide in containerWidth.
func CenterX(containerWidth, width int) int {
	return floorDiv(containerWidth-width, 2)
}

// Pill is one laid-out tag.
type Pill struct {
	Text  string
	X     int
	Width int
}

// End is the last column the pill covers.
func (p Pill) End() int { return p.X + p.Width }

// TagRowStyle fixes the pill geometry of a tag row.
// Padding is added to each label width, Spacing separates pills and TextDY
// offsets the label from the pill top.
type TagRowStyle struct {
	Padding int
	Spacing int
	Height  int
	Radius  float64
	TextDY  int
}

// TagRow is a centred row of pills in input order.
type TagRow struct {
	Start int
	Width int
	Pills []Pill
}

// LayoutTagRow measures every tag, centres the whole row in canvasWidth and
// places the pills left to right.
func LayoutTagRow(tags []string, measure func(string) int, canvasWidth int, style TagRowStyle) TagRow {
	widths := make([]int, len(tags))
	total := 0
	for i, t := range tags {
		widths[i] = measure(t) + style.Padding
		total += widths[i]
	}
	if len(tags) > 1 {
		total += style.Spacing * (len(tags) - 1)
	}

	row := TagRow{Start: CenterX(canvasWidth, total), Width: total}
	x := row.Start
	for i, t := range tags {
		row.Pills = append(row.Pills, Pill{Text: t, X: x, Width: widths[i]})
		x += widths[i] + style.Spacing
	}
	return row
}
