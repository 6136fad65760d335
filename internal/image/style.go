package imagepkg

import "image/color"

// Palette shared by the icon and the banner.
var (
	Accent   = color.NRGBA{R: 99, G: 179, B: 237, A: 0xff}
	FoldBlue = color.NRGBA{R: 66, G: 153, B: 225, A: 0xff}
	White    = color.NRGBA{R: 255, G: 255, B: 255, A: 0xff}

	BannerBackground = color.NRGBA{R: 26, G: 32, B: 44, A: 0xff}
	PatternColor     = color.NRGBA{R: 45, G: 55, B: 72, A: 0xff}
	PanelColor       = color.NRGBA{R: 37, G: 47, B: 63, A: 0xff}
	SubtitleColor    = color.NRGBA{R: 160, G: 174, B: 192, A: 0xff}
	TagColor         = color.NRGBA{R: 55, G: 65, B: 81, A: 0xff}
)
