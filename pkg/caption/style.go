package caption

import "image/color"

// StyleSpec holds every visual parameter for caption chip rendering.
// It is built once at startup and shared read-only by all renders.
type StyleSpec struct {
	FontPath string  // optional explicit font file; empty uses the fallback chain
	FontSize float64 // pixel size

	TextColor color.RGBA
	BGColor   color.RGBA
	BGAlpha   uint8 // background box opacity, 0-255

	PadX int // horizontal padding between text block and box edge
	PadY int // vertical padding

	ShadowRadius int     // blur margin for the drop shadow; 0 disables it
	CornerRadius float64 // box corner rounding
	LineSpacing  float64 // multiplier on line height, e.g. 1.2

	MaxWidth int // maximum text block width in pixels
}

// DefaultStyle returns the caption style used for 1080x1920 output.
func DefaultStyle() StyleSpec {
	return StyleSpec{
		FontSize:     56,
		TextColor:    color.RGBA{255, 255, 255, 255},
		BGColor:      color.RGBA{16, 16, 16, 255},
		BGAlpha:      200,
		PadX:         36,
		PadY:         24,
		ShadowRadius: 18,
		CornerRadius: 22,
		LineSpacing:  1.25,
		MaxWidth:     880,
	}
}
