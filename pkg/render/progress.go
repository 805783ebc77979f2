package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// trackAlpha is the opacity of the unfilled progress track.
const trackAlpha = 80

// minDuration guards the progress ratio against division by zero.
const minDuration = 0.001

// ProgressBar renders a bottom-anchored playback progress overlay. Frame is
// a pure function of the query time, so frames can be produced at arbitrary
// and out-of-order times.
type ProgressBar struct {
	Width, Height int // canvas dimensions
	BarHeight     int
	Margin        int
	Color         color.RGBA
	Alpha         uint8
	Duration      float64
}

// NewProgressBar builds a progress overlay for the canvas. A non-positive
// duration is clamped to a small epsilon rather than rejected.
func NewProgressBar(canvasW, canvasH int, duration float64, barColor color.RGBA, alpha uint8) *ProgressBar {
	if duration <= 0 {
		duration = minDuration
	}
	return &ProgressBar{
		Width:     canvasW,
		Height:    canvasH,
		BarHeight: 12,
		Margin:    48,
		Color:     barColor,
		Alpha:     alpha,
		Duration:  duration,
	}
}

// Frame returns a full-canvas buffer, transparent except for the bar. The
// filled segment spans (width-2*margin) * clamp(t/duration, 0, 1); t outside
// [0, duration] is clamped, never an error.
func (p *ProgressBar) Frame(t float64) *image.RGBA {
	ratio := t / p.Duration
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	dc := gg.NewContext(p.Width, p.Height)

	trackWidth := float64(p.Width - 2*p.Margin)
	x := float64(p.Margin)
	y := float64(p.Height - p.Margin - p.BarHeight)
	radius := float64(p.BarHeight) / 2

	dc.SetRGBA255(235, 235, 235, trackAlpha)
	dc.DrawRoundedRectangle(x, y, trackWidth, float64(p.BarHeight), radius)
	dc.Fill()

	if filled := trackWidth * ratio; filled > 0 {
		dc.SetRGBA255(int(p.Color.R), int(p.Color.G), int(p.Color.B), int(p.Alpha))
		dc.DrawRoundedRectangle(x, y, filled, float64(p.BarHeight), radius)
		dc.Fill()
	}

	return dc.Image().(*image.RGBA)
}

// Layer wraps the bar as an always-active, full-canvas timeline layer.
func (p *ProgressBar) Layer() Layer {
	return Layer{
		Frame:  func(t float64) image.Image { return p.Frame(t) },
		Always: true,
	}
}
