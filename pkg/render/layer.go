package render

import "image"

// Canvas dimensions for vertical (9:16) output. Every layer position is
// expressed in this coordinate space.
const (
	CanvasWidth  = 1080
	CanvasHeight = 1920
)

// FrameFunc produces a layer's pixels for a given timeline position in
// seconds. It must be a pure function of t.
type FrameFunc func(t float64) image.Image

// Layer is a positioned, time-scoped pixel source composited over the base
// video. A layer carries either a static Image (caption chips) or a Frame
// function (the progress overlay); Frame wins when both are set.
type Layer struct {
	Image image.Image
	Frame FrameFunc

	// X, Y is the top-left corner in canvas coordinates.
	X, Y int

	// Start and End bound the visible window [Start, End). Ignored when
	// Always is set.
	Start, End float64
	Always     bool
}

// VisibleAt reports whether the layer contributes to the frame at time t.
// A window with Start >= End is never visible.
func (l Layer) VisibleAt(t float64) bool {
	if l.Always {
		return true
	}
	return l.Start <= t && t < l.End
}

// contentAt returns the layer's pixels for time t.
func (l Layer) contentAt(t float64) image.Image {
	if l.Frame != nil {
		return l.Frame(t)
	}
	return l.Image
}
