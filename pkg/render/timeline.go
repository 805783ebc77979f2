package render

import (
	"image"
	"image/draw"
)

// Timeline merges the fitted base video with positioned, time-scoped
// overlay layers. It carries only position and visibility metadata; the
// base frames are supplied per call by the export loop. Construction
// happens once per export and the timeline is read-only afterwards.
type Timeline struct {
	Width  int
	Height int
	layers []Layer
}

// NewTimeline creates a timeline for the given canvas size.
func NewTimeline(w, h int) *Timeline {
	return &Timeline{Width: w, Height: h}
}

// Add appends a layer. Layers composite in the order they were added, so a
// later layer draws on top of an earlier one when both are visible.
func (tl *Timeline) Add(layer Layer) {
	tl.layers = append(tl.layers, layer)
}

// LayerCount returns the number of overlay layers.
func (tl *Timeline) LayerCount() int {
	return len(tl.layers)
}

// Composite renders the output frame for time t: the base frame, then every
// layer whose window contains t, alpha-composited at its precomputed
// position. Layers with degenerate windows contribute nothing.
func (tl *Timeline) Composite(base image.Image, t float64) *image.RGBA {
	bounds := image.Rect(0, 0, tl.Width, tl.Height)
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, base, base.Bounds().Min, draw.Src)

	for _, layer := range tl.layers {
		if !layer.VisibleAt(t) {
			continue
		}
		content := layer.contentAt(t)
		if content == nil {
			continue
		}
		cb := content.Bounds()
		target := image.Rect(layer.X, layer.Y, layer.X+cb.Dx(), layer.Y+cb.Dy())
		draw.Draw(out, target, content, cb.Min, draw.Over)
	}

	return out
}
