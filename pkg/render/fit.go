package render

import (
	"image"

	"github.com/disintegration/imaging"
)

// FitMode selects how an arbitrary-aspect source frame maps onto the fixed
// output canvas.
type FitMode string

const (
	// FitCover scales uniformly to fill the canvas and center-crops the
	// overflow. No empty canvas area, content outside the crop is lost.
	FitCover FitMode = "cover"

	// FitBlur letterboxes the full frame over a blurred, stretched copy of
	// itself. Nothing is cropped and no black bars appear.
	FitBlur FitMode = "blur"
)

// backgroundBlurSigma is the Gaussian sigma for the blur-letterbox fill.
const backgroundBlurSigma = 30

// ParseFitMode maps a user-supplied string to a FitMode, defaulting to
// cover for anything unrecognized.
func ParseFitMode(s string) FitMode {
	if FitMode(s) == FitBlur {
		return FitBlur
	}
	return FitCover
}

// FitFrame maps one source frame onto a w x h canvas using the given mode.
// The output is always exactly w x h and fully opaque.
func FitFrame(src image.Image, w, h int, mode FitMode) *image.NRGBA {
	if mode == FitBlur {
		return blurFit(src, w, h)
	}
	return coverFit(src, w, h)
}

// coverFit scales by max(w/srcW, h/srcH) and center-crops to w x h.
func coverFit(src image.Image, w, h int) *image.NRGBA {
	return imaging.Fill(src, w, h, imaging.Center, imaging.Linear)
}

// blurFit stretches the frame non-uniformly to fill the canvas, blurs it,
// and centers the uniformly scaled-to-fit original on top.
func blurFit(src image.Image, w, h int) *image.NRGBA {
	background := imaging.Blur(imaging.Resize(src, w, h, imaging.Linear), backgroundBlurSigma)
	foreground := imaging.Fit(src, w, h, imaging.Linear)
	return imaging.PasteCenter(background, foreground)
}

// Rotate counter-applies a source rotation flag (degrees, as reported by
// the container metadata) so that downstream width/height reflect the
// visually correct orientation. Unknown values return the frame unchanged.
func Rotate(src image.Image, rotation int) image.Image {
	switch normalizeRotation(rotation) {
	case 90:
		return imaging.Rotate270(src)
	case 180:
		return imaging.Rotate180(src)
	case 270:
		return imaging.Rotate90(src)
	}
	return src
}

// RotatedDims returns the source dimensions after Rotate is applied.
func RotatedDims(w, h, rotation int) (int, int) {
	switch normalizeRotation(rotation) {
	case 90, 270:
		return h, w
	}
	return w, h
}

func normalizeRotation(rotation int) int {
	r := rotation % 360
	if r < 0 {
		r += 360
	}
	return r
}
