package render_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/AndrewDonelson/caption-studio/pkg/render"
)

// solidFrame builds a uniformly colored test frame.
func solidFrame(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestCoverFitDimensionsAndOpacity(t *testing.T) {
	src := solidFrame(640, 360, color.RGBA{200, 40, 40, 255})

	out := render.FitFrame(src, 1080, 1920, render.FitCover)
	if out.Bounds().Dx() != 1080 || out.Bounds().Dy() != 1920 {
		t.Fatalf("cover output is %dx%d, want 1080x1920", out.Bounds().Dx(), out.Bounds().Dy())
	}

	corners := [][2]int{{0, 0}, {1079, 0}, {0, 1919}, {1079, 1919}}
	for _, p := range corners {
		if _, _, _, a := out.At(p[0], p[1]).RGBA(); a != 0xffff {
			t.Fatalf("cover output has transparent pixel at %v", p)
		}
	}
}

func TestBlurFitPreservesCenterPixel(t *testing.T) {
	// Landscape frame with a distinct center color.
	src := solidFrame(640, 360, color.RGBA{10, 10, 200, 255})
	for y := 170; y < 190; y++ {
		for x := 310; x < 330; x++ {
			src.SetRGBA(x, y, color.RGBA{20, 220, 20, 255})
		}
	}

	out := render.FitFrame(src, 1080, 1920, render.FitBlur)
	if out.Bounds().Dx() != 1080 || out.Bounds().Dy() != 1920 {
		t.Fatalf("blur output is %dx%d, want 1080x1920", out.Bounds().Dx(), out.Bounds().Dy())
	}

	r, g, b, _ := out.At(540, 960).RGBA()
	if g>>8 < 150 || r>>8 > 100 || b>>8 > 100 {
		t.Fatalf("canvas center should show the source center color, got rgb(%d,%d,%d)",
			r>>8, g>>8, b>>8)
	}
}

func TestParseFitMode(t *testing.T) {
	if render.ParseFitMode("blur") != render.FitBlur {
		t.Fatal("blur should parse as FitBlur")
	}
	if render.ParseFitMode("cover") != render.FitCover {
		t.Fatal("cover should parse as FitCover")
	}
	if render.ParseFitMode("nonsense") != render.FitCover {
		t.Fatal("unknown mode should default to FitCover")
	}
}

func TestRotatedDims(t *testing.T) {
	cases := []struct {
		rotation       int
		w, h           int
		wantW, wantH   int
	}{
		{0, 640, 360, 640, 360},
		{90, 640, 360, 360, 640},
		{180, 640, 360, 640, 360},
		{270, 640, 360, 360, 640},
		{-90, 640, 360, 360, 640},
	}
	for _, tc := range cases {
		w, h := render.RotatedDims(tc.w, tc.h, tc.rotation)
		if w != tc.wantW || h != tc.wantH {
			t.Fatalf("rotation %d: got %dx%d want %dx%d", tc.rotation, w, h, tc.wantW, tc.wantH)
		}
	}
}

func TestRotateSwapsAxes(t *testing.T) {
	src := solidFrame(40, 20, color.RGBA{1, 2, 3, 255})

	out := render.Rotate(src, 90)
	if out.Bounds().Dx() != 20 || out.Bounds().Dy() != 40 {
		t.Fatalf("rotated frame is %dx%d, want 20x40", out.Bounds().Dx(), out.Bounds().Dy())
	}
	if same := render.Rotate(src, 0); same.Bounds() != src.Bounds() {
		t.Fatal("zero rotation must not change bounds")
	}
}
