package caption_test

import (
	"bytes"
	"testing"

	"github.com/AndrewDonelson/caption-studio/pkg/caption"
)

func TestChipSizingMonotonicity(t *testing.T) {
	base := caption.DefaultStyle()
	base.ShadowRadius = 10
	chip := caption.NewRenderer(base).Render("hello world")

	wider := base
	wider.PadX += 8
	if got := caption.NewRenderer(wider).Render("hello world"); got.Width <= chip.Width {
		t.Fatalf("larger PadX did not grow width: %d vs %d", got.Width, chip.Width)
	}

	taller := base
	taller.PadY += 8
	if got := caption.NewRenderer(taller).Render("hello world"); got.Height <= chip.Height {
		t.Fatalf("larger PadY did not grow height: %d vs %d", got.Height, chip.Height)
	}

	shadowier := base
	shadowier.ShadowRadius += 6
	got := caption.NewRenderer(shadowier).Render("hello world")
	if got.Width <= chip.Width || got.Height <= chip.Height {
		t.Fatalf("larger shadow did not grow canvas: %dx%d vs %dx%d",
			got.Width, got.Height, chip.Width, chip.Height)
	}
}

func TestChipZeroShadowExactBoxSize(t *testing.T) {
	style := caption.DefaultStyle()
	style.ShadowRadius = 0
	r := caption.NewRenderer(style)

	withShadow := style
	withShadow.ShadowRadius = 12
	shadowed := caption.NewRenderer(withShadow).Render("hello")

	chip := r.Render("hello")
	if chip.Width != shadowed.Width-2*12 || chip.Height != shadowed.Height-2*12 {
		t.Fatalf("zero-shadow canvas %dx%d should be shadowed canvas minus margins (%dx%d)",
			chip.Width, chip.Height, shadowed.Width, shadowed.Height)
	}
	if chip.Image.Bounds().Dx() != chip.Width || chip.Image.Bounds().Dy() != chip.Height {
		t.Fatal("chip buffer dimensions disagree with reported size")
	}
}

func TestChipDeterministic(t *testing.T) {
	r := caption.NewRenderer(caption.DefaultStyle())

	a := r.Render("same text in, same pixels out")
	b := r.Render("same text in, same pixels out")
	if a.Width != b.Width || a.Height != b.Height {
		t.Fatalf("dimensions differ between identical renders: %dx%d vs %dx%d",
			a.Width, a.Height, b.Width, b.Height)
	}
	if !bytes.Equal(a.Image.Pix, b.Image.Pix) {
		t.Fatal("pixel buffers differ between identical renders")
	}
}

func TestChipMultilineTallerThanSingle(t *testing.T) {
	style := caption.DefaultStyle()
	style.MaxWidth = 200
	r := caption.NewRenderer(style)

	single := r.Render("hi")
	multi := r.Render("this text is definitely long enough to need several wrapped lines")
	if multi.Height <= single.Height {
		t.Fatalf("wrapped chip should be taller: %d vs %d", multi.Height, single.Height)
	}
}

func TestChipEmptyTextStillRenders(t *testing.T) {
	r := caption.NewRenderer(caption.DefaultStyle())

	chip := r.Render("")
	if chip.Width <= 0 || chip.Height <= 0 {
		t.Fatalf("empty text chip has degenerate size %dx%d", chip.Width, chip.Height)
	}
}
