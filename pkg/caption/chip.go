package caption

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/disintegration/imaging"
)

// Chip is a rendered caption: rounded background box with drop shadow and
// centered, wrapped text, rasterized into its own pixel buffer.
type Chip struct {
	Image  *image.RGBA
	Width  int
	Height int
}

// Renderer rasterizes caption chips for a single style. The style and the
// resolved font face are immutable after construction, so one renderer may
// be shared across goroutines.
type Renderer struct {
	Style StyleSpec
	face  font.Face
}

// NewRenderer resolves the style's font and returns a chip renderer.
func NewRenderer(style StyleSpec) *Renderer {
	return &Renderer{
		Style: style,
		face:  ResolveFont(style.FontPath, style.FontSize),
	}
}

// shadowAlpha is the fill opacity of the drop shadow before blurring.
const shadowAlpha = 140

// Render rasterizes text into a chip. The output is a pure function of the
// text and the renderer's style: no shared drawing state survives the call.
//
// Sizing: the text block is wrapped against Style.MaxWidth; every line uses
// the first line's height. The background box adds the paddings, and the
// canvas adds ShadowRadius on every side so the blurred shadow is never
// clipped. ShadowRadius zero skips the shadow pass and adds no margin.
func (r *Renderer) Render(text string) *Chip {
	style := r.Style
	lines := WrapText(r.face, text, style.MaxWidth)

	lineHeight := LineHeight(r.face)
	blockW := 0
	for _, line := range lines {
		if w := MeasureWidth(r.face, line); w > blockW {
			blockW = w
		}
	}
	n := len(lines)
	blockH := int(math.Round(float64(lineHeight)*float64(n) +
		float64(lineHeight)*(style.LineSpacing-1)*float64(n-1)))

	boxW := blockW + 2*style.PadX
	boxH := blockH + 2*style.PadY
	shadow := style.ShadowRadius
	canvasW := boxW + 2*shadow
	canvasH := boxH + 2*shadow

	dc := gg.NewContext(canvasW, canvasH)

	if shadow > 0 {
		sc := gg.NewContext(canvasW, canvasH)
		sc.SetRGBA255(0, 0, 0, shadowAlpha)
		sc.DrawRoundedRectangle(float64(shadow), float64(shadow), float64(boxW), float64(boxH), style.CornerRadius)
		sc.Fill()
		dc.DrawImage(imaging.Blur(sc.Image(), float64(shadow)/1.8), 0, 0)
	}

	dc.SetRGBA255(int(style.BGColor.R), int(style.BGColor.G), int(style.BGColor.B), int(style.BGAlpha))
	dc.DrawRoundedRectangle(float64(shadow), float64(shadow), float64(boxW), float64(boxH), style.CornerRadius)
	dc.Fill()

	dc.SetFontFace(r.face)
	dc.SetRGBA255(int(style.TextColor.R), int(style.TextColor.G), int(style.TextColor.B), 255)
	ascent := r.face.Metrics().Ascent.Ceil()
	step := float64(lineHeight) * style.LineSpacing
	for i, line := range lines {
		lw := MeasureWidth(r.face, line)
		x := float64(shadow + style.PadX + (blockW-lw)/2)
		y := float64(shadow+style.PadY+ascent) + float64(i)*step
		dc.DrawString(line, x, y)
	}

	return &Chip{
		Image:  dc.Image().(*image.RGBA),
		Width:  canvasW,
		Height: canvasH,
	}
}
