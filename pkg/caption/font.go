package caption

import (
	"log"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// systemFontPaths are tried in order when no explicit font path is given.
var systemFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSansCondensed-Bold.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/Library/Fonts/Arial Bold.ttf",
}

// ResolveFont returns a usable font face at the given pixel size. It tries
// the explicit path first, then known system fonts, and finally falls back
// to the embedded Go Regular face. It never fails; a nil face is never
// returned.
func ResolveFont(path string, size float64) font.Face {
	candidates := systemFontPaths
	if path != "" {
		candidates = append([]string{path}, candidates...)
	}

	for _, candidate := range candidates {
		face, err := loadFace(candidate, size)
		if err == nil {
			return face
		}
		if candidate == path {
			log.Printf("Warning: could not load font %s: %v (trying fallbacks)", path, err)
		}
	}

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		// goregular is embedded and known-good; this cannot happen.
		panic("caption: embedded fallback font failed to parse: " + err.Error())
	}
	return newFace(f, size)
}

func loadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return newFace(f, size), nil
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
