// Package fonts provides the caption typeface shared by the SVG and PNG
// renderers.
//
// PNG captions are drawn with the Go Regular face bundled in
// golang.org/x/image, so rasterized output does not depend on fonts
// installed on the host. SVG captions name the same family first and
// fall back to the viewer's sans-serif.
package fonts

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// CaptionSize is the caption size in layout units.
const CaptionSize = 16

// FontFamily is the CSS font-family for SVG captions.
const FontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`

var (
	regular     *opentype.Font
	regularErr  error
	regularOnce sync.Once
)

// Regular returns the parsed Go Regular font. Parsing happens once.
func Regular() (*opentype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// CaptionFace returns a face for captions at the given scale factor.
// Callers own the face and should Close it.
func CaptionFace(scale float64) (font.Face, error) {
	f, err := Regular()
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    CaptionSize * scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
