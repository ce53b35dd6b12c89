package sink

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"

	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/render/draw"
)

const halfBlock = "▀"

// RenderANSI renders a terminal preview of the frame, cols characters
// wide and rows lines high. Each character cell shows two vertically
// stacked pixels using an upper half block: foreground is the top pixel,
// background the bottom one.
func RenderANSI(f draw.Frame, cols, rows int) (string, error) {
	if cols <= 0 || rows <= 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "preview size must be positive, got %dx%d", cols, rows)
	}
	img, err := Rasterize(f, 1)
	if err != nil {
		return "", err
	}

	small := image.NewNRGBA(image.Rect(0, 0, cols, rows*2))
	xdraw.CatmullRom.Scale(small, small.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	var sb strings.Builder
	for y := 0; y < rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < cols; x++ {
			top := small.NRGBAAt(x, 2*y)
			bottom := small.NRGBAAt(x, 2*y+1)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexOf(top))).
				Background(lipgloss.Color(hexOf(bottom))).
				Render(halfBlock))
		}
	}
	return sb.String(), nil
}

func hexOf(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
