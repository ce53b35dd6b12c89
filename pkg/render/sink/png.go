package sink

import (
	"bytes"
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/fonts"
	"github.com/matzehuels/prismview/pkg/geom"
	"github.com/matzehuels/prismview/pkg/render/draw"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	background string
	caption    string
}

// WithScale sets the PNG scale factor (default 1).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGBackground sets the canvas color as "#rrggbb".
func WithPNGBackground(hex string) PNGOption {
	return func(r *pngRenderer) { r.background = hex }
}

// WithPNGCaption draws text in the top-left corner.
func WithPNGCaption(text string) PNGOption {
	return func(r *pngRenderer) { r.caption = text }
}

// RenderPNG rasterizes the frame with fogleman/gg and encodes it as PNG.
func RenderPNG(f draw.Frame, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1, background: DefaultBackground}
	for _, opt := range opts {
		opt(&r)
	}
	if err := errors.ValidateScale(r.scale); err != nil {
		return nil, err
	}

	dc, err := paint(f, r)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// Rasterize paints the frame at the given scale and returns the image.
func Rasterize(f draw.Frame, scale float64) (image.Image, error) {
	dc, err := paint(f, pngRenderer{scale: scale, background: DefaultBackground})
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func paint(f draw.Frame, r pngRenderer) (*gg.Context, error) {
	if err := f.Viewport.Validate(); err != nil {
		return nil, err
	}
	if err := errors.ValidateCanvas(float64(f.Viewport.Width), float64(f.Viewport.Height), r.scale); err != nil {
		return nil, err
	}
	bg, err := parseBackground(r.background)
	if err != nil {
		return nil, err
	}

	w := int(math32.Ceil(f.Viewport.Width * float32(r.scale)))
	h := int(math32.Ceil(f.Viewport.Height * float32(r.scale)))
	dc := gg.NewContext(max(w, 1), max(h, 1))
	dc.SetColor(bg)
	dc.Clear()
	dc.Scale(r.scale, r.scale)

	for _, in := range f.SortedByZ() {
		switch in.Kind {
		case draw.KindTriangle:
			paintTriangle(dc, f.Viewport, *in.Triangle)
		case draw.KindSector:
			if mesh, ok := f.Mesh(in.Sector.Mesh); ok {
				paintSector(dc, f.Viewport, mesh, *in.Sector)
			}
		case draw.KindTexturedRect:
			paintRect(dc, f.Viewport, *in.Rect)
		}
	}

	if r.caption != "" {
		face, err := fonts.CaptionFace(r.scale)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "load caption font")
		}
		defer face.Close()
		dc.SetFontFace(face)
		dc.SetColor(color.White)
		dc.DrawString(r.caption, 12, 24)
	}
	return dc, nil
}

func paintTriangle(dc *gg.Context, vp geom.Viewport, t draw.Triangle) {
	for i, p := range t.Vertices() {
		x, y := vp.ToScreen(p)
		if i == 0 {
			dc.MoveTo(float64(x), float64(y))
		} else {
			dc.LineTo(float64(x), float64(y))
		}
	}
	dc.ClosePath()
	dc.SetColor(t.Fill.NRGBA())
	dc.Fill()
}

func paintSector(dc *gg.Context, vp geom.Viewport, m draw.SectorMesh, s draw.Sector) {
	cx, cy := vp.ToScreen(geom.Point{})
	dc.SetColor(s.Fill.NRGBA())
	if isFullCircle(m) {
		dc.DrawCircle(float64(cx), float64(cy), float64(m.Radius))
		dc.Fill()
		return
	}

	// Screen space is y-down, so layout angles are negated.
	dir := math32.Pi/2 + s.Rotation
	a1 := -float64(dir + m.HalfAngle)
	a2 := -float64(dir - m.HalfAngle)
	dc.MoveTo(float64(cx), float64(cy))
	dc.DrawArc(float64(cx), float64(cy), float64(m.Radius), a1, a2)
	dc.ClosePath()
	dc.Fill()
}

func paintRect(dc *gg.Context, vp geom.Viewport, r draw.TexturedRect) {
	t := r.Texture
	if t.Width == 0 || t.Height == 0 || !t.Valid() {
		return
	}
	x, y := vp.ToScreen(geom.Pt(r.Position.X-r.Width/2, r.Position.Y+r.Height/2))
	dc.Push()
	dc.Translate(float64(x), float64(y))
	dc.Scale(float64(r.Width)/float64(t.Width), float64(r.Height)/float64(t.Height))
	dc.DrawImage(textureImage(t), 0, 0)
	dc.Pop()
}

func parseBackground(hex string) (color.Color, error) {
	if hex == "" {
		return color.Transparent, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid background %q", hex)
	}
	return c, nil
}
