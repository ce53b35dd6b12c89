package sink

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html"

	"github.com/chewxy/math32"

	"github.com/matzehuels/prismview/pkg/fonts"
	"github.com/matzehuels/prismview/pkg/geom"
	"github.com/matzehuels/prismview/pkg/render/draw"
)

// DefaultBackground is the canvas color used when none is set.
const DefaultBackground = "#1e1e1e"

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background string
	caption    string
}

func WithBackground(hex string) SVGOption { return func(r *svgRenderer) { r.background = hex } }
func WithCaption(text string) SVGOption   { return func(r *svgRenderer) { r.caption = text } }

func RenderSVG(f draw.Frame, opts ...SVGOption) []byte {
	r := svgRenderer{background: DefaultBackground}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := f.Viewport.Width, f.Viewport.Height
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", html.EscapeString(r.background))
	}

	for _, in := range f.SortedByZ() {
		switch in.Kind {
		case draw.KindTriangle:
			renderTriangle(&buf, f.Viewport, *in.Triangle)
		case draw.KindSector:
			if mesh, ok := f.Mesh(in.Sector.Mesh); ok {
				renderSector(&buf, f.Viewport, mesh, *in.Sector)
			}
		case draw.KindTexturedRect:
			renderRect(&buf, f.Viewport, *in.Rect)
		}
	}

	if r.caption != "" {
		fmt.Fprintf(&buf, `  <text x="12" y="24" font-family="%s" font-size="%d" fill="#ffffff">%s</text>`+"\n",
			html.EscapeString(fonts.FontFamily), fonts.CaptionSize, html.EscapeString(r.caption))
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderTriangle(buf *bytes.Buffer, vp geom.Viewport, t draw.Triangle) {
	buf.WriteString(`  <polygon points="`)
	for i, p := range t.Vertices() {
		x, y := vp.ToScreen(p)
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%.2f,%.2f", x, y)
	}
	fmt.Fprintf(buf, `"%s/>`+"\n", fillAttrs(t.Fill))
}

func renderSector(buf *bytes.Buffer, vp geom.Viewport, m draw.SectorMesh, s draw.Sector) {
	cx, cy := vp.ToScreen(geom.Point{})
	if isFullCircle(m) {
		fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f"%s/>`+"\n", cx, cy, m.Radius, fillAttrs(s.Fill))
		return
	}

	// The mesh points up (+Y); rotation turns it counter-clockwise.
	dir := math32.Pi/2 + s.Rotation
	x0, y0 := vp.ToScreen(polar(m.Radius, dir-m.HalfAngle))
	x1, y1 := vp.ToScreen(polar(m.Radius, dir+m.HalfAngle))
	large := 0
	if 2*m.HalfAngle > math32.Pi {
		large = 1
	}
	fmt.Fprintf(buf, `  <path d="M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 0 %.2f %.2f Z"%s/>`+"\n",
		cx, cy, x0, y0, m.Radius, m.Radius, large, x1, y1, fillAttrs(s.Fill))
}

func renderRect(buf *bytes.Buffer, vp geom.Viewport, r draw.TexturedRect) {
	data, err := encodeTexture(r.Texture)
	if err != nil || len(data) == 0 {
		return
	}
	x, y := vp.ToScreen(geom.Pt(r.Position.X-r.Width/2, r.Position.Y+r.Height/2))
	fmt.Fprintf(buf, `  <image x="%.2f" y="%.2f" width="%.2f" height="%.2f" preserveAspectRatio="none" href="data:image/png;base64,%s"/>`+"\n",
		x, y, r.Width, r.Height, base64.StdEncoding.EncodeToString(data))
}

func fillAttrs(c draw.RGBA) string {
	if op := c.Opacity(); op < 1 {
		return fmt.Sprintf(` fill="%s" fill-opacity="%.3f"`, c.Hex(), op)
	}
	return fmt.Sprintf(` fill="%s"`, c.Hex())
}

func polar(r, angle float32) geom.Point {
	return geom.Pt(r*math32.Cos(angle), r*math32.Sin(angle))
}

func isFullCircle(m draw.SectorMesh) bool {
	return m.HalfAngle >= math32.Pi-1e-6
}
