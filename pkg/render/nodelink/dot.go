package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
	xdraw "golang.org/x/image/draw"

	"github.com/matzehuels/prismview/pkg/palette"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds HCL coordinates to color labels.
	// When false, only the color name or hex code is shown.
	Detailed bool
}

// ToDOT converts a color hierarchy to Graphviz DOT format. The root node
// is titled after the scene, each stage hangs below it and each color
// hangs below its stage as a swatch filled with the color itself.
func ToDOT(title string, h palette.Hierarchy, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  root [label=%q, shape=ellipse];\n", title)
	for i, stage := range h {
		stageID := fmt.Sprintf("stage%d", i)
		fmt.Fprintf(&buf, "  %s [label=%q];\n", stageID, fmtStageLabel(i, len(stage)))
		fmt.Fprintf(&buf, "  root -> %s;\n", stageID)

		ids := make([]string, len(stage))
		for j, c := range stage {
			ids[j] = fmt.Sprintf("s%dc%d", i, j)
			fmt.Fprintf(&buf, "  %s [%s];\n", ids[j], strings.Join(fmtColorAttrs(c, opts.Detailed), ", "))
			fmt.Fprintf(&buf, "  %s -> %s;\n", stageID, ids[j])
		}
		if len(ids) > 1 {
			fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtStageLabel(i, n int) string {
	if n == 1 {
		return fmt.Sprintf("stage %d\n1 color", i)
	}
	return fmt.Sprintf("stage %d\n%d colors", i, n)
}

func fmtColorAttrs(c palette.Color, detailed bool) []string {
	label := c.Hex()
	if name, ok := palette.NameOf(c); ok {
		label = name
	}
	if detailed {
		label += fmt.Sprintf("\nh %.0f  c %.2f  l %.2f", c.Hue(), c.Chroma(), c.Luminance())
	}

	font := "black"
	if c.Luminance() < 0.55 {
		font = "white"
	}
	return []string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf("fillcolor=%q", c.Hex()),
		fmt.Sprintf("fontcolor=%s", font),
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPNG renders a DOT graph to PNG using Graphviz's raster output.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(dot string, scale float64) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	img, err := gv.RenderImage(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if scale > 0 && scale != 1 {
		img = scaleImage(img, scale)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func scaleImage(src image.Image, scale float64) image.Image {
	b := src.Bounds()
	w := max(1, int(float64(b.Dx())*scale))
	h := max(1, int(float64(b.Dy())*scale))
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
