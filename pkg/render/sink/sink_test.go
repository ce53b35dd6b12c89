package sink

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/geom"
	"github.com/matzehuels/prismview/pkg/render/draw"
	"github.com/matzehuels/prismview/pkg/scene"
)

var testViewport = geom.Viewport{Width: 200, Height: 100}

func buildFrame(t *testing.T, k scene.Kind) draw.Frame {
	t.Helper()
	f, err := scene.Build(k, testViewport)
	if err != nil {
		t.Fatalf("Build(%s): %v", k, err)
	}
	return f
}

func TestRenderSVG(t *testing.T) {
	tests := []struct {
		kind    scene.Kind
		element string
		count   int
	}{
		{scene.ColorPeaks, "<polygon", 96},
		{scene.HueWheel, "<path", 45},
		{scene.HueWheel, "<circle", 1},
		{scene.Gradients, "<image", 4},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind)+tt.element, func(t *testing.T) {
			svg := string(RenderSVG(buildFrame(t, tt.kind)))
			if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
				t.Fatalf("not an svg document: %.80s", svg)
			}
			if got := strings.Count(svg, tt.element); got != tt.count {
				t.Errorf("%s count = %d, want %d", tt.element, got, tt.count)
			}
		})
	}
}

func TestRenderSVGPaintsOuterRingsFirst(t *testing.T) {
	f := draw.Frame{
		Viewport: testViewport,
		Meshes:   []draw.SectorMesh{{Radius: 10, HalfAngle: 3.2}, {Radius: 20, HalfAngle: 1}},
		Instructions: []draw.Instruction{
			draw.SectorOp(draw.Sector{Mesh: 0, Z: 0, Fill: draw.RGBA{1, 1, 1, 1}}),
			draw.SectorOp(draw.Sector{Mesh: 1, Z: -1, Fill: draw.RGBA{1, 0, 0, 1}}),
		},
	}
	svg := string(RenderSVG(f))
	if strings.Index(svg, "#ff0000") > strings.Index(svg, "#ffffff") {
		t.Error("deeper sector should be painted before the shallower one")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	svg := string(RenderSVG(buildFrame(t, scene.Gradients),
		WithBackground("#000000"), WithCaption("Press space <to> toggle")))
	if !strings.Contains(svg, `fill="#000000"`) {
		t.Error("background missing")
	}
	if !strings.Contains(svg, "Press space &lt;to&gt; toggle") {
		t.Error("caption missing or not escaped")
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(buildFrame(t, scene.HueWheel), WithScale(2))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 200 {
		t.Errorf("size = %dx%d, want 400x200", b.Dx(), b.Dy())
	}

	// The innermost ring is a white disc at the center.
	r, g, b, _ := img.At(200, 100).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("center pixel = %d,%d,%d, want white", r>>8, g>>8, b>>8)
	}
	// The corners are background.
	r, g, b, _ = img.At(1, 1).RGBA()
	if r>>8 != 0x1e || g>>8 != 0x1e || b>>8 != 0x1e {
		t.Errorf("corner pixel = %d,%d,%d, want background", r>>8, g>>8, b>>8)
	}
}

func TestRenderPNGCaption(t *testing.T) {
	f := buildFrame(t, scene.Gradients)
	plain, err := RenderPNG(f, WithScale(2))
	if err != nil {
		t.Fatal(err)
	}
	captioned, err := RenderPNG(f, WithScale(2), WithPNGCaption("Gradients"))
	if err != nil {
		t.Fatalf("RenderPNG with caption: %v", err)
	}
	if bytes.Equal(plain, captioned) {
		t.Error("caption did not change the image")
	}
}

func TestRenderPNGGradients(t *testing.T) {
	data, err := RenderPNG(buildFrame(t, scene.Gradients))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestRenderPNGRejects(t *testing.T) {
	f := buildFrame(t, scene.HueWheel)
	if _, err := RenderPNG(f, WithScale(0)); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("scale 0 error = %v", err)
	}
	if _, err := RenderPNG(f, WithPNGBackground("nope")); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad background error = %v", err)
	}
	if _, err := RenderPNG(draw.Frame{}); !errors.Is(err, errors.ErrCodeInvalidViewport) {
		t.Errorf("empty frame error = %v", err)
	}
	huge := draw.Frame{Viewport: geom.Viewport{Width: 8192, Height: 8192}}
	if _, err := RenderPNG(huge, WithScale(8)); !errors.Is(err, errors.ErrCodeInvalidViewport) {
		t.Errorf("oversized canvas error = %v", err)
	}
}

func TestRenderANSI(t *testing.T) {
	out, err := RenderANSI(buildFrame(t, scene.ColorPeaks), 40, 10)
	if err != nil {
		t.Fatalf("RenderANSI: %v", err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("lines = %d, want 10", len(lines))
	}
	for i, line := range lines {
		if n := strings.Count(line, halfBlock); n != 40 {
			t.Errorf("line %d has %d cells, want 40", i, n)
		}
	}

	if _, err := RenderANSI(draw.Frame{Viewport: testViewport}, 0, 10); err == nil {
		t.Error("expected error for zero columns")
	}
}

func TestRenderJSON(t *testing.T) {
	f := buildFrame(t, scene.HueWheel)
	data, err := RenderJSON(f)
	if err != nil {
		t.Fatal(err)
	}
	back, err := draw.UnmarshalFrame(data)
	if err != nil {
		t.Fatalf("UnmarshalFrame: %v", err)
	}
	if back.Stats() != f.Stats() {
		t.Errorf("stats = %+v, want %+v", back.Stats(), f.Stats())
	}
}
