package nodelink

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/prismview/pkg/palette"
)

func TestToDOT_Basic(t *testing.T) {
	h := palette.Hierarchy{{palette.White}, {palette.Red, palette.Green, palette.Blue}}

	dot := ToDOT("hue-wheel", h, Options{})

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if !strings.Contains(dot, `root [label="hue-wheel"`) {
		t.Error("ToDOT() output missing root node")
	}
	if !strings.Contains(dot, "root -> stage1;") {
		t.Error("ToDOT() output missing stage edge")
	}
	if !strings.Contains(dot, "stage1 -> s1c2;") {
		t.Error("ToDOT() output missing color edge")
	}
	if !strings.Contains(dot, "{ rank=same; s1c0; s1c1; s1c2; }") {
		t.Error("ToDOT() output missing rank group")
	}
	if strings.Contains(dot, "rank=same; s0c0; }") {
		t.Error("ToDOT() single-color stage should not get a rank group")
	}
}

func TestToDOT_Swatches(t *testing.T) {
	dot := ToDOT("x", palette.Hierarchy{{palette.Red, palette.Black}}, Options{})

	if !strings.Contains(dot, `label="red"`) {
		t.Error("ToDOT() named color should be labelled by name")
	}
	if !strings.Contains(dot, `fillcolor="#ff0000"`) {
		t.Error("ToDOT() swatch missing fill color")
	}
	if !strings.Contains(dot, "fontcolor=white") {
		t.Error("ToDOT() dark swatch should use white text")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	c := palette.HCL(200, 0.3, 0.6)
	dot := ToDOT("x", palette.Hierarchy{{c}}, Options{Detailed: true})

	if !strings.Contains(dot, c.Hex()) {
		t.Error("ToDOT() unnamed color should be labelled by hex")
	}
	if !strings.Contains(dot, "h 200") {
		t.Error("ToDOT() detailed output missing HCL coordinates")
	}
}

func TestFmtStageLabel(t *testing.T) {
	tests := []struct {
		i, n int
		want string
	}{
		{0, 1, "stage 0\n1 color"},
		{4, 24, "stage 4\n24 colors"},
	}
	for _, tt := range tests {
		if got := fmtStageLabel(tt.i, tt.n); got != tt.want {
			t.Errorf("fmtStageLabel(%d, %d) = %q, want %q", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50">`
	if !strings.HasPrefix(out, want) {
		t.Errorf("normalizeViewBox() = %q", out)
	}

	plain := []byte("<svg></svg>")
	if got := normalizeViewBox(plain); !bytes.Equal(got, plain) {
		t.Errorf("normalizeViewBox() without viewBox = %q", got)
	}
}

func TestRender(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering is slow")
	}
	dot := ToDOT("gradients", palette.GradientHierarchy(), Options{})

	svg, err := RenderSVG(dot)
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("RenderSVG() output is not svg")
	}

	data, err := RenderPNG(dot, 0.5)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("RenderPNG() output does not decode: %v", err)
	}
}
