package draw

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/geom"
)

func sampleFrame() Frame {
	return Frame{
		Scene:    "sample",
		Viewport: geom.Viewport{Width: 100, Height: 80},
		Meshes:   []SectorMesh{{Radius: 10, HalfAngle: 3.14159}, {Radius: 20, HalfAngle: 1.0472}},
		Instructions: []Instruction{
			SectorOp(Sector{Mesh: 1, Z: -1, Fill: RGBA{1, 0, 0, 1}}),
			TriangleOp(Triangle{P0: geom.Pt(0, 0), P1: geom.Pt(1, 0), P2: geom.Pt(0, 1), Fill: RGBA{0, 1, 0, 1}}),
			SectorOp(Sector{Mesh: 0, Z: 0, Fill: RGBA{1, 1, 1, 1}}),
			RectOp(TexturedRect{Width: 2, Height: 1, Z: -2, Texture: Texture{Width: 2, Height: 1, Pix: make([]byte, 8)}}),
		},
	}
}

func TestSortedByZ(t *testing.T) {
	f := sampleFrame()
	got := f.SortedByZ()
	wantKinds := []Kind{KindTexturedRect, KindSector, KindTriangle, KindSector}
	for i, k := range wantKinds {
		if got[i].Kind != k {
			t.Errorf("SortedByZ()[%d].Kind = %v, want %v", i, got[i].Kind, k)
		}
	}
	if f.Instructions[0].Kind != KindSector {
		t.Error("SortedByZ modified the frame")
	}
}

func TestStats(t *testing.T) {
	s := sampleFrame().Stats()
	want := Stats{Triangles: 1, Sectors: 2, Rects: 1, Meshes: 2}
	if s != want {
		t.Errorf("Stats() = %+v, want %+v", s, want)
	}
}

func TestFrameRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.json")
	if err := WriteFrameFile(sampleFrame(), path); err != nil {
		t.Fatalf("WriteFrameFile: %v", err)
	}
	f, err := ReadFrameFile(path)
	if err != nil {
		t.Fatalf("ReadFrameFile: %v", err)
	}
	if f.Scene != "sample" || len(f.Instructions) != 4 || len(f.Meshes) != 2 {
		t.Errorf("round trip lost data: %+v", f)
	}
	if f.Instructions[3].Rect == nil || len(f.Instructions[3].Rect.Texture.Pix) != 8 {
		t.Error("texture pixels not preserved")
	}
}

func TestUnmarshalFrameRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad json", `{`},
		{"bad viewport", `{"viewport":{"width":0,"height":10},"instructions":[]}`},
		{"missing payload", `{"viewport":{"width":10,"height":10},"instructions":[{"kind":"triangle"}]}`},
		{"unknown mesh", `{"viewport":{"width":10,"height":10},"instructions":[{"kind":"sector","sector":{"mesh":3}}]}`},
		{"unknown kind", `{"viewport":{"width":10,"height":10},"instructions":[{"kind":"circle"}]}`},
		{"texture mismatch", `{"viewport":{"width":10,"height":10},"instructions":[{"kind":"textured_rect","rect":{"texture":{"width":2,"height":2,"pix":""}}}]}`},
		{"texture overflow", `{"viewport":{"width":10,"height":10},"instructions":[{"kind":"textured_rect","rect":{"texture":{"width":4611686018427387904,"height":4,"pix":""}}}]}`},
		{"negative texture", `{"viewport":{"width":10,"height":10},"instructions":[{"kind":"textured_rect","rect":{"texture":{"width":-1,"height":-4,"pix":"AAAA"}}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalFrame([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.GetCode(err) == "" {
				t.Errorf("error %v carries no code", err)
			}
		})
	}
}

func TestTextureValid(t *testing.T) {
	tests := []struct {
		name string
		tex  Texture
		want bool
	}{
		{"empty", Texture{}, true},
		{"exact", Texture{Width: 2, Height: 1, Pix: make([]byte, 8)}, true},
		{"short", Texture{Width: 2, Height: 2, Pix: make([]byte, 8)}, false},
		{"overflowing product", Texture{Width: 1 << 62, Height: 4}, false},
		{"side too large", Texture{Width: MaxTextureSide + 1, Height: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tex.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRGBA(t *testing.T) {
	c := RGBA{1, 0.5, -1, 2}
	n := c.NRGBA()
	if n.R != 255 || n.G != 128 || n.B != 0 || n.A != 255 {
		t.Errorf("NRGBA() = %+v", n)
	}
	if got := (RGBA{1, 0, 0, 1}).Hex(); got != "#ff0000" {
		t.Errorf("Hex() = %q, want #ff0000", got)
	}
}
