package draw

import (
	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/geom"
)

// Kind discriminates the Instruction union.
type Kind string

const (
	KindTriangle     Kind = "triangle"
	KindSector       Kind = "sector"
	KindTexturedRect Kind = "textured_rect"
)

// =============================================================================
// Primitives
// =============================================================================

// Triangle is a flat-filled triangle.
type Triangle struct {
	P0   geom.Point `json:"p0" bson:"p0"`
	P1   geom.Point `json:"p1" bson:"p1"`
	P2   geom.Point `json:"p2" bson:"p2"`
	Fill RGBA       `json:"fill" bson:"fill"`
}

// Area returns the unsigned area of the triangle.
func (t Triangle) Area() float32 { return geom.TriangleArea(t.P0, t.P1, t.P2) }

// Vertices returns the three corners in order.
func (t Triangle) Vertices() [3]geom.Point { return [3]geom.Point{t.P0, t.P1, t.P2} }

// MeshID indexes Frame.Meshes.
type MeshID int

// SectorMesh is a circular sector centered on the origin, pointing up
// (+Y) and spanning HalfAngle to either side.
type SectorMesh struct {
	Radius    float32 `json:"radius" bson:"radius"`
	HalfAngle float32 `json:"half_angle" bson:"half_angle"`
}

// Sector places a shared mesh at the origin, rotated counter-clockwise
// by Rotation radians.
type Sector struct {
	Mesh     MeshID  `json:"mesh" bson:"mesh"`
	Rotation float32 `json:"rotation" bson:"rotation"`
	Z        float32 `json:"z" bson:"z"`
	Fill     RGBA    `json:"fill" bson:"fill"`
}

// Texture is a row-major RGBA8 pixel buffer.
type Texture struct {
	Width  int    `json:"width" bson:"width"`
	Height int    `json:"height" bson:"height"`
	Pix    []byte `json:"pix" bson:"pix"`
}

// MaxTextureSide bounds each texture side so Width*Height*4 cannot overflow.
const MaxTextureSide = errors.MaxDimension * 8

// Valid reports whether Pix holds exactly Width*Height RGBA pixels.
func (t Texture) Valid() bool {
	if t.Width < 0 || t.Height < 0 || t.Width > MaxTextureSide || t.Height > MaxTextureSide {
		return false
	}
	return len(t.Pix) == t.Width*t.Height*4
}

// TexturedRect is an axis-aligned rectangle centered on Position.
type TexturedRect struct {
	Width    float32    `json:"width" bson:"width"`
	Height   float32    `json:"height" bson:"height"`
	Position geom.Point `json:"position" bson:"position"`
	Z        float32    `json:"z" bson:"z"`
	Texture  Texture    `json:"texture" bson:"texture"`
}

// =============================================================================
// Instruction - discriminated union
// =============================================================================

// Instruction is one drawable primitive. Exactly the field matching Kind
// is populated.
type Instruction struct {
	Kind     Kind          `json:"kind" bson:"kind"`
	Triangle *Triangle     `json:"triangle,omitempty" bson:"triangle,omitempty"`
	Sector   *Sector       `json:"sector,omitempty" bson:"sector,omitempty"`
	Rect     *TexturedRect `json:"rect,omitempty" bson:"rect,omitempty"`
}

// TriangleOp wraps a triangle.
func TriangleOp(t Triangle) Instruction { return Instruction{Kind: KindTriangle, Triangle: &t} }

// SectorOp wraps a sector.
func SectorOp(s Sector) Instruction { return Instruction{Kind: KindSector, Sector: &s} }

// RectOp wraps a textured rectangle.
func RectOp(r TexturedRect) Instruction { return Instruction{Kind: KindTexturedRect, Rect: &r} }

// Z returns the depth of the instruction. Triangles sit at depth 0.
func (in Instruction) Z() float32 {
	switch in.Kind {
	case KindSector:
		return in.Sector.Z
	case KindTexturedRect:
		return in.Rect.Z
	}
	return 0
}
