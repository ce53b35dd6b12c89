// Package ring lays a color hierarchy out as concentric rings of circular
// sectors.
//
// Stage k becomes ring k. Every sector spans from the center out to its
// ring's radius; outer rings sit deeper (lower Z) so inner rings paint
// over them, which leaves each ring visible as a band. A ring with n
// colors splits the full circle into n equal sectors that all share one
// mesh.
package ring

import (
	"github.com/chewxy/math32"

	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/geom"
	"github.com/matzehuels/prismview/pkg/palette"
	"github.com/matzehuels/prismview/pkg/render/draw"
)

const (
	// CoreRatio is the diameter of the innermost ring relative to the
	// viewport's shorter side.
	CoreRatio = 1.0 / 8
	// SegmentRatio is the width of each further ring relative to the
	// innermost radius.
	SegmentRatio = 1.0
)

// Ring is one laid-out stage.
type Ring struct {
	Index     int           `json:"index"`
	Radius    float32       `json:"radius"`
	HalfAngle float32       `json:"half_angle"`
	Mesh      draw.MeshID   `json:"mesh"`
	Sectors   []draw.Sector `json:"sectors"`
}

// Result holds the shared meshes and the rings referencing them.
type Result struct {
	Meshes []draw.SectorMesh `json:"meshes"`
	Rings  []Ring            `json:"rings"`
}

// Instructions flattens the rings into draw instructions, innermost ring
// first.
func (r Result) Instructions() []draw.Instruction {
	var out []draw.Instruction
	for _, ring := range r.Rings {
		for _, s := range ring.Sectors {
			out = append(out, draw.SectorOp(s))
		}
	}
	return out
}

// BaseRadius returns the radius of ring 0 for the viewport.
func BaseRadius(vp geom.Viewport) float32 {
	return vp.Min() * CoreRatio / 2
}

// Layout computes the rings for h in vp. Ring k has radius r0 + k*r0
// where r0 is BaseRadius; its n sectors have half-angle π/n and sector i
// is rotated by -2iπ/n, so sector 0 points straight up and the rest
// follow clockwise.
func Layout(h palette.Hierarchy, vp geom.Viewport) (Result, error) {
	r0 := BaseRadius(vp)
	res := Result{
		Meshes: make([]draw.SectorMesh, 0, len(h)),
		Rings:  make([]Ring, 0, len(h)),
	}

	for k, colors := range h {
		n := len(colors)
		if n == 0 {
			return Result{}, errors.New(errors.ErrCodeEmptyRing, "ring %d has no colors", k)
		}

		radius := r0 + float32(k)*SegmentRatio*r0
		arc := math32.Pi / float32(n)
		id := draw.MeshID(len(res.Meshes))
		res.Meshes = append(res.Meshes, draw.SectorMesh{Radius: radius, HalfAngle: arc})

		sectors := make([]draw.Sector, n)
		for i, c := range colors {
			sectors[i] = draw.Sector{
				Mesh:     id,
				Rotation: -2 * float32(i) * arc,
				Z:        -float32(k),
				Fill:     draw.RGBA(c.LinearRGB()),
			}
		}
		res.Rings = append(res.Rings, Ring{
			Index:     k,
			Radius:    radius,
			HalfAngle: arc,
			Mesh:      id,
			Sectors:   sectors,
		})
	}
	return res, nil
}
