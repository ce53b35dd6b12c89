package ring

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/geom"
	"github.com/matzehuels/prismview/pkg/palette"
	"github.com/matzehuels/prismview/pkg/render/draw"
)

var vp800 = geom.Viewport{Width: 800, Height: 600}

func TestLayoutTwoRings(t *testing.T) {
	h := palette.Hierarchy{
		{palette.White},
		{palette.Red, palette.Green, palette.Blue},
	}

	res, err := Layout(h, vp800)
	require.NoError(t, err)
	require.Len(t, res.Rings, 2)
	require.Len(t, res.Meshes, 2)

	assert.InDelta(t, 37.5, res.Rings[0].Radius, 1e-4)
	assert.InDelta(t, math32.Pi, res.Rings[0].HalfAngle, 1e-6)

	outer := res.Rings[1]
	assert.InDelta(t, 75, outer.Radius, 1e-4)
	assert.InDelta(t, math32.Pi/3, outer.HalfAngle, 1e-6)
	require.Len(t, outer.Sectors, 3)
	for i, s := range outer.Sectors {
		assert.Equal(t, draw.MeshID(1), s.Mesh)
		assert.Equal(t, float32(-1), s.Z)
		assert.InDelta(t, -2*float32(i)*math32.Pi/3, s.Rotation, 1e-5)
	}
	assert.Equal(t, draw.RGBA(palette.Green.LinearRGB()), outer.Sectors[1].Fill)
}

func TestLayoutHueWheel(t *testing.T) {
	h := palette.HueWheelHierarchy()
	res, err := Layout(h, vp800)
	require.NoError(t, err)

	assert.Len(t, res.Meshes, 5)
	assert.Len(t, res.Instructions(), 46)

	r0 := BaseRadius(vp800)
	for k, ring := range res.Rings {
		assert.InDelta(t, r0*float32(k+1), ring.Radius, 1e-3)
		if k > 0 {
			assert.Greater(t, ring.Radius, res.Rings[k-1].Radius, "radii strictly increase")
		}
		n := float32(len(ring.Sectors))
		assert.InDelta(t, 2*math32.Pi, n*2*ring.HalfAngle, 1e-4, "ring %d covers the circle", k)

		mesh := res.Meshes[ring.Mesh]
		assert.Equal(t, ring.Radius, mesh.Radius)
		assert.Equal(t, ring.HalfAngle, mesh.HalfAngle)
	}
}

func TestLayoutUsesShorterSide(t *testing.T) {
	a, err := Layout(palette.Hierarchy{{palette.Red}}, geom.Viewport{Width: 600, Height: 800})
	require.NoError(t, err)
	b, err := Layout(palette.Hierarchy{{palette.Red}}, vp800)
	require.NoError(t, err)
	assert.Equal(t, a.Rings[0].Radius, b.Rings[0].Radius)
}

func TestLayoutEmptyRing(t *testing.T) {
	h := palette.Hierarchy{{palette.White}, {}}
	_, err := Layout(h, vp800)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeEmptyRing))
}

func TestLayoutEmptyHierarchy(t *testing.T) {
	res, err := Layout(nil, vp800)
	require.NoError(t, err)
	assert.Empty(t, res.Rings)
	assert.Empty(t, res.Instructions())
}
