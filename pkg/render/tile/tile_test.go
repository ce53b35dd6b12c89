package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/geom"
	"github.com/matzehuels/prismview/pkg/palette"
)

func TestNewFromTopLeft(t *testing.T) {
	tl := NewFromTopLeft(-10, 20, 8, 6)

	assert.Equal(t, geom.Pt(-10, 20), tl.TopLeft)
	assert.Equal(t, geom.Pt(-2, 14), tl.BottomRight)
	assert.Equal(t, geom.Pt(-2, 20), tl.TopRight())
	assert.Equal(t, geom.Pt(-10, 14), tl.BottomLeft())
	assert.Equal(t, geom.Pt(-6, 17), tl.Center())
	assert.Equal(t, float32(48), tl.Area())
}

func TestNewFromCenter(t *testing.T) {
	assert.Equal(t, NewFromTopLeft(-4, 3, 8, 6), NewFromCenter(0, 0, 8, 6))
}

func TestTriangulateFullFan(t *testing.T) {
	tl := NewFromTopLeft(-40, 30, 80, 60)
	colors := []palette.Color{palette.Red, palette.Green, palette.Blue, palette.White}

	tris, err := Triangulate(tl, colors)
	require.NoError(t, err)
	require.Len(t, tris, 4)

	var area float32
	vertices := map[geom.Point]bool{}
	for _, tri := range tris {
		area += tri.Area()
		for _, v := range tri.Vertices() {
			vertices[v] = true
		}
		assert.Equal(t, tl.Center(), tri.P2, "every triangle meets at the center")
	}
	assert.InDelta(t, tl.Area(), area, 1e-3)

	want := map[geom.Point]bool{tl.Center(): true}
	for _, c := range tl.Corners() {
		want[c] = true
	}
	assert.Equal(t, want, vertices)
}

func TestTriangulateOrderAndFill(t *testing.T) {
	tl := NewFromTopLeft(0, 10, 10, 10)
	tris, err := Triangulate(tl, []palette.Color{palette.Red, palette.Green, palette.Blue, palette.Black})
	require.NoError(t, err)

	c := tl.Corners()
	for i, tri := range tris {
		assert.Equal(t, c[i], tri.P0, "triangle %d start corner", i)
		assert.Equal(t, c[(i+1)%4], tri.P1, "triangle %d end corner", i)
	}
	assert.Equal(t, c[0], tris[3].P1, "last triangle wraps to the top left")
	assert.Equal(t, [4]float32(palette.Red.LinearRGB()), [4]float32(tris[0].Fill))
}

func TestTriangulatePartial(t *testing.T) {
	tl := NewFromTopLeft(0, 10, 10, 10)

	tris, err := Triangulate(tl, []palette.Color{palette.Red, palette.Green})
	require.NoError(t, err)
	require.Len(t, tris, 2)
	assert.InDelta(t, tl.Area()/2, tris[0].Area()+tris[1].Area(), 1e-3)

	tris, err = Triangulate(tl, nil)
	require.NoError(t, err)
	assert.Empty(t, tris)
}

func TestTriangulateTooManyColors(t *testing.T) {
	colors := []palette.Color{palette.Red, palette.Green, palette.Blue, palette.White, palette.Black}
	_, err := Triangulate(NewFromTopLeft(0, 10, 10, 10), colors)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeTooManyColors))
}
