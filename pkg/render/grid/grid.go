package grid

import (
	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/geom"
	"github.com/matzehuels/prismview/pkg/palette"
	"github.com/matzehuels/prismview/pkg/render/tile"
)

// FillFactor is the share of each viewport side the grid covers.
const FillFactor = 0.8

// Grid is a viewport partitioned into equally sized cells.
type Grid struct {
	Ratio      AspectRatio   `json:"ratio"`
	Filled     geom.Viewport `json:"filled"`
	Origin     geom.Point    `json:"origin"` // top-left corner of cell (0, 0)
	CellWidth  float32       `json:"cell_width"`
	CellHeight float32       `json:"cell_height"`
}

// Option configures New.
type Option func(*options)

type options struct {
	metric Metric
	fill   float32
}

// WithMetric selects the ratio metric. The default is MetricTruncated.
func WithMetric(m Metric) Option { return func(o *options) { o.metric = m } }

// WithFillFactor overrides FillFactor.
func WithFillFactor(f float32) Option { return func(o *options) { o.fill = f } }

// New lays a grid over the centered fraction of vp given by the fill
// factor. The ratio is chosen from the filled size.
func New(vp geom.Viewport, opts ...Option) Grid {
	o := options{metric: MetricTruncated, fill: FillFactor}
	for _, opt := range opts {
		opt(&o)
	}

	filled := vp.Scale(o.fill, o.fill)
	ratio := ClosestRatioWith(o.metric, filled.Width, filled.Height)
	return Grid{
		Ratio:      ratio,
		Filled:     filled,
		Origin:     geom.Pt(-filled.Width/2, filled.Height/2),
		CellWidth:  filled.Width / float32(ratio.Cols),
		CellHeight: filled.Height / float32(ratio.Rows),
	}
}

// Cell returns the tile at the given column and row.
func (g Grid) Cell(col, row int) tile.Tile {
	return tile.NewFromTopLeft(
		g.Origin.X+g.CellWidth*float32(col),
		g.Origin.Y-g.CellHeight*float32(row),
		g.CellWidth, g.CellHeight,
	)
}

// Assignment pairs a cell with the hierarchy stage drawn into it.
type Assignment struct {
	Col, Row int
	Stage    int
	Tile     tile.Tile
	Colors   []palette.Color
}

// Assign walks the cells row by row, left to right, pairing cell
// (col, row) with stage row*cols+col. Stages beyond the cell count are
// ignored.
func (g Grid) Assign(h palette.Hierarchy) ([]Assignment, error) {
	n := g.Ratio.Cells()
	if len(h) < n {
		return nil, errors.New(errors.ErrCodeGridUnderflow,
			"grid %dx%d needs %d stages, hierarchy has %d", g.Ratio.Cols, g.Ratio.Rows, n, len(h))
	}

	out := make([]Assignment, 0, n)
	for row := 0; row < g.Ratio.Rows; row++ {
		for col := 0; col < g.Ratio.Cols; col++ {
			stage := row*g.Ratio.Cols + col
			out = append(out, Assignment{
				Col: col, Row: row,
				Stage:  stage,
				Tile:   g.Cell(col, row),
				Colors: h[stage],
			})
		}
	}
	return out, nil
}
