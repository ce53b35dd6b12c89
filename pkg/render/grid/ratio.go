// Package grid partitions a viewport into a grid of tiles whose aspect
// ratio is picked from a fixed table so that every layout holds exactly
// 24 cells.
package grid

import (
	"github.com/chewxy/math32"

	"github.com/matzehuels/prismview/pkg/errors"
)

// AspectRatio is a grid shape in columns by rows.
type AspectRatio struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

// Value returns Cols / Rows.
func (r AspectRatio) Value() float32 { return float32(r.Cols) / float32(r.Rows) }

// Cells returns Cols * Rows.
func (r AspectRatio) Cells() int { return r.Cols * r.Rows }

// Ratios is the table searched by ClosestRatio, in scan order.
var Ratios = [...]AspectRatio{
	{1, 24}, {2, 12}, {3, 8}, {4, 6},
	{6, 4}, {8, 3}, {12, 2}, {24, 1},
}

// Metric selects how distance between ratios is measured.
type Metric string

const (
	// MetricTruncated scales the absolute difference by 1000 and
	// truncates it to an integer. Differences under 0.001 tie, and ties
	// resolve to the earlier table entry.
	MetricTruncated Metric = "truncated"
	// MetricContinuous compares raw float differences.
	MetricContinuous Metric = "continuous"
)

// ParseMetric parses a metric name. The empty string selects the default.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case "", MetricTruncated:
		return MetricTruncated, nil
	case MetricContinuous:
		return MetricContinuous, nil
	}
	return "", errors.New(errors.ErrCodeInvalidMetric,
		"unknown metric %q (use %s or %s)", s, MetricTruncated, MetricContinuous)
}

// ClosestRatio returns the table entry closest to width/height under
// MetricTruncated.
func ClosestRatio(width, height float32) AspectRatio {
	return ClosestRatioWith(MetricTruncated, width, height)
}

// ClosestRatioWith returns the table entry closest to width/height under
// the given metric. The first entry wins ties.
func ClosestRatioWith(m Metric, width, height float32) AspectRatio {
	current := width / height
	best := Ratios[0]
	bestDist := distance(m, best.Value(), current)
	for _, r := range Ratios[1:] {
		if d := distance(m, r.Value(), current); d < bestDist {
			best, bestDist = r, d
		}
	}
	return best
}

func distance(m Metric, ratio, current float32) float32 {
	d := math32.Abs(ratio - current)
	if m == MetricContinuous {
		return d
	}
	return float32(uint64(d * 1000))
}
