package geom

import "github.com/chewxy/math32"

// Point is a position in centered, y-up layout space.
type Point struct {
	X float32 `json:"x" bson:"x"`
	Y float32 `json:"y" bson:"y"`
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float32) Point { return Point{X: x, Y: y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Cross returns the z component of the cross product of p and q.
func (p Point) Cross(q Point) float32 { return p.X*q.Y - p.Y*q.X }

// TriangleArea returns the unsigned area of the triangle abc.
func TriangleArea(a, b, c Point) float32 {
	return math32.Abs(b.Sub(a).Cross(c.Sub(a))) / 2
}
