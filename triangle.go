package geom

import (
	"math"
)

type Triangle struct {
	A Point
	B Point
	C Point
}

func (t Triangle) Shape() Shape {
	return Shape{Kind: TriangleKind, P0: t.A, P1: t.B, P2: t.C}
}

// Area returns the unsigned area of the triangle, computed with the shoelace
// formula. It doesn't depend on the winding order of the vertices. Collinear
// vertices have zero area.
func (t Triangle) Area() float64 {
	a, b, c := t.A, t.B, t.C
	area := a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y)
	return math.Abs(area) * 0.5
}

func (t Triangle) Perimeter() float64 {
	return t.B.Sub(t.A).Hypot() + t.C.Sub(t.B).Hypot() + t.A.Sub(t.C).Hypot()
}

// Centroid returns the arithmetic mean of the three vertices.
func (t Triangle) Centroid() Point {
	return Point{
		X: (t.A.X + t.B.X + t.C.X) / 3,
		Y: (t.A.Y + t.B.Y + t.C.Y) / 3,
	}
}

func (t Triangle) Translate(v Vec2) Triangle {
	return Triangle{
		A: t.A.Translate(v),
		B: t.B.Translate(v),
		C: t.C.Translate(v),
	}
}

func (t Triangle) IsInf() bool {
	return t.A.IsInf() || t.B.IsInf() || t.C.IsInf()
}

func (t Triangle) IsNaN() bool {
	return t.A.IsNaN() || t.B.IsNaN() || t.C.IsNaN()
}

func (t Triangle) String() string {
	return "triangle(" + t.A.String() + ", " + t.B.String() + ", " + t.C.String() + ")"
}
