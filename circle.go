package geom

import (
	"math"
)

type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) Shape() Shape {
	return Shape{Kind: CircleKind, P0: c.Center, Radius: c.Radius}
}

// Area returns π·r². The sign of the radius doesn't matter.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) Perimeter() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) String() string {
	return "circle(" + c.Center.String() + ", " + formatFloat(c.Radius) + ")"
}
