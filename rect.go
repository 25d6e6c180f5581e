package geom

import (
	"math"
)

// Rect is a rectangle described by its top left corner and its dimensions.
//
// W and H are taken as given. Negative dimensions are not normalized, and
// produce a negative area when exactly one of them is negative.
type Rect struct {
	TopLeft Point
	W       float64
	H       float64
}

func (r Rect) Shape() Shape {
	return Shape{Kind: RectKind, P0: r.TopLeft, W: r.W, H: r.H}
}

func (r Rect) Size() Size {
	return Size{
		Width:  r.W,
		Height: r.H,
	}
}

// Area returns W×H. It is not the absolute value.
func (r Rect) Area() float64 {
	return r.Size().Area()
}

func (r Rect) Perimeter() float64 {
	return 2 * (math.Abs(r.W) + math.Abs(r.H))
}

// Center returns the point halfway between the top left and the bottom right
// corner.
func (r Rect) Center() Point {
	return r.TopLeft.Midpoint(r.TopLeft.Translate(Vec(r.W, r.H)))
}

func (r Rect) Translate(v Vec2) Rect {
	r.TopLeft = r.TopLeft.Translate(v)
	return r
}

func (r Rect) IsInf() bool {
	return r.TopLeft.IsInf() || r.Size().IsInf()
}

func (r Rect) IsNaN() bool {
	return r.TopLeft.IsNaN() || r.Size().IsNaN()
}

func (r Rect) String() string {
	return "rect(" + r.TopLeft.String() + ", " + r.Size().String() + ")"
}
