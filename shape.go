package geom

type ShapeKind int

const (
	// A circle.
	CircleKind ShapeKind = iota + 1
	// A rectangle given by its top left corner and its dimensions.
	RectKind
	// A triangle given by its three vertices.
	TriangleKind
)

func (k ShapeKind) String() string {
	switch k {
	case CircleKind:
		return "circle"
	case RectKind:
		return "rect"
	case TriangleKind:
		return "triangle"
	default:
		return "invalid"
	}
}

// Shape is a tagged union of [Circle], [Rect], and [Triangle]. Kind selects
// which of the remaining fields are meaningful:
//
//   - CircleKind: P0 is the center, Radius the radius.
//   - RectKind: P0 is the top left corner, W and H the dimensions.
//   - TriangleKind: P0, P1, and P2 are the vertices.
//
// Unused fields are zero, so two shapes are equal under == exactly when they
// describe the same variant with the same values. Use [Circle.Shape],
// [Rect.Shape], and [Triangle.Shape] to construct shapes.
//
// The zero value has no valid kind. Its area and perimeter are zero.
type Shape struct {
	// Shape is a struct and not an interface so that shapes stay comparable,
	// allocation-free values, in the same way as a single variant.

	Kind   ShapeKind
	P0     Point
	P1     Point
	P2     Point
	Radius float64
	W      float64
	H      float64
}

// Circle returns the shape as a circle. It panics if the kind is not
// CircleKind.
func (s Shape) Circle() Circle {
	if s.Kind != CircleKind {
		panic("called Circle on non-circle shape")
	}
	return Circle{Center: s.P0, Radius: s.Radius}
}

// Rect returns the shape as a rectangle. It panics if the kind is not
// RectKind.
func (s Shape) Rect() Rect {
	if s.Kind != RectKind {
		panic("called Rect on non-rect shape")
	}
	return Rect{TopLeft: s.P0, W: s.W, H: s.H}
}

// Triangle returns the shape as a triangle. It panics if the kind is not
// TriangleKind.
func (s Shape) Triangle() Triangle {
	if s.Kind != TriangleKind {
		panic("called Triangle on non-triangle shape")
	}
	return Triangle{A: s.P0, B: s.P1, C: s.P2}
}

// Area returns the area of the shape. See [Circle.Area], [Rect.Area], and
// [Triangle.Area] for the per-variant rules.
func (s Shape) Area() float64 {
	switch s.Kind {
	case CircleKind:
		return s.Circle().Area()
	case RectKind:
		return s.Rect().Area()
	case TriangleKind:
		return s.Triangle().Area()
	default:
		return 0
	}
}

// Perimeter returns the length of the shape's outline.
func (s Shape) Perimeter() float64 {
	switch s.Kind {
	case CircleKind:
		return s.Circle().Perimeter()
	case RectKind:
		return s.Rect().Perimeter()
	case TriangleKind:
		return s.Triangle().Perimeter()
	default:
		return 0
	}
}

func (s Shape) Translate(v Vec2) Shape {
	switch s.Kind {
	case CircleKind:
		return s.Circle().Translate(v).Shape()
	case RectKind:
		return s.Rect().Translate(v).Shape()
	case TriangleKind:
		return s.Triangle().Translate(v).Shape()
	default:
		return s
	}
}

func (s Shape) IsInf() bool {
	switch s.Kind {
	case CircleKind:
		return s.Circle().IsInf()
	case RectKind:
		return s.Rect().IsInf()
	case TriangleKind:
		return s.Triangle().IsInf()
	default:
		return false
	}
}

func (s Shape) IsNaN() bool {
	switch s.Kind {
	case CircleKind:
		return s.Circle().IsNaN()
	case RectKind:
		return s.Rect().IsNaN()
	case TriangleKind:
		return s.Triangle().IsNaN()
	default:
		return false
	}
}

func (s Shape) String() string {
	switch s.Kind {
	case CircleKind:
		return s.Circle().String()
	case RectKind:
		return s.Rect().String()
	case TriangleKind:
		return s.Triangle().String()
	default:
		return "invalid shape"
	}
}
