package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestShapeArea(t *testing.T) {
	tests := []struct {
		s    Shape
		want float64
	}{
		{Circle{Origin(), 2}.Shape(), 4 * math.Pi},
		{Rect{Origin(), 3, 4}.Shape(), 12},
		{Rect{Origin(), 3, -4}.Shape(), -12},
		{Triangle{Pt(0, 0), Pt(4, 0), Pt(0, 3)}.Shape(), 6},
		{Triangle{Pt(0, 3), Pt(4, 0), Pt(0, 0)}.Shape(), 6},
		{Shape{}, 0},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.s.Area(), cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestShapePerimeter(t *testing.T) {
	diff(t, 4*math.Pi, Circle{Origin(), 2}.Shape().Perimeter(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, 14.0, Rect{Origin(), 3, 4}.Shape().Perimeter())
	diff(t, 12.0, Triangle{Pt(0, 0), Pt(4, 0), Pt(0, 3)}.Shape().Perimeter(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, 0.0, Shape{}.Perimeter())
}

func TestShapeRoundTrip(t *testing.T) {
	c := Circle{Pt(1, 2), 3}
	r := Rect{Pt(-1, -2), 5, 6}
	tri := Triangle{Pt(0, 0), Pt(1, 0), Pt(0, 1)}

	diff(t, c, c.Shape().Circle())
	diff(t, r, r.Shape().Rect())
	diff(t, tri, tri.Shape().Triangle())

	diff(t, CircleKind, c.Shape().Kind)
	diff(t, RectKind, r.Shape().Kind)
	diff(t, TriangleKind, tri.Shape().Kind)
}

func TestShapeEquality(t *testing.T) {
	a := Circle{Pt(1, 2), 3}.Shape()
	b := Circle{Pt(1, 2), 3}.Shape()
	if a != b {
		t.Errorf("%v and %v should be equal", a, b)
	}

	// A circle and a rectangle with the same anchor must not compare equal,
	// even though the rectangle's dimensions and the radius are all zero.
	if (Circle{Origin(), 0}).Shape() == (Rect{Origin(), 0, 0}).Shape() {
		t.Error("shapes of different kinds compare equal")
	}
	if (Rect{Origin(), 1, 2}).Shape() == (Rect{Origin(), 2, 1}).Shape() {
		t.Error("rectangles with swapped dimensions compare equal")
	}
}

func TestShapeWrongKindPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"Circle", func() { Rect{Origin(), 1, 1}.Shape().Circle() }},
		{"Rect", func() { Triangle{}.Shape().Rect() }},
		{"Triangle", func() { Shape{}.Triangle() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestShapeTranslate(t *testing.T) {
	v := Vec(2, -1)
	shapes := []Shape{
		Circle{Pt(1, 1), 2}.Shape(),
		Rect{Pt(0, 0), 3, 4}.Shape(),
		Triangle{Pt(0, 0), Pt(4, 0), Pt(0, 3)}.Shape(),
	}
	for _, s := range shapes {
		moved := s.Translate(v)
		diff(t, s.Kind, moved.Kind)
		diff(t, s.Area(), moved.Area(), cmpopts.EquateApprox(0, 1e-12))
		diff(t, s, moved.Translate(v.Negate()))
	}

	diff(t, Rect{Pt(2, -1), 3, 4}.Shape(), Rect{Origin(), 3, 4}.Shape().Translate(v))
	diff(t, Shape{}, Shape{}.Translate(v))
}

func TestShapeIsInfNaN(t *testing.T) {
	if (Rect{Origin(), 1, 1}).Shape().IsInf() {
		t.Error("rect is infinite but shouldn't be")
	}
	if !(Rect{Origin(), math.Inf(1), 1}).Shape().IsInf() {
		t.Error("rect is finite but shouldn't be")
	}
	if !(Circle{Origin(), math.NaN()}).Shape().IsNaN() {
		t.Error("circle isn't NaN but should be")
	}
	if (Shape{}).IsNaN() || (Shape{}).IsInf() {
		t.Error("zero shape reported as non-finite")
	}
}

func TestShapeString(t *testing.T) {
	tests := []struct {
		s    Shape
		want string
	}{
		{Circle{Origin(), 2}.Shape(), "circle((0, 0), 2)"},
		{Rect{Pt(1, 2), 3, 4}.Shape(), "rect((1, 2), 3×4)"},
		{Triangle{Pt(0, 0), Pt(4, 0), Pt(0, 3)}.Shape(), "triangle((0, 0), (4, 0), (0, 3))"},
		{Shape{}, "invalid shape"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
