// Package geom provides a small set of 2D value types and the searches that
// operate on them.
//
// # Points and shapes
//
// [Point] is a position in the plane and [Vec2] a displacement between two
// positions. [Shape] is a tagged union of the three closed shapes this package
// knows about:
//   - [Circle]
//   - [Rect]
//   - [Triangle]
//
// Each variant is usable on its own and can be turned into a [Shape] with its
// Shape method. Shapes are plain comparable values; none of their fields are
// validated. A rectangle with a negative width has a negative area, and a
// triangle with collinear vertices has an area of zero.
//
// # Extremal search
//
// [FurthestFromOrigin], [MinByKey], and [MaxByKey] scan a slice once and
// return a pointer to the winning element, or nil for an empty slice. They
// differ in how they break ties: [MinByKey] keeps the first of several equal
// minima, while [MaxByKey] and [FurthestFromOrigin] keep the last of several
// equal maxima.
//
// [FurthestFromOrigin] accepts any [Plottable] element type. [Point], [Vec2],
// and [Pair] implement [Plottable], and so can any type that can report its
// coordinates.
package geom
