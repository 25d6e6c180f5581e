package geom

import (
	"cmp"
)

// Plottable describes values that have a position in the plane.
type Plottable interface {
	// Splat returns the x and y coordinates.
	Splat() (x, y float64)
}

// Pair is a bare coordinate pair, x followed by y.
type Pair [2]float64

var _ Plottable = Pair{}

// Splat implements Plottable.
func (p Pair) Splat() (float64, float64) {
	return p[0], p[1]
}

// FurthestFromOrigin returns a pointer to the element of items with the
// greatest distance from the origin, or nil if items is empty. When several
// elements are equally far away, the last of them is returned.
//
// The result points into the backing array of items. It is invalidated by
// anything that reallocates that array.
//
// Elements whose squared distance is NaN never displace an element with a
// comparable distance.
func FurthestFromOrigin[T Plottable](items []T) *T {
	return MaxByKey(items, func(el *T) float64 {
		return Vec((*el).Splat()).Hypot2()
	})
}

// MinByKey returns a pointer to the first element of items for which key
// returns the smallest value, or nil if items is empty. Key is called exactly
// once per element, in order.
//
// Keys are compared with <. A NaN key is never smaller than any other key, so
// a NaN key on the first element is never displaced.
func MinByKey[T any, K cmp.Ordered](items []T, key func(*T) K) *T {
	if len(items) == 0 {
		return nil
	}
	minEl := &items[0]
	minKey := key(minEl)
	for i := 1; i < len(items); i++ {
		el := &items[i]
		if k := key(el); k < minKey {
			minEl, minKey = el, k
		}
	}
	return minEl
}

// MaxByKey returns a pointer to the last element of items for which key
// returns the largest value, or nil if items is empty. Key is called exactly
// once per element, in order.
//
// A running maximum that is NaN is replaced by the next element's key.
func MaxByKey[T any, K cmp.Ordered](items []T, key func(*T) K) *T {
	if len(items) == 0 {
		return nil
	}
	maxEl := &items[0]
	maxKey := key(maxEl)
	for i := 1; i < len(items); i++ {
		el := &items[i]
		if k := key(el); k >= maxKey || isNaN(maxKey) {
			maxEl, maxKey = el, k
		}
	}
	return maxEl
}

// isNaN reports whether k is a floating point NaN. It relies on NaN being the
// only value of an ordered type that is unequal to itself.
func isNaN[K cmp.Ordered](k K) bool {
	return k != k
}
