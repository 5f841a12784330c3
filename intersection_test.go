package vecbool

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestIntersectionLocation(t *testing.T) {
	c1 := NewLine(Point{0, 0}, Point{10, 0})
	c2 := NewLine(Point{5, -5}, Point{5, 5})
	x := NewIntersection(c1, 0.5, c2, 0.5)
	test.T(t, x.Location(), Point{5, 0})
}

func TestIntersectionEndpointFlags(t *testing.T) {
	c1 := NewLine(Point{0, 0}, Point{10, 0})
	c2 := NewLine(Point{0, 0}, Point{0, 10})
	x := NewIntersection(c1, 0, c2, 0)
	test.That(t, x.IsAtStartOf1())
	test.That(t, x.IsAtStartOf2())
	test.That(t, x.IsAtEndpoint())
	test.That(t, !x.IsAtEndOf1())
}

func TestIntersectionCrossingLines(t *testing.T) {
	c1 := NewLine(Point{-5, 0}, Point{5, 0})
	c2 := NewLine(Point{0, -5}, Point{0, 5})
	x := NewIntersection(c1, 0.5, c2, 0.5)
	test.That(t, !x.IsTangent())
	test.That(t, x.Crosses())
}

func TestIntersectionEndpointNeverTangent(t *testing.T) {
	// IsTangent is defined only for interior intersections; at an endpoint
	// it always reports false regardless of the approach directions.
	c1 := NewLine(Point{-5, 0}, Point{0, 0})
	c2 := NewLine(Point{0, 0}, Point{5, 0})
	x := NewIntersection(c1, 1, c2, 0)
	test.That(t, x.IsAtEndpoint())
	test.That(t, !x.IsTangent())
}

func TestTangentsInterleave(t *testing.T) {
	// a1..a2 sweeps the upper half-plane (0..pi); b1 inside, b2 outside.
	test.That(t, tangentsInterleave(0, math.Pi, math.Pi/2, -math.Pi/2))
	test.That(t, !tangentsInterleave(0, math.Pi, math.Pi/4, 3*math.Pi/4))
}

func TestIntersectRangeSubcurves(t *testing.T) {
	c1 := NewLine(Point{0, 0}, Point{10, 0})
	c2 := NewLine(Point{0, 0}, Point{10, 0})
	r := NewIntersectRange(c1, Range{0.25, 0.75}, c2, Range{0.25, 0.75}, false)
	test.That(t, PointsCloseTol(r.Subcurve1().P0, Point{2.5, 0}, 1e-9))
	test.That(t, PointsCloseTol(r.Subcurve1().P3, Point{7.5, 0}, 1e-9))
}

func TestIntersectRangeMiddle(t *testing.T) {
	c1 := NewLine(Point{0, 0}, Point{10, 0})
	c2 := NewLine(Point{0, 0}, Point{10, 0})
	r := NewIntersectRange(c1, Range{0, 1}, c2, Range{0, 1}, false)
	mid := r.Middle()
	test.Float(t, mid.T1, 0.5)
	test.Float(t, mid.T2, 0.5)
}

func TestIntersectRangeFitsBefore(t *testing.T) {
	c := NewLine(Point{0, 0}, Point{10, 0})
	r1 := NewIntersectRange(c, Range{0, 0.5}, c, Range{0, 0.5}, false)
	r2 := NewIntersectRange(c, Range{0.5, 1}, c, Range{0.5, 1}, false)
	test.That(t, r1.FitsBefore(r2))
	test.That(t, !r2.FitsBefore(r1))
}

func TestIsEssentiallyZero(t *testing.T) {
	test.That(t, isEssentiallyZero(1e-8, 1e-6))
	test.That(t, !isEssentiallyZero(1e-3, 1e-6))
}

// TestInteriorTangentTouchDoesNotCross builds a cubic whose only contact
// with the line y=x is a genuine interior tangency at (5,5) (the curve
// stays on the y>=x side everywhere else, touching but never dipping
// below), the same kind of touch a containment ray can graze when it
// passes near a curved boundary (e.g. the top of a circle) without
// actually crossing to the other side. Contour.ContainsPoint's ray-cast
// visitor must not count this as a crossing.
func TestInteriorTangentTouchDoesNotCross(t *testing.T) {
	bump := NewCurve(Point{0, 1}, Point{10.0 / 3, 3}, Point{20.0 / 3, 19.0 / 3}, Point{10, 11})
	line := NewLine(Point{-5, -5}, Point{15, 15})
	x := NewIntersection(line, 0.5, bump, 0.5)

	test.That(t, PointsCloseTol(x.Location(), Point{5, 5}, 1e-3))
	test.That(t, !x.IsAtEndpoint())
	test.That(t, x.IsTangent())
	test.That(t, !x.Crosses())
}
