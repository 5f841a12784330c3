package vecbool

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestCurvePointAtEndpoints(t *testing.T) {
	c := NewCurve(Point{0, 0}, Point{1, 1}, Point{2, 1}, Point{3, 0})
	test.T(t, c.PointAt(0), c.P0)
	test.T(t, c.PointAt(1), c.P3)
}

func TestNewLineIsLine(t *testing.T) {
	l := NewLine(Point{0, 0}, Point{9, 0})
	test.That(t, l.IsLine)
	test.T(t, l.PointAt(0.5), Point{4.5, 0})
	test.T(t, l.C1, Point{3, 0})
	test.T(t, l.C2, Point{6, 0})
}

func TestCurveIsPoint(t *testing.T) {
	p := Point{5, 5}
	c := NewCurve(p, p, p, p)
	test.That(t, c.IsPoint)
	l := NewLine(p, p)
	test.That(t, l.IsPoint)
}

func TestCurveSplit(t *testing.T) {
	c := NewCurve(Point{0, 0}, Point{0, 1}, Point{1, 1}, Point{1, 0})
	left, right := c.Split(0.5)
	test.T(t, left.P0, c.P0)
	mid := c.PointAt(0.5)
	test.That(t, PointsCloseTol(left.P3, mid, 1e-9))
	test.That(t, PointsCloseTol(right.P0, mid, 1e-9))
	test.T(t, right.P3, c.P3)
}

func TestCurveSubcurveFullRange(t *testing.T) {
	c := NewCurve(Point{0, 0}, Point{0, 1}, Point{1, 1}, Point{1, 0})
	full := c.Subcurve(Range{0, 1})
	test.T(t, full, c)
}

func TestCurveSubcurveMatchesSplit(t *testing.T) {
	c := NewCurve(Point{0, 0}, Point{0, 2}, Point{2, 2}, Point{2, 0})
	sub := c.Subcurve(Range{0.25, 0.75})
	test.That(t, PointsCloseTol(sub.P0, c.PointAt(0.25), 1e-6))
	test.That(t, PointsCloseTol(sub.P3, c.PointAt(0.75), 1e-6))
}

func TestCurveBoundsContainsControlPoints(t *testing.T) {
	c := NewCurve(Point{0, 0}, Point{-1, 5}, Point{6, -2}, Point{4, 4})
	b := c.Bounds()
	for _, p := range []Point{c.P0, c.C1, c.C2, c.P3} {
		test.That(t, b.ContainsPoint(p))
	}
}

func TestCurveTightBoundsWithinLooseBounds(t *testing.T) {
	c := NewCurve(Point{0, 0}, Point{0, 10}, Point{10, 10}, Point{10, 0})
	tight := c.TightBounds()
	loose := c.Bounds()
	test.That(t, tight.Min.X >= loose.Min.X-PointClose)
	test.That(t, tight.Max.X <= loose.Max.X+PointClose)
}

func TestCurveLengthOfStraightLine(t *testing.T) {
	l := NewLine(Point{0, 0}, Point{3, 4})
	test.Float(t, l.Length(), 5.0)
}

func TestCurveReverse(t *testing.T) {
	c := NewCurve(Point{0, 0}, Point{1, 1}, Point{2, 1}, Point{3, 0})
	r := c.Reverse()
	test.T(t, r.P0, c.P3)
	test.T(t, r.P3, c.P0)
	test.T(t, r.C1, c.C2)
	test.T(t, r.C2, c.C1)
}

func TestCurveClosestPoint(t *testing.T) {
	l := NewLine(Point{0, 0}, Point{10, 0})
	tt := l.ClosestPoint(Point{5, 3})
	test.That(t, math.Abs(tt-0.5) < 1e-3)
}

func TestLineLineIntersection(t *testing.T) {
	a := NewLine(Point{0, 0}, Point{10, 10})
	b := NewLine(Point{0, 10}, Point{10, 0})
	t1, t2, ok := lineLineIntersection(a, b)
	test.That(t, ok)
	test.Float(t, t1, 0.5)
	test.Float(t, t2, 0.5)
}

func TestLineLineIntersectionParallel(t *testing.T) {
	a := NewLine(Point{0, 0}, Point{10, 0})
	b := NewLine(Point{0, 1}, Point{10, 1})
	_, _, ok := lineLineIntersection(a, b)
	test.That(t, !ok)
}

func TestSnapParam(t *testing.T) {
	test.Float(t, snapParam(1e-6), 0)
	test.Float(t, snapParam(1-1e-6), 1)
	test.Float(t, snapParam(0.5), 0.5)
}

func TestCubicExtremaSemicircle(t *testing.T) {
	roots := cubicExtrema(0, 0, 10, 10)
	test.That(t, len(roots) <= 2)
}
