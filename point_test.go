package vecbool

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPointArithmetic(t *testing.T) {
	p := Point{1, 2}
	q := Point{3, -1}
	test.T(t, p.Add(q), Point{4, 1})
	test.T(t, p.Sub(q), Point{-2, 3})
	test.T(t, p.Neg(), Point{-1, -2})
	test.T(t, p.Scale(2), Point{2, 4})
	test.Float(t, p.Dot(q), 1.0)
	test.Float(t, p.Cross(q), -7.0)
}

func TestPointLengthAndNorm(t *testing.T) {
	p := Point{3, 4}
	test.Float(t, p.Length(), 5.0)
	n := p.Norm(10)
	test.Float(t, n.Length(), 10.0)
	test.T(t, Point{}.Norm(5), Point{})
}

func TestPointInterpolate(t *testing.T) {
	p := Point{0, 0}
	q := Point{10, 20}
	test.T(t, p.Interpolate(q, 0), p)
	test.T(t, p.Interpolate(q, 1), q)
	test.T(t, p.Interpolate(q, 0.5), Point{5, 10})
}

func TestPointRotate(t *testing.T) {
	p := Point{1, 0}
	test.T(t, p.Rot90CW(), Point{0, 1})
	test.T(t, p.Rot90CCW(), Point{0, -1})
}

func TestPointsClose(t *testing.T) {
	test.That(t, PointsClose(Point{1, 1}, Point{1 + 1e-12, 1}))
	test.That(t, !PointsClose(Point{1, 1}, Point{1.1, 1}))
}

func TestRange(t *testing.T) {
	r := Range{0.25, 0.75}
	test.Float(t, r.Size(), 0.5)
	test.Float(t, r.Middle(), 0.5)
	test.Float(t, r.AtParam(0), 0.25)
	test.Float(t, r.AtParam(1), 0.75)
	test.Float(t, r.ParamOf(0.5), 0.5)
	test.That(t, r.HasConverged(1))
	test.That(t, !Range{0, 1}.HasConverged(3))
}

func TestRangeOverlaps(t *testing.T) {
	test.That(t, Range{0, 0.5}.Overlaps(Range{0.5, 1}, 0))
	test.That(t, !Range{0, 0.4}.Overlaps(Range{0.6, 1}, 0))
}

func TestAngleRangeContains(t *testing.T) {
	ar := AngleRange{Start: 0, End: math.Pi / 2}
	test.That(t, ar.Contains(math.Pi/4))
	test.That(t, !ar.Contains(math.Pi))

	wrap := AngleRange{Start: 3 * math.Pi / 4, End: -3 * math.Pi / 4}
	test.That(t, wrap.Contains(math.Pi))
}

func TestRect(t *testing.T) {
	r := EmptyRect()
	test.That(t, r.IsEmpty())
	r = r.AddPoint(Point{1, 1}).AddPoint(Point{-1, 3})
	test.That(t, !r.IsEmpty())
	test.T(t, r.Min, Point{-1, 1})
	test.T(t, r.Max, Point{1, 3})
	test.Float(t, r.Width(), 2)
	test.Float(t, r.Height(), 2)
	test.That(t, r.ContainsPoint(Point{0, 2}))
	test.That(t, !r.ContainsPoint(Point{5, 5}))
}

func TestRectUnion(t *testing.T) {
	a := RectFromPoints(Point{0, 0}, Point{1, 1})
	b := RectFromPoints(Point{2, 2}, Point{3, 3})
	u := a.Union(b)
	test.T(t, u.Min, Point{0, 0})
	test.T(t, u.Max, Point{3, 3})
	test.T(t, a.Union(EmptyRect()), a)
	test.T(t, EmptyRect().Union(a), a)
}

func TestRectIntersects(t *testing.T) {
	a := RectFromPoints(Point{0, 0}, Point{2, 2})
	b := RectFromPoints(Point{1, 1}, Point{3, 3})
	c := RectFromPoints(Point{5, 5}, Point{6, 6})
	test.That(t, a.Intersects(b))
	test.That(t, !a.Intersects(c))
}

func TestRectOutset(t *testing.T) {
	a := RectFromPoints(Point{0, 0}, Point{1, 1})
	o := a.Outset(1)
	test.T(t, o.Min, Point{-1, -1})
	test.T(t, o.Max, Point{2, 2})
}
