package vecbool

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPathBuildersChain(t *testing.T) {
	p := NewPath().Move(Point{0, 0}).Line(Point{10, 0}).Curve(Point{10, 5}, Point{5, 10}, Point{0, 10}).CloseSubpath()
	test.That(t, len(p.Elements) == 4)
	test.That(t, p.Elements[0].Kind == MoveTo)
	test.That(t, p.Elements[1].Kind == LineTo)
	test.That(t, p.Elements[2].Kind == CurveTo)
	test.That(t, p.Elements[3].Kind == Close)
}

func TestPathIsEmpty(t *testing.T) {
	p := NewPath()
	test.That(t, p.IsEmpty())
	p.Move(Point{0, 0})
	test.That(t, !p.IsEmpty())
}

func TestPathAppend(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 20, 5, 5)
	a.Append(b)
	test.That(t, len(a.Elements) == 10)
}

func TestNewRect(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	test.That(t, len(r.Elements) == 5) // move + 3 lines + close
	b := r.Bounds()
	test.T(t, b.Min, Point{1, 2})
	test.T(t, b.Max, Point{4, 6})
}

func TestNewOval(t *testing.T) {
	o := NewOval(0, 0, 5, 5)
	b := o.Bounds()
	test.That(t, PointsCloseTol(b.Min, Point{-5, -5}, 1e-2))
	test.That(t, PointsCloseTol(b.Max, Point{5, 5}, 1e-2))
}

func TestPathStringMatchesToSVGPath(t *testing.T) {
	p := NewRect(0, 0, 1, 1)
	test.String(t, p.String(), p.ToSVGPath())
}

func TestPathUnionIntersectDifferenceXorDelegate(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	test.That(t, !a.Union(b).IsEmpty())
	test.That(t, !a.Intersect(b).IsEmpty())
	test.That(t, !a.Difference(b).IsEmpty())
	test.That(t, !a.Xor(b).IsEmpty())
}
