package vecbool

import (
	"testing"

	"github.com/tdewolff/test"
)

func rectPath(x, y, w, h float64) *Path {
	return NewRect(x, y, w, h)
}

func TestGraphBounds(t *testing.T) {
	g := NewGraph()
	g.AddContour(squareContour(0, 0, 10))
	g.AddContour(squareContour(20, 20, 5))
	b := g.Bounds()
	test.T(t, b.Min, Point{0, 0})
	test.T(t, b.Max, Point{25, 25})
}

func TestUnionOfDisjointSquares(t *testing.T) {
	a := pathToGraph(rectPath(0, 0, 10, 10))
	b := pathToGraph(rectPath(20, 20, 10, 10))
	u := Union(a, b)
	test.That(t, len(u.Contours()) == 2)
}

func TestUnionOfOverlappingSquares(t *testing.T) {
	a := pathToGraph(rectPath(0, 0, 10, 10))
	b := pathToGraph(rectPath(5, 5, 10, 10))
	u := Union(a, b)
	test.That(t, len(u.Contours()) == 1)
	// The union of two overlapping 10x10 squares spans (0,0) to (15,15).
	test.T(t, u.Bounds().Min, Point{0, 0})
	test.T(t, u.Bounds().Max, Point{15, 15})
}

func TestIntersectOfOverlappingSquares(t *testing.T) {
	a := pathToGraph(rectPath(0, 0, 10, 10))
	b := pathToGraph(rectPath(5, 5, 10, 10))
	i := Intersect(a, b)
	test.That(t, len(i.Contours()) == 1)
	test.T(t, i.Bounds().Min, Point{5, 5})
	test.T(t, i.Bounds().Max, Point{10, 10})
}

func TestIntersectOfDisjointSquaresIsEmpty(t *testing.T) {
	a := pathToGraph(rectPath(0, 0, 10, 10))
	b := pathToGraph(rectPath(20, 20, 10, 10))
	i := Intersect(a, b)
	test.That(t, len(i.Contours()) == 0)
}

func TestDifferenceOfOverlappingSquares(t *testing.T) {
	a := pathToGraph(rectPath(0, 0, 10, 10))
	b := pathToGraph(rectPath(5, 5, 10, 10))
	d := Difference(a, b)
	test.That(t, len(d.Contours()) == 1)
}

func TestDifferenceOfDisjointSquaresKeepsFirst(t *testing.T) {
	a := pathToGraph(rectPath(0, 0, 10, 10))
	b := pathToGraph(rectPath(20, 20, 10, 10))
	d := Difference(a, b)
	test.That(t, len(d.Contours()) == 1)
	test.T(t, d.Bounds(), a.Bounds())
}

func TestXorOfOverlappingSquares(t *testing.T) {
	a := pathToGraph(rectPath(0, 0, 10, 10))
	b := pathToGraph(rectPath(5, 5, 10, 10))
	x := Xor(a, b)
	test.That(t, len(x.Contours()) == 2)
}

func TestGraphsReusableAfterOperation(t *testing.T) {
	a := pathToGraph(rectPath(0, 0, 10, 10))
	b := pathToGraph(rectPath(5, 5, 10, 10))
	Union(a, b)
	for _, c := range a.Contours() {
		test.That(t, len(c.overlaps) == 0)
		for _, e := range c.Edges() {
			test.That(t, len(e.Crossings()) == 0)
		}
	}
	// A second operation on the same operands must still succeed cleanly.
	i := Intersect(a, b)
	test.That(t, len(i.Contours()) == 1)
}

func TestOneSquareContainsAnother(t *testing.T) {
	outer := pathToGraph(rectPath(0, 0, 20, 20))
	inner := pathToGraph(rectPath(5, 5, 5, 5))
	u := Union(outer, inner)
	test.That(t, len(u.Contours()) == 1)
	test.T(t, u.Bounds(), outer.Bounds())

	i := Intersect(outer, inner)
	test.That(t, len(i.Contours()) == 1)
	test.T(t, i.Bounds(), inner.Bounds())

	d := Difference(outer, inner)
	test.That(t, len(d.Contours()) == 2)
}

func TestEntryForOp(t *testing.T) {
	test.That(t, entryForOp(OpIntersect, true, true))
	test.That(t, !entryForOp(OpIntersect, true, false))
	test.That(t, !entryForOp(OpUnion, true, true))
	test.That(t, entryForOp(OpUnion, true, false))
	test.That(t, !entryForOp(OpDifference, true, true))
	test.That(t, entryForOp(OpDifference, true, false))
	test.That(t, entryForOp(OpDifference, false, true))
	test.That(t, !entryForOp(OpDifference, false, false))
}

func TestKeepOperand(t *testing.T) {
	test.That(t, keepOperand(OpUnion, true, false))
	test.That(t, !keepOperand(OpUnion, true, true))
	test.That(t, keepOperand(OpIntersect, true, true))
	test.That(t, !keepOperand(OpIntersect, true, false))
	test.That(t, keepOperand(OpDifference, true, false))
	test.That(t, keepOperand(OpDifference, false, true))
}
