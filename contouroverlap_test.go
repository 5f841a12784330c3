package vecbool

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestContourOverlapAddOverlapMergesRuns(t *testing.T) {
	c1 := squareContour(0, 0, 10)
	c2 := squareContour(0, 0, 10)
	o := newContourOverlap(c1, c2)

	e := c1.Edge(0)
	f := c2.Edge(0)
	eo1 := EdgeOverlap{Edge1: e, Edge2: f, Range: NewIntersectRange(e.Curve, Range{0, 0.5}, f.Curve, Range{0, 0.5}, false)}
	eo2 := EdgeOverlap{Edge1: e, Edge2: f, Range: NewIntersectRange(e.Curve, Range{0.5, 1}, f.Curve, Range{0.5, 1}, false)}
	o.AddOverlap(eo1)
	o.AddOverlap(eo2)

	test.That(t, len(o.runs) == 1)
	test.That(t, len(o.runs[0].overlaps) == 2)
}

func TestContourOverlapIsCompleteWholeContour(t *testing.T) {
	c1 := squareContour(0, 0, 10)
	c2 := squareContour(0, 0, 10)
	o := newContourOverlap(c1, c2)
	for i := 0; i < 4; i++ {
		e := c1.Edge(i)
		f := c2.Edge(i)
		o.AddOverlap(EdgeOverlap{Edge1: e, Edge2: f, Range: NewIntersectRange(e.Curve, Range{0, 1}, f.Curve, Range{0, 1}, false)})
	}
	test.That(t, o.IsComplete())
}

func TestContourOverlapIsEmpty(t *testing.T) {
	o := newContourOverlap(squareContour(0, 0, 10), squareContour(20, 20, 10))
	test.That(t, o.IsEmpty())
}

func TestEdgesFollowAndFitsBefore(t *testing.T) {
	c1 := squareContour(0, 0, 10)
	c2 := squareContour(0, 0, 10)
	e0, e1 := c1.Edge(0), c1.Edge(1)
	f0 := c2.Edge(0)
	a := EdgeOverlap{Edge1: e0, Edge2: f0, Range: NewIntersectRange(e0.Curve, Range{0.5, 1}, f0.Curve, Range{0.5, 1}, false)}
	b := EdgeOverlap{Edge1: e1, Edge2: f0, Range: NewIntersectRange(e1.Curve, Range{0, 0.5}, f0.Curve, Range{0, 0.5}, false)}
	test.That(t, edgesFollow(a, b))
	test.That(t, fitsBefore(a, b))
}

func TestTangentSetUnambiguous(t *testing.T) {
	test.That(t, tangentSetUnambiguous(Point{1, 0}, Point{0, 1}, Point{-1, 0}, Point{0, -1}))
	test.That(t, !tangentSetUnambiguous(Point{1, 0}, Point{1, 0}, Point{0, 1}, Point{0, -1}))
}

func TestOffsetProbe(t *testing.T) {
	c := NewLine(Point{0, 0}, Point{10, 0})
	p := offsetProbe(c, 0.5, 1)
	test.That(t, p.X > 5.0 && p.X < 5.2)
}
