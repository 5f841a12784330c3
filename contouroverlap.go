package vecbool

import "math"

// EdgeOverlap describes a contiguous coincident interval between one edge
// of each of two contours.
type EdgeOverlap struct {
	Edge1, Edge2 *Edge
	Range        *IntersectRange
}

// run is a maximal sequence of abutting EdgeOverlaps, i.e. a single
// continuous stretch along which the two contours coincide.
type run struct {
	overlaps []EdgeOverlap
}

func (r *run) first() EdgeOverlap { return r.overlaps[0] }
func (r *run) last() EdgeOverlap  { return r.overlaps[len(r.overlaps)-1] }

// ContourOverlap is the structured description of everywhere two contours
// coincide, organized into runs, and is shared by reference between the two
// contours it connects.
type ContourOverlap struct {
	c1, c2 *Contour
	runs   []*run
}

func newContourOverlap(c1, c2 *Contour) *ContourOverlap {
	return &ContourOverlap{c1: c1, c2: c2}
}

// other returns the contour on the far side of the overlap from c.
func (o *ContourOverlap) other(c *Contour) *Contour {
	if c == o.c1 {
		return o.c2
	}
	return o.c1
}

func (o *ContourOverlap) IsEmpty() bool {
	return len(o.runs) == 0
}

// edgesFollow reports whether b's edge1 is the immediate successor of a's
// edge1 within their shared contour, used by fitsBefore's second clause.
func edgesFollow(a, b EdgeOverlap) bool {
	return a.Edge1.next() == b.Edge1
}

// fitsBefore reports whether b's overlap picks up immediately where a's
// leaves off, either because they share edge1 with abutting ranges or
// because a ends at parameter 1 of its edge1 and b begins at parameter 0 of
// edge1's successor.
func fitsBefore(a, b EdgeOverlap) bool {
	if a.Edge1 == b.Edge1 {
		return closeTo(a.Range.Range1.End, b.Range.Range1.Start, OverlapClose)
	}
	return closeTo(a.Range.Range1.End, 1, ParamClose) &&
		closeTo(b.Range.Range1.Start, 0, ParamClose) &&
		edgesFollow(a, b)
}

// AddOverlap inserts a new EdgeOverlap into the appropriate run, starting a
// fresh run when it fits neither the end of the last run nor the start of
// the first.
func (o *ContourOverlap) AddOverlap(eo EdgeOverlap) {
	for _, r := range o.runs {
		if fitsBefore(r.last(), eo) {
			r.overlaps = append(r.overlaps, eo)
			return
		}
		if fitsBefore(eo, r.first()) {
			r.overlaps = append([]EdgeOverlap{eo}, r.overlaps...)
			return
		}
	}
	o.runs = append(o.runs, &run{overlaps: []EdgeOverlap{eo}})
}

// IsComplete reports whether some run wraps fully around both contours --
// the two contours are then equivalent shapes.
func (o *ContourOverlap) IsComplete() bool {
	for _, r := range o.runs {
		if len(r.overlaps) > 0 && fitsBefore(r.last(), r.first()) {
			return true
		}
	}
	return false
}

// runEndTangents collects the four tangent directions leaving each end of a
// run: the two contours' edges leaving the overlap at its start and end.
// Parameter offsets of increasing magnitude (0.02 up to 0.5 of the adjacent
// edge) are tried until the angles are no longer ambiguous (i.e. no two of
// the four nearly coincide); the offsets are not limited by the lengths of
// the adjacent edges.
func runEndTangents(r *run) (startT1, startT2, endT1, endT2 Point, ok bool) {
	first := r.first()
	last := r.last()

	e1s, t1s := edgeAndParamBefore(first.Edge1, first.Range.Range1.Start)
	e2s, t2s := edgeAndParamBefore(first.Edge2, first.Range.Range2.Start)
	e1e, t1e := edgeAndParamAfter(last.Edge1, last.Range.Range1.End)
	e2e, t2e := edgeAndParamAfter(last.Edge2, last.Range.Range2.End)

	maxOffset := math.Min(e1s.Curve.Length(), e2s.Curve.Length())
	maxOffset = math.Min(maxOffset, math.Min(e1e.Curve.Length(), e2e.Curve.Length()))
	if maxOffset <= 0 {
		maxOffset = 1
	}

	for _, frac := range []float64{0.02, 0.05, 0.1, 0.2, 0.35, 0.5} {
		off := frac
		startT1 = tangentTowards(e1s.Curve, t1s, -off).Neg()
		startT2 = tangentTowards(e2s.Curve, t2s, -off).Neg()
		endT1 = tangentTowards(e1e.Curve, t1e, off)
		endT2 = tangentTowards(e2e.Curve, t2e, off)
		if tangentSetUnambiguous(startT1, startT2, endT1, endT2) {
			return startT1, startT2, endT1, endT2, true
		}
	}
	return startT1, startT2, endT1, endT2, false
}

// edgeAndParamBefore returns the edge and parameter reached by stepping
// backwards from (edge,t), crossing into the previous edge at t=0.
func edgeAndParamBefore(e *Edge, t float64) (*Edge, float64) {
	if t > 0 {
		return e, t
	}
	return e.previous(), 1
}

func edgeAndParamAfter(e *Edge, t float64) (*Edge, float64) {
	if t < 1 {
		return e, t
	}
	return e.next(), 0
}

// tangentTowards evaluates the tangent at t offset by delta (clamped to
// [0,1]) along the curve, oriented consistently so a negative delta looks
// backwards from t and a positive delta looks forwards.
func tangentTowards(c Curve, t, delta float64) Point {
	tt := t + delta
	if tt < 0 {
		tt = 0
	}
	if tt > 1 {
		tt = 1
	}
	return c.TangentAt(tt)
}

func tangentSetUnambiguous(pts ...Point) bool {
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if TangentsClose(pts[i], pts[j]) {
				return false
			}
		}
	}
	return true
}

// IsCrossing reports whether a run represents a genuine crossing (the two
// contours pass through each other) as opposed to a mere touch: the four
// tangents leaving the run's ends must interleave in polar-angle order;
// failing an unambiguous tangent read, fall back to probing containment just
// past each end.
func (o *ContourOverlap) IsCrossing(r *run) bool {
	t1s, t2s, t1e, t2e, ok := runEndTangents(r)
	if ok {
		a1 := t1s.Angle()
		a2 := t1e.Angle()
		b1 := t2s.Angle()
		b2 := t2e.Angle()
		return tangentsInterleave(a1, a2, b1, b2)
	}
	return o.probeCrossing(r)
}

// probeCrossing is the geometric fallback: sample a point just beyond each
// end of the run on contour1's side and compare their containment in
// contour2. Differing containment means the boundary genuinely crosses.
func (o *ContourOverlap) probeCrossing(r *run) bool {
	first := r.first()
	last := r.last()
	c1 := first.Edge1.Curve
	c2 := last.Edge1.Curve
	before := offsetProbe(c1, first.Range.Range1.Start, -1)
	after := offsetProbe(c2, last.Range.Range1.End, 1)
	other := o.other(first.Edge1.contour)
	return other.ContainsPoint(before) != other.ContainsPoint(after)
}

func offsetProbe(c Curve, t float64, sign float64) Point {
	tt := t + sign*0.01
	if tt < 0 {
		tt = 0.001
	}
	if tt > 1 {
		tt = 0.999
	}
	p := c.PointAt(tt)
	n := c.TangentAt(tt).Rot90CW()
	return p.Add(n.Norm(1e-4))
}

// MiddleCrossing builds the mutually-counterparted pair of crossings placed
// at the middle of a crossing run, flagged FromOverlap so cleanup does not
// later strip them as overlap-interior crossings.
func (o *ContourOverlap) MiddleCrossing(r *run) (*EdgeCrossing, *EdgeCrossing) {
	mid := r.overlaps[len(r.overlaps)/2]
	x := mid.Range.Middle()
	x1 := &EdgeCrossing{Intersection: x, FromOverlap: true}
	swapped := NewIntersection(x.Curve2, x.T2, x.Curve1, x.T1)
	x2 := &EdgeCrossing{Intersection: swapped, FromOverlap: true}
	x1.Counterpart = x2
	x2.Counterpart = x1
	mid.Edge1.insertCrossing(x1)
	mid.Edge2.insertCrossing(x2)
	return x1, x2
}
