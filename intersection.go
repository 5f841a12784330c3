package vecbool

import "math"

// Intersection is an immutable record of a single proper intersection
// between two curves at parameters T1 and T2.
type Intersection struct {
	Curve1 Curve
	T1     float64
	Curve2 Curve
	T2     float64

	locCached bool
	location  Point
}

func NewIntersection(c1 Curve, t1 float64, c2 Curve, t2 float64) Intersection {
	return Intersection{Curve1: c1, T1: snapParam(t1), Curve2: c2, T2: snapParam(t2)}
}

func (x Intersection) Location() Point {
	if x.locCached {
		return x.location
	}
	x.location = x.Curve1.PointAt(x.T1)
	x.locCached = true
	return x.location
}

func (x Intersection) IsAtStartOf1() bool { return closeTo(x.T1, 0, ParamClose) }
func (x Intersection) IsAtEndOf1() bool   { return closeTo(x.T1, 1, ParamClose) }
func (x Intersection) IsAtStartOf2() bool { return closeTo(x.T2, 0, ParamClose) }
func (x Intersection) IsAtEndOf2() bool   { return closeTo(x.T2, 1, ParamClose) }

func (x Intersection) IsAtEndpoint() bool {
	return x.IsAtStartOf1() || x.IsAtEndOf1() || x.IsAtStartOf2() || x.IsAtEndOf2()
}

// leftCurve1/rightCurve1 split curve1 at T1; likewise for curve2. These are
// used both by the tangent test below and by crossing insertion, which
// needs the pieces on both sides of the intersection to compute interleave.
func (x Intersection) leftCurve1() Curve  { l, _ := x.Curve1.Split(x.T1); return l }
func (x Intersection) rightCurve1() Curve { _, r := x.Curve1.Split(x.T1); return r }
func (x Intersection) leftCurve2() Curve  { l, _ := x.Curve2.Split(x.T2); return l }
func (x Intersection) rightCurve2() Curve { _, r := x.Curve2.Split(x.T2); return r }

// IsTangent reports whether the two curves touch without crossing at this
// intersection: away from any endpoint, at least one unit tangent of
// curve1 (approaching or leaving the split) coincides with one unit
// tangent of curve2, or with its opposite, within TangentClose.
func (x Intersection) IsTangent() bool {
	if x.IsAtEndpoint() {
		return false
	}
	t1l := x.leftCurve1().TangentAt(1)
	t1r := x.rightCurve1().TangentAt(0)
	t2l := x.leftCurve2().TangentAt(1)
	t2r := x.rightCurve2().TangentAt(0)
	for _, a := range [2]Point{t1l, t1r} {
		for _, b := range [2]Point{t2l, t2r} {
			if TangentsClose(a, b) || TangentsClose(a, b.Neg()) {
				return true
			}
		}
	}
	return false
}

// Crosses reports whether the two curves actually pass through each other
// at this intersection, versus merely touching. Tangent intersections never
// cross. Interior (non-endpoint) intersections are decided by checking that
// curve2's two tangents interleave with curve1's around the unit circle,
// each tangent taken pointing away from the intersection; endpoint
// intersections always report false here and are decided by the caller
// (crossing insertion), which must first aggregate tangents across the
// joined edge.
func (x Intersection) Crosses() bool {
	if x.IsTangent() {
		return false
	}
	if x.IsAtEndpoint() {
		return false
	}
	c1l := x.leftCurve1().TangentAt(1).Neg().Angle()
	c1r := x.rightCurve1().TangentAt(0).Angle()
	c2l := x.leftCurve2().TangentAt(1).Neg().Angle()
	c2r := x.rightCurve2().TangentAt(0).Angle()
	return tangentsInterleave(c1l, c1r, c2l, c2r)
}

// tangentsInterleave reports whether exactly one of b1,b2 lies inside the
// angular arc going counterclockwise from a1 to a2 (the standard test for
// two curve-pairs crossing rather than touching at a point).
func tangentsInterleave(a1, a2, b1, b2 float64) bool {
	ar := AngleRange{Start: a1, End: a2}
	in1 := ar.Contains(b1)
	in2 := ar.Contains(b2)
	return in1 != in2
}

// IntersectRange describes a contiguous parameter interval over which two
// curves are coincident.
type IntersectRange struct {
	Curve1     Curve
	Range1     Range
	Curve2     Curve
	Range2     Range
	Reversed   bool

	sub1Cached, sub2Cached bool
	sub1, sub2             Curve
}

func NewIntersectRange(c1 Curve, r1 Range, c2 Curve, r2 Range, reversed bool) *IntersectRange {
	return &IntersectRange{Curve1: c1, Range1: r1, Curve2: c2, Range2: r2, Reversed: reversed}
}

// Subcurve1 and Subcurve2 return the piece of each curve spanned by the
// overlap. Each is computed from its own curve's splitter -- see DESIGN.md's
// "Open Question Decisions" for why this deliberately does not reproduce
// the original's curve1-for-both-sides behavior.
func (r *IntersectRange) Subcurve1() Curve {
	if r.sub1Cached {
		return r.sub1
	}
	r.sub1 = r.Curve1.Subcurve(r.Range1)
	r.sub1Cached = true
	return r.sub1
}

func (r *IntersectRange) Subcurve2() Curve {
	if r.sub2Cached {
		return r.sub2
	}
	r.sub2 = r.Curve2.Subcurve(r.Range2)
	r.sub2Cached = true
	return r.sub2
}

// Middle returns a representative Intersection at the midpoints of both
// parameter ranges.
func (r *IntersectRange) Middle() Intersection {
	return NewIntersection(r.Curve1, r.Range1.Middle(), r.Curve2, r.Range2.Middle())
}

// FitsBefore reports whether o's overlap begins where r's ends on curve1,
// within OverlapClose, the same test used to grow a Run in
// contouroverlap.go.
func (r *IntersectRange) FitsBefore(o *IntersectRange) bool {
	return closeTo(r.Range1.End, o.Range1.Start, OverlapClose) ||
		(closeTo(r.Range1.End, 1, ParamClose) && closeTo(o.Range1.Start, 0, ParamClose) &&
			PointsClose(r.Curve1.P3, o.Curve1.P0))
}

// isEssentiallyZero reports whether v is within tol of zero; it is used for
// the distance polynomial evaluated during overlap detection in clip.go.
func isEssentiallyZero(v, tol float64) bool {
	return math.Abs(v) <= tol
}
