package vecbool

import "math"

// maxClipIterations bounds each clip-and-swap descent; maxClipDepth bounds
// the subdivide-on-stall recursion. Both are generous relative to the
// convergence rate Bézier clipping achieves in practice (quadratic once the
// interval is small), so hitting either limit only ever produces a slightly
// coarser (never wrong-signed) result.
const (
	maxClipIterations = 64
	maxClipDepth       = 24
	maxRootsPerPair    = 9 // two cubics can intersect at most nine times by Bezout's bound
)

// IntersectionVisitor is invoked once per proper intersection found between
// two curves. Returning true stops the search early.
type IntersectionVisitor func(Intersection) bool

// IntersectCurves finds all proper intersections between c1 and c2, or (if
// the two are coincident over some interval) a single overlap range. It
// never returns both: overlap detection short-circuits further root
// isolation over the coincident interval.
func IntersectCurves(c1, c2 Curve, visit IntersectionVisitor) *IntersectRange {
	if !c1.TightBounds().Outset(BoundsClose).Intersects(c2.TightBounds()) {
		return nil
	}
	if c1.IsPoint || c2.IsPoint {
		return intersectWithPoint(c1, c2, visit)
	}
	if c1.IsLine && c2.IsLine {
		if t1, t2, ok := lineLineIntersection(c1, c2); ok {
			visit(NewIntersection(c1, t1, c2, t2))
			return nil
		}
		return lineLineOverlap(c1, c2)
	}

	var overlap *IntersectRange
	stopped := false
	roots := 0
	clipRecursive(c1, c2, Range{0, 1}, Range{0, 1}, 0, visit, &stopped, &overlap, &roots)
	return overlap
}

func intersectWithPoint(c1, c2 Curve, visit IntersectionVisitor) *IntersectRange {
	if c1.IsPoint && c2.IsPoint {
		if PointsClose(c1.P0, c2.P0) {
			visit(NewIntersection(c1, 0, c2, 0))
		}
		return nil
	}
	if c1.IsPoint {
		t := c2.ClosestPoint(c1.P0)
		if c2.PointAt(t).Distance(c1.P0) < PointClose {
			visit(NewIntersection(c1, 0, c2, snapParam(t)))
		}
		return nil
	}
	t := c1.ClosestPoint(c2.P0)
	if c1.PointAt(t).Distance(c2.P0) < PointClose {
		visit(NewIntersection(c1, snapParam(t), c2, 0))
	}
	return nil
}

// lineLineOverlap handles the case lineLineIntersection declines (parallel
// direction vectors): if the two segments are also collinear, project both
// onto c1's axis and report the shared sub-interval as an overlap range,
// rather than silently reporting no intersection at all.
func lineLineOverlap(c1, c2 Curve) *IntersectRange {
	dir := c1.P3.Sub(c1.P0)
	n1 := dir.Length()
	if closeTo(n1, 0, PointClose) {
		return nil
	}
	u := dir.Norm(1)
	toP0 := c2.P0.Sub(c1.P0)
	toP3 := c2.P3.Sub(c1.P0)
	if !closeTo(dir.Cross(toP0)/n1, 0, PointClose) || !closeTo(dir.Cross(toP3)/n1, 0, PointClose) {
		return nil
	}

	s0 := toP0.Dot(u)
	s3 := toP3.Dot(u)
	lo := math.Max(0, math.Min(s0, s3))
	hi := math.Min(n1, math.Max(s0, s3))
	if hi-lo < PointClose {
		return nil
	}

	n2 := s3 - s0
	r1 := Range{lo / n1, hi / n1}
	var r2 Range
	if n2 > 0 {
		r2 = Range{(lo - s0) / n2, (hi - s0) / n2}
	} else {
		r2 = Range{(hi - s0) / n2, (lo - s0) / n2}
	}
	r2.Start = math.Max(0, math.Min(1, r2.Start))
	r2.End = math.Max(0, math.Min(1, r2.End))
	return buildOverlapRange(c1, r1, c2, r2)
}

// clipRecursive is the Bézier-clipping core. r1/r2 are the current
// candidate parameter ranges on the *original* c1/c2 (the function always
// re-derives the live sub-segment from these via Subcurve, rather than
// threading already-clipped Curve values, so floating point error never
// compounds across iterations).
func clipRecursive(c1, c2 Curve, r1, r2 Range, depth int, visit IntersectionVisitor, stopped *bool, overlap *(*IntersectRange), roots *int) {
	if *stopped || *overlap != nil || *roots >= maxRootsPerPair || depth > maxClipDepth {
		return
	}

	sub1 := c1.Subcurve(r1)
	sub2 := c2.Subcurve(r2)
	if !sub1.TightBounds().Outset(BoundsClose).Intersects(sub2.TightBounds()) {
		return
	}

	cur1, cur2 := r1, r2
	shrunk := false
	for iter := 0; iter < maxClipIterations; iter++ {
		if cur1.HasConverged(6) || cur2.HasConverged(6) {
			t1, t2 := cur1.Middle(), cur2.Middle()
			if cur1.HasConverged(6) {
				t2 = cur2.AtParam(c2.Subcurve(cur2).ClosestPoint(c1.PointAt(t1)))
			} else {
				t1 = cur1.AtParam(c1.Subcurve(cur1).ClosestPoint(c2.PointAt(t2)))
			}
			t2 = refineOnCurve(c1, t1, c2, t2)
			emit(c1, t1, c2, t2, visit, stopped, roots)
			return
		}

		clipping1 := iter%2 == 0
		var clipTarget, fatSrc Curve
		var clipRange, fatRange *Range
		if clipping1 {
			clipTarget = c1.Subcurve(cur1)
			fatSrc = c2.Subcurve(cur2)
			clipRange = &cur1
		} else {
			clipTarget = c2.Subcurve(cur2)
			fatSrc = c1.Subcurve(cur1)
			clipRange = &cur2
		}
		_ = fatRange

		dmin, dmax := fatLineEnvelope(fatSrc)
		d := distancesToBaseline(clipTarget, fatSrc.P0, fatSrc.P3)
		localRange, ok := clipConvexHull(d, dmin, dmax)
		if !ok {
			return
		}

		newRange := Range{clipRange.AtParam(localRange.Start), clipRange.AtParam(localRange.End)}
		shrinkage := localRange.Size()
		*clipRange = newRange

		if shrinkage > 0.8 {
			// Failed to shrink by 20%: either the segments are coincident
			// over this stretch, or there are multiple roots to isolate.
			if looksLikeOverlap(d, dmax-dmin) {
				*overlap = buildOverlapRange(c1, cur1, c2, cur2)
				return
			}
			if depth >= maxClipDepth {
				return
			}
			if c1.Subcurve(cur1).Length() >= c2.Subcurve(cur2).Length() {
				mid1 := cur1.Middle()
				clipRecursive(c1, c2, Range{cur1.Start, mid1}, cur2, depth+1, visit, stopped, overlap, roots)
				clipRecursive(c1, c2, Range{mid1, cur1.End}, cur2, depth+1, visit, stopped, overlap, roots)
			} else {
				mid2 := cur2.Middle()
				clipRecursive(c1, c2, cur1, Range{cur2.Start, mid2}, depth+1, visit, stopped, overlap, roots)
				clipRecursive(c1, c2, cur1, Range{mid2, cur2.End}, depth+1, visit, stopped, overlap, roots)
			}
			return
		}
		shrunk = true
	}
	if shrunk {
		t1, t2 := cur1.Middle(), cur2.Middle()
		t2 = refineOnCurve(c1, t1, c2, t2)
		emit(c1, t1, c2, t2, visit, stopped, roots)
	}
}

func emit(c1 Curve, t1 float64, c2 Curve, t2 float64, visit IntersectionVisitor, stopped *bool, roots *int) {
	if *stopped {
		return
	}
	*roots++
	if visit(NewIntersection(c1, t1, c2, t2)) {
		*stopped = true
	}
}

// refineOnCurve re-projects the point found at t1 on c1 onto c2 near t2,
// tightening t2 by a 20-step ternary search within ±0.01 of it.
func refineOnCurve(c1 Curve, t1 float64, c2 Curve, t2 float64) float64 {
	p := c1.PointAt(t1)
	lo := math.Max(0, t2-0.01)
	hi := math.Min(1, t2+0.01)
	for i := 0; i < 20; i++ {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if c2.PointAt(m1).Distance(p) < c2.PointAt(m2).Distance(p) {
			hi = m2
		} else {
			lo = m1
		}
	}
	return snapParam((lo + hi) / 2)
}

// fatLineEnvelope computes the [dmin,dmax] band, relative to the baseline
// through c.P0/c.P3, that is guaranteed to contain all of c (Sederberg &
// Nishita's cubic fat-line bound).
func fatLineEnvelope(c Curve) (float64, float64) {
	baseline := c.P3.Sub(c.P0)
	n := baseline.Length()
	if closeTo(n, 0, PointClose) {
		return 0, 0
	}
	normal := baseline.Rot90CCW().Norm(1)
	d1 := c.C1.Sub(c.P0).Dot(normal)
	d2 := c.C2.Sub(c.P0).Dot(normal)
	var factor float64
	if d1*d2 > 0 {
		factor = 3.0 / 4.0
	} else {
		factor = 4.0 / 9.0
	}
	dmin := factor * math.Min(0, math.Min(d1, d2))
	dmax := factor * math.Max(0, math.Max(d1, d2))
	return dmin, dmax
}

// distancesToBaseline returns the signed distance of each of c's four
// control points from the line through (base0,base1), forming the explicit
// distance polynomial's Bernstein control values.
func distancesToBaseline(c Curve, base0, base1 Point) [4]float64 {
	baseline := base1.Sub(base0)
	n := baseline.Length()
	if closeTo(n, 0, PointClose) {
		return [4]float64{
			c.P0.Distance(base0), c.C1.Distance(base0),
			c.C2.Distance(base0), c.P3.Distance(base0),
		}
	}
	normal := baseline.Rot90CCW().Norm(1)
	return [4]float64{
		c.P0.Sub(base0).Dot(normal),
		c.C1.Sub(base0).Dot(normal),
		c.C2.Sub(base0).Dot(normal),
		c.P3.Sub(base0).Dot(normal),
	}
}

// clipConvexHull intersects the explicit distance polygon (control points
// at parameter positions 0, 1/3, 2/3, 1) against the horizontal band
// [dmin,dmax], returning the parameter sub-range that could still contain a
// root. This walks the control polygon in Bernstein order rather than its
// true convex hull; since that polygon is x-monotonic the polyline already
// bounds the region at least as tightly as required for a correct (if
// occasionally slightly conservative) clip.
func clipConvexHull(d [4]float64, dmin, dmax float64) (Range, bool) {
	xs := [4]float64{0, 1.0 / 3.0, 2.0 / 3.0, 1}
	var lo, hi float64
	found := false
	consider := func(x float64) {
		if !found {
			lo, hi, found = x, x, true
			return
		}
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	for i := 0; i < 4; i++ {
		if d[i] >= dmin && d[i] <= dmax {
			consider(xs[i])
		}
	}
	edges := [4][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	for _, e := range edges {
		i, j := e[0], e[1]
		d0, d1 := d[i], d[j]
		if d0 == d1 {
			continue
		}
		x0, x1 := xs[i], xs[j]
		for _, level := range [2]float64{dmin, dmax} {
			if (d0 < level) != (d1 < level) {
				t := (level - d0) / (d1 - d0)
				if t >= 0 && t <= 1 {
					consider(x0 + t*(x1-x0))
				}
			}
		}
	}
	if !found {
		return Range{}, false
	}
	lo = math.Max(0, lo)
	hi = math.Min(1, hi)
	if lo > hi {
		return Range{}, false
	}
	return Range{lo, hi}, true
}

// looksLikeOverlap reports whether the distance polynomial is essentially
// flat and near zero across the whole clip target, relative to the scale of
// the fat-line band -- the signature of two coincident/colinear segments
// rather than a cluster of nearby roots.
func looksLikeOverlap(d [4]float64, bandWidth float64) bool {
	tol := math.Max(OverlapClose, bandWidth*0.5)
	for _, v := range d {
		if !isEssentiallyZero(v, tol) {
			return false
		}
	}
	return true
}

// buildOverlapRange constructs the IntersectRange covering the full
// contiguous interval found, determining direction from whether the two
// segments' tangents at the middle of the overlap point the same way.
func buildOverlapRange(c1 Curve, r1 Range, c2 Curve, r2 Range) *IntersectRange {
	t1 := c1.TangentAt(r1.Middle())
	t2 := c2.TangentAt(r2.Middle())
	reversed := t1.Dot(t2) < 0
	return NewIntersectRange(c1, r1, c2, r2, reversed)
}
