package vecbool

import "math"

// BoolOp names one of the three primitive Boolean set operations. Xor is
// not a member of this set: it is performed as a composition, Union minus
// Intersect, rather than as its own marking rule.
type BoolOp int

const (
	OpUnion BoolOp = iota
	OpIntersect
	OpDifference
)

// Graph is a mutable ordered set of contours representing a filled region
// under the even-odd rule.
type Graph struct {
	contours []*Contour

	boundsCached bool
	bounds       Rect
}

func NewGraph() *Graph {
	return &Graph{}
}

func (g *Graph) AddContour(c *Contour) {
	c.owner = g
	g.contours = append(g.contours, c)
	g.boundsCached = false
}

func (g *Graph) Contours() []*Contour {
	return g.contours
}

func (g *Graph) Bounds() Rect {
	if g.boundsCached {
		return g.bounds
	}
	r := EmptyRect()
	for _, c := range g.contours {
		r = r.Union(c.Bounds())
	}
	g.bounds = r
	g.boundsCached = true
	return g.bounds
}

// Union, Intersect and Difference implement the three primitive Boolean
// operations. Xor is defined in terms of them below. Every operation leaves
// a and b free of crossings and overlaps on return, so both remain usable
// as operands in a later operation.
func Union(a, b *Graph) *Graph {
	return booleanOp(a, b, OpUnion)
}

func Intersect(a, b *Graph) *Graph {
	return booleanOp(a, b, OpIntersect)
}

func Difference(a, b *Graph) *Graph {
	return booleanOp(a, b, OpDifference)
}

// Xor is performed as Union minus Intersect. Union and Intersect each purge
// a and b of crossings before returning, so the second call sees clean
// operands exactly as if it were the first.
func Xor(a, b *Graph) *Graph {
	u := Union(a, b)
	i := Intersect(a, b)
	return Difference(u, i)
}

func booleanOp(a, b *Graph, op BoolOp) *Graph {
	insertCrossingsBetweenGraphs(a, b)
	insertSelfCrossings(a)
	insertSelfCrossings(b)
	cleanupCrossings(a)
	cleanupCrossings(b)

	precomputeInside(a)
	precomputeInside(b)
	markEntryExit(a, b, op, true)
	markEntryExit(b, a, op, false)

	result := NewGraph()
	for _, c := range stitchResults(allNonSelfCrossings(a)) {
		result.AddContour(c)
	}
	mergeNonIntersecting(a, b, result, op)

	purge(a)
	purge(b)
	result.NormalizeDirections()
	return result
}

// NormalizeDirections rewrites every contour to run clockwise. Even-odd
// filling never depends on winding direction, so this only exists to give
// callers (and tests) a canonical, comparable output with consistent
// orientation.
func (g *Graph) NormalizeDirections() {
	for i, c := range g.contours {
		if c.Direction() != Clockwise {
			g.contours[i] = c.Reverse()
		}
	}
}

// --- crossing insertion --------------------------------------------------

func insertCrossingsBetweenGraphs(a, b *Graph) {
	for _, ca := range a.contours {
		for _, cb := range b.contours {
			insertCrossingsBetween(ca, cb, false)
		}
	}
}

func insertSelfCrossings(g *Graph) {
	cs := g.contours
	for i := 0; i < len(cs); i++ {
		for j := i; j < len(cs); j++ {
			insertCrossingsBetween(cs[i], cs[j], true)
		}
	}
	for _, c := range cs {
		for _, e := range c.edges {
			for _, x := range selfIntersections(e.Curve) {
				pairCrossings(e, e, x, true)
			}
		}
	}
}

// selfIntersections finds where a single cubic segment loops back and
// crosses itself, by splitting the curve at its midpoint and clipping the
// two halves against each other rather than re-deriving the closed-form
// cubic self-intersection algebra. Only a crossing with one branch on
// either side of t=0.5 is found; a loop lying entirely within one half is
// not detected.
func selfIntersections(c Curve) []Intersection {
	if c.IsLine || c.IsPoint {
		return nil
	}
	left, right := c.Split(0.5)
	var found []Intersection
	IntersectCurves(left, right, func(x Intersection) bool {
		if x.IsAtEndOf1() && x.IsAtStartOf2() {
			return false // the shared split seam, not a self-crossing
		}
		t1 := x.T1 * 0.5
		t2 := 0.5 + x.T2*0.5
		found = append(found, NewIntersection(c, t1, c, t2))
		return false
	})
	return found
}

func insertCrossingsBetween(c1, c2 *Contour, selfFlag bool) {
	if !c1.Bounds().Outset(BoundsClose).Intersects(c2.Bounds()) {
		return
	}
	var overlap *ContourOverlap
	getOverlap := func() *ContourOverlap {
		if overlap == nil {
			overlap = c1.overlapWith(c2)
		}
		return overlap
	}

	for _, e1 := range c1.edges {
		for _, e2 := range c2.edges {
			if c1 == c2 {
				if e1 == e2 || e1.next() == e2 || e2.next() == e1 {
					continue
				}
			}
			if !e1.Curve.TightBounds().Outset(BoundsClose).Intersects(e2.Curve.TightBounds()) {
				continue
			}
			rng := IntersectCurves(e1.Curve, e2.Curve, func(x Intersection) bool {
				if !intersectionCrosses(x, e1, e2) {
					return false
				}
				pairCrossings(e1, e2, x, selfFlag)
				return false
			})
			if rng != nil {
				getOverlap().AddOverlap(EdgeOverlap{Edge1: e1, Edge2: e2, Range: rng})
			}
		}
	}
	if overlap != nil && !overlap.IsComplete() {
		for _, r := range overlap.runs {
			if overlap.IsCrossing(r) {
				x1, x2 := overlap.MiddleCrossing(r)
				x1.SelfCrossing = selfFlag
				x2.SelfCrossing = selfFlag
			}
		}
	}
}

func pairCrossings(e1, e2 *Edge, x Intersection, selfFlag bool) {
	x1 := &EdgeCrossing{Intersection: x, SelfCrossing: selfFlag}
	x2 := &EdgeCrossing{Intersection: NewIntersection(x.Curve2, x.T2, x.Curve1, x.T1), SelfCrossing: selfFlag}
	x1.Counterpart = x2
	x2.Counterpart = x1
	e1.insertCrossing(x1)
	e2.insertCrossing(x2)
}

// intersectionCrosses decides whether an intersection is a genuine crossing
// rather than a touch, working through an ordered list of tests from
// cheapest/most-reliable to the geometric probe fallback.
func intersectionCrosses(x Intersection, e1, e2 *Edge) bool {
	if x.IsTangent() {
		return false
	}
	if !x.IsAtEndpoint() {
		c1l := x.leftCurve1().TangentAt(1).Neg()
		c1r := x.rightCurve1().TangentAt(0)
		c2l := x.leftCurve2().TangentAt(1).Neg()
		c2r := x.rightCurve2().TangentAt(0)
		return tangentsInterleave(c1l.Angle(), c1r.Angle(), c2l.Angle(), c2r.Angle())
	}

	before1, t1b := edgeAndParamBefore(e1, x.T1)
	after1, t1a := edgeAndParamAfter(e1, x.T1)
	before2, t2b := edgeAndParamBefore(e2, x.T2)
	after2, t2a := edgeAndParamAfter(e2, x.T2)
	tb1 := tangentTowards(before1.Curve, t1b, -0.05)
	ta1 := tangentTowards(after1.Curve, t1a, 0.05)
	tb2 := tangentTowards(before2.Curve, t2b, -0.05)
	ta2 := tangentTowards(after2.Curve, t2a, 0.05)
	if tangentSetUnambiguous(tb1.Neg(), ta1, tb2.Neg(), ta2) {
		return tangentsInterleave(tb1.Neg().Angle(), ta1.Angle(), tb2.Neg().Angle(), ta2.Angle())
	}

	other := e2.contour
	p := x.Location()
	before := p.Add(tb1.Neg().Norm(1e-4))
	after := p.Add(ta1.Norm(1e-4))
	return other.ContainsPoint(before) != other.ContainsPoint(after)
}

// --- cleanup --------------------------------------------------------------

func cleanupCrossings(g *Graph) {
	for _, c := range g.contours {
		removeDuplicateJointCrossings(c)
		removeOverlapInteriorCrossings(c)
	}
}

func removeDuplicateJointCrossings(c *Contour) {
	for _, e := range c.edges {
		fc := e.firstCrossing()
		prev := e.previous()
		if fc == nil || prev == nil || prev == e {
			continue
		}
		pl := prev.lastCrossing()
		if pl == nil {
			continue
		}
		if closeTo(fc.Parameter(), 0, ParamClose) && closeTo(pl.Parameter(), 1, ParamClose) {
			removeCrossingAndCounterpart(pl)
		}
	}
}

func removeOverlapInteriorCrossings(c *Contour) {
	for _, o := range c.overlaps {
		isC1 := o.c1 == c
		for _, r := range o.runs {
			for _, eo := range r.overlaps {
				edge, rng := eo.Edge1, eo.Range.Range1
				if !isC1 {
					edge, rng = eo.Edge2, eo.Range.Range2
				}
				for _, x := range append([]*EdgeCrossing(nil), edge.crossings...) {
					if x.FromOverlap {
						continue
					}
					t := x.Parameter()
					if t >= rng.Start-ParamClose && t <= rng.End+ParamClose {
						removeCrossingAndCounterpart(x)
					}
				}
			}
		}
	}
}

func removeCrossingAndCounterpart(x *EdgeCrossing) {
	if x == nil {
		return
	}
	if x.Edge != nil {
		x.Edge.removeCrossing(x)
	}
	if x.Counterpart != nil {
		cp := x.Counterpart
		if cp.Edge != nil {
			cp.Edge.removeCrossing(cp)
		}
	}
}

// --- entry/exit marking ---------------------------------------------------

func precomputeInside(g *Graph) {
	for _, c := range g.contours {
		if c.inside != insideUnknown {
			continue
		}
		p := c.interiorPoint()
		count := 0
		for _, other := range g.contours {
			if other == c {
				continue
			}
			if other.ContainsPoint(p) {
				count++
			}
		}
		if count%2 == 0 {
			c.inside = insideFilled
		} else {
			c.inside = insideHole
		}
	}
}

func isInsideGraph(p Point, g *Graph) bool {
	count := 0
	for _, c := range g.contours {
		if c.ContainsPoint(p) {
			count++
		}
	}
	return count%2 == 1
}

// findContainingContour returns the innermost (smallest-bounds) contour of
// g containing p, or nil.
func findContainingContour(g *Graph, p Point) *Contour {
	var best *Contour
	bestArea := math.Inf(1)
	for _, c := range g.contours {
		if !c.ContainsPoint(p) {
			continue
		}
		b := c.Bounds()
		area := b.Width() * b.Height()
		if area < bestArea {
			bestArea, best = area, c
		}
	}
	return best
}

func entryForOp(op BoolOp, isFirst, markInside bool) bool {
	switch op {
	case OpIntersect:
		return markInside
	case OpDifference:
		if isFirst {
			return !markInside
		}
		return markInside
	default: // OpUnion
		return !markInside
	}
}

func markEntryExit(g, target *Graph, op BoolOp, isFirst bool) {
	for _, c := range g.contours {
		crossings := orderedNonSelfCrossings(c)
		if len(crossings) == 0 {
			continue
		}
		startEdge, startT := chooseStartParam(c)
		startPoint := startEdge.Curve.PointAt(startT)

		markInside := isInsideGraph(startPoint, target)
		// A contour nested inside a hole of the target is really outside the
		// target's filled area, so the raw even-odd count needs flipping; see
		// DESIGN.md for the self-intersecting-hole edge case this doesn't
		// handle.
		if cc := findContainingContour(target, startPoint); cc != nil && cc.inside == insideHole {
			markInside = !markInside
		}

		// entryForOp reports whether the stretch of c at its start point
		// belongs to the result; the first crossing after a kept stretch
		// leaves it, so that crossing is an exit.
		entry := !entryForOp(op, isFirst, markInside)
		n := len(crossings)
		startIdx := indexOfFirstAtOrAfter(crossings, startEdge, startT)
		for k := 0; k < n; k++ {
			x := crossings[(startIdx+k)%n]
			x.Entry = entry
			entry = !entry
		}
	}
}

func orderedNonSelfCrossings(c *Contour) []*EdgeCrossing {
	var out []*EdgeCrossing
	for _, e := range c.edges {
		for _, x := range e.crossings {
			if !x.SelfCrossing {
				out = append(out, x)
			}
		}
	}
	return out
}

func indexOfFirstAtOrAfter(list []*EdgeCrossing, edge *Edge, t float64) int {
	for i, x := range list {
		if x.Edge.index > edge.index || (x.Edge.index == edge.index && x.Parameter() >= t-ParamClose) {
			return i
		}
	}
	return 0
}

// chooseStartParam picks a start edge/parameter whose point is not itself a
// shared intersection, so the initial inside/outside test is unambiguous.
func chooseStartParam(c *Contour) (*Edge, float64) {
	for _, e := range c.edges {
		fc := e.firstCrossing()
		if fc == nil || !closeTo(fc.Parameter(), 0, ParamClose) {
			return e, 0
		}
	}
	e := c.edges[0]
	t := 0.5
	for _, o := range c.overlaps {
		isC1 := o.c1 == c
		for _, r := range o.runs {
			for _, eo := range r.overlaps {
				edge, rng := eo.Edge1, eo.Range.Range1
				if !isC1 {
					edge, rng = eo.Edge2, eo.Range.Range2
				}
				if edge == e && t >= rng.Start && t <= rng.End {
					t = math.Mod(rng.End+0.05, 1)
				}
			}
		}
	}
	return e, t
}

func allNonSelfCrossings(g *Graph) []*EdgeCrossing {
	var out []*EdgeCrossing
	for _, c := range g.contours {
		out = append(out, orderedNonSelfCrossings(c)...)
	}
	return out
}

func hasNonSelfCrossings(c *Contour) bool {
	return len(orderedNonSelfCrossings(c)) > 0
}

// --- result construction ---------------------------------------------------

func stitchResults(seeds []*EdgeCrossing) []*Contour {
	var out []*Contour
	for _, first := range seeds {
		if first.Processed {
			continue
		}
		contour := NewContour()
		cur := first
		cur.Processed = true
		for {
			var landed *EdgeCrossing
			if cur.Entry {
				nxt := nextNonSelfCrossing(cur)
				appendForward(contour, cur, nxt)
				landed = nxt
			} else {
				prv := previousNonSelfCrossing(cur)
				appendBackward(contour, cur, prv)
				landed = prv
			}
			if landed == nil {
				break
			}
			landed.Processed = true
			cp := landed.Counterpart
			if cp == nil || cp.Processed {
				break
			}
			cp.Processed = true
			cur = cp
		}
		if contour.EdgeCount() > 0 {
			out = append(out, contour)
		}
	}
	return out
}

func appendForward(dst *Contour, from, to *EdgeCrossing) {
	startEdge, startT := from.Edge, from.Parameter()
	if to == nil {
		dst.AddCurve(startEdge.Curve.Subcurve(Range{startT, 1}))
		return
	}
	endEdge, endT := to.Edge, to.Parameter()
	if startEdge == endEdge && startT < endT {
		dst.AddCurve(startEdge.Curve.Subcurve(Range{startT, endT}))
		return
	}
	dst.AddCurve(startEdge.Curve.Subcurve(Range{startT, 1}))
	for e := startEdge.next(); e != endEdge; e = e.next() {
		dst.AddCurve(e.Curve)
	}
	dst.AddCurve(endEdge.Curve.Subcurve(Range{0, endT}))
}

func appendBackward(dst *Contour, from, to *EdgeCrossing) {
	startEdge, startT := from.Edge, from.Parameter()
	if to == nil {
		dst.AddCurve(startEdge.Curve.Subcurve(Range{0, startT}).Reverse())
		return
	}
	endEdge, endT := to.Edge, to.Parameter()
	if startEdge == endEdge && endT < startT {
		dst.AddCurve(startEdge.Curve.Subcurve(Range{endT, startT}).Reverse())
		return
	}
	dst.AddCurve(startEdge.Curve.Subcurve(Range{0, startT}).Reverse())
	for e := startEdge.previous(); e != endEdge; e = e.previous() {
		dst.AddCurve(e.Curve.Reverse())
	}
	dst.AddCurve(endEdge.Curve.Subcurve(Range{endT, 1}).Reverse())
}

// --- non-intersecting contours by containment ------------------------------

func mergeNonIntersecting(a, b *Graph, result *Graph, op BoolOp) {
	handledA := make(map[*Contour]bool)
	handledB := make(map[*Contour]bool)

	for _, ca := range a.contours {
		if hasNonSelfCrossings(ca) {
			continue
		}
		for _, o := range ca.overlaps {
			cb := o.other(ca)
			if cb.owner != b || !o.IsComplete() {
				continue
			}
			handledA[ca] = true
			handledB[cb] = true
			if c := equivalentPairResult(ca, cb, op); c != nil {
				result.AddContour(c)
			}
		}
	}

	for _, ca := range a.contours {
		if handledA[ca] || hasNonSelfCrossings(ca) {
			continue
		}
		contained := containsContourInGraph(ca, b)
		if keepOperand(op, true, contained) {
			result.AddContour(ca.Clone())
		}
	}
	for _, cb := range b.contours {
		if handledB[cb] || hasNonSelfCrossings(cb) {
			continue
		}
		contained := containsContourInGraph(cb, a)
		if keepOperand(op, false, contained) {
			result.AddContour(cb.Clone())
		}
	}
}

func keepOperand(op BoolOp, isFirst, contained bool) bool {
	switch op {
	case OpUnion:
		return !contained
	case OpIntersect:
		return contained
	case OpDifference:
		if isFirst {
			return !contained
		}
		return contained
	}
	return false
}

func equivalentPairResult(ca, cb *Contour, op BoolOp) *Contour {
	bothFill := ca.inside == insideFilled && cb.inside == insideFilled
	bothHole := ca.inside == insideHole && cb.inside == insideHole
	mixed := !bothFill && !bothHole
	switch op {
	case OpUnion:
		if bothFill {
			return ca.Clone()
		}
		return nil
	case OpIntersect:
		// Equivalent pair: intersecting an identical fill with itself keeps
		// the fill; intersecting a hole with anything keeps the hole.
		if mixed {
			if ca.inside == insideHole {
				return ca.Clone()
			}
			return cb.Clone()
		}
		return ca.Clone()
	case OpDifference:
		if mixed || bothHole {
			return ca.Clone()
		}
		return nil
	}
	return nil
}

// containsContourInGraph decides whether c is entirely inside g: probe more
// than one candidate point drawn from c's own boundary and prefer one that
// is not itself close to any edge of g (a grazing probe is inconclusive),
// falling back to c's default interior point if every edge-derived probe is
// ambiguous.
func containsContourInGraph(c *Contour, g *Graph) bool {
	for _, e := range c.edges {
		p := edgeInteriorPoint(c, e)
		if !nearAnyContourEdge(p, g) {
			return isInsideGraph(p, g)
		}
	}
	return isInsideGraph(c.interiorPoint(), g)
}

func edgeInteriorPoint(c *Contour, e *Edge) Point {
	mid := e.Curve.PointAt(0.5)
	tangent := e.Curve.TangentAt(0.5)
	inward := tangent.Rot90CCW()
	if c.Direction() == Anticlockwise {
		inward = tangent.Rot90CW()
	}
	eps := math.Max(e.Curve.Length()*1e-3, PointClose*10)
	return mid.Add(inward.Norm(eps))
}

func nearAnyContourEdge(p Point, g *Graph) bool {
	for _, c := range g.contours {
		for _, e := range c.edges {
			t := e.Curve.ClosestPoint(p)
			if e.Curve.PointAt(t).Distance(p) < BoundsClose*10 {
				return true
			}
		}
	}
	return false
}

func purge(g *Graph) {
	for _, c := range g.contours {
		c.removeAllCrossings()
		c.removeAllOverlaps()
		c.inside = insideUnknown
		c.boundsCached = false
	}
}
