package vecbool

import "math"

// insideState records whether a contour, considered as a standalone filled
// region, is itself filled or a hole once even-odd containment inside its
// own graph is taken into account.
type insideState int

const (
	insideUnknown insideState = iota
	insideFilled
	insideHole
)

// Edge is a Curve in its role as a member of a Contour: it additionally
// tracks a pointer to its owning contour, its index within that contour,
// and the crossings discovered against other contours.
type Edge struct {
	Curve Curve

	contour     *Contour
	index       int
	crossings   []*EdgeCrossing
	startShared bool
}

func NewEdge(c Curve) *Edge {
	return &Edge{Curve: c}
}

func (e *Edge) Contour() *Contour { return e.contour }
func (e *Edge) Index() int        { return e.index }

// next and previous return the following/preceding edge in the owning
// contour, wrapping cyclically.
func (e *Edge) next() *Edge {
	if e.contour == nil || len(e.contour.edges) == 0 {
		return nil
	}
	n := len(e.contour.edges)
	return e.contour.edges[(e.index+1)%n]
}

func (e *Edge) previous() *Edge {
	if e.contour == nil || len(e.contour.edges) == 0 {
		return nil
	}
	n := len(e.contour.edges)
	return e.contour.edges[(e.index-1+n)%n]
}

func (e *Edge) Crossings() []*EdgeCrossing {
	return e.crossings
}

// Contour is a cyclic, closed sequence of edges representing one boundary
// loop of a filled region. A Graph is a set of Contours.
type Contour struct {
	edges    []*Edge
	overlaps []*ContourOverlap
	owner    *Graph

	boundsCached bool
	bounds       Rect
	inside       insideState
}

func NewContour() *Contour {
	return &Contour{}
}

// AddCurve appends a curve to the contour as a new edge, invalidating the
// cached bounds.
func (c *Contour) AddCurve(curve Curve) *Edge {
	e := NewEdge(curve)
	e.contour = c
	e.index = len(c.edges)
	c.edges = append(c.edges, e)
	c.boundsCached = false
	return e
}

func (c *Contour) Edges() []*Edge {
	return c.edges
}

func (c *Contour) EdgeCount() int {
	return len(c.edges)
}

func (c *Contour) Edge(i int) *Edge {
	n := len(c.edges)
	return c.edges[((i%n)+n)%n]
}

func (c *Contour) Overlaps() []*ContourOverlap {
	return c.overlaps
}

func (c *Contour) addOverlap(o *ContourOverlap) {
	c.overlaps = append(c.overlaps, o)
}

// overlapWith returns the ContourOverlap shared with other, creating and
// registering a new one on both contours if none exists yet.
func (c *Contour) overlapWith(other *Contour) *ContourOverlap {
	for _, o := range c.overlaps {
		if o.other(c) == other {
			return o
		}
	}
	o := newContourOverlap(c, other)
	c.addOverlap(o)
	other.addOverlap(o)
	return o
}

func (c *Contour) removeAllOverlaps() {
	for _, o := range c.overlaps {
		other := o.other(c)
		other.overlaps = removeOverlap(other.overlaps, o)
	}
	c.overlaps = nil
}

func removeOverlap(list []*ContourOverlap, o *ContourOverlap) []*ContourOverlap {
	for i, v := range list {
		if v == o {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// removeAllCrossings clears every crossing on every edge of the contour, so
// that a graph can be reused as an operand in a later Boolean operation.
func (c *Contour) removeAllCrossings() {
	for _, e := range c.edges {
		e.crossings = nil
	}
}

func (c *Contour) Bounds() Rect {
	if c.boundsCached {
		return c.bounds
	}
	r := EmptyRect()
	for _, e := range c.edges {
		r = r.Union(e.Curve.TightBounds())
	}
	c.bounds = r
	c.boundsCached = true
	return c.bounds
}

// StartPoint returns the start of the first edge, i.e. the contour's
// nominal start point.
func (c *Contour) StartPoint() Point {
	if len(c.edges) == 0 {
		return Point{}
	}
	return c.edges[0].Curve.P0
}

// Direction reports whether the contour runs clockwise, via the sign of the
// shoelace sum over its edge endpoints: a positive sum is clockwise when
// the Y axis points up (which appears anticlockwise on a Y-down screen).
type Direction int

const (
	Clockwise Direction = iota
	Anticlockwise
)

func (c *Contour) Direction() Direction {
	sum := 0.0
	for _, e := range c.edges {
		p0, p1 := e.Curve.P0, e.Curve.P3
		sum += (p1.X - p0.X) * (p1.Y + p0.Y)
	}
	if sum < 0 {
		return Anticlockwise
	}
	return Clockwise
}

// Reverse returns a new contour tracing the same boundary in the opposite
// direction: edges in reverse order, each with its own endpoints and
// control points swapped.
func (c *Contour) Reverse() *Contour {
	r := NewContour()
	for i := len(c.edges) - 1; i >= 0; i-- {
		r.AddCurve(c.edges[i].Curve.Reverse())
	}
	return r
}

// Clone makes a deep copy of the contour's geometry (not its crossings or
// overlaps), used when copying operand edges whole into a result contour.
func (c *Contour) Clone() *Contour {
	r := NewContour()
	for _, e := range c.edges {
		r.AddCurve(e.Curve)
	}
	return r
}

// ContainsPoint implements even-odd ray-casting containment: cast a
// horizontal ray from p out to the right of the contour's bounds and sum
// proper crossings, taking care not to double count a ray that passes
// exactly through a shared edge endpoint, and not to count a ray that only
// grazes a curve's interior tangentially. A single cubic edge is not
// required to be Y-monotonic, so one edge can contribute more than one
// crossing.
func (c *Contour) ContainsPoint(p Point) bool {
	if len(c.edges) == 0 {
		return false
	}
	bounds := c.Bounds()
	ray := NewLine(p, bounds.HorizontalRayEnd(p.Y))

	crossingCount := 0
	prevAtEnd := false
	firstAtStart := false
	first := true
	for _, e := range c.edges {
		atStart, atEnd := false, false
		interior := 0
		IntersectCurves(ray, e.Curve, func(x Intersection) bool {
			if x.IsAtStartOf1() {
				return false // intersections at the ray's own origin don't count
			}
			if !x.IsAtEndpoint() {
				if x.Crosses() {
					interior++
				}
				return false // a tangential graze of the curve's interior isn't a crossing
			}
			if x.IsAtStartOf2() {
				atStart = true
			}
			if x.IsAtEndOf2() {
				atEnd = true
			}
			return false
		})
		if first {
			firstAtStart = atStart
			first = false
		}
		crossingCount += interior
		if atStart || atEnd {
			if atStart && prevAtEnd {
				// already counted via the previous edge's end point
			} else {
				crossingCount++
			}
		}
		prevAtEnd = atEnd
	}
	if prevAtEnd && firstAtStart && crossingCount > 0 {
		crossingCount--
	}
	return crossingCount%2 == 1
}

// interiorPoint returns a point guaranteed to lie inside the contour (used
// as the representative point for containment queries against other
// contours): the midpoint of the first edge, nudged along the inward
// normal.
func (c *Contour) interiorPoint() Point {
	if len(c.edges) == 0 {
		return Point{}
	}
	e := c.edges[0].Curve
	mid := e.PointAt(0.5)
	tangent := e.TangentAt(0.5)
	inward := tangent.Rot90CCW()
	if c.Direction() == Anticlockwise {
		inward = tangent.Rot90CW()
	}
	eps := math.Max(e.Length()*1e-3, PointClose*10)
	return mid.Add(inward.Norm(eps))
}
