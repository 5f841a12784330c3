package vecbool

import "math"

// Curve is a cubic Bézier segment. Straight lines are represented as
// degenerate cubics whose control points lie on the line between P0 and P3
// (IsLine is set so downstream code can special-case them, e.g. the
// path adapter and the line-line intersection fast path).
type Curve struct {
	P0, C1, C2, P3 Point
	IsLine         bool
	IsPoint        bool

	// Curve is used as a value type throughout (Subcurve/Split return new
	// Curves rather than mutating in place, matching how contour edges are
	// stored and copied), and Bounds, TightBounds and Length have value
	// receivers, so what they store in these fields is written to a copy
	// and never seen by a later call: each call recomputes its result.
	boundsCached bool
	bounds       Rect
	tightCached  bool
	tight        Rect
	lengthCached bool
	length       float64
}

// NewCurve builds a general cubic curve.
func NewCurve(p0, c1, c2, p3 Point) Curve {
	return Curve{P0: p0, C1: c1, C2: c2, P3: p3, IsPoint: PointsClose(p0, p3) && PointsClose(p0, c1) && PointsClose(p0, c2)}
}

// NewLine builds a cubic that behaves as a straight line from p0 to p3, with
// control points placed at the standard 1/3 and 2/3 points.
func NewLine(p0, p3 Point) Curve {
	c1 := p0.Interpolate(p3, 1.0/3.0)
	c2 := p0.Interpolate(p3, 2.0/3.0)
	return Curve{P0: p0, C1: c1, C2: c2, P3: p3, IsLine: true, IsPoint: PointsClose(p0, p3)}
}

func (c Curve) invalidateCaches() Curve {
	c.boundsCached = false
	c.tightCached = false
	c.lengthCached = false
	return c
}

// PointAt evaluates the curve at parameter t via direct cubic evaluation.
func (c Curve) PointAt(t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	cc := 3 * mt * t * t
	d := t * t * t
	return Point{
		a*c.P0.X + b*c.C1.X + cc*c.C2.X + d*c.P3.X,
		a*c.P0.Y + b*c.C1.Y + cc*c.C2.Y + d*c.P3.Y,
	}
}

// DerivativeAt evaluates the (unnormalized) tangent vector at parameter t.
func (c Curve) DerivativeAt(t float64) Point {
	mt := 1 - t
	a := 3 * mt * mt
	b := 6 * mt * t
	cc := 3 * t * t
	return Point{
		a*(c.C1.X-c.P0.X) + b*(c.C2.X-c.C1.X) + cc*(c.P3.X-c.C2.X),
		a*(c.C1.Y-c.P0.Y) + b*(c.C2.Y-c.C1.Y) + cc*(c.P3.Y-c.C2.Y),
	}
}

// TangentAt returns the unit tangent at t. When the derivative vanishes (a
// cusp, or the curve is a point) it falls back to the chord direction.
func (c Curve) TangentAt(t float64) Point {
	d := c.DerivativeAt(t)
	if !d.IsZero() {
		return d.Norm(1)
	}
	chord := c.P3.Sub(c.P0)
	if !chord.IsZero() {
		return chord.Norm(1)
	}
	return Point{1, 0}
}

// LeftTangent and RightTangent give the tangent approaching / leaving an
// interior parameter t, used when disambiguating a crossing at a split
// point: the tangent just before t and just after t may differ because the
// curve was conceptually cut there.
func (c Curve) LeftTangent(t float64) Point {
	if t <= 0 {
		t = 0
	}
	left, _ := c.Split(t)
	return left.TangentAt(1)
}

func (c Curve) RightTangent(t float64) Point {
	_, right := c.Split(t)
	return right.TangentAt(0)
}

// Split performs de Casteljau subdivision at parameter t, returning the two
// resulting cubics.
func (c Curve) Split(t float64) (Curve, Curve) {
	p01 := c.P0.Interpolate(c.C1, t)
	p12 := c.C1.Interpolate(c.C2, t)
	p23 := c.C2.Interpolate(c.P3, t)
	p012 := p01.Interpolate(p12, t)
	p123 := p12.Interpolate(p23, t)
	p0123 := p012.Interpolate(p123, t)

	left := Curve{P0: c.P0, C1: p01, C2: p012, P3: p0123, IsLine: c.IsLine}
	right := Curve{P0: p0123, C1: p123, C2: p23, P3: c.P3, IsLine: c.IsLine}
	left.IsPoint = PointsClose(left.P0, left.P3)
	right.IsPoint = PointsClose(right.P0, right.P3)
	return left, right
}

// Subcurve returns the portion of c over parameter range [r.Start, r.End].
func (c Curve) Subcurve(r Range) Curve {
	if r.Start <= 0 {
		if r.End >= 1 {
			return c
		}
		left, _ := c.Split(r.End)
		return left
	}
	_, tail := c.Split(r.Start)
	if r.End >= 1 {
		return tail
	}
	// Re-express r.End relative to the tail, which now spans [r.Start,1].
	relEnd := (r.End - r.Start) / (1 - r.Start)
	head, _ := tail.Split(relEnd)
	return head
}

// Bounds returns the (loose) bounding rect of the convex hull of the four
// control points; cheap and always a valid superset of the tight bounds.
func (c Curve) Bounds() Rect {
	if c.boundsCached {
		return c.bounds
	}
	c.bounds = RectFromPoints(c.P0, c.C1, c.C2, c.P3)
	c.boundsCached = true
	return c.bounds
}

// TightBounds returns the exact bounding rect of the curve, found from the
// roots of its derivative on each axis.
func (c Curve) TightBounds() Rect {
	if c.tightCached {
		return c.tight
	}
	r := RectFromPoints(c.P0, c.P3)
	for _, t := range cubicExtrema(c.P0.X, c.C1.X, c.C2.X, c.P3.X) {
		if t > 0 && t < 1 {
			r = r.AddPoint(c.PointAt(t))
		}
	}
	for _, t := range cubicExtrema(c.P0.Y, c.C1.Y, c.C2.Y, c.P3.Y) {
		if t > 0 && t < 1 {
			r = r.AddPoint(c.PointAt(t))
		}
	}
	c.tight = r
	c.tightCached = true
	return c.tight
}

// cubicExtrema returns the real roots of the derivative of a single cubic
// Bézier coordinate function, i.e. the parameters at which that axis
// reaches a local extremum. The roots are not restricted to [0,1]; callers
// keep those inside the curve's parameter range.
func cubicExtrema(p0, p1, p2, p3 float64) []float64 {
	a := 3 * (-p0 + 3*p1 - 3*p2 + p3)
	b := 6 * (p0 - 2*p1 + p2)
	c := 3 * (p1 - p0)
	if closeTo(a, 0, PointClose) {
		if closeTo(b, 0, PointClose) {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// Length returns the arc length, computed by Gauss-Legendre quadrature
// (a single fixed 16-point rule over [0,1], adequate at the curve sizes this engine
// deals with and far cheaper than recursive subdivision to a length
// tolerance).
func (c Curve) Length() float64 {
	if c.lengthCached {
		return c.length
	}
	c.length = gaussLegendreLength(c, 0, 1, 16)
	c.lengthCached = true
	return c.length
}

var gauss16Nodes = [16]float64{
	-0.0950125098376374, 0.0950125098376374,
	-0.2816035507792589, 0.2816035507792589,
	-0.4580167776572274, 0.4580167776572274,
	-0.6178762444026438, 0.6178762444026438,
	-0.7554044083550030, 0.7554044083550030,
	-0.8656312023878318, 0.8656312023878318,
	-0.9445750230732326, 0.9445750230732326,
	-0.9894009349916499, 0.9894009349916499,
}

var gauss16Weights = [16]float64{
	0.1894506104550685, 0.1894506104550685,
	0.1826034150449236, 0.1826034150449236,
	0.1691565193950025, 0.1691565193950025,
	0.1495959888165767, 0.1495959888165767,
	0.1246289712555339, 0.1246289712555339,
	0.0951585116824928, 0.0951585116824928,
	0.0622535239386479, 0.0622535239386479,
	0.0271524594117541, 0.0271524594117541,
}

func gaussLegendreLength(c Curve, t0, t1 float64, n int) float64 {
	mid := (t0 + t1) / 2
	half := (t1 - t0) / 2
	sum := 0.0
	for i := 0; i < n; i++ {
		t := mid + half*gauss16Nodes[i]
		sum += gauss16Weights[i] * c.DerivativeAt(t).Length()
	}
	return sum * half
}

// ClosestPoint returns the parameter minimizing the distance from p to the
// curve, found by coarse sampling followed by ternary refinement (the curve
// is not generally unimodal in distance, so sampling first avoids settling
// into the wrong local minimum).
func (c Curve) ClosestPoint(p Point) float64 {
	const samples = 32
	bestT, bestD := 0.0, math.Inf(1)
	for i := 0; i <= samples; i++ {
		t := float64(i) / samples
		d := c.PointAt(t).Distance(p)
		if d < bestD {
			bestD, bestT = d, t
		}
	}
	lo := math.Max(0, bestT-1.0/samples)
	hi := math.Min(1, bestT+1.0/samples)
	for iter := 0; iter < 40; iter++ {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if c.PointAt(m1).Distance(p) < c.PointAt(m2).Distance(p) {
			hi = m2
		} else {
			lo = m1
		}
	}
	return (lo + hi) / 2
}

// Reverse returns the curve traversed in the opposite direction.
func (c Curve) Reverse() Curve {
	return Curve{P0: c.P3, C1: c.C2, C2: c.C1, P3: c.P0, IsLine: c.IsLine, IsPoint: c.IsPoint}
}

// lineLineIntersection solves the closed-form intersection of two straight
// lines, used as the fast path when both operands of an intersection test
// are IsLine curves.
func lineLineIntersection(a, b Curve) (t1, t2 float64, ok bool) {
	p1, p2 := a.P0, a.P3
	p3, p4 := b.P0, b.P3
	d := (p4.Y-p3.Y)*(p2.X-p1.X) - (p4.X-p3.X)*(p2.Y-p1.Y)
	if closeTo(d, 0, PointClose) {
		return 0, 0, false
	}
	ua := ((p4.X-p3.X)*(p1.Y-p3.Y) - (p4.Y-p3.Y)*(p1.X-p3.X)) / d
	ub := ((p2.X-p1.X)*(p1.Y-p3.Y) - (p2.Y-p1.Y)*(p1.X-p3.X)) / d
	if ua < -ParamClose || ua > 1+ParamClose || ub < -ParamClose || ub > 1+ParamClose {
		return 0, 0, false
	}
	return snapParam(ua), snapParam(ub), true
}

// snapParam snaps a parameter near 0 or 1 exactly onto it, so an endpoint
// intersection is reported at exactly t=0 or t=1 rather than 0.0000003.
func snapParam(t float64) float64 {
	if closeTo(t, 0, ParamClose) {
		return 0
	}
	if closeTo(t, 1, ParamClose) {
		return 1
	}
	return t
}
