package vecbool

import "math"

// Named closeness tolerances. Each is used for a distinct comparison, and
// TangentClose and PointClose are kept apart even though they look similar:
// TangentClose is looser than PointClose because tangent directions are unit
// vectors and accumulate more floating point error than raw coordinates.
const (
	PointClose   = 1e-10
	TangentClose = 1e-7
	BoundsClose  = 1e-9
	ParamClose   = 1e-4
	OverlapClose = 1e-2
)

// Point is a 2D point or vector.
type Point struct {
	X, Y float64
}

func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z-component of the 3D cross product of p and q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Norm returns p scaled to the given length, or the zero point if p is
// itself (close to) zero length.
func (p Point) Norm(length float64) Point {
	d := p.Length()
	if closeTo(d, 0, PointClose) {
		return Point{}
	}
	return Point{p.X / d * length, p.Y / d * length}
}

func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) Rot90CW() Point {
	return Point{-p.Y, p.X}
}

func (p Point) Rot90CCW() Point {
	return Point{p.Y, -p.X}
}

// Angle returns the polar angle of p in radians, in [-pi, pi], matching
// math.Atan2's convention.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// closeTo reports whether a and b differ by no more than tol.
func closeTo(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// PointsClose reports whether p and q are within PointClose of each other.
func PointsClose(p, q Point) bool {
	return PointsCloseTol(p, q, PointClose)
}

// PointsCloseTol reports whether p and q are within tol of each other,
// componentwise, matching the original's cheap axis-aligned closeness test
// (a square of tolerance rather than a circle, but adequate at these
// magnitudes and much cheaper than a hypot per comparison).
func PointsCloseTol(p, q Point, tol float64) bool {
	return closeTo(p.X, q.X, tol) && closeTo(p.Y, q.Y, tol)
}

// TangentsClose reports whether two unit tangent vectors coincide within
// TangentClose. Callers must normalize both vectors first.
func TangentsClose(a, b Point) bool {
	return PointsCloseTol(a, b, TangentClose)
}

// Range is a closed interval of a Bézier parameter (or, on an AngleRange, of
// an angle).
type Range struct {
	Start, End float64
}

func (r Range) Size() float64 {
	return r.End - r.Start
}

func (r Range) Middle() float64 {
	return (r.Start + r.End) / 2
}

// HasConverged reports whether the range has stabilized to the given number
// of significant decimal places, i.e. is effectively a point.
func (r Range) HasConverged(places int) bool {
	factor := math.Pow(10, float64(places))
	return math.Round(r.Start*factor) == math.Round(r.End*factor)
}

func (r Range) ClampParam(t float64) float64 {
	if t < r.Start {
		return r.Start
	}
	if t > r.End {
		return r.End
	}
	return t
}

// AtParam maps a parameter in [0,1] measured against this range back into
// the range itself, i.e. the inverse of expressing a subrange as [Start,End].
func (r Range) AtParam(t float64) float64 {
	return r.Start + t*r.Size()
}

// ParamOf is the inverse of AtParam: given an absolute parameter known to
// lie inside r, returns its position within r as a fraction in [0,1].
func (r Range) ParamOf(t float64) float64 {
	size := r.Size()
	if closeTo(size, 0, ParamClose) {
		return 0
	}
	return (t - r.Start) / size
}

func (r Range) Overlaps(o Range, tol float64) bool {
	return r.Start <= o.End+tol && o.Start <= r.End+tol
}

// AngleRange is a range of polar angles in radians, aware of wraparound
// through +-pi.
type AngleRange struct {
	Start, End float64
}

// normalizeAngle wraps theta into (-pi, pi].
func normalizeAngle(theta float64) float64 {
	for theta <= -math.Pi {
		theta += 2 * math.Pi
	}
	for theta > math.Pi {
		theta -= 2 * math.Pi
	}
	return theta
}

// Contains reports whether angle theta lies within the arc going
// counterclockwise from Start to End.
func (a AngleRange) Contains(theta float64) bool {
	theta = normalizeAngle(theta - a.Start)
	span := normalizeAngle(a.End - a.Start)
	if span < 0 {
		span += 2 * math.Pi
	}
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta <= span+TangentClose
}

// Rect is an axis-aligned bounding rectangle. A zero Rect is empty; use
// EmptyRect to obtain the canonical empty value used as a fold seed.
type Rect struct {
	Min, Max Point
	empty    bool
}

func EmptyRect() Rect {
	return Rect{empty: true}
}

func RectFromPoints(pts ...Point) Rect {
	r := EmptyRect()
	for _, p := range pts {
		r = r.AddPoint(p)
	}
	return r
}

func (r Rect) IsEmpty() bool {
	return r.empty
}

func (r Rect) AddPoint(p Point) Rect {
	if r.empty {
		return Rect{Min: p, Max: p}
	}
	return Rect{
		Min: Point{math.Min(r.Min.X, p.X), math.Min(r.Min.Y, p.Y)},
		Max: Point{math.Max(r.Max.X, p.X), math.Max(r.Max.Y, p.Y)},
	}
}

func (r Rect) Union(o Rect) Rect {
	if o.empty {
		return r
	}
	if r.empty {
		return o
	}
	return Rect{
		Min: Point{math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)},
		Max: Point{math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)},
	}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Outset grows the rect by d on every side.
func (r Rect) Outset(d float64) Rect {
	if r.empty {
		return r
	}
	return Rect{Min: Point{r.Min.X - d, r.Min.Y - d}, Max: Point{r.Max.X + d, r.Max.Y + d}}
}

// Intersects reports whether r and o overlap, within BoundsClose.
func (r Rect) Intersects(o Rect) bool {
	if r.empty || o.empty {
		return false
	}
	return r.Min.X <= o.Max.X+BoundsClose && o.Min.X <= r.Max.X+BoundsClose &&
		r.Min.Y <= o.Max.Y+BoundsClose && o.Min.Y <= r.Max.Y+BoundsClose
}

func (r Rect) ContainsPoint(p Point) bool {
	if r.empty {
		return false
	}
	return r.Min.X-BoundsClose <= p.X && p.X <= r.Max.X+BoundsClose &&
		r.Min.Y-BoundsClose <= p.Y && p.Y <= r.Max.Y+BoundsClose
}

// OutsidePoint returns a point known to lie strictly outside r, beyond its
// max corner by 10 plus the magnitudes of dx and dy (their signs are
// ignored); used to build ray-casting test rays.
func (r Rect) OutsidePoint(dx, dy float64) Point {
	return Point{r.Max.X + 10 + math.Abs(dx), r.Max.Y + 10 + math.Abs(dy)}
}

// HorizontalRayEnd returns a point to the right of r at height y, far enough
// outside r that a ray from any point at that height to this one crosses r's
// whole width; used to build the horizontal test rays even-odd containment
// casts.
func (r Rect) HorizontalRayEnd(y float64) Point {
	return Point{r.Max.X + 10, y}
}
