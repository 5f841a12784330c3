package vecbool

// ElementKind tags a PathElement's variant.
type ElementKind int

const (
	MoveTo ElementKind = iota
	LineTo
	CurveTo
	Close
)

// PathElement is a single path command. Points holds 1 point for
// MoveTo/LineTo/Close (the destination; for Close, the start point of the
// subpath it closes) and 3 for CurveTo (control 1, control 2, endpoint).
type PathElement struct {
	Kind   ElementKind
	Points [3]Point
}

func (e PathElement) endpoint() Point {
	if e.Kind == CurveTo {
		return e.Points[2]
	}
	return e.Points[0]
}

// Path is a finite ordered sequence of path elements: a deliberately thin
// external surface -- construction and SVG emission only, with the four
// Boolean operations dispatching into the graph engine.
type Path struct {
	Elements []PathElement

	start   Point
	current Point
}

func NewPath() *Path {
	return &Path{}
}

func (p *Path) IsEmpty() bool {
	return len(p.Elements) == 0
}

func (p *Path) append(e PathElement) {
	p.Elements = append(p.Elements, e)
	p.current = e.endpoint()
}

func (p *Path) Move(pt Point) *Path {
	p.append(PathElement{Kind: MoveTo, Points: [3]Point{pt}})
	p.start = pt
	return p
}

func (p *Path) Line(pt Point) *Path {
	p.append(PathElement{Kind: LineTo, Points: [3]Point{pt}})
	return p
}

func (p *Path) Curve(c1, c2, pt Point) *Path {
	p.append(PathElement{Kind: CurveTo, Points: [3]Point{c1, c2, pt}})
	return p
}

func (p *Path) CloseSubpath() *Path {
	p.append(PathElement{Kind: Close, Points: [3]Point{p.start}})
	p.current = p.start
	return p
}

func (p *Path) Append(other *Path) *Path {
	p.Elements = append(p.Elements, other.Elements...)
	if len(other.Elements) > 0 {
		p.current = other.current
	}
	return p
}

// Rect appends a closed rectangular subpath with corner (x,y) and the given
// width/height, wound clockwise in a Y-down coordinate system.
func (p *Path) Rect(x, y, w, h float64) *Path {
	return p.Move(Point{x, y}).
		Line(Point{x + w, y}).
		Line(Point{x + w, y + h}).
		Line(Point{x, y + h}).
		CloseSubpath()
}

func NewRect(x, y, w, h float64) *Path {
	return NewPath().Rect(x, y, w, h)
}

// ovalControlRatio is the classic 4-cubic circle approximation constant,
// c = 4(sqrt(2)-1)/3.
const ovalControlRatio = 0.55228475

// Oval appends a closed elliptical subpath approximated by four cubic
// segments, centered at (cx,cy) with the given radii.
func (p *Path) Oval(cx, cy, rx, ry float64) *Path {
	kx := rx * ovalControlRatio
	ky := ry * ovalControlRatio
	return p.Move(Point{cx + rx, cy}).
		Curve(Point{cx + rx, cy + ky}, Point{cx + kx, cy + ry}, Point{cx, cy + ry}).
		Curve(Point{cx - kx, cy + ry}, Point{cx - rx, cy + ky}, Point{cx - rx, cy}).
		Curve(Point{cx - rx, cy - ky}, Point{cx - kx, cy - ry}, Point{cx, cy - ry}).
		Curve(Point{cx + kx, cy - ry}, Point{cx + rx, cy - ky}, Point{cx + rx, cy}).
		CloseSubpath()
}

func NewOval(cx, cy, rx, ry float64) *Path {
	return NewPath().Oval(cx, cy, rx, ry)
}

// Bounds returns the bounding rect of the path: end points of lines and
// moves, and the tight bounds of each cubic segment.
func (p *Path) Bounds() Rect {
	r := EmptyRect()
	cur := Point{}
	for _, e := range p.Elements {
		switch e.Kind {
		case MoveTo, LineTo:
			r = r.AddPoint(e.Points[0])
			cur = e.Points[0]
		case CurveTo:
			c := NewCurve(cur, e.Points[0], e.Points[1], e.Points[2])
			r = r.Union(c.TightBounds())
			cur = e.Points[2]
		case Close:
			// no new extent
		}
	}
	return r
}

func (p *Path) String() string {
	return p.ToSVGPath()
}

// Union, Intersect, Difference and Xor are the four Boolean set operations,
// each converting both operands to graphs, delegating to graph.go, and
// converting the result back to a path.
func (p *Path) Union(q *Path) *Path {
	return graphToPath(Union(pathToGraph(p), pathToGraph(q)))
}

func (p *Path) Intersect(q *Path) *Path {
	return graphToPath(Intersect(pathToGraph(p), pathToGraph(q)))
}

func (p *Path) Difference(q *Path) *Path {
	return graphToPath(Difference(pathToGraph(p), pathToGraph(q)))
}

func (p *Path) Xor(q *Path) *Path {
	return graphToPath(Xor(pathToGraph(p), pathToGraph(q)))
}
