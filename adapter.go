package vecbool

// pathToGraph converts a Path into a Graph, one contour per subpath. move
// starts a new contour, line/curve append a cubic, close appends a straight
// closing segment if the subpath isn't already closed. Degenerate
// (zero-extent) segments are dropped, and any subpath that ends up with no
// edges at all is dropped too.
func pathToGraph(p *Path) *Graph {
	g := NewGraph()
	var contour *Contour
	var cur, start Point

	flush := func() {
		if contour != nil && contour.EdgeCount() > 0 {
			g.AddContour(contour)
		}
		contour = nil
	}

	for _, e := range p.Elements {
		switch e.Kind {
		case MoveTo:
			flush()
			contour = NewContour()
			cur = e.Points[0]
			start = cur
		case LineTo:
			if contour == nil {
				contour = NewContour()
				start = cur
			}
			dst := e.Points[0]
			if !PointsClose(cur, dst) {
				contour.AddCurve(NewLine(cur, dst))
				cur = dst
			}
		case CurveTo:
			if contour == nil {
				contour = NewContour()
				start = cur
			}
			c1, c2, dst := e.Points[0], e.Points[1], e.Points[2]
			curve := NewCurve(cur, c1, c2, dst)
			if !curve.IsPoint {
				contour.AddCurve(curve)
				cur = dst
			}
		case Close:
			if contour != nil && !PointsClose(cur, start) {
				contour.AddCurve(NewLine(cur, start))
			}
			cur = start
			flush()
		}
	}
	flush()
	return g
}

// graphToPath converts a Graph back into a Path: one closed subpath per
// contour, emitting Line for edges whose IsLine flag is set and Curve
// otherwise.
func graphToPath(g *Graph) *Path {
	p := NewPath()
	for _, c := range g.Contours() {
		edges := c.Edges()
		if len(edges) == 0 {
			continue
		}
		p.Move(edges[0].Curve.P0)
		for _, e := range edges {
			curve := e.Curve
			if curve.IsLine {
				p.Line(curve.P3)
			} else {
				p.Curve(curve.C1, curve.C2, curve.P3)
			}
		}
		p.CloseSubpath()
	}
	return p
}
