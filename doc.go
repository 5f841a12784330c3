// Package vecbool computes Boolean set operations -- union, intersection,
// difference, and exclusive-or -- on planar regions bounded by cubic Bézier
// curves, under the even-odd fill rule.
//
// The engine is layered bottom-up: Point/Rect/Range geometry primitives
// (point.go), the cubic Curve segment type (curve.go), curve-curve
// intersection via Bézier clipping (clip.go), the Intersection and
// IntersectRange descriptors (intersection.go), the mutable EdgeCrossing
// marker and its per-edge ordering (crossing.go), the cyclic Contour and its
// containment/direction queries (contour.go), ContourOverlap run tracking
// (contouroverlap.go), and finally Graph, which hosts the four Boolean
// operations (graph.go). Path (path.go) and the path/graph adapter
// (adapter.go) are the external surface consumers use; SVG emission lives
// in svg.go.
package vecbool
