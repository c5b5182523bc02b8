// Package path provides internal path processing utilities: the flattened
// node model shared by the stroke and raster stages, cubic Bezier
// flattening, and subpath extraction.
package path

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Tolerance is the default maximum distance between the midpoint of a
// curve and the midpoint of its chord before subdivision stops.
const Tolerance = 0.1

// Node represents an element in a path.
type Node interface {
	isNode()
}

// MoveTo begins a new subpath.
type MoveTo struct{ Point Point }

func (MoveTo) isNode() {}

// LineTo draws a straight segment.
type LineTo struct{ Point Point }

func (LineTo) isNode() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isNode() {}

// CurveTo draws a cubic Bezier curve.
type CurveTo struct{ Control1, Control2, Point Point }

func (CurveTo) isNode() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isNode() {}

// Flatten replaces every QuadTo and CurveTo in the node list with a run
// of LineTo nodes approximating the curve to within the given tolerance.
// Curve endpoints are preserved exactly. All other nodes pass through
// unchanged. A non-positive tolerance falls back to the default.
func Flatten(nodes []Node, tolerance float64) []Node {
	if tolerance <= 0 {
		tolerance = Tolerance
	}

	out := make([]Node, 0, len(nodes))
	var current Point
	for _, node := range nodes {
		switch n := node.(type) {
		case MoveTo:
			current = n.Point
			out = append(out, n)
		case LineTo:
			current = n.Point
			out = append(out, n)
		case QuadTo:
			flattenQuadratic(current, n.Control, n.Point, tolerance, &out)
			current = n.Point
		case CurveTo:
			flattenCubic(current, n.Control1, n.Control2, n.Point, tolerance, &out)
			current = n.Point
		case Close:
			out = append(out, n)
		}
	}
	return out
}

// flattenQuadratic recursively subdivides a quadratic Bezier until the
// distance from the chord midpoint to the curve midpoint falls below
// tolerance, appending a LineTo for each accepted chord.
func flattenQuadratic(p0, p1, p2 Point, tolerance float64, out *[]Node) {
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	s := q0.Lerp(q1, 0.5)

	chordMid := p0.Lerp(p2, 0.5)
	if chordMid.Distance(s) < tolerance {
		*out = append(*out, LineTo{Point: p2})
		return
	}

	flattenQuadratic(p0, q0, s, tolerance, out)
	flattenQuadratic(s, q1, p2, tolerance, out)
}

// flattenCubic recursively subdivides a cubic Bezier until the distance
// from the chord midpoint to the curve midpoint falls below tolerance,
// appending a LineTo for each accepted chord.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, out *[]Node) {
	// de Casteljau split at t = 0.5. The final point s is the curve
	// midpoint.
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	chordMid := p0.Lerp(p3, 0.5)
	if chordMid.Distance(s) < tolerance {
		*out = append(*out, LineTo{Point: p3})
		return
	}

	flattenCubic(p0, q0, r0, s, tolerance, out)
	flattenCubic(s, r1, q2, p3, tolerance, out)
}

// Subpath is a maximal MoveTo-delimited run of a flattened path,
// reduced to its polyline vertices.
type Subpath struct {
	// Points are the polyline vertices with consecutive duplicates
	// removed. A closed subpath does not repeat its first point.
	Points []Point
	// Closed reports whether the subpath ended in a Close node.
	Closed bool
}

// Subpaths splits a flattened node list into its subpaths. Curves must
// already have been flattened; curve nodes are ignored. Empty subpaths
// (a bare MoveTo, such as the implicit one emitted after a close) are
// dropped.
func Subpaths(nodes []Node) []Subpath {
	var subpaths []Subpath
	var pts []Point

	flush := func(closed bool) {
		if len(pts) > 1 {
			subpaths = append(subpaths, Subpath{Points: pts, Closed: closed})
		} else if len(pts) == 1 && closed {
			// M x,y Z: a degenerate closed subpath. Kept so the stroke
			// stage can decide it renders nothing.
			subpaths = append(subpaths, Subpath{Points: pts, Closed: true})
		}
		pts = nil
	}

	for _, node := range nodes {
		switch n := node.(type) {
		case MoveTo:
			flush(false)
			pts = append(pts, n.Point)
		case LineTo:
			if len(pts) == 0 || pts[len(pts)-1] != n.Point {
				pts = append(pts, n.Point)
			}
		case Close:
			// Drop a final vertex that returns exactly to the start; the
			// closing edge is implied by Closed.
			if len(pts) > 1 && pts[len(pts)-1] == pts[0] {
				pts = pts[:len(pts)-1]
			}
			flush(true)
		}
	}
	flush(false)
	return subpaths
}
