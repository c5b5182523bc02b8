package stroke

import "math"

// CapMode specifies the shape of line endpoints.
type CapMode int

const (
	// CapButt terminates the stroke flat at the endpoint.
	CapButt CapMode = iota
	// CapSquare extends the stroke by half the width past the endpoint.
	CapSquare
	// CapRound closes the endpoint with a semicircle.
	CapRound
)

// JoinMode specifies the shape of line joins.
type JoinMode int

const (
	// JoinMiter extends the outer edges to their intersection, subject
	// to the miter limit.
	JoinMiter JoinMode = iota
	// JoinRound bridges the outer edges with an arc.
	JoinRound
	// JoinBevel bridges the outer edges with a straight segment.
	JoinBevel
)

// Options holds the stroke parameters for outline expansion.
type Options struct {
	// Width is the stroke thickness.
	Width float64
	// Cap is the endpoint shape for open subpaths.
	Cap CapMode
	// Join is the vertex shape between segments.
	Join JoinMode
	// MiterLimit is the maximum ratio of miter length to half-width
	// before a miter falls back to a bevel.
	MiterLimit float64
	// Tolerance bounds the error of round join/cap arc approximation.
	// Non-positive values use a default of 0.1.
	Tolerance float64
}

// Transformer expands stroked polylines into closed fillable polygons.
// It is driven one subpath at a time; each call to Outline yields the
// polygon contours for one subpath.
type Transformer struct {
	opts Options
}

// NewTransformer creates a transformer for the given stroke options.
func NewTransformer(opts Options) *Transformer {
	if opts.Tolerance <= 0 {
		opts.Tolerance = 0.1
	}
	if opts.MiterLimit <= 0 {
		opts.MiterLimit = 4.0
	}
	return &Transformer{opts: opts}
}

// Outline expands one subpath into polygon contours. An open subpath
// yields a single contour; a closed subpath yields an outer and an inner
// contour with opposing winding. Degenerate subpaths (a single point, or
// zero width) yield nil and render nothing.
//
// Contours are intended for filling under the non-zero rule.
func (t *Transformer) Outline(points []Point, closed bool) [][]Point {
	pts := dedupe(points)
	if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 2 || t.opts.Width <= 0 {
		return nil
	}
	if closed && len(pts) < 3 {
		// A two-point closed subpath doubles back on itself; stroke it
		// as an open segment.
		closed = false
	}
	if closed {
		return t.outlineClosed(pts)
	}
	return t.outlineOpen(pts)
}

// dedupe removes consecutive duplicate points; exact floating equality is
// the degenerate-segment check.
func dedupe(points []Point) []Point {
	pts := make([]Point, 0, len(points))
	for _, p := range points {
		if len(pts) == 0 || pts[len(pts)-1] != p {
			pts = append(pts, p)
		}
	}
	return pts
}

func (t *Transformer) outlineOpen(pts []Point) [][]Point {
	faces := make([]Face, len(pts)-1)
	for i := range faces {
		faces[i] = newFace(pts[i], pts[i+1], t.opts.Width)
	}

	first := faces[0]
	last := faces[len(faces)-1]

	ccw := []Point{first.CCW0()}
	cw := []Point{first.CW0()}
	for i := 1; i < len(faces); i++ {
		jc, jw := t.join(faces[i-1], faces[i], pts[i])
		ccw = append(ccw, jc...)
		cw = append(cw, jw...)
	}
	ccw = append(ccw, last.CCW1())
	cw = append(cw, last.CW1())

	ring := make([]Point, 0, len(ccw)+len(cw)+8)
	ring = append(ring, ccw...)
	ring = append(ring, t.capPoints(last.CCW1(), last.CW1(), last.P1, last.dir)...)
	for i := len(cw) - 1; i >= 0; i-- {
		ring = append(ring, cw[i])
	}
	ring = append(ring, t.capPoints(first.CW0(), first.CCW0(), first.P0, first.dir.Neg())...)

	return [][]Point{ring}
}

func (t *Transformer) outlineClosed(pts []Point) [][]Point {
	n := len(pts)
	faces := make([]Face, n)
	for i := range faces {
		faces[i] = newFace(pts[i], pts[(i+1)%n], t.opts.Width)
	}

	var ccw, cw []Point
	for i := 0; i < n; i++ {
		prev := faces[(i-1+n)%n]
		jc, jw := t.join(prev, faces[i], pts[i])
		ccw = append(ccw, jc...)
		cw = append(cw, jw...)
	}

	inner := make([]Point, len(cw))
	for i, p := range cw {
		inner[len(cw)-1-i] = p
	}
	return [][]Point{ccw, inner}
}

// join computes the bridge geometry at the vertex shared by faces a and
// b. It returns the points contributed to the counter-clockwise side and
// to the clockwise side, both in forward traversal order (the clockwise
// side is reversed during emission).
//
// The side designations follow from treating both faces as pointing into
// the vertex, which keeps the winding consistent regardless of turn
// direction.
func (t *Transformer) join(a, b Face, vertex Point) (ccw, cw []Point) {
	cross := a.dir.Cross(b.dir)

	if cross == 0 {
		if a.dir.Dot(b.dir) > 0 {
			// Collinear continuation: inner and outer joins coincide
			// with the shared offset points.
			return []Point{vertex.Add(b.off)}, []Point{vertex.Sub(b.off)}
		}
		// Full reversal: no intersection exists on either side; fall
		// back to the face corners.
		return []Point{a.CCW1(), b.CCW0()}, []Point{a.CW1(), b.CW0()}
	}

	// In the y-down frame a positive cross is a visual right turn, which
	// places the outer side on the clockwise offsets.
	outerCCW := cross < 0
	outer := t.outerJoin(a, b, vertex, outerCCW)
	in := innerJoin(a, b, vertex, !outerCCW)

	if outerCCW {
		return outer, []Point{in}
	}
	return []Point{in}, outer
}

// outerJoin produces the outer bridge: a miter intersection, a bevel
// pair, or a round arc, honoring the miter limit.
func (t *Transformer) outerJoin(a, b Face, vertex Point, ccwSide bool) []Point {
	var from, to Point
	if ccwSide {
		from, to = a.CCW1(), b.CCW0()
	} else {
		from, to = a.CW1(), b.CW0()
	}

	switch t.opts.Join {
	case JoinBevel:
		return []Point{from, to}
	case JoinRound:
		return t.arc(vertex, from, to)
	default:
		ip, ok := intersectFaces(a, b, ccwSide)
		if !ok {
			return []Point{from, to}
		}
		half := t.opts.Width / 2
		if vertex.Distance(ip) > t.opts.MiterLimit*half {
			return []Point{from, to}
		}
		return []Point{ip}
	}
}

// innerJoin intersects the inner offset lines; parallel faces degenerate
// to the shared offset point.
func innerJoin(a, b Face, vertex Point, ccwSide bool) Point {
	if ip, ok := intersectFaces(a, b, ccwSide); ok {
		return ip
	}
	if ccwSide {
		return vertex.Add(b.off)
	}
	return vertex.Sub(b.off)
}

// capPoints produces the cap geometry bridging from one offset endpoint
// to the other around the subpath endpoint, excluding the two endpoints
// themselves (they are already part of the ring). dir points out of the
// stroked segment.
func (t *Transformer) capPoints(from, to, center Point, dir Point) []Point {
	half := t.opts.Width / 2
	switch t.opts.Cap {
	case CapSquare:
		ext := dir.Scale(half)
		return []Point{from.Add(ext), to.Add(ext)}
	case CapRound:
		// Semicircle via the point at the cap's tip; two quarter arcs
		// keep the sweep direction unambiguous.
		tip := center.Add(dir.Scale(half))
		first := t.arc(center, from, tip)
		second := t.arc(center, tip, to)
		pts := append(first[1:], second[1:len(second)-1]...)
		return pts
	default:
		return nil
	}
}

// arc approximates the circular arc from `from` to `to` around center by
// line segments, including both endpoints. The sweep follows the signed
// shorter angle between the two radius vectors.
func (t *Transformer) arc(center, from, to Point) []Point {
	va := from.Sub(center)
	vb := to.Sub(center)
	radius := va.Length()
	if radius == 0 {
		return []Point{from, to}
	}

	total := math.Atan2(va.Cross(vb), va.Dot(vb))
	if total == 0 {
		return []Point{from, to}
	}

	// Chord error e for step s satisfies e = r*(1 - cos(s/2)).
	maxStep := 2 * math.Acos(1-math.Min(t.opts.Tolerance/radius, 1))
	if maxStep <= 0 {
		maxStep = math.Pi / 8
	}
	steps := int(math.Ceil(math.Abs(total) / maxStep))
	if steps < 1 {
		steps = 1
	}

	pts := make([]Point, 0, steps+1)
	pts = append(pts, from)
	for i := 1; i < steps; i++ {
		angle := total * float64(i) / float64(steps)
		pts = append(pts, center.Add(va.Rotate(angle)))
	}
	pts = append(pts, to)
	return pts
}
