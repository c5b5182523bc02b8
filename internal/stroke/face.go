package stroke

import "math"

// faceKind tags the orientation of a face so axis-aligned segments take
// copysign fast paths and intersections stay closed-form.
type faceKind int

const (
	faceHorizontal faceKind = iota
	faceVertical
	faceDiagonal
)

// Face is the offset rectangle around one polyline segment. Its four
// corners are the segment endpoints translated perpendicular to the
// segment by half the stroke width on the clockwise and counter-clockwise
// sides.
type Face struct {
	kind faceKind
	P0   Point // segment start
	P1   Point // segment end
	dir  Point // unit direction P0 -> P1
	off  Point // ccw-side offset vector, length width/2
}

// newFace builds the face for the segment p0 -> p1 with the given stroke
// width. The segment must not be degenerate.
func newFace(p0, p1 Point, width float64) Face {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	half := width / 2

	switch {
	case dy == 0:
		return Face{
			kind: faceHorizontal,
			P0:   p0,
			P1:   p1,
			dir:  Point{X: math.Copysign(1, dx)},
			off:  Point{Y: math.Copysign(half, dx)},
		}
	case dx == 0:
		return Face{
			kind: faceVertical,
			P0:   p0,
			P1:   p1,
			dir:  Point{Y: math.Copysign(1, dy)},
			off:  Point{X: math.Copysign(half, -dy)},
		}
	default:
		length := math.Hypot(dx, dy)
		dir := Point{X: dx / length, Y: dy / length}
		return Face{
			kind: faceDiagonal,
			P0:   p0,
			P1:   p1,
			dir:  dir,
			off:  dir.Perp().Scale(half),
		}
	}
}

// CCW0 returns the counter-clockwise corner at the segment start.
func (f Face) CCW0() Point { return f.P0.Add(f.off) }

// CCW1 returns the counter-clockwise corner at the segment end.
func (f Face) CCW1() Point { return f.P1.Add(f.off) }

// CW0 returns the clockwise corner at the segment start.
func (f Face) CW0() Point { return f.P0.Sub(f.off) }

// CW1 returns the clockwise corner at the segment end.
func (f Face) CW1() Point { return f.P1.Sub(f.off) }

// offsetOrigin returns a point on the face's offset line for the given
// side.
func (f Face) offsetOrigin(ccw bool) Point {
	if ccw {
		return f.CCW0()
	}
	return f.CW0()
}

// intersectFaces intersects the offset lines of two faces on the given
// side. Parallel faces report ok=false; the caller degenerates to the
// shared offset point. Axis-aligned pairs resolve without division.
func intersectFaces(a, b Face, ccw bool) (Point, bool) {
	pa := a.offsetOrigin(ccw)
	pb := b.offsetOrigin(ccw)

	switch {
	case a.kind == faceHorizontal && b.kind == faceHorizontal,
		a.kind == faceVertical && b.kind == faceVertical:
		return Point{}, false
	case a.kind == faceHorizontal && b.kind == faceVertical:
		return Point{X: pb.X, Y: pa.Y}, true
	case a.kind == faceVertical && b.kind == faceHorizontal:
		return Point{X: pa.X, Y: pb.Y}, true
	case a.kind == faceHorizontal:
		// y is fixed by a; solve b's line for x at that y.
		t := (pa.Y - pb.Y) / b.dir.Y
		return Point{X: pb.X + t*b.dir.X, Y: pa.Y}, true
	case a.kind == faceVertical:
		t := (pa.X - pb.X) / b.dir.X
		return Point{X: pa.X, Y: pb.Y + t*b.dir.Y}, true
	case b.kind == faceHorizontal:
		t := (pb.Y - pa.Y) / a.dir.Y
		return Point{X: pa.X + t*a.dir.X, Y: pb.Y}, true
	case b.kind == faceVertical:
		t := (pb.X - pa.X) / a.dir.X
		return Point{X: pb.X, Y: pa.Y + t*a.dir.Y}, true
	default:
		denom := a.dir.Cross(b.dir)
		if math.Abs(denom) < 1e-12 {
			return Point{}, false
		}
		t := pb.Sub(pa).Cross(b.dir) / denom
		return pa.Add(a.dir.Scale(t)), true
	}
}
