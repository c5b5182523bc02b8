package z2d

import "math"

// Matrix is the affine transform applied to path geometry before
// rasterization. It maps a path coordinate onto the surface as
//
//	x' = XX*x + XY*y + TX
//	y' = YX*x + YY*y + TY
//
// The surface frame is y-down, so Rotate with a positive angle turns
// geometry visually clockwise.
type Matrix struct {
	XX, XY, TX float64
	YX, YY, TY float64
}

// Identity returns the transform that leaves paths unchanged.
func Identity() Matrix {
	return Matrix{XX: 1, YY: 1}
}

// Translate returns a transform shifting paths by (x, y) surface units.
func Translate(x, y float64) Matrix {
	return Matrix{XX: 1, YY: 1, TX: x, TY: y}
}

// Scale returns a transform scaling paths about the origin.
func Scale(x, y float64) Matrix {
	return Matrix{XX: x, YY: y}
}

// Rotate returns a transform rotating paths by angle radians about the
// origin.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		XX: cos, XY: -sin,
		YX: sin, YY: cos,
	}
}

// Mul composes two transforms: the result applies n first, then m.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		XX: m.XX*n.XX + m.XY*n.YX,
		XY: m.XX*n.XY + m.XY*n.YY,
		TX: m.XX*n.TX + m.XY*n.TY + m.TX,
		YX: m.YX*n.XX + m.YY*n.YX,
		YY: m.YX*n.XY + m.YY*n.YY,
		TY: m.YX*n.TX + m.YY*n.TY + m.TY,
	}
}

// Apply maps a path point into surface coordinates.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.XX*p.X + m.XY*p.Y + m.TX,
		Y: m.YX*p.X + m.YY*p.Y + m.TY,
	}
}

// Invert returns the inverse transform. A singular matrix (one that
// collapses paths onto a line) reports ok=false along with the
// identity.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.XX*m.YY - m.XY*m.YX
	if math.Abs(det) < 1e-12 {
		return Identity(), false
	}

	d := 1 / det
	return Matrix{
		XX: m.YY * d,
		XY: -m.XY * d,
		TX: (m.XY*m.TY - m.TX*m.YY) * d,
		YX: -m.YX * d,
		YY: m.XX * d,
		TY: (m.TX*m.YX - m.XX*m.TY) * d,
	}, true
}

// IsIdentity reports whether applying the transform is a no-op, letting
// callers skip a Path.Transform pass entirely.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
