package z2d

// Pattern maps pixel coordinates to source pixels. The interface is the
// extension point for gradients; callers only ever see PixelAt.
type Pattern interface {
	// PixelAt returns the source pixel for the given surface coordinate.
	PixelAt(x, y int) Pixel
}

// OpaquePattern is a constant-pixel pattern.
type OpaquePattern struct {
	Pixel Pixel
}

// NewOpaquePattern creates a pattern returning the same pixel everywhere.
func NewOpaquePattern(p Pixel) *OpaquePattern {
	return &OpaquePattern{Pixel: p}
}

// PixelAt implements Pattern.
func (p *OpaquePattern) PixelAt(x, y int) Pixel {
	return p.Pixel
}
