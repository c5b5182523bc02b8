package z2d

// PathNode represents a single drawing command in a path.
type PathNode interface {
	isPathNode()
}

// MoveTo begins a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathNode() {}

// LineTo draws a straight segment from the current point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathNode() {}

// QuadTo draws a quadratic Bezier curve from the current point.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathNode() {}

// CurveTo draws a cubic Bezier curve from the current point.
type CurveTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CurveTo) isPathNode() {}

// ClosePath closes the current subpath back to its starting MoveTo.
type ClosePath struct{}

func (ClosePath) isPathNode() {}

// Path is an ordered sequence of drawing commands. The builder methods
// enforce well-formedness: every subpath must begin with MoveTo, and any
// other command without a current point is a programmer error that
// panics.
type Path struct {
	nodes   []PathNode
	start   Point // Starting point of current subpath
	current Point // Current point
	open    bool  // Whether a subpath has been started
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		nodes: make([]PathNode, 0, 16),
	}
}

// MoveTo begins a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.nodes = append(p.nodes, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.open = true
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.requireCurrent("LineTo")
	pt := Pt(x, y)
	p.nodes = append(p.nodes, LineTo{Point: pt})
	p.current = pt
}

// QuadTo draws a quadratic Bezier curve from the current point to (x, y)
// with control point (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.requireCurrent("QuadTo")
	pt := Pt(x, y)
	p.nodes = append(p.nodes, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CurveTo draws a cubic Bezier curve from the current point to (x, y)
// with control points (c1x, c1y) and (c2x, c2y).
func (p *Path) CurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.requireCurrent("CurveTo")
	pt := Pt(x, y)
	p.nodes = append(p.nodes, CurveTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath back to its starting point. An
// implicit trailing MoveTo keeps the current point well-defined for
// commands that follow the close.
func (p *Path) Close() {
	p.requireCurrent("Close")
	p.nodes = append(p.nodes, ClosePath{}, MoveTo{Point: p.start})
	p.current = p.start
}

func (p *Path) requireCurrent(op string) {
	if !p.open {
		panic("z2d: " + op + " without a preceding MoveTo")
	}
}

// Clear removes all nodes from the path.
func (p *Path) Clear() {
	p.nodes = p.nodes[:0]
	p.start = Point{}
	p.current = Point{}
	p.open = false
}

// Nodes returns the path's node list.
func (p *Path) Nodes() []PathNode {
	return p.nodes
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint reports whether a subpath has been started.
func (p *Path) HasCurrentPoint() bool {
	return p.open
}

// Transform returns a copy of the path with every point mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, node := range p.nodes {
		switch n := node.(type) {
		case MoveTo:
			pt := m.Apply(n.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.Apply(n.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			c := m.Apply(n.Control)
			pt := m.Apply(n.Point)
			result.QuadTo(c.X, c.Y, pt.X, pt.Y)
		case CurveTo:
			c1 := m.Apply(n.Control1)
			c2 := m.Apply(n.Control2)
			pt := m.Apply(n.Point)
			result.CurveTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case ClosePath:
			result.Close()
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.nodes = make([]PathNode, len(p.nodes))
	copy(result.nodes, p.nodes)
	result.start = p.start
	result.current = p.current
	result.open = p.open
	return result
}
