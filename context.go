package z2d

import (
	"log/slog"

	ipath "github.com/qwerasd205/z2d/internal/path"
	"github.com/qwerasd205/z2d/internal/raster"
	"github.com/qwerasd205/z2d/internal/stroke"
)

// Context is the thin orchestrator wiring the rasterization pipeline. It
// borrows a surface, a pattern, and rendering options; Fill and Stroke
// are pure computations that mutate only the surface's pixel buffer.
//
// A Context is not safe for concurrent use against the same surface.
type Context struct {
	surface   Surface
	pattern   Pattern
	antiAlias AntiAliasMode
	fillRule  FillRule
	stroke    Stroke
}

// NewContext creates a drawing context targeting the given surface.
// The default state is a black opaque pattern, supersampled
// antialiasing, the non-zero fill rule, and the default stroke.
func NewContext(surface Surface, opts ...ContextOption) *Context {
	dc := &Context{
		surface:   surface,
		pattern:   NewOpaquePattern(RGB{}),
		antiAlias: AntiAliasDefault,
		fillRule:  FillRuleNonZero,
		stroke:    DefaultStroke(),
	}
	for _, opt := range opts {
		opt(dc)
	}
	return dc
}

// Surface returns the target surface.
func (dc *Context) Surface() Surface { return dc.surface }

// Pattern returns the source pattern.
func (dc *Context) Pattern() Pattern { return dc.pattern }

// SetPattern sets the source pattern.
func (dc *Context) SetPattern(p Pattern) { dc.pattern = p }

// SetAntiAlias sets the antialiasing mode.
func (dc *Context) SetAntiAlias(mode AntiAliasMode) { dc.antiAlias = mode }

// SetFillRule sets the fill rule used by Fill.
func (dc *Context) SetFillRule(rule FillRule) { dc.fillRule = rule }

// SetStroke sets the stroke style used by Stroke.
func (dc *Context) SetStroke(s Stroke) { dc.stroke = s.Clone() }

// StrokeStyle returns the current stroke style.
func (dc *Context) StrokeStyle() Stroke { return dc.stroke.Clone() }

// Fill rasterizes the path's interior under the context's fill rule and
// blends the pattern into the surface with source-over compositing. Open
// subpaths are closed implicitly.
func (dc *Context) Fill(p *Path) {
	subpaths := ipath.Subpaths(ipath.Flatten(convertNodes(p.Nodes()), ipath.Tolerance))

	contours := make([][]raster.Point, 0, len(subpaths))
	for _, sp := range subpaths {
		if len(sp.Points) < 3 {
			continue
		}
		contours = append(contours, rasterPoints(sp.Points))
	}
	Logger().Debug("z2d: fill", slog.Int("contours", len(contours)))
	dc.fillContours(contours, dc.fillRule)
}

// Stroke expands the path's outline using the context's stroke style and
// fills the result under the non-zero rule.
func (dc *Context) Stroke(p *Path) {
	subpaths := ipath.Subpaths(ipath.Flatten(convertNodes(p.Nodes()), ipath.Tolerance))

	transformer := stroke.NewTransformer(stroke.Options{
		Width:      dc.stroke.Width,
		Cap:        convertCap(dc.stroke.Cap),
		Join:       convertJoin(dc.stroke.Join),
		MiterLimit: dc.stroke.MiterLimit,
	})

	var contours [][]raster.Point
	for _, sp := range subpaths {
		pts := strokePoints(sp.Points)
		if dc.stroke.IsDashed() {
			runs := stroke.ApplyDash(pts, sp.Closed,
				dc.stroke.Dash.EffectiveArray(), dc.stroke.Dash.Offset)
			for _, run := range runs {
				contours = appendOutline(contours, transformer.Outline(run, false))
			}
			continue
		}
		contours = appendOutline(contours, transformer.Outline(pts, sp.Closed))
	}
	Logger().Debug("z2d: stroke",
		slog.Float64("width", dc.stroke.Width),
		slog.Int("contours", len(contours)))
	dc.fillContours(contours, FillRuleNonZero)
}

// fillContours runs the filler over the contours and composites pattern
// pixels attenuated by coverage.
func (dc *Context) fillContours(contours [][]raster.Point, rule FillRule) {
	if len(contours) == 0 {
		return
	}

	filler := raster.NewFiller(dc.surface.Width(), dc.surface.Height())
	fillRule := raster.FillRuleNonZero
	if rule == FillRuleEvenOdd {
		fillRule = raster.FillRuleEvenOdd
	}
	antialias := dc.antiAlias != AntiAliasNone

	filler.Fill(contours, fillRule, antialias, func(x, y int, coverage uint8) {
		src := ScaleCoverage(dc.pattern.PixelAt(x, y), coverage)
		dc.surface.CompositeSrcOver(x, y, src)
	})
}

func appendOutline(contours [][]raster.Point, outline [][]stroke.Point) [][]raster.Point {
	for _, ring := range outline {
		if len(ring) < 3 {
			continue
		}
		converted := make([]raster.Point, len(ring))
		for i, p := range ring {
			converted[i] = raster.Point{X: p.X, Y: p.Y}
		}
		contours = append(contours, converted)
	}
	return contours
}

// convertNodes maps public path nodes to the internal flattening model.
func convertNodes(nodes []PathNode) []ipath.Node {
	out := make([]ipath.Node, 0, len(nodes))
	for _, node := range nodes {
		switch n := node.(type) {
		case MoveTo:
			out = append(out, ipath.MoveTo{Point: ipath.Point{X: n.Point.X, Y: n.Point.Y}})
		case LineTo:
			out = append(out, ipath.LineTo{Point: ipath.Point{X: n.Point.X, Y: n.Point.Y}})
		case QuadTo:
			out = append(out, ipath.QuadTo{
				Control: ipath.Point{X: n.Control.X, Y: n.Control.Y},
				Point:   ipath.Point{X: n.Point.X, Y: n.Point.Y},
			})
		case CurveTo:
			out = append(out, ipath.CurveTo{
				Control1: ipath.Point{X: n.Control1.X, Y: n.Control1.Y},
				Control2: ipath.Point{X: n.Control2.X, Y: n.Control2.Y},
				Point:    ipath.Point{X: n.Point.X, Y: n.Point.Y},
			})
		case ClosePath:
			out = append(out, ipath.Close{})
		}
	}
	return out
}

func rasterPoints(points []ipath.Point) []raster.Point {
	out := make([]raster.Point, len(points))
	for i, p := range points {
		out[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return out
}

func strokePoints(points []ipath.Point) []stroke.Point {
	out := make([]stroke.Point, len(points))
	for i, p := range points {
		out[i] = stroke.Point{X: p.X, Y: p.Y}
	}
	return out
}

func convertCap(c LineCap) stroke.CapMode {
	switch c {
	case LineCapSquare:
		return stroke.CapSquare
	case LineCapRound:
		return stroke.CapRound
	default:
		return stroke.CapButt
	}
}

func convertJoin(j LineJoin) stroke.JoinMode {
	switch j {
	case LineJoinRound:
		return stroke.JoinRound
	case LineJoinBevel:
		return stroke.JoinBevel
	default:
		return stroke.JoinMiter
	}
}
