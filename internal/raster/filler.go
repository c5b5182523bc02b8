// Package raster scan-converts closed polygons into per-pixel coverage.
//
// Coverage is computed by point-in-polygon sampling: one sample at the
// pixel center, or a regular supersample grid resolved to an average, per
// the requested antialiasing mode. The caller composites the reported
// coverage through its pattern; the filler itself never touches pixels.
package raster

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// FillRule specifies how to determine which areas are inside a polygon.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Samples is the supersampling grid dimension: antialiased coverage
// evaluates Samples x Samples sub-samples per pixel.
const Samples = 4

// edge is one polygon edge prepared for ray crossing tests. Horizontal
// edges never cross a horizontal ray and are dropped at construction.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    int // +1 downward, -1 upward
}

// Filler rasterizes polygons clipped against a fixed surface rectangle.
type Filler struct {
	width  int
	height int
}

// NewFiller creates a filler for the given surface dimensions.
func NewFiller(width, height int) *Filler {
	return &Filler{width: width, height: height}
}

// Fill computes coverage for the polygon given by contours and invokes
// callback for every pixel with non-zero coverage. Contours are closed
// implicitly (last vertex connects back to first). When antialias is
// true, coverage is the resolved average of the supersample grid;
// otherwise it is 0 or 255 from a single center sample.
func (f *Filler) Fill(contours [][]Point, rule FillRule, antialias bool, callback func(x, y int, coverage uint8)) {
	edges, bounds := buildEdges(contours)
	if len(edges) == 0 {
		return
	}

	x0, y0, x1, y1 := f.clipBounds(bounds)
	samples := make([]uint8, 0, Samples*Samples)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			var coverage uint8
			if antialias {
				samples = samples[:0]
				for sy := 0; sy < Samples; sy++ {
					py := float64(y) + (float64(sy)+0.5)/Samples
					for sx := 0; sx < Samples; sx++ {
						px := float64(x) + (float64(sx)+0.5)/Samples
						if inside(edges, px, py, rule) {
							samples = append(samples, 255)
						} else {
							samples = append(samples, 0)
						}
					}
				}
				coverage = averageCoverage(samples)
			} else if inside(edges, float64(x)+0.5, float64(y)+0.5, rule) {
				coverage = 255
			}
			if coverage == 0 {
				continue
			}
			callback(x, y, coverage)
		}
	}
}

// bbox is the axis-aligned bounding box of the polygon.
type bbox struct {
	minX, minY float64
	maxX, maxY float64
}

func buildEdges(contours [][]Point) ([]edge, bbox) {
	var edges []edge
	b := bbox{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}

	for _, ring := range contours {
		if len(ring) < 3 {
			continue
		}
		for i, p := range ring {
			b.minX = math.Min(b.minX, p.X)
			b.minY = math.Min(b.minY, p.Y)
			b.maxX = math.Max(b.maxX, p.X)
			b.maxY = math.Max(b.maxY, p.Y)

			q := ring[(i+1)%len(ring)]
			if p.Y == q.Y {
				continue
			}
			dir := 1
			if p.Y > q.Y {
				dir = -1
			}
			edges = append(edges, edge{
				x0: p.X, y0: p.Y,
				x1: q.X, y1: q.Y,
				dxdy: (q.X - p.X) / (q.Y - p.Y),
				dir:  dir,
			})
		}
	}
	return edges, b
}

// clipBounds converts the polygon bounding box to a pixel rectangle
// clipped to the surface.
func (f *Filler) clipBounds(b bbox) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(b.minX))
	y0 = int(math.Floor(b.minY))
	x1 = int(math.Ceil(b.maxX))
	y1 = int(math.Ceil(b.maxY))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > f.width {
		x1 = f.width
	}
	if y1 > f.height {
		y1 = f.height
	}
	return
}

// inside tests a sample point against the polygon under the fill rule by
// casting a horizontal ray toward +x. Crossings use the half-open
// top-inclusive, bottom-exclusive convention, so a sample exactly at a
// vertex y counts as lying just past the vertex toward larger y and
// shared vertices are never double-counted.
func inside(edges []edge, x, y float64, rule FillRule) bool {
	winding := 0
	crossings := 0
	for i := range edges {
		e := &edges[i]
		if (e.y0 <= y) == (e.y1 <= y) {
			continue
		}
		xi := e.x0 + (y-e.y0)*e.dxdy
		if xi > x {
			winding += e.dir
			crossings++
		}
	}
	if rule == FillRuleEvenOdd {
		return crossings%2 == 1
	}
	return winding != 0
}

// averageCoverage resolves a supersample grid to its truncating mean,
// mirroring the pixel-level alpha averaging resolver.
func averageCoverage(samples []uint8) uint8 {
	if len(samples) == 0 {
		return 0
	}
	var sum uint32
	for _, s := range samples {
		sum += uint32(s)
	}
	return uint8(sum / uint32(len(samples)))
}
