// Package z2d is a 2D vector graphics rasterization library.
//
// # Overview
//
// z2d renders filled and stroked vector paths onto typed pixel surfaces
// using Porter-Duff compositing. The pipeline is a strict leaves-first
// composition: paths are flattened to polylines, strokes are expanded
// into closed fillable polygons, polygons are scan-converted to
// antialiased pixel coverage, and coverage is blended through a pattern
// onto the destination surface.
//
// # Quick Start
//
//	import "github.com/qwerasd205/z2d"
//
//	surface, _ := z2d.NewSurface(z2d.FormatRGB, 600, 400)
//	dc := z2d.NewContext(surface,
//		z2d.WithPattern(z2d.NewOpaquePattern(z2d.RGB{R: 255, G: 255, B: 255})))
//
//	path := z2d.NewPath()
//	path.MoveTo(10, 10)
//	path.LineTo(189, 10)
//	path.LineTo(99, 189)
//	path.Close()
//	dc.Fill(path)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Context, Path, Pixel, Surface, Pattern, Stroke, Matrix
//   - internal/path: cubic Bezier flattening
//   - internal/stroke: stroke outline expansion (faces, joins, caps)
//   - internal/raster: polygon coverage rasterization
//   - svg: minimal attribute-driven SVG front-end
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Compositing
//
// All RGBA values are alpha-premultiplied. Constructors that accept
// straight alpha (RGBAFromClamped) premultiply on construction;
// user-supplied raw values must go through Multiply before blending.
package z2d

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
