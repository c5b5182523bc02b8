package z2d

import "errors"

// ErrInvalidPixelFormat is returned when a Pixel is narrowed to a concrete
// variant that does not match its actual format.
var ErrInvalidPixelFormat = errors.New("z2d: invalid pixel format")

// PixelFormat identifies the concrete variant of a Pixel.
type PixelFormat int

const (
	// FormatRGB is a 24-bit opaque color pixel.
	FormatRGB PixelFormat = iota
	// FormatRGBA is a 32-bit alpha-premultiplied color pixel.
	FormatRGBA
	// FormatAlpha8 is an 8-bit coverage-only pixel.
	FormatAlpha8
)

// String returns the name of the pixel format.
func (f PixelFormat) String() string {
	switch f {
	case FormatRGB:
		return "rgb"
	case FormatRGBA:
		return "rgba"
	case FormatAlpha8:
		return "alpha8"
	}
	return "unknown"
}

// Pixel is a tagged pixel value. The concrete variants are RGB, RGBA, and
// Alpha8. Compositing always treats RGBA channels as alpha-premultiplied.
type Pixel interface {
	// Format returns the concrete variant of this pixel.
	Format() PixelFormat

	isPixel()
}

// RGB is an opaque color pixel. Compositing treats it as having an
// implicit alpha of 255.
type RGB struct {
	R, G, B uint8
}

// Format implements Pixel.
func (RGB) Format() PixelFormat { return FormatRGB }

func (RGB) isPixel() {}

// RGBA is an alpha-premultiplied color pixel: each color channel is
// pre-scaled by A/255.
type RGBA struct {
	R, G, B, A uint8
}

// Format implements Pixel.
func (RGBA) Format() PixelFormat { return FormatRGBA }

func (RGBA) isPixel() {}

// Alpha8 is a coverage-only pixel.
type Alpha8 struct {
	A uint8
}

// Format implements Pixel.
func (Alpha8) Format() PixelFormat { return FormatAlpha8 }

func (Alpha8) isPixel() {}

// RGBFromClamped builds an RGB pixel from components in [0, 1].
// Inputs are clamped to [0, 1] and scaled to [0, 255] with truncation.
func RGBFromClamped(r, g, b float64) RGB {
	return RGB{
		R: uint8(clamp01(r) * 255),
		G: uint8(clamp01(g) * 255),
		B: uint8(clamp01(b) * 255),
	}
}

// RGBAFromClamped builds an RGBA pixel from straight (non-premultiplied)
// components in [0, 1]. Inputs are clamped to [0, 1], premultiplied by
// alpha, and scaled to [0, 255] with truncation.
func RGBAFromClamped(r, g, b, a float64) RGBA {
	a = clamp01(a)
	return RGBA{
		R: uint8(clamp01(r) * a * 255),
		G: uint8(clamp01(g) * a * 255),
		B: uint8(clamp01(b) * a * 255),
		A: uint8(a * 255),
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Multiply converts a straight-alpha RGBA value to premultiplied form.
func (c RGBA) Multiply() RGBA {
	return RGBA{
		R: uint8(uint32(c.R) * uint32(c.A) / 255),
		G: uint8(uint32(c.G) * uint32(c.A) / 255),
		B: uint8(uint32(c.B) * uint32(c.A) / 255),
		A: c.A,
	}
}

// Demultiply converts a premultiplied RGBA value to straight-alpha form.
// Zero alpha yields transparent black. The round trip through Multiply
// loses at most one unit per channel to integer remainder.
func (c RGBA) Demultiply() RGBA {
	if c.A == 0 {
		return RGBA{}
	}
	return RGBA{
		R: uint8(uint32(c.R) * 255 / uint32(c.A)),
		G: uint8(uint32(c.G) * 255 / uint32(c.A)),
		B: uint8(uint32(c.B) * 255 / uint32(c.A)),
		A: c.A,
	}
}

// ToRGBA widens any pixel to the RGBA variant. RGB gains alpha 255;
// Alpha8 yields premultiplied black at its coverage.
func ToRGBA(p Pixel) RGBA {
	switch v := p.(type) {
	case RGB:
		return RGBA{R: v.R, G: v.G, B: v.B, A: 255}
	case RGBA:
		return v
	case Alpha8:
		return RGBA{A: v.A}
	}
	return RGBA{}
}

// ToRGB narrows any pixel to the RGB variant, dropping alpha.
func ToRGB(p Pixel) RGB {
	switch v := p.(type) {
	case RGB:
		return v
	case RGBA:
		return RGB{R: v.R, G: v.G, B: v.B}
	case Alpha8:
		return RGB{}
	}
	return RGB{}
}

// ToAlpha8 narrows any pixel to the Alpha8 variant. RGB is fully opaque.
func ToAlpha8(p Pixel) Alpha8 {
	switch v := p.(type) {
	case RGB:
		return Alpha8{A: 255}
	case RGBA:
		return Alpha8{A: v.A}
	case Alpha8:
		return v
	}
	return Alpha8{}
}

// Convert casts a pixel to the given format using the lossless widening
// and lossy narrowing rules of ToRGB, ToRGBA, and ToAlpha8.
func Convert(p Pixel, f PixelFormat) Pixel {
	switch f {
	case FormatRGB:
		return ToRGB(p)
	case FormatRGBA:
		return ToRGBA(p)
	case FormatAlpha8:
		return ToAlpha8(p)
	}
	return nil
}

// AsRGB asserts that p is the RGB variant.
func AsRGB(p Pixel) (RGB, error) {
	v, ok := p.(RGB)
	if !ok {
		return RGB{}, ErrInvalidPixelFormat
	}
	return v, nil
}

// AsRGBA asserts that p is the RGBA variant.
func AsRGBA(p Pixel) (RGBA, error) {
	v, ok := p.(RGBA)
	if !ok {
		return RGBA{}, ErrInvalidPixelFormat
	}
	return v, nil
}

// AsAlpha8 asserts that p is the Alpha8 variant.
func AsAlpha8(p Pixel) (Alpha8, error) {
	v, ok := p.(Alpha8)
	if !ok {
		return Alpha8{}, ErrInvalidPixelFormat
	}
	return v, nil
}

// SrcOver composites src over dst and returns a pixel in dst's format.
// The operator is out = src + dst*(1 - src.a), evaluated per channel with
// truncating integer arithmetic. RGB destinations have implicit alpha 255;
// Alpha8 destinations composite alpha only.
func SrcOver(dst, src Pixel) Pixel {
	s := ToRGBA(src)
	inv := 255 - uint32(s.A)
	switch d := dst.(type) {
	case RGB:
		return RGB{
			R: uint8(uint32(s.R) + uint32(d.R)*inv/255),
			G: uint8(uint32(s.G) + uint32(d.G)*inv/255),
			B: uint8(uint32(s.B) + uint32(d.B)*inv/255),
		}
	case RGBA:
		return RGBA{
			R: uint8(uint32(s.R) + uint32(d.R)*inv/255),
			G: uint8(uint32(s.G) + uint32(d.G)*inv/255),
			B: uint8(uint32(s.B) + uint32(d.B)*inv/255),
			A: uint8(uint32(s.A) + uint32(d.A)*inv/255),
		}
	case Alpha8:
		return Alpha8{
			A: uint8(uint32(s.A) + uint32(d.A)*inv/255),
		}
	}
	return dst
}

// DstIn keeps the destination where the source is opaque: out = dst*src.a.
// An RGB destination has no alpha channel to attenuate, so it is returned
// unchanged.
func DstIn(dst, src Pixel) Pixel {
	sa := uint32(ToAlpha8(src).A)
	switch d := dst.(type) {
	case RGB:
		return d
	case RGBA:
		return RGBA{
			R: uint8(uint32(d.R) * sa / 255),
			G: uint8(uint32(d.G) * sa / 255),
			B: uint8(uint32(d.B) * sa / 255),
			A: uint8(uint32(d.A) * sa / 255),
		}
	case Alpha8:
		return Alpha8{A: uint8(uint32(d.A) * sa / 255)}
	}
	return dst
}

// AverageRGB returns the per-channel truncating mean of the given pixels.
// An empty slice averages to channel zeros.
func AverageRGB(pixels []RGB) RGB {
	if len(pixels) == 0 {
		return RGB{}
	}
	var r, g, b uint32
	for _, p := range pixels {
		r += uint32(p.R)
		g += uint32(p.G)
		b += uint32(p.B)
	}
	n := uint32(len(pixels))
	return RGB{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
}

// AverageRGBA returns the per-channel truncating mean of the given pixels.
// An empty slice averages to transparent black.
func AverageRGBA(pixels []RGBA) RGBA {
	if len(pixels) == 0 {
		return RGBA{}
	}
	var r, g, b, a uint32
	for _, p := range pixels {
		r += uint32(p.R)
		g += uint32(p.G)
		b += uint32(p.B)
		a += uint32(p.A)
	}
	n := uint32(len(pixels))
	return RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: uint8(a / n)}
}

// AverageAlpha8 returns the truncating mean coverage of the given pixels.
// An empty slice averages to zero coverage. The filler resolves its
// supersamples with the same truncating mean, computed on raw coverage
// bytes inside internal/raster.
func AverageAlpha8(pixels []Alpha8) Alpha8 {
	if len(pixels) == 0 {
		return Alpha8{}
	}
	var a uint32
	for _, p := range pixels {
		a += uint32(p.A)
	}
	return Alpha8{A: uint8(a / uint32(len(pixels)))}
}

// ScaleCoverage attenuates a pixel by an 8-bit coverage value, modulating
// every channel (premultiplied semantics) with truncating arithmetic.
func ScaleCoverage(p Pixel, coverage uint8) Pixel {
	if coverage == 255 {
		return p
	}
	cov := uint32(coverage)
	switch v := p.(type) {
	case RGB:
		// Coverage introduces transparency, so an RGB source widens to RGBA.
		return RGBA{
			R: uint8(uint32(v.R) * cov / 255),
			G: uint8(uint32(v.G) * cov / 255),
			B: uint8(uint32(v.B) * cov / 255),
			A: coverage,
		}
	case RGBA:
		return RGBA{
			R: uint8(uint32(v.R) * cov / 255),
			G: uint8(uint32(v.G) * cov / 255),
			B: uint8(uint32(v.B) * cov / 255),
			A: uint8(uint32(v.A) * cov / 255),
		}
	case Alpha8:
		return Alpha8{A: uint8(uint32(v.A) * cov / 255)}
	}
	return p
}
