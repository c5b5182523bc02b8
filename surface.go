package z2d

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Surface is an owning rectangular pixel buffer of one fixed format.
// Buffers are row-major and zero-initialized at construction. Pixel access
// is bounds-checked: out-of-bounds reads return the format's zero pixel
// and out-of-bounds writes are ignored.
//
// A Surface is not safe for concurrent mutation; two fills to the same
// surface are a data race by contract.
type Surface interface {
	// Format returns the fixed pixel format of the buffer.
	Format() PixelFormat
	// Width returns the width in pixels.
	Width() int
	// Height returns the height in pixels.
	Height() int
	// GetPixel returns the pixel at (x, y), or the zero pixel when out of
	// bounds.
	GetPixel(x, y int) Pixel
	// SetPixel stores a pixel at (x, y), converting it to the surface
	// format. Out-of-bounds writes are ignored.
	SetPixel(x, y int, p Pixel)
	// CompositeSrcOver blends src over the pixel at (x, y).
	CompositeSrcOver(x, y int, src Pixel)
	// CompositeDstIn attenuates the pixel at (x, y) by src's alpha.
	CompositeDstIn(x, y int, src Pixel)
}

// NewSurface creates a zero-initialized surface of the given format.
func NewSurface(format PixelFormat, width, height int) (Surface, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("z2d: invalid surface size %dx%d", width, height)
	}
	switch format {
	case FormatRGB:
		return &SurfaceRGB{width: width, height: height, pix: make([]RGB, width*height)}, nil
	case FormatRGBA:
		return &SurfaceRGBA{width: width, height: height, pix: make([]RGBA, width*height)}, nil
	case FormatAlpha8:
		return &SurfaceAlpha8{width: width, height: height, pix: make([]Alpha8, width*height)}, nil
	}
	return nil, fmt.Errorf("z2d: surface format %v: %w", format, ErrInvalidPixelFormat)
}

// SurfaceRGB is an opaque 24-bit color surface.
type SurfaceRGB struct {
	width  int
	height int
	pix    []RGB
}

// Format implements Surface.
func (s *SurfaceRGB) Format() PixelFormat { return FormatRGB }

// Width implements Surface.
func (s *SurfaceRGB) Width() int { return s.width }

// Height implements Surface.
func (s *SurfaceRGB) Height() int { return s.height }

// GetPixel implements Surface.
func (s *SurfaceRGB) GetPixel(x, y int) Pixel {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return RGB{}
	}
	return s.pix[y*s.width+x]
}

// SetPixel implements Surface.
func (s *SurfaceRGB) SetPixel(x, y int, p Pixel) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pix[y*s.width+x] = ToRGB(p)
}

// CompositeSrcOver implements Surface.
func (s *SurfaceRGB) CompositeSrcOver(x, y int, src Pixel) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := y*s.width + x
	s.pix[i] = SrcOver(s.pix[i], src).(RGB)
}

// CompositeDstIn implements Surface.
func (s *SurfaceRGB) CompositeDstIn(x, y int, src Pixel) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := y*s.width + x
	s.pix[i] = DstIn(s.pix[i], src).(RGB)
}

// At implements image.Image.
func (s *SurfaceRGB) At(x, y int) color.Color {
	p := ToRGB(s.GetPixel(x, y))
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// Bounds implements image.Image.
func (s *SurfaceRGB) Bounds() image.Rectangle { return image.Rect(0, 0, s.width, s.height) }

// ColorModel implements image.Image.
func (s *SurfaceRGB) ColorModel() color.Model { return color.NRGBAModel }

// SavePNG writes the surface to a PNG file.
func (s *SurfaceRGB) SavePNG(path string) error { return savePNG(path, s) }

// SurfaceRGBA is an alpha-premultiplied 32-bit color surface.
type SurfaceRGBA struct {
	width  int
	height int
	pix    []RGBA
}

// Format implements Surface.
func (s *SurfaceRGBA) Format() PixelFormat { return FormatRGBA }

// Width implements Surface.
func (s *SurfaceRGBA) Width() int { return s.width }

// Height implements Surface.
func (s *SurfaceRGBA) Height() int { return s.height }

// GetPixel implements Surface.
func (s *SurfaceRGBA) GetPixel(x, y int) Pixel {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return RGBA{}
	}
	return s.pix[y*s.width+x]
}

// SetPixel implements Surface.
func (s *SurfaceRGBA) SetPixel(x, y int, p Pixel) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pix[y*s.width+x] = ToRGBA(p)
}

// CompositeSrcOver implements Surface.
func (s *SurfaceRGBA) CompositeSrcOver(x, y int, src Pixel) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := y*s.width + x
	s.pix[i] = SrcOver(s.pix[i], src).(RGBA)
}

// CompositeDstIn implements Surface.
func (s *SurfaceRGBA) CompositeDstIn(x, y int, src Pixel) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := y*s.width + x
	s.pix[i] = DstIn(s.pix[i], src).(RGBA)
}

// At implements image.Image.
func (s *SurfaceRGBA) At(x, y int) color.Color {
	p := ToRGBA(s.GetPixel(x, y))
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// Bounds implements image.Image.
func (s *SurfaceRGBA) Bounds() image.Rectangle { return image.Rect(0, 0, s.width, s.height) }

// ColorModel implements image.Image.
func (s *SurfaceRGBA) ColorModel() color.Model { return color.RGBAModel }

// SavePNG writes the surface to a PNG file.
func (s *SurfaceRGBA) SavePNG(path string) error { return savePNG(path, s) }

// SurfaceAlpha8 is an 8-bit coverage-only surface.
type SurfaceAlpha8 struct {
	width  int
	height int
	pix    []Alpha8
}

// Format implements Surface.
func (s *SurfaceAlpha8) Format() PixelFormat { return FormatAlpha8 }

// Width implements Surface.
func (s *SurfaceAlpha8) Width() int { return s.width }

// Height implements Surface.
func (s *SurfaceAlpha8) Height() int { return s.height }

// GetPixel implements Surface.
func (s *SurfaceAlpha8) GetPixel(x, y int) Pixel {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Alpha8{}
	}
	return s.pix[y*s.width+x]
}

// SetPixel implements Surface.
func (s *SurfaceAlpha8) SetPixel(x, y int, p Pixel) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pix[y*s.width+x] = ToAlpha8(p)
}

// CompositeSrcOver implements Surface.
func (s *SurfaceAlpha8) CompositeSrcOver(x, y int, src Pixel) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := y*s.width + x
	s.pix[i] = SrcOver(s.pix[i], src).(Alpha8)
}

// CompositeDstIn implements Surface.
func (s *SurfaceAlpha8) CompositeDstIn(x, y int, src Pixel) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := y*s.width + x
	s.pix[i] = DstIn(s.pix[i], src).(Alpha8)
}

// At implements image.Image.
func (s *SurfaceAlpha8) At(x, y int) color.Color {
	return color.Alpha{A: ToAlpha8(s.GetPixel(x, y)).A}
}

// Bounds implements image.Image.
func (s *SurfaceAlpha8) Bounds() image.Rectangle { return image.Rect(0, 0, s.width, s.height) }

// ColorModel implements image.Image.
func (s *SurfaceAlpha8) ColorModel() color.Model { return color.AlphaModel }

// SavePNG writes the surface to a PNG file.
func (s *SurfaceAlpha8) SavePNG(path string) error { return savePNG(path, s) }

// EncodePNG writes any surface to w as PNG.
func EncodePNG(w io.Writer, s Surface) error {
	img, ok := s.(image.Image)
	if !ok {
		return fmt.Errorf("z2d: surface does not implement image.Image")
	}
	return png.Encode(w, img)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, img)
}
