package z2d

import (
	"errors"
	"testing"
)

func TestNewSurface(t *testing.T) {
	tests := []struct {
		name   string
		format PixelFormat
		zero   Pixel
	}{
		{"rgb", FormatRGB, RGB{}},
		{"rgba", FormatRGBA, RGBA{}},
		{"alpha8", FormatAlpha8, Alpha8{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSurface(tt.format, 4, 3)
			if err != nil {
				t.Fatalf("NewSurface: %v", err)
			}
			if s.Format() != tt.format {
				t.Errorf("Format = %v, want %v", s.Format(), tt.format)
			}
			if s.Width() != 4 || s.Height() != 3 {
				t.Errorf("size = %dx%d, want 4x3", s.Width(), s.Height())
			}
			if got := s.GetPixel(1, 1); got != tt.zero {
				t.Errorf("zero-initialized pixel = %+v, want %+v", got, tt.zero)
			}
		})
	}

	t.Run("invalid format", func(t *testing.T) {
		_, err := NewSurface(PixelFormat(99), 1, 1)
		if !errors.Is(err, ErrInvalidPixelFormat) {
			t.Errorf("err = %v, want ErrInvalidPixelFormat", err)
		}
	})
}

func TestSurface_Bounds(t *testing.T) {
	s, _ := NewSurface(FormatRGB, 2, 2)

	// Out-of-bounds reads return the zero pixel, writes are ignored.
	if got := s.GetPixel(-1, 0); got != (RGB{}) {
		t.Errorf("oob read = %+v, want zero", got)
	}
	if got := s.GetPixel(2, 0); got != (RGB{}) {
		t.Errorf("oob read = %+v, want zero", got)
	}
	s.SetPixel(5, 5, RGB{R: 9})
	s.CompositeSrcOver(-1, -1, RGB{R: 9})
	if got := s.GetPixel(0, 0); got != (RGB{}) {
		t.Errorf("oob write mutated surface: %+v", got)
	}
}

func TestSurface_SetConverts(t *testing.T) {
	s, _ := NewSurface(FormatAlpha8, 1, 1)
	s.SetPixel(0, 0, RGBA{R: 10, A: 70})
	if got := s.GetPixel(0, 0); got != (Alpha8{A: 70}) {
		t.Errorf("alpha8 surface pixel = %+v, want coverage 70", got)
	}

	r, _ := NewSurface(FormatRGB, 1, 1)
	r.SetPixel(0, 0, Alpha8{A: 70})
	if got := r.GetPixel(0, 0); got != (RGB{}) {
		t.Errorf("rgb surface pixel = %+v, want black", got)
	}
}

func TestSurface_Composite(t *testing.T) {
	s, _ := NewSurface(FormatRGBA, 1, 1)
	s.SetPixel(0, 0, RGBA{R: 170, G: 187, B: 204, A: 128})
	s.CompositeSrcOver(0, 0, RGBAFromClamped(1, 0, 0, 0.5))

	got, err := AsRGBA(s.GetPixel(0, 0))
	if err != nil {
		t.Fatalf("AsRGBA: %v", err)
	}
	if !withinOne(got, RGBA{R: 211, G: 93, B: 101, A: 191}) {
		t.Errorf("composited pixel = %+v", got)
	}

	s.CompositeDstIn(0, 0, Alpha8{})
	if got := s.GetPixel(0, 0); got != (RGBA{}) {
		t.Errorf("DstIn(transparent) = %+v, want transparent black", got)
	}
}
