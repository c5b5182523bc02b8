// Command svgrender rasterizes a minimal SVG file to a PNG or BMP image.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/qwerasd205/z2d"
	"github.com/qwerasd205/z2d/svg"
)

func main() {
	var (
		output = flag.String("output", "out.png", "output file (.png or .bmp)")
		width  = flag.Int("width", 0, "surface width (0 = from document)")
		height = flag.Int("height", 0, "surface height (0 = from document)")
		bg     = flag.String("background", "", "background color name (default black)")
	)
	flag.Parse()

	in := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("open: %v", err)
		}
		defer f.Close()
		in = f
	}

	doc, err := svg.Parse(in)
	if err != nil {
		log.Fatalf("parse: %v", err)
	}
	for _, w := range doc.Warnings {
		log.Printf("warning: %s", w)
	}

	w, h := doc.Width, doc.Height
	if *width > 0 {
		w = *width
	}
	if *height > 0 {
		h = *height
	}
	if w <= 0 || h <= 0 {
		log.Fatalf("document has no usable size; pass -width and -height")
	}

	surface, err := z2d.NewSurface(z2d.FormatRGB, w, h)
	if err != nil {
		log.Fatalf("surface: %v", err)
	}

	if *bg != "" {
		c, ok := z2d.RGBFromName(*bg)
		if !ok {
			log.Fatalf("unknown background color %q", *bg)
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				surface.SetPixel(x, y, c)
			}
		}
	}

	svg.Render(doc, surface)

	if err := save(*output, surface); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("rendered %d shapes to %s (%dx%d)", len(doc.Shapes), *output, w, h)
}

func save(path string, surface z2d.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, ok := surface.(image.Image)
	if !ok {
		return fmt.Errorf("surface is not an image")
	}
	if strings.HasSuffix(strings.ToLower(path), ".bmp") {
		return bmp.Encode(f, img)
	}
	return z2d.EncodePNG(f, surface)
}
