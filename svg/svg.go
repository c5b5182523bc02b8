// Package svg is a minimal attribute-driven SVG front-end for z2d.
//
// It reads the <svg> root and <path> elements from an XML stream and
// interprets the d, fill, fill-rule, stroke, and stroke-width attributes,
// emitting Shape records ready for rendering. It deliberately implements
// no further SVG document semantics: no groups, transforms, styles, or
// units. Malformed attributes are recorded as warnings and never abort
// parsing.
package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/qwerasd205/z2d"
)

// Shape is one renderable path with its resolved paint attributes.
type Shape struct {
	// Fill is the fill color, or nil when fill="none".
	Fill *z2d.RGB
	// FillRule is the winding rule for the fill.
	FillRule z2d.FillRule
	// Stroke is the stroke color, or nil when the path is not stroked.
	Stroke *z2d.RGB
	// StrokeWidth is the stroke thickness in surface units.
	StrokeWidth float64
	// Path is the parsed geometry.
	Path *z2d.Path
}

// Document is the result of parsing an SVG stream.
type Document struct {
	// Width and Height are the root element's dimensions, zero when
	// absent or unparseable.
	Width  int
	Height int
	// Shapes are the parsed path elements in document order.
	Shapes []Shape
	// Warnings records attribute-level parse failures. Warnings never
	// abort parsing; the offending attribute falls back to its default,
	// except a malformed d, which keeps the geometry parsed before the
	// error.
	Warnings []string
}

// Parse reads an SVG document from r. Documents in non-UTF-8 encodings
// are decoded through the encoding named by the XML declaration. Only
// XML-level failures return an error; attribute-level failures are
// accumulated in the document's warnings.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	doc := &Document{}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("svg: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "svg":
			doc.parseRoot(start)
		case "path":
			doc.parsePath(start)
		}
	}
	return doc, nil
}

// charsetReader decodes non-UTF-8 XML streams using the x/text encoding
// registry.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("svg: unsupported charset %q: %w", charset, err)
	}
	return enc.NewDecoder().Reader(input), nil
}

func (doc *Document) warnf(format string, args ...any) {
	doc.Warnings = append(doc.Warnings, fmt.Sprintf(format, args...))
}

func (doc *Document) parseRoot(start xml.StartElement) {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "width":
			doc.Width = doc.parseDimension(attr.Value, "width")
		case "height":
			doc.Height = doc.parseDimension(attr.Value, "height")
		}
	}
}

func (doc *Document) parseDimension(value, name string) int {
	v := strings.TrimSuffix(strings.TrimSpace(value), "px")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		doc.warnf("svg: bad %s %q", name, value)
		return 0
	}
	return int(f)
}

func (doc *Document) parsePath(start xml.StartElement) {
	black := z2d.RGB{}
	shape := Shape{
		Fill:        &black,
		FillRule:    z2d.FillRuleNonZero,
		StrokeWidth: 1,
	}

	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "d":
			p, err := ParsePathData(attr.Value)
			if err != nil {
				doc.warnf("svg: path data: %v", err)
			}
			shape.Path = p
		case "fill":
			c, none, err := parsePaint(attr.Value)
			if err != nil {
				doc.warnf("svg: fill: %v", err)
				continue
			}
			if none {
				shape.Fill = nil
			} else {
				shape.Fill = &c
			}
		case "fill-rule":
			switch strings.TrimSpace(attr.Value) {
			case "nonzero":
				shape.FillRule = z2d.FillRuleNonZero
			case "evenodd":
				shape.FillRule = z2d.FillRuleEvenOdd
			default:
				doc.warnf("svg: bad fill-rule %q", attr.Value)
			}
		case "stroke":
			c, none, err := parsePaint(attr.Value)
			if err != nil {
				doc.warnf("svg: stroke: %v", err)
				continue
			}
			if none {
				shape.Stroke = nil
			} else {
				shape.Stroke = &c
			}
		case "stroke-width":
			w, err := strconv.ParseFloat(strings.TrimSpace(attr.Value), 64)
			if err != nil || w < 0 {
				doc.warnf("svg: bad stroke-width %q", attr.Value)
				continue
			}
			shape.StrokeWidth = w
		}
	}

	if shape.Path == nil || len(shape.Path.Nodes()) == 0 {
		// A <path> without usable geometry renders nothing; warnings for
		// its d attribute were already recorded.
		return
	}
	doc.Shapes = append(doc.Shapes, shape)
}

// parsePaint resolves a fill/stroke attribute value: "none", a #hex
// color, or a CSS named color.
func parsePaint(value string) (c z2d.RGB, none bool, err error) {
	v := strings.TrimSpace(value)
	switch {
	case v == "none":
		return z2d.RGB{}, true, nil
	case strings.HasPrefix(v, "#"):
		c, err = parseHexColor(v[1:])
		return c, false, err
	default:
		c, ok := z2d.RGBFromName(v)
		if !ok {
			return z2d.RGB{}, false, fmt.Errorf("unknown color %q", value)
		}
		return c, false, nil
	}
}

func parseHexColor(hex string) (z2d.RGB, error) {
	var r, g, b uint64
	var err error
	switch len(hex) {
	case 3:
		r, g, b, err = parseHexChannels(hex, 1)
		r, g, b = r*17, g*17, b*17
	case 6:
		r, g, b, err = parseHexChannels(hex, 2)
	default:
		return z2d.RGB{}, fmt.Errorf("bad hex color %q", "#"+hex)
	}
	if err != nil {
		return z2d.RGB{}, fmt.Errorf("bad hex color %q", "#"+hex)
	}
	return z2d.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

func parseHexChannels(hex string, width int) (r, g, b uint64, err error) {
	r, err = strconv.ParseUint(hex[0:width], 16, 8)
	if err != nil {
		return
	}
	g, err = strconv.ParseUint(hex[width:2*width], 16, 8)
	if err != nil {
		return
	}
	b, err = strconv.ParseUint(hex[2*width:3*width], 16, 8)
	return
}

// Render draws every shape of the document onto the surface in document
// order; each shape's fill is drawn before its own stroke.
func Render(doc *Document, surface z2d.Surface) {
	for _, shape := range doc.Shapes {
		if shape.Fill != nil {
			dc := z2d.NewContext(surface,
				z2d.WithPattern(z2d.NewOpaquePattern(*shape.Fill)),
				z2d.WithFillRule(shape.FillRule))
			dc.Fill(shape.Path)
		}
		if shape.Stroke != nil && shape.StrokeWidth > 0 {
			dc := z2d.NewContext(surface,
				z2d.WithPattern(z2d.NewOpaquePattern(*shape.Stroke)),
				z2d.WithStroke(z2d.DefaultStroke().WithWidth(shape.StrokeWidth)))
			dc.Stroke(shape.Path)
		}
	}
}
