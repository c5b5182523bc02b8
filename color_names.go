package z2d

import "golang.org/x/image/colornames"

// RGBFromName looks up a CSS named color. The lookup is case-sensitive
// and covers the 147 extended color keywords; names outside the table
// (including later additions such as "rebeccapurple") report false.
func RGBFromName(name string) (RGB, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return RGB{}, false
	}
	return RGB{R: c.R, G: c.G, B: c.B}, ok
}

// RGBAFromName looks up a CSS named color as a fully opaque RGBA pixel.
func RGBAFromName(name string) (RGBA, bool) {
	c, ok := RGBFromName(name)
	if !ok {
		return RGBA{}, false
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: 255}, true
}
