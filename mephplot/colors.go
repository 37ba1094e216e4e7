package mephplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg/draw"
)

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}

// colors spreads steps colors over the hue circle, skipping the yellows,
// which are hard to see on white.
func colors(key, steps int) color.RGBA {
	if steps < 1 {
		steps = 1
	}
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	r, g, b := iHVS2RGB(math.Mod(h, 360), 1.0, 1.0)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

var shapes = []draw.GlyphDrawer{
	draw.PlusGlyph{},
	draw.CircleGlyph{},
	draw.CrossGlyph{},
	draw.TriangleGlyph{},
	draw.SquareGlyph{},
	draw.RingGlyph{},
	draw.PyramidGlyph{},
	draw.BoxGlyph{},
}

// getShape returns a glyph for the index i, cycling through the available ones.
func getShape(i int) draw.GlyphDrawer {
	if i < 0 {
		i = -i
	}
	return shapes[i%len(shapes)]
}
