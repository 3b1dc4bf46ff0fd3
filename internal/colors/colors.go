// Package colors holds the color math shared by the lighting effects.
//
// The controllers expect channels in green-red-blue order on the wire, so
// everything here works in GRB rather than the conventional RGB.
package colors

import "math"

// GRB is one 8-bit color sample in wire channel order.
type GRB struct {
	G uint8 `yaml:"g"`
	R uint8 `yaml:"r"`
	B uint8 `yaml:"b"`
}

// Triple returns the three channels as a wire-ready byte slice.
func (c GRB) Triple() []byte {
	return []byte{c.G, c.R, c.B}
}

// Repeat returns n copies of c laid out as consecutive GRB triples,
// one per LED slot.
func Repeat(c GRB, n int) []byte {
	out := make([]byte, 0, 3*n)
	for i := 0; i < n; i++ {
		out = append(out, c.G, c.R, c.B)
	}
	return out
}

// Clamp01 clamps f into [0, 1].
func Clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Lerp interpolates channel-wise from a to b by t (clamped to [0,1]),
// rounding to the nearest step.
func Lerp(a, b GRB, t float64) GRB {
	t = Clamp01(t)
	ch := func(x, y uint8) uint8 {
		return uint8(float64(x) + math.Round(t*(float64(y)-float64(x))))
	}
	return GRB{G: ch(a.G, b.G), R: ch(a.R, b.R), B: ch(a.B, b.B)}
}

// HueToGRB converts a hue angle in degrees to a fully saturated,
// full-value color.
func HueToGRB(h float64) GRB {
	return HSVToGRB(h, 1, 1)
}

// HSVToGRB is the standard hexagonal-sector HSV conversion. The hue wraps
// with period 360 and the output is continuous across sector boundaries.
func HSVToGRB(h, s, v float64) GRB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h60 := h / 60
	sector := int(math.Floor(h60)) % 6
	f := h60 - math.Floor(h60)

	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch sector {
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
	case 5:
		r, g, b = v, p, q
	}
	return GRB{G: uint8(g * 255), R: uint8(r * 255), B: uint8(b * 255)}
}
