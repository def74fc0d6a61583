package film

// RGBA holds floating-point color components, conceptually in [0,1]
// although the type itself does not clamp. Colors are linear, not
// gamma-encoded.
type RGBA struct {
	R, G, B, A float32
}

// NewRGBA creates a new RGBA color
func NewRGBA(r, g, b, a float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Gray creates an opaque color with equal R, G and B components
func Gray(intensity float32) RGBA {
	return RGBA{R: intensity, G: intensity, B: intensity, A: 1}
}

// Scale returns the color with R, G and B scaled by s; alpha is unchanged
func (c RGBA) Scale(s float32) RGBA {
	return RGBA{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

// Add returns the component-wise sum of the R, G and B channels;
// alpha is taken from the receiver
func (c RGBA) Add(other RGBA) RGBA {
	return RGBA{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B, A: c.A}
}

// Mul returns the component-wise product of the R, G and B channels;
// alpha is taken from the receiver
func (c RGBA) Mul(other RGBA) RGBA {
	return RGBA{R: c.R * other.R, G: c.G * other.G, B: c.B * other.B, A: c.A}
}

// Over composites top behind the receiver; the receiver is the
// accumulator in back-to-front compositing:
//
//	s = top.A·(1−c.A)
//	result = (c.A·c.rgb + s·top.rgb, c.A + s)
//
// A fully opaque receiver is returned unchanged regardless of top.
func (c RGBA) Over(top RGBA) RGBA {
	s := top.A * (1 - c.A)
	return RGBA{
		R: c.A*c.R + s*top.R,
		G: c.A*c.G + s*top.G,
		B: c.A*c.B + s*top.B,
		A: c.A + s,
	}
}
