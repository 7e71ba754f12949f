package gear

// CubicBez is a cubic Bézier curve.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
//
// The first half ends and the second half starts at c.Eval(0.5).
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	e := c.P0.Midpoint(c.P1)
	f := c.P1.Midpoint(c.P2)
	g := c.P2.Midpoint(c.P3)

	h := e.Midpoint(f)
	j := f.Midpoint(g)

	k := h.Midpoint(j)

	return CubicBez{c.P0, e, h, k}, CubicBez{k, j, g, c.P3}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// CubicTo returns the path element drawing c from the current position, which
// must be c.P0.
func (c CubicBez) CubicTo() PathElement {
	return CubicTo(c.P1, c.P2, c.P3)
}
