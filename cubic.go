package superellipse

import "sort"

var _ ParametricCurve = CubicBez{}

// CubicBez is a cubic Bézier segment. P0 and P3 are on-curve, P1 and P2 are
// the off-curve handles belonging to P0 and P3 respectively.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c CubicBez) BoundingBox() Rect {
	return BoundingBox(c)
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

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// Tangents returns the start and end tangent vectors, P1−P0 and P3−P2. They
// are zero for retracted handles.
func (c CubicBez) Tangents() (Vec2, Vec2) {
	return c.P1.Sub(c.P0), c.P3.Sub(c.P2)
}

// HandleLengths returns the lengths of the start and end handles.
func (c CubicBez) HandleLengths() (float64, float64) {
	d0, d1 := c.Tangents()
	return d0.Hypot(), d1.Hypot()
}

// StartCurvature returns the signed curvature at t = 0. Positive values turn
// left. It returns 0 if the start handle is retracted.
func (c CubicBez) StartCurvature() float64 {
	d01 := c.P1.Sub(c.P0)
	l := d01.Hypot()
	if l == 0 {
		return 0
	}
	return (2.0 / 3.0) * d01.Cross(c.P2.Sub(c.P1)) / (l * l * l)
}

// EndCurvature returns the signed curvature at t = 1. Positive values turn
// left. It returns 0 if the end handle is retracted.
func (c CubicBez) EndCurvature() float64 {
	d23 := c.P3.Sub(c.P2)
	l := d23.Hypot()
	if l == 0 {
		return 0
	}
	return (2.0 / 3.0) * c.P2.Sub(c.P1).Cross(d23) / (l * l * l)
}

func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

// isFinite reports whether all control points are finite.
func (c CubicBez) isFinite() bool {
	return !c.IsNaN() && !c.IsInf()
}

// chordAngles returns the angles the start and end handles make with the
// chord P0→P3, measured so that both are positive for a segment that bulges
// to the left of its chord. Retracted handles yield 0.
func (c CubicBez) chordAngles() (float64, float64) {
	chord := c.P3.Sub(c.P0)
	d0, d1 := c.Tangents()
	var th0, th1 float64
	if d0.Hypot2() != 0 {
		th0 = chord.SignedAngleTo(d0)
	}
	if d1.Hypot2() != 0 {
		th1 = d1.SignedAngleTo(chord)
	}
	return th0, th1
}
