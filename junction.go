package superellipse

import (
	"errors"
	"fmt"
	"math"
)

// SolverOptions bound the iterations behind the Smooth and Smart
// distributions.
type SolverOptions struct {
	// Tolerance is the step, in outline units, at or below which an
	// iteration has converged.
	Tolerance float64 `toml:"tolerance"`
	// MaxIterations caps the Newton steps of each segment solve in Smooth
	// mode and the sweeps over all junctions in Smart mode.
	MaxIterations int `toml:"max_iterations"`
}

// DefaultSolverOptions returns a tolerance of 1e-7 units and at most 64
// iterations.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     1e-7,
		MaxIterations: 64,
	}
}

func (o SolverOptions) validate() error {
	if math.IsNaN(o.Tolerance) || o.Tolerance <= 0 {
		return &ParamError{Name: "tolerance", Value: o.Tolerance, Min: math.SmallestNonzeroFloat64, Max: math.Inf(1)}
	}
	if o.MaxIterations < 1 {
		return &ParamError{Name: "max iterations", Value: float64(o.MaxIterations), Min: 1, Max: math.MaxInt32}
	}
	return nil
}

const (
	// maxKink is the largest angle, in radians, between the two handles of
	// a junction that is still solved.
	maxKink = DefaultSmoothTolerance
	// minOffset is the smallest distance of a neighbouring control point
	// from the junction's tangent line that defines a curvature.
	minOffset = 1e-9
	// minSmoothRatio is the shortest handle, as a fraction of its
	// tangent-intersection distance, a Smooth solution may produce. Handles
	// never reach past the tangent intersection.
	minSmoothRatio = 0.25
)

// junction is the smooth node shared by segment node-1 (incoming) and
// segment node (outgoing).
type junction struct {
	node int
	// balanced handles and node, restored if the junction turns degenerate
	a2, b1, n Point
	// curvature is the unsigned curvature both sides are solved for in
	// Smooth mode.
	curvature float64
	skipped   bool
}

// restore puts the balanced handles and node of j back into c and returns
// the largest displacement this caused.
func (j junction) restore(c *Contour) float64 {
	in, out, n := &c.Segs[c.prev(j.node)].P2, &c.Segs[j.node].P1, &c.Nodes[j.node].Pt
	d := math.Max(in.Distance(j.a2), math.Max(out.Distance(j.b1), n.Distance(j.n)))
	*in, *out, *n = j.a2, j.b1, j.n
	return d
}

// junctions lists the smooth nodes between two cubic segments. A contour of
// one segment has none.
func junctions(c Contour) []junction {
	if c.Len() < 2 {
		return nil
	}
	var js []junction
	for i, n := range c.Nodes {
		if !n.Smooth {
			continue
		}
		if c.Segs[c.prev(i)].Kind != CubicSegment || c.Segs[i].Kind != CubicSegment {
			continue
		}
		js = append(js, junction{
			node: i,
			a2:   c.Segs[c.prev(i)].P2,
			b1:   c.Segs[i].P1,
			n:    n.Pt,
		})
	}
	return js
}

// junctionFrame is a junction measured against its tangent line.
type junctionFrame struct {
	// u is the unit tangent through the node.
	u Vec2
	// a and b are the incoming and outgoing handle lengths.
	a, b float64
	// hA and hB are the signed offsets of the far handles from the tangent
	// line.
	hA, hB float64
}

// measureJunction measures junction j of c.
func measureJunction(c Contour, j junction) (junctionFrame, error) {
	i := j.node
	in, out := c.Segs[c.prev(i)], c.Segs[i]
	n := c.Nodes[i].Pt
	va := n.Sub(in.P2)
	vb := out.P1.Sub(n)
	f := junctionFrame{a: va.Hypot(), b: vb.Hypot()}
	if f.a < minHandleLength || f.b < minHandleLength {
		return f, junctionDegenerate("retracted handle")
	}
	ua, ub := va.Mul(1/f.a), vb.Mul(1/f.b)
	if ua.AngleTo(ub) > maxKink {
		return f, junctionDegenerate("handles not collinear")
	}
	f.u = ua.Add(ub).Normalize()
	f.hA = f.u.Cross(in.P1.Sub(n))
	f.hB = f.u.Cross(out.P2.Sub(n))
	if math.Abs(f.hA) < minOffset || math.Abs(f.hB) < minOffset {
		return f, junctionDegenerate("zero curvature")
	}
	if (f.hA > 0) != (f.hB > 0) {
		return f, junctionDegenerate("inflection at node")
	}
	return f, nil
}

// sideCurvatures returns the unsigned curvatures with which the incoming
// segment arrives and the outgoing segment leaves.
func (f junctionFrame) sideCurvatures() (float64, float64) {
	return 2.0 / 3.0 * math.Abs(f.hA) / (f.a * f.a), 2.0 / 3.0 * math.Abs(f.hB) / (f.b * f.b)
}

// curvatureSplit returns the fraction of a combined length that belongs to
// the incoming side so that hA/a² = hB/b².
func (f junctionFrame) curvatureSplit() float64 {
	ra, rb := math.Sqrt(math.Abs(f.hA)), math.Sqrt(math.Abs(f.hB))
	return ra / (ra + rb)
}

// solveResult summarizes one junction solve.
type solveResult struct {
	solved, skipped int
	iterations      int
	unconverged     int
}

func countJunctions(js []junction, res *solveResult) {
	for _, j := range js {
		if j.skipped {
			res.skipped++
		} else {
			res.solved++
		}
	}
}

// smoothJunctions gives every junction a target curvature, the geometric
// mean of the curvatures its balanced sides have, and then solves each
// segment with a constrained end for handle lengths that reach those
// curvatures. Nodes and handle directions stay fixed. A segment without an
// acceptable solution keeps its balanced handles and its junctions are
// skipped; the remaining segments are solved again without them until no
// segment fails.
func smoothJunctions(c *Contour, js []junction, opts SolverOptions) solveResult {
	var res solveResult
	if len(js) == 0 {
		return res
	}
	at := make([]int, c.Len())
	for i := range at {
		at[i] = -1
	}
	for k := range js {
		j := &js[k]
		at[j.node] = k
		f, err := measureJunction(*c, *j)
		if err != nil {
			j.skipped = true
			Logger().Debug("skipping junction", "node", j.node, "err", err)
			continue
		}
		ka, kb := f.sideCurvatures()
		j.curvature = math.Sqrt(ka * kb)
	}
	target := func(node int) float64 {
		if k := at[node]; k >= 0 && !js[k].skipped {
			return js[k].curvature
		}
		return 0
	}
	skip := func(node int, err error) {
		if k := at[node]; k >= 0 && !js[k].skipped {
			js[k].skipped = true
			Logger().Debug("skipping junction", "node", node, "err", err)
		}
	}

	balanced := c.Clone()
	for {
		copy(c.Segs, balanced.Segs)
		failed := false
		for i, s := range c.Segs {
			if s.Kind != CubicSegment {
				continue
			}
			k0, k1 := target(i), target(c.next(i))
			if k0 == 0 && k1 == 0 {
				continue
			}
			cb, n, err := solveSegmentCurvature(balanced.Cubic(i), k0, k1, opts)
			res.iterations += n
			if err != nil {
				if errors.Is(err, errCurvatureUnconverged) {
					res.unconverged++
				}
				skip(i, err)
				skip(c.next(i), err)
				failed = true
				continue
			}
			c.Segs[i].P1, c.Segs[i].P2 = cb.P1, cb.P2
		}
		if !failed {
			break
		}
	}
	countJunctions(js, &res)
	return res
}

// solveSegmentCurvature finds handle lengths for c, keeping its nodes and
// handle directions, so that it starts with curvature k0 and ends with
// curvature k1. A zero curvature leaves that end's handle as it is. It
// returns the adjusted segment and the number of iterations used.
//
// With the tangent-intersection distances D1, D2 and turning angle θ, the
// end curvatures of a segment with handle lengths x and y are
//
//	κ0 = ⅔·sin θ·(D2 − y)/x²,  κ1 = ⅔·sin θ·(D1 − x)/y².
//
// One constrained end has a closed form. Two are solved by Newton's method
// on x, with y expressed through the second equation.
func solveSegmentCurvature(c CubicBez, k0, k1 float64, opts SolverOptions) (CubicBez, int, error) {
	g, err := MeasureSegment(c)
	if err != nil {
		return c, 0, fmt.Errorf("%w: %w", ErrContinuityDegenerate, err)
	}
	s := 2.0 / 3.0 * math.Sin(g.Theta)
	x, y := g.L1, g.L2
	yOf := func(x float64) float64 { return math.Sqrt(s * (g.D1 - x) / k1) }

	n := 1
	switch {
	case k1 == 0:
		x = math.Sqrt(s * (g.D2 - y) / k0)
	case k0 == 0:
		y = yOf(x)
	default:
		converged := false
		for n = 1; n <= opts.MaxIterations; n++ {
			y = yOf(x)
			if y < minHandleLength {
				return c, n, junctionDegenerate("end handle vanishes")
			}
			r := k0*x*x + s*y - s*g.D2
			dr := 2*k0*x - s*s/(2*k1*y)
			nx := x - r/dr
			switch {
			case math.IsNaN(nx):
				return c, n, junctionDegenerate("non-finite solution")
			case nx <= 0:
				nx = x / 2
			case nx >= g.D1:
				nx = (x + g.D1) / 2
			}
			step := math.Abs(nx - x)
			x = nx
			if step <= opts.Tolerance {
				converged = true
				break
			}
		}
		if !converged {
			return c, opts.MaxIterations, errCurvatureUnconverged
		}
		y = yOf(x)
	}

	if k0 != 0 && !inSmoothRange(x/g.D1) || k1 != 0 && !inSmoothRange(y/g.D2) {
		return c, n, junctionDegenerate("handles out of range")
	}
	if k0 != 0 {
		c.P1 = c.P0.Translate(g.U1.Mul(x))
	}
	if k1 != 0 {
		c.P2 = c.P3.Translate(g.U2.Mul(y))
	}
	return c, n, nil
}

func inSmoothRange(r float64) bool {
	return r >= minSmoothRatio && r <= 1
}

// smartStep moves the node of j along the line through its two handles,
// keeping the handles, so that hA/a² = hB/b². It returns the node
// displacement.
func smartStep(c *Contour, j junction) (float64, error) {
	if _, err := measureJunction(*c, j); err != nil {
		return 0, err
	}
	i := j.node
	in, out := c.Segs[c.prev(i)], c.Segs[i]
	span := out.P1.Sub(in.P2)
	length := span.Hypot()
	u := span.Mul(1 / length)
	// The handle line stays fixed while the node slides on it, so the
	// offsets do not depend on the node position.
	f := junctionFrame{
		hA: u.Cross(in.P1.Sub(in.P2)),
		hB: u.Cross(out.P2.Sub(in.P2)),
	}
	if math.Abs(f.hA) < minOffset || math.Abs(f.hB) < minOffset || (f.hA > 0) != (f.hB > 0) {
		return 0, junctionDegenerate("handle line offsets")
	}
	n := in.P2.Translate(u.Mul(length * f.curvatureSplit()))
	if !n.isFinite() {
		return 0, junctionDegenerate("non-finite solution")
	}
	d := n.Distance(c.Nodes[i].Pt)
	c.Nodes[i].Pt = n
	return d, nil
}

// smartJunctions runs smartStep over js in Gauss–Seidel sweeps until no node
// moves by more than opts.Tolerance or opts.MaxIterations sweeps have run.
// A junction that turns degenerate is restored to its balanced state and
// left out of later sweeps.
func smartJunctions(c *Contour, js []junction, opts SolverOptions) solveResult {
	var res solveResult
	if len(js) == 0 {
		return res
	}
	converged := false
	for res.iterations < opts.MaxIterations {
		res.iterations++
		var moved float64
		for k := range js {
			j := &js[k]
			if j.skipped {
				continue
			}
			d, err := smartStep(c, *j)
			if err != nil {
				j.skipped = true
				Logger().Debug("skipping junction", "node", j.node, "err", err)
				d = j.restore(c)
			}
			moved = math.Max(moved, d)
		}
		if moved <= opts.Tolerance {
			converged = true
			break
		}
	}
	if !converged {
		res.unconverged++
	}
	countJunctions(js, &res)
	return res
}
