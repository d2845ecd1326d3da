package superellipse

// SegmentContext carries what a single segment needs to know about the shape
// it belongs to.
type SegmentContext struct {
	// Eccentricity of the enclosing contour or glyph, in [0, 1]. It is
	// ignored when [Params.Eccentricity] is [FromSegment].
	Eccentricity float64
}

// SegmentPlan is the result of the per-segment computation, in the frame the
// segment was measured in.
type SegmentPlan struct {
	Geometry SegmentGeometry
	// Target is the undamped ratio for the segment's turning angle and
	// effective tension.
	Target float64
	// R1 and R2 are the damped ratios applied to each handle in Balanced
	// mode.
	R1, R2 float64
	// L1 and L2 are the resulting handle lengths for the chosen distribution.
	L1, L2 float64
}

// PlanSegment computes new handle lengths for c. Smooth and Smart plan like
// Balanced; their junction pass runs later on the whole contour.
func PlanSegment(c CubicBez, e float64, p Params) (SegmentPlan, error) {
	g, err := MeasureSegment(c)
	if err != nil {
		return SegmentPlan{}, err
	}
	if p.Eccentricity == FromSegment {
		e = SegmentEccentricity(c)
	}
	teff := EffectiveTension(p.Tension, p.Adjustment, e)
	target := TargetRatio(g.Theta, teff, p.Scale)
	damp := Damping(g.Theta)
	r1, r2 := g.Ratios()
	plan := SegmentPlan{
		Geometry: g,
		Target:   target,
		R1:       AppliedRatio(r1, target, damp),
		R2:       AppliedRatio(r2, target, damp),
	}
	plan.L1, plan.L2 = plan.R1*g.D1, plan.R2*g.D2
	if p.Distribution == Preserve {
		plan.L1, plan.L2 = preserveLengths(g.L1, g.L2, plan.L1, plan.L2)
	}
	return plan, nil
}

// preserveLengths scales the original lengths l1 and l2 so that their sum
// matches the balanced lengths b1 and b2.
func preserveLengths(l1, l2, b1, b2 float64) (float64, float64) {
	sum := l1 + l2
	if sum == 0 {
		return b1, b2
	}
	total := b1 + b2
	return total * l1 / sum, total * l2 / sum
}

// Apply places the planned handles on c, keeping their directions.
func (plan SegmentPlan) Apply(c CubicBez) CubicBez {
	g := plan.Geometry
	c.P1 = c.P0.Translate(g.U1.Mul(plan.L1))
	c.P2 = c.P3.Translate(g.U2.Mul(plan.L2))
	return c
}
