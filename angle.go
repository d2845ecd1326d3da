package superellipse

import "math"

// Kappa is the arm length, relative to the radius, of the cubic that
// approximates a quarter circle: 4/3·(√2 − 1).
const Kappa = 0.5522847498307936

// ReferenceAngle is the turning angle at and above which a segment receives
// the full adjustment. Below it the adjustment is damped linearly.
const ReferenceAngle = math.Pi / 2

const (
	// minHandleLength is the shortest handle, in outline units, that still
	// defines a tangent direction.
	minHandleLength = 1e-9
	// minTurningAngle is the smallest turning angle, in radians, of a segment
	// that is not treated as straight.
	minTurningAngle = 1e-9
	// maxTurningAngle is the largest turning angle, in radians, of a segment
	// that is adjusted. Closer to a half turn the tangent lines meet too far
	// away to measure handles against.
	maxTurningAngle = math.Pi * 179 / 180
)

// CircleArm returns the arm length, relative to the radius, of the cubic
// approximating a circular arc that turns by theta radians: 4/3·tan(θ/4).
func CircleArm(theta float64) float64 {
	return 4.0 / 3.0 * math.Tan(theta/4)
}

// CircleRatio returns the handle length of the circle approximation as a
// fraction of the tangent-intersection distance, for an arc turning by theta
// radians. The tangent-intersection distance of an arc of radius r is
// r·tan(θ/2), so this is CircleArm(θ)/tan(θ/2). It equals [Kappa] at π/2 and
// tends to 2/3, a raised quadratic, as θ approaches 0.
func CircleRatio(theta float64) float64 {
	if theta < minTurningAngle {
		return 2.0 / 3.0
	}
	return CircleArm(theta) / math.Tan(theta/2)
}

// TurningAngle returns the unsigned angle between the start tangent P0→P1 and
// the end tangent P2→P3 of c, in [0, π]. It reports false if either handle is
// retracted.
func TurningAngle(c CubicBez) (float64, bool) {
	d0, d1 := c.Tangents()
	if d0.Hypot() < minHandleLength || d1.Hypot() < minHandleLength {
		return 0, false
	}
	return d0.AngleTo(d1), true
}

// SegmentGeometry describes a cubic segment relative to the point where its
// two tangent lines meet.
type SegmentGeometry struct {
	// Theta is the turning angle in radians, at most 179°.
	Theta float64
	// Corner is the intersection of the two tangent lines.
	Corner Point
	// D1 and D2 are the distances from P0 and P3 to Corner.
	D1, D2 float64
	// L1 and L2 are the lengths of the start and end handles.
	L1, L2 float64
	// U1 points from P0 along its handle, U2 from P3 along its handle.
	U1, U2 Vec2
}

// Ratios returns the handle lengths as fractions of the tangent-intersection
// distances.
func (g SegmentGeometry) Ratios() (float64, float64) {
	return g.L1 / g.D1, g.L2 / g.D2
}

// MeasureSegment computes the geometry of c. It returns an error wrapping
// [ErrDegenerateGeometry] for segments whose handles cannot be expressed as
// fractions of the tangent-intersection distances: retracted handles,
// straight segments, segments turning by more than 179° (such as half
// circles), and inflected segments whose tangent lines meet behind a node.
func MeasureSegment(c CubicBez) (SegmentGeometry, error) {
	if !c.isFinite() {
		return SegmentGeometry{}, degenerate("non-finite control point")
	}
	theta, ok := TurningAngle(c)
	if !ok {
		return SegmentGeometry{}, degenerate("retracted handle")
	}
	if theta < minTurningAngle {
		return SegmentGeometry{}, degenerate("straight segment")
	}
	if theta > maxTurningAngle {
		return SegmentGeometry{}, degenerate("tangents nearly parallel")
	}
	corner, ok := Line{c.P0, c.P1}.CrossingPoint(Line{c.P3, c.P2})
	if !ok || !corner.isFinite() {
		return SegmentGeometry{}, degenerate("parallel tangents")
	}
	g := SegmentGeometry{
		Theta:  theta,
		Corner: corner,
	}
	d0, d1 := c.Tangents()
	g.L1, g.L2 = c.HandleLengths()
	g.U1 = d0.Mul(1 / g.L1)
	g.U2 = d1.Mul(-1 / g.L2)
	g.D1 = corner.Sub(c.P0).Dot(g.U1)
	g.D2 = corner.Sub(c.P3).Dot(g.U2)
	if g.D1 < minHandleLength || g.D2 < minHandleLength {
		return SegmentGeometry{}, degenerate("tangents meet behind a node")
	}
	return g, nil
}
