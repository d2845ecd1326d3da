package superellipse

import "math"

// EffectiveTension folds the eccentricity e ∈ [0, 1] into the tension t, both
// tension and adjustment a on the 0–100 scale. Eccentric shapes move towards
// 100 in proportion to a·e; the result never drops below t nor exceeds 100.
func EffectiveTension(t, a, e float64) float64 {
	teff := t + a*e*(100-t)/100
	return math.Min(100, math.Max(0, teff))
}

// TargetRatio interpolates between the circle ratio for theta and the
// squircle ratio 1 according to the effective tension.
func TargetRatio(theta, teff float64, scale TensionScale) float64 {
	k := CircleRatio(theta)
	return k + scale.weight(teff)*(1-k)
}

// Damping returns the fraction of the ratio change applied to a segment that
// turns by theta radians: min(1, θ/[ReferenceAngle]). Shallow segments, which
// exist because of deliberately placed on-curve points, change less.
func Damping(theta float64) float64 {
	return math.Min(1, math.Max(0, theta/ReferenceAngle))
}

// AppliedRatio moves the original ratio towards target by the damping
// fraction.
func AppliedRatio(original, target, damping float64) float64 {
	return original + damping*(target-original)
}
