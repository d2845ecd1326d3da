package superellipse

import "math"

// SlantTransform returns the shear that slants upright geometry by deg
// degrees, keeping horizontal lines horizontal. Positive angles lean to the
// right in a y-up coordinate system.
func SlantTransform(deg float64) Affine {
	if deg == 0 {
		return Identity
	}
	return Skew(math.Tan(deg*math.Pi/180), 0)
}

// DeslantTransform returns the inverse of [SlantTransform]. It maps geometry
// slanted by deg degrees into the upright frame in which angles and ratios
// are measured.
func DeslantTransform(deg float64) Affine {
	if deg == 0 {
		return Identity
	}
	return SlantTransform(deg).Invert()
}
