package superellipse

import "math"

// ShapeEccentricity maps the aspect of r onto [0, 1]: (long − short) /
// (long + short). A square has eccentricity 0, a 3:1 rectangle 0.5, and the
// value approaches 1 as the shape flattens. Empty rectangles have
// eccentricity 0.
func ShapeEccentricity(r Rect) float64 {
	long, short := r.MaxSide(), r.MinSide()
	if long == 0 || math.IsNaN(long) || math.IsNaN(short) {
		return 0
	}
	return (long - short) / (long + short)
}

// SegmentEccentricity measures how lopsided a segment is: |sin(θ0 − θ1)|,
// where θ0 and θ1 are the angles the handles make with the chord. A
// symmetric arc has eccentricity 0.
func SegmentEccentricity(c CubicBez) float64 {
	th0, th1 := c.chordAngles()
	return math.Abs(math.Sin(th0 - th1))
}

// GlyphBounds returns the union of the bounding boxes of contours.
func GlyphBounds(contours []Contour) Rect {
	var bbox Rect
	first := true
	for _, c := range contours {
		if c.Len() == 0 {
			continue
		}
		if first {
			bbox = c.BoundingBox()
			first = false
		} else {
			bbox = bbox.Union(c.BoundingBox())
		}
	}
	return bbox
}
