package superellipse

import "math"

// Arc is an elliptical arc with axis-aligned radii.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
}

// Cubic approximates the arc with a single cubic Bézier whose arms have the
// circle-approximation length [CircleArm] of the sweep.
func (a Arc) Cubic() CubicBez {
	armLen := math.Copysign(CircleArm(math.Abs(a.SweepAngle)), a.SweepAngle)
	angle0 := a.StartAngle
	angle1 := a.StartAngle + a.SweepAngle
	p0 := sampleEllipse(a.Radii, angle0)
	p3 := sampleEllipse(a.Radii, angle1)
	p1 := p0.Add(sampleEllipse(a.Radii, angle0+math.Pi/2).Mul(armLen))
	p2 := p3.Sub(sampleEllipse(a.Radii, angle1+math.Pi/2).Mul(armLen))
	return CubicBez{
		a.Center.Translate(p0),
		a.Center.Translate(p1),
		a.Center.Translate(p2),
		a.Center.Translate(p3),
	}
}

// Ellipse is an axis-aligned ellipse. With equal radii it is a circle.
type Ellipse struct {
	Center Point
	Radii  Vec2
}

// Contour approximates the ellipse with n ≥ 2 equal arcs, starting on the
// positive x axis and running counter-clockwise in a y-up space. All nodes
// are smooth.
func (e Ellipse) Contour(n int) Contour {
	n = max(n, 2)
	c := Contour{
		Nodes: make([]Node, n),
		Segs:  make([]Handles, n),
	}
	sweep := 2 * math.Pi / float64(n)
	for i := range n {
		cb := Arc{
			Center:     e.Center,
			Radii:      e.Radii,
			StartAngle: sweep * float64(i),
			SweepAngle: sweep,
		}.Cubic()
		c.Nodes[i] = Node{Pt: cb.P0, Smooth: true}
		c.Segs[i] = Handles{Kind: CubicSegment, P1: cb.P1, P2: cb.P2}
	}
	return c
}

// sampleEllipse returns the point of the ellipse with the given radii at the
// given parameter angle, relative to its center.
func sampleEllipse(radii Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{radii.X * cos, radii.Y * sin}
}
