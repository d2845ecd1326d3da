package superellipse_test

import (
	"fmt"

	"honnef.co/go/superellipse"
)

func ExampleTransformContour() {
	circle := superellipse.Ellipse{Radii: superellipse.Vec(100, 100)}.Contour(4)

	p := superellipse.DefaultParams()
	out, err := superellipse.TransformContour(circle, p)
	if err != nil {
		panic(err)
	}
	l1, _ := out.Cubic(0).HandleLengths()
	fmt.Printf("%.2f\n", l1)
	// Output:
	// 64.18
}

func ExampleTransformSegment() {
	seg := superellipse.Segment{
		CubicBez: superellipse.CubicBez{
			P0: superellipse.Pt(0, 0),
			P1: superellipse.Pt(50, 0),
			P2: superellipse.Pt(100, 20),
			P3: superellipse.Pt(100, 40),
		},
	}
	p := superellipse.Params{Tension: 100, Distribution: superellipse.Preserve}
	out, err := superellipse.TransformSegment(seg, superellipse.SegmentContext{}, p)
	if err != nil {
		panic(err)
	}
	// The 5:2 proportion of the handles survives while they grow to
	// their tangent intersection.
	l1, l2 := out.HandleLengths()
	fmt.Printf("%.1f %.1f\n", l1, l2)
	// Output:
	// 100.0 40.0
}

func ExampleSVG() {
	c := superellipse.Contour{
		Nodes: []superellipse.Node{
			{Pt: superellipse.Pt(0, 0)},
			{Pt: superellipse.Pt(100, 0)},
			{Pt: superellipse.Pt(0, 100)},
		},
		Segs: []superellipse.Handles{
			{Kind: superellipse.LineSegment},
			{Kind: superellipse.CubicSegment, P1: superellipse.Pt(100, 55), P2: superellipse.Pt(55, 100)},
			{Kind: superellipse.LineSegment},
		},
	}
	out, err := superellipse.TransformContour(c, superellipse.Params{Tension: 100})
	if err != nil {
		panic(err)
	}
	fmt.Println(superellipse.SVG(out.PathElements(), superellipse.SVGOptions{MaxPrecision: 2}))
	// Output:
	// M0,0 L100,0 C100,100 100,100 0,100 L0,0 Z
}
