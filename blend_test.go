package superellipse

import (
	"math"
	"testing"
)

func TestEffectiveTension(t *testing.T) {
	tests := []struct {
		t, a, e float64
		want    float64
	}{
		{20, 50, 0, 20},
		{20, 0, 1, 20},
		{20, 100, 1, 100},
		{20, 50, 0.5, 40},
		{0, 100, 0.25, 25},
		{100, 100, 1, 100},
	}
	for _, tt := range tests {
		near(t, EffectiveTension(tt.t, tt.a, tt.e), tt.want, 1e-12, "effective tension")
	}
	for e := 0.0; e <= 1; e += 0.125 {
		got := EffectiveTension(35, 70, e)
		if got < 35 || got > 100 {
			t.Errorf("effective tension %v escapes [35, 100] at e = %v", got, e)
		}
	}
}

func TestTargetRatio(t *testing.T) {
	q := math.Pi / 2
	near(t, TargetRatio(q, 0, LinearScale), Kappa, 1e-15, "circle")
	near(t, TargetRatio(q, 100, LinearScale), 1, 1e-15, "squircle")
	near(t, TargetRatio(q, 20, LinearScale), 0.6418278, 1e-7, "tension 20")
	near(t, TargetRatio(q, 100, QuadraticScale), 1, 1e-15, "quadratic squircle")

	// The optical preset barely moves a circle on the quadratic scale.
	if d := TargetRatio(q, PresetOptical, QuadraticScale) - Kappa; d <= 0 || d >= 0.01 {
		t.Errorf("optical preset moved the ratio by %v", d)
	}
}

func TestDamping(t *testing.T) {
	near(t, Damping(math.Pi/2), 1, 0, "90°")
	near(t, Damping(math.Pi), 1, 0, "180°")
	near(t, Damping(math.Pi/4), 0.5, 1e-15, "45°")
	near(t, Damping(0), 0, 0, "0°")
	near(t, AppliedRatio(0.5, 1, 0.25), 0.625, 1e-15, "applied")
}

// A shallow arc moves a smaller fraction of the way to the target than a
// quarter arc.
func TestShallowSegmentsChangeLess(t *testing.T) {
	p := Params{Tension: 100}
	ratio := func(sweep float64) (before, after float64) {
		seg := Segment{CubicBez: Arc{Radii: Vec(100, 100), SweepAngle: sweep}.Cubic()}
		out, err := TransformSegment(seg, SegmentContext{}, p)
		if err != nil {
			t.Fatal(err)
		}
		g0, err := MeasureSegment(seg.CubicBez)
		if err != nil {
			t.Fatal(err)
		}
		g1, err := MeasureSegment(out.CubicBez)
		if err != nil {
			t.Fatal(err)
		}
		r0, _ := g0.Ratios()
		r1, _ := g1.Ratios()
		return r0, r1
	}

	before, after := ratio(math.Pi / 2)
	near(t, after, 1, 1e-9, "quarter arc")
	fullShare := (after - before) / (1 - before)

	sweep := 10 * math.Pi / 180
	before, after = ratio(sweep)
	near(t, before, CircleRatio(sweep), 1e-9, "shallow arc before")
	near(t, after, before+(1-before)/9, 1e-9, "shallow arc after")
	if share := (after - before) / (1 - before); share >= fullShare {
		t.Errorf("shallow arc moved %v of the way, quarter arc %v", share, fullShare)
	}
}
