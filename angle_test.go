package superellipse

import (
	"errors"
	"math"
	"testing"
)

func TestCircleRatio(t *testing.T) {
	near(t, CircleRatio(math.Pi/2), Kappa, 1e-15, "ratio at 90°")
	near(t, CircleArm(math.Pi/2), Kappa, 1e-15, "arm at 90°")
	near(t, CircleRatio(1e-6), 2.0/3.0, 1e-9, "ratio near 0°")
	if got := CircleRatio(0); got != 2.0/3.0 {
		t.Errorf("ratio at 0°: got %v, want 2/3", got)
	}
	// the ratio shrinks monotonically as the arc opens up
	prev := CircleRatio(1e-3)
	for deg := 5.0; deg < 180; deg += 5 {
		r := CircleRatio(deg * math.Pi / 180)
		if r >= prev {
			t.Errorf("ratio at %v° is %v, not below %v", deg, r, prev)
		}
		prev = r
	}
}

func TestTurningAngle(t *testing.T) {
	tests := []struct {
		name  string
		c     CubicBez
		theta float64
		ok    bool
	}{
		{"quarter arc", quarterArc(100), math.Pi / 2, true},
		{"straight", CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}, 0, true},
		{"u-turn", CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}, math.Pi, true},
		{"retracted start", CubicBez{Pt(0, 0), Pt(0, 0), Pt(10, 10), Pt(10, 0)}, 0, false},
		{"retracted end", CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 0), Pt(10, 0)}, 0, false},
	}
	for _, tt := range tests {
		theta, ok := TurningAngle(tt.c)
		if ok != tt.ok {
			t.Errorf("%s: got ok %t, want %t", tt.name, ok, tt.ok)
			continue
		}
		near(t, theta, tt.theta, 1e-12, tt.name)
	}
}

func TestMeasureSegment(t *testing.T) {
	g, err := MeasureSegment(quarterArc(100))
	if err != nil {
		t.Fatal(err)
	}
	near(t, g.Theta, math.Pi/2, 1e-12, "theta")
	diff(t, g.Corner, Pt(100, 100), approx(1e-12))
	near(t, g.D1, 100, 1e-12, "D1")
	near(t, g.D2, 100, 1e-12, "D2")
	r1, r2 := g.Ratios()
	near(t, r1, Kappa, 1e-12, "r1")
	near(t, r2, Kappa, 1e-12, "r2")
	diff(t, g.U1, Vec(0, 1), approx(1e-12))
	diff(t, g.U2, Vec(1, 0), approx(1e-12))

	// Unequal tangent distances.
	g, err = MeasureSegment(CubicBez{Pt(0, 0), Pt(50, 0), Pt(100, 20), Pt(100, 40)})
	if err != nil {
		t.Fatal(err)
	}
	near(t, g.D1, 100, 1e-12, "D1")
	near(t, g.D2, 40, 1e-12, "D2")
	near(t, g.L1, 50, 1e-12, "L1")
	near(t, g.L2, 20, 1e-12, "L2")
}

func TestMeasureSegmentDegenerate(t *testing.T) {
	tests := []struct {
		name string
		c    CubicBez
	}{
		{"retracted", CubicBez{Pt(0, 0), Pt(0, 0), Pt(100, 50), Pt(100, 100)}},
		{"straight", CubicBez{Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0)}},
		{"parallel", CubicBez{Pt(0, 0), Pt(0, 50), Pt(100, 50), Pt(100, 0)}},
		{"inflected", CubicBez{Pt(0, 0), Pt(30, 30), Pt(70, -30), Pt(100, -10)}},
		{"s-curve", CubicBez{Pt(0, 0), Pt(30, 30), Pt(70, -30), Pt(100, 0)}},
		{"NaN", CubicBez{Pt(0, 0), Pt(math.NaN(), 0), Pt(100, 50), Pt(100, 100)}},
		{"infinite", CubicBez{Pt(0, 0), Pt(50, 0), Pt(100, 50), Pt(100, math.Inf(1))}},
	}
	for _, tt := range tests {
		if _, err := MeasureSegment(tt.c); !errors.Is(err, ErrDegenerateGeometry) {
			t.Errorf("%s: got %v, want ErrDegenerateGeometry", tt.name, err)
		}
	}
}

// turning returns a segment whose tangents turn by theta, with both tangent
// lines meeting 100 units from the node they start at.
func turning(theta float64) CubicBez {
	u := Vec(math.Cos(theta), math.Sin(theta))
	corner := Pt(100, 0)
	p3 := corner.Translate(u.Mul(100))
	return CubicBez{Pt(0, 0), Pt(55, 0), p3.Translate(u.Mul(-55)), p3}
}

func TestMeasureSegmentHalfTurn(t *testing.T) {
	g, err := MeasureSegment(turning(170 * math.Pi / 180))
	if err != nil {
		t.Fatalf("170°: %v", err)
	}
	near(t, g.D1, 100, 1e-9, "D1 at 170°")
	near(t, g.D2, 100, 1e-9, "D2 at 170°")

	tests := []struct {
		name string
		c    CubicBez
	}{
		{"179.9°", turning(179.9 * math.Pi / 180)},
		{"π−1e-12", turning(math.Pi - 1e-12)},
		{"half circle", Ellipse{Radii: Vec(100, 100)}.Contour(2).Cubic(0)},
		{"half ellipse", Ellipse{Center: Pt(13, -7), Radii: Vec(100, 60)}.Contour(2).Cubic(1)},
	}
	for _, tt := range tests {
		if _, err := MeasureSegment(tt.c); !errors.Is(err, ErrDegenerateGeometry) {
			t.Errorf("%s: got %v, want ErrDegenerateGeometry", tt.name, err)
		}
	}
}
