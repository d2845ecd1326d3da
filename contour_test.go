package superellipse

import (
	"errors"
	"math"
	"testing"
)

// roundedSquare is a 100×100 square whose right side is replaced by a half
// circle drawn as two quarter arcs. The arcs join each other and the
// straight sides smoothly.
func roundedSquare() Contour {
	k := Kappa * 50
	return Contour{
		Nodes: []Node{
			{Pt: Pt(0, 0)},
			{Pt: Pt(100, 0), Smooth: true},
			{Pt: Pt(150, 50), Smooth: true},
			{Pt: Pt(100, 100), Smooth: true},
			{Pt: Pt(0, 100)},
		},
		Segs: []Handles{
			{Kind: LineSegment},
			{Kind: CubicSegment, P1: Pt(100+k, 0), P2: Pt(150, 50-k)},
			{Kind: CubicSegment, P1: Pt(150, 50+k), P2: Pt(100+k, 100)},
			{Kind: LineSegment},
			{Kind: LineSegment},
		},
	}
}

func TestContourValidate(t *testing.T) {
	if err := roundedSquare().Validate(); err != nil {
		t.Fatal(err)
	}
	bad := []Contour{
		{},
		{Nodes: []Node{{}, {}}, Segs: []Handles{{}}},
		{Nodes: []Node{{}}, Segs: []Handles{{Kind: 7}}},
	}
	for i, c := range bad {
		if err := c.Validate(); !errors.Is(err, ErrInvalidContour) {
			t.Errorf("contour %d: got %v, want ErrInvalidContour", i, err)
		}
	}
}

func TestContourSegments(t *testing.T) {
	c := roundedSquare()
	if c.Len() != 5 {
		t.Fatalf("got %d segments, want 5", c.Len())
	}
	diff(t, c.Cubic(0), CubicBez{Pt(0, 0), Pt(0, 0), Pt(100, 0), Pt(100, 0)})
	diff(t, c.Cubic(4).P3, Pt(0, 0))

	var smooth []int
	for i, s := range c.Segments() {
		if s.EndSmooth {
			smooth = append(smooth, i)
		}
	}
	diff(t, smooth, []int{0, 1, 2})
	if !c.Segment(2).StartSmooth {
		t.Error("segment 2 should start on a smooth node")
	}
}

func TestContourClone(t *testing.T) {
	c := roundedSquare()
	d := c.Clone()
	d.Nodes[0].Pt = Pt(-1, -1)
	d.Segs[1].P1 = Pt(-1, -1)
	diff(t, c, roundedSquare())
}

func TestContourBoundingBox(t *testing.T) {
	diff(t, roundedSquare().BoundingBox(), Rect{0, 0, 150, 100}, approx(1e-12))
}

func TestContourPathRoundTrip(t *testing.T) {
	c := roundedSquare()
	p := Path([]Contour{c, c.Transform(Translate(Vec(200, 0)))})
	got, err := ContoursFromPath(p.Elements(), DefaultSmoothTolerance)
	if err != nil {
		t.Fatal(err)
	}
	want := []Contour{c, c.Transform(Translate(Vec(200, 0)))}
	diff(t, got, want)
}

func TestContoursFromPath(t *testing.T) {
	t.Run("implicit close", func(t *testing.T) {
		var p BezPath
		p.MoveTo(Pt(0, 0))
		p.LineTo(Pt(10, 0))
		p.LineTo(Pt(10, 10))
		got, err := ContoursFromPath(p.Elements(), DefaultSmoothTolerance)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].Len() != 3 {
			t.Fatalf("got %v, want one contour with three segments", got)
		}
		if got[0].Segs[2].Kind != LineSegment {
			t.Error("closing segment should be a line")
		}
	})

	t.Run("merged end point", func(t *testing.T) {
		var p BezPath
		p.MoveTo(Pt(0, 0))
		p.CubicTo(Pt(10, 0), Pt(10, 10), Pt(0, 10))
		p.CubicTo(Pt(-10, 10), Pt(-10, 0), Pt(0, 0))
		p.ClosePath()
		got, err := ContoursFromPath(p.Elements(), DefaultSmoothTolerance)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].Len() != 2 {
			t.Fatalf("got %v, want one contour with two segments", got)
		}
	})

	t.Run("quadratics and duplicates", func(t *testing.T) {
		var p BezPath
		p.MoveTo(Pt(0, 0))
		p.LineTo(Pt(0, 0))
		p.QuadTo(Pt(30, 0), Pt(30, 30))
		p.ClosePath()
		// drawing after a close starts over at the previous start
		p.LineTo(Pt(-5, 0))
		p.LineTo(Pt(-5, -5))
		got, err := ContoursFromPath(p.Elements(), DefaultSmoothTolerance)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 {
			t.Fatalf("got %d contours, want 2", len(got))
		}
		diff(t, got[0].Segs[0], Handles{Kind: CubicSegment, P1: Pt(20, 0), P2: Pt(30, 10)})
		diff(t, got[1].Nodes[0].Pt, Pt(0, 0))
	})

	t.Run("empty subpaths", func(t *testing.T) {
		var p BezPath
		p.MoveTo(Pt(0, 0))
		p.MoveTo(Pt(1, 1))
		p.ClosePath()
		got, err := ContoursFromPath(p.Elements(), DefaultSmoothTolerance)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 0 {
			t.Errorf("got %d contours, want none", len(got))
		}
	})

	t.Run("NaN", func(t *testing.T) {
		var p BezPath
		p.MoveTo(Pt(math.NaN(), 0))
		if _, err := ContoursFromPath(p.Elements(), DefaultSmoothTolerance); !errors.Is(err, ErrInvalidContour) {
			t.Errorf("got %v, want ErrInvalidContour", err)
		}
	})
}

func TestInferSmooth(t *testing.T) {
	c := Ellipse{Radii: Vec(100, 60)}.Contour(4)
	for i := range c.Nodes {
		c.Nodes[i].Smooth = false
	}
	c.inferSmooth(DefaultSmoothTolerance)
	for i, n := range c.Nodes {
		if !n.Smooth {
			t.Errorf("node %d of an ellipse should be smooth", i)
		}
	}

	sq := roundedSquare()
	sq.inferSmooth(DefaultSmoothTolerance)
	for i, n := range sq.Nodes {
		if n.Smooth != (i >= 1 && i <= 3) {
			t.Errorf("node %d: got smooth %t", i, n.Smooth)
		}
	}
}

func TestContourTransformIdentity(t *testing.T) {
	c := roundedSquare()
	c.Nodes[0].Pt = Pt(math.Copysign(0, -1), 0)
	got := c.Transform(Identity)
	if !math.Signbit(got.Nodes[0].Pt.X) {
		t.Error("identity transform lost the sign of -0")
	}
	got.Nodes[1].Pt = Pt(1, 1)
	if c.Nodes[1].Pt == got.Nodes[1].Pt {
		t.Error("Transform shares nodes with its input")
	}
}
