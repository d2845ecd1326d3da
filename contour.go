package superellipse

import (
	"fmt"
	"iter"
)

// SegmentKind distinguishes curve segments from straight segments of a
// contour.
type SegmentKind uint8

const (
	CubicSegment SegmentKind = iota
	LineSegment
)

// Node is an on-curve point of a contour.
type Node struct {
	Pt Point
	// Smooth marks a tangency point shared smoothly by the two adjacent
	// segments.
	Smooth bool
}

// Handles holds the off-curve points of one segment. Line segments ignore
// P1 and P2.
type Handles struct {
	Kind SegmentKind
	P1   Point
	P2   Point
}

// Contour is a closed outline stored as an arena: segment i runs from
// Nodes[i] through Segs[i].P1 and Segs[i].P2 to Nodes[(i+1) % n]. Every node is
// stored once and shared by the segment ending there and the segment starting
// there.
type Contour struct {
	Nodes []Node
	Segs  []Handles
}

// Segment is a standalone view of one cubic segment together with the
// smoothness of its two nodes.
type Segment struct {
	CubicBez
	StartSmooth bool
	EndSmooth   bool
}

// Len returns the number of segments, which equals the number of nodes.
func (c Contour) Len() int {
	return len(c.Nodes)
}

func (c Contour) next(i int) int { return (i + 1) % len(c.Nodes) }
func (c Contour) prev(i int) int { return (i + len(c.Nodes) - 1) % len(c.Nodes) }

// Validate checks the arena invariants: at least one segment and one
// handle pair per node.
func (c Contour) Validate() error {
	if len(c.Nodes) == 0 {
		return fmt.Errorf("%w: no segments", ErrInvalidContour)
	}
	if len(c.Nodes) != len(c.Segs) {
		return fmt.Errorf("%w: %d nodes but %d segments", ErrInvalidContour, len(c.Nodes), len(c.Segs))
	}
	for i, s := range c.Segs {
		if s.Kind != CubicSegment && s.Kind != LineSegment {
			return fmt.Errorf("%w: segment %d has kind %d", ErrInvalidContour, i, s.Kind)
		}
	}
	return nil
}

// Cubic returns segment i as a cubic Bézier. Line segments are returned with
// handles on their nodes.
func (c Contour) Cubic(i int) CubicBez {
	p0 := c.Nodes[i].Pt
	p3 := c.Nodes[c.next(i)].Pt
	s := c.Segs[i]
	if s.Kind == LineSegment {
		return CubicBez{p0, p0, p3, p3}
	}
	return CubicBez{p0, s.P1, s.P2, p3}
}

// Segment returns segment i with the smoothness of its nodes.
func (c Contour) Segment(i int) Segment {
	return Segment{
		CubicBez:    c.Cubic(i),
		StartSmooth: c.Nodes[i].Smooth,
		EndSmooth:   c.Nodes[c.next(i)].Smooth,
	}
}

// Segments iterates over the index and view of every segment.
func (c Contour) Segments() iter.Seq2[int, Segment] {
	return func(yield func(int, Segment) bool) {
		for i := range c.Nodes {
			if !yield(i, c.Segment(i)) {
				return
			}
		}
	}
}

// Clone returns a deep copy of c.
func (c Contour) Clone() Contour {
	return Contour{
		Nodes: append([]Node(nil), c.Nodes...),
		Segs:  append([]Handles(nil), c.Segs...),
	}
}

// Transform returns a copy of c with aff applied to every point. The
// identity leaves every coordinate bit-identical.
func (c Contour) Transform(aff Affine) Contour {
	out := c.Clone()
	if aff.IsIdentity() {
		return out
	}
	for i := range out.Nodes {
		out.Nodes[i].Pt = out.Nodes[i].Pt.Transform(aff)
	}
	for i := range out.Segs {
		if out.Segs[i].Kind == CubicSegment {
			out.Segs[i].P1 = out.Segs[i].P1.Transform(aff)
			out.Segs[i].P2 = out.Segs[i].P2.Transform(aff)
		}
	}
	return out
}

// BoundingBox returns the exact bounds of the contour's outline.
func (c Contour) BoundingBox() Rect {
	if len(c.Nodes) == 0 {
		return Rect{}
	}
	bbox := NewRectFromPoints(c.Nodes[0].Pt, c.Nodes[0].Pt)
	for i, s := range c.Segs {
		if s.Kind == LineSegment {
			bbox = bbox.UnionPoint(c.Nodes[c.next(i)].Pt)
			continue
		}
		bbox = bbox.Union(c.Cubic(i).BoundingBox())
	}
	return bbox
}

// PathElements converts the contour into a closed subpath.
func (c Contour) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(c.Nodes) == 0 {
			return
		}
		if !yield(MoveTo(c.Nodes[0].Pt)) {
			return
		}
		for i, s := range c.Segs {
			end := c.Nodes[c.next(i)].Pt
			var el PathElement
			if s.Kind == LineSegment {
				el = LineTo(end)
			} else {
				el = CubicTo(s.P1, s.P2, end)
			}
			if !yield(el) {
				return
			}
		}
		yield(ClosePath())
	}
}

// Path converts several contours into one path.
func Path(contours []Contour) BezPath {
	var p BezPath
	for _, c := range contours {
		for el := range c.PathElements() {
			p.Push(el)
		}
	}
	return p
}

// DefaultSmoothTolerance is the largest kink, in radians, between the
// incoming and outgoing tangents of a node that [ContoursFromPath] still
// marks as smooth.
const DefaultSmoothTolerance = 0.035

// ContoursFromPath splits a path into closed contours. Every subpath is
// closed, whether or not it ends in ClosePath; a final point equal to the
// subpath start is merged into the start node. Quadratic segments are raised
// to cubics. Nodes whose tangents continue within smoothTol radians are
// marked smooth.
func ContoursFromPath(seq iter.Seq[PathElement], smoothTol float64) ([]Contour, error) {
	var (
		out   []Contour
		cur   Contour
		start Point
		last  Point
		open  bool
	)
	flush := func() {
		if !open {
			return
		}
		open = false
		if len(cur.Segs) > 0 {
			if last == start {
				cur.Nodes = cur.Nodes[:len(cur.Segs)]
			} else {
				cur.Segs = append(cur.Segs, Handles{Kind: LineSegment})
			}
			cur.inferSmooth(smoothTol)
			out = append(out, cur)
		}
		cur = Contour{}
	}
	begin := func(pt Point) {
		start, last, open = pt, pt, true
		cur.Nodes = append(cur.Nodes, Node{Pt: pt})
	}
	add := func(h Handles, end Point) {
		cur.Segs = append(cur.Segs, h)
		cur.Nodes = append(cur.Nodes, Node{Pt: end})
		last = end
	}
	for el := range seq {
		if el.IsNaN() {
			return nil, fmt.Errorf("%w: NaN in %s", ErrInvalidContour, el)
		}
		switch el.Kind {
		case MoveToKind:
			flush()
			begin(el.P0)
		case LineToKind, QuadToKind, CubicToKind:
			if !open {
				// Drawing after ClosePath continues from the previous start.
				begin(start)
			}
			switch el.Kind {
			case LineToKind:
				if el.P0 != last {
					add(Handles{Kind: LineSegment}, el.P0)
				}
			case QuadToKind:
				c := QuadBez{last, el.P0, el.P1}.Raise()
				add(Handles{Kind: CubicSegment, P1: c.P1, P2: c.P2}, el.P1)
			case CubicToKind:
				add(Handles{Kind: CubicSegment, P1: el.P0, P2: el.P1}, el.P2)
			}
		case ClosePathKind:
			flush()
		default:
			return nil, fmt.Errorf("%w: unknown path element %s", ErrInvalidContour, el)
		}
	}
	flush()
	return out, nil
}

// IsNaN reports whether any point of el is NaN.
func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() || el.P1.IsNaN() || el.P2.IsNaN()
}

// inferSmooth marks nodes whose incoming and outgoing tangents agree within
// tol radians.
func (c *Contour) inferSmooth(tol float64) {
	for i := range c.Nodes {
		in := c.incomingTangent(i)
		out := c.outgoingTangent(i)
		if in.Hypot2() == 0 || out.Hypot2() == 0 {
			continue
		}
		c.Nodes[i].Smooth = in.AngleTo(out) <= tol
	}
}

// incomingTangent returns the direction in which the segment ending at node
// i arrives, falling back past retracted handles.
func (c Contour) incomingTangent(i int) Vec2 {
	cb := c.Cubic(c.prev(i))
	for _, p := range []Point{cb.P2, cb.P1, cb.P0} {
		if d := cb.P3.Sub(p); d.Hypot2() != 0 {
			return d
		}
	}
	return Vec2{}
}

// outgoingTangent returns the direction in which the segment starting at
// node i leaves, falling back past retracted handles.
func (c Contour) outgoingTangent(i int) Vec2 {
	cb := c.Cubic(i)
	for _, p := range []Point{cb.P1, cb.P2, cb.P3} {
		if d := p.Sub(cb.P0); d.Hypot2() != 0 {
			return d
		}
	}
	return Vec2{}
}
