package superellipse

import (
	"fmt"
	"slices"
)

// Stats counts what a transform did. Stats of several contours add up.
type Stats struct {
	// Segments is the number of cubic segments considered.
	Segments int
	// Adjusted is the number of segments that received new handles.
	Adjusted int
	// Degenerate is the number of segments left unchanged because their
	// geometry could not be adjusted.
	Degenerate int
	// Junctions is the number of smooth junctions solved for curvature
	// continuity.
	Junctions int
	// SkippedJunctions is the number of junctions that kept their balanced
	// handles because their continuity system was degenerate.
	SkippedJunctions int
	// Iterations is the number of solver iterations run: Newton steps in
	// Smooth mode, sweeps over all junctions in Smart mode.
	Iterations int
	// Unconverged is the number of solves that hit the iteration cap.
	Unconverged int
}

func (s *Stats) add(o Stats) {
	s.Segments += o.Segments
	s.Adjusted += o.Adjusted
	s.Degenerate += o.Degenerate
	s.Junctions += o.Junctions
	s.SkippedJunctions += o.SkippedJunctions
	s.Iterations += o.Iterations
	s.Unconverged += o.Unconverged
}

// TransformSegment adjusts the handles of a single segment. Only the
// Balanced and Preserve distributions are supported; Smooth and Smart return
// [ErrNeedsContour]. A degenerate segment is returned unchanged without an
// error. The nodes of the returned segment are always those of seg.
func TransformSegment(seg Segment, ctx SegmentContext, p Params) (Segment, error) {
	if err := p.Validate(); err != nil {
		return seg, err
	}
	if p.Distribution.needsContour() {
		return seg, fmt.Errorf("%w: %s", ErrNeedsContour, p.Distribution)
	}
	if err := checkRange("eccentricity", ctx.Eccentricity, 0, 1); err != nil {
		return seg, err
	}
	up := seg.CubicBez.Transform(DeslantTransform(p.Slant))
	plan, err := PlanSegment(up, ctx.Eccentricity, p)
	if err != nil {
		Logger().Debug("skipping segment", "err", err)
		return seg, nil
	}
	adj := plan.Apply(up)
	fwd := SlantTransform(p.Slant)
	seg.P1, seg.P2 = adj.P1.Transform(fwd), adj.P2.Transform(fwd)
	return seg, nil
}

// ContourEccentricity returns the shape eccentricity of c measured in the
// upright frame of the given slant, in degrees.
func ContourEccentricity(c Contour, slant float64) float64 {
	return ShapeEccentricity(c.Transform(DeslantTransform(slant)).BoundingBox())
}

// TransformContour applies the transform to one closed contour with the
// default solver options. The input is not modified.
func TransformContour(c Contour, p Params) (Contour, error) {
	out, _, err := TransformContourOpt(c, p, DefaultSolverOptions())
	return out, err
}

// TransformContourOpt is like [TransformContour] but takes explicit solver
// options and reports statistics.
func TransformContourOpt(c Contour, p Params, opts SolverOptions) (Contour, Stats, error) {
	if err := validate(p, opts); err != nil {
		return c, Stats{}, err
	}
	if err := c.Validate(); err != nil {
		return c, Stats{}, err
	}
	out, st := transformContour(c, ContourEccentricity(c, p.Slant), p, opts)
	return out, st, nil
}

// TransformGlyph applies the transform to the contours of one glyph. With
// [PerGlyph] scope all contours share the eccentricity of their union;
// otherwise each contour uses its own. Contours never interact otherwise.
func TransformGlyph(contours []Contour, p Params) ([]Contour, error) {
	out, _, err := TransformGlyphOpt(contours, p, DefaultSolverOptions())
	return out, err
}

// TransformGlyphOpt is like [TransformGlyph] but takes explicit solver
// options and reports statistics.
func TransformGlyphOpt(contours []Contour, p Params, opts SolverOptions) ([]Contour, Stats, error) {
	if err := validate(p, opts); err != nil {
		return contours, Stats{}, err
	}
	for i, c := range contours {
		if err := c.Validate(); err != nil {
			return contours, Stats{}, fmt.Errorf("contour %d: %w", i, err)
		}
	}
	var glyphE float64
	if p.Scope == PerGlyph {
		inv := DeslantTransform(p.Slant)
		upright := make([]Contour, len(contours))
		for i, c := range contours {
			upright[i] = c.Transform(inv)
		}
		glyphE = ShapeEccentricity(GlyphBounds(upright))
	}
	var st Stats
	out := make([]Contour, len(contours))
	for i, c := range contours {
		e := glyphE
		if p.Scope == PerContour {
			e = ContourEccentricity(c, p.Slant)
		}
		var cst Stats
		out[i], cst = transformContour(c, e, p, opts)
		st.add(cst)
	}
	return out, st, nil
}

func validate(p Params, opts SolverOptions) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return opts.validate()
}

// transformContour runs the passes on a valid contour: deslant, per-segment
// planning, the junction solve for Smooth and Smart, and reslant. Only
// points that were recomputed are written back, so every other coordinate of
// the result is bit-identical to the input.
func transformContour(c Contour, e float64, p Params, opts SolverOptions) (Contour, Stats) {
	var st Stats
	fwd := SlantTransform(p.Slant)
	up := c.Transform(DeslantTransform(p.Slant))
	out := c.Clone()

	n := c.Len()
	dirtyP1 := make([]bool, n)
	dirtyP2 := make([]bool, n)
	dirtyNode := make([]bool, n)

	for i, s := range up.Segs {
		if s.Kind != CubicSegment {
			continue
		}
		st.Segments++
		cb := up.Cubic(i)
		plan, err := PlanSegment(cb, e, p)
		if err != nil {
			st.Degenerate++
			Logger().Debug("skipping segment", "segment", i, "err", err)
			continue
		}
		adj := plan.Apply(cb)
		up.Segs[i].P1, up.Segs[i].P2 = adj.P1, adj.P2
		dirtyP1[i], dirtyP2[i] = true, true
		st.Adjusted++
	}

	if p.Distribution.needsContour() {
		js := junctions(up)
		var res solveResult
		unadjusted := 0
		// Junctions next to a segment that kept its handles are left alone.
		js = slices.DeleteFunc(js, func(j junction) bool {
			if dirtyP2[up.prev(j.node)] && dirtyP1[j.node] {
				return false
			}
			Logger().Debug("skipping junction", "node", j.node, "err", junctionDegenerate("adjacent segment not adjusted"))
			unadjusted++
			return true
		})
		if p.Distribution == Smart {
			res = smartJunctions(&up, js, opts)
			for _, j := range js {
				if !j.skipped {
					dirtyNode[j.node] = true
				}
			}
		} else {
			// Smooth only rewrites handles of segments adjusted above.
			res = smoothJunctions(&up, js, opts)
		}
		st.Junctions += res.solved
		st.SkippedJunctions += res.skipped + unadjusted
		st.Iterations += res.iterations
		if res.unconverged > 0 {
			st.Unconverged += res.unconverged
			Logger().Warn("continuity solve did not converge", "solves", res.unconverged, "max iterations", opts.MaxIterations, "tolerance", opts.Tolerance)
		}
	}

	for i := range n {
		if dirtyP1[i] {
			out.Segs[i].P1 = up.Segs[i].P1.Transform(fwd)
		}
		if dirtyP2[i] {
			out.Segs[i].P2 = up.Segs[i].P2.Transform(fwd)
		}
		if dirtyNode[i] {
			out.Nodes[i].Pt = up.Nodes[i].Pt.Transform(fwd)
		}
	}
	return out, st
}
