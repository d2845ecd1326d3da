package superellipse

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Glyph is a named set of contours that is processed as one unit.
type Glyph struct {
	Name     string
	Contours []Contour
}

// TransformGlyphs applies [TransformGlyphOpt] to every glyph, running up to
// workers glyphs concurrently; workers ≤ 0 uses GOMAXPROCS. Glyphs share no
// state, so no locking is involved. The result has the same order as
// glyphs. Cancelling ctx stops glyphs that have not started yet.
func TransformGlyphs(ctx context.Context, glyphs []Glyph, p Params, opts SolverOptions, workers int) ([]Glyph, Stats, error) {
	if err := validate(p, opts); err != nil {
		return nil, Stats{}, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]Glyph, len(glyphs))
	stats := make([]Stats, len(glyphs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, gl := range glyphs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			contours, st, err := TransformGlyphOpt(gl.Contours, p, opts)
			if err != nil {
				return fmt.Errorf("glyph %q: %w", gl.Name, err)
			}
			out[i] = Glyph{Name: gl.Name, Contours: contours}
			stats[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}
	var total Stats
	for _, st := range stats {
		total.add(st)
	}
	return out, total, nil
}
