package superellipse

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGlyphs(n int) []Glyph {
	glyphs := make([]Glyph, n)
	for i := range glyphs {
		r := 50 + 10*float64(i)
		glyphs[i] = Glyph{
			Name: fmt.Sprintf("g%02d", i),
			Contours: []Contour{
				Ellipse{Radii: Vec(2*r, r)}.Contour(4 + i%3),
				junctionContour().Transform(Translate(Vec(3*r, 0))),
			},
		}
	}
	return glyphs
}

func TestTransformGlyphs(t *testing.T) {
	glyphs := testGlyphs(12)
	p := DefaultParams()
	p.Distribution = Smooth
	opts := DefaultSolverOptions()

	got, st, err := TransformGlyphs(context.Background(), glyphs, p, opts, 3)
	require.NoError(t, err)
	require.Len(t, got, len(glyphs))

	var want Stats
	for i, g := range glyphs {
		contours, gst, err := TransformGlyphOpt(g.Contours, p, opts)
		require.NoError(t, err)
		want.add(gst)
		assert.Equal(t, g.Name, got[i].Name)
		assert.Equal(t, contours, got[i].Contours, "glyph %s", g.Name)
	}
	assert.Equal(t, want, st)
	assert.Equal(t, testGlyphs(12), glyphs, "input glyphs were modified")
}

func TestTransformGlyphsDefaultWorkers(t *testing.T) {
	got, _, err := TransformGlyphs(context.Background(), testGlyphs(3), DefaultParams(), DefaultSolverOptions(), 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, st, err := TransformGlyphs(context.Background(), nil, DefaultParams(), DefaultSolverOptions(), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, st)
}

func TestTransformGlyphsErrors(t *testing.T) {
	_, _, err := TransformGlyphs(context.Background(), testGlyphs(2), Params{Tension: 150}, DefaultSolverOptions(), 2)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	bad := testGlyphs(4)
	bad[2].Contours = append(bad[2].Contours, Contour{})
	_, _, err = TransformGlyphs(context.Background(), bad, DefaultParams(), DefaultSolverOptions(), 2)
	assert.ErrorIs(t, err, ErrInvalidContour)
	assert.ErrorContains(t, err, `glyph "g02"`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = TransformGlyphs(ctx, testGlyphs(4), DefaultParams(), DefaultSolverOptions(), 2)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}
