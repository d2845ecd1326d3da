// Package outline loads glyph outlines from OpenType and TrueType fonts as
// contours and writes contours as SVG documents.
package outline

import (
	"errors"
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"honnef.co/go/superellipse"
)

// ErrMissingGlyph is returned for runes the font has no glyph for.
var ErrMissingGlyph = errors.New("outline: missing glyph")

// Font loads glyph outlines in font units, with the y axis pointing up.
//
// A Font reuses an internal buffer and must not be used concurrently.
type Font struct {
	font *sfnt.Font
	buf  sfnt.Buffer
	upem sfnt.Units

	// SmoothTolerance is passed to [superellipse.ContoursFromPath].
	SmoothTolerance float64
}

// Parse parses an OpenType or TrueType font.
func Parse(data []byte) (*Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("outline: parsing font: %w", err)
	}
	return &Font{
		font:            f,
		upem:            f.UnitsPerEm(),
		SmoothTolerance: superellipse.DefaultSmoothTolerance,
	}, nil
}

// UnitsPerEm returns the size of the em square in font units.
func (f *Font) UnitsPerEm() int { return int(f.upem) }

// Path returns the outline of the glyph for r. Quadratic TrueType segments
// are kept as quadratic path elements.
func (f *Font) Path(r rune) (superellipse.BezPath, string, error) {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return nil, "", fmt.Errorf("outline: %q: %w", r, err)
	}
	if idx == 0 {
		return nil, "", fmt.Errorf("%w: %q", ErrMissingGlyph, r)
	}
	name, err := f.font.GlyphName(&f.buf, idx)
	if err != nil || name == "" {
		name = fmt.Sprintf("uni%04X", r)
	}

	// A ppem equal to the em size yields coordinates in font units.
	segs, err := f.font.LoadGlyph(&f.buf, idx, fixed.Int26_6(f.upem)<<6, nil)
	if err != nil {
		return nil, "", fmt.Errorf("outline: loading %s: %w", name, err)
	}
	var p superellipse.BezPath
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if len(p) > 0 {
				p.ClosePath()
			}
			p.MoveTo(point(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			p.LineTo(point(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(point(seg.Args[0]), point(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p.CubicTo(point(seg.Args[0]), point(seg.Args[1]), point(seg.Args[2]))
		}
	}
	if len(p) > 0 {
		p.ClosePath()
	}
	return p, name, nil
}

// Glyph returns the glyph for r as closed contours. Glyphs without an
// outline, such as space, have no contours.
func (f *Font) Glyph(r rune) (superellipse.Glyph, error) {
	p, name, err := f.Path(r)
	if err != nil {
		return superellipse.Glyph{}, err
	}
	contours, err := superellipse.ContoursFromPath(p.Elements(), f.SmoothTolerance)
	if err != nil {
		return superellipse.Glyph{}, fmt.Errorf("outline: %s: %w", name, err)
	}
	return superellipse.Glyph{Name: name, Contours: contours}, nil
}

// Glyphs returns the glyphs for the runes of text, in order. Repeated runes
// are loaded once.
func (f *Font) Glyphs(text string) ([]superellipse.Glyph, error) {
	var out []superellipse.Glyph
	seen := map[rune]bool{}
	for _, r := range text {
		if seen[r] {
			continue
		}
		seen[r] = true
		g, err := f.Glyph(r)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

// point converts a 26.6 point in the font's y-down space.
func point(p fixed.Point26_6) superellipse.Point {
	return superellipse.Pt(float64(p.X)/64, -float64(p.Y)/64)
}
