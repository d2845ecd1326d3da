package outline

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strconv"

	"honnef.co/go/superellipse"
)

// SVGOptions controls [WriteSVG].
type SVGOptions struct {
	// Gap is the horizontal space between glyph bounding boxes.
	Gap float64
	// MaxPrecision is passed to [superellipse.WriteSVG].
	MaxPrecision int
}

// WriteSVG writes glyphs as a standalone SVG document, one path per glyph,
// placed side by side by their bounding boxes. Glyph coordinates are y-up
// and are flipped for SVG.
func WriteSVG(w io.Writer, glyphs []superellipse.Glyph, opts SVGOptions) error {
	type placed struct {
		name string
		path superellipse.BezPath
	}
	var (
		rows  []placed
		view  superellipse.Rect
		x     float64
		first = true
	)
	flip := superellipse.Scale(1, -1)
	for _, g := range glyphs {
		bbox := superellipse.GlyphBounds(g.Contours)
		aff := superellipse.Translate(superellipse.Vec(x-bbox.X0, 0)).Mul(flip)
		rows = append(rows, placed{g.Name, superellipse.Path(g.Contours).Transform(aff)})

		if len(g.Contours) > 0 {
			moved := superellipse.Rect{X0: x, Y0: -bbox.Y1, X1: x + bbox.Width(), Y1: -bbox.Y0}
			if first {
				view, first = moved, false
			} else {
				view = view.Union(moved)
			}
		}
		x += bbox.Width() + opts.Gap
	}

	bw := bufio.NewWriter(w)
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%s %s %s %s\">\n",
		num(view.X0), num(view.Y0), num(view.Width()), num(view.Height()))
	for _, row := range rows {
		fmt.Fprintf(bw, "<path id=\"%s\" d=\"", html.EscapeString(row.name))
		if err := superellipse.WriteSVG(bw, row.path.Elements(), superellipse.SVGOptions{MaxPrecision: opts.MaxPrecision}); err != nil {
			return err
		}
		bw.WriteString("\"/>\n")
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}
