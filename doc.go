// Package superellipse moves the handles of cubic Bézier outlines along the
// spectrum between the circle and the squircle. It is meant for type design
// and icon work, where round shapes drawn with the classic circle
// approximation look too soft and need to be tightened consistently across
// many glyphs.
//
// # Tension
//
// Every cubic segment of a closed contour is measured relative to the point
// where its two tangent lines meet. The distance from a node to that point is
// the segment's tangent-intersection distance, and the handle length divided
// by it is the handle's ratio. The circle approximation has the ratio
// [CircleRatio] of the segment's turning angle, which is [Kappa] for a
// quarter circle; a handle that reaches the intersection has ratio 1 and
// draws a squircle corner.
//
// [Params.Tension] interpolates between those two ratios on a 0–100 scale.
// [Params.Adjustment] adds tension to eccentric shapes, using the aspect of
// their bounding box (see [ShapeEccentricity]) or the asymmetry of each
// segment (see [SegmentEccentricity]). Segments that turn by less than a
// right angle receive a proportionally smaller share of the change, see
// [Damping].
//
// # Distribution
//
// The [Distribution] decides how the computed lengths are applied:
//   - [Balanced] gives each handle its target ratio independently.
//   - [Preserve] keeps the proportion between a segment's two handles.
//   - [Smooth] additionally rebalances handles around smooth nodes so that
//     curvature is continuous across them.
//   - [Smart] reaches continuous curvature by sliding smooth nodes along their
//     handle line instead.
//
// Only Smart moves on-curve points. All other modes leave every node
// bit-identical, as well as every handle they did not recompute.
//
// # Slant
//
// Italic outlines are measured in their upright frame: [Params.Slant] removes
// the shear before measuring and reapplies it to the results, see
// [DeslantTransform].
//
// # Contours
//
// [Contour] stores a closed outline as an arena of nodes and handle pairs, so
// that a node is shared by the two segments meeting there. Use
// [ContoursFromPath] to build contours from path elements and
// [Contour.PathElements] or [Path] to turn them back into paths. [SVG] and
// [WriteSVG] format paths as SVG path data.
//
// [TransformContour], [TransformGlyph] and [TransformGlyphs] are the entry
// points, in increasing order of scope. [TransformSegment] handles a lone
// segment for the distributions that do not need neighbours.
//
// # Logging
//
// Segments and junctions that cannot be adjusted are not errors. They are
// left alone and reported through the logger installed with [SetLogger],
// which discards everything by default.
package superellipse
