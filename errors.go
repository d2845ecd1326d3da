package superellipse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned for out-of-range parameters. Nothing is
	// modified when it is returned.
	ErrInvalidParameter = errors.New("superellipse: invalid parameter")

	// ErrInvalidContour is returned for contours that violate the arena layout,
	// such as empty contours or mismatched node and handle counts.
	ErrInvalidContour = errors.New("superellipse: invalid contour")

	// ErrDegenerateGeometry marks a segment that cannot be adjusted: retracted
	// handles, straight or inflected segments, or parallel tangents. Such
	// segments are left unchanged; the error is only logged.
	ErrDegenerateGeometry = errors.New("superellipse: degenerate geometry")

	// ErrContinuityDegenerate marks a junction whose curvature-continuity
	// system has no usable solution. The junction keeps its balanced handles;
	// the error is only logged.
	ErrContinuityDegenerate = errors.New("superellipse: continuity solve degenerate")

	// ErrNeedsContour is returned by [TransformSegment] for distributions that
	// need neighbouring segments.
	ErrNeedsContour = errors.New("superellipse: distribution needs contour context")
)

// ParamError describes a parameter outside its permitted range.
type ParamError struct {
	Name     string
	Value    float64
	Min, Max float64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("superellipse: %s = %g outside [%g, %g]", e.Name, e.Value, e.Min, e.Max)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParameter }

var errCurvatureUnconverged = junctionDegenerate("curvature solve did not converge")

func degenerate(reason string) error {
	return fmt.Errorf("%w: %s", ErrDegenerateGeometry, reason)
}

func junctionDegenerate(reason string) error {
	return fmt.Errorf("%w: %s", ErrContinuityDegenerate, reason)
}
