package superellipse

import (
	"fmt"
	"math"
	"strings"
)

// Tension presets, on the 0–100 scale.
const (
	// PresetCircle reproduces the cubic circle approximation.
	PresetCircle = 0.0
	// PresetOptical compensates the optical flatness of the circle
	// approximation. It is meant for [QuadraticScale].
	PresetOptical = 13.0
	// PresetType is a tension popular in type design.
	PresetType = 20.0
	// PresetSquircle extends every handle to its tangent intersection.
	PresetSquircle = 100.0
)

const (
	// DefaultTension is the tension of [DefaultParams].
	DefaultTension = PresetType
	// DefaultAdjustment is the adjustment of [DefaultParams].
	DefaultAdjustment = 50.0

	// MaxSlant is the largest slant magnitude, in degrees.
	MaxSlant = 45.0
)

// Distribution selects how computed handle lengths are applied.
type Distribution uint8

const (
	// Balanced sets both handles of a segment to the target ratio
	// independently. On-curve nodes never move.
	Balanced Distribution = iota
	// Preserve keeps the original proportion between a segment's two handle
	// lengths and matches the combined balanced length.
	Preserve
	// Smooth applies Balanced and then rebalances the handles at smooth nodes
	// for curvature continuity.
	Smooth
	// Smart applies Balanced and then moves smooth nodes along their handle
	// line for curvature continuity, leaving handles in place.
	Smart
)

var distributionNames = []string{"balanced", "preserve", "smooth", "smart"}

func (d Distribution) String() string { return enumString(distributionNames, d) }

// needsContour reports whether d reads or writes neighbouring segments.
func (d Distribution) needsContour() bool { return d == Smooth || d == Smart }

func (d Distribution) MarshalText() ([]byte, error) { return enumMarshal("distribution", distributionNames, d) }

func (d *Distribution) UnmarshalText(b []byte) error {
	return enumUnmarshal("distribution", distributionNames, d, string(b))
}

// ParseDistribution parses a distribution name, ignoring case.
func ParseDistribution(s string) (Distribution, error) {
	var d Distribution
	err := d.UnmarshalText([]byte(s))
	return d, err
}

// TensionScale maps the 0–100 tension onto the interpolation weight between
// the circle ratio and the squircle ratio.
type TensionScale uint8

const (
	// LinearScale uses tension/100.
	LinearScale TensionScale = iota
	// QuadraticScale uses (tension/100)², giving finer control at low
	// tensions where most typographic values live.
	QuadraticScale
)

var scaleNames = []string{"linear", "quadratic"}

func (s TensionScale) String() string { return enumString(scaleNames, s) }

func (s TensionScale) MarshalText() ([]byte, error) { return enumMarshal("scale", scaleNames, s) }

func (s *TensionScale) UnmarshalText(b []byte) error {
	return enumUnmarshal("scale", scaleNames, s, string(b))
}

func (s TensionScale) weight(tension float64) float64 {
	w := tension / 100
	if s == QuadraticScale {
		return w * w
	}
	return w
}

// EccentricitySource selects where the eccentricity of a segment comes from.
type EccentricitySource uint8

const (
	// FromShape uses the aspect of the bounding box of the contour or glyph
	// being processed.
	FromShape EccentricitySource = iota
	// FromSegment uses the asymmetry of each segment's tangent angles
	// relative to its chord.
	FromSegment
)

var sourceNames = []string{"shape", "segment"}

func (s EccentricitySource) String() string { return enumString(sourceNames, s) }

func (s EccentricitySource) MarshalText() ([]byte, error) {
	return enumMarshal("eccentricity", sourceNames, s)
}

func (s *EccentricitySource) UnmarshalText(b []byte) error {
	return enumUnmarshal("eccentricity", sourceNames, s, string(b))
}

// EccentricityScope selects the geometry whose extents define shape
// eccentricity.
type EccentricityScope uint8

const (
	// PerContour measures each contour on its own.
	PerContour EccentricityScope = iota
	// PerGlyph measures the union of all contours processed together.
	PerGlyph
)

var scopeNames = []string{"contour", "glyph"}

func (s EccentricityScope) String() string { return enumString(scopeNames, s) }

func (s EccentricityScope) MarshalText() ([]byte, error) { return enumMarshal("scope", scopeNames, s) }

func (s *EccentricityScope) UnmarshalText(b []byte) error {
	return enumUnmarshal("scope", scopeNames, s, string(b))
}

// Params are the inputs of one transform invocation. The zero value is
// tension 0, adjustment 0, no slant, Balanced.
type Params struct {
	// Tension in [0, 100]. 0 is the circle approximation, 100 the squircle.
	Tension float64 `toml:"tension"`
	// Adjustment in [0, 100] pushes eccentric shapes towards the squircle.
	Adjustment float64 `toml:"adjustment"`
	// Slant in degrees, in [-45, 45]. Positive values lean to the right.
	Slant float64 `toml:"slant"`

	Distribution Distribution       `toml:"distribution"`
	Scale        TensionScale       `toml:"scale"`
	Eccentricity EccentricitySource `toml:"eccentricity"`
	Scope        EccentricityScope  `toml:"scope"`
}

// DefaultParams returns the parameters the filter starts with: tension 20,
// adjustment 50, upright, Balanced.
func DefaultParams() Params {
	return Params{
		Tension:    DefaultTension,
		Adjustment: DefaultAdjustment,
	}
}

// Validate checks every parameter. The returned error wraps
// [ErrInvalidParameter].
func (p Params) Validate() error {
	if err := checkRange("tension", p.Tension, 0, 100); err != nil {
		return err
	}
	if err := checkRange("adjustment", p.Adjustment, 0, 100); err != nil {
		return err
	}
	if err := checkRange("slant", p.Slant, -MaxSlant, MaxSlant); err != nil {
		return err
	}
	if int(p.Distribution) >= len(distributionNames) {
		return fmt.Errorf("%w: distribution %d", ErrInvalidParameter, p.Distribution)
	}
	if int(p.Scale) >= len(scaleNames) {
		return fmt.Errorf("%w: scale %d", ErrInvalidParameter, p.Scale)
	}
	if int(p.Eccentricity) >= len(sourceNames) {
		return fmt.Errorf("%w: eccentricity source %d", ErrInvalidParameter, p.Eccentricity)
	}
	if int(p.Scope) >= len(scopeNames) {
		return fmt.Errorf("%w: eccentricity scope %d", ErrInvalidParameter, p.Scope)
	}
	return nil
}

func checkRange(name string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return &ParamError{Name: name, Value: v, Min: lo, Max: hi}
	}
	return nil
}

func enumString[T ~uint8](names []string, v T) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%T(%d)", v, uint8(v))
}

func enumMarshal[T ~uint8](kind string, names []string, v T) ([]byte, error) {
	if int(v) >= len(names) {
		return nil, fmt.Errorf("%w: %s %d", ErrInvalidParameter, kind, uint8(v))
	}
	return []byte(names[v]), nil
}

func enumUnmarshal[T ~uint8](kind string, names []string, dst *T, s string) error {
	s = strings.TrimSpace(s)
	for i, name := range names {
		if strings.EqualFold(s, name) {
			*dst = T(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown %s %q", ErrInvalidParameter, kind, s)
}
