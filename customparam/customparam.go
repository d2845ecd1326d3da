// Package customparam reads and writes the filter strings that font export
// pipelines store as custom parameters, such as
//
//	Superelliptify; tension:20; adjustment:50; slant:12; distribution:smart
//
// Keys may appear in any order. Keys that are absent keep their default
// value, see [superellipse.DefaultParams].
package customparam

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"honnef.co/go/superellipse"
)

// FilterName is the leading field of every filter string.
const FilterName = "Superelliptify"

var (
	// ErrFilterName is returned for strings that do not start with FilterName.
	ErrFilterName = errors.New("not a Superelliptify filter")
	// ErrSyntax is returned for fields that are not key:value pairs or carry
	// a malformed number.
	ErrSyntax = errors.New("malformed custom parameter")
	// ErrUnknownKey is returned for keys the filter does not define.
	ErrUnknownKey = errors.New("unknown custom parameter key")
)

// Parse decodes a filter string into parameters. The result is validated.
func Parse(s string) (superellipse.Params, error) {
	p := superellipse.DefaultParams()
	if err := Apply(&p, s); err != nil {
		return superellipse.Params{}, err
	}
	return p, nil
}

// Apply decodes s on top of p. Only keys present in s are changed. p is left
// untouched if s is malformed or sets an invalid value.
func Apply(p *superellipse.Params, s string) error {
	fields := strings.Split(s, ";")
	if name := strings.TrimSpace(fields[0]); name != FilterName {
		return fmt.Errorf("%w: %q", ErrFilterName, name)
	}

	out := *p
	for _, f := range fields[1:] {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		key, value, ok := strings.Cut(f, ":")
		if !ok {
			return fmt.Errorf("%w: %q has no value", ErrSyntax, f)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if err := set(&out, key, value); err != nil {
			return err
		}
	}
	if err := out.Validate(); err != nil {
		return err
	}
	*p = out
	return nil
}

func set(p *superellipse.Params, key, value string) error {
	number := func(dst *float64) error {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrSyntax, key, err)
		}
		*dst = v
		return nil
	}

	switch key {
	case "tension":
		return number(&p.Tension)
	case "adjustment":
		return number(&p.Adjustment)
	case "slant":
		return number(&p.Slant)
	case "distribution":
		return p.Distribution.UnmarshalText([]byte(value))
	case "scale":
		return p.Scale.UnmarshalText([]byte(value))
	case "eccentricity":
		return p.Eccentricity.UnmarshalText([]byte(value))
	case "scope":
		return p.Scope.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}

// Format encodes p as a filter string. Tension and adjustment are always
// written; the remaining keys only when they differ from their defaults.
// Numbers are rounded to one decimal.
func Format(p superellipse.Params) string {
	var sb strings.Builder
	sb.WriteString(FilterName)
	field := func(key, value string) {
		sb.WriteString("; ")
		sb.WriteString(key)
		sb.WriteByte(':')
		sb.WriteString(value)
	}

	field("tension", FormatValue(p.Tension))
	field("adjustment", FormatValue(p.Adjustment))
	if p.Slant != 0 {
		field("slant", FormatValue(p.Slant))
	}
	if p.Distribution != superellipse.Balanced {
		field("distribution", p.Distribution.String())
	}
	if p.Scale != superellipse.LinearScale {
		field("scale", p.Scale.String())
	}
	if p.Eccentricity != superellipse.FromShape {
		field("eccentricity", p.Eccentricity.String())
	}
	if p.Scope != superellipse.PerContour {
		field("scope", p.Scope.String())
	}
	return sb.String()
}

// FormatValue rounds v to one decimal and drops the decimal when it is zero.
func FormatValue(v float64) string {
	r := math.Round(v*10) / 10
	if r == 0 {
		// Avoid "-0".
		r = 0
	}
	if r == math.Trunc(r) {
		return strconv.FormatFloat(r, 'f', 0, 64)
	}
	return strconv.FormatFloat(r, 'f', 1, 64)
}
