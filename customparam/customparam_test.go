package customparam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/superellipse"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want superellipse.Params
	}{
		{
			"Superelliptify; tension:20; adjustment:50",
			superellipse.DefaultParams(),
		},
		{
			"Superelliptify; tension:13.5; adjustment:0; slant:12; distribution:smart",
			superellipse.Params{Tension: 13.5, Slant: 12, Distribution: superellipse.Smart},
		},
		{
			"Superelliptify;distribution: Preserve ;tension:100;",
			superellipse.Params{Tension: 100, Adjustment: 50, Distribution: superellipse.Preserve},
		},
		{
			"Superelliptify",
			superellipse.DefaultParams(),
		},
		{
			"Superelliptify; scale:quadratic; eccentricity:segment; scope:glyph; slant:-7.5",
			superellipse.Params{
				Tension:      20,
				Adjustment:   50,
				Slant:        -7.5,
				Scale:        superellipse.QuadraticScale,
				Eccentricity: superellipse.FromSegment,
				Scope:        superellipse.PerGlyph,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrFilterName},
		{"Roundify; tension:20", ErrFilterName},
		{"Superelliptify; tension", ErrSyntax},
		{"Superelliptify; tension:high", ErrSyntax},
		{"Superelliptify; radius:3", ErrUnknownKey},
		{"Superelliptify; tension:120", superellipse.ErrInvalidParameter},
		{"Superelliptify; slant:60", superellipse.ErrInvalidParameter},
		{"Superelliptify; distribution:wobbly", superellipse.ErrInvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestApplyKeepsUnsetKeys(t *testing.T) {
	p := superellipse.Params{Tension: 40, Adjustment: 10, Distribution: superellipse.Smooth}
	require.NoError(t, Apply(&p, "Superelliptify; slant:5"))
	assert.Equal(t, superellipse.Params{Tension: 40, Adjustment: 10, Slant: 5, Distribution: superellipse.Smooth}, p)

	before := p
	require.Error(t, Apply(&p, "Superelliptify; tension:50; adjustment:-1"))
	assert.Equal(t, before, p, "failed Apply must not modify params")
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   superellipse.Params
		want string
	}{
		{superellipse.DefaultParams(), "Superelliptify; tension:20; adjustment:50"},
		{
			superellipse.Params{Tension: 13.25, Adjustment: 0, Slant: 12, Distribution: superellipse.Smart},
			"Superelliptify; tension:13.3; adjustment:0; slant:12; distribution:smart",
		},
		{
			superellipse.Params{Tension: 100, Adjustment: 100, Slant: -0.01},
			"Superelliptify; tension:100; adjustment:100; slant:0",
		},
		{
			superellipse.Params{Scale: superellipse.QuadraticScale, Scope: superellipse.PerGlyph},
			"Superelliptify; tension:0; adjustment:0; scale:quadratic; scope:glyph",
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in))
	}
}

func TestRoundTrip(t *testing.T) {
	in := superellipse.Params{
		Tension:      33.3,
		Adjustment:   72,
		Slant:        -11.5,
		Distribution: superellipse.Preserve,
		Eccentricity: superellipse.FromSegment,
	}
	got, err := Parse(Format(in))
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestFormatValue(t *testing.T) {
	for in, want := range map[float64]string{
		0:      "0",
		20:     "20",
		13.04:  "13",
		13.06:  "13.1",
		-0.04:  "0",
		-12.5:  "-12.5",
		99.99:  "100",
		0.5:    "0.5",
		45.001: "45",
	} {
		assert.Equal(t, want, FormatValue(in), "FormatValue(%v)", in)
	}
}
