package superellipse

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats to within eps.
func approx(eps float64) cmp.Option {
	return cmpopts.EquateApprox(0, eps)
}

func near(t *testing.T, got, want, eps float64, what string) {
	t.Helper()
	if math.Abs(got-want) > eps || math.IsNaN(got) {
		t.Errorf("%s: got %v, want %v ± %v", what, got, want, eps)
	}
}
