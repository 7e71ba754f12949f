package gear

import (
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

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func kinds(p Path) []PathElementKind {
	out := make([]PathElementKind, len(p.Elements))
	for i, el := range p.Elements {
		out[i] = el.Kind
	}
	return out
}
