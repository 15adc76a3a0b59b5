package game

import (
	"math"
	"testing"
)

func TestNormalizeUnitLength(t *testing.T) {
	cases := []Vec3{
		{X: 3, Y: 4, Z: 0},
		{X: 0, Y: 0, Z: 0.5},
		{X: -1, Y: 2, Z: -3},
		{X: 1e-3, Y: 0, Z: 0},
	}
	for _, v := range cases {
		u, ok := v.Normalize()
		if !ok {
			t.Fatalf("Normalize(%v) rejected a non-zero vector", v)
		}
		if d := math.Abs(u.Length() - 1); d > 1e-6 {
			t.Fatalf("Normalize(%v) length off by %g", v, d)
		}
	}
}

func TestNormalizeRejectsZero(t *testing.T) {
	for _, v := range []Vec3{{}, {X: 1e-7}, {X: 1e-9, Y: 1e-9, Z: 1e-9}} {
		if _, ok := v.Normalize(); ok {
			t.Fatalf("Normalize(%v) accepted a degenerate vector", v)
		}
	}
}

func TestDistanceTo(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: 6, Z: 3}
	if d := a.DistanceTo(b); math.Abs(d-5) > 1e-9 {
		t.Fatalf("DistanceTo = %g, want 5", d)
	}
}
