package coords

import (
	"math"
	"testing"
)

func pointsClose(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestIdentity(t *testing.T) {
	p := Point{X: 3, Y: 7}
	if got := Identity().Transform(p); got != p {
		t.Errorf("Identity().Transform(%v) = %v", p, got)
	}
}

func TestMultiplyOrder(t *testing.T) {
	// Scale then translate is not translate then scale.
	st := Scale(2, 2).Multiply(Translate(10, 0))
	ts := Translate(10, 0).Multiply(Scale(2, 2))
	p := Point{X: 1, Y: 1}
	if got, want := st.Transform(p), (Point{X: 12, Y: 2}); !pointsClose(got, want) {
		t.Errorf("scale-then-translate: %v, want %v", got, want)
	}
	if got, want := ts.Transform(p), (Point{X: 22, Y: 2}); !pointsClose(got, want) {
		t.Errorf("translate-then-scale: %v, want %v", got, want)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := Rotate(math.Pi / 3).Multiply(Translate(42, -17)).Multiply(Scale(2, 0.5))
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	p := Point{X: 5, Y: -3}
	if got := inv.Transform(m.Transform(p)); !pointsClose(got, p) {
		t.Errorf("inverse round trip: %v, want %v", got, p)
	}
}

func TestInverseSingular(t *testing.T) {
	if _, err := (Scale(0, 1)).Inverse(); err == nil {
		t.Error("inverting a singular matrix succeeded")
	}
}

func TestLandscapePage(t *testing.T) {
	const w = 595.0 // portrait A4 width
	m := LandscapePage(w)

	cases := []struct {
		name     string
		in, want Point
	}{
		{"origin", Point{0, 0}, Point{w, 0}},
		{"top-left of portrait space", Point{0, 842}, Point{w - 842, 0}},
		{"unit x step becomes unit y step", Point{1, 0}, Point{w, 1}},
		{"interior point", Point{100, 200}, Point{w - 200, 100}},
	}
	for _, tc := range cases {
		if got := m.Transform(tc.in); !pointsClose(got, tc.want) {
			t.Errorf("%s: %v -> %v, want %v", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestLandscapePagePreservesDistances(t *testing.T) {
	m := LandscapePage(500)
	a := m.Transform(Point{10, 20})
	b := m.Transform(Point{110, 20})
	dx := b.X - a.X
	dy := b.Y - a.Y
	if d := math.Hypot(dx, dy); math.Abs(d-100) > 1e-9 {
		t.Errorf("distance after transform = %g, want 100", d)
	}
}
