package dubins

import (
	"math"
	"testing"
)

func TestMod2pi(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-1e-300, 0},
	}
	for _, tt := range tests {
		got := mod2pi(tt.in)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("mod2pi(%g) = %g, want %g", tt.in, got, tt.want)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("mod2pi(%g) = %g, outside [0, 2π)", tt.in, got)
		}
	}
}

func TestConfigCoincides(t *testing.T) {
	q := Cfg(1, 2, 0)
	if !q.coincides(Cfg(1, 2, 2*math.Pi)) {
		t.Error("headings 0 and 2π should coincide")
	}
	if q.coincides(Cfg(1, 2, math.Pi)) {
		t.Error("configurations with different headings shouldn't coincide")
	}
	if q.coincides(Cfg(1, 2.5, 0)) {
		t.Error("configurations with different positions shouldn't coincide")
	}
}

func TestConfigHelpers(t *testing.T) {
	q := Cfg(1, 2, math.Pi/2)
	diff(t, "(1, 2, 1.5707963267948966)", q.String())
	diff(t, Vec(1, 2), q.Point())
	approxConfig(t, Cfg(0, 3, math.Pi/2), q.Translate(Vec(-1, 1)), 0)

	h := q.Heading()
	if math.Abs(h.X) > 1e-15 || h.Y != 1 {
		t.Errorf("got heading vector %v, want ⟨0, 1⟩", h)
	}

	if !Cfg(math.Inf(1), 0, 0).IsInf() {
		t.Error("configuration is finite but shouldn't be")
	}
	if !Cfg(0, 0, math.NaN()).IsNaN() {
		t.Error("configuration isn't NaN but should be")
	}
	if q.IsInf() || q.IsNaN() {
		t.Error("configuration should be finite")
	}
	if th := Cfg(0, 0, -math.Pi).Normalize().Theta; th != math.Pi {
		t.Errorf("got normalized heading %g, want π", th)
	}
}
