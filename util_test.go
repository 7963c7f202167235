package dubins

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// angleDist returns the distance between two headings, in [0, π].
func angleDist(a, b float64) float64 {
	return math.Abs(math.Remainder(a-b, 2*math.Pi))
}

// approxConfig reports an error if want and got differ by more than epsilon in
// position or in heading.
func approxConfig(t *testing.T, want, got Config, epsilon float64) {
	t.Helper()
	if d := got.Point().Sub(want.Point()).Hypot(); !(d <= epsilon) {
		t.Errorf("got position (%g, %g), want (%g, %g)", got.X, got.Y, want.X, want.Y)
	}
	if d := angleDist(want.Theta, got.Theta); !(d <= epsilon) {
		t.Errorf("got heading %g, want %g", got.Theta, want.Theta)
	}
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Errorf("%s didn't panic", name)
		}
	}()
	fn()
}
