package dubins

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestGeometryInvalidRadius(t *testing.T) {
	for _, r := range []float64{0, -1, math.Inf(-1), math.Inf(1), math.NaN()} {
		_, err := NewGeometry(Cfg(0, 0, 0), Cfg(1, 0, 0), r)
		if !errors.Is(err, ErrInvalidRadius) {
			t.Errorf("radius %g: got error %v, want ErrInvalidRadius", r, err)
		}
	}
}

func TestGeometry(t *testing.T) {
	g, err := NewGeometry(Cfg(1, 1, math.Pi/2), Cfg(1, 5, math.Pi), 2)
	if err != nil {
		t.Fatal(err)
	}
	// The line between the positions points along +y, so both headings are
	// measured relative to π/2.
	want := Geometry{
		Alpha: 0,
		Beta:  math.Pi / 2,
		D:     2,
		SinA:  0,
		SinB:  1,
		CosA:  1,
		CosB:  0,
		CosAB: 0,
		DSq:   4,
	}
	diff(t, want, g, cmpopts.EquateApprox(0, 1e-12))
}

func TestGeometryRotationInvariance(t *testing.T) {
	start := Cfg(0, 0, 0.3)
	end := Cfg(3, 1, 2.1)
	g1, err := NewGeometry(start, end, 1.5)
	if err != nil {
		t.Fatal(err)
	}

	// Rotating and translating both configurations changes nothing in the
	// normalized frame.
	const rot = 1.1
	off := Vec(-7, 4)
	move := func(q Config) Config {
		p := q.Point().Rotate(rot).Add(off)
		return Cfg(p.X, p.Y, q.Theta+rot)
	}
	g2, err := NewGeometry(move(start), move(end), 1.5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, g1, g2, cmpopts.EquateApprox(0, 1e-9))
}

func TestGeometrySamePosition(t *testing.T) {
	g, err := NewGeometry(Cfg(2, 2, 0), Cfg(2, 2, math.Pi), 1)
	if err != nil {
		t.Fatal(err)
	}
	if g.D != 0 || g.Alpha != 0 || g.Beta != math.Pi {
		t.Errorf("got D=%g α=%g β=%g, want D=0 α=0 β=π", g.D, g.Alpha, g.Beta)
	}
}
