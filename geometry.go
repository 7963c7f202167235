package dubins

import (
	"fmt"
	"math"
)

// Geometry holds the quantities shared by the formulas of all six words. It
// describes the pair of configurations in a frame in which the start lies at
// the origin, the end lies on the positive x axis, and the turning radius is
// one.
type Geometry struct {
	// Alpha and Beta are the start and end headings relative to the line from
	// the start to the end position, in [0, 2π).
	Alpha float64
	Beta  float64
	// D is the distance between the two positions, divided by the turning
	// radius.
	D float64

	SinA  float64
	SinB  float64
	CosA  float64
	CosB  float64
	CosAB float64 // cos(Alpha - Beta)
	DSq   float64 // D * D
}

// NewGeometry computes the intermediate geometry for a path from start to end
// with the given turning radius. It returns an error wrapping
// [ErrInvalidRadius] if radius isn't positive and finite.
func NewGeometry(start, end Config, radius float64) (Geometry, error) {
	if err := checkRadius(radius); err != nil {
		return Geometry{}, err
	}

	disp := end.Point().Sub(start.Point())
	d := disp.Hypot() / radius

	var theta float64
	if d > 0 {
		theta = mod2pi(disp.Angle())
	}
	return normalizedGeometry(start.Theta-theta, end.Theta-theta, d), nil
}

func normalizedGeometry(alpha, beta, d float64) Geometry {
	alpha = mod2pi(alpha)
	beta = mod2pi(beta)
	sa, ca := math.Sincos(alpha)
	sb, cb := math.Sincos(beta)
	return Geometry{
		Alpha: alpha,
		Beta:  beta,
		D:     d,
		SinA:  sa,
		SinB:  sb,
		CosA:  ca,
		CosB:  cb,
		CosAB: math.Cos(alpha - beta),
		DSq:   d * d,
	}
}

func checkRadius(radius float64) error {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return fmt.Errorf("radius %g: %w", radius, ErrInvalidRadius)
	}
	return nil
}
