package dubins

import (
	"fmt"
	"math"
)

// Config is the configuration of a vehicle: its position and its heading.
//
// Theta is measured in radians. A heading of zero points along the positive x
// axis, and angles increase counter-clockwise.
type Config struct {
	X     float64
	Y     float64
	Theta float64
}

// Cfg returns the configuration (x, y, theta).
func Cfg(x, y, theta float64) Config {
	return Config{X: x, Y: y, Theta: theta}
}

func (q Config) String() string {
	return fmt.Sprintf("(%g, %g, %g)", q.X, q.Y, q.Theta)
}

// Point returns the position of q as a vector from the origin.
func (q Config) Point() Vec2 {
	return Vec2{X: q.X, Y: q.Y}
}

// Heading returns the unit vector pointing in the direction of q.
func (q Config) Heading() Vec2 {
	return VecFromAngle(q.Theta)
}

// Translate returns q moved by o. The heading is unchanged.
func (q Config) Translate(o Vec2) Config {
	return Config{
		X:     q.X + o.X,
		Y:     q.Y + o.Y,
		Theta: q.Theta,
	}
}

// Normalize returns q with its heading reduced to [0, 2π).
func (q Config) Normalize() Config {
	q.Theta = mod2pi(q.Theta)
	return q
}

// IsInf reports whether at least one of x, y, and theta is infinite.
func (q Config) IsInf() bool {
	return math.IsInf(q.X, 0) || math.IsInf(q.Y, 0) || math.IsInf(q.Theta, 0)
}

// IsNaN reports whether at least one of x, y, and theta is NaN.
func (q Config) IsNaN() bool {
	return math.IsNaN(q.X) || math.IsNaN(q.Y) || math.IsNaN(q.Theta)
}

// coincides reports whether q and o have the same position and, modulo 2π, the
// same heading.
func (q Config) coincides(o Config) bool {
	return q.X == o.X && q.Y == o.Y && mod2pi(q.Theta) == mod2pi(o.Theta)
}

// mod2pi reduces theta to [0, 2π).
func mod2pi(theta float64) float64 {
	const twoPi = 2 * math.Pi
	r := theta - twoPi*math.Floor(theta/twoPi)
	// Rounding can produce exactly 2π for tiny negative inputs.
	if r >= twoPi {
		return 0
	}
	return r
}
