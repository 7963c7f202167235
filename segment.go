package dubins

import (
	"fmt"
	"iter"
	"math"
)

// advance moves q along a segment of kind k by the normalized length t, in a
// frame in which the turning radius is one.
func (k SegmentKind) advance(q Config, t float64) Config {
	st, ct := math.Sincos(q.Theta)
	switch k {
	case Left:
		s, c := math.Sincos(q.Theta + t)
		return Config{
			X:     q.X + s - st,
			Y:     q.Y - c + ct,
			Theta: q.Theta + t,
		}
	case Right:
		s, c := math.Sincos(q.Theta - t)
		return Config{
			X:     q.X - s + st,
			Y:     q.Y + c - ct,
			Theta: q.Theta - t,
		}
	case Straight:
		return Config{
			X:     q.X + ct*t,
			Y:     q.Y + st*t,
			Theta: q.Theta,
		}
	default:
		panic(fmt.Sprintf("invalid SegmentKind %d", int(k)))
	}
}

// Segment is one of the three segments of a [Path].
type Segment struct {
	Kind SegmentKind
	// Start is the configuration at the beginning of the segment.
	Start Config
	// Length is the length of the segment, not normalized.
	Length float64
	// Radius is the turning radius. It is also set for straight segments.
	Radius float64
}

// Sweep returns the signed angle the heading changes by over the segment.
// It is positive for left turns, negative for right turns, and zero for
// straight segments.
func (s Segment) Sweep() float64 {
	switch s.Kind {
	case Left:
		return s.Length / s.Radius
	case Right:
		return -s.Length / s.Radius
	default:
		return 0
	}
}

// Center returns the center of the circle a turning segment follows. For
// straight segments it returns the start position.
func (s Segment) Center() Vec2 {
	n := s.Start.Heading().Normal().Mul(s.Radius)
	switch s.Kind {
	case Left:
		return s.Start.Point().Add(n)
	case Right:
		return s.Start.Point().Sub(n)
	default:
		return s.Start.Point()
	}
}

// At returns the configuration at distance t from the start of the segment.
// The heading is reduced to [0, 2π). t isn't limited to the segment's length.
func (s Segment) At(t float64) Config {
	q := s.Kind.advance(Config{Theta: s.Start.Theta}, t/s.Radius)
	return Config{
		X:     q.X*s.Radius + s.Start.X,
		Y:     q.Y*s.Radius + s.Start.Y,
		Theta: mod2pi(q.Theta),
	}
}

// End returns the configuration at the end of the segment.
func (s Segment) End() Config {
	return s.At(s.Length)
}

// Segments returns an iterator over the three segments of p, including those
// of length zero.
func (p Path) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		kinds := p.Word.Segments()
		q := Config{Theta: p.Start.Theta}
		for i, k := range kinds {
			seg := Segment{
				Kind:   k,
				Start:  p.denormalize(q),
				Length: p.Params[i] * p.Radius,
				Radius: p.Radius,
			}
			if !yield(seg) {
				return
			}
			q = k.advance(q, p.Params[i])
		}
	}
}
