package dubins

import (
	"fmt"
	"iter"
	"math"
)

// Path is a Dubins path: up to three segments of left turns, right turns, and
// straight lines, as described by Word.
//
// Params holds the segment lengths divided by Radius. For turns, this is the
// angle of the turn in radians.
type Path struct {
	Start  Config
	Word   Word
	Params [3]float64
	Radius float64
}

func (p Path) String() string {
	return fmt.Sprintf("%s%v from %v with radius %g", p.Word, p.Params, p.Start, p.Radius)
}

// Valid reports whether p is well-formed: its word is valid, all of its
// segment lengths are finite and non-negative, and its radius is finite and
// positive.
func (p Path) Valid() bool {
	if !p.Word.Valid() || checkRadius(p.Radius) != nil {
		return false
	}
	for _, param := range p.Params {
		if !(param >= 0) || math.IsInf(param, 1) {
			return false
		}
	}
	return true
}

// SegmentLength returns the length of the i-th segment. It panics if i is
// outside [0, 2].
func (p Path) SegmentLength(i int) float64 {
	return p.Params[i] * p.Radius
}

// SegmentLengthNormalized returns the length of the i-th segment divided by the
// turning radius. It panics if i is outside [0, 2].
func (p Path) SegmentLengthNormalized(i int) float64 {
	return p.Params[i]
}

// Length returns the length of the path.
func (p Path) Length() float64 {
	return (p.Params[0] + p.Params[1] + p.Params[2]) * p.Radius
}

// locate returns the index of the segment containing the normalized distance
// tn, and the normalized distance into that segment.
func (p Path) locate(tn float64) (int, float64) {
	p0, p1 := p.Params[0], p.Params[1]
	switch {
	case tn < p0:
		return 0, tn
	case tn < p0+p1:
		return 1, tn - p0
	default:
		return 2, tn - p0 - p1
	}
}

func (p Path) denormalize(q Config) Config {
	return Config{
		X:     q.X*p.Radius + p.Start.X,
		Y:     q.Y*p.Radius + p.Start.Y,
		Theta: mod2pi(q.Theta),
	}
}

// at returns the configuration at the normalized distance tn.
func (p Path) at(tn float64) Config {
	kinds := p.Word.Segments()
	i, rem := p.locate(tn)
	q := Config{Theta: p.Start.Theta}
	for j := range i {
		q = kinds[j].advance(q, p.Params[j])
	}
	return p.denormalize(kinds[i].advance(q, rem))
}

// Sample returns the configuration at distance t along the path. The heading
// is reduced to [0, 2π).
//
// Sample returns an error wrapping [ErrOutOfRange] unless 0 ≤ t < p.Length().
func (p Path) Sample(t float64) (Config, error) {
	if l := p.Length(); !(t >= 0 && t < l) {
		return Config{}, fmt.Errorf("sampling at %g on path of length %g: %w", t, l, ErrOutOfRange)
	}
	return p.at(t / p.Radius), nil
}

// Termination describes why [Path.SampleMany] returned.
type Termination int

const (
	// Completed means the whole path was sampled.
	Completed Termination = iota
	// Stopped means the visitor asked to stop.
	Stopped
)

func (t Termination) String() string {
	switch t {
	case Completed:
		return "Completed"
	case Stopped:
		return "Stopped"
	default:
		return fmt.Sprintf("Termination(%d)", int(t))
	}
}

// SampleMany walks the path, calling visit with the configuration at the
// distances 0, step, 2·step, and so on, as long as the distance is less than
// the path's length. The end of the path itself is never visited; use
// [Path.Endpoint] for that.
//
// Sampling stops early if visit returns false, in which case SampleMany
// returns [Stopped]. SampleMany panics if step isn't positive.
func (p Path) SampleMany(step float64, visit func(q Config, t float64) bool) Termination {
	if !(step > 0) {
		panic(fmt.Sprintf("step size %g isn't positive", step))
	}
	l := p.Length()
	// Offsets are i·step, not a running sum.
	for i, t := 0, 0.0; t < l; i, t = i+1, float64(i+1)*step {
		if !visit(p.at(t/p.Radius), t) {
			return Stopped
		}
	}
	return Completed
}

// Samples returns an iterator over the same configurations and distances
// that [Path.SampleMany] visits. It panics if step isn't positive.
func (p Path) Samples(step float64) iter.Seq2[Config, float64] {
	if !(step > 0) {
		panic(fmt.Sprintf("step size %g isn't positive", step))
	}
	return func(yield func(Config, float64) bool) {
		p.SampleMany(step, yield)
	}
}

// Endpoint returns the configuration at the end of the path. The heading is
// reduced to [0, 2π).
func (p Path) Endpoint() Config {
	kinds := p.Word.Segments()
	q := Config{Theta: p.Start.Theta}
	for i, k := range kinds {
		q = k.advance(q, p.Params[i])
	}
	return p.denormalize(q)
}

// Subpath returns the part of the path that begins at distance t and ends
// where p ends. The result keeps p's word and radius. Segments that lie
// entirely before t have length zero in the result.
//
// Subpath returns an error wrapping [ErrOutOfRange] unless 0 < t < p.Length().
func (p Path) Subpath(t float64) (Path, error) {
	if l := p.Length(); !(t > 0 && t < l) {
		return Path{}, fmt.Errorf("subpath at %g of path of length %g: %w", t, l, ErrOutOfRange)
	}
	tn := t / p.Radius
	i, rem := p.locate(tn)
	sub := Path{
		Start:  p.at(tn),
		Word:   p.Word,
		Radius: p.Radius,
	}
	sub.Params[i] = max(p.Params[i]-rem, 0)
	copy(sub.Params[i+1:], p.Params[i+1:])
	return sub, nil
}

// Truncate returns the part of the path that begins where p begins and ends
// at distance t. The result keeps p's start, word, and radius. Segments that
// lie entirely after t have length zero in the result.
//
// Truncate returns an error wrapping [ErrOutOfRange] unless
// 0 < t ≤ p.Length().
func (p Path) Truncate(t float64) (Path, error) {
	l := p.Length()
	if !(t > 0 && t <= l) {
		return Path{}, fmt.Errorf("truncating at %g path of length %g: %w", t, l, ErrOutOfRange)
	}
	// t/Radius can differ from the sum of the params by an ulp.
	if t == l {
		return p, nil
	}
	tn := t / p.Radius
	head := p
	head.Params[0] = min(p.Params[0], tn)
	head.Params[1] = min(p.Params[1], tn-head.Params[0])
	head.Params[2] = min(p.Params[2], tn-head.Params[0]-head.Params[1])
	return head, nil
}
