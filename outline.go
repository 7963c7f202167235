package dubins

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
)

// Outline returns the path as a sequence of path commands, with straight
// segments as lines and turns approximated by cubic Béziers. The
// approximation error is at most tolerance. Segments of length zero are
// omitted. Outline panics if tolerance isn't positive.
func (p Path) Outline(tolerance float64) *path.Data {
	if !(tolerance > 0) {
		panic(fmt.Sprintf("tolerance %g isn't positive", tolerance))
	}
	out := (&path.Data{}).MoveTo(p.Start.Point().geom())
	for seg := range p.Segments() {
		if seg.Length == 0 {
			continue
		}
		if seg.Kind == Straight {
			out = out.LineTo(seg.End().Point().geom())
		} else {
			out = seg.appendArc(out, tolerance)
		}
	}
	return out
}

// appendArc appends cubic Béziers approximating the turn of s to d.
func (s Segment) appendArc(d *path.Data, tolerance float64) *path.Data {
	center := s.Center()
	sweep := s.Sweep()
	r := s.Radius

	scaledError := r / tolerance
	// Number of subdivisions per circle based on error tolerance.
	nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
	n := math.Ceil(nError * math.Abs(sweep) * (1.0 / (2.0 * math.Pi)))
	angleStep := sweep / n
	armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), sweep) * r

	angle0 := s.Start.Point().Sub(center).Angle()
	p0 := VecFromAngle(angle0).Mul(r)
	for range int(n) {
		angle1 := angle0 + angleStep
		p1 := p0.Add(VecFromAngle(angle0 + math.Pi/2).Mul(armLen))
		p3 := VecFromAngle(angle1).Mul(r)
		p2 := p3.Sub(VecFromAngle(angle1 + math.Pi/2).Mul(armLen))

		d = d.CubeTo(center.Add(p1).geom(), center.Add(p2).geom(), center.Add(p3).geom())

		angle0 = angle1
		p0 = p3
	}
	return d
}

// Polyline returns the path as a sequence of lines through the
// configurations visited by [Path.Samples], followed by the path's
// endpoint. It panics if step isn't positive.
func (p Path) Polyline(step float64) *path.Data {
	out := (&path.Data{}).MoveTo(p.Start.Point().geom())
	for q, t := range p.Samples(step) {
		if t == 0 {
			continue
		}
		out = out.LineTo(q.Point().geom())
	}
	return out.LineTo(p.Endpoint().Point().geom())
}
