package dubins

import (
	"fmt"
	"iter"
	"math"
)

// wordSolvers maps every word to the closed-form solution of its segment
// lengths. A solver reports false if no path of its word exists.
var wordSolvers = [NumWords]func(g *Geometry) ([3]float64, bool){
	LSL: solveLSL,
	LSR: solveLSR,
	RSL: solveRSL,
	RSR: solveRSR,
	RLR: solveRLR,
	LRL: solveLRL,
}

// Solve computes the normalized segment lengths of the path of word w. It
// returns [ErrNoPathOfThisWord] if no such path exists. It panics if w isn't
// valid.
func (g Geometry) Solve(w Word) ([3]float64, error) {
	if !w.Valid() {
		panic(fmt.Sprintf("invalid Word %d", int(w)))
	}
	params, ok := wordSolvers[w](&g)
	if !ok {
		return [3]float64{}, ErrNoPathOfThisWord
	}
	return params, nil
}

// Feasible returns an iterator over the words that can connect the two
// configurations described by g, together with their normalized segment
// lengths. Words are yielded in the order of their numeric values.
func (g Geometry) Feasible() iter.Seq2[Word, [3]float64] {
	return func(yield func(Word, [3]float64) bool) {
		for w := range Words() {
			params, ok := wordSolvers[w](&g)
			if !ok {
				continue
			}
			if !yield(w, params) {
				return
			}
		}
	}
}

func solveLSL(g *Geometry) ([3]float64, bool) {
	tmp0 := g.D + g.SinA - g.SinB
	pSq := 2 + g.DSq - 2*g.CosAB + 2*g.D*(g.SinA-g.SinB)
	if !(pSq >= 0) {
		return [3]float64{}, false
	}
	tmp1 := math.Atan2(g.CosB-g.CosA, tmp0)
	return [3]float64{
		mod2pi(tmp1 - g.Alpha),
		math.Sqrt(pSq),
		mod2pi(g.Beta - tmp1),
	}, true
}

func solveRSR(g *Geometry) ([3]float64, bool) {
	tmp0 := g.D - g.SinA + g.SinB
	pSq := 2 + g.DSq - 2*g.CosAB + 2*g.D*(g.SinB-g.SinA)
	if !(pSq >= 0) {
		return [3]float64{}, false
	}
	tmp1 := math.Atan2(g.CosA-g.CosB, tmp0)
	return [3]float64{
		mod2pi(g.Alpha - tmp1),
		math.Sqrt(pSq),
		mod2pi(tmp1 - g.Beta),
	}, true
}

func solveLSR(g *Geometry) ([3]float64, bool) {
	pSq := -2 + g.DSq + 2*g.CosAB + 2*g.D*(g.SinA+g.SinB)
	if !(pSq >= 0) {
		return [3]float64{}, false
	}
	p := math.Sqrt(pSq)
	tmp0 := math.Atan2(-g.CosA-g.CosB, g.D+g.SinA+g.SinB) - math.Atan2(-2, p)
	return [3]float64{
		mod2pi(tmp0 - g.Alpha),
		p,
		mod2pi(tmp0 - g.Beta),
	}, true
}

func solveRSL(g *Geometry) ([3]float64, bool) {
	pSq := -2 + g.DSq + 2*g.CosAB - 2*g.D*(g.SinA+g.SinB)
	if !(pSq >= 0) {
		return [3]float64{}, false
	}
	p := math.Sqrt(pSq)
	tmp0 := math.Atan2(g.CosA+g.CosB, g.D-g.SinA-g.SinB) - math.Atan2(2, p)
	return [3]float64{
		mod2pi(g.Alpha - tmp0),
		p,
		mod2pi(g.Beta - tmp0),
	}, true
}

func solveRLR(g *Geometry) ([3]float64, bool) {
	tmp0 := (6 - g.DSq + 2*g.CosAB + 2*g.D*(g.SinA-g.SinB)) / 8
	if !(math.Abs(tmp0) <= 1) {
		return [3]float64{}, false
	}
	phi := math.Atan2(g.CosA-g.CosB, g.D-g.SinA+g.SinB)
	p := mod2pi(2*math.Pi - math.Acos(tmp0))
	t := mod2pi(g.Alpha - phi + mod2pi(p/2))
	return [3]float64{
		t,
		p,
		mod2pi(g.Alpha - g.Beta - t + mod2pi(p)),
	}, true
}

func solveLRL(g *Geometry) ([3]float64, bool) {
	tmp0 := (6 - g.DSq + 2*g.CosAB + 2*g.D*(g.SinB-g.SinA)) / 8
	if !(math.Abs(tmp0) <= 1) {
		return [3]float64{}, false
	}
	phi := math.Atan2(g.CosA-g.CosB, g.D+g.SinA-g.SinB)
	p := mod2pi(2*math.Pi - math.Acos(tmp0))
	t := mod2pi(-g.Alpha - phi + p/2)
	return [3]float64{
		t,
		p,
		mod2pi(g.Beta - g.Alpha - t + mod2pi(p)),
	}, true
}

// Shortest returns the shortest path from start to end for a vehicle with the
// given minimum turning radius.
//
// Of two words that yield paths of exactly the same length, the one with the
// lower numeric value wins.
//
// Shortest returns an error wrapping [ErrInvalidRadius] if radius isn't
// positive and finite, [ErrCoLocated] if start and end are the same
// configuration, and [ErrNoPath] if no word connects the two configurations.
func Shortest(start, end Config, radius float64) (Path, error) {
	g, err := NewGeometry(start, end, radius)
	if err != nil {
		return Path{}, err
	}
	if start.coincides(end) {
		return Path{}, fmt.Errorf("%v: %w", start, ErrCoLocated)
	}

	best := Path{Start: start, Radius: radius}
	bestCost := math.Inf(1)
	for w, params := range g.Feasible() {
		if cost := params[0] + params[1] + params[2]; cost < bestCost {
			bestCost = cost
			best.Word = w
			best.Params = params
		}
	}
	if math.IsInf(bestCost, 1) {
		return Path{}, fmt.Errorf("from %v to %v: %w", start, end, ErrNoPath)
	}
	return best, nil
}

// NewPath returns the path of word w from start to end for a vehicle with the
// given minimum turning radius.
//
// NewPath returns an error wrapping [ErrInvalidRadius] if radius isn't
// positive and finite, and [ErrNoPathOfThisWord] if no path of word w
// connects the two configurations. It panics if w isn't valid.
func NewPath(start, end Config, radius float64, w Word) (Path, error) {
	g, err := NewGeometry(start, end, radius)
	if err != nil {
		return Path{}, err
	}
	params, err := g.Solve(w)
	if err != nil {
		return Path{}, fmt.Errorf("%s from %v to %v: %w", w, start, end, err)
	}
	return Path{
		Start:  start,
		Word:   w,
		Params: params,
		Radius: radius,
	}, nil
}

// ShortestSamples computes the shortest path from start to end and returns
// the configurations and distances that [Path.SampleMany] visits on it. It
// fails for the same reasons as [Shortest] and panics if step isn't positive.
func ShortestSamples(start, end Config, radius, step float64) ([]Config, []float64, error) {
	if !(step > 0) {
		panic(fmt.Sprintf("step size %g isn't positive", step))
	}
	p, err := Shortest(start, end, radius)
	if err != nil {
		return nil, nil, err
	}
	var qs []Config
	var ts []float64
	for q, t := range p.Samples(step) {
		qs = append(qs, q)
		ts = append(ts, t)
	}
	return qs, ts, nil
}

// Normalized returns the path of word w in the normalized frame, in which the
// turning radius is one, the path starts at the origin with heading alpha, and
// ends at (d, 0) with heading beta.
func Normalized(alpha, beta, d float64, w Word) (Path, error) {
	return NewPath(Cfg(0, 0, alpha), Cfg(d, 0, beta), 1, w)
}
