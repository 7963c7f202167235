package dubins

import (
	"fmt"
	"iter"
)

// SegmentKind is the kind of motion in one segment of a path.
type SegmentKind int

const (
	// Left is a counter-clockwise turn at the minimum turning radius.
	Left SegmentKind = iota
	// Straight is straight-line motion along the current heading.
	Straight
	// Right is a clockwise turn at the minimum turning radius.
	Right
)

func (k SegmentKind) String() string {
	switch k {
	case Left:
		return "L"
	case Straight:
		return "S"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Word identifies one of the six kinds of Dubins paths by the sequence of its
// segments.
//
// The numeric values are stable and define the order in which [Shortest]
// considers words.
type Word int

const (
	LSL Word = iota
	LSR
	RSL
	RSR
	RLR
	LRL
)

// NumWords is the number of words.
const NumWords = 6

var wordSegments = [NumWords][3]SegmentKind{
	LSL: {Left, Straight, Left},
	LSR: {Left, Straight, Right},
	RSL: {Right, Straight, Left},
	RSR: {Right, Straight, Right},
	RLR: {Right, Left, Right},
	LRL: {Left, Right, Left},
}

var wordNames = [NumWords]string{
	LSL: "LSL",
	LSR: "LSR",
	RSL: "RSL",
	RSR: "RSR",
	RLR: "RLR",
	LRL: "LRL",
}

// Valid reports whether w is one of the six words.
func (w Word) Valid() bool {
	return w >= 0 && w < NumWords
}

// Segments returns the kinds of w's three segments. It panics if w isn't
// valid.
func (w Word) Segments() [3]SegmentKind {
	if !w.Valid() {
		panic(fmt.Sprintf("invalid Word %d", int(w)))
	}
	return wordSegments[w]
}

func (w Word) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Word(%d)", int(w))
	}
	return wordNames[w]
}

// ParseWord returns the word named s, such as "LSR".
func ParseWord(s string) (Word, bool) {
	for w, name := range wordNames {
		if name == s {
			return Word(w), true
		}
	}
	return 0, false
}

// Words returns an iterator over all words, in the order used by [Shortest].
func Words() iter.Seq[Word] {
	return func(yield func(Word) bool) {
		for w := range Word(NumWords) {
			if !yield(w) {
				return
			}
		}
	}
}
