package dubins

import "errors"

var (
	// ErrInvalidRadius is returned when the turning radius is not a positive,
	// finite number.
	ErrInvalidRadius = errors.New("dubins: invalid turning radius")

	// ErrCoLocated is returned by [Shortest] when the start and end
	// configurations are identical. Callers that want to treat this as a path
	// of length zero can check for it with errors.Is.
	ErrCoLocated = errors.New("dubins: start and end configurations coincide")

	// ErrNoPathOfThisWord is returned when the requested word cannot connect
	// two configurations. This is an expected outcome and not a sign of bad
	// input.
	ErrNoPathOfThisWord = errors.New("dubins: no path of this word")

	// ErrNoPath is returned by [Shortest] when none of the six words can
	// connect two configurations. This doesn't happen for finite inputs.
	ErrNoPath = errors.New("dubins: no path")

	// ErrOutOfRange is returned when a distance along a path lies outside the
	// range accepted by the operation.
	ErrOutOfRange = errors.New("dubins: distance out of range")
)
