// Package dubins computes shortest paths for a vehicle that moves forward
// only and cannot turn tighter than a fixed minimum radius. Such paths are
// known as Dubins paths.
//
// # Configurations and words
//
// A [Config] is a pose in the plane: a position and a heading in radians,
// with a heading of zero pointing along the positive x axis and positive
// angles turning counter-clockwise.
//
// Dubins showed that the shortest path between two configurations is
// always made of three segments, each of which is either a left turn (L), a
// right turn (R), or a straight line (S), and that only six combinations,
// called words, need to be considered: [LSL], [LSR], [RSL], [RSR], [RLR],
// and [LRL]. Turns always use the minimum turning radius.
//
// # Paths
//
// [Shortest] tries all six words and returns the shortest feasible one as a
// [Path]. [NewPath] builds a path for one specific word, which may not exist
// for a given pair of configurations; in that case it returns
// [ErrNoPathOfThisWord].
//
// A Path stores its start configuration, its word, the turning radius, and
// the lengths of its three segments in units of the turning radius. All
// other information, such as intermediate configurations or the end of the
// path, is computed on demand:
//
//   - [Path.Length] and [Path.SegmentLength] measure the path
//   - [Path.Sample] evaluates the configuration at a distance along the path
//   - [Path.Samples] and [Path.SampleMany] walk the path at a fixed step size
//   - [Path.Endpoint] returns the final configuration
//   - [Path.Subpath] and [Path.Truncate] cut a path at a distance
//
// Paths can be converted to drawable outlines with [Path.Outline] and
// [Path.Polyline], which produce [seehuhn.de/go/geom/path.Data] values.
//
// # Errors
//
// Functions that can fail return one of the sentinel errors declared by this
// package, possibly wrapped with additional context. Use [errors.Is] to test
// for them. Violations of preconditions that callers control statically,
// such as an out-of-range segment index, cause a panic instead.
package dubins
