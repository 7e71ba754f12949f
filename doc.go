// Package gear generates the outlines of gears as vector paths.
//
// A gear is a circle with alternating spikes and grooves around an inner
// bore. Spikes are drawn as arcs on the outer circle, grooves as quadratic
// Béziers whose control point is pulled towards the center. See [Settings]
// for the parameters that describe a gear.
//
// # Paths
//
// [Generate] returns a [Path], a sequence of [PathElement] values mirroring
// the SVG path commands (MoveTo, LineTo, QuadTo, CubicTo, ArcTo and
// ClosePath) together with opaque fill and stroke styles. The package
// computes geometry only; rendering is left to the caller. [Path.SVG] and
// [GenerateSVG] render a path as an SVG path element, with numbers rounded to
// a configurable precision.
//
// # Truncated gears
//
// A gear may be truncated after a number of grooves (see Settings.Cutoff).
// The outline then stops halfway through a groove, crosses over to the bore,
// follows the bore backwards and returns through the second half of the last
// groove, forming a single closed region. To split a groove in half it is
// raised to a cubic ([QuadBez.Raise]) and subdivided ([CubicBez.Subdivide]).
//
// # Coordinates
//
// The package assumes a y-down coordinate system, as is common for graphics.
// Positive angles, which are expressed in degrees, rotate clockwise.
package gear
