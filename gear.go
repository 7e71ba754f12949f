package gear

import (
	"fmt"
	"log/slog"
)

// Settings describes a single gear. All angles are in degrees.
//
// Settings are mostly not validated. GrooveCount must be at least 1. A
// negative groove count panics. With a groove count of 0 the angle
// computations divide by zero and the resulting path consists of NaN and
// infinite coordinates. GrooveDepth and WidthProportion outside their
// documented ranges produce valid but possibly self-intersecting outlines.
type Settings struct {
	// Radius of the circle the spike tips lie on.
	Radius float64
	// Radius of the bore.
	InnerRadius float64
	Center      Point
	// Rotation of the whole gear, clockwise in a y-down coordinate system.
	Rotation float64
	// Number of grooves, which is also the number of spikes.
	GrooveCount int
	// Value between 0 and 1, where 0 pulls the groove floor to half the
	// radius and 1 to the full radius.
	GrooveDepth float64
	// Value between -1 and 1. Bigger values cause smaller spikes and wider
	// grooves.
	WidthProportion float64
	// Number of grooves to draw before truncating the gear. Values outside
	// of [1, GrooveCount) draw the full gear.
	Cutoff int
}

// DefaultSettings returns the settings of the default gear: ten grooves,
// truncated after four of them.
func DefaultSettings() Settings {
	return Settings{
		Radius:          90,
		InnerRadius:     45,
		Center:          Pt(100, 100),
		Rotation:        216,
		GrooveCount:     10,
		GrooveDepth:     0.4,
		WidthProportion: 0.2,
		Cutoff:          4,
	}
}

// boreArcRadius is the radius used for the two arcs that make up the bore of
// an untruncated gear. SVG renderers scale radii that are too small to
// connect the end points up, so each arc is drawn as a half circle of
// InnerRadius.
var boreArcRadius = Vec(1, 1)

// Truncated reports whether the gear is cut off after s.Cutoff grooves
// instead of being drawn in full.
func (s Settings) Truncated() bool {
	return s.Cutoff >= 1 && s.Cutoff < s.GrooveCount
}

// angles returns the angular widths of a spike and of a groove. Their sum
// is the angular period of the gear.
func (s Settings) angles() (spike, groove float64) {
	if s.GrooveCount < 0 {
		panic(fmt.Sprintf("gear: negative groove count %d", s.GrooveCount))
	}
	delta := 360 / float64(s.GrooveCount*2)
	diff := delta * s.WidthProportion
	return delta - diff, delta + diff
}

// Corners returns the point the outline starts at, which is the end of the
// first spike's leading edge, and for every groove the two points where it
// meets its neighbouring spikes, in drawing order.
func (s Settings) Corners() (start Point, corners [][2]Point) {
	base := s.Center.Translate(Vec(0, -s.Radius))
	spike, groove := s.angles()

	angle := groove / 2
	start = base.Rotate(angle+s.Rotation, s.Center)
	angle += spike

	for angle < 360 {
		p1 := base.Rotate(angle+s.Rotation, s.Center)
		angle += groove
		p2 := base.Rotate(angle+s.Rotation, s.Center)
		angle += spike
		corners = append(corners, [2]Point{p1, p2})
	}
	return start, corners
}

// grooveCurve returns the quadratic forming the groove between p1 and p2.
// Its control point is the midpoint of the corners, pulled towards the center
// by GrooveDepth.
func (s Settings) grooveCurve(p1, p2 Point) QuadBez {
	return QuadBez{p1, s.Center.Lerp(p1.Midpoint(p2), 1-s.GrooveDepth), p2}
}

// Generate computes the outline of the gear described by s. Fill and stroke
// are stored in the path as is.
//
// A full gear consists of two closed subpaths, the toothed outline and the
// bore. A truncated gear is a single closed subpath: the first s.Cutoff
// spikes, ending in half a groove, a line to the bore, an arc along the bore
// and a line back out to the second half of the last groove.
func Generate(s Settings, fill, stroke string) Path {
	start, corners := s.Corners()

	p := Path{Fill: fill, Stroke: stroke}
	p.MoveTo(start)
	truncated := false
	for i, c := range corners {
		// spike tip
		p.ArcTo(Vec(s.Radius, s.Radius), 0, false, true, c[0])

		groove := s.grooveCurve(c[0], c[1])
		if i+1 == s.Cutoff && s.Cutoff < s.GrooveCount {
			first, _ := groove.Raise().Subdivide()
			p.Push(first.CubicTo())
			truncated = true
			break
		}
		p.Push(groove.QuadTo())
	}

	if truncated {
		s.closeTruncated(&p, corners[len(corners)-1])
	} else {
		s.closeFull(&p)
	}

	Logger().Debug("generated gear",
		slog.Int("grooves", s.GrooveCount),
		slog.Int("corners", len(corners)),
		slog.Bool("truncated", truncated),
		slog.Int("elements", p.Len()))
	return p
}

func (s Settings) closeTruncated(p *Path, last [2]Point) {
	spike, groove := s.angles()
	cutoffAngle := float64(s.Cutoff) * (spike + groove)
	end := s.Center.Translate(Vec(0, -s.InnerRadius)).Rotate(s.Rotation, s.Center)
	start := end.Rotate(cutoffAngle, s.Center)

	p.LineTo(start)
	p.ArcTo(Vec(s.InnerRadius, s.InnerRadius), 0, cutoffAngle > 180, false, end)

	_, second := s.grooveCurve(last[0], last[1]).Raise().Subdivide()
	p.LineTo(second.P0)
	p.Push(second.CubicTo())
	p.ClosePath()
}

func (s Settings) closeFull(p *Path) {
	p.ClosePath()

	top := s.Center.Translate(Vec(0, -s.InnerRadius))
	bottom := s.Center.Translate(Vec(0, s.InnerRadius))
	p.MoveTo(top)
	p.ArcTo(boreArcRadius, 0, false, false, bottom)
	p.ArcTo(boreArcRadius, 0, false, false, top)
	p.ClosePath()
}

// GenerateSVG generates the gear described by s and renders it as an SVG path
// element, with coordinates rounded to precision decimal digits. Precisions
// above [MaxPrecision] write coordinates exactly.
func GenerateSVG(s Settings, fill, stroke string, precision uint) string {
	return Generate(s, fill, stroke).SVG(SVGOptions{Precision: int(min(precision, MaxPrecision))})
}
